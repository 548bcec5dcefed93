package detect

import (
	"bufio"
	"regexp"
	"strings"

	"github.com/monkslc/hyperpolyglot/pkg/langs"
)

// shExecHackPattern recognizes the "#!/bin/sh" wrapper some interpreters
// use to stay portable across shells that don't support a shebang with
// arguments: the real interpreter re-execs itself with the script's own
// arguments forwarded.
var shExecHackPattern = regexp.MustCompile(`exec (\w+).+\$0.+\$@`)

// minorVersionPattern isolates an interpreter's major version by cutting
// everything from its first "N.N" onward before the INTERPRETERS lookup.
// The cut starts at the digit before the dot, so "python2.7.3" normalizes
// to "python" and "python3.11" to "python".
var minorVersionPattern = regexp.MustCompile(`[0-9]\.[0-9]`)

// shExecLookaheadLines bounds how many lines past the shebang itself get
// scanned for the sh exec hack. The exact count is heuristic, not derived
// from any format guarantee, so it's named here rather than left as a bare
// literal in the loop below.
const shExecLookaheadLines = 4

// languagesFromShebang inspects content's first line for a "#!" shebang and
// resolves the named interpreter to its candidate languages. It returns nil
// if there is no shebang, the interpreter is unrecognized, or (for "env"
// with nothing after it) there is no interpreter to resolve.
func languagesFromShebang(content string) []string {
	scanner := bufio.NewScanner(strings.NewReader(content))
	scanner.Buffer(make([]byte, 0, 4096), 1<<20)

	if !scanner.Scan() {
		return nil
	}
	firstLine := scanner.Text()
	if !strings.HasPrefix(firstLine, "#!") {
		return nil
	}

	segments := strings.Split(firstLine, "/")
	interpreterLine := segments[len(segments)-1]
	fields := strings.Fields(interpreterLine)
	if len(fields) == 0 {
		return nil
	}

	var interpreter string
	switch fields[0] {
	case "env":
		if len(fields) < 2 {
			return nil
		}
		interpreter = fields[1]

	case "sh":
		var lookahead []string
		for i := 0; i < shExecLookaheadLines && scanner.Scan(); i++ {
			lookahead = append(lookahead, scanner.Text())
		}
		extra := strings.Join(lookahead, "\n")
		if match := shExecHackPattern.FindStringSubmatch(extra); match != nil {
			interpreter = match[1]
		} else {
			interpreter = "sh"
		}

	default:
		interpreter = fields[0]
	}

	interpreter = minorVersionPattern.Split(interpreter, 2)[0]

	languages, ok := langs.Interpreters()[interpreter]
	if !ok {
		return nil
	}
	return languages
}
