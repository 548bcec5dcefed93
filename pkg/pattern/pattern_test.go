package pattern

import "testing"

func TestPositive(t *testing.T) {
	p := Positive(`\bclass\b`)
	if !p.Match("public class Foo {}") {
		t.Fatal("expected match")
	}
	if p.Match("no keyword here") {
		t.Fatal("expected no match")
	}
}

func TestNegative(t *testing.T) {
	p := Negative(`\btemplate\b`)
	if !p.Match("int main() {}") {
		t.Fatal("expected match: no template keyword present")
	}
	if p.Match("template <typename T> void f();") {
		t.Fatal("expected no match: template keyword present")
	}
}

func TestAnd(t *testing.T) {
	p := And(Positive(`\bHEADERS\b`), Positive(`\bSOURCES\b`))
	if !p.Match("HEADERS += a.h\nSOURCES += a.cpp") {
		t.Fatal("expected both clauses to match")
	}
	if p.Match("HEADERS += a.h") {
		t.Fatal("expected no match: SOURCES missing")
	}
}

func TestOr(t *testing.T) {
	p := Or(Positive(`\bplot\b`), Positive(`(?i)\bset\s+terminal\b`))
	if !p.Match("plot sin(x)") {
		t.Fatal("expected match on first clause")
	}
	if !p.Match("set terminal png") {
		t.Fatal("expected match on second clause")
	}
	if p.Match("nothing relevant") {
		t.Fatal("expected no match")
	}
}

func TestMultilineAnchors(t *testing.T) {
	p := And(Positive(`(?m)^\.TH\b`), Positive(`(?m)^\.SH\b`))
	content := ".TH LYXCLIENT 1\nsome body text\n.SH NAME\nlyxclient - talk to a running lyx\n"
	if !p.Match(content) {
		t.Fatal("expected both line-anchored clauses to match")
	}
}

func TestCRLFNormalization(t *testing.T) {
	p := Positive(`(?m)^\.TH\b`)
	if !p.Match(".TH FOO 1\r\nbody\r\n") {
		t.Fatal("expected CRLF content to match the same as LF content")
	}
}

func TestCacheReusesCompiledRegex(t *testing.T) {
	a := Positive(`foo`)
	b := Positive(`foo`)
	if !a.Match("foo") || !b.Match("foo") {
		t.Fatal("expected both instances to match")
	}
}
