package heuristics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestJavaScriptEs(t *testing.T) {
	got := GetLanguagesFromHeuristics(".es", []string{"JavaScript", "Erlang"}, "'use strict';\nmodule.exports = {};")
	assert.Equal(t, []string{"JavaScript"}, got)
}

func TestErlangEsFallthrough(t *testing.T) {
	got := GetLanguagesFromHeuristics(".es", []string{"JavaScript", "Erlang"}, "-module(daemon).\n-export([start/0]).")
	assert.Equal(t, []string{"Erlang"}, got)
}

func TestSQLDefault(t *testing.T) {
	got := GetLanguagesFromHeuristics(".sql", nil, "LALA THIS IS SQL")
	assert.Equal(t, []string{"SQL"}, got)
}

func TestQMakeAndPattern(t *testing.T) {
	got := GetLanguagesFromHeuristics(".pro", nil, "HEADERS += a.h\nSOURCES += a.cpp\n")
	assert.Equal(t, []string{"QMake"}, got)
}

func TestProNoneMatch(t *testing.T) {
	got := GetLanguagesFromHeuristics(".pro", nil, "HEADERS += a.h\n")
	assert.Nil(t, got)
}

func TestUnixAssemblyPattern(t *testing.T) {
	got := GetLanguagesFromHeuristics(".ms", nil, ".include: foo.inc\n")
	assert.Equal(t, []string{"Unix Assembly"}, got)
}

func TestGnuplotOrPattern(t *testing.T) {
	got := GetLanguagesFromHeuristics(".p", nil, "plot sin(x)\n")
	assert.Equal(t, []string{"Gnuplot"}, got)
}

func TestCppHeaderNamedPattern(t *testing.T) {
	got := GetLanguagesFromHeuristics(".h", []string{"C", "C++", "Objective-C"}, "std::cout << x;\n")
	assert.Equal(t, []string{"C++"}, got)
}

func TestRoffManpageDefaultsToRoff(t *testing.T) {
	got := GetLanguagesFromHeuristics(".man", nil, "alskdjfahij\n")
	assert.Equal(t, []string{"Roff"}, got)
}

func TestRoffManpageMultipleAnchors(t *testing.T) {
	content := ".TH LYXCLIENT 1 \"April 6, 2011\" \"Version 1.6\" \"LyX Client Manual\"\n" +
		".SH NAME\nlyxclient - talk to a running lyx\n"
	got := GetLanguagesFromHeuristics(".1in", nil, content)
	assert.Equal(t, []string{"Roff Manpage"}, got)
}

func TestHeaderDefaultsToC(t *testing.T) {
	got := GetLanguagesFromHeuristics(".h", []string{"C", "C++", "Objective-C"}, "typedef struct point { int x; int y; } point;\n")
	assert.Equal(t, []string{"C"}, got)
}

func TestHeaderCandidateRestrictionSkipsRule(t *testing.T) {
	// Objective-C isn't in the candidate set, so its rule is skipped even
	// though its pattern would otherwise match.
	got := GetLanguagesFromHeuristics(".h", []string{"C", "C++"}, "#import <Foundation.h>\n")
	assert.Equal(t, []string{"C"}, got)
}

func TestUnknownExtensionReturnsNil(t *testing.T) {
	got := GetLanguagesFromHeuristics(".go", nil, "package main\n")
	assert.Nil(t, got)
}
