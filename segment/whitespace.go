package segment

import (
	"unicode"

	"github.com/npillmayer/bbow/automata"
)

// Code-point classes of the WhitespaceBreaker.
const (
	eotClass = iota
	spaceClass
	fragmentClass
)

// runBoundaryMerit is the merit for breaking after the last rune of a run.
const runBoundaryMerit = -100

// WhitespaceBreaker is a UnicodeBreaker which breaks text at every transition
// between whitespace and non-whitespace, as defined by the Unicode
// White_Space property. A segmenter using it alternates between fragments
// and runs of whitespace.
//
// WhitespaceBreaker implements interface automata.UnicodeBreaker.
type WhitespaceBreaker struct {
	publisher    automata.RunePublisher
	longestMatch int   // longest active match of any rule
	penalties    []int // penalties to return to the segmenter
	prevClass    int   // class of previously read rune
}

// NewWhitespaceBreaker creates a new UnicodeBreaker for fragments
// delimited by whitespace.
func NewWhitespaceBreaker() *WhitespaceBreaker {
	return &WhitespaceBreaker{
		publisher: automata.NewRunePublisher(),
		prevClass: eotClass,
	}
}

// CodePointClassFor returns the class of a rune: whitespace, fragment or
// end of text.
func (wb *WhitespaceBreaker) CodePointClassFor(r rune) int {
	if r == automata.EOT {
		return eotClass
	}
	if unicode.IsSpace(r) {
		return spaceClass
	}
	return fragmentClass
}

// StartRulesFor starts a new rule for every run of runes of the same
// class. Runes continuing a run do not start a rule.
func (wb *WhitespaceBreaker) StartRulesFor(r rune, cpClass int) {
	if cpClass != eotClass && cpClass != wb.prevClass {
		rec := automata.NewPooledRecognizer(cpClass, runOfClass)
		wb.publisher.SubscribeMe(rec)
	}
}

// ProceedWithRune lets all active rules react to rune r.
func (wb *WhitespaceBreaker) ProceedWithRune(r rune, cpClass int) {
	wb.longestMatch, wb.penalties = wb.publisher.PublishRuneEvent(r, cpClass)
	wb.prevClass = cpClass
}

// LongestActiveMatch is part of interface automata.UnicodeBreaker.
func (wb *WhitespaceBreaker) LongestActiveMatch() int {
	return wb.longestMatch
}

// Penalties is part of interface automata.UnicodeBreaker.
func (wb *WhitespaceBreaker) Penalties() []int {
	return wb.penalties
}

// runOfClass matches a run of runes of the recognizer's expected class.
// The first rune of a different class ends the run with a break after its
// last rune.
func runOfClass(rec *automata.Recognizer, r rune, cpClass int) automata.NfaStateFn {
	if cpClass != rec.Expect {
		if rec.MatchLen == 0 {
			return automata.DoAbort(rec)
		}
		return automata.DoAccept(rec, 0, runBoundaryMerit)
	}
	rec.MatchLen++
	return runOfClass
}
