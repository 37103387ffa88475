package automata

import "fmt"

// UnicodeBreaker is the breaking logic plugged into a segmenter.
//
// For every rune read, a segmenter asks the breaker for the rune's class,
// lets it start the rules triggered by the rune, and then lets every
// active rule proceed with it. Afterwards LongestActiveMatch and Penalties
// reflect the breaker's view of the text read so far.
type UnicodeBreaker interface {
	CodePointClassFor(rune) int
	StartRulesFor(rune, int)
	ProceedWithRune(rune, int)
	LongestActiveMatch() int
	Penalties() []int
}

// NfaStateFn is a step of a rule. It receives the rule's Recognizer, the
// rune read and the rune's code-point class, and returns the step for the
// next rune. Returning nil ends the rule, see DoAccept and DoAbort.
type NfaStateFn func(*Recognizer, rune, int) NfaStateFn

// A Recognizer runs a single rule instance, e.g. a run of fragment runes
// started at a transition from whitespace.
//
// State functions increment MatchLen for every rune they consume. The
// segmenter will not break within the last MatchLen runes while the
// recognizer is active.
type Recognizer struct {
	Expect    int        // code-point class the rule has been started for
	MatchLen  int        // number of runes matched so far
	penalties []int      // set by DoAccept
	step      NfaStateFn // nil when done
}

// NewRecognizer creates a Recognizer for a rule started by a rune of
// class cpClass. Breakers usually call NewPooledRecognizer instead.
func NewRecognizer(cpClass int, step NfaStateFn) *Recognizer {
	return &Recognizer{Expect: cpClass, step: step}
}

func (rec *Recognizer) reset() {
	rec.Expect, rec.MatchLen = 0, 0
	rec.penalties = nil
	rec.step = nil
}

// RuneEvent lets the rule consume r. It returns the penalties of an
// accepted match when the rule ends with this rune, nil otherwise.
func (rec *Recognizer) RuneEvent(r rune, cpClass int) []int {
	if rec.step == nil {
		return nil
	}
	rec.step = rec.step(rec, r, cpClass)
	if rec.step == nil && rec.MatchLen > 0 {
		return rec.penalties
	}
	return nil
}

// Done is true if the rule has either accepted or aborted.
func (rec *Recognizer) Done() bool {
	return rec.step == nil
}

// MatchLength returns MatchLen.
func (rec *Recognizer) MatchLength() int {
	return rec.MatchLen
}

// Unsubscribed hands the Recognizer back to the pool.
func (rec *Recognizer) Unsubscribed() {
	release(rec)
}

func (rec *Recognizer) String() string {
	if rec == nil {
		return "[nil rule]"
	}
	return fmt.Sprintf("[class %d, len %d]", rec.Expect, rec.MatchLen)
}

// DoAbort ends a rule without a match.
func DoAbort(rec *Recognizer) NfaStateFn {
	rec.MatchLen = 0
	return nil
}

// DoAccept ends a rule with a match, including the rune just read.
// penalties are given back to front: penalties[0] is for the position
// after the rune just read, penalties[1] for the position before it,
// and so on.
func DoAccept(rec *Recognizer, penalties ...int) NfaStateFn {
	rec.MatchLen++
	rec.penalties = penalties
	CT().Debugf("rule %v accepted with %v", rec, penalties)
	return nil
}
