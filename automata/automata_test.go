package automata

import (
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/testconfig"
	"github.com/npillmayer/schuko/tracing"
)

const (
	classA = iota + 1
	classOther
)

func classOf(r rune) int {
	if r == 'a' {
		return classA
	}
	return classOther
}

// runOfA matches a+ and places a break after the last 'a'.
func runOfA(rec *Recognizer, r rune, cpClass int) NfaStateFn {
	if cpClass != rec.Expect {
		if rec.MatchLen == 0 {
			return DoAbort(rec)
		}
		return DoAccept(rec, 0, -100)
	}
	rec.MatchLen++
	return runOfA
}

func TestRecognizerAccept(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelError)
	//
	rec := NewRecognizer(classA, runOfA)
	for _, r := range "aaa" {
		if p := rec.RuneEvent(r, classOf(r)); p != nil {
			t.Fatalf("expected no penalties while matching, have %v", p)
		}
	}
	if rec.Done() || rec.MatchLength() != 3 {
		t.Errorf("expected active match of length 3, have %d (done=%v)", rec.MatchLength(), rec.Done())
	}
	p := rec.RuneEvent('b', classOf('b'))
	if !rec.Done() {
		t.Fatal("recognizer should be done after reading 'b'")
	}
	if len(p) != 2 || p[1] != -100 {
		t.Errorf("expected penalties [0 -100], have %v", p)
	}
}

func TestRecognizerAbort(t *testing.T) {
	rec := NewRecognizer(classA, runOfA)
	if p := rec.RuneEvent('x', classOf('x')); p != nil {
		t.Errorf("aborted recognizer should not return penalties, have %v", p)
	}
	if !rec.Done() || rec.MatchLength() != 0 {
		t.Errorf("recognizer should have aborted")
	}
}

func TestPublisher(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelError)
	//
	pub := NewRunePublisher()
	pub.SubscribeMe(NewPooledRecognizer(classA, runOfA))
	longest, _ := pub.PublishRuneEvent('a', classA)
	if longest != 1 {
		t.Errorf("expected longest active match to be 1, is %d", longest)
	}
	pub.SubscribeMe(NewPooledRecognizer(classA, runOfA))
	longest, _ = pub.PublishRuneEvent('a', classA)
	if longest != 2 {
		t.Errorf("expected longest active match to be 2, is %d", longest)
	}
	longest, penalties := pub.PublishRuneEvent('b', classOther)
	if longest != 0 {
		t.Errorf("expected no active match, have %d", longest)
	}
	if len(penalties) != 2 || penalties[1] != -200 {
		t.Errorf("expected aggregated penalties [0 -200], have %v", penalties)
	}
	if pub.Len() != 0 {
		t.Errorf("expected all recognizers to be unsubscribed, have %d", pub.Len())
	}
}

func TestPooledRecognizerIsReset(t *testing.T) {
	rec := NewPooledRecognizer(classA, runOfA)
	rec.RuneEvent('a', classA)
	rec.RuneEvent('b', classOther)
	rec.Unsubscribed()
	rec = NewPooledRecognizer(classOther, runOfA)
	if rec.Expect != classOther || rec.MatchLength() != 0 || rec.Done() {
		t.Errorf("expected fresh recognizer for class %d, have %v", classOther, rec)
	}
	if p := rec.RuneEvent('a', classA); p != nil || !rec.Done() {
		t.Errorf("expected recognizer to abort without penalties, have %v", p)
	}
}
