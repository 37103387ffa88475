package bbow

import (
	"slices"
	"strings"
	"testing"
	"unsafe"

	"github.com/npillmayer/schuko/testconfig"
	"golang.org/x/text/language"
)

func TestExtendFromText(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	var inputs = []struct {
		text  string
		len   int
		count int
	}{
		{"Hello world.", 2, 2},
		{"Hello, world! This is a test.", 6, 6},
		{"Hello HELLO HeLLo", 1, 3},
		{"Hello    world", 2, 2},
		{"b b b-banana b", 1, 3},
		{"Can't stop this! Stop!", 2, 3},
		{"", 0, 0},
		{" \t\n ", 0, 0},
		{"123 456 !@#", 0, 0},
		{"It ain't over untïl it ain't, over.", 3, 5},
		{"«Grüße» (aus) „Köln“…", 3, 3},
		{"x1 1x a1b", 1, 2},
	}
	for i, input := range inputs {
		bag := New().ExtendFromText(input.text)
		if bag.Len() != input.len {
			t.Errorf("test #%d: expected Len()=%d for %q, have %d", i, input.len, input.text, bag.Len())
		}
		if bag.Count() != input.count {
			t.Errorf("test #%d: expected Count()=%d for %q, have %d", i, input.count, input.text, bag.Count())
		}
		if bag.IsEmpty() != (bag.Len() == 0) {
			t.Errorf("test #%d: IsEmpty() disagrees with Len()", i)
		}
	}
}

func TestMatchCount(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	var inputs = []struct {
		text    string
		keyword string
		count   int
	}{
		{"Hello world.", "hello", 1},
		{"Hello world.", "world", 1},
		{"b b b-banana b", "b", 3},
		{"b b b-banana b", "banana", 0},
		{"b b b-banana b", "b-banana", 0},
		{"apple apple banana", "apple", 2},
		{"apple, apple! banana.", "banana", 1},
		{"Apple apple BANANA", "apple", 2},
		{"Apple apple BANANA", "banana", 1},
		{"Apple apple BANANA", "orange", 0},
		{"Apple apple BANANA", "Apple", 0},
		{"Apple apple BANANA", "BANANA", 0},
		{"apple apple banana", "apple!", 0},
		{"apple apple banana", "banana1", 0},
		{"apple apple banana", "", 0},
		{"123 456 !@#", "123", 0},
		{"123 456 !@#", "!@#", 0},
		{"", "apple", 0},
		{"Can't stop this! Stop!", "can", 0},
		{"Can't stop this! Stop!", "stop", 2},
	}
	for i, input := range inputs {
		bag := New().ExtendFromText(input.text)
		if n := bag.MatchCount(input.keyword); n != input.count {
			t.Errorf("test #%d: expected MatchCount(%q)=%d for %q, have %d",
				i, input.keyword, input.count, input.text, n)
		}
	}
}

func TestUnicodeWords(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	var inputs = []struct {
		text    string
		keyword string
		count   int
	}{
		{"Straße STRASSE straße", "straße", 2},
		{"Straße STRASSE straße", "strasse", 1},
		{"ÜBER über Über", "über", 3},
		{"हिंदी हिंदी", "हिंदी", 2},
		{"Chapter Ⅻ.", "ⅻ", 1},
		{"İstanbul", "istanbul", 1},
		{"nai\u0308ve", "na\u00efve", 0},
		{"ab\xffcd ab", "ab", 1},
	}
	for i, input := range inputs {
		bag := New().ExtendFromText(input.text)
		if n := bag.MatchCount(input.keyword); n != input.count {
			t.Errorf("test #%d: expected MatchCount(%q)=%d for %q, have %d",
				i, input.keyword, input.count, input.text, n)
		}
	}
}

func TestKeysAreLowercaseWords(t *testing.T) {
	text := "ΟΔΟΣ Οδός ΣΊΣΥΦΟΣ ǅemal İZMİR Ⅻ Hello, WORLD! ﬁne"
	bag := New().ExtendFromText(text)
	if bag.IsEmpty() {
		t.Fatal("expected bag to contain words")
	}
	for word, count := range bag.All() {
		if !isWord(word) {
			t.Errorf("key %q is not a word", word)
		}
		if needsLowercase(word) {
			t.Errorf("key %q is not lowercase", word)
		}
		if count < 1 {
			t.Errorf("key %q has count %d", word, count)
		}
	}
}

func TestLanguage(t *testing.T) {
	bag := New(WithLanguage(language.Turkish)).ExtendFromText("ISPARTA İzmir")
	if n := bag.MatchCount("ısparta"); n != 1 {
		t.Errorf("expected Turkish dotless i in 'ısparta', have count %d", n)
	}
	if n := bag.MatchCount("izmir"); n != 1 {
		t.Errorf("expected Turkish dotted i in 'izmir', have count %d", n)
	}
	bag = New().ExtendFromText("ISPARTA")
	if n := bag.MatchCount("isparta"); n != 1 {
		t.Errorf("expected language-neutral 'isparta', have count %d", n)
	}
}

func TestNFC(t *testing.T) {
	decomposed := "nai\u0308ve Nai\u0308ve na\u00efve"
	bag := New(WithNFC()).ExtendFromText(decomposed)
	if bag.Len() != 1 || bag.MatchCount("na\u00efve") != 3 {
		t.Errorf("expected 3 x 'naïve' with NFC, have %v", bag)
	}
	bag = New().ExtendFromText(decomposed)
	if bag.Len() != 1 || bag.MatchCount("na\u00efve") != 1 {
		t.Errorf("expected decomposed fragments to be dropped without NFC, have %v", bag)
	}
}

func TestWordsOrdered(t *testing.T) {
	bag := New().ExtendFromText("zebra Apple mango äpfel apple Zebra")
	words := slices.Collect(bag.Words())
	expected := []string{"apple", "mango", "zebra", "äpfel"}
	if !slices.Equal(words, expected) {
		t.Errorf("expected words %q, have %q", expected, words)
	}
	again := slices.Collect(bag.Words()) // restartable
	if !slices.Equal(words, again) {
		t.Errorf("second iteration differs: %q", again)
	}
	if len(words) != bag.Len() {
		t.Errorf("expected %d words, have %d", bag.Len(), len(words))
	}
	for word := range bag.Words() {
		if word == "mango" {
			break
		}
	}
}

func TestCountIsSumOfMatches(t *testing.T) {
	texts := []string{
		"The quick brown fox jumps over the lazy dog. The dog sleeps.",
		"Can't stop this! Stop!",
		"¿Qué? ¡Sí! Sí, sí, SÍ.",
	}
	for _, text := range texts {
		bag := New().ExtendFromText(text)
		sum, n := 0, 0
		for word := range bag.Words() {
			sum += bag.MatchCount(word)
			n++
		}
		if sum != bag.Count() {
			t.Errorf("sum of matches %d differs from Count()=%d for %q", sum, bag.Count(), text)
		}
		if n != bag.Len() {
			t.Errorf("number of words %d differs from Len()=%d for %q", n, bag.Len(), text)
		}
	}
}

func TestAdditive(t *testing.T) {
	text := "One fish, two fish. Red fish, blue fish!"
	once := New().ExtendFromText(text)
	twice := New().ExtendFromText(text).ExtendFromText(text)
	if once.Len() != twice.Len() {
		t.Errorf("expected same words, have %d and %d", once.Len(), twice.Len())
	}
	for word, count := range once.All() {
		if n := twice.MatchCount(word); n != 2*count {
			t.Errorf("expected %q to be counted %d times, have %d", word, 2*count, n)
		}
	}
	if twice.Count() != 2*once.Count() {
		t.Errorf("expected Count()=%d, have %d", 2*once.Count(), twice.Count())
	}
}

func TestOrderIndependence(t *testing.T) {
	t1 := "It was the best of times, it was the worst of times."
	t2 := "It was the age of wisdom; it was the age of foolishness!"
	a := New().ExtendFromText(t1).ExtendFromText(t2)
	b := New().ExtendFromText(t2).ExtendFromText(t1)
	c := New().ExtendFromText(t1 + " " + t2)
	if !sameBags(a, b) || !sameBags(a, c) {
		t.Errorf("expected identical bags, have %v, %v, %v", a, b, c)
	}
}

func TestZeroValue(t *testing.T) {
	var bag Bag
	if !bag.IsEmpty() || bag.Count() != 0 || bag.MatchCount("word") != 0 {
		t.Errorf("expected zero bag to be empty")
	}
	for range bag.Words() {
		t.Errorf("zero bag should not contain words")
	}
	bag.ExtendFromText("word Word")
	if bag.MatchCount("word") != 2 {
		t.Errorf("expected zero bag to be usable, have %v", &bag)
	}
}

func TestMerge(t *testing.T) {
	a := New().ExtendFromText("red green")
	b := New().ExtendFromText("green blue blue")
	a.Merge(b)
	var expected = map[string]int{"red": 1, "green": 2, "blue": 2}
	for word, count := range expected {
		if n := a.MatchCount(word); n != count {
			t.Errorf("expected %q to be counted %d times, have %d", word, count, n)
		}
	}
	if a.Count() != 5 || a.Len() != 3 {
		t.Errorf("expected len=3, count=5, have %v", a)
	}
	if b.Count() != 3 {
		t.Errorf("merge should not change its argument, have %v", b)
	}
	a.Merge(a)
	if a.MatchCount("green") != 4 || a.Count() != 10 {
		t.Errorf("expected merge with itself to double counts, have %v", a)
	}
	a.Merge(nil)
	if a.Count() != 10 {
		t.Errorf("merge with nil should not change bag, have %v", a)
	}
}

func TestMergeEqualsExtend(t *testing.T) {
	t1, t2 := "To be, or not to be", "That is the question"
	merged := New().ExtendFromText(t1).Merge(New().ExtendFromText(t2))
	extended := New().ExtendFromText(t1).ExtendFromText(t2)
	if !sameBags(merged, extended) {
		t.Errorf("expected merged bag %v to equal extended bag %v", merged, extended)
	}
}

func TestZeroCopy(t *testing.T) {
	text := strings.Repeat("alpha Beta gamma ", 3)
	bag := New().ExtendFromText(text)
	for word := range bag.Words() {
		borrowed := within(word, text)
		if word == "beta" && borrowed {
			t.Errorf("lowercased word %q should not reference text", word)
		}
		if word != "beta" && !borrowed {
			t.Errorf("lowercase word %q should reference text", word)
		}
	}
	bag = New(OwnedKeys()).ExtendFromText(text)
	for word := range bag.Words() {
		if within(word, text) {
			t.Errorf("word %q should not reference text with OwnedKeys()", word)
		}
	}
	if bag.MatchCount("alpha") != 3 {
		t.Errorf("expected 'alpha' 3 times, have %d", bag.MatchCount("alpha"))
	}
}

func TestString(t *testing.T) {
	bag := New().ExtendFromText("Can't stop this! Stop!")
	if s := bag.String(); s != "bbow[len=2, count=3]" {
		t.Errorf("unexpected string representation %q", s)
	}
}

// --- Helpers ----------------------------------------------------------

func sameBags(a, b *Bag) bool {
	if a.Len() != b.Len() || a.Count() != b.Count() {
		return false
	}
	for word, count := range a.All() {
		if b.MatchCount(word) != count {
			return false
		}
	}
	return true
}

// within is true if the bytes of word are part of the bytes of text.
func within(word, text string) bool {
	w := uintptr(unsafe.Pointer(unsafe.StringData(word)))
	start := uintptr(unsafe.Pointer(unsafe.StringData(text)))
	return w >= start && w < start+uintptr(len(text))
}
