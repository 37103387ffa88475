package bbow

import (
	"fmt"
	"iter"
	"strings"

	"github.com/emirpasic/gods/maps/treemap"
	"github.com/npillmayer/bbow/segment"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// Bag is a big bag of words. Each key in the bag is a word of some
// text, the corresponding value is the count of occurrences.
//
// Keys are non-empty, consist of alphabetic code-points only and are
// lowercase. Counts are at least 1.
//
// The zero value is an empty bag ready to use. Bags are created and
// extended in builder style:
//
//	bag := bbow.New().ExtendFromText("Hello world.")
type Bag struct {
	words     *treemap.Map       // word → *entry, ordered by code-point
	total     int                // sum of all counts
	segmenter *segment.Segmenter // splits text into fragments
	caser     *cases.Caser       // lowercasing for lang
	lang      language.Tag       // language for lowercasing
	nfc       bool               // compose fragments to NFC
	ownedKeys bool               // never reference ingested text
}

// entry holds the count of a word. Counts are incremented in place, which
// keeps the tree from replacing a stored key with the storage of a later
// occurrence.
type entry struct {
	count int
}

// New creates an empty bag of words.
func New(opts ...Option) *Bag {
	b := &Bag{}
	for _, opt := range opts {
		opt(b)
	}
	b.init()
	return b
}

func (b *Bag) init() {
	if b.words != nil {
		return
	}
	b.words = treemap.NewWithStringComparator()
	b.segmenter = segment.NewSegmenter(segment.NewWhitespaceBreaker())
	caser := cases.Lower(b.lang)
	b.caser = &caser
}

// ExtendFromText parses text and adds the sequence of words contained in
// it to this bag. Any text is accepted; text without words leaves the bag
// unchanged.
//
// This is a builder method: calls can be chained to build up a bag
// covering multiple texts. ExtendFromText returns the receiver.
func (b *Bag) ExtendFromText(text string) *Bag {
	b.init()
	n, total := b.Len(), b.total
	b.segmenter.Init(strings.NewReader(text))
	for b.segmenter.Next() {
		from, to := b.segmenter.Span()
		b.add(text[from:to])
	}
	CT().Debugf("bbow: %d bytes of text added %d words, %d of them new",
		len(text), b.total-total, b.Len()-n)
	return b
}

// add extracts the word from a fragment and counts it.
func (b *Bag) add(fragment string) {
	owned := false
	if b.nfc && !norm.NFC.IsNormalString(fragment) {
		fragment = norm.NFC.String(fragment)
		owned = true
	}
	word := trimFragment(fragment)
	if !isWord(word) {
		return
	}
	if needsLowercase(word) {
		word = b.lowercase(word)
		owned = true
	}
	if e, found := b.words.Get(word); found {
		e.(*entry).count++
	} else {
		if b.ownedKeys && !owned {
			word = strings.Clone(word)
		}
		b.words.Put(word, &entry{count: 1})
	}
	b.total++
}

// lowercase uses full Unicode lowercasing, e.g. for a Greek final sigma.
// If the full mapping leaves the domain of words, as it does for U+0130
// outside of Turkic languages, we fall back to simple per-rune mapping.
func (b *Bag) lowercase(word string) string {
	lower := b.caser.String(word)
	if !isWord(lower) || needsLowercase(lower) {
		CT().Debugf("bbow: full lowercase mapping of %q is not a word: %q", word, lower)
		lower = strings.ToLower(word)
	}
	return lower
}

// MatchCount reports the number of occurrences of keyword in this bag.
// The keyword should be lowercase and not contain punctuation, as words
// in the bag do. Otherwise the keyword will not match and 0 is returned.
// MatchCount does not normalize the keyword.
func (b *Bag) MatchCount(keyword string) int {
	if !isWord(keyword) || b.words == nil {
		return 0
	}
	if e, found := b.words.Get(keyword); found {
		return e.(*entry).count
	}
	return 0
}

// Words returns the distinct words of the bag in ascending order by
// code-point. The sequence may be iterated more than once; it must not
// be iterated while the bag is being extended.
func (b *Bag) Words() iter.Seq[string] {
	return func(yield func(string) bool) {
		for word := range b.All() {
			if !yield(word) {
				return
			}
		}
	}
}

// All returns the words of the bag together with their counts, in
// ascending order by code-point.
func (b *Bag) All() iter.Seq2[string, int] {
	return func(yield func(string, int) bool) {
		if b.words == nil {
			return
		}
		it := b.words.Iterator()
		for it.Next() {
			if !yield(it.Key().(string), it.Value().(*entry).count) {
				return
			}
		}
	}
}

// Count returns the overall number of words contained in this bag:
// multiple occurrences are considered separate.
func (b *Bag) Count() int {
	return b.total
}

// Len returns the number of unique words contained in this bag,
// not considering the number of occurrences.
func (b *Bag) Len() int {
	if b.words == nil {
		return 0
	}
	return b.words.Size()
}

// IsEmpty is true if the bag contains no words.
func (b *Bag) IsEmpty() bool {
	return b.Len() == 0
}

// Merge folds the counts of other into b and returns b.
// Words new to b are stored as they are stored in other, unless b has
// been created with OwnedKeys.
func (b *Bag) Merge(other *Bag) *Bag {
	b.init()
	if other == nil || other.words == nil {
		return b
	}
	type wordCount struct {
		word  string
		count int
	}
	var counts []wordCount // other may be b
	for word, count := range other.All() {
		counts = append(counts, wordCount{word, count})
	}
	for _, wc := range counts {
		if e, found := b.words.Get(wc.word); found {
			e.(*entry).count += wc.count
		} else {
			word := wc.word
			if b.ownedKeys {
				word = strings.Clone(word)
			}
			b.words.Put(word, &entry{count: wc.count})
		}
		b.total += wc.count
	}
	return b
}

// String is a short representation for debugging purposes.
func (b *Bag) String() string {
	return fmt.Sprintf("bbow[len=%d, count=%d]", b.Len(), b.Count())
}
