package bbow

import (
	"golang.org/x/text/language"
)

// Option configures a Bag. Options are passed to New.
type Option func(*Bag)

// WithLanguage sets the language used for lowercasing words. The default is
// language.Und, i.e. language-neutral lowercasing. Use this for languages
// with special casing rules, e.g. Turkish, where "I" lowercases to "ı".
//
// The language does not influence the order of words, which is always
// by code-point.
func WithLanguage(tag language.Tag) Option {
	return func(b *Bag) {
		b.lang = tag
	}
}

// WithNFC lets the bag compose every fragment to Unicode normalization
// form NFC before extracting a word. Decomposed text, e.g. "i" followed by
// U+0308 COMBINING DIAERESIS, then counts as the same word as its
// precomposed form. Without this option, a combining mark which is not
// alphabetic disqualifies its fragment.
func WithNFC() Option {
	return func(b *Bag) {
		b.nfc = true
	}
}

// OwnedKeys lets the bag copy every new word instead of referencing the
// text it has been found in. This trades allocations for not keeping
// ingested texts alive.
func OwnedKeys() Option {
	return func(b *Bag) {
		b.ownedKeys = true
	}
}
