/*
Package bbow builds a "big bag of words" from Unicode text.

# Description

A bag of words is used in text analysis and machine learning. It reduces a
text to a collection of words, each with a count of the number of
occurrences. Downstream consumers, e.g. TF-IDF weighting or classifiers,
query the bag for words and counts.

Words are separated by whitespace (as defined by the Unicode White_Space
property), and consist of a span of one or more consecutive alphabetic
code-points, with no internal punctuation. Leading and trailing
non-alphabetic code-points are removed. A fragment of text with internal
non-alphabetic code-points is dropped as a whole: "b-banana" is neither
"b" nor "banana".

For example, the text

	It ain't over untïl it ain't, over.

contains the sequence of words "It", "over", "untïl", "it", "over".
Words containing uppercase letters are represented by their lowercase
equivalent, so the bag will contain "it" (2), "over" (2) and "untïl" (1).

# Typical Usage

	bag := bbow.New().
	    ExtendFromText(text1).
	    ExtendFromText(text2)
	n := bag.MatchCount("hello")
	for word := range bag.Words() {
	    ...
	}

# Memory

Words already in lowercase are stored as substrings of the text they have
been found in; no bytes are copied. Only words which have to be lowercased
are allocated. A substring keeps its text alive for as long as the bag
references it. Clients ingesting large texts to keep a small bag around
may prefer to create the bag with option OwnedKeys.

# Concurrency

A Bag is not safe for concurrent ingestion. Clients either guard a bag with
a mutex, or ingest into one bag per goroutine and fold the bags with Merge.
Concurrent queries without concurrent ingestion are safe.

# BSD License

Copyright (c) 2017–21, Norbert Pillmayer

All rights reserved.
Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions
are met:

1. Redistributions of source code must retain the above copyright
notice, this list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright
notice, this list of conditions and the following disclaimer in the
documentation and/or other materials provided with the distribution.

3. Neither the name of this software nor the names of its contributors
may be used to endorse or promote products derived from this software
without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS
"AS IS" AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT
LIMITED TO, THE IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR
A PARTICULAR PURPOSE ARE DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT
HOLDER OR CONTRIBUTORS BE LIABLE FOR ANY DIRECT, INDIRECT, INCIDENTAL,
SPECIAL, EXEMPLARY, OR CONSEQUENTIAL DAMAGES (INCLUDING, BUT NOT
LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR SERVICES; LOSS OF USE,
DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER CAUSED AND ON ANY
THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY, OR TORT
(INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.

# Contents

Package bbow holds the Bag type. Splitting text into fragments is done by
a segmenter from sub-package segment, which in turn uses the rule
machinery of sub-package automata. Command bbow (in cmd/bbow) builds bags
from files.
*/
package bbow

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// CT traces to the core-tracer.
func CT() tracing.Trace {
	return gtrace.CoreTracer
}
