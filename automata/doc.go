/*
Package automata provides the rule machinery of Unicode breakers.

A breaking rule is a small finite state automaton over code-point classes.
Every state is a function (NfaStateFn) which consumes a single rune and
returns the state for the next one, or nil when the rule has accepted or
aborted. The rule bbow uses to find fragments of text is

	Fragment+ ÷ Space
	Space+ ÷ Fragment

i.e. a run of runes of one class ends with a break before the first rune
of the other class. A single state function implements it: it counts runes
of the class it has been started for and accepts at the first rune of
another class.

# Rules and Recognizers

A Recognizer carries one running instance of a rule. Breakers start a
Recognizer whenever a rune may begin a match, e.g. at every change of
class, and subscribe it to a RunePublisher. The publisher hands every
rune read to its active subscribers, adds up the penalties of those
accepting with it, and drops the ones that are done. Recognizers are
short-lived and recycled through a pool.

# Penalties

Breaks are weighted, not boolean. Negative values denote a merit:

  - -1000 (InfiniteMerits) or less is a mandatory break
  - 1000 (InfinitePenalty) or more inhibits a break
  - 0 is neutral and not a break opportunity

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
*/
package automata

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
)

// Clients which did not configure tracing get errors logged by the
// standard logger.
func init() {
	if gtrace.CoreTracer == nil {
		gtrace.CoreTracer = gologadapter.New()
		gtrace.CoreTracer.SetTraceLevel(tracing.LevelError)
	}
}

// CT traces to the core-tracer.
func CT() tracing.Trace {
	return gtrace.CoreTracer
}

// We define constants for flagging break points as infinitely bad and
// infinitely good, respectively.
const (
	InfinitePenalty = 1000
	InfiniteMerits  = -1000
)

// EOT is a pseudo code-point signalling the end of text to breakers.
// It is never produced by a rune reader.
const EOT rune = -1
