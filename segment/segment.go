/*
Package segment is about splitting Unicode text into segments.

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

# Typical Usage

Segmenter provides an interface similar to bufio.Scanner for reading
Unicode text. Similar to Scanner's Scan() function, successive calls to a
segmenter's Next() method will step through the segments of the text.
Clients are able to get the runes of the segment by calling Bytes() or
Text(), or its position within the input by calling Span(). Unlike
Scanner, segmenters are calculating a 'penalty' for breaking
at this segment. Penalties are numeric values and reflect costs, where
negative values are to be interpreted as merits.

Clients instantiate UnicodeBreaker objects and use them as the
breaking engines for a segmenter.

	segmenter := segment.NewSegmenter(breaker1, breaker2)
	segmenter.Init(...)
	for segmenter.Next() {
		// do something with segmenter.Text() or segmenter.Span()
	}

Without breakers, a segmenter uses a WhitespaceBreaker, splitting text
into fragments and whitespace runs.

# How it works

The segmenter collects runes, together with the penalty for breaking after
each of them, in a queue. For every rune read, the breakers will fire up
the rules starting with this rune and let all active rules proceed with it.
Rules add their penalties to the runes they matched. As soon as a break
opportunity is found which is not covered by an active match, the front
of the queue up to this position is withdrawn as a segment.
*/
package segment

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/npillmayer/bbow/automata"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// CT traces to the core-tracer.
func CT() tracing.Trace {
	return gtrace.CoreTracer
}

// A Segmenter receives a sequence of code-points from an io.RuneReader and
// segments it into smaller parts, called segments.
//
// The specification of a segment is defined by breakers of type
// automata.UnicodeBreaker; the default breaks the input at whitespace.
type Segmenter struct {
	atoms              []atom                    // runes read, but not yet part of a segment
	reader             io.RuneReader             // where we get the next runes from
	breakers           []automata.UnicodeBreaker // our work horses
	segLen             int                       // atoms[:segLen] are the most recent segment
	buffer             *bytes.Buffer             // UTF-8 of the most recent segment, filled on demand
	encoded            bool                      // is buffer filled?
	lastPenalty        int                       // penalty at last break opportunity
	pos                int64                     // byte position of atoms[segLen]
	from, to           int64                     // byte span of the active segment
	longestActiveMatch int                       // no break may occur within this suffix of atoms
	err                error
	atEOF              bool
}

// atom is a rune read, together with its encoded length and the
// aggregated penalty for breaking after it.
type atom struct {
	r       rune
	size    int
	penalty int
}

const startBufSize = 256 // Size of initial allocation for buffer.

// ErrNotInitialized is returned if a segmenter's Next-function is called
// without first setting an input source.
var ErrNotInitialized = errors.New("segmenter not initialized; must call Init(...) first")

// NewSegmenter creates a new Segmenter by providing breaking logic (UnicodeBreaker).
// Clients may provide more than one UnicodeBreaker; their penalties add up.
// Specifying no UnicodeBreaker results in getting a WhitespaceBreaker.
//
// Before using newly created segmenters, clients will have to call Init(...)
// on them, i.e. initialize them for a rune reader.
func NewSegmenter(breakers ...automata.UnicodeBreaker) *Segmenter {
	s := &Segmenter{}
	if len(breakers) == 0 {
		breakers = []automata.UnicodeBreaker{NewWhitespaceBreaker()}
	}
	s.breakers = breakers
	return s
}

// Init initializes a Segmenter with an io.RuneReader to read from.
// s is either a newly created segmenter to be initialized, or we may
// re-initialize a segmenter already in use.
func (s *Segmenter) Init(reader io.RuneReader) {
	if s.reader != nil && !s.atEOF {
		s.finishBreakers() // drop rules still active for the previous input
	}
	if reader == nil {
		reader = strings.NewReader("")
	}
	s.reader = reader
	if s.buffer == nil {
		s.buffer = bytes.NewBuffer(make([]byte, 0, startBufSize))
	} else {
		s.buffer.Reset()
	}
	s.atoms = s.atoms[:0]
	s.segLen, s.encoded = 0, false
	s.lastPenalty = 0
	s.pos, s.from, s.to = 0, 0, 0
	s.longestActiveMatch = 0
	s.err = nil
	s.atEOF = false
}

// Err returns the first non-EOF error that was encountered by the
// Segmenter.
func (s *Segmenter) Err() error {
	if s.err == io.EOF {
		return nil
	}
	return s.err
}

// setErr records the first error encountered.
func (s *Segmenter) setErr(err error) {
	if s.err == nil || s.err == io.EOF {
		s.err = err
	}
}

// Neutral positions and penalties >= InfinitePenalty are not break
// opportunities.
func isPossibleBreak(p int) bool {
	return p != 0 && p < automata.InfinitePenalty
}

// Next advances the Segmenter to the next segment, which will then be
// available through the Bytes(), Text() or Span() methods. It returns false
// when the segmenting stops, either by reaching the end of the input or an
// error. After Next() returns false, the Err() method will return any error
// that occurred during reading, except for io.EOF.
func (s *Segmenter) Next() bool {
	if s.reader == nil {
		s.setErr(ErrNotInitialized)
		return false
	}
	s.dropSegment()
	for {
		if pos := s.findBreakOpportunity(); pos >= 0 {
			s.cutSegment(pos)
			CT().P("penalty", strconv.Itoa(s.lastPenalty)).Debugf("Next() = [%d:%d]", s.from, s.to)
			return true
		}
		if s.atEOF {
			if len(s.atoms) == 0 {
				return false
			}
			s.cutSegment(len(s.atoms) - 1) // end of text is a mandatory break
			s.lastPenalty = automata.InfiniteMerits
			CT().P("penalty", strconv.Itoa(s.lastPenalty)).Debugf("Next() = [%d:%d]", s.from, s.to)
			return true
		}
		if err := s.readRune(); err != nil {
			s.setErr(err)
			return false
		}
	}
}

// Bytes returns the most recent segment generated by a call to Next().
// The underlying array may point to data that will be overwritten by a
// subsequent call to Next(). The bytes are encoded on the first call
// for a segment; clients interested in positions only call Span().
func (s *Segmenter) Bytes() []byte {
	if s.segLen == 0 {
		return nil
	}
	if !s.encoded {
		s.buffer.Reset()
		for _, a := range s.atoms[:s.segLen] {
			s.buffer.WriteRune(a.r)
		}
		s.encoded = true
	}
	return s.buffer.Bytes()
}

// Text returns the most recent segment generated by a call to Next()
// as a newly allocated string holding its bytes.
func (s *Segmenter) Text() string {
	return string(s.Bytes())
}

// Span returns the byte offsets of the most recent segment within the input.
// If the input has been read from a string, input[from:to] is the segment
// without any copying of bytes. For input containing invalid UTF-8, the span
// still covers the original bytes, whereas Bytes() will contain U+FFFD.
func (s *Segmenter) Span() (from, to int64) {
	return s.from, s.to
}

// Penalty returns the penalty for breaking after the most recent segment.
func (s *Segmenter) Penalty() int {
	return s.lastPenalty
}

func (s *Segmenter) readRune() error {
	r, sz, err := s.reader.ReadRune()
	if err == io.EOF {
		s.atEOF = true
		s.finishBreakers()
		return nil
	} else if err != nil {
		CT().Errorf("ReadRune() error: %s", err)
		s.atEOF = true
		return err
	}
	s.atoms = append(s.atoms, atom{r: r, size: sz})
	s.longestActiveMatch = 0
	for _, breaker := range s.breakers {
		cpClass := breaker.CodePointClassFor(r)
		breaker.StartRulesFor(r, cpClass)
		breaker.ProceedWithRune(r, cpClass)
		if breaker.LongestActiveMatch() > s.longestActiveMatch {
			s.longestActiveMatch = breaker.LongestActiveMatch()
		}
		s.insertPenalties(breaker.Penalties())
	}
	return nil
}

// finishBreakers signals end of text to all breakers. Penalties returned
// are not needed, as end of text is a mandatory break anyway.
func (s *Segmenter) finishBreakers() {
	for _, breaker := range s.breakers {
		breaker.ProceedWithRune(automata.EOT, breaker.CodePointClassFor(automata.EOT))
	}
	s.longestActiveMatch = 0
}

// insertPenalties adds penalties to the atoms at the back of the queue.
// penalties[0] is for the position after the last rune read.
func (s *Segmenter) insertPenalties(penalties []int) {
	l := len(s.atoms)
	if len(penalties) > l {
		penalties = penalties[:l] // drop penalties for runes already withdrawn
	}
	for i, p := range penalties {
		a := &s.atoms[l-1-i]
		a.penalty = bounded(a.penalty + p)
	}
}

// findBreakOpportunity searches for the first break opportunity not
// covered by an active match. Returns -1 if there is none.
func (s *Segmenter) findBreakOpportunity() int {
	settled := len(s.atoms) - s.longestActiveMatch
	for i := 0; i < settled; i++ {
		if isPossibleBreak(s.atoms[i].penalty) {
			return i
		}
	}
	return -1
}

// cutSegment makes atoms[0…pos] the active segment. The atoms stay in
// the queue until the next call to Next.
func (s *Segmenter) cutSegment(pos int) {
	seglen := int64(0)
	for _, a := range s.atoms[:pos+1] {
		seglen += int64(a.size)
	}
	s.segLen = pos + 1
	s.lastPenalty = s.atoms[pos].penalty
	s.from = s.pos
	s.to = s.pos + seglen
	s.pos = s.to
	s.printQ()
}

// dropSegment withdraws the atoms of the active segment from the queue.
func (s *Segmenter) dropSegment() {
	if s.segLen > 0 {
		n := copy(s.atoms, s.atoms[s.segLen:])
		s.atoms = s.atoms[:n]
	}
	s.segLen, s.encoded = 0, false
}

// --- Helpers ----------------------------------------------------------

// Debugging helper. Print the content of the current queue to the debug log.
func (s *Segmenter) printQ() {
	if CT().GetTraceLevel() != tracing.LevelDebug {
		return
	}
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Q #%d: ", len(s.atoms)-s.segLen))
	for _, a := range s.atoms[s.segLen:] {
		sb.WriteString(fmt.Sprintf(" <- [%#U|%d]", a.r, a.penalty))
	}
	sb.WriteString(" .")
	CT().Debugf(sb.String())
}

func bounded(p int) int {
	if p > automata.InfinitePenalty {
		p = automata.InfinitePenalty
	} else if p < automata.InfiniteMerits {
		p = automata.InfiniteMerits
	}
	return p
}
