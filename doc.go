/*
Package nena is about writing Toki Pona in Unicode Braille.

Description

sitelen nena ("raised writing") is a Braille script for Toki Pona. Toki Pona
has a tiny phonology: five vowels, nine consonants and a strict (C)V(N)
syllable structure. Every syllable fits into the six dots of a classic Braille
cell, so a word becomes a short sequence of cells, one per syllable.

The script uses the two extra dots of 8-dot Braille (dots 7 and 8) as markers.
The rendered text contains no space characters at all; word boundaries,
unofficial words and proper nouns are recoverable from the marker dots alone.

   ①④
   ②⑤
   ③⑥
   ⑦⑧

BSD License

Copyright (c) 2023, skytomo221

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

Contents

The work is split up into sub-packages, from the bottom up:

   dots      – dot sets and their Unicode Braille cells
   glyph     – glyph keys (letters, syllables, punctuation) and their dot patterns
   syllable  – splitting words into glyph keys
   lexicon   – the dictionary of official words
   token     – splitting text into classified tokens
   braille   – rendering tokens to cells; the top-level Transliterate function

Base package nena provides Recognizers, small automata built from state
functions. Package syllable uses them to match syllables rune by rune.

Recognizers

A Recognizer carries a state function of type NfaStateFn. The function
inspects a single rune together with its class and returns the state function
for the next rune, or nil if the Recognizer is done. A Recognizer which is done
and has a MatchLen > 0 has accepted the first MatchLen runes; otherwise it
has aborted.

Recognizers are short-lived and are therefore pooled.

  rec := nena.NewPooledRecognizer(class, startState)
  defer rec.Release()
  for i := 0; !rec.Done(); i++ {
      rec.RuneEvent(runes[i], classOf(runes[i]))
  }
*/
package nena

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// CT traces to the core-tracer.
func CT() tracing.Trace {
	return gtrace.CoreTracer
}
