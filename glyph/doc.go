/*
Package glyph defines glyph keys and their Braille dot patterns.

A glyph key is the logical identity of a letter, a syllable or a punctuation
mark, before it is turned into dots. Toki Pona letters map to six-dot
patterns, where consonant-vowel syllables are the union of the consonant's and
the vowel's dots:

   T  = ⠄ (3)      O = ⠊ (2 4)     TO = ⠎ (2 3 4)

The glides W and J reuse the patterns of U and I, but their syllables have
patterns of their own.

Letter patterns only ever use dots 1 to 6. Dots 7 and 8 are reserved for
markers (see package braille).

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package glyph

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to the core tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}
