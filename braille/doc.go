/*
Package braille renders Toki Pona text as Unicode Braille.

Every token of the input (see package token) is rendered on its own, and the
results are concatenated. White space is not rendered; instead, dots 7 and 8
mark the structure of the text:

Official words are rendered from their dictionary keys. A one-syllable word is
a single cell without markers. A two-syllable word carries dot 7 on its first
cell and dot 8 on its last cell.

Unofficial words are rendered syllable by syllable. A one-syllable unofficial
word carries both dots 7 and 8; longer ones are marked like official words.

Proper nouns are enclosed in the cells ⢸ (dots 4 5 6 8) and ⡇ (dots 1 2 3 7),
and each of their syllables carries dots 7 and 8.

Punctuation marks are followed by a blank cell.

Any other token is copied to the output as is.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package braille

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// CT traces to the core-tracer.
func CT() tracing.Trace {
	return gtrace.CoreTracer
}
