/*
Package syllable splits Toki Pona words into glyph keys.

Splitting is a greedy left-to-right scan. At each position it matches either
a bare vowel, or a consonant (including the glides W and J) optionally
followed by a vowel:

   toki     → TO KI
   jan      → JA N
   sinpin   → SI N PI N
   Tomosewi → TO MO SE WI

Matching is case-insensitive. Runes which are neither vowels nor consonants
are skipped and do not show up in the result.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package syllable

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	nena "github.com/skytomo221/sitelen-nena"
	"github.com/skytomo221/sitelen-nena/glyph"
)

// T traces to the core tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

// Split splits a word into glyph keys. The result may be empty if word
// contains no Toki Pona letters.
func Split(word string) []glyph.Key {
	runes := []rune(word)
	keys := make([]glyph.Key, 0, len(runes)/2+1)
	for pos := 0; pos < len(runes); {
		rec := nena.NewPooledRecognizer(int(glyph.ClassForRune(runes[pos])), startSyllable)
		for i := pos; !rec.Done(); i++ {
			if i < len(runes) {
				rec.RuneEvent(runes[i], int(glyph.ClassForRune(runes[i])))
			} else {
				rec.RuneEvent(0, nena.EOT)
			}
		}
		n := rec.MatchLength()
		rec.Release()
		if n == 0 {
			T().Debugf("syllable: skipping %#U in %q", runes[pos], word)
			pos++
			continue
		}
		keys = append(keys, glyph.KeyFor(string(runes[pos:pos+n])))
		pos += n
	}
	T().Debugf("syllable: %q → %v", word, keys)
	return keys
}

// --- Syllable rules ---------------------------------------------------

// (C)V: a vowel, or a consonant or glide
func startSyllable(rec *nena.Recognizer, r rune, cpClass int) nena.NfaStateFn {
	switch glyph.Class(cpClass) {
	case glyph.Vowel:
		return nena.DoAccept(rec)
	case glyph.Consonant, glyph.Glide:
		return nena.DoContinue(rec, finishSyllable)
	}
	return nena.DoAbort(rec)
}

// C(V): optional vowel after a consonant
func finishSyllable(rec *nena.Recognizer, r rune, cpClass int) nena.NfaStateFn {
	if glyph.Class(cpClass) == glyph.Vowel {
		return nena.DoAccept(rec)
	}
	return nena.DoAcceptPrefix(rec)
}
