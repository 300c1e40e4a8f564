package glyph

import (
	"unicode"

	"golang.org/x/text/unicode/rangetable"
)

// Class is a rune class for splitting words into syllables.
// Must be convertable to int.
type Class int

// Rune classes for syllable matching. Other is the class of all runes which
// cannot be part of a glyph key.
const (
	Other Class = iota
	Vowel
	Consonant
	Glide
	Punctuation
)

var classNames = [...]string{"Other", "Vowel", "Consonant", "Glide", "Punctuation"}

func (c Class) String() string {
	if c < 0 || int(c) >= len(classNames) {
		return "Class(?)"
	}
	return classNames[c]
}

// Range tables for rune classes. Letters are included in upper and lower case.
// Clients can check with unicode.Is(..., rune)
var (
	Vowels       = rangetable.New('a', 'e', 'i', 'o', 'u', 'A', 'E', 'I', 'O', 'U')
	Consonants   = rangetable.New('p', 't', 'k', 's', 'm', 'n', 'l', 'P', 'T', 'K', 'S', 'M', 'N', 'L')
	Glides       = rangetable.New('w', 'j', 'W', 'J')
	Punctuations = rangetable.New('.', ',', '?', '!')
)

var rangeFromClass = [...]*unicode.RangeTable{
	Vowel:       Vowels,
	Consonant:   Consonants,
	Glide:       Glides,
	Punctuation: Punctuations,
}

// ClassForRune gets the glyph class for a Unicode code-point.
func ClassForRune(r rune) Class {
	for c := Vowel; c <= Punctuation; c++ {
		if unicode.Is(rangeFromClass[c], r) {
			return c
		}
	}
	return Other
}

// IsPunctuation is true if r is one of . , ? !
func IsPunctuation(r rune) bool {
	return unicode.Is(Punctuations, r)
}
