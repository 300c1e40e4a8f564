/*
Package dots implements sets of Braille dots and their Unicode cells.

The Unicode block "Braille Patterns" (U+2800…U+28FF) covers all 256
combinations of 8 dots. The offset of a cell from U+2800 is a bit mask, where
bit (d-1) is set for raised dot d:

   ①④      0x01 0x08
   ②⑤      0x02 0x10
   ③⑥      0x04 0x20
   ⑦⑧      0x40 0x80

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package dots

import (
	"fmt"
	"strconv"
	"strings"
)

// Base is the Unicode code-point of the empty Braille cell.
const Base rune = 0x2800

// Set is a set of dot numbers 1…8, represented as a bit mask.
type Set uint8

// Blank is the set without any raised dots.
const Blank Set = 0

// Single dots.
const (
	Dot1 Set = 1 << iota
	Dot2
	Dot3
	Dot4
	Dot5
	Dot6
	Dot7
	Dot8
)

// Of folds dot numbers into a Set. Duplicates are idempotent.
//
// Of panics if a dot number is outside 1…8.
func Of(ds ...int) Set {
	var s Set
	for _, d := range ds {
		if d < 1 || d > 8 {
			panic(fmt.Sprintf("dots: dot number %d out of range 1…8", d))
		}
		s |= 1 << uint(d-1)
	}
	return s
}

// Union returns the set of dots raised in either s or other.
func (s Set) Union(other Set) Set {
	return s | other
}

// Has is true if dot d is raised in s.
func (s Set) Has(d int) bool {
	if d < 1 || d > 8 {
		return false
	}
	return s&(1<<uint(d-1)) != 0
}

// Dots returns the raised dots of s in ascending order.
func (s Set) Dots() []int {
	var ds []int
	for d := 1; d <= 8; d++ {
		if s.Has(d) {
			ds = append(ds, d)
		}
	}
	return ds
}

// Cell returns the Braille cell for s.
func (s Set) Cell() rune {
	return Base + rune(s)
}

// String returns the name of the dot set as used for Unicode character
// names, e.g. "dots-1237". The blank set is named "blank".
func (s Set) String() string {
	if s == Blank {
		return "blank"
	}
	var sb strings.Builder
	sb.WriteString("dots-")
	for _, d := range s.Dots() {
		sb.WriteString(strconv.Itoa(d))
	}
	return sb.String()
}

// Cell returns the Braille cell U+2800 + mask.
//
// Cell panics if mask is outside 0…255.
func Cell(mask int) rune {
	if mask < 0 || mask > 0xff {
		panic(fmt.Sprintf("dots: mask %#x is not a Braille cell offset", mask))
	}
	return Base + rune(mask)
}

// String returns the cells for a sequence of dot sets.
func String(sets ...Set) string {
	var sb strings.Builder
	sb.Grow(len(sets) * 3)
	for _, s := range sets {
		sb.WriteRune(s.Cell())
	}
	return sb.String()
}
