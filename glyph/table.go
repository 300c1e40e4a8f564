package glyph

import (
	"fmt"
	"sort"
	"sync"

	"github.com/skytomo221/sitelen-nena/dots"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Key identifies a glyph: a vowel ("A"), a consonant ("N"), a syllable
// ("TO", "JA") or a punctuation mark (".").
type Key string

var vowels = []struct {
	key     Key
	pattern dots.Set
}{
	{"A", dots.Of(1)},
	{"E", dots.Of(1, 2, 4)},
	{"I", dots.Of(1, 2)},
	{"O", dots.Of(2, 4)},
	{"U", dots.Of(1, 4)},
}

var consonants = []struct {
	key     Key
	pattern dots.Set
}{
	{"P", dots.Of(6)},
	{"T", dots.Of(3)},
	{"K", dots.Of(5)},
	{"S", dots.Of(3, 5, 6)},
	{"M", dots.Of(3, 6)},
	{"N", dots.Of(3, 5)},
	{"L", dots.Of(5, 6)},
}

// Glide syllables are not composed from their parts.
var glides = map[Key]dots.Set{
	"WA": dots.Of(3),
	"WE": dots.Of(2, 3, 5),
	"WI": dots.Of(2, 3),
	"WO": dots.Of(2, 5),
	"WU": dots.Of(3, 6),
	"JA": dots.Of(3, 4),
	"JE": dots.Of(2, 3, 4, 5),
	"JI": dots.Of(2, 3, 4),
	"JO": dots.Of(2, 4, 5),
	"JU": dots.Of(3, 4, 6),
}

var punctuation = map[Key]dots.Set{
	".": dots.Of(2, 5, 6),
	",": dots.Of(5, 6),
	"?": dots.Of(2, 6),
	"!": dots.Of(2, 3, 5),
}

// letterDots are the dots available for letter patterns; 7 and 8 are markers.
var letterDots = dots.Of(1, 2, 3, 4, 5, 6)

var table map[Key]dots.Set

var setupOnce sync.Once

// Setup creates the glyph table. Clients usually do not have to call it, as
// it is called on first use of the table.
// (Concurrency-safe).
func Setup() {
	setupOnce.Do(setupTable)
}

func setupTable() {
	t := make(map[Key]dots.Set, 5+7+35+2+10+4)
	for _, v := range vowels {
		t[v.key] = v.pattern
	}
	for _, c := range consonants {
		t[c.key] = c.pattern
		for _, v := range vowels {
			t[c.key+v.key] = c.pattern.Union(v.pattern)
		}
	}
	t["W"] = t["U"]
	t["J"] = t["I"]
	for k, p := range glides {
		t[k] = p
	}
	for k, p := range punctuation {
		t[k] = p
	}
	for k, p := range t {
		if p == dots.Blank || p.Union(letterDots) != letterDots {
			panic(fmt.Sprintf("glyph: pattern %s for key %q is not a letter pattern", p, k))
		}
	}
	table = t
	T().Infof("glyph table set up with %d keys", len(table))
}

// Pattern returns the dot pattern for a glyph key.
//
// A key without a pattern is a defect of the static tables, and Pattern will
// panic in this case.
func Pattern(k Key) dots.Set {
	p, ok := Lookup(k)
	if !ok {
		panic(fmt.Sprintf("glyph: no dot pattern for key %q", k))
	}
	return p
}

// Lookup returns the dot pattern for a glyph key, if present.
func Lookup(k Key) (dots.Set, bool) {
	Setup()
	p, ok := table[k]
	return p, ok
}

// Keys returns all glyph keys in lexical order.
func Keys() []Key {
	Setup()
	keys := make([]Key, 0, len(table))
	for k := range table {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

// KeyFor creates the glyph key for a matched run of letters, regardless of
// their case. KeyFor does not check if the key is present in the table.
func KeyFor(letters string) Key {
	// Casers keep state and may not be shared between goroutines.
	return Key(cases.Upper(language.Und).String(letters))
}
