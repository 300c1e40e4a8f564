/*
Package lexicon is the dictionary of official Toki Pona words.

Every official word is keyed by a short sequence of one or two glyph keys.
For regular words the keys are computed: the word is split into syllables,
and the first two of them are kept. Irregular words carry explicit keys, for
two reasons:

(1) Their first two syllables would collide with another word
(e.g., "sinpin" would be SI N, so it is keyed as SI PI).

(2) Frequent words are abbreviated to a single syllable
(e.g., "toki" is keyed as TO).

Irregular entries take precedence over regular ones.

The vocabulary is compiled into the binary from file words.yaml.
A word that cannot be keyed, or a key without a dot pattern, is a defect of the
vocabulary, and the dictionary will panic when it is set up.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package lexicon

import (
	_ "embed"
	"fmt"
	"sync"

	"github.com/emirpasic/gods/maps/treemap"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/skytomo221/sitelen-nena/glyph"
	"github.com/skytomo221/sitelen-nena/syllable"
	"gopkg.in/yaml.v3"
)

// T traces to the core tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

// MaxKeys is the maximum number of glyph keys for an official word.
const MaxKeys = 2

//go:embed words.yaml
var vocabularyYAML []byte

type vocabulary struct {
	Regular   []string               `yaml:"regular"`
	Irregular map[string][]glyph.Key `yaml:"irregular"`
}

var (
	words     *treemap.Map // word → []glyph.Key, sorted by word
	irregular map[string]bool
	setupOnce sync.Once
)

// Setup creates the dictionary. Clients usually do not have to call it, as
// it is called on first use.
// (Concurrency-safe).
func Setup() {
	setupOnce.Do(setupDictionary)
}

func setupDictionary() {
	var voc vocabulary
	if err := yaml.Unmarshal(vocabularyYAML, &voc); err != nil {
		panic(fmt.Sprintf("lexicon: cannot decode vocabulary: %v", err))
	}
	m := treemap.NewWithStringComparator()
	for _, w := range voc.Regular {
		keys := syllable.Split(w)
		if len(keys) > MaxKeys {
			keys = keys[:MaxKeys]
		}
		m.Put(w, keys)
	}
	irr := make(map[string]bool, len(voc.Irregular))
	for w, keys := range voc.Irregular {
		if _, found := m.Get(w); found {
			T().Debugf("lexicon: irregular entry %q overrides regular entry", w)
		}
		m.Put(w, keys)
		irr[w] = true
	}
	it := m.Iterator()
	for it.Next() {
		w, keys := it.Key().(string), it.Value().([]glyph.Key)
		if len(keys) == 0 || len(keys) > MaxKeys {
			panic(fmt.Sprintf("lexicon: word %q has %d glyph keys, need 1…%d", w, len(keys), MaxKeys))
		}
		for _, k := range keys {
			if _, ok := glyph.Lookup(k); !ok {
				panic(fmt.Sprintf("lexicon: glyph key %q of word %q has no dot pattern", k, w))
			}
		}
	}
	words, irregular = m, irr
	T().Infof("lexicon set up with %d words, %d of them irregular", m.Size(), len(irr))
}

// Lookup returns the glyph keys for an official word. If word is not
// official, Lookup returns false.
func Lookup(word string) ([]glyph.Key, bool) {
	Setup()
	v, found := words.Get(word)
	if !found {
		return nil, false
	}
	keys := v.([]glyph.Key)
	return append(make([]glyph.Key, 0, len(keys)), keys...), true
}

// Contains is true if word is an official word.
func Contains(word string) bool {
	Setup()
	_, found := words.Get(word)
	return found
}

// IsIrregular is true if word is an official word with explicit keys.
func IsIrregular(word string) bool {
	Setup()
	return irregular[word]
}

// Words returns all official words in lexical order.
func Words() []string {
	Setup()
	ws := make([]string, 0, words.Size())
	for _, k := range words.Keys() {
		ws = append(ws, k.(string))
	}
	return ws
}

// Size returns the number of official words.
func Size() int {
	Setup()
	return words.Size()
}
