package lexicon

import (
	"reflect"
	"sort"
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/skytomo221/sitelen-nena/glyph"
	"github.com/skytomo221/sitelen-nena/syllable"
)

func TestRegularWords(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelInfo)
	//
	for _, tc := range []struct {
		word string
		keys []glyph.Key
	}{
		{"a", []glyph.Key{"A"}},
		{"li", []glyph.Key{"LI"}},
		{"mun", []glyph.Key{"MU", "N"}},
		{"kepeken", []glyph.Key{"KE", "PE"}},
		{"sitelen", []glyph.Key{"SI", "TE"}},
		{"ijo", []glyph.Key{"I", "JO"}},
	} {
		keys, ok := Lookup(tc.word)
		if !ok {
			t.Errorf("expected %q to be an official word", tc.word)
			continue
		}
		if !reflect.DeepEqual(keys, tc.keys) {
			t.Errorf("expected %q to be keyed as %v, is %v", tc.word, tc.keys, keys)
		}
		if IsIrregular(tc.word) {
			t.Errorf("did not expect %q to be irregular", tc.word)
		}
	}
}

func TestIrregularWordsOverride(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	for _, tc := range []struct {
		word string
		keys []glyph.Key
	}{
		{"ken", []glyph.Key{"KE"}}, // listed as regular word, too
		{"sinpin", []glyph.Key{"SI", "PI"}},
		{"tenpo", []glyph.Key{"TE"}},
		{"toki", []glyph.Key{"TO"}},
		{"pona", []glyph.Key{"PO"}},
		{"ala", []glyph.Key{"LU"}},
	} {
		keys, ok := Lookup(tc.word)
		if !ok || !reflect.DeepEqual(keys, tc.keys) {
			t.Errorf("expected %q to be keyed as %v, is %v", tc.word, tc.keys, keys)
		}
		if !IsIrregular(tc.word) {
			t.Errorf("expected %q to be irregular", tc.word)
		}
		split := syllable.Split(tc.word)
		if reflect.DeepEqual(split[:min(len(split), MaxKeys)], keys) {
			t.Errorf("irregular keys for %q are identical to regular keying", tc.word)
		}
	}
}

func TestUnofficialWords(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	for _, w := range []string{"kijetesantakalu", "Toki", "", "tokipona", "."} {
		if Contains(w) {
			t.Errorf("did not expect %q to be an official word", w)
		}
		if _, ok := Lookup(w); ok {
			t.Errorf("did not expect keys for %q", w)
		}
	}
}

func TestEveryKeyHasPattern(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	for _, w := range Words() {
		keys, _ := Lookup(w)
		if len(keys) < 1 || len(keys) > MaxKeys {
			t.Errorf("word %q has %d keys", w, len(keys))
		}
		for _, k := range keys {
			if _, ok := glyph.Lookup(k); !ok {
				t.Errorf("key %q of word %q has no dot pattern", k, w)
			}
		}
	}
}

func TestWords(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	ws := Words()
	if len(ws) != 109 || Size() != 109 {
		t.Errorf("expected 109 official words, have %d", len(ws))
	}
	if !sort.StringsAreSorted(ws) {
		t.Errorf("expected words to be sorted")
	}
	if ws[0] != "a" || ws[len(ws)-1] != "wile" {
		t.Errorf("unexpected first/last word: %q/%q", ws[0], ws[len(ws)-1])
	}
}

func TestLookupReturnsCopy(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	keys, _ := Lookup("telo")
	keys[0] = "A"
	if again, _ := Lookup("telo"); again[0] != "TE" {
		t.Errorf("dictionary entry has been modified through lookup result: %v", again)
	}
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
