package glyph

import (
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/skytomo221/sitelen-nena/dots"
)

func TestTableSize(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelInfo)
	//
	if n := len(Keys()); n != 5+7+35+2+10+4 {
		t.Errorf("expected 63 glyph keys, have %d", n)
	}
}

func TestSyllablesAreComposed(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	for _, c := range []Key{"P", "T", "K", "S", "M", "N", "L"} {
		for _, v := range []Key{"A", "E", "I", "O", "U"} {
			if Pattern(c+v) != Pattern(c)|Pattern(v) {
				t.Errorf("expected pattern of %s to be %s ∪ %s, is %s", c+v, Pattern(c), Pattern(v), Pattern(c+v))
			}
		}
	}
	if Pattern("TO") != dots.Of(2, 3, 4) {
		t.Errorf("expected TO to be dots-234, is %s", Pattern("TO"))
	}
}

func TestGlides(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	if Pattern("W") != Pattern("U") {
		t.Errorf("expected W to reuse the pattern of U")
	}
	if Pattern("J") != Pattern("I") {
		t.Errorf("expected J to reuse the pattern of I")
	}
	if Pattern("JE") != dots.Of(2, 3, 4, 5) {
		t.Errorf("expected JE to be dots-2345, is %s", Pattern("JE"))
	}
	if Pattern("WA") != dots.Of(3) {
		t.Errorf("expected WA to be dots-3, is %s", Pattern("WA"))
	}
}

func TestLetterPatterns(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	for _, k := range Keys() {
		p := Pattern(k)
		if p == dots.Blank {
			t.Errorf("pattern for %q is blank", k)
		}
		if p.Has(7) || p.Has(8) {
			t.Errorf("pattern for %q uses marker dots: %s", k, p)
		}
	}
	if Pattern(".") != dots.Of(2, 5, 6) || Pattern("!") != dots.Of(2, 3, 5) {
		t.Errorf("unexpected punctuation patterns")
	}
}

func TestMissingKeyPanics(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	if _, ok := Lookup("X"); ok {
		t.Errorf("did not expect a pattern for key X")
	}
	defer func() {
		if recover() == nil {
			t.Errorf("expected Pattern(\"B\") to panic")
		}
	}()
	Pattern("B")
}

func TestClassForRune(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	runes := [...]rune{'a', 'O', 't', 'K', 'w', 'J', '?', 'b', '1', ' ', 'é'}
	classes := [...]Class{Vowel, Vowel, Consonant, Consonant, Glide, Glide, Punctuation,
		Other, Other, Other, Other}
	for i, r := range runes {
		if c := ClassForRune(r); c != classes[i] {
			t.Errorf("expected class of %#U to be %s, is %s", r, classes[i], c)
		}
	}
}

func TestKeyFor(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	if k := KeyFor("jA"); k != "JA" {
		t.Errorf("expected key JA, have %q", k)
	}
}
