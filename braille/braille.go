package braille

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/skytomo221/sitelen-nena/dots"
	"github.com/skytomo221/sitelen-nena/glyph"
	"github.com/skytomo221/sitelen-nena/lexicon"
	"github.com/skytomo221/sitelen-nena/syllable"
	"github.com/skytomo221/sitelen-nena/token"
)

// Markers for structural boundaries. Markers use dots 7 and 8 only, except
// for the cells enclosing proper nouns, which have no letter pattern.
const (
	BeginOfWord              = dots.Dot7
	EndOfWord                = dots.Dot8
	UnofficialWord           = dots.Dot7 | dots.Dot8
	BeginOfProperNoun        = dots.Dot4 | dots.Dot5 | dots.Dot6 | dots.Dot8
	ContinuationOfProperNoun = dots.Dot7 | dots.Dot8
	EndOfProperNoun          = dots.Dot1 | dots.Dot2 | dots.Dot3 | dots.Dot7
)

// Cells returns the dot sets for a token. Tokens of kind Unknown have no
// cells, as they are not rendered in Braille.
func Cells(tok token.Token) []dots.Set {
	switch tok.Kind {
	case token.Official:
		keys, ok := lexicon.Lookup(tok.Value)
		if !ok {
			panic(fmt.Sprintf("braille: official token %q not in dictionary", tok.Value))
		}
		cells := patterns(keys)
		if len(cells) == 1 {
			return cells
		}
		return markWordBoundaries(cells)
	case token.Unofficial:
		cells := patterns(syllable.Split(tok.Value))
		if len(cells) == 1 {
			cells[0] |= UnofficialWord
			return cells
		}
		return markWordBoundaries(cells)
	case token.ProperNoun:
		keys := syllable.Split(tok.Value)
		cells := make([]dots.Set, 0, len(keys)+2)
		cells = append(cells, BeginOfProperNoun)
		for _, k := range keys {
			cells = append(cells, glyph.Pattern(k)|ContinuationOfProperNoun)
		}
		return append(cells, EndOfProperNoun)
	case token.Punctuation:
		return []dots.Set{glyph.Pattern(glyph.Key(tok.Value)), dots.Blank}
	}
	return nil
}

func patterns(keys []glyph.Key) []dots.Set {
	cells := make([]dots.Set, len(keys))
	for i, k := range keys {
		cells[i] = glyph.Pattern(k)
	}
	return cells
}

// first cell gets dot 7, last cell gets dot 8
func markWordBoundaries(cells []dots.Set) []dots.Set {
	if len(cells) == 0 {
		return cells
	}
	cells[0] |= BeginOfWord
	cells[len(cells)-1] |= EndOfWord
	return cells
}

// Render renders a single token.
func Render(tok token.Token) string {
	if tok.Kind == token.Unknown {
		return tok.Value
	}
	s := dots.String(Cells(tok)...)
	CT().Debugf("braille: %s → %s", tok, s)
	return s
}

// Transliterate renders Toki Pona text in Braille.
func Transliterate(text string) string {
	var sb strings.Builder
	sb.Grow(len(text))
	for _, tok := range token.Tokenize(text) {
		sb.WriteString(Render(tok))
	}
	return sb.String()
}

// Copy reads Toki Pona text from r and writes its Braille rendering to w.
// It returns the number of bytes written.
func Copy(w io.Writer, r io.Reader) (int64, error) {
	out := bufio.NewWriter(w)
	sc := token.NewScanner(r)
	var written int64
	for sc.Next() {
		n, err := out.WriteString(Render(sc.Token()))
		written += int64(n)
		if err != nil {
			return written, fmt.Errorf("braille: writing output: %w", err)
		}
	}
	if err := sc.Err(); err != nil {
		_ = out.Flush()
		return written, fmt.Errorf("braille: reading input: %w", err)
	}
	if err := out.Flush(); err != nil {
		return written, fmt.Errorf("braille: writing output: %w", err)
	}
	return written, nil
}
