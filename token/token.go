/*
Package token splits text into classified tokens.

Text is split at runs of white space, and each of the punctuation marks
. , ? ! becomes a token of its own. White space is dropped. Every token is
classified into one of five kinds, first match wins:

   Official     a word of the dictionary (package lexicon)
   Punctuation  one of . , ? !
   ProperNoun   a capitalized word of at least two ASCII letters
   Unofficial   a word of lower-case ASCII letters
   Unknown      anything else

Splitting may produce empty tokens, e.g. after a punctuation mark at the end of
a chunk: "pona." is split into "pona", "." and "". Empty tokens are of kind
Unknown.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package token

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/npillmayer/gorgo/lr/scanner"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/skytomo221/sitelen-nena/glyph"
	"github.com/skytomo221/sitelen-nena/lexicon"
)

// T traces to the core tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

// Kind is the kind of a token.
type Kind int

// Token kinds. Kinds are non-zero and positive, so they never collide with
// scanner.EOF.
const (
	Official Kind = iota + 1
	Unofficial
	ProperNoun
	Punctuation
	Unknown
)

var kindNames = [...]string{"", "OFFICIAL", "UNOFFICIAL", "PROPER_NOUN", "PUNCTUATION", "UNKNOWN"}

func (k Kind) String() string {
	if k < Official || k > Unknown {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// Token is a piece of input text together with its kind.
type Token struct {
	Kind  Kind
	Value string
	Pos   uint64 // byte position in the input
}

// New creates a token for value, classifying it.
func New(value string) Token {
	return Token{Kind: Classify(value), Value: value}
}

func (t Token) String() string {
	return fmt.Sprintf("%s(%q)", t.Kind, t.Value)
}

var (
	properNounPattern = regexp.MustCompile(`^[A-Z][A-Za-z]+$`)
	unofficialPattern = regexp.MustCompile(`^[a-z]+$`)
)

// Classify returns the kind of a token value.
func Classify(value string) Kind {
	switch {
	case lexicon.Contains(value):
		return Official
	case isPunctuation(value):
		return Punctuation
	case properNounPattern.MatchString(value):
		return ProperNoun
	case unofficialPattern.MatchString(value):
		return Unofficial
	}
	return Unknown
}

func isPunctuation(value string) bool {
	return len(value) == 1 && glyph.IsPunctuation(rune(value[0]))
}

// Tokenize splits text into tokens.
func Tokenize(text string) []Token {
	sc := NewScanner(strings.NewReader(text))
	tokens := make([]Token, 0, len(text)/4+1)
	for {
		kind, value, pos, _ := sc.NextToken(nil)
		if kind == scanner.EOF {
			break
		}
		tokens = append(tokens, Token{Kind: Kind(kind), Value: value.(string), Pos: pos})
	}
	return tokens
}
