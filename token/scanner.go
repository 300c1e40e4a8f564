package token

import (
	"bufio"
	"io"
	"unicode"
	"unicode/utf8"

	"github.com/npillmayer/gorgo/lr/scanner"
	"github.com/skytomo221/sitelen-nena/glyph"
)

// Scanner reads text and splits it into tokens. It implements the
// scanner.Tokenizer interface, but clients may as well use it in the style
// of a bufio.Scanner:
//
//   sc := token.NewScanner(reader)
//   for sc.Next() {
//       tok := sc.Token()
//       …
//   }
//   if sc.Err() != nil { … }
//
type Scanner struct {
	reader  io.RuneReader // where we get the next runes from
	buffer  []byte        // character buffer for the current word
	pending []Token       // tokens recognized, but not yet delivered
	current Token         // token delivered by Next()
	pos     uint64        // start position of the current word
	ahead   uint64        // position after the last rune read
	inSpace bool          // last rune read was white space
	done    bool          // at EOF?
	err     error         // first read error, if any
	handler func(error)   // error handler
}

var _ scanner.Tokenizer = (*Scanner)(nil)

// NewScanner creates a scanner reading from input.
func NewScanner(input io.Reader) *Scanner {
	sc := &Scanner{}
	if rr, ok := input.(io.RuneReader); ok {
		sc.reader = rr
	} else {
		sc.reader = bufio.NewReader(input)
	}
	sc.buffer = make([]byte, 0, 64)
	return sc
}

// NextToken reads the next token, returning its kind, its value as a string,
// its byte position and its length in bytes.
// At the end of input it returns scanner.EOF.
//
// expected is ignored.
func (sc *Scanner) NextToken(expected []int) (int, interface{}, uint64, uint64) {
	tok, ok := sc.next()
	if !ok {
		return scanner.EOF, "", sc.ahead, 0
	}
	return int(tok.Kind), tok.Value, tok.Pos, uint64(len(tok.Value))
}

// SetErrorHandler sets an error handler function, which receives read errors
// of the underlying reader. Scanning stops after a read error.
func (sc *Scanner) SetErrorHandler(h func(error)) {
	sc.handler = h
}

// Next advances the scanner to the next token, which will then be available
// through Token(). It returns false when scanning stops, either by reaching
// the end of the input or by a read error.
func (sc *Scanner) Next() bool {
	tok, ok := sc.next()
	sc.current = tok
	return ok
}

// Token returns the most recent token found by Next().
func (sc *Scanner) Token() Token {
	return sc.current
}

// Err returns the first non-EOF error that was encountered by the Scanner.
func (sc *Scanner) Err() error {
	return sc.err
}

func (sc *Scanner) next() (Token, bool) {
	for len(sc.pending) == 0 {
		if sc.done {
			return Token{}, false
		}
		sc.readRune()
	}
	tok := sc.pending[0]
	sc.pending = sc.pending[1:]
	T().Debugf("token: scanned %s at %d", tok, tok.Pos)
	return tok, true
}

// readRune reads a single rune and queues the tokens it completes, if any.
func (sc *Scanner) readRune() {
	r, sz, err := sc.reader.ReadRune()
	if err != nil {
		if err != io.EOF {
			T().Errorf("token: read error: %v", err)
			sc.err = err
			if sc.handler != nil {
				sc.handler(err)
			}
		}
		sc.pushWord()
		sc.done = true
		return
	}
	switch {
	case unicode.IsSpace(r):
		if !sc.inSpace {
			sc.pushWord()
			sc.inSpace = true
		}
		sc.ahead += uint64(sz)
		sc.pos = sc.ahead
	case glyph.IsPunctuation(r):
		sc.pushWord()
		sc.push(string(r), sc.ahead)
		sc.ahead += uint64(sz)
		sc.pos = sc.ahead
		sc.inSpace = false
	default:
		var b [utf8.UTFMax]byte
		n := utf8.EncodeRune(b[:], r)
		sc.buffer = append(sc.buffer, b[:n]...)
		sc.ahead += uint64(sz)
		sc.inSpace = false
	}
}

// pushWord queues the current word, even if it is empty.
func (sc *Scanner) pushWord() {
	sc.push(string(sc.buffer), sc.pos)
	sc.buffer = sc.buffer[:0]
}

func (sc *Scanner) push(value string, pos uint64) {
	tok := New(value)
	tok.Pos = pos
	sc.pending = append(sc.pending, tok)
}
