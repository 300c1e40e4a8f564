package nena

import (
	"context"
	"fmt"

	pool "github.com/jolestar/go-commons-pool"
)

// EOT is the rune class clients should use to signal the end of input to a
// Recognizer. State functions waiting for an optional rune accept on it.
const EOT = -1

// NfaStateFn represents a state in a non-deterministic finite automata.
// Functions of type NfaStateFn try to match a rune (Unicode code-point).
// The third argument is the class of the rune, as defined by the client.
// An example class may be "vowel", of which runes 'a' and 'O' would be part of.
//
// The first argument is the Recognizer which carries this state function.
//
// NfaStateFn – after matching a rune – must return another NfaStateFn,
// which will then in turn be called to process the next rune. The process
// of matching a string will stop as soon as a NfaStateFn returns nil.
type NfaStateFn func(*Recognizer, rune, int) NfaStateFn

// A Recognizer represents an automata to recognize sequences of runes
// (i.e. Unicode code-points). Its main functionality is performed by
// an embedded NfaStateFn. The first NfaStateFn to use is provided with
// the constructor.
//
// Recognizer's state functions must be careful to increment MatchLen
// with each matched rune. Failing to do so may result in incorrect splits
// of text.
//
// Semantics of Expect are up to the client and not used by the default
// mechanism.
type Recognizer struct {
	Expect   int        // code-point class the recognizer has been started for
	MatchLen int        // length of active match
	nextStep NfaStateFn // next step of the automata
}

// NewRecognizer creates a new Recognizer.
// This is rarely used, as clients rather should call NewPooledRecognizer().
//
// see NewPooledRecognizer.
func NewRecognizer(codePointClass int, next NfaStateFn) *Recognizer {
	rec := &Recognizer{}
	rec.Expect = codePointClass
	rec.nextStep = next
	return rec
}

// Recognizers are short-lived objects. To avoid multiple allocation of
// small objects we will pool them.
type recognizerPool struct {
	opool *pool.ObjectPool
	ctx   context.Context
}

var globalRecognizerPool *recognizerPool

func init() {
	globalRecognizerPool = &recognizerPool{}
	factory := pool.NewPooledObjectFactorySimple(
		func(context.Context) (interface{}, error) {
			rec := &Recognizer{}
			return rec, nil
		})
	globalRecognizerPool.ctx = context.Background()
	config := pool.NewDefaultPoolConfig()
	config.MaxTotal = -1 // infinity
	config.BlockWhenExhausted = false
	globalRecognizerPool.opool = pool.NewObjectPool(globalRecognizerPool.ctx, factory, config)
}

// NewPooledRecognizer returns a new Recognizer, pre-filled with an expected
// code-point class and a state function. The Recognizer is pooled for
// efficiency; clients call Release() when done with it.
func NewPooledRecognizer(cpClass int, stateFn NfaStateFn) *Recognizer {
	o, err := globalRecognizerPool.opool.BorrowObject(globalRecognizerPool.ctx)
	if err != nil { // pool is unbounded, this should never happen
		CT().Errorf("cannot borrow recognizer from pool: %v", err)
		return NewRecognizer(cpClass, stateFn)
	}
	rec := o.(*Recognizer)
	rec.Expect = cpClass
	rec.nextStep = stateFn
	return rec
}

// Release clears the Recognizer and puts it back into the pool.
// The Recognizer must not be used after it has been released.
func (rec *Recognizer) Release() {
	rec.Expect = 0
	rec.MatchLen = 0
	rec.nextStep = nil
	_ = globalRecognizerPool.opool.ReturnObject(globalRecognizerPool.ctx, rec)
}

// Simple stringer for debugging purposes.
func (rec *Recognizer) String() string {
	if rec == nil {
		return "[nil rule]"
	}
	return fmt.Sprintf("[%d -> done=%v, len=%d]", rec.Expect, rec.Done(), rec.MatchLen)
}

// Done is used by a Recognizer that it is done matching runes.
// If MatchLength() > 0 is has been accepting a sequence of runes,
// otherwise it has aborted to further try a match.
func (rec *Recognizer) Done() bool {
	return rec.nextStep == nil
}

// MatchLength is the number of runes accepted so far.
func (rec *Recognizer) MatchLength() int {
	return rec.MatchLen
}

// RuneEvent feeds the next rune to the Recognizer. Calling RuneEvent on a
// Recognizer which is Done() is a no-op.
func (rec *Recognizer) RuneEvent(r rune, codePointClass int) {
	if rec.nextStep != nil {
		rec.nextStep = rec.nextStep(rec, r, codePointClass)
	}
}

// --- Standard Recognizer Rules ----------------------------------------

// DoAbort returns a state function which signals abort.
func DoAbort(rec *Recognizer) NfaStateFn {
	rec.MatchLen = 0
	return nil
}

// DoAccept returns a state function which signals accept, including the
// current rune in the match.
func DoAccept(rec *Recognizer) NfaStateFn {
	rec.MatchLen++
	CT().Debugf("ACCEPT with length %d", rec.MatchLen)
	return nil
}

// DoAcceptPrefix returns a state function which signals accept of the runes
// matched so far, leaving the current rune unmatched.
// If nothing has been matched yet, this is equivalent to an abort.
func DoAcceptPrefix(rec *Recognizer) NfaStateFn {
	CT().Debugf("ACCEPT prefix with length %d", rec.MatchLen)
	return nil
}

// DoContinue consumes the current rune and proceeds to state next.
func DoContinue(rec *Recognizer, next NfaStateFn) NfaStateFn {
	rec.MatchLen++
	return next
}
