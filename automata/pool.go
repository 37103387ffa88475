package automata

import (
	"context"

	pool "github.com/jolestar/go-commons-pool"
)

// Every run of runes of a class starts a rule, so recognizers come and go
// at the rate of fragments. They are recycled through an object pool.
var recognizers = newRecognizerPool()

func newRecognizerPool() *pool.ObjectPool {
	factory := pool.NewPooledObjectFactorySimple(
		func(context.Context) (interface{}, error) {
			return &Recognizer{}, nil
		})
	config := pool.NewDefaultPoolConfig()
	config.MaxTotal = -1 // unbounded
	config.BlockWhenExhausted = false
	return pool.NewObjectPool(context.Background(), factory, config)
}

// NewPooledRecognizer returns a Recognizer from the pool, started for
// class cpClass with step as its first state function. It returns to the
// pool when its publisher unsubscribes it.
func NewPooledRecognizer(cpClass int, step NfaStateFn) *Recognizer {
	o, err := recognizers.BorrowObject(context.Background())
	if err != nil {
		CT().Errorf("recognizer pool: %v", err)
		return NewRecognizer(cpClass, step)
	}
	rec := o.(*Recognizer)
	rec.Expect = cpClass
	rec.step = step
	return rec
}

func release(rec *Recognizer) {
	rec.reset()
	// recognizers not borrowed from the pool are rejected; they are garbage
	_ = recognizers.ReturnObject(context.Background(), rec)
}
