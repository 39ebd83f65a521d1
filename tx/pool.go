package tx

import (
	"sync"
)

// A Pool accumulates transactions that are waiting to be committed into the
// next mined block.
type Pool interface {
	Enqueue(Transaction)
	Flush() Transactions
	Len() int
}

type fifoPool struct {
	txsMu *sync.Mutex
	txs   Transactions
}

// FIFOPool is a First-In, First-Out transaction pool that is thread safe.
func FIFOPool() Pool {
	return &fifoPool{
		txsMu: new(sync.Mutex),
		txs:   Transactions{},
	}
}

func (pool *fifoPool) Enqueue(tx Transaction) {
	pool.txsMu.Lock()
	defer pool.txsMu.Unlock()

	pool.txs = append(pool.txs, tx)
}

// Flush returns every pending transaction in the order it was enqueued, and
// resets the Pool. A mining round consumes the whole Pool at once, so there
// is no per-transaction dequeue.
func (pool *fifoPool) Flush() Transactions {
	pool.txsMu.Lock()
	defer pool.txsMu.Unlock()

	txs := pool.txs
	pool.txs = Transactions{}
	return txs
}

func (pool *fifoPool) Len() int {
	pool.txsMu.Lock()
	defer pool.txsMu.Unlock()

	return len(pool.txs)
}
