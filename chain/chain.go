package chain

import (
	"fmt"
	"time"

	"github.com/minichain/minichain/block"
	"github.com/minichain/minichain/pow"
	"github.com/minichain/minichain/tx"
)

// hashHexLen is the length of a hex-encoded digest. A difficulty beyond it
// can never be satisfied.
const hashHexLen = 64

// A Chain owns an ordered sequence of Blocks and the pool of transactions
// waiting to be mined into the next one. The sequence is append-only: a
// Chain is advanced by exactly one Block per mining round, and each new
// Block references the digest of the current head. A Chain is not safe for
// concurrent use; it expects exactly one logical writer.
type Chain struct {
	opts    Options
	blocks  block.Blocks
	pending tx.Pool
}

// New returns a Chain with its genesis Block synthesized immediately. The
// difficulty is validated here, once, so that proof-of-work semantics are
// unambiguous for the lifetime of the Chain.
func New(opts Options) (*Chain, error) {
	if opts.Difficulty < 0 {
		return nil, fmt.Errorf("invalid difficulty %d: must be non-negative", opts.Difficulty)
	}
	if opts.Difficulty > hashHexLen {
		return nil, fmt.Errorf("invalid difficulty %d: digests are %d hex characters", opts.Difficulty, hashHexLen)
	}
	if opts.Clock == nil {
		opts.Clock = time.Now
	}
	chain := &Chain{
		opts:    opts,
		pending: tx.FIFOPool(),
	}
	chain.blocks = block.Blocks{block.Genesis(chain.now())}
	return chain, nil
}

// AddTransaction appends an opaque record to the pending pool. The record is
// not validated, and takes effect in the next mining round.
func (chain *Chain) AddTransaction(record tx.Transaction) {
	chain.pending.Enqueue(record)
}

// MinePending snapshots the pending transactions into a candidate Block that
// references the current head, runs the proof-of-work search against the
// Chain's difficulty, and appends the sealed Block. The pending pool is
// empty afterwards. Mining with no pending transactions is permitted and
// produces a Block with an empty transaction list, still subject to
// proof-of-work.
func (chain *Chain) MinePending() (block.Block, pow.Proof) {
	head := chain.Head()
	candidate := block.New(head.Index+1, chain.now(), chain.pending.Flush(), head.Hash)

	chain.opts.Logger.
		WithField("index", candidate.Index).
		Info("mining block")
	proof := pow.Work(&candidate, chain.opts.Difficulty)
	chain.blocks = append(chain.blocks, candidate)

	chain.opts.Logger.
		WithField("index", candidate.Index).
		WithField("nonce", proof.Nonce).
		WithField("attempts", proof.Attempts).
		WithField("duration", proof.Duration).
		Info("block mined")
	return candidate, proof
}

// Head returns the most recently appended Block.
func (chain *Chain) Head() block.Block {
	return chain.blocks[len(chain.blocks)-1]
}

// Length returns the number of Blocks in the Chain, genesis included.
func (chain *Chain) Length() int {
	return len(chain.blocks)
}

// Blocks returns a copy of the Chain's Blocks for read-only inspection.
func (chain *Chain) Blocks() block.Blocks {
	blocks := make(block.Blocks, len(chain.blocks))
	copy(blocks, chain.blocks)
	return blocks
}

// Pending returns the number of transactions waiting for the next mining
// round.
func (chain *Chain) Pending() int {
	return chain.pending.Len()
}

// Difficulty returns the number of leading zero hex characters the Chain
// requires of mined blocks.
func (chain *Chain) Difficulty() int {
	return chain.opts.Difficulty
}

func (chain *Chain) now() block.Timestamp {
	return block.Timestamp(chain.opts.Clock().Unix())
}
