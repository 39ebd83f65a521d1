package minichain

import (
	"github.com/minichain/minichain/block"
	"github.com/minichain/minichain/chain"
	"github.com/minichain/minichain/pow"
	"github.com/minichain/minichain/tx"
)

type (
	Hash         = block.Hash
	Timestamp    = block.Timestamp
	Block        = block.Block
	Blocks       = block.Blocks
	Transaction  = tx.Transaction
	Transactions = tx.Transactions
	Pool         = tx.Pool
	Proof        = pow.Proof
	Chain        = chain.Chain
	Options      = chain.Options
	Fault        = chain.Fault
	Reason       = chain.Reason
)

const (
	GenesisParentHash      = block.GenesisParentHash
	DefaultDifficulty      = chain.DefaultDifficulty
	ReasonContentAltered   = chain.ReasonContentAltered
	ReasonBrokenLinkage    = chain.ReasonBrokenLinkage
	ReasonInsufficientWork = chain.ReasonInsufficientWork
)

var (
	DefaultOptions = chain.DefaultOptions
	New            = chain.New
	FIFOPool       = tx.FIFOPool
)
