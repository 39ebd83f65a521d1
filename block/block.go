package block

import (
	"encoding/hex"
	"fmt"

	"github.com/minichain/minichain/tx"
	"github.com/renproject/surge"
	"golang.org/x/crypto/sha3"
)

// A Hash is the hex encoding of the 256-bit SHA3 digest of a Block's
// canonical serialization.
type Hash string

// GenesisParentHash is the sentinel parent of the genesis Block, which has
// no predecessor to reference.
const GenesisParentHash = Hash("0")

// Equal compares one Hash with another.
func (hash Hash) Equal(other Hash) bool {
	return hash == other
}

// String implements the `fmt.Stringer` interface for the Hash type.
func (hash Hash) String() string {
	return string(hash)
}

// Timestamp represents seconds since Unix Epoch.
type Timestamp uint64

// Blocks defines a wrapper type around the []Block type.
type Blocks []Block

// A Block is one entry in the chain. It commits to its own content through
// its Hash, and to its predecessor through its ParentHash. A Block never
// references the chain it belongs to; linkage is expressed purely through
// the value of ParentHash. Once mined, a Block is never mutated.
type Block struct {
	Index      uint64
	Time       Timestamp
	Txs        tx.Transactions
	ParentHash Hash
	Nonce      uint64
	Hash       Hash
}

// New returns a candidate Block with its digest computed over the given
// fields and a zero Nonce. Constructing a Block never mutates previously
// constructed Blocks.
func New(index uint64, time Timestamp, txs tx.Transactions, parentHash Hash) Block {
	block := Block{
		Index:      index,
		Time:       time,
		Txs:        txs,
		ParentHash: parentHash,
	}
	block.Hash = block.ComputeHash()
	return block
}

// Genesis returns the first Block of a chain. It carries a single sentinel
// transaction, references no parent, and is never subject to the
// proof-of-work search.
func Genesis(time Timestamp) Block {
	return New(0, time, tx.Transactions{"genesis"}, GenesisParentHash)
}

// preimage fixes the field order and encoding of the digest input. Surge
// length-prefixes strings and slices, so no two distinct field tuples
// serialize to the same bytes.
type preimage struct {
	Index      uint64
	Time       uint64
	Txs        []string
	ParentHash string
	Nonce      uint64
}

// ComputeHash returns the digest of the Block's current fields. It is pure
// and deterministic: identical fields yield the identical digest on every
// call and every platform.
func (block Block) ComputeHash() Hash {
	txs := make([]string, len(block.Txs))
	for i, tx := range block.Txs {
		txs[i] = string(tx)
	}
	data, err := surge.ToBinary(preimage{
		Index:      block.Index,
		Time:       uint64(block.Time),
		Txs:        txs,
		ParentHash: string(block.ParentHash),
		Nonce:      block.Nonce,
	})
	if err != nil {
		panic(fmt.Errorf("invariant violation: marshaling block preimage: %v", err))
	}
	hashSum256 := sha3.Sum256(data)
	return Hash(hex.EncodeToString(hashSum256[:]))
}

// Equal compares one Block with another by checking that their Hashes are
// equal.
func (block Block) Equal(other Block) bool {
	return block.Hash.Equal(other.Hash)
}

// String implements the `fmt.Stringer` interface for the Block type.
func (block Block) String() string {
	return fmt.Sprintf(
		"Block(Index=%d,Time=%d,Txs=%v,ParentHash=%s,Nonce=%d,Hash=%s)",
		block.Index,
		block.Time,
		block.Txs,
		block.ParentHash,
		block.Nonce,
		block.Hash,
	)
}
