package pow

import (
	"strings"
	"time"

	"github.com/minichain/minichain/block"
)

// A Proof records the outcome of a proof-of-work search. The nonce and
// digest are the winning pair; the attempt count and duration are
// informational.
type Proof struct {
	Nonce    uint64
	Hash     block.Hash
	Attempts uint64
	Duration time.Duration
}

// Target returns the hex prefix that a digest must carry to satisfy the
// given difficulty.
func Target(difficulty int) string {
	return strings.Repeat("0", difficulty)
}

// SatisfiesTarget returns whether the digest carries at least difficulty
// leading zero hex characters.
func SatisfiesTarget(hash block.Hash, difficulty int) bool {
	return strings.HasPrefix(string(hash), Target(difficulty))
}

// Work scans nonces sequentially from zero until the candidate's digest
// satisfies the difficulty, and seals the candidate with the winning nonce
// and digest. Because the scan is in strictly increasing nonce order, the
// winning nonce is reproducible for a fixed field tuple and difficulty. The
// search has no upper bound on attempts; a larger difficulty costs
// proportionally more time, which is the intended cost mechanism.
func Work(candidate *block.Block, difficulty int) Proof {
	begin := time.Now()

	candidate.Nonce = 0
	candidate.Hash = candidate.ComputeHash()
	attempts := uint64(1)
	for !SatisfiesTarget(candidate.Hash, difficulty) {
		candidate.Nonce++
		candidate.Hash = candidate.ComputeHash()
		attempts++
	}

	return Proof{
		Nonce:    candidate.Nonce,
		Hash:     candidate.Hash,
		Attempts: attempts,
		Duration: time.Since(begin),
	}
}
