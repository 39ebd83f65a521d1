package block_test

import (
	"github.com/minichain/minichain/tx"

	. "github.com/minichain/minichain/block"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("Block", func() {
	Context("when computing the digest", func() {
		It("should return the same digest for the same fields on every call", func() {
			block := New(7, Timestamp(1610000000), tx.Transactions{"alice pays bob 5", "bob pays charlie 3"}, Hash("aa"))
			for i := 0; i < 10; i++ {
				Expect(block.ComputeHash().Equal(block.Hash)).To(BeTrue())
			}

			other := New(7, Timestamp(1610000000), tx.Transactions{"alice pays bob 5", "bob pays charlie 3"}, Hash("aa"))
			Expect(other.Hash).To(Equal(block.Hash))
		})

		It("should return a hex digest of fixed length", func() {
			block := New(0, Timestamp(1610000000), tx.Transactions{}, GenesisParentHash)
			Expect(block.Hash).To(HaveLen(64))
			Expect(string(block.Hash)).To(MatchRegexp("^[0-9a-f]{64}$"))
		})

		It("should return different digests for different fields", func() {
			block := New(1, Timestamp(1610000000), tx.Transactions{"alice pays bob 5"}, Hash("aa"))

			byIndex := New(2, Timestamp(1610000000), tx.Transactions{"alice pays bob 5"}, Hash("aa"))
			Expect(byIndex.Hash).NotTo(Equal(block.Hash))

			byTime := New(1, Timestamp(1610000001), tx.Transactions{"alice pays bob 5"}, Hash("aa"))
			Expect(byTime.Hash).NotTo(Equal(block.Hash))

			byTxs := New(1, Timestamp(1610000000), tx.Transactions{"alice pays bob 6"}, Hash("aa"))
			Expect(byTxs.Hash).NotTo(Equal(block.Hash))

			byParent := New(1, Timestamp(1610000000), tx.Transactions{"alice pays bob 5"}, Hash("ab"))
			Expect(byParent.Hash).NotTo(Equal(block.Hash))

			byNonce := block
			byNonce.Nonce = 1
			Expect(byNonce.ComputeHash()).NotTo(Equal(block.Hash))
		})

		It("should change when a transaction is mutated in place", func() {
			block := New(1, Timestamp(1610000000), tx.Transactions{"alice pays bob 5"}, Hash("aa"))
			block.Txs = append(block.Txs, "mallory pays mallory 1000000")
			Expect(block.ComputeHash()).NotTo(Equal(block.Hash))
		})
	})

	Context("when the genesis block is generated", func() {
		It("should reference no parent and carry a zero nonce", func() {
			genesis := Genesis(Timestamp(1610000000))
			Expect(genesis.Index).To(Equal(uint64(0)))
			Expect(genesis.ParentHash).To(Equal(GenesisParentHash))
			Expect(genesis.Nonce).To(Equal(uint64(0)))
			Expect(genesis.Hash).To(Equal(genesis.ComputeHash()))
		})
	})

	Context("when constructing new blocks", func() {
		It("should not mutate previously constructed blocks", func() {
			first := New(1, Timestamp(1610000000), tx.Transactions{"alice pays bob 5"}, Hash("aa"))
			hash := first.Hash
			_ = New(2, Timestamp(1610000001), tx.Transactions{"bob pays charlie 3"}, first.Hash)
			Expect(first.Hash).To(Equal(hash))
			Expect(first.ComputeHash()).To(Equal(hash))
		})
	})
})
