package main

import (
	"github.com/fatih/color"
	"github.com/sirupsen/logrus"

	"github.com/minichain/minichain/block"
	"github.com/minichain/minichain/chain"
)

// A narrated run of the simulated ledger: mine a few blocks, tamper with
// one, and watch verification catch it. Presentation only; all the real
// work happens in the chain package.
func main() {
	ledger, err := chain.New(chain.DefaultOptions().WithDifficulty(3))
	if err != nil {
		logrus.Fatal(err)
	}

	color.Cyan("==============================================")
	color.Cyan("        MINICHAIN - SIMULATED LEDGER          ")
	color.Cyan("==============================================")

	color.Yellow("\n--- INITIAL CHAIN ---")
	printChain(ledger)

	ledger.AddTransaction("alice pays bob 5")
	ledger.AddTransaction("bob pays charlie 3")
	ledger.MinePending()

	color.Yellow("\n--- CHAIN AFTER MINING FIRST BLOCK ---")
	printChain(ledger)

	ledger.AddTransaction("charlie pays dave 1")
	ledger.AddTransaction("dave pays eve 0.5")
	ledger.MinePending()

	color.Yellow("\n--- VERIFYING CHAIN ---")
	report(ledger.Verify())

	color.Yellow("\n--- TAMPERING WITH BLOCK 1 ---")
	if err := ledger.Tamper(1, func(blk *block.Block) {
		blk.Txs = append(blk.Txs, "mallory pays mallory 1000000")
	}); err != nil {
		logrus.Fatal(err)
	}

	color.Yellow("\n--- VERIFYING CHAIN AGAIN ---")
	report(ledger.Verify())
	report(ledger.Verify())
}

func printChain(ledger *chain.Chain) {
	for _, blk := range ledger.Blocks() {
		color.White("Block %d", blk.Index)
		color.White("  Time:       %d", blk.Time)
		color.White("  Txs:        %v", blk.Txs)
		color.White("  ParentHash: %s", blk.ParentHash)
		color.White("  Nonce:      %d", blk.Nonce)
		color.White("  Hash:       %s", blk.Hash)
	}
}

func report(fault chain.Fault, ok bool) {
	if ok {
		color.Green("chain is valid")
		return
	}
	color.Red("chain is INVALID: block %d: %s", fault.Index, fault.Reason)
}
