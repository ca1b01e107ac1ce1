// Package processor holds the BlockProcessor contract and C4's DAO
// irregular state processor, the one-shot balance migration that runs at
// the DAO fork block (spec.md §4.3).
package processor

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"log/slog"
	"math/big"

	"github.com/gorules/ethforks/common"
	"github.com/gorules/ethforks/core/state"
	"github.com/gorules/ethforks/core/types"
)

// BlockProcessor applies a block's transactions and reward to a world
// state updater.
type BlockProcessor interface {
	Name() string
	ProcessBlock(updater state.Updater, block *types.Block) error
}

// StateRewriteUnavailable is fatal to block processing: the bundled
// DAO-affected address list failed to load (spec.md §4.3).
type StateRewriteUnavailable struct {
	Reason string
}

func (e *StateRewriteUnavailable) Error() string {
	return fmt.Sprintf("DAO state rewrite unavailable: %s", e.Reason)
}

//go:embed dao_addresses.json
var rawDrainList []byte

var daoDrainAddresses []common.Address

func init() {
	var hexAddrs []string
	if err := json.Unmarshal(rawDrainList, &hexAddrs); err != nil {
		// The bundled resource is malformed; every DAO-fork processor built
		// from this package will surface StateRewriteUnavailable at first
		// use rather than at init, since a build-time panic here would take
		// down every fork's spec, not just the DAO one.
		daoDrainAddresses = nil
		return
	}
	daoDrainAddresses = make([]common.Address, len(hexAddrs))
	for i, h := range hexAddrs {
		daoDrainAddresses[i] = common.HexToAddress(h)
	}
}

// daoProcessor wraps an underlying BlockProcessor and, before delegating,
// migrates every DAO-affected account's full balance to the refund
// contract (spec.md §4.3's three-step algorithm).
type daoProcessor struct {
	name            string
	wrapped         BlockProcessor
	refundContract  common.Address
}

// DAOFork wraps processor's with the one-shot DAO balance migration, paid
// into refundContract. It runs exactly once, on the block the underlying
// processor is invoked for — callers are expected to build a fresh
// ProtocolSpec for this activation key only (spec.md's delta-chain model:
// "dao-init" and "dao-transition" are each a single fork entry).
func DAOFork(wrapped BlockProcessor, refundContract common.Address) BlockProcessor {
	return daoProcessor{name: "DAO-Recovery", wrapped: wrapped, refundContract: refundContract}
}

func (p daoProcessor) Name() string { return p.name }

// Unwrap returns the processor this one wraps, letting dao-transition undo
// the one-shot wrapping once the fork block has passed (spec.md §4.2:
// "DAO-Recovery-Transition. Unwrap the DAO processor").
func (p daoProcessor) Unwrap() BlockProcessor { return p.wrapped }

func (p daoProcessor) ProcessBlock(updater state.Updater, block *types.Block) error {
	var number *big.Int
	if block.Header != nil {
		number = block.Header.Number
	}
	if daoDrainAddresses == nil {
		slog.Warn("dao fork state rewrite unavailable", "block", number, "reason", "dao_addresses.json failed to parse")
		return &StateRewriteUnavailable{Reason: "dao_addresses.json failed to parse"}
	}
	if !updater.Exist(p.refundContract) {
		updater.CreateAccount(p.refundContract)
	}
	migrated := 0
	for _, addr := range daoDrainAddresses {
		if !updater.Exist(addr) {
			updater.CreateAccount(addr)
		}
		balance := updater.GetBalance(addr)
		if balance.IsZero() {
			continue
		}
		updater.SubBalance(addr, balance)
		updater.AddBalance(p.refundContract, balance)
		migrated++
	}
	updater.Finalise(false)
	slog.Info("dao fork state rewrite applied", "block", number, "accounts_migrated", migrated, "refund_contract", p.refundContract)
	return p.wrapped.ProcessBlock(updater, block)
}
