// Package receipt holds C5's four ReceiptFactory variants: pre-Byzantium
// (intermediate state root), Byzantium (0/1 status), Byzantium+reason (adds
// an optional revert reason), and Berlin (typed, carries the transaction
// envelope type). Each factory is pure: it takes a transaction type, an
// execution result, a post-transaction state root, and the cumulative gas
// used, and returns a Receipt (spec.md §4.4).
package receipt

import (
	"github.com/gorules/ethforks/common"
	"github.com/gorules/ethforks/core/types"
)

// Status values mirror geth's ReceiptStatusFailed/ReceiptStatusSuccessful.
const (
	StatusFailed     = uint64(0)
	StatusSuccessful = uint64(1)
)

// Receipt is the factory output. PostState is populated only by the
// pre-Byzantium variant; Status only from Byzantium onward. Type is
// populated only by the Berlin (typed) variant; all three of its
// predecessors implicitly describe a legacy transaction.
type Receipt struct {
	PostState         []byte // non-nil: pre-Byzantium form
	HasStatus         bool   // true: Byzantium-onward form
	Status            uint64
	CumulativeGasUsed uint64
	GasUsed           uint64
	Logs              []*types.Log
	ContractAddress   *common.Address
	RevertReason      []byte // non-nil only on Byzantium+reason or Berlin with Failed
	HasType           bool // true: Berlin-onward typed form
	Type              types.TxType
}

// BloomAppender aggregates one receipt's logs into a block-wide bloom
// filter as each receipt is built, mirroring the pack's
// AsyncReceiptBloomGenerator usage in core/state_processor.go. Receipt
// construction stays pure and synchronous regardless: Build calls the
// appender inline and never blocks on it, leaving any asynchrony to the
// appender's own implementation (external collaborator).
type BloomAppender interface {
	AppendBloom(logs []*types.Log)
}

// Factory builds a Receipt from one transaction's execution outcome. It is
// pure: it reads no external state beyond its arguments and an optional
// bloom appender.
type Factory interface {
	Name() string
	Build(txType types.TxType, result *types.ExecutionResult, postStateRoot []byte, cumulativeGasUsed uint64, appenders ...BloomAppender) *Receipt
}

type baseFactory struct {
	name           string
	useStateRoot   bool
	useStatus      bool
	carryReason    bool
	carryType      bool
}

func (f baseFactory) Name() string { return f.name }

func (f baseFactory) Build(txType types.TxType, result *types.ExecutionResult, postStateRoot []byte, cumulativeGasUsed uint64, appenders ...BloomAppender) *Receipt {
	r := &Receipt{
		CumulativeGasUsed: cumulativeGasUsed,
		GasUsed:           result.GasUsed,
		Logs:              result.Logs,
		ContractAddress:   result.ContractAddr,
	}
	if f.useStateRoot {
		r.PostState = postStateRoot
	}
	if f.useStatus {
		r.HasStatus = true
		if result.Failed {
			r.Status = StatusFailed
		} else {
			r.Status = StatusSuccessful
		}
	}
	if f.carryReason && result.Failed {
		r.RevertReason = result.RevertReason
	}
	if f.carryType {
		r.HasType = true
		r.Type = txType
	}
	for _, appender := range appenders {
		appender.AppendBloom(r.Logs)
	}
	return r
}

// Frontier is the pre-Byzantium form: the receipt carries the
// post-transaction intermediate state root instead of a status byte
// (mirrors the BSC state processor's IntermediateRoot branch when
// !config.IsByzantium).
var Frontier Factory = baseFactory{name: "Frontier", useStateRoot: true}

// Byzantium replaces the state root with a 0/1 status byte (mirrors the
// same processor's statedb.Finalise branch once config.IsByzantium holds).
var Byzantium Factory = baseFactory{name: "Byzantium", useStatus: true}

// ByzantiumWithReason additionally carries the revert reason returned by a
// failed transaction, gated on the fork's enable_revert_reason setting
// (spec.md §4.2).
var ByzantiumWithReason Factory = baseFactory{name: "Byzantium+reason", useStatus: true, carryReason: true}

// Berlin adds the typed-transaction envelope field (EIP-2718) on top of the
// Byzantium+reason form.
var Berlin Factory = baseFactory{name: "Berlin", useStatus: true, carryReason: true, carryType: true}
