// Package vmrules holds the EVM opcode-availability Rules snapshot (a
// supplemented feature, SPEC_FULL.md §4) and the EVMFactory interface the
// registry's "evm" field binds to. The interpreter itself is an external
// collaborator (spec.md §1); this package only records which opcodes a
// fork turns on.
package vmrules

import (
	"github.com/gorules/ethforks/core/state"
	"github.com/gorules/ethforks/core/types"
)

// Rules is a pure, cheap-to-compute boolean snapshot of which opcode
// families are active. Grounded on go-ethereum's ChainConfig.Rules
// (other_examples/b7070b65_..._params-config.go).
type Rules struct {
	IsHomestead      bool // DELEGATECALL
	IsByzantium      bool // REVERT, RETURNDATACOPY, STATICCALL
	IsConstantinople bool // CREATE2, EXTCODEHASH, SHL/SHR/SAR
	IsIstanbul       bool // CHAINID, SELFBALANCE, SSTORE EIP-2200
	IsBerlin         bool // EIP-2929 access lists
	IsLondon         bool // BASEFEE
	IsParis          bool // PREVRANDAO replaces DIFFICULTY
	IsShanghai       bool // PUSH0
	IsCancun         bool // TLOAD/TSTORE (EIP-1153), MCOPY, BLOBHASH
}

// EVM is the minimal surface the registry needs from the external
// interpreter: enough to run a message call or create inside a block
// processor. Its method set is intentionally small — the rest of the
// interpreter's contract belongs entirely to the external collaborator.
type EVM interface {
	Rules() Rules
}

// EVMFactory builds a fork-specific EVM instance bound to a world state and
// opcode Rules snapshot. A factory together with a fork's Rules is C1's
// "evm" catalog entry.
type EVMFactory func(statedb state.Updater, rules Rules, tuningOpaque any) EVM

// BlockContext carries the header-derived values an EVMFactory needs but
// that don't belong in Rules (which is purely about opcode availability).
type BlockContext struct {
	Header *types.Header
}

// stubEVM satisfies EVM by doing nothing but report the Rules it was
// built with. Real message-call/create execution belongs to the external
// interpreter collaborator (spec.md §1); this lets a ProtocolSpec be fully
// assembled and exercised by this package's own tests without one.
type stubEVM struct{ rules Rules }

func (s stubEVM) Rules() Rules { return s.rules }

// DefaultFactory is the EVMFactory bound by every fork's ProtocolSpec
// unless a caller overrides it with a real interpreter-backed factory via
// protocolspec.Builder.WithEVM.
func DefaultFactory(_ state.Updater, rules Rules, _ any) EVM {
	return stubEVM{rules: rules}
}
