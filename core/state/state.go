// Package state defines the world-state surface the registry's block
// processors read and mutate. The real trie-backed implementation lives in
// an external collaborator (spec.md §1); this is the interface contract.
package state

import (
	"github.com/gorules/ethforks/common"
	"github.com/holiman/uint256"
)

// Updater is exclusive-access, mutable world state, as required by C4's
// contract (spec.md §5: "must be called with exclusive access to that
// updater — the caller is responsible for excluding other writers").
type Updater interface {
	Exist(addr common.Address) bool
	CreateAccount(addr common.Address)
	GetBalance(addr common.Address) *uint256.Int
	AddBalance(addr common.Address, amount *uint256.Int)
	SubBalance(addr common.Address, amount *uint256.Int)
	SetBalance(addr common.Address, amount *uint256.Int)

	Empty(addr common.Address) bool
	SelfDestruct(addr common.Address)

	// Finalise commits pending changes. deleteEmptyObjects mirrors
	// go-ethereum's IntermediateRoot(deleteEmptyObjects bool) argument,
	// active from Spurious Dragon (EIP-161) onward.
	Finalise(deleteEmptyObjects bool)
}
