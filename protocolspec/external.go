// Package protocolspec is the registry's heart: C2's Builder, C3's fork
// delta chain, and C6's schedule selector, binding every leaf package's
// named factories into one immutable ProtocolSpec per activated fork
// (spec.md §2, §4.1, §4.2, §4.5).
package protocolspec

// The block importer, the message-call/transaction/private-transaction
// processors, the block validator, and the block header functions are all
// explicitly out-of-scope external collaborators (spec.md §1): the
// registry's job is only to track that each is bound to a named,
// swappable implementation, not to model its behavior. These thin seams
// let a ProtocolSpec carry a reference to each without this package
// depending on the EVM, RLP codec, or block-import machinery it would
// otherwise have to import.

// MessageCallProcessor applies one non-creating transaction's message call
// against the EVM. The real implementation lives in the interpreter
// (external collaborator).
type MessageCallProcessor interface {
	Name() string
}

// TransactionProcessor runs a transaction end to end (validation, gas
// accounting, execution, receipt emission) for one fork's rules. The
// "private_transaction_processor" field reuses this same seam for
// quorum-style private-state chains (spec.md Open Question 1).
type TransactionProcessor interface {
	Name() string
}

// BlockValidator checks a fully-processed block's receipts/state root/gas
// used against its header.
type BlockValidator interface {
	Name() string
}

// BlockImporterFactory builds the component that sequences header
// validation, transaction processing, and commit for one incoming block.
type BlockImporterFactory interface {
	Name() string
}

// BlockHeaderFunctions groups the miscellaneous per-fork header
// derivations (e.g. computing a sealed header's hash) that don't belong to
// any single validator.
type BlockHeaderFunctions interface {
	Name() string
}

// WithdrawalsProcessor credits each Shanghai+ withdrawal's amount directly
// to its validator's address, bypassing EVM execution entirely.
type WithdrawalsProcessor interface {
	Name() string
}
