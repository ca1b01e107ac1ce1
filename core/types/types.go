// Package types holds the minimal block/transaction/receipt shapes the
// registry's contracts operate over. The real codec, RLP/SSZ encoding, and
// networking are external collaborators (spec.md §1); these are plain
// value types sized to what a ProtocolSpec's operations need to read.
package types

import (
	"math/big"

	"github.com/gorules/ethforks/common"
	"github.com/holiman/uint256"
)

// TxType identifies a transaction's envelope, per spec.md's fork-gated
// validator acceptance lists.
type TxType uint8

const (
	LegacyTxType TxType = iota
	AccessListTxType
	DynamicFeeTxType // EIP-1559
	BlobTxType       // EIP-4844
)

// Header is the subset of block-header fields the registry's selectors and
// validators consult.
type Header struct {
	ParentHash      common.Hash
	Coinbase        common.Address
	Number          *big.Int
	Time            uint64
	Difficulty      *big.Int
	ExtraData       []byte
	GasLimit        uint64
	GasUsed         uint64
	BaseFeePerGas   *uint256.Int // nil pre-London
	MixHash         common.Hash  // PREVRANDAO post-Paris
	BlobGasUsed     *uint64      // non-nil post-Cancun
	ExcessBlobGas   *uint64      // non-nil post-Cancun
	WithdrawalsRoot *common.Hash // non-nil post-Shanghai

	// TotalDifficulty is the cumulative PoW difficulty through this block,
	// used solely to drive the Paris transition (spec.md §4.6). It is not
	// part of the header's own consensus encoding.
	TotalDifficulty *big.Int
}

// Withdrawal is a validator balance withdrawal processed in Shanghai+
// blocks.
type Withdrawal struct {
	Index          uint64
	ValidatorIndex uint64
	Address        common.Address
	Amount         uint64 // gwei
}

// Deposit is an experimental validator deposit record (Future/Experimental
// forks, spec.md §4.2's AllowedDeposits).
type Deposit struct {
	PublicKey             []byte
	WithdrawalCredentials []byte
	Amount                uint64
	Signature             []byte
	Index                 uint64
}

// Transaction is the minimal shape a TransactionValidator and
// TransactionProcessor need.
type Transaction struct {
	Type     TxType
	ChainID  *big.Int // nil for pre-EIP-155 legacy transactions
	Nonce    uint64
	GasLimit uint64
	GasPrice *uint256.Int // legacy / access-list
	GasFeeCap *uint256.Int // EIP-1559
	GasTipCap *uint256.Int // EIP-1559
	To        *common.Address // nil: contract creation
	Value     *uint256.Int
	Data      []byte // init code for a creation transaction
	BlobHashes []common.Hash

	V, R, S *big.Int
}

// IsContractCreation reports whether this transaction deploys a new
// contract.
func (tx *Transaction) IsContractCreation() bool { return tx.To == nil }

// Log is an EVM event log, accumulated into a receipt.
type Log struct {
	Address common.Address
	Topics  []common.Hash
	Data    []byte
}

// Block bundles a header with its transactions, ommers, and (post-Shanghai)
// withdrawals.
type Block struct {
	Header       *Header
	Transactions []*Transaction
	Ommers       []*Header
	Withdrawals  []*Withdrawal
	Deposits     []*Deposit
}

// ExecutionResult is what a (non-modelled) transaction processor reports
// back to a ReceiptFactory.
type ExecutionResult struct {
	GasUsed      uint64
	Failed       bool
	RevertReason []byte // non-nil only when Failed and revert data was returned
	ContractAddr *common.Address
	Logs         []*Log
}
