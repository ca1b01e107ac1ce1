// Package txvalidator holds C1's per-fork TransactionValidator catalog:
// accepted transaction types, chain-id binding, signature-malleability, and
// init-code-size checks (spec.md §4.2).
package txvalidator

import (
	"math/big"

	"github.com/gorules/ethforks/core/types"
	"github.com/gorules/ethforks/validation"
)

// secp256k1HalfN is the upper bound EIP-2 places on a valid signature's
// s-value, to rule out malleable (s, n-s) signature pairs.
var secp256k1HalfN = func() *big.Int {
	n, _ := new(big.Int).SetString("7FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFF5D576E7357A4501DDFE92F46681B20A0", 16)
	return n
}()

// TransactionValidator checks a transaction against a fork's acceptance
// rules before it ever reaches the processor.
type TransactionValidator interface {
	Name() string
	AcceptedTypes() []types.TxType
	ValidateSignature(tx *types.Transaction) error
	ValidateChainID(tx *types.Transaction, chainID *big.Int) error
	ValidateInitCodeSize(tx *types.Transaction) error
}

type baseValidator struct {
	name          string
	acceptedTypes []types.TxType
	requireChainID bool
	enforceLowS    bool
	initCodeLimit  int // 0: no limit enforced
}

func (b baseValidator) Name() string                   { return b.name }
func (b baseValidator) AcceptedTypes() []types.TxType { return b.acceptedTypes }

func (b baseValidator) ValidateSignature(tx *types.Transaction) error {
	if b.enforceLowS && tx.S != nil && tx.S.Cmp(secp256k1HalfN) > 0 {
		return validation.ErrSignatureSHigh
	}
	return nil
}

func (b baseValidator) ValidateChainID(tx *types.Transaction, chainID *big.Int) error {
	if !b.requireChainID {
		return nil
	}
	if tx.ChainID == nil {
		return validation.ErrMissingChainID
	}
	if tx.ChainID.Cmp(chainID) != 0 {
		return validation.ErrMissingChainID
	}
	return nil
}

func (b baseValidator) ValidateInitCodeSize(tx *types.Transaction) error {
	if b.initCodeLimit == 0 || !tx.IsContractCreation() {
		return nil
	}
	if len(tx.Data) > b.initCodeLimit {
		return &validation.ErrInitCodeTooLarge{Size: len(tx.Data), Limit: b.initCodeLimit}
	}
	return nil
}

// Frontier accepts only legacy transactions with no chain-id binding
// (spec.md §4.2: "no chain-id binding, no EIP-155").
var Frontier TransactionValidator = baseValidator{
	name:          "Frontier",
	acceptedTypes: []types.TxType{types.LegacyTxType},
}

// Homestead additionally enforces the EIP-2 low-s signature check.
var Homestead TransactionValidator = baseValidator{
	name:          "Homestead",
	acceptedTypes: []types.TxType{types.LegacyTxType},
	enforceLowS:   true,
}

var TangerineWhistle = Homestead

// SpuriousDragon binds transactions to the chain id (EIP-155).
var SpuriousDragon TransactionValidator = baseValidator{
	name:           "Spurious Dragon",
	acceptedTypes:  []types.TxType{types.LegacyTxType},
	enforceLowS:    true,
	requireChainID: true,
}

var (
	Byzantium      = SpuriousDragon
	Constantinople = Byzantium
	Petersburg     = Constantinople
	Istanbul       = Petersburg
	MuirGlacier    = Istanbul
)

// Berlin accepts EIP-2930 access-list transactions in addition to legacy.
var Berlin TransactionValidator = baseValidator{
	name:           "Berlin",
	acceptedTypes:  []types.TxType{types.LegacyTxType, types.AccessListTxType},
	enforceLowS:    true,
	requireChainID: true,
}

// London accepts EIP-1559 dynamic-fee transactions in addition.
var London TransactionValidator = baseValidator{
	name:           "London",
	acceptedTypes:  []types.TxType{types.LegacyTxType, types.AccessListTxType, types.DynamicFeeTxType},
	enforceLowS:    true,
	requireChainID: true,
}

var (
	ArrowGlacier = London
	GrayGlacier  = ArrowGlacier
	Paris        = GrayGlacier
)

// Shanghai additionally enforces the EIP-3860 init-code size limit on
// creation transactions.
func Shanghai(initCodeLimit int) TransactionValidator {
	return baseValidator{
		name:           "Shanghai",
		acceptedTypes:  []types.TxType{types.LegacyTxType, types.AccessListTxType, types.DynamicFeeTxType},
		enforceLowS:    true,
		requireChainID: true,
		initCodeLimit:  initCodeLimit,
	}
}

// Cancun additionally accepts EIP-4844 blob transactions.
func Cancun(initCodeLimit int) TransactionValidator {
	v := Shanghai(initCodeLimit).(baseValidator)
	v.name = "Cancun"
	v.acceptedTypes = []types.TxType{types.LegacyTxType, types.AccessListTxType, types.DynamicFeeTxType, types.BlobTxType}
	return v
}
