// Package feemarket holds C1's per-fork FeeMarket catalog: the rules for
// transaction priority, base fee, and coinbase reward (spec.md GLOSSARY).
package feemarket

import (
	"github.com/gorules/ethforks/core/types"
	"github.com/holiman/uint256"
)

// FeeMarket computes what the coinbase is actually paid per unit of gas for
// a transaction, and (from London onward) the next block's base fee.
type FeeMarket interface {
	Name() string

	// EffectiveGasPrice is what the sender is charged per unit of gas.
	EffectiveGasPrice(tx *types.Transaction, header *types.Header) *uint256.Int

	// CoinbaseTip is what the coinbase actually earns per unit of gas,
	// which under EIP-1559 excludes the burned base fee.
	CoinbaseTip(tx *types.Transaction, header *types.Header) *uint256.Int

	// NextBaseFee computes the base fee a child of parent must carry.
	// Legacy markets return nil (no base fee concept).
	NextBaseFee(parent *types.Header, gasTarget uint64) *uint256.Int
}

// Legacy is the pre-London market: the sender pays, and the coinbase
// earns, the transaction's flat gas price.
var Legacy FeeMarket = legacyMarket{}

type legacyMarket struct{}

func (legacyMarket) Name() string { return "legacy" }

func (legacyMarket) EffectiveGasPrice(tx *types.Transaction, _ *types.Header) *uint256.Int {
	return tx.GasPrice.Clone()
}

func (legacyMarket) CoinbaseTip(tx *types.Transaction, _ *types.Header) *uint256.Int {
	return tx.GasPrice.Clone()
}

func (legacyMarket) NextBaseFee(*types.Header, uint64) *uint256.Int { return nil }
