package feemarket

import (
	"github.com/gorules/ethforks/core/types"
	"github.com/gorules/ethforks/params"
	"github.com/holiman/uint256"
)

// London is the EIP-1559 base-fee market: the sender pays min(gasFeeCap,
// baseFee+gasTipCap), the base fee is burned, and only the tip reaches the
// coinbase.
type London struct {
	// ChangeDenominator and ElasticityMultiplier default (NewLondon) to the
	// EIP-1559 mainnet values.
	ChangeDenominator  uint64
	ElasticityMultiplier uint64
}

// NewLondon returns the standard mainnet-tuned London fee market.
func NewLondon() London {
	return London{
		ChangeDenominator:   params.BaseFeeChangeDenominator,
		ElasticityMultiplier: params.ElasticityMultiplier,
	}
}

func (London) Name() string { return "london" }

func effectiveGasTip(tx *types.Transaction, baseFee *uint256.Int) *uint256.Int {
	if tx.Type != types.DynamicFeeTxType && tx.Type != types.BlobTxType {
		return new(uint256.Int).Sub(tx.GasPrice, baseFee)
	}
	avail := new(uint256.Int).Sub(tx.GasFeeCap, baseFee)
	if avail.Cmp(tx.GasTipCap) > 0 {
		return tx.GasTipCap.Clone()
	}
	return avail
}

func (l London) EffectiveGasPrice(tx *types.Transaction, header *types.Header) *uint256.Int {
	baseFee := header.BaseFeePerGas
	if tx.Type != types.DynamicFeeTxType && tx.Type != types.BlobTxType {
		return tx.GasPrice.Clone()
	}
	tip := effectiveGasTip(tx, baseFee)
	return new(uint256.Int).Add(baseFee, tip)
}

func (l London) CoinbaseTip(tx *types.Transaction, header *types.Header) *uint256.Int {
	baseFee := header.BaseFeePerGas
	if baseFee == nil {
		baseFee = new(uint256.Int)
	}
	return effectiveGasTip(tx, baseFee)
}

// NextBaseFee implements EIP-1559's base fee adjustment: unchanged at the
// gas target, up to 12.5% higher/lower at the elasticity bound.
func (l London) NextBaseFee(parent *types.Header, gasTarget uint64) *uint256.Int {
	if parent.BaseFeePerGas == nil {
		// Activation block: the parent carries no base fee yet, so the
		// child starts at params.InitialBaseFee.
		return uint256.NewInt(params.InitialBaseFee)
	}
	parentBaseFee := parent.BaseFeePerGas
	if parent.GasUsed == gasTarget {
		return parentBaseFee.Clone()
	}

	denom := uint256.NewInt(l.ChangeDenominator)
	if parent.GasUsed > gasTarget {
		gasUsedDelta := uint256.NewInt(parent.GasUsed - gasTarget)
		x := new(uint256.Int).Mul(parentBaseFee, gasUsedDelta)
		y := new(uint256.Int).Div(x, uint256.NewInt(gasTarget))
		baseFeeDelta := new(uint256.Int).Div(y, denom)
		if baseFeeDelta.IsZero() {
			baseFeeDelta = uint256.NewInt(1)
		}
		return new(uint256.Int).Add(parentBaseFee, baseFeeDelta)
	}
	gasUsedDelta := uint256.NewInt(gasTarget - parent.GasUsed)
	x := new(uint256.Int).Mul(parentBaseFee, gasUsedDelta)
	y := new(uint256.Int).Div(x, uint256.NewInt(gasTarget))
	baseFeeDelta := new(uint256.Int).Div(y, denom)
	next := new(uint256.Int).Sub(parentBaseFee, baseFeeDelta)
	if next.Sign() < 0 {
		return uint256.NewInt(0)
	}
	return next
}

// ZeroBaseFee is the "is_zero_base_fee" variant spec.md §4.2 calls for:
// EIP-1559 accounting with the base fee pinned at zero, for private/test
// networks that want London's transaction types without fee burning.
type ZeroBaseFee struct{ London }

func (ZeroBaseFee) Name() string { return "zero-base-fee" }

func (z ZeroBaseFee) NextBaseFee(*types.Header, uint64) *uint256.Int {
	return uint256.NewInt(0)
}
