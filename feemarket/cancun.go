package feemarket

import (
	"github.com/gorules/ethforks/core/types"
	"github.com/gorules/ethforks/params"
	"github.com/holiman/uint256"
)

// Cancun extends London with the blob gas price, a second, independent gas
// dimension priced by its own EIP-4844 fake-exponential formula rather than
// execution gas supply/demand.
type Cancun struct{ London }

// NewCancun returns the standard mainnet-tuned Cancun fee market.
func NewCancun() Cancun { return Cancun{London: NewLondon()} }

func (Cancun) Name() string { return "cancun" }

// BlobBaseFee computes the per-blob-gas-unit price from the parent header's
// excess blob gas, via EIP-4844's fake-exponential approximation.
func (Cancun) BlobBaseFee(parent *types.Header) *uint256.Int {
	if parent.ExcessBlobGas == nil {
		return uint256.NewInt(params.MinBlobGasPrice)
	}
	return fakeExponential(params.MinBlobGasPrice, *parent.ExcessBlobGas, params.BlobGasPriceUpdateFraction)
}

// NextExcessBlobGas computes the child block's excess blob gas from the
// parent's excess and used blob gas (EIP-4844).
func NextExcessBlobGas(parentExcess, parentUsed uint64) uint64 {
	total := parentExcess + parentUsed
	if total < params.TargetBlobGasPerBlock {
		return 0
	}
	return total - params.TargetBlobGasPerBlock
}

// fakeExponential evaluates factor * e^(numerator/denominator) using the
// integer approximation EIP-4844 specifies.
func fakeExponential(factor uint64, numerator uint64, denominator uint64) *uint256.Int {
	i := uint64(1)
	output := new(uint256.Int).SetUint64(factor * denominator)
	numeratorAccum := new(uint256.Int).SetUint64(factor * denominator)
	denom := uint256.NewInt(denominator)
	num := uint256.NewInt(numerator)
	for !numeratorAccum.IsZero() {
		numeratorAccum.Mul(numeratorAccum, num)
		numeratorAccum.Div(numeratorAccum, denom)
		numeratorAccum.Div(numeratorAccum, uint256.NewInt(i))
		output.Add(output, numeratorAccum)
		i++
	}
	return output.Div(output, denom)
}
