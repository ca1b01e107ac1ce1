package gas

import (
	"fmt"

	"github.com/gorules/ethforks/core/types"
	"github.com/gorules/ethforks/params"
)

const (
	gasLimitBoundDivisor = 1024
	minGasLimit          = 5000
)

// GasLimitCalculator is C1's "gas_limit_calculator" catalog entry: it
// proposes a child block's gas limit from its parent and a miner-desired
// value, reports the gas target a fee market measures usage against, and
// (Cancun onward) caps the independent blob-gas dimension a block may
// consume. Grounded on go-ethereum's CalcGasLimit (core/block_validator_test.go
// in the pack exercises its ±1/1024 bound) and CalcBlobFee's
// MaxBlobGasPerBlock check.
type GasLimitCalculator interface {
	Name() string
	NextGasLimit(parent *types.Header, desired uint64) uint64
	GasTarget(gasLimit uint64) uint64
	// MaxBlobGas returns the per-block blob gas ceiling, or 0 before Cancun.
	MaxBlobGas() uint64
	// ValidateBlobGas rejects a block whose BlobGasUsed exceeds MaxBlobGas.
	ValidateBlobGas(blobGasUsed uint64) error
}

// ErrBlobGasLimitExceeded reports a block's blob gas usage exceeding the
// per-block cap (EIP-4844).
type ErrBlobGasLimitExceeded struct {
	Used, Limit uint64
}

func (e *ErrBlobGasLimitExceeded) Error() string {
	return fmt.Sprintf("blob gas used %d exceeds per-block limit %d", e.Used, e.Limit)
}

func calcGasLimit(parentGasLimit, desiredLimit uint64) uint64 {
	delta := parentGasLimit/gasLimitBoundDivisor - 1
	limit := parentGasLimit
	if desiredLimit < minGasLimit {
		desiredLimit = minGasLimit
	}
	if limit < desiredLimit {
		limit = parentGasLimit + delta
		if limit > desiredLimit {
			limit = desiredLimit
		}
		return limit
	}
	limit = parentGasLimit - delta
	if limit < desiredLimit {
		limit = desiredLimit
	}
	if limit < minGasLimit {
		limit = minGasLimit
	}
	return limit
}

type standardGasLimitCalculator struct{ name string }

func (c standardGasLimitCalculator) Name() string { return c.name }

func (c standardGasLimitCalculator) NextGasLimit(parent *types.Header, desired uint64) uint64 {
	return calcGasLimit(parent.GasLimit, desired)
}

func (c standardGasLimitCalculator) GasTarget(gasLimit uint64) uint64 { return gasLimit }

func (c standardGasLimitCalculator) MaxBlobGas() uint64 { return 0 }

func (c standardGasLimitCalculator) ValidateBlobGas(uint64) error { return nil }

// FrontierGasLimit is the ±1/1024 bound-divisor rule with no elasticity: the
// target equals the limit, and no blob gas dimension exists yet.
var FrontierGasLimit GasLimitCalculator = standardGasLimitCalculator{name: "Frontier"}

type londonGasLimitCalculator struct {
	name                 string
	elasticityMultiplier uint64
}

func (c londonGasLimitCalculator) Name() string { return c.name }

func (c londonGasLimitCalculator) NextGasLimit(parent *types.Header, desired uint64) uint64 {
	parentGasLimit := parent.GasLimit
	if parent.BaseFeePerGas == nil {
		// Activation block: double the parent's limit so the post-fork gas
		// target matches the pre-fork gas limit (spec.md §4.2).
		parentGasLimit = parent.GasLimit * c.elasticityMultiplier
	}
	return calcGasLimit(parentGasLimit, desired)
}

func (c londonGasLimitCalculator) GasTarget(gasLimit uint64) uint64 {
	return gasLimit / c.elasticityMultiplier
}

func (c londonGasLimitCalculator) MaxBlobGas() uint64 { return 0 }

func (c londonGasLimitCalculator) ValidateBlobGas(uint64) error { return nil }

// LondonGasLimit targets an elasticity-multiplied gas target across the
// fork activation block (spec.md §4.2).
var LondonGasLimit GasLimitCalculator = londonGasLimitCalculator{name: "London", elasticityMultiplier: 2}

// cancunGasLimitCalculator reuses London's execution-gas elasticity target
// unchanged and adds the independent blob-gas ceiling EIP-4844 introduces.
type cancunGasLimitCalculator struct {
	londonGasLimitCalculator
	maxBlobGas uint64
}

func (c cancunGasLimitCalculator) MaxBlobGas() uint64 { return c.maxBlobGas }

func (c cancunGasLimitCalculator) ValidateBlobGas(blobGasUsed uint64) error {
	if blobGasUsed > c.maxBlobGas {
		return &ErrBlobGasLimitExceeded{Used: blobGasUsed, Limit: c.maxBlobGas}
	}
	return nil
}

// CancunGasLimit caps blob gas per block at params.MaxBlobGasPerBlock on top
// of London's unchanged execution gas limit rule (spec.md §4.2: "Gas-limit
// calculator: caps blob gas per block").
var CancunGasLimit GasLimitCalculator = cancunGasLimitCalculator{
	londonGasLimitCalculator: londonGasLimitCalculator{name: "Cancun", elasticityMultiplier: 2},
	maxBlobGas:               params.MaxBlobGasPerBlock,
}
