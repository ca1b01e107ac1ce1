// Package deposits holds C1's per-fork DepositsValidator catalog (spec.md
// §4.2, experimental only).
package deposits

import (
	"github.com/gorules/ethforks/core/types"
	"github.com/gorules/ethforks/validation"
)

// DepositsValidator gates whether a block may carry validator deposits
// (spec.md §4.2's "AllowedDeposits" rule, experimental only).
type DepositsValidator interface {
	Name() string
	Validate(deposits []*types.Deposit) error
}

type notAllowedDeposits struct{}

func (notAllowedDeposits) Name() string { return "not-allowed" }
func (notAllowedDeposits) Validate(deposits []*types.Deposit) error {
	if len(deposits) > 0 {
		return validation.ErrDepositsNotAllowed
	}
	return nil
}

// DepositsNotAllowed is used by every fork up to and including Future.
var DepositsNotAllowed DepositsValidator = notAllowedDeposits{}

type allowedDeposits struct{}

func (allowedDeposits) Name() string                            { return "allowed" }
func (allowedDeposits) Validate(deposits []*types.Deposit) error { return nil }

// DepositsAllowed is used by the Experimental fork only (spec.md §4.2).
var DepositsAllowed DepositsValidator = allowedDeposits{}
