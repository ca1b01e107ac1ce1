// Package withdrawals holds C1's per-fork WithdrawalsValidator catalog
// (spec.md §4.2, active from Shanghai).
package withdrawals

import (
	"github.com/gorules/ethforks/core/types"
	"github.com/gorules/ethforks/validation"
)

// WithdrawalsValidator gates whether a block may carry withdrawals
// (spec.md §4.2's "AllowedWithdrawals" rule, active from Shanghai).
type WithdrawalsValidator interface {
	Name() string
	Validate(withdrawals []*types.Withdrawal) error
}

type notAllowedWithdrawals struct{}

func (notAllowedWithdrawals) Name() string { return "not-allowed" }
func (notAllowedWithdrawals) Validate(withdrawals []*types.Withdrawal) error {
	if len(withdrawals) > 0 {
		return validation.ErrWithdrawalsBeforeShanghai
	}
	return nil
}

// WithdrawalsNotAllowed treats any non-empty withdrawals list as a
// validation failure, mirroring the BSC state-processor guard in the pack
// ("withdrawals before shanghai"). No fork binds it: pre-Shanghai
// ProtocolSpecs leave WithdrawalsValidator unset.
var WithdrawalsNotAllowed WithdrawalsValidator = notAllowedWithdrawals{}

type allowedWithdrawals struct{}

func (allowedWithdrawals) Name() string                                  { return "allowed" }
func (allowedWithdrawals) Validate(withdrawals []*types.Withdrawal) error { return nil }

// WithdrawalsAllowed is used from Shanghai onward.
var WithdrawalsAllowed WithdrawalsValidator = allowedWithdrawals{}
