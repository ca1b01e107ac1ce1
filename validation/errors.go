package validation

import "fmt"

// ErrInitCodeTooLarge is returned by a Shanghai+ TransactionValidator when a
// creation transaction's init code exceeds params.ShanghaiInitCodeSizeLimit
// (spec.md E6).
type ErrInitCodeTooLarge struct {
	Size, Limit int
}

func (e *ErrInitCodeTooLarge) Error() string {
	return fmt.Sprintf("max initcode size exceeded: code size %d limit %d", e.Size, e.Limit)
}

// ErrTxTypeNotSupported is returned when a transaction's envelope type is
// not in the fork's accepted set (spec.md §4.2's per-fork type lists).
type ErrTxTypeNotSupported struct {
	Type  uint8
	Fork  string
}

func (e *ErrTxTypeNotSupported) Error() string {
	return fmt.Sprintf("transaction type %d not supported by %s", e.Type, e.Fork)
}

// ErrMissingChainID is returned by the EIP-155 check once chain-id binding
// is required and a transaction omits it or carries a different chain id.
var ErrMissingChainID = fmt.Errorf("transaction is missing required chain id (EIP-155)")

// ErrSignatureSHigh is Homestead's EIP-2 malleability check failure.
var ErrSignatureSHigh = fmt.Errorf("signature s-value is in the upper half of the curve order")

// ErrContractCodeTooLarge is EIP-170's post-deployment size check failure.
type ErrContractCodeTooLarge struct {
	Size, Limit int
}

func (e *ErrContractCodeTooLarge) Error() string {
	return fmt.Sprintf("contract code size %d exceeds limit %d", e.Size, e.Limit)
}

// ErrInvalidCodePrefix is EIP-3541's 0xEF deployed-code rejection.
var ErrInvalidCodePrefix = fmt.Errorf("contract creation code starts with the EOF 0xEF prefix")

// ErrWithdrawalsBeforeShanghai mirrors the BSC state-processor guard seen in
// the pack ("withdrawals before shanghai").
var ErrWithdrawalsBeforeShanghai = fmt.Errorf("withdrawals present in a block before Shanghai activation")

// ErrDepositsNotAllowed gates the experimental AllowedDeposits rule.
var ErrDepositsNotAllowed = fmt.Errorf("deposits present in a block before they are allowed")
