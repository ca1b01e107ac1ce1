package deposits

import (
	"testing"

	"github.com/gorules/ethforks/core/types"
	"github.com/gorules/ethforks/validation"
	"github.com/stretchr/testify/require"
)

func TestDepositsNotAllowedRejectsNonEmptyList(t *testing.T) {
	err := DepositsNotAllowed.Validate([]*types.Deposit{{Index: 1}})
	require.ErrorIs(t, err, validation.ErrDepositsNotAllowed)
}

func TestDepositsNotAllowedAcceptsEmptyList(t *testing.T) {
	require.NoError(t, DepositsNotAllowed.Validate(nil))
}

func TestDepositsAllowedAcceptsAnyList(t *testing.T) {
	require.NoError(t, DepositsAllowed.Validate([]*types.Deposit{{Index: 1}}))
}
