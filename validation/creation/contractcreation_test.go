package creation

import (
	"testing"

	"github.com/gorules/ethforks/validation"
	"github.com/stretchr/testify/require"
)

func TestFrontierHasNoCodeSizeLimit(t *testing.T) {
	p := Frontier(0)
	require.Equal(t, uint64(0), p.InitialNonce())
	require.NoError(t, p.ValidateCode(make([]byte, 100_000)))
}

func TestSpuriousDragonRejectsOversizedCode(t *testing.T) {
	p := SpuriousDragon(24576)
	require.Equal(t, uint64(1), p.InitialNonce())
	err := p.ValidateCode(make([]byte, 24577))
	require.Error(t, err)
	var tooLarge *validation.ErrContractCodeTooLarge
	require.ErrorAs(t, err, &tooLarge)
}

func TestLondonRejectsEFPrefixedCode(t *testing.T) {
	p := London(24576)
	err := p.ValidateCode([]byte{0xEF, 0x01, 0x02})
	require.ErrorIs(t, err, validation.ErrInvalidCodePrefix)
}

func TestCancunAcceptsValidEOFContainer(t *testing.T) {
	p := Cancun(24576)
	require.NoError(t, p.ValidateCode([]byte{0xEF, 0x00, 0x01}))
}
