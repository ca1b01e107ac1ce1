package gas

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFrontierCodeDepositNeverAbortsCreation(t *testing.T) {
	_, aborts := Frontier.CodeDepositCost(100)
	require.False(t, aborts, "Frontier must tolerate a code-deposit gas shortfall")
}

func TestHomesteadCodeDepositAbortsCreation(t *testing.T) {
	_, aborts := Homestead.CodeDepositCost(100)
	require.True(t, aborts)
}

func TestTangerineWhistleRepricesIO(t *testing.T) {
	require.Greater(t, TangerineWhistle.Schedule().SloadGas, Homestead.Schedule().SloadGas)
	require.Greater(t, TangerineWhistle.Schedule().CallGas, Homestead.Schedule().CallGas)
}

func TestBerlinAddsAccessListCosts(t *testing.T) {
	s := Berlin.Schedule()
	require.NotZero(t, s.ColdAccountAccessCost)
	require.NotZero(t, s.AccessListAddressCost)
	require.Zero(t, Istanbul.Schedule().ColdAccountAccessCost, "cold-access accounting must not leak backward to Istanbul")
}

func TestShanghaiMetersInitCode(t *testing.T) {
	require.NotZero(t, Shanghai.Schedule().InitCodeWordGas)
	require.Zero(t, London.Schedule().InitCodeWordGas)
}

func TestUnrelatedForkPairsInheritUnchangedFields(t *testing.T) {
	// Delta monotonicity (spec.md §8 property 2): Spurious Dragon's gas
	// schedule changes nothing versus Tangerine Whistle.
	require.Equal(t, TangerineWhistle.Schedule(), SpuriousDragon.Schedule())
	require.Equal(t, SpuriousDragon.Schedule(), Byzantium.Schedule())
}
