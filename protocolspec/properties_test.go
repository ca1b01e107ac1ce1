package protocolspec

import (
	"math/big"
	"testing"

	"github.com/gorules/ethforks/common"
	"github.com/gorules/ethforks/core/types"
	"github.com/gorules/ethforks/params"
	"github.com/gorules/ethforks/receipt"
	"github.com/holiman/uint256"
	"github.com/stretchr/testify/require"
)

// Property 1: field totality — every built fork's spec has every required
// field populated; Build itself already enforces this, so a schedule that
// builds at all has already verified it for every fork in forkSteps.
func TestPropertyFieldTotalityAcrossEveryFork(t *testing.T) {
	schedule, err := BuildSchedule(mainnetConfig(), nil)
	require.NoError(t, err)
	for _, f := range schedule.ForkNames() {
		spec, ok := schedule.Spec(f)
		require.True(t, ok)
		require.NotNil(t, spec.GasCalculator)
		require.NotNil(t, spec.EVMFactory)
		require.NotNil(t, spec.ContractCreationProcessor)
		require.NotNil(t, spec.TransactionValidator)
		require.NotNil(t, spec.BlockHeaderValidator)
		require.NotNil(t, spec.BlockProcessor)
		require.NotNil(t, spec.TransactionReceiptFactory)
		require.NotNil(t, spec.DifficultyCalculator)
		require.NotNil(t, spec.FeeMarket)
		require.NotNil(t, spec.BlockReward)
		require.NotNil(t, spec.MiningBeneficiaryCalculator)
	}
}

// Property 2: delta monotonicity — a fork that lists no delta for a field
// inherits its predecessor's value unchanged. Petersburg changes only its
// gas calculator relative to Constantinople.
func TestPropertyDeltaMonotonicityPetersburgInheritsFromConstantinople(t *testing.T) {
	cfg := mainnetConfig()
	constantinople := buildChainThrough(t, cfg, params.Constantinople)
	petersburg, err := buildPetersburg(cfg, constantinople)
	require.NoError(t, err)

	require.Equal(t, constantinople.EVMFactory, petersburg.EVMFactory)
	require.Equal(t, constantinople.Rules, petersburg.Rules)
	require.Equal(t, constantinople.DifficultyCalculator, petersburg.DifficultyCalculator)
	require.Equal(t, constantinople.BlockReward, petersburg.BlockReward)
	require.NotEqual(t, constantinople.GasCalculator.Name(), petersburg.GasCalculator.Name())
}

// Property 3: the ether-denominated block reward constants are bit-exact.
func TestPropertyBlockRewardConstantsAreExact(t *testing.T) {
	require.Equal(t, "5000000000000000000", params.FrontierBlockReward.String())
	require.Equal(t, "3000000000000000000", params.ByzantiumBlockReward.String())
	require.Equal(t, "2000000000000000000", params.ConstantinopleBlockReward.String())
	require.True(t, params.ParisBlockReward.IsZero())
}

// Property 4: contract/init-code size limits match spec.md §3 exactly,
// and the right value is bound by the right fork's ProtocolSpec.
func TestPropertySizeLimitsPerFork(t *testing.T) {
	require.Equal(t, 1<<31-1, params.FrontierContractSizeLimit)
	require.Equal(t, 24576, params.SpuriousDragonContractSizeLimit)
	require.Equal(t, 49152, params.ShanghaiInitCodeSizeLimit)

	cfg := mainnetConfig()
	frontier, err := buildFrontier(cfg, nil)
	require.NoError(t, err)
	require.Equal(t, params.FrontierContractSizeLimit, frontier.ContractCreationProcessor.MaxCodeSize())

	spuriousDragon := buildChainThrough(t, cfg, params.SpuriousDragon)
	require.Equal(t, params.SpuriousDragonContractSizeLimit, spuriousDragon.ContractCreationProcessor.MaxCodeSize())
}

// Property 5: schedule monotonicity — a later-or-equal block/timestamp
// query never resolves to an earlier fork than an earlier query did.
func TestPropertyScheduleMonotonicityAcrossIncreasingBlocks(t *testing.T) {
	schedule, err := BuildSchedule(mainnetConfig(), nil)
	require.NoError(t, err)

	blocks := []int64{0, 1_150_000, 2_675_000, 9_069_000, 12_244_000, 12_965_000}
	rank := map[string]int{}
	for i, f := range schedule.ForkNames() {
		spec, ok := schedule.Spec(f)
		require.True(t, ok)
		rank[spec.Name] = i
	}
	lastRank := -1
	for _, b := range blocks {
		spec, err := schedule.ByBlockHeader(testHeader(b, 0, big.NewInt(1)))
		require.NoError(t, err)
		require.GreaterOrEqual(t, rank[spec.Name], lastRank)
		lastRank = rank[spec.Name]
	}
}

// Property 6: receipt round-trip — each factory variant's Receipt output
// carries exactly the fields that variant promises, recoverable without
// loss for an encoder built on top of it.
func TestPropertyReceiptRoundTripPerVariant(t *testing.T) {
	result := &types.ExecutionResult{GasUsed: 50000, Failed: true, RevertReason: []byte("reverted")}

	pre := receipt.Frontier.Build(types.LegacyTxType, result, []byte{0xaa}, 50000)
	require.Equal(t, []byte{0xaa}, pre.PostState)
	require.False(t, pre.HasStatus)

	byz := receipt.Byzantium.Build(types.LegacyTxType, result, nil, 50000)
	require.True(t, byz.HasStatus)
	require.Equal(t, receipt.StatusFailed, byz.Status)
	require.Nil(t, byz.RevertReason)

	withReason := receipt.ByzantiumWithReason.Build(types.LegacyTxType, result, nil, 50000)
	require.Equal(t, []byte("reverted"), withReason.RevertReason)

	berlin := receipt.Berlin.Build(types.AccessListTxType, result, nil, 50000)
	require.True(t, berlin.HasType)
	require.Equal(t, types.AccessListTxType, berlin.Type)
}

// Property 7: DAO idempotence — re-running the DAO block processor a
// second time on an already-migrated state is a no-op (every drain
// address balance is already zero, so the second pass debits nothing
// further).
func TestPropertyDAOProcessorIsIdempotentPerBlock(t *testing.T) {
	cfg := mainnetConfig()
	frontier, err := buildFrontier(cfg, nil)
	require.NoError(t, err)
	homestead, err := buildHomestead(cfg, frontier)
	require.NoError(t, err)
	daoInit, err := buildDAOInit(cfg, homestead)
	require.NoError(t, err)

	updater := newMemUpdater()
	drainAddr := common.HexToAddress("0xd4fe7bc31cedb7bfb8a345f31e668033056b2728")
	updater.AddBalance(drainAddr, uint256.NewInt(100))
	block := &types.Block{Header: &types.Header{Number: big.NewInt(1_920_000)}}

	require.NoError(t, daoInit.BlockProcessor.ProcessBlock(updater, block))
	refund := daoRefundContract()
	require.Equal(t, uint64(100), updater.GetBalance(refund).Uint64())

	require.NoError(t, daoInit.BlockProcessor.ProcessBlock(updater, block))
	require.Equal(t, uint64(100), updater.GetBalance(refund).Uint64())
	require.True(t, updater.GetBalance(drainAddr).IsZero())
}
