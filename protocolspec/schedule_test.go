package protocolspec

import (
	"math/big"
	"testing"

	"github.com/gorules/ethforks/core/state"
	"github.com/gorules/ethforks/core/types"
	"github.com/gorules/ethforks/params"
	"github.com/stretchr/testify/require"
)

func testHeader(number int64, timestamp uint64, totalDifficulty *big.Int) *types.Header {
	return &types.Header{Number: big.NewInt(number), Time: timestamp, TotalDifficulty: totalDifficulty}
}

func TestBuildScheduleActivatesEveryConfiguredFork(t *testing.T) {
	schedule, err := BuildSchedule(mainnetConfig(), nil)
	require.NoError(t, err)
	for _, f := range params.ForkOrder {
		_, ok := schedule.Spec(f)
		require.True(t, ok, "fork %s should have a built spec", f)
	}
}

func TestByBlockHeaderSelectsGenesisSpecAtBlockZero(t *testing.T) {
	schedule, err := BuildSchedule(mainnetConfig(), nil)
	require.NoError(t, err)
	spec, err := schedule.ByBlockHeader(testHeader(0, 0, big.NewInt(0)))
	require.NoError(t, err)
	require.Equal(t, "Frontier", spec.Name)
}

func TestByBlockHeaderSelectsLatestActivatedBlockNumberFork(t *testing.T) {
	schedule, err := BuildSchedule(mainnetConfig(), nil)
	require.NoError(t, err)
	spec, err := schedule.ByBlockHeader(testHeader(12_965_000, 0, big.NewInt(1)))
	require.NoError(t, err)
	require.Equal(t, "London", spec.Name)
}

func TestByBlockHeaderSelectsTimestampGatedForkOverBlockNumber(t *testing.T) {
	schedule, err := BuildSchedule(mainnetConfig(), nil)
	require.NoError(t, err)
	// A block far past every block-numbered fork but before Cancun's
	// timestamp must still resolve to Shanghai, not Cancun.
	spec, err := schedule.ByBlockHeader(testHeader(20_000_000, 1_681_338_456, big.NewInt(60_000_000_000_000_000)))
	require.NoError(t, err)
	require.Equal(t, "Shanghai", spec.Name)
}

func TestByBlockHeaderSelectsParisByTotalDifficultyNotBlockNumber(t *testing.T) {
	schedule, err := BuildSchedule(mainnetConfig(), nil)
	require.NoError(t, err)
	spec, err := schedule.ByBlockHeader(testHeader(15_500_000, 0, big.NewInt(58_750_000_000_000_000)))
	require.NoError(t, err)
	require.Equal(t, "Paris", spec.Name)
}

func TestByBlockHeaderReturnsNoSpecAtHeightBeforeGenesisActivation(t *testing.T) {
	cfg := mainnetConfig()
	delete(cfg.Schedule, params.Frontier)
	schedule, err := BuildSchedule(cfg, nil)
	require.NoError(t, err)
	_, err = schedule.ByBlockHeader(testHeader(-1, 0, nil))
	require.Error(t, err)
	var notFound *NoSpecAtHeight
	require.ErrorAs(t, err, &notFound)
}

func TestMergeStateClassifiesPreMergeTerminalAndPostMerge(t *testing.T) {
	schedule, err := BuildSchedule(mainnetConfig(), nil)
	require.NoError(t, err)
	require.Equal(t, preMerge, schedule.MergeState(testHeader(100, 0, big.NewInt(1))))
	require.Equal(t, terminalPoWBlock, schedule.MergeState(testHeader(100, 0, big.NewInt(58_750_000_000_000_000))))
	require.Equal(t, proofOfStake, schedule.MergeState(testHeader(100, 0, big.NewInt(58_750_000_000_000_001))))
}

func TestBuildScheduleRejectsOutOfOrderSchedule(t *testing.T) {
	cfg := mainnetConfig()
	cfg.Schedule[params.Byzantium] = params.ActivationKey{Kind: params.ByBlockNumber, Block: big.NewInt(1)}
	_, err := BuildSchedule(cfg, nil)
	require.Error(t, err)
}

// quorumStub satisfies both processor.BlockProcessor and the package's
// BlockValidator seam with one named type.
type quorumStub string

func (q quorumStub) Name() string { return string(q) }
func (q quorumStub) ProcessBlock(state.Updater, *types.Block) error {
	return nil
}

func TestBuildScheduleAppliesQuorumOverridesWhenFlagSet(t *testing.T) {
	cfg := mainnetConfig()
	cfg.QuorumCompatible = true
	override := quorumStub("Quorum")

	schedule, err := BuildSchedule(cfg, nil, QuorumOverrides{BlockProcessor: override, BlockValidator: override})
	require.NoError(t, err)

	for _, f := range schedule.ForkNames() {
		spec, ok := schedule.Spec(f)
		require.True(t, ok)
		require.Equal(t, "Quorum", spec.BlockProcessor.Name())
		require.Equal(t, "Quorum", spec.BlockValidator.Name())
	}
}

func TestBuildScheduleLeavesDefaultsWhenQuorumFlagUnsetDespiteOverrides(t *testing.T) {
	cfg := mainnetConfig()
	override := quorumStub("Quorum")

	schedule, err := BuildSchedule(cfg, nil, QuorumOverrides{BlockProcessor: override, BlockValidator: override})
	require.NoError(t, err)

	frontier, ok := schedule.Spec(params.Frontier)
	require.True(t, ok)
	require.NotEqual(t, "Quorum", frontier.BlockProcessor.Name())
}

func TestForkNamesIncludesFrontierFirst(t *testing.T) {
	schedule, err := BuildSchedule(mainnetConfig(), nil)
	require.NoError(t, err)
	names := schedule.ForkNames()
	require.Equal(t, params.Frontier, names[0])
	require.Len(t, names, len(params.ForkOrder))
}
