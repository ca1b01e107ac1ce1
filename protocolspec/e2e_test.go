package protocolspec

import (
	"math/big"
	"testing"

	"github.com/gorules/ethforks/common"
	"github.com/gorules/ethforks/core/state"
	"github.com/gorules/ethforks/core/types"
	"github.com/gorules/ethforks/params"
	"github.com/gorules/ethforks/validation"
	"github.com/holiman/uint256"
	"github.com/stretchr/testify/require"
)

// memUpdater is a minimal in-memory state.Updater, standing in for the
// external trie-backed implementation spec.md §1 excludes.
type memUpdater struct {
	balances map[common.Address]*uint256.Int
	existing map[common.Address]bool
}

func newMemUpdater() *memUpdater {
	return &memUpdater{balances: map[common.Address]*uint256.Int{}, existing: map[common.Address]bool{}}
}

func (m *memUpdater) Exist(addr common.Address) bool { return m.existing[addr] }
func (m *memUpdater) CreateAccount(addr common.Address) {
	m.existing[addr] = true
	if _, ok := m.balances[addr]; !ok {
		m.balances[addr] = uint256.NewInt(0)
	}
}
func (m *memUpdater) GetBalance(addr common.Address) *uint256.Int {
	if b, ok := m.balances[addr]; ok {
		return b.Clone()
	}
	return uint256.NewInt(0)
}
func (m *memUpdater) AddBalance(addr common.Address, amount *uint256.Int) {
	m.CreateAccount(addr)
	m.balances[addr] = new(uint256.Int).Add(m.balances[addr], amount)
}
func (m *memUpdater) SubBalance(addr common.Address, amount *uint256.Int) {
	m.balances[addr] = new(uint256.Int).Sub(m.balances[addr], amount)
}
func (m *memUpdater) SetBalance(addr common.Address, amount *uint256.Int) { m.balances[addr] = amount }
func (m *memUpdater) Empty(addr common.Address) bool {
	return m.existing[addr] && m.balances[addr].IsZero()
}
func (m *memUpdater) SelfDestruct(addr common.Address) { delete(m.existing, addr) }
func (m *memUpdater) Finalise(bool)                    {}

var _ state.Updater = (*memUpdater)(nil)

// E1: a schedule with only Frontier activated resolves block 0 to the
// genesis spec carrying every Frontier-specific constant.
func TestE1FrontierSpecAtBlockZero(t *testing.T) {
	cfg := &params.GenesisConfig{
		ChainID: big.NewInt(1337),
		Schedule: map[params.ForkName]params.ActivationKey{
			params.Frontier: {Kind: params.ByBlockNumber, Block: big.NewInt(0)},
		},
	}
	schedule, err := BuildSchedule(cfg, nil)
	require.NoError(t, err)

	spec, err := schedule.ByBlockHeader(testHeader(0, 0, big.NewInt(0)))
	require.NoError(t, err)

	require.Equal(t, "Frontier", spec.Name)
	require.True(t, spec.BlockReward.Eq(uint256.NewInt(5_000_000_000_000_000_000)))
	require.Equal(t, params.FrontierContractSizeLimit, spec.ContractCreationProcessor.MaxCodeSize())
	require.NoError(t, spec.ContractCreationProcessor.ValidateCode([]byte{0xfe}))
	require.Equal(t, "Frontier", spec.TransactionReceiptFactory.Name())
}

// E2: the DAO-init processor migrates one of the bundled drain addresses'
// full balance to the refund contract exactly once.
func TestE2MainnetDAOBlockMigratesBalance(t *testing.T) {
	cfg := mainnetConfig()
	frontier, err := buildFrontier(cfg, nil)
	require.NoError(t, err)
	homestead, err := buildHomestead(cfg, frontier)
	require.NoError(t, err)
	daoInit, err := buildDAOInit(cfg, homestead)
	require.NoError(t, err)

	drainAddr := common.HexToAddress("0xd4fe7bc31cedb7bfb8a345f31e668033056b2728")
	updater := newMemUpdater()
	updater.AddBalance(drainAddr, uint256.NewInt(100))

	block := &types.Block{Header: &types.Header{Number: big.NewInt(1_920_000)}}
	require.NoError(t, daoInit.BlockProcessor.ProcessBlock(updater, block))

	require.True(t, updater.GetBalance(drainAddr).IsZero())
	refund := daoRefundContract()
	require.Equal(t, uint64(100), updater.GetBalance(refund).Uint64())
}

// E3: Berlin's receipt factory stamps an access-list transaction's type,
// status, and gas used, with no revert reason on success.
func TestE3BerlinReceiptForAccessListTx(t *testing.T) {
	cfg := mainnetConfig()
	predecessor := buildChainThrough(t, cfg, params.Berlin)
	result := &types.ExecutionResult{GasUsed: 21000, Failed: false}
	r := predecessor.TransactionReceiptFactory.Build(types.AccessListTxType, result, nil, 21000)

	require.True(t, r.HasType)
	require.Equal(t, types.AccessListTxType, r.Type)
	require.True(t, r.HasStatus)
	require.Equal(t, uint64(1), r.Status)
	require.Equal(t, uint64(21000), r.GasUsed)
	require.Nil(t, r.RevertReason)
}

// E4: at London's activation block (parent has no base fee yet), the gas
// limit calculator doubles the parent's limit and halves it back down to
// the elasticity-adjusted target.
func TestE4LondonGasLimitAtActivation(t *testing.T) {
	cfg := mainnetConfig()
	london := buildChainThrough(t, cfg, params.London)
	parent := &types.Header{GasLimit: 30_000_000, BaseFeePerGas: nil}

	next := london.GasLimitCalculator.NextGasLimit(parent, 60_000_000)
	require.Equal(t, uint64(60_000_000), next)
	require.Equal(t, uint64(30_000_000), london.GasLimitCalculator.GasTarget(next))
}

// E5: a header whose cumulative total difficulty reaches the configured
// TTD resolves to Paris, with proof of stake and a zero block reward.
func TestE5ParisTransitionByTotalDifficulty(t *testing.T) {
	cfg := mainnetConfig()
	schedule, err := BuildSchedule(cfg, nil)
	require.NoError(t, err)

	ttd := cfg.TerminalTotalDifficulty
	spec, err := schedule.ByBlockHeader(testHeader(15_600_000, 0, ttd))
	require.NoError(t, err)

	require.Equal(t, "Paris", spec.Name)
	require.True(t, spec.IsProofOfStake)
	require.True(t, spec.BlockReward.IsZero())
}

// E6: Shanghai's transaction validator rejects a contract-creation
// transaction whose init code exceeds EIP-3860's limit.
func TestE6ShanghaiInitCodeRejection(t *testing.T) {
	cfg := mainnetConfig()
	shanghai := buildChainThrough(t, cfg, params.Shanghai)

	tx := &types.Transaction{Data: make([]byte, params.ShanghaiInitCodeSizeLimit+1)}
	err := shanghai.TransactionValidator.ValidateInitCodeSize(tx)
	require.Error(t, err)
	var tooLarge *validation.ErrInitCodeTooLarge
	require.ErrorAs(t, err, &tooLarge)
}
