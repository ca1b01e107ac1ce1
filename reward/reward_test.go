package reward

import (
	"math/big"
	"testing"

	"github.com/gorules/ethforks/common"
	"github.com/gorules/ethforks/core/types"
	"github.com/holiman/uint256"
	"github.com/stretchr/testify/require"
)

type fakeUpdater struct {
	balances map[common.Address]*uint256.Int
}

func newFakeUpdater() *fakeUpdater { return &fakeUpdater{balances: map[common.Address]*uint256.Int{}} }

func (f *fakeUpdater) Exist(common.Address) bool          { return true }
func (f *fakeUpdater) CreateAccount(common.Address)       {}
func (f *fakeUpdater) GetBalance(a common.Address) *uint256.Int {
	if b, ok := f.balances[a]; ok {
		return b
	}
	return uint256.NewInt(0)
}
func (f *fakeUpdater) AddBalance(a common.Address, amount *uint256.Int) {
	f.balances[a] = new(uint256.Int).Add(f.GetBalance(a), amount)
}
func (f *fakeUpdater) SubBalance(a common.Address, amount *uint256.Int) {
	f.balances[a] = new(uint256.Int).Sub(f.GetBalance(a), amount)
}
func (f *fakeUpdater) SetBalance(a common.Address, amount *uint256.Int) { f.balances[a] = amount }
func (f *fakeUpdater) Empty(common.Address) bool                       { return false }
func (f *fakeUpdater) SelfDestruct(common.Address)                     {}
func (f *fakeUpdater) Finalise(bool)                                   {}

func TestFrontierCreditsCoinbaseWithStaticReward(t *testing.T) {
	u := newFakeUpdater()
	miner := common.HexToAddress("0x1")
	calc := Frontier(uint256.NewInt(5_000_000_000_000_000_000))
	calc.AccumulateRewards(u, &types.Header{Number: big.NewInt(100), Coinbase: miner}, nil)
	require.Equal(t, uint256.NewInt(5_000_000_000_000_000_000), u.GetBalance(miner))
}

func TestFrontierCreditsUncleAndNephewShares(t *testing.T) {
	u := newFakeUpdater()
	miner := common.HexToAddress("0x1")
	uncleCoinbase := common.HexToAddress("0x2")
	calc := Frontier(uint256.NewInt(5_000_000_000_000_000_000))
	header := &types.Header{Number: big.NewInt(101), Coinbase: miner}
	uncle := &types.Header{Number: big.NewInt(100), Coinbase: uncleCoinbase}
	calc.AccumulateRewards(u, header, []*types.Header{uncle})

	// distance 1: uncle gets 7/8 * 5e18
	expectedUncle := new(uint256.Int).Div(new(uint256.Int).Mul(uint256.NewInt(7), uint256.NewInt(5_000_000_000_000_000_000)), uint256.NewInt(8))
	require.Equal(t, expectedUncle, u.GetBalance(uncleCoinbase))

	// miner gets 5e18 + 5e18/32
	nephew := new(uint256.Int).Div(uint256.NewInt(5_000_000_000_000_000_000), uint256.NewInt(32))
	expectedMiner := new(uint256.Int).Add(uint256.NewInt(5_000_000_000_000_000_000), nephew)
	require.Equal(t, expectedMiner, u.GetBalance(miner))
}

func TestSpuriousDragonSkipsZeroReward(t *testing.T) {
	u := newFakeUpdater()
	miner := common.HexToAddress("0x1")
	calc := SpuriousDragon(uint256.NewInt(0))
	calc.AccumulateRewards(u, &types.Header{Number: big.NewInt(1), Coinbase: miner}, nil)
	require.True(t, u.GetBalance(miner).IsZero())
	require.NotContains(t, u.balances, miner)
}

func TestParisNeverCreditsAnyBalance(t *testing.T) {
	u := newFakeUpdater()
	miner := common.HexToAddress("0x1")
	Paris.AccumulateRewards(u, &types.Header{Number: big.NewInt(1), Coinbase: miner}, nil)
	require.True(t, u.GetBalance(miner).IsZero())
}
