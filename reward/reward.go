// Package reward holds each fork's static block reward, its
// skip-zero-block-rewards flag, and the MiningBeneficiaryCalculator that
// distributes the reward (and any uncle/nephew share) to the coinbase
// accounts (spec.md §3's block_reward/skip_zero_block_rewards/
// mining_beneficiary_calculator fields). The uncle/nephew split mirrors the
// classic AccumulateRewards formula: an included uncle earns
// (8-distance)/8 of the static reward, and the block's own miner earns an
// extra 1/32 of the static reward per uncle included.
package reward

import (
	"math/big"

	"github.com/gorules/ethforks/core/state"
	"github.com/gorules/ethforks/core/types"
	"github.com/holiman/uint256"
)

var (
	big8  = big.NewInt(8)
	big32 = big.NewInt(32)
)

// MiningBeneficiaryCalculator credits a block's coinbase (and its uncles'
// coinbases) with the mining reward.
type MiningBeneficiaryCalculator interface {
	Name() string
	AccumulateRewards(updater state.Updater, header *types.Header, uncles []*types.Header)
}

type staticRewardCalculator struct {
	name               string
	blockReward        *uint256.Int
	skipZeroRewards    bool
	distributeUncles   bool
	proofOfStake       bool
}

func (c staticRewardCalculator) Name() string { return c.name }

func (c staticRewardCalculator) AccumulateRewards(updater state.Updater, header *types.Header, uncles []*types.Header) {
	if c.proofOfStake {
		return
	}
	if c.skipZeroRewards && c.blockReward.IsZero() {
		return
	}
	reward := new(uint256.Int).Set(c.blockReward)
	if c.distributeUncles {
		for _, uncle := range uncles {
			uncleShare := uncleReward(c.blockReward, header.Number, uncle.Number)
			updater.AddBalance(uncle.Coinbase, uncleShare)
			nephewShare := new(uint256.Int).Div(c.blockReward, uint256.NewInt(32))
			reward.Add(reward, nephewShare)
		}
	}
	updater.AddBalance(header.Coinbase, reward)
}

// uncleReward computes an included uncle's share: (8 - (blockNumber -
// uncleNumber)) * blockReward / 8.
func uncleReward(blockReward *uint256.Int, blockNumber, uncleNumber *big.Int) *uint256.Int {
	distance := new(big.Int).Sub(blockNumber, uncleNumber)
	factor := new(big.Int).Sub(big8, distance)
	if factor.Sign() < 0 {
		factor.SetInt64(0)
	}
	r := new(uint256.Int).Mul(blockReward, uint256.MustFromBig(factor))
	return r.Div(r, uint256.NewInt(8))
}

// Frontier pays the static FRONTIER_BLOCK_REWARD plus uncle/nephew shares
// and never skips a zero reward (spec.md §3.1: "skip_zero_block_rewards =
// false").
func Frontier(blockReward *uint256.Int) MiningBeneficiaryCalculator {
	return staticRewardCalculator{name: "Frontier", blockReward: blockReward, distributeUncles: true}
}

// SpuriousDragon skips crediting a coinbase entirely when the configured
// reward is zero (spec.md §4.2).
func SpuriousDragon(blockReward *uint256.Int) MiningBeneficiaryCalculator {
	return staticRewardCalculator{name: "Spurious Dragon", blockReward: blockReward, skipZeroRewards: true, distributeUncles: true}
}

// Paris is the proof-of-stake calculator: it never touches any balance,
// since consensus rewards move to the beacon chain (spec.md §4.2: "Block
// reward → 0", "is_proof_of_stake = true").
var Paris MiningBeneficiaryCalculator = staticRewardCalculator{name: "Paris", blockReward: uint256.NewInt(0), proofOfStake: true}
