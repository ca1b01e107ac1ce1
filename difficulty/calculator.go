// Package difficulty holds C1's per-fork DifficultyCalculator catalog,
// including the successive difficulty-bomb delay updates and the Paris
// constant-zero rule (spec.md §4.2/§4.6).
package difficulty

import (
	"math/big"

	"github.com/gorules/ethforks/core/types"
)

// Calculator computes the difficulty a child block of parent must carry.
// Pure function of (time, parent); no calculator retains state.
type Calculator interface {
	Name() string
	CalcDifficulty(time uint64, parent *types.Header) *big.Int
}

// bombDelay implements the recurring "subtract N from the exponential-ice-
// age exponent" shape every bomb-delay fork (Byzantium, Constantinople,
// Muir Glacier, London, Arrow Glacier, Gray Glacier) shares; only the delay
// and name differ between them.
type bombDelay struct {
	name  string
	delay uint64 // blocks subtracted from the bomb's exponent period
}

func (b bombDelay) Name() string { return b.name }

func (b bombDelay) CalcDifficulty(time uint64, parent *types.Header) *big.Int {
	return calcDifficultyWithBombDelay(time, parent, b.delay)
}

// calcDifficultyWithBombDelay mirrors the homestead-era difficulty formula
// (adjust toward a 10s-ish block time, floor at MinimumDifficulty) with the
// exponential ice age's period offset by delay blocks, which is exactly how
// every post-Byzantium bomb-delay hard fork is expressed: same formula,
// larger fake "parent number" fed to the bomb term.
func calcDifficultyWithBombDelay(time uint64, parent *types.Header, delay uint64) *big.Int {
	const minimumDifficulty = 131072
	const difficultyBoundDivisor = 2048

	parentNumber := parent.Number
	x := new(big.Int).Div(parent.Difficulty, big.NewInt(difficultyBoundDivisor))

	timeDelta := new(big.Int).SetUint64(time - parent.Time)
	adjust := big.NewInt(1)
	adjust.Sub(adjust, new(big.Int).Div(timeDelta, big.NewInt(9)))
	if adjust.Cmp(big.NewInt(-99)) < 0 {
		adjust.SetInt64(-99)
	}
	x.Mul(x, adjust)

	diff := new(big.Int).Add(parent.Difficulty, x)
	if diff.Cmp(big.NewInt(minimumDifficulty)) < 0 {
		diff.SetInt64(minimumDifficulty)
	}

	// Exponential ice age: fakeBlockNumber = max(0, parentNumber+1-delay).
	fake := new(big.Int).Add(parentNumber, big.NewInt(1))
	fake.Sub(fake, new(big.Int).SetUint64(delay))
	if fake.Sign() > 0 {
		periodCount := new(big.Int).Div(fake, big.NewInt(100000))
		if periodCount.Cmp(big.NewInt(2)) > 0 {
			bomb := new(big.Int).Lsh(big.NewInt(1), uint(periodCount.Int64()-2))
			diff.Add(diff, bomb)
		}
	}
	return diff
}

// Frontier is mainnet's original difficulty formula, no ice age delay.
var Frontier Calculator = bombDelay{name: "Frontier", delay: 0}

// Homestead adjusts the per-block time-delta term (folded into
// calcDifficultyWithBombDelay above, which already uses the Homestead
// formula); it is otherwise identical to Frontier for bomb purposes.
var Homestead Calculator = bombDelay{name: "Homestead", delay: 0}

// Byzantium delays the ice age by 3,000,000 blocks (EIP-649).
var Byzantium Calculator = bombDelay{name: "Byzantium", delay: 3_000_000}

// Constantinople delays the ice age by 5,000,000 blocks total (EIP-1234).
var Constantinople Calculator = bombDelay{name: "Constantinople", delay: 5_000_000}

// MuirGlacier delays the ice age by 9,000,000 blocks total (EIP-2384).
var MuirGlacier Calculator = bombDelay{name: "Muir Glacier", delay: 9_000_000}

// London delays the ice age by 9,700,000 blocks total (EIP-3554).
var London Calculator = bombDelay{name: "London", delay: 9_700_000}

// ArrowGlacier delays the ice age by 10,700,000 blocks total (EIP-4345).
var ArrowGlacier Calculator = bombDelay{name: "Arrow Glacier", delay: 10_700_000}

// GrayGlacier delays the ice age by 11,400,000 blocks total (EIP-5133).
var GrayGlacier Calculator = bombDelay{name: "Gray Glacier", delay: 11_400_000}

// paris is the constant-zero proof-of-stake difficulty rule (spec.md §4.2:
// "Paris. ... Difficulty: constant 0").
type paris struct{}

func (paris) Name() string { return "Paris" }
func (paris) CalcDifficulty(uint64, *types.Header) *big.Int {
	return new(big.Int)
}

// Paris is the difficulty calculator for every fork from the Merge onward.
var Paris Calculator = paris{}
