package params

import (
	"fmt"
	"math/big"
)

// ForkName identifies one entry in the fixed, totally-ordered fork chain
// that protocolspec.Registry walks. The order here is the order fork deltas
// are folded in; it is not alphabetical.
type ForkName string

const (
	Frontier              ForkName = "frontier"
	Homestead             ForkName = "homestead"
	DAORecoveryInit       ForkName = "dao-init"
	DAORecoveryTransition ForkName = "dao-transition"
	TangerineWhistle      ForkName = "tangerine-whistle"
	SpuriousDragon        ForkName = "spurious-dragon"
	Byzantium             ForkName = "byzantium"
	Constantinople        ForkName = "constantinople"
	Petersburg            ForkName = "petersburg"
	Istanbul              ForkName = "istanbul"
	MuirGlacier           ForkName = "muir-glacier"
	Berlin                ForkName = "berlin"
	London                ForkName = "london"
	ArrowGlacier          ForkName = "arrow-glacier"
	GrayGlacier           ForkName = "gray-glacier"
	Paris                 ForkName = "paris"
	Shanghai              ForkName = "shanghai"
	Cancun                ForkName = "cancun"
	Future                ForkName = "future"
	Experimental          ForkName = "experimental"
)

// ForkOrder is the fixed total order forks must activate in. A
// GenesisConfig whose activation keys violate this order is InvalidConfig.
var ForkOrder = []ForkName{
	Frontier, Homestead, DAORecoveryInit, DAORecoveryTransition,
	TangerineWhistle, SpuriousDragon, Byzantium, Constantinople, Petersburg,
	Istanbul, MuirGlacier, Berlin, London, ArrowGlacier, GrayGlacier, Paris,
	Shanghai, Cancun, Future, Experimental,
}

// KeyKind says which of a header's three governing values an activation
// key compares against. spec.md's Open Questions call for this to be read
// from the genesis schema per fork rather than inferred.
type KeyKind int

const (
	// ByBlockNumber activates at a fixed block height (Frontier..GrayGlacier).
	ByBlockNumber KeyKind = iota
	// ByTimestamp activates at a fixed block timestamp (Shanghai onward).
	ByTimestamp
	// ByTotalDifficulty activates once cumulative PoW difficulty reaches a
	// threshold. Only Paris uses this in mainnet history.
	ByTotalDifficulty
)

// ActivationKey is a fork's genesis-configured activation point.
type ActivationKey struct {
	Kind  KeyKind
	Block *big.Int // valid when Kind == ByBlockNumber
	Time  uint64   // valid when Kind == ByTimestamp
	TTD   *big.Int // valid when Kind == ByTotalDifficulty
}

// Unactivated reports whether this fork is absent from the genesis
// schedule (never activates on this chain).
func (k ActivationKey) Unactivated() bool {
	return k.Kind == ByBlockNumber && k.Block == nil
}

func (k ActivationKey) String() string {
	switch k.Kind {
	case ByTimestamp:
		return fmt.Sprintf("timestamp=%d", k.Time)
	case ByTotalDifficulty:
		return fmt.Sprintf("total-difficulty=%s", k.TTD)
	default:
		if k.Block == nil {
			return "unactivated"
		}
		return fmt.Sprintf("block=%s", k.Block)
	}
}

// PoWAlgorithm selects the proof-of-work verifier a pre-merge header
// validator delegates to. The implementations themselves are external
// collaborators; this is only a selector.
type PoWAlgorithm int

const (
	Ethash PoWAlgorithm = iota
	Keccak256
	UnsupportedPoW
)

// JumpDestCachePolicy tunes the external EVM factory's jump-destination
// analysis cache. Left as an opaque enum: its meaning belongs entirely to
// the injected EVMFactory.
type JumpDestCachePolicy int

const (
	JumpDestCacheDefault JumpDestCachePolicy = iota
	JumpDestCacheDisabled
	JumpDestCacheUnbounded
)

// EVMTuning carries interpreter-construction knobs that are opaque to the
// registry and simply forwarded to the injected EVMFactory.
type EVMTuning struct {
	JumpDestCache JumpDestCachePolicy
}

// GenesisConfig is the single configuration value the registry consumes.
// It never changes after a ProtocolSchedule is built from it.
type GenesisConfig struct {
	ChainID *big.Int

	// Schedule maps each fork to its activation key. A fork absent from
	// this map (or present with a nil/zero key, per KeyKind) never
	// activates.
	Schedule map[ForkName]ActivationKey

	TerminalTotalDifficulty *big.Int

	// BaseFeePerGas must be non-nil when London is activated and
	// IsZeroBaseFee is false; BuildSchedule returns InvalidConfig otherwise.
	// Its value is not read: the London fee market starts from
	// params.InitialBaseFee at its activation block.
	BaseFeePerGas *big.Int
	IsZeroBaseFee bool

	PoW PoWAlgorithm

	// QuorumCompatible selects the alternate block validator/processor
	// variant; it is orthogonal to fork deltas (spec.md Design Notes,
	// Open Question 1).
	QuorumCompatible bool

	EVMTuning EVMTuning

	EnableRevertReason bool

	// ContractSizeLimit overrides the fork-default contract size limit when
	// non-nil. StackSizeLimit is checked but not otherwise read by this
	// module. A negative value in either is InvalidConfig (BuildSchedule).
	ContractSizeLimit *int
	StackSizeLimit    *int
}

// ActivationFor returns the configured activation key for fork f, and
// whether the fork is present in the schedule at all.
func (g *GenesisConfig) ActivationFor(f ForkName) (ActivationKey, bool) {
	k, ok := g.Schedule[f]
	return k, ok
}

// CheckForkOrder validates that every pair of consecutive, activated forks
// in ForkOrder has non-decreasing activation keys of comparable kind.
// Grounded on go-ethereum's ChainConfig.CheckConfigForkOrder (supplemented
// feature, SPEC_FULL.md §4).
func (g *GenesisConfig) CheckForkOrder() error {
	var lastBlock *big.Int
	var lastTime *uint64
	for _, f := range ForkOrder {
		key, ok := g.ActivationFor(f)
		if !ok || key.Unactivated() {
			continue
		}
		switch key.Kind {
		case ByBlockNumber:
			if lastBlock != nil && key.Block.Cmp(lastBlock) < 0 {
				return &InvalidConfigError{Reason: fmt.Sprintf("fork %s activates at block %s, before predecessor activation at %s", f, key.Block, lastBlock)}
			}
			lastBlock = key.Block
		case ByTimestamp:
			if lastTime != nil && key.Time < *lastTime {
				return &InvalidConfigError{Reason: fmt.Sprintf("fork %s activates at time %d, before predecessor activation at %d", f, key.Time, *lastTime)}
			}
			lastTime = &key.Time
		case ByTotalDifficulty:
			// Paris: no block/time ordering constraint against neighbours,
			// since it is keyed on cumulative difficulty, not height.
		}
	}
	return nil
}

// InvalidConfigError reports a mutually exclusive or out-of-range
// GenesisConfig value, per spec.md §7.
type InvalidConfigError struct{ Reason string }

func (e *InvalidConfigError) Error() string { return fmt.Sprintf("invalid config: %s", e.Reason) }
