package protocolspec

import (
	"fmt"
	"log/slog"
	"math/big"

	"github.com/gorules/ethforks/common"
	"github.com/gorules/ethforks/core/types"
	"github.com/gorules/ethforks/params"
	"github.com/gorules/ethforks/precompile"
	"github.com/gorules/ethforks/processor"
)

// NoSpecAtHeight reports a header whose governing value falls before every
// activated fork's key, or a genesis config that activates no fork at all
// (spec.md §4.5).
type NoSpecAtHeight struct {
	Block *big.Int
	Time  uint64
}

func (e *NoSpecAtHeight) Error() string {
	return fmt.Sprintf("no protocol spec activated for block=%s time=%d", e.Block, e.Time)
}

// mergeState tracks spec.md §4.6's Paris transition: PRE_MERGE until the
// configured terminal total difficulty is reached, then POS forever after.
// A ProtocolSchedule built once from an immutable GenesisConfig only ever
// walks this state forward.
type mergeState int

const (
	preMerge mergeState = iota
	terminalPoWBlock
	proofOfStake
)

// ProtocolSchedule is C6: the assembled, queryable set of every fork's
// ProtocolSpec, keyed by the same activation keys the genesis config used
// to build them.
type ProtocolSchedule struct {
	cfg   *params.GenesisConfig
	specs map[params.ForkName]*ProtocolSpec
	order []params.ForkName
}

// forkStep pairs a fork name with its delta-chain build function. Frontier
// is built separately since it alone takes a raw contracts map instead of
// a predecessor spec.
type forkStep struct {
	name  params.ForkName
	build func(cfg *params.GenesisConfig, predecessor *ProtocolSpec) (*ProtocolSpec, error)
}

var forkSteps = []forkStep{
	{params.Homestead, buildHomestead},
	{params.DAORecoveryInit, buildDAOInit},
	{params.DAORecoveryTransition, buildDAOTransition},
	{params.TangerineWhistle, buildTangerineWhistle},
	{params.SpuriousDragon, buildSpuriousDragon},
	{params.Byzantium, buildByzantium},
	{params.Constantinople, buildConstantinople},
	{params.Petersburg, buildPetersburg},
	{params.Istanbul, buildIstanbul},
	{params.MuirGlacier, buildMuirGlacier},
	{params.Berlin, buildBerlin},
	{params.London, buildLondon},
	{params.ArrowGlacier, buildArrowGlacier},
	{params.GrayGlacier, buildGrayGlacier},
	{params.Paris, buildParis},
	{params.Shanghai, buildShanghai},
	{params.Cancun, buildCancun},
	{params.Future, buildFuture},
	{params.Experimental, buildExperimental},
}

// QuorumOverrides supplies the alternate block processor and block
// validator consulted when a GenesisConfig sets QuorumCompatible (spec.md
// Design Notes: "an orthogonal boolean that selects an alternate
// block-validator/processor variant; it does not change fork deltas" —
// "the exact consensus differences are defined by the external
// collaborator"). Either field may be left nil to leave that half of the
// pair on its ordinary fork-derived binding.
type QuorumOverrides struct {
	BlockProcessor processor.BlockProcessor
	BlockValidator BlockValidator
}

// BuildSchedule assembles one ProtocolSpec per fork in params.ForkOrder,
// folding each fork's deltas onto its immediate predecessor (spec.md §4.2).
// Fork deltas always fold in order regardless of whether cfg's schedule
// activates that fork for lookup purposes: a fork absent from cfg.Schedule
// still contributes its rule changes to every later fork's inherited
// baseline, since mainnet's own history is exactly this kind of chain.
//
// quorum is consulted once, after every fork has built, iff
// cfg.QuorumCompatible is set: when present its BlockProcessor and
// BlockValidator replace every fork's binding uniformly, the two
// consultation points the quorum-compatibility flag governs.
func BuildSchedule(cfg *params.GenesisConfig, contracts map[common.Address]precompile.Contract, quorum ...QuorumOverrides) (*ProtocolSchedule, error) {
	if err := cfg.CheckForkOrder(); err != nil {
		return nil, err
	}
	if cfg.ContractSizeLimit != nil && *cfg.ContractSizeLimit < 0 {
		return nil, &params.InvalidConfigError{Reason: fmt.Sprintf("negative contract size limit %d", *cfg.ContractSizeLimit)}
	}
	if cfg.StackSizeLimit != nil && *cfg.StackSizeLimit < 0 {
		return nil, &params.InvalidConfigError{Reason: fmt.Sprintf("negative stack size limit %d", *cfg.StackSizeLimit)}
	}
	if key, ok := cfg.ActivationFor(params.London); ok && !key.Unactivated() && !cfg.IsZeroBaseFee && cfg.BaseFeePerGas == nil {
		return nil, &params.InvalidConfigError{Reason: "london is activated with no base fee per gas and zero base fee not set"}
	}
	frontier, err := buildFrontier(cfg, contracts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", params.Frontier, err)
	}
	specs := map[params.ForkName]*ProtocolSpec{params.Frontier: frontier}
	predecessor := frontier
	for _, step := range forkSteps {
		spec, err := step.build(cfg, predecessor)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", step.name, err)
		}
		specs[step.name] = spec
		predecessor = spec
	}

	schedule := &ProtocolSchedule{cfg: cfg, specs: specs, order: params.ForkOrder}

	if cfg.QuorumCompatible {
		if len(quorum) == 0 || (quorum[0].BlockProcessor == nil && quorum[0].BlockValidator == nil) {
			slog.Warn("quorum-compatibility flag set but no overrides supplied; every fork keeps its default block processor and validator",
				"chain_id", cfg.ChainID)
		} else {
			schedule.applyQuorumOverrides(quorum[0])
			slog.Info("quorum-compatible block processor/validator overrides applied", "chain_id", cfg.ChainID)
		}
	}

	slog.Info("protocol schedule assembled", "chain_id", cfg.ChainID, "forks_built", len(specs), "forks_activated", activatedForkNames(cfg))
	return schedule, nil
}

// activatedForkNames lists, in params.ForkOrder, every fork cfg's schedule
// actually activates.
func activatedForkNames(cfg *params.GenesisConfig) []params.ForkName {
	var names []params.ForkName
	for _, f := range params.ForkOrder {
		if key, ok := cfg.ActivationFor(f); ok && !key.Unactivated() {
			names = append(names, f)
		}
	}
	return names
}

// applyQuorumOverrides replaces every built fork's BlockProcessor and/or
// BlockValidator with q's non-nil fields, leaving everything else
// (gas, EVM rules, receipts, fee market, ...) on its ordinary fork-derived
// binding (spec.md Design Notes: the flag "does not change fork deltas").
func (s *ProtocolSchedule) applyQuorumOverrides(q QuorumOverrides) {
	for name, spec := range s.specs {
		cloned := *spec
		if q.BlockProcessor != nil {
			cloned.BlockProcessor = q.BlockProcessor
		}
		if q.BlockValidator != nil {
			cloned.BlockValidator = q.BlockValidator
		}
		s.specs[name] = &cloned
	}
}

// activatedAt reports whether fork f is present in the schedule and
// governed by header's value for that fork's key kind.
func (s *ProtocolSchedule) activatedAt(f params.ForkName, header *types.Header) bool {
	key, ok := s.cfg.ActivationFor(f)
	if !ok || key.Unactivated() {
		return false
	}
	switch key.Kind {
	case params.ByBlockNumber:
		return header.Number != nil && header.Number.Cmp(key.Block) >= 0
	case params.ByTimestamp:
		return header.Time >= key.Time
	case params.ByTotalDifficulty:
		return header.TotalDifficulty != nil && key.TTD != nil && header.TotalDifficulty.Cmp(key.TTD) >= 0
	default:
		return false
	}
}

// ByBlockHeader resolves the ProtocolSpec governing header, selecting the
// latest fork in params.ForkOrder whose activation key's governing value
// (block number, timestamp, or total difficulty, per that fork's own key
// kind) is at or before header's (spec.md §4.5).
func (s *ProtocolSchedule) ByBlockHeader(header *types.Header) (*ProtocolSpec, error) {
	var selected params.ForkName
	found := false
	for _, f := range s.order {
		if s.activatedAt(f, header) {
			selected = f
			found = true
		}
	}
	if !found {
		return nil, &NoSpecAtHeight{Block: header.Number, Time: header.Time}
	}
	spec, ok := s.specs[selected]
	if !ok {
		return nil, &NoSpecAtHeight{Block: header.Number, Time: header.Time}
	}
	return spec, nil
}

// MergeState classifies header against the configured terminal total
// difficulty (spec.md §4.6). A header at exactly the TTD is the terminal
// PoW block itself — the last block mined under proof of work; anything
// past it is proof of stake. A nil TerminalTotalDifficulty means this
// chain never merges.
func (s *ProtocolSchedule) MergeState(header *types.Header) mergeState {
	ttd := s.cfg.TerminalTotalDifficulty
	if ttd == nil || header.TotalDifficulty == nil {
		return preMerge
	}
	switch header.TotalDifficulty.Cmp(ttd) {
	case -1:
		return preMerge
	case 0:
		return terminalPoWBlock
	default:
		return proofOfStake
	}
}

// ForkNames returns every fork name this schedule has a built ProtocolSpec
// for, in activation order.
func (s *ProtocolSchedule) ForkNames() []params.ForkName {
	names := make([]params.ForkName, 0, len(s.order))
	names = append(names, s.order...)
	return names
}

// Spec returns the named fork's ProtocolSpec, if this schedule built one.
func (s *ProtocolSchedule) Spec(f params.ForkName) (*ProtocolSpec, bool) {
	spec, ok := s.specs[f]
	return spec, ok
}
