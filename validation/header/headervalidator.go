// Package header holds C1's per-fork HeaderValidator, OmmerHeaderValidator,
// and BlockBodyValidator catalog (spec.md §4.2).
package header

import (
	"bytes"
	"fmt"
	"math/big"

	"github.com/gorules/ethforks/core/types"
	"github.com/gorules/ethforks/params"
)

// HeaderValidator checks a header's self-consistency before a block
// processor runs. Three variants exist, mirroring the shape spec.md §4.2
// calls out: PoW (default), DAO-marker-requiring (the one fork-commencing
// height), and merge/base-fee-aware.
type HeaderValidator interface {
	Name() string
	ValidateHeader(header, parent *types.Header) error
}

type powHeaderValidator struct {
	name               string
	requireDAOMarker   bool
	daoForkBlock       *big.Int
	requireBaseFee     bool
}

func (v powHeaderValidator) Name() string { return v.name }

func (v powHeaderValidator) ValidateHeader(header, parent *types.Header) error {
	if v.requireDAOMarker && v.daoForkBlock != nil && header.Number.Cmp(v.daoForkBlock) >= 0 {
		rangeEnd := new(big.Int).Add(v.daoForkBlock, big.NewInt(params.DAOForkExtraRange))
		if header.Number.Cmp(rangeEnd) < 0 && !bytes.Equal(header.ExtraData, params.DAOExtraData) {
			return fmt.Errorf("block %s missing required DAO fork extra-data marker", header.Number)
		}
	}
	if v.requireBaseFee && header.BaseFeePerGas == nil {
		return fmt.Errorf("block %s missing required base fee", header.Number)
	}
	return nil
}

// Frontier is the baseline PoW header validator: no DAO marker, no base
// fee.
var Frontier HeaderValidator = powHeaderValidator{name: "Frontier"}

// DAORecoveryInit is active for exactly the DAO fork block and the
// following DAOForkExtraRange-1 blocks (spec.md §4.2: "Header validator
// requires the DAO_EXTRA_DATA marker on the DAO fork block").
func DAORecoveryInit(daoForkBlock *big.Int) HeaderValidator {
	return powHeaderValidator{name: "DAO-Recovery-Init", requireDAOMarker: true, daoForkBlock: daoForkBlock}
}

// PoW is the ordinary pre-merge validator used by every fork between the
// DAO recovery window and London.
var PoW HeaderValidator = powHeaderValidator{name: "PoW"}

// BaseFeeAware requires every header to carry a base fee, active from
// London onward.
var BaseFeeAware HeaderValidator = powHeaderValidator{name: "London", requireBaseFee: true}

// mergeHeaderValidator replaces the PoW seal check with a RANDAO mix-hash
// check (spec.md §4.2: "Header validator switches to merge rules (no PoW
// seal, mix-hash carries RANDAO)").
type mergeHeaderValidator struct{}

func (mergeHeaderValidator) Name() string { return "Paris" }

func (mergeHeaderValidator) ValidateHeader(header, parent *types.Header) error {
	if header.Difficulty != nil && header.Difficulty.Sign() != 0 {
		return fmt.Errorf("block %s: post-merge header must carry zero difficulty", header.Number)
	}
	if header.BaseFeePerGas == nil {
		return fmt.Errorf("block %s missing required base fee", header.Number)
	}
	return nil
}

// Merge is the header validator active from Paris onward.
var Merge HeaderValidator = mergeHeaderValidator{}

// OmmerHeaderValidator validates an uncle header against its claimed
// ancestor. Post-Paris blocks may never carry ommers (spec.md §4.2).
type OmmerHeaderValidator interface {
	Name() string
	ValidateOmmer(ommer, parent *types.Header) error
}

type powOmmerValidator struct{}

func (powOmmerValidator) Name() string { return "PoW" }
func (powOmmerValidator) ValidateOmmer(ommer, parent *types.Header) error {
	return Frontier.ValidateHeader(ommer, parent)
}

// PoWOmmers is the ommer validator used by every pre-merge fork.
var PoWOmmers OmmerHeaderValidator = powOmmerValidator{}

type noOmmersValidator struct{}

func (noOmmersValidator) Name() string { return "Paris" }
func (noOmmersValidator) ValidateOmmer(*types.Header, *types.Header) error {
	return fmt.Errorf("post-merge blocks may not carry ommers")
}

// NoOmmers rejects any ommer at all, active from Paris onward.
var NoOmmers OmmerHeaderValidator = noOmmersValidator{}

// BlockBodyValidator describes a fork's block-body rules; the only rule it
// carries is whether a withdrawals root is required (post-Shanghai).
type BlockBodyValidator interface {
	Name() string
	RequiresWithdrawalsRoot() bool
}

type bodyValidator struct {
	name                string
	withdrawalsRequired bool
}

func (b bodyValidator) Name() string                 { return b.name }
func (b bodyValidator) RequiresWithdrawalsRoot() bool { return b.withdrawalsRequired }

// Frontier body validation has no withdrawals root.
var FrontierBody BlockBodyValidator = bodyValidator{name: "Frontier"}

// Shanghai body validation additionally requires a withdrawals root.
var ShanghaiBody BlockBodyValidator = bodyValidator{name: "Shanghai", withdrawalsRequired: true}
