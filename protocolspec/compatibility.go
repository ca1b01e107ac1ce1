package protocolspec

import (
	"fmt"
	"math/big"

	"github.com/gorules/ethforks/params"
)

// ConfigCompatError reports a fork whose activation key changed between old
// and new in a way that would rewrite history already processed up to the
// queried height/time.
type ConfigCompatError struct {
	Fork      params.ForkName
	StoredKey params.ActivationKey
	NewKey    params.ActivationKey
}

func (e *ConfigCompatError) Error() string {
	return fmt.Sprintf("mismatching %s fork activation: already active at stored key %s, reconfigured to %s", e.Fork, e.StoredKey, e.NewKey)
}

// Compatible reports whether switching a chain from old's genesis
// configuration to new's would rewrite history already processed through
// height/time. Grounded on go-ethereum's ChainConfig.CheckCompatible
// (SPEC_FULL.md §4): a fork may be reconfigured freely as long as its old
// activation key never came due by the given height/time; once it has,
// moving that key at all is an incompatible reconfiguration.
//
// Total-difficulty-keyed forks (Paris) are skipped, the same carve-out
// CheckForkOrder makes: TTD isn't comparable against a block height or
// timestamp, so no compatibility judgment can be made from those alone.
func Compatible(old, new *params.GenesisConfig, height *big.Int, time uint64) error {
	for _, f := range params.ForkOrder {
		oldKey, oldOK := old.ActivationFor(f)
		newKey, newOK := new.ActivationFor(f)
		if oldKey.Kind == params.ByTotalDifficulty || newKey.Kind == params.ByTotalDifficulty {
			continue
		}
		if keysEqual(oldKey, oldOK, newKey, newOK) {
			continue
		}
		if forkAlreadyActive(oldKey, oldOK, height, time) {
			return &ConfigCompatError{Fork: f, StoredKey: oldKey, NewKey: newKey}
		}
	}
	return nil
}

func keysEqual(a params.ActivationKey, aOK bool, b params.ActivationKey, bOK bool) bool {
	if aOK != bOK {
		return false
	}
	if !aOK {
		return true
	}
	if a.Kind != b.Kind {
		return false
	}
	switch a.Kind {
	case params.ByBlockNumber:
		return (a.Block == nil) == (b.Block == nil) && (a.Block == nil || a.Block.Cmp(b.Block) == 0)
	case params.ByTimestamp:
		return a.Time == b.Time
	default:
		return true
	}
}

func forkAlreadyActive(key params.ActivationKey, ok bool, height *big.Int, time uint64) bool {
	if !ok || key.Unactivated() {
		return false
	}
	switch key.Kind {
	case params.ByBlockNumber:
		return height != nil && height.Cmp(key.Block) >= 0
	case params.ByTimestamp:
		return time >= key.Time
	default:
		return false
	}
}
