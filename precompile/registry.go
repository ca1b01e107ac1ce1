// Package precompile holds C1's per-fork precompiled-contract address
// catalog. The contracts themselves (ecrecover, the BN256 pairing checks,
// modexp, the KZG point-evaluation check, ...) are external collaborators
// (spec.md §1); this package tracks which addresses are active in which
// fork, plus the one named, permanent bug-compatibility exception spec.md
// §3/§4.2 calls out.
package precompile

import (
	"github.com/gorules/ethforks/common"
	mapset "github.com/deckarep/golang-set/v2"
)

// Contract is the interface an externally supplied precompile
// implementation satisfies. RequiredGas/Run bodies are out of scope here
// (spec.md §1): a full client would back the bn256 checks and the Cancun
// point-evaluation check with real elliptic-curve/KZG libraries, but this
// registry only needs to know which address a fork activates, not how the
// math behind it runs.
type Contract interface {
	RequiredGas(input []byte) uint64
	Run(input []byte) ([]byte, error)
}

var (
	ecrecoverAddr    = common.HexToAddress("0x0000000000000000000000000000000000000001")
	sha256Addr       = common.HexToAddress("0x0000000000000000000000000000000000000002")
	ripemd160Addr    = common.HexToAddress("0x0000000000000000000000000000000000000003")
	identityAddr     = common.HexToAddress("0x0000000000000000000000000000000000000004")
	modexpAddr       = common.HexToAddress("0x0000000000000000000000000000000000000005")
	bn256AddAddr     = common.HexToAddress("0x0000000000000000000000000000000000000006")
	bn256MulAddr     = common.HexToAddress("0x0000000000000000000000000000000000000007")
	bn256PairingAddr = common.HexToAddress("0x0000000000000000000000000000000000000008")
	blake2fAddr      = common.HexToAddress("0x0000000000000000000000000000000000000009")
	pointEvalAddr    = common.HexToAddress("0x000000000000000000000000000000000000000a")
)

// RIPEMD160Precompile is the address of the RIPEMD-160 precompile, the one
// address ForceDeleteWhenEmpty holds from Spurious Dragon onward.
var RIPEMD160Precompile = ripemd160Addr

// Set is the ordered set of precompile addresses active in a fork.
type Set struct {
	name      string
	addresses mapset.Set[common.Address]
}

// Addresses returns the active addresses in this fork, in ascending order.
func (s Set) Addresses() []common.Address {
	all := s.addresses.ToSlice()
	// deterministic ordering: addresses are fixed-width, byte-compare sorts
	// them the same way numerically (0x01 < 0x02 < ...).
	for i := 1; i < len(all); i++ {
		for j := i; j > 0 && less(all[j], all[j-1]); j-- {
			all[j], all[j-1] = all[j-1], all[j]
		}
	}
	return all
}

func less(a, b common.Address) bool {
	for i := range a {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return false
}

// Contains reports whether addr is an active precompile in this fork.
func (s Set) Contains(addr common.Address) bool { return s.addresses.Contains(addr) }

func newSet(name string, addrs ...common.Address) Set {
	return Set{name: name, addresses: mapset.NewSet(addrs...)}
}

// Per-fork active precompile sets, each a left-fold over the previous
// fork's set plus spec.md §4.2's additions.
var (
	Frontier = newSet("Frontier", ecrecoverAddr, sha256Addr, ripemd160Addr, identityAddr)

	Homestead        = Frontier.withName("Homestead")
	TangerineWhistle = Homestead.withName("Tangerine Whistle")
	SpuriousDragon   = TangerineWhistle.withName("Spurious Dragon")

	Byzantium = SpuriousDragon.plus("Byzantium", modexpAddr, bn256AddAddr, bn256MulAddr, bn256PairingAddr)

	Constantinople = Byzantium.withName("Constantinople")
	Petersburg     = Constantinople.withName("Petersburg")

	Istanbul = Petersburg.plus("Istanbul", blake2fAddr)

	MuirGlacier      = Istanbul.withName("Muir Glacier")
	Berlin           = MuirGlacier.withName("Berlin")
	London           = Berlin.withName("London")
	ArrowGlacier     = London.withName("Arrow Glacier")
	GrayGlacier      = ArrowGlacier.withName("Gray Glacier")
	Paris            = GrayGlacier.withName("Paris")
	Shanghai         = Paris.withName("Shanghai")

	Cancun = Shanghai.plus("Cancun", pointEvalAddr)
)

func (s Set) withName(name string) Set {
	return Set{name: name, addresses: s.addresses.Clone()}
}

func (s Set) plus(name string, addrs ...common.Address) Set {
	clone := s.addresses.Clone()
	for _, a := range addrs {
		clone.Add(a)
	}
	return Set{name: name, addresses: clone}
}

// ForceDeleteWhenEmpty is the post-Spurious-Dragon bug-compatibility set
// (spec.md §3): RIPEMD160 is force-deleted when touched-and-empty
// regardless of the message call's outcome, because mainnet history
// already did so before the bug was understood. It is a permanent,
// named rule — never a conditional branch in the account-clearing
// mainline (spec.md §9 Design Notes).
var ForceDeleteWhenEmpty = mapset.NewSet(ripemd160Addr)

// Registry binds a fork's active address Set to externally supplied
// Contract implementations, giving the block processor's EVM one map to
// consult for both "is this address a precompile" and "run it".
type Registry struct {
	Set       Set
	Contracts map[common.Address]Contract
}

// NewRegistry builds a Registry for the given fork Set, pulling concrete
// Contract implementations from the caller-supplied table (an external
// collaborator). Addresses in Set without a provided Contract are dropped
// silently, not erred: a genesis config may intentionally disable a
// precompile (e.g. test networks).
func NewRegistry(set Set, contracts map[common.Address]Contract) Registry {
	bound := make(map[common.Address]Contract, len(contracts))
	for _, addr := range set.Addresses() {
		if c, ok := contracts[addr]; ok {
			bound[addr] = c
		}
	}
	return Registry{Set: set, Contracts: bound}
}
