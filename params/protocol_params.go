// Package params holds the bit-exact protocol constants and the genesis
// configuration surface consumed by the fork delta registry.
package params

import "github.com/holiman/uint256"

// Contract / init-code size limits, bit-exact per spec.md §3.
const (
	// FrontierContractSizeLimit is effectively unbounded: 2^31-1.
	FrontierContractSizeLimit = 1<<31 - 1

	// SpuriousDragonContractSizeLimit is EIP-170's 24KB contract size cap,
	// active from Spurious Dragon onward.
	SpuriousDragonContractSizeLimit = 24576

	// ShanghaiInitCodeSizeLimit is EIP-3860's init-code size cap, twice the
	// contract size limit.
	ShanghaiInitCodeSizeLimit = 2 * SpuriousDragonContractSizeLimit
)

// Block rewards, in wei, bit-exact per spec.md §3.
var (
	FrontierBlockReward      = uint256.NewInt(5_000_000_000_000_000_000)
	ByzantiumBlockReward     = uint256.NewInt(3_000_000_000_000_000_000)
	ConstantinopleBlockReward = uint256.NewInt(2_000_000_000_000_000_000)
	ParisBlockReward          = uint256.NewInt(0)
)

// RIPEMD160PrecompileHex is the address of the RIPEMD-160 precompile, the
// subject of the post-Spurious-Dragon force-delete-when-empty bug
// compatibility rule.
var RIPEMD160PrecompileHex = "0x0000000000000000000000000000000000000003"

// DAORefundContractHex is the address that receives every drained DAO
// account's balance during the DAO irregular state transition.
const DAORefundContractHex = "0xbf4ed7b27f1d666546e30d74d50d173d20bca754"

// DAOForkExtraRange is the number of blocks, starting at the DAO fork
// block, during which header validators must see the DAOExtraData marker.
const DAOForkExtraRange = 10

// DAOExtraData is the marker pro-fork clients must stamp into the header
// extra-data field for the DAOForkExtraRange blocks following the fork.
var DAOExtraData = []byte("dao-hard-fork")

// InitialBaseFee is the base fee assigned to the London activation block
// when a chain config does not override it, per EIP-1559.
const InitialBaseFee = 1_000_000_000

// BaseFeeChangeDenominator bounds the maximum per-block base fee change.
const BaseFeeChangeDenominator = 8

// ElasticityMultiplier is the ratio of a block's gas limit to its gas
// target; the base fee grows whenever gas used exceeds the target.
const ElasticityMultiplier = 2

// MaxBlobGasPerBlock and BlobGasPerBlob are Cancun's EIP-4844 constants.
const (
	BlobGasPerBlob      = 131072
	MaxBlobGasPerBlock  = 6 * BlobGasPerBlob
	TargetBlobGasPerBlock = 3 * BlobGasPerBlob
	BlobGasPriceUpdateFraction = 3338477
	MinBlobGasPrice            = 1
)
