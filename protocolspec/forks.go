package protocolspec

import (
	"github.com/gorules/ethforks/common"
	"github.com/gorules/ethforks/core/state"
	"github.com/gorules/ethforks/core/types"
	"github.com/gorules/ethforks/difficulty"
	"github.com/gorules/ethforks/feemarket"
	"github.com/gorules/ethforks/gas"
	"github.com/gorules/ethforks/params"
	"github.com/gorules/ethforks/precompile"
	"github.com/gorules/ethforks/processor"
	"github.com/gorules/ethforks/receipt"
	"github.com/gorules/ethforks/reward"
	"github.com/gorules/ethforks/validation/creation"
	"github.com/gorules/ethforks/validation/deposits"
	"github.com/gorules/ethforks/validation/header"
	"github.com/gorules/ethforks/validation/txvalidator"
	"github.com/gorules/ethforks/validation/withdrawals"
	"github.com/gorules/ethforks/vmrules"
)

// namedComponent is the default binding for every external-collaborator
// seam (MessageCallProcessor, TransactionProcessor, BlockValidator,
// BlockImporterFactory, BlockHeaderFunctions, WithdrawalsProcessor): a
// caller who wires in a real EVM-backed implementation overrides it
// through the matching Builder setter, but Build() still needs a
// non-nil value to satisfy spec.md §3's "no null-valued required fields".
type namedComponent string

func (n namedComponent) Name() string { return string(n) }

func daoRefundContract() common.Address {
	return common.HexToAddress(params.DAORefundContractHex)
}

func contractSizeLimit(cfg *params.GenesisConfig, fallback int) int {
	if cfg.ContractSizeLimit != nil {
		return *cfg.ContractSizeLimit
	}
	return fallback
}

func registry(set precompile.Set, contracts map[common.Address]precompile.Contract) precompile.Registry {
	return precompile.NewRegistry(set, contracts)
}

// buildFrontier assembles the genesis ProtocolSpec (spec.md §4.2). Every
// later fork begins by calling its immediate predecessor's build function
// and then applying only its own listed deltas.
func buildFrontier(cfg *params.GenesisConfig, contracts map[common.Address]precompile.Contract) (*ProtocolSpec, error) {
	limit := contractSizeLimit(cfg, params.FrontierContractSizeLimit)
	return NewBuilder("Frontier").
		WithGasCalculator(gas.Frontier).
		WithGasLimitCalculator(gas.FrontierGasLimit).
		WithEVM(vmrules.Frontier, vmrules.DefaultFactory).
		WithPrecompileRegistry(registry(precompile.Frontier, contracts)).
		WithMessageCallProcessor(namedComponent("Frontier")).
		WithContractCreationProcessor(creation.Frontier(limit)).
		WithTransactionValidator(txvalidator.Frontier).
		WithTransactionProcessor(namedComponent("Frontier")).
		WithBlockHeaderValidator(header.Frontier).
		WithOmmerHeaderValidator(header.PoWOmmers).
		WithBlockBodyValidator(header.FrontierBody).
		WithBlockProcessor(namedBlockProcessor("Frontier")).
		WithBlockValidator(namedComponent("Frontier")).
		WithBlockImporterFactory(namedComponent("Frontier")).
		WithBlockHeaderFunctions(namedComponent("Frontier")).
		WithTransactionReceiptFactory(receipt.Frontier).
		WithDifficultyCalculator(difficulty.Frontier).
		WithFeeMarket(feemarket.Legacy).
		WithBlockReward(params.FrontierBlockReward, false).
		WithMiningBeneficiaryCalculator(reward.Frontier(params.FrontierBlockReward)).
		WithDepositsValidator(deposits.DepositsNotAllowed).
		Build()
}

// namedBlockProcessor is a no-op BlockProcessor stand-in, the same seam
// concept as namedComponent but satisfying processor.BlockProcessor's
// two-method shape.
type namedBlockProcessor string

func (n namedBlockProcessor) Name() string { return string(n) }
func (n namedBlockProcessor) ProcessBlock(state.Updater, *types.Block) error {
	return nil
}

func buildHomestead(cfg *params.GenesisConfig, predecessor *ProtocolSpec) (*ProtocolSpec, error) {
	return From("Homestead", predecessor).
		WithGasCalculator(gas.Homestead).
		WithEVM(vmrules.Homestead, vmrules.DefaultFactory).
		WithContractCreationProcessor(creation.Frontier(contractSizeLimit(cfg, params.FrontierContractSizeLimit))).
		WithTransactionValidator(txvalidator.Homestead).
		WithDifficultyCalculator(difficulty.Homestead).
		Build()
}

// buildDAOInit wraps the inherited block processor with C4's DAO
// migration and requires the DAO extra-data marker for the single fork
// block (spec.md §4.2/§4.3). The genesis schedule's dao-init activation
// key supplies the fork block.
func buildDAOInit(cfg *params.GenesisConfig, predecessor *ProtocolSpec) (*ProtocolSpec, error) {
	key, _ := cfg.ActivationFor(params.DAORecoveryInit)
	b := From("DAO-Recovery-Init", predecessor).
		WithBlockHeaderValidator(header.DAORecoveryInit(key.Block)).
		WithBlockProcessor(processor.DAOFork(predecessor.BlockProcessor, daoRefundContract()))
	return b.Build()
}

func buildDAOTransition(_ *params.GenesisConfig, predecessor *ProtocolSpec) (*ProtocolSpec, error) {
	daoWrapped, ok := predecessor.BlockProcessor.(interface {
		Unwrap() processor.BlockProcessor
	})
	b := From("DAO-Recovery-Transition", predecessor).
		WithBlockHeaderValidator(header.PoW)
	if ok {
		b = b.WithBlockProcessor(daoWrapped.Unwrap())
	}
	return b.Build()
}

func buildTangerineWhistle(_ *params.GenesisConfig, predecessor *ProtocolSpec) (*ProtocolSpec, error) {
	return From("Tangerine Whistle", predecessor).
		WithGasCalculator(gas.TangerineWhistle).
		Build()
}

func buildSpuriousDragon(cfg *params.GenesisConfig, predecessor *ProtocolSpec) (*ProtocolSpec, error) {
	limit := contractSizeLimit(cfg, params.SpuriousDragonContractSizeLimit)
	return From("Spurious Dragon", predecessor).
		WithGasCalculator(gas.SpuriousDragon).
		WithContractCreationProcessor(creation.SpuriousDragon(limit)).
		WithTransactionValidator(txvalidator.SpuriousDragon).
		WithBlockReward(predecessor.BlockReward, true).
		Build()
}

func buildByzantium(cfg *params.GenesisConfig, predecessor *ProtocolSpec) (*ProtocolSpec, error) {
	receiptFactory := receipt.Byzantium
	if cfg.EnableRevertReason {
		receiptFactory = receipt.ByzantiumWithReason
	}
	return From("Byzantium", predecessor).
		WithGasCalculator(gas.Byzantium).
		WithEVM(vmrules.Byzantium, vmrules.DefaultFactory).
		WithPrecompileRegistry(registry(precompile.Byzantium, registryContracts(predecessor))).
		WithTransactionValidator(txvalidator.Byzantium).
		WithDifficultyCalculator(difficulty.Byzantium).
		WithTransactionReceiptFactory(receiptFactory).
		WithBlockReward(params.ByzantiumBlockReward, true).
		WithMiningBeneficiaryCalculator(reward.SpuriousDragon(params.ByzantiumBlockReward)).
		Build()
}

// registryContracts recovers the concrete Contract bindings a predecessor
// spec's PrecompileRegistry already holds, so a later fork's wider address
// Set can be rebuilt from the same externally supplied implementations.
func registryContracts(predecessor *ProtocolSpec) map[common.Address]precompile.Contract {
	return predecessor.PrecompileRegistry.Contracts
}

func buildConstantinople(_ *params.GenesisConfig, predecessor *ProtocolSpec) (*ProtocolSpec, error) {
	return From("Constantinople", predecessor).
		WithGasCalculator(gas.Constantinople).
		WithEVM(vmrules.Constantinople, vmrules.DefaultFactory).
		WithTransactionValidator(txvalidator.Constantinople).
		WithDifficultyCalculator(difficulty.Constantinople).
		WithBlockReward(params.ConstantinopleBlockReward, true).
		WithMiningBeneficiaryCalculator(reward.SpuriousDragon(params.ConstantinopleBlockReward)).
		Build()
}

func buildPetersburg(_ *params.GenesisConfig, predecessor *ProtocolSpec) (*ProtocolSpec, error) {
	return From("Petersburg", predecessor).
		WithGasCalculator(gas.Petersburg).
		WithTransactionValidator(txvalidator.Petersburg).
		Build()
}

func buildIstanbul(cfg *params.GenesisConfig, predecessor *ProtocolSpec) (*ProtocolSpec, error) {
	return From("Istanbul", predecessor).
		WithGasCalculator(gas.Istanbul).
		WithEVM(vmrules.Istanbul, vmrules.DefaultFactory).
		WithPrecompileRegistry(registry(precompile.Istanbul, registryContracts(predecessor))).
		WithTransactionValidator(txvalidator.Istanbul).
		Build()
}

func buildMuirGlacier(_ *params.GenesisConfig, predecessor *ProtocolSpec) (*ProtocolSpec, error) {
	return From("Muir Glacier", predecessor).
		WithDifficultyCalculator(difficulty.MuirGlacier).
		WithTransactionValidator(txvalidator.MuirGlacier).
		Build()
}

func buildBerlin(_ *params.GenesisConfig, predecessor *ProtocolSpec) (*ProtocolSpec, error) {
	return From("Berlin", predecessor).
		WithGasCalculator(gas.Berlin).
		WithEVM(vmrules.Berlin, vmrules.DefaultFactory).
		WithPrecompileRegistry(registry(precompile.Berlin, registryContracts(predecessor))).
		WithTransactionValidator(txvalidator.Berlin).
		WithTransactionReceiptFactory(receipt.Berlin).
		Build()
}

func buildLondon(cfg *params.GenesisConfig, predecessor *ProtocolSpec) (*ProtocolSpec, error) {
	market := feeMarketForLondon(cfg)
	return From("London", predecessor).
		WithGasCalculator(gas.London).
		WithGasLimitCalculator(gas.LondonGasLimit).
		WithEVM(vmrules.London, vmrules.DefaultFactory).
		WithPrecompileRegistry(registry(precompile.London, registryContracts(predecessor))).
		WithContractCreationProcessor(creation.London(contractSizeLimit(cfg, params.SpuriousDragonContractSizeLimit))).
		WithTransactionValidator(txvalidator.London).
		WithBlockHeaderValidator(header.BaseFeeAware).
		WithBlockBodyValidator(header.FrontierBody).
		WithDifficultyCalculator(difficulty.London).
		WithFeeMarket(market).
		Build()
}

func feeMarketForLondon(cfg *params.GenesisConfig) feemarket.FeeMarket {
	london := feemarket.NewLondon()
	if cfg.IsZeroBaseFee {
		return feemarket.ZeroBaseFee{London: london}
	}
	return london
}

func buildArrowGlacier(_ *params.GenesisConfig, predecessor *ProtocolSpec) (*ProtocolSpec, error) {
	return From("Arrow Glacier", predecessor).WithDifficultyCalculator(difficulty.ArrowGlacier).Build()
}

func buildGrayGlacier(_ *params.GenesisConfig, predecessor *ProtocolSpec) (*ProtocolSpec, error) {
	return From("Gray Glacier", predecessor).WithDifficultyCalculator(difficulty.GrayGlacier).Build()
}

func buildParis(_ *params.GenesisConfig, predecessor *ProtocolSpec) (*ProtocolSpec, error) {
	return From("Paris", predecessor).
		WithEVM(vmrules.Paris, vmrules.DefaultFactory).
		WithPrecompileRegistry(registry(precompile.Paris, registryContracts(predecessor))).
		WithBlockHeaderValidator(header.Merge).
		WithOmmerHeaderValidator(header.NoOmmers).
		WithDifficultyCalculator(difficulty.Paris).
		WithBlockReward(params.ParisBlockReward, true).
		WithMiningBeneficiaryCalculator(reward.Paris).
		WithProofOfStake(true).
		Build()
}

func buildShanghai(cfg *params.GenesisConfig, predecessor *ProtocolSpec) (*ProtocolSpec, error) {
	initCodeLimit := params.ShanghaiInitCodeSizeLimit
	return From("Shanghai", predecessor).
		WithGasCalculator(gas.Shanghai).
		WithEVM(vmrules.Shanghai, vmrules.DefaultFactory).
		WithPrecompileRegistry(registry(precompile.Shanghai, registryContracts(predecessor))).
		WithTransactionValidator(txvalidator.Shanghai(initCodeLimit)).
		WithBlockBodyValidator(header.ShanghaiBody).
		WithWithdrawals(withdrawals.WithdrawalsAllowed, namedComponent("Shanghai")).
		Build()
}

func buildCancun(cfg *params.GenesisConfig, predecessor *ProtocolSpec) (*ProtocolSpec, error) {
	initCodeLimit := params.ShanghaiInitCodeSizeLimit
	return From("Cancun", predecessor).
		WithGasCalculator(gas.Cancun).
		WithGasLimitCalculator(gas.CancunGasLimit).
		WithEVM(vmrules.Cancun, vmrules.DefaultFactory).
		WithPrecompileRegistry(registry(precompile.Cancun, registryContracts(predecessor))).
		WithContractCreationProcessor(creation.Cancun(contractSizeLimit(cfg, params.SpuriousDragonContractSizeLimit))).
		WithTransactionValidator(txvalidator.Cancun(initCodeLimit)).
		WithFeeMarket(feemarket.NewCancun()).
		Build()
}

func buildFuture(_ *params.GenesisConfig, predecessor *ProtocolSpec) (*ProtocolSpec, error) {
	return From("Future", predecessor).Build()
}

func buildExperimental(_ *params.GenesisConfig, predecessor *ProtocolSpec) (*ProtocolSpec, error) {
	return From("Experimental", predecessor).
		WithDepositsValidator(deposits.DepositsAllowed).
		Build()
}
