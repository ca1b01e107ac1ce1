package protocolspec

import (
	"fmt"

	"github.com/gorules/ethforks/difficulty"
	"github.com/gorules/ethforks/feemarket"
	"github.com/gorules/ethforks/gas"
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
	"github.com/holiman/uint256"
)

// ProtocolSpec is the immutable, value-typed rule bundle spec.md §3 names:
// one per activated fork, shared read-only for the process lifetime and
// never mutated after Builder.Build returns it.
type ProtocolSpec struct {
	Name string

	GasCalculator      gas.GasCalculator
	GasLimitCalculator gas.GasLimitCalculator
	Rules              vmrules.Rules
	EVMFactory         vmrules.EVMFactory
	PrecompileRegistry precompile.Registry

	MessageCallProcessor        MessageCallProcessor
	ContractCreationProcessor   creation.ContractCreationProcessor
	TransactionValidator        txvalidator.TransactionValidator
	TransactionProcessor        TransactionProcessor
	PrivateTransactionProcessor TransactionProcessor // optional

	BlockHeaderValidator header.HeaderValidator
	OmmerHeaderValidator header.OmmerHeaderValidator
	BlockBodyValidator   header.BlockBodyValidator

	BlockProcessor       processor.BlockProcessor
	BlockValidator       BlockValidator
	BlockImporterFactory BlockImporterFactory
	BlockHeaderFunctions BlockHeaderFunctions

	TransactionReceiptFactory   receipt.Factory
	DifficultyCalculator        difficulty.Calculator
	FeeMarket                   feemarket.FeeMarket
	BlockReward                 *uint256.Int
	SkipZeroBlockRewards        bool
	MiningBeneficiaryCalculator reward.MiningBeneficiaryCalculator

	WithdrawalsValidator withdrawals.WithdrawalsValidator // optional
	WithdrawalsProcessor WithdrawalsProcessor             // optional
	DepositsValidator    deposits.DepositsValidator        // optional

	IsProofOfStake bool
}

// IncompleteSpecError reports a required ProtocolSpec field left unbound
// at Build time (spec.md §4.1).
type IncompleteSpecError struct{ Field string }

func (e *IncompleteSpecError) Error() string {
	return fmt.Sprintf("incomplete protocol spec: field %q is required but unbound", e.Field)
}

// requiredFields lists every ProtocolSpec field that is NOT documented as
// optional in spec.md §3, in the dependency order §4.1 specifies for
// resolution: gas_calculator -> evm -> precompile_registry ->
// message_call_processor -> contract_creation_processor ->
// transaction_validator -> transaction_processor; header/body/block
// validators depend only on the fee market and configuration.
var requiredFields = []string{
	"gas_calculator", "gas_limit_calculator", "evm", "precompile_registry",
	"message_call_processor", "contract_creation_processor",
	"transaction_validator", "transaction_processor",
	"block_header_validator", "ommer_header_validator", "block_body_validator",
	"block_processor", "block_validator", "block_importer_factory",
	"block_header_functions", "transaction_receipt_factory",
	"difficulty_calculator", "fee_market", "block_reward",
	"mining_beneficiary_calculator",
}

// Builder is C2's mutable accumulator of rule bindings. It is never shared
// across forks: each fork definition starts from its predecessor's already
// built ProtocolSpec, clones it into a fresh Builder, and applies its own
// deltas (spec.md §3's Fork Definition contract).
type Builder struct {
	spec  ProtocolSpec
	bound map[string]bool
}

// NewBuilder starts an empty Builder with the given spec name.
func NewBuilder(name string) *Builder {
	return &Builder{spec: ProtocolSpec{Name: name}, bound: map[string]bool{}}
}

// From starts a Builder pre-populated with predecessor's bindings, the
// mechanism every fork-after-Frontier uses to inherit unlisted behaviors
// unchanged (spec.md §4.2: "All unlisted behaviors are inherited
// unchanged").
func From(name string, predecessor *ProtocolSpec) *Builder {
	spec := *predecessor
	spec.Name = name
	bound := make(map[string]bool, len(requiredFields))
	for _, f := range requiredFields {
		bound[f] = true
	}
	return &Builder{spec: spec, bound: bound}
}

func (b *Builder) WithGasCalculator(c gas.GasCalculator) *Builder {
	b.spec.GasCalculator = c
	b.bound["gas_calculator"] = true
	return b
}

func (b *Builder) WithGasLimitCalculator(c gas.GasLimitCalculator) *Builder {
	b.spec.GasLimitCalculator = c
	b.bound["gas_limit_calculator"] = true
	return b
}

func (b *Builder) WithEVM(rules vmrules.Rules, factory vmrules.EVMFactory) *Builder {
	b.spec.Rules = rules
	b.spec.EVMFactory = factory
	b.bound["evm"] = true
	return b
}

func (b *Builder) WithPrecompileRegistry(r precompile.Registry) *Builder {
	b.spec.PrecompileRegistry = r
	b.bound["precompile_registry"] = true
	return b
}

func (b *Builder) WithMessageCallProcessor(p MessageCallProcessor) *Builder {
	b.spec.MessageCallProcessor = p
	b.bound["message_call_processor"] = true
	return b
}

func (b *Builder) WithContractCreationProcessor(p creation.ContractCreationProcessor) *Builder {
	b.spec.ContractCreationProcessor = p
	b.bound["contract_creation_processor"] = true
	return b
}

func (b *Builder) WithTransactionValidator(v txvalidator.TransactionValidator) *Builder {
	b.spec.TransactionValidator = v
	b.bound["transaction_validator"] = true
	return b
}

func (b *Builder) WithTransactionProcessor(p TransactionProcessor) *Builder {
	b.spec.TransactionProcessor = p
	b.bound["transaction_processor"] = true
	return b
}

// WithPrivateTransactionProcessor binds the optional quorum-compatible
// private-state processor (spec.md Open Question 1); Build never requires
// it.
func (b *Builder) WithPrivateTransactionProcessor(p TransactionProcessor) *Builder {
	b.spec.PrivateTransactionProcessor = p
	return b
}

func (b *Builder) WithBlockHeaderValidator(v header.HeaderValidator) *Builder {
	b.spec.BlockHeaderValidator = v
	b.bound["block_header_validator"] = true
	return b
}

func (b *Builder) WithOmmerHeaderValidator(v header.OmmerHeaderValidator) *Builder {
	b.spec.OmmerHeaderValidator = v
	b.bound["ommer_header_validator"] = true
	return b
}

func (b *Builder) WithBlockBodyValidator(v header.BlockBodyValidator) *Builder {
	b.spec.BlockBodyValidator = v
	b.bound["block_body_validator"] = true
	return b
}

func (b *Builder) WithBlockProcessor(p processor.BlockProcessor) *Builder {
	b.spec.BlockProcessor = p
	b.bound["block_processor"] = true
	return b
}

func (b *Builder) WithBlockValidator(v BlockValidator) *Builder {
	b.spec.BlockValidator = v
	b.bound["block_validator"] = true
	return b
}

func (b *Builder) WithBlockImporterFactory(f BlockImporterFactory) *Builder {
	b.spec.BlockImporterFactory = f
	b.bound["block_importer_factory"] = true
	return b
}

func (b *Builder) WithBlockHeaderFunctions(f BlockHeaderFunctions) *Builder {
	b.spec.BlockHeaderFunctions = f
	b.bound["block_header_functions"] = true
	return b
}

func (b *Builder) WithTransactionReceiptFactory(f receipt.Factory) *Builder {
	b.spec.TransactionReceiptFactory = f
	b.bound["transaction_receipt_factory"] = true
	return b
}

func (b *Builder) WithDifficultyCalculator(c difficulty.Calculator) *Builder {
	b.spec.DifficultyCalculator = c
	b.bound["difficulty_calculator"] = true
	return b
}

func (b *Builder) WithFeeMarket(m feemarket.FeeMarket) *Builder {
	b.spec.FeeMarket = m
	b.bound["fee_market"] = true
	return b
}

func (b *Builder) WithBlockReward(r *uint256.Int, skipZero bool) *Builder {
	b.spec.BlockReward = r
	b.spec.SkipZeroBlockRewards = skipZero
	b.bound["block_reward"] = true
	return b
}

func (b *Builder) WithMiningBeneficiaryCalculator(c reward.MiningBeneficiaryCalculator) *Builder {
	b.spec.MiningBeneficiaryCalculator = c
	b.bound["mining_beneficiary_calculator"] = true
	return b
}

// WithWithdrawals binds the optional Shanghai+ withdrawals validator and
// processor together, since neither is ever bound without the other
// (spec.md §4.2: "Withdrawals: enable withdrawals processor and
// AllowedWithdrawals validator").
func (b *Builder) WithWithdrawals(v withdrawals.WithdrawalsValidator, p WithdrawalsProcessor) *Builder {
	b.spec.WithdrawalsValidator = v
	b.spec.WithdrawalsProcessor = p
	return b
}

// WithDepositsValidator binds the optional experimental deposits validator
// (spec.md §4.2: "experimental enables deposits validator").
func (b *Builder) WithDepositsValidator(v deposits.DepositsValidator) *Builder {
	b.spec.DepositsValidator = v
	return b
}

// WithProofOfStake marks this fork's spec as post-merge (spec.md §4.2's
// Paris delta: "is_proof_of_stake = true").
func (b *Builder) WithProofOfStake(v bool) *Builder {
	b.spec.IsProofOfStake = v
	return b
}

// Build resolves the accumulated bindings into an immutable ProtocolSpec,
// failing with IncompleteSpecError on the first unbound required field in
// dependency order (spec.md §4.1).
func (b *Builder) Build() (*ProtocolSpec, error) {
	for _, f := range requiredFields {
		if !b.bound[f] {
			return nil, &IncompleteSpecError{Field: f}
		}
	}
	out := b.spec
	return &out, nil
}
