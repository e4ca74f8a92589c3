// This Source Code Form is subject to the terms of the MIT License.
// If a copy of the MIT License was not distributed with this
// file, you can obtain one at https://opensource.org/licenses/MIT.
//
// Copyright (c) DUSK NETWORK. All rights reserved.

package consensus

import (
	"math"

	"github.com/gold-network/gold-blockchain/pkg/crypto/hash"
	"github.com/gold-network/gold-blockchain/pkg/p2p/wire/encoding"
	"github.com/gold-network/gold-blockchain/pkg/p2p/wire/streamable"
)

// ConsensusConstants are the parameters a network is run with. They travel
// as a record so that peers and tools can compare them byte for byte.
type ConsensusConstants struct {
	// How many blocks to target per sub-slot.
	SlotBlocksTarget uint32

	// How many blocks must be created per slot to make a challenge block.
	MinBlocksPerChallengeBlock uint8

	// Max number of blocks that can be infused into a sub-slot. Must be below
	// SubEpochBlocks/2 and above SlotBlocksTarget.
	MaxSubSlotBlocks uint32

	// Signage points per sub-slot, including the one at the sub-slot start.
	NumSPsSubSlot uint32

	// Sub-slot iterations of the first epoch.
	SubSlotItersStarting uint64

	// Multiplied by the difficulty to get iterations.
	DifficultyConstantFactor encoding.Uint128

	// Difficulty of the first epoch.
	DifficultyStarting uint64

	// Maximum factor by which difficulty and sub-slot iterations change per epoch.
	DifficultyChangeMaxFactor uint32

	// Blocks per sub-epoch.
	SubEpochBlocks uint32

	// Blocks per epoch, a multiple of SubEpochBlocks.
	EpochBlocks uint32

	// Bits kept in difficulty and min iters. The rest are zeroed.
	SignificantBits uint8

	// At most 1024, the class group element int size.
	DiscriminantSizeBits uint16

	// H(plot id + challenge hash + signage point) must start with this many zeroes.
	NumberZeroBitsPlotFilter uint8

	MinPlotSize uint8
	MaxPlotSize uint8

	// Target number of seconds per sub-slot.
	SubSlotTimeTarget uint16

	// Distance between signage point and infusion point, plus required iters.
	NumSpIntervalsExtra uint8

	// Max seconds a block timestamp may be ahead, after soft fork 2.
	MaxFutureTime2 uint32

	// Timestamps must exceed the average of the last this many blocks.
	NumberOfTimestamps uint8

	// Initial challenge and first back pointer. Differs per network.
	GenesisChallenge encoding.Bytes32

	// Forks change this value for replay protection.
	AggSigMeAdditionalData encoding.Bytes32

	// The block at height 0 must pay out to this pool puzzle hash.
	GenesisPreFarmPoolPuzzleHash encoding.Bytes32

	// The block at height 0 must pay out to this farmer puzzle hash.
	GenesisPreFarmFarmerPuzzleHash encoding.Bytes32

	// Maximum class group elements within an n-wesolowski proof.
	MaxVDFWitnessSize uint8

	// Mempool size as a multiple of the block size.
	MempoolBlockBuffer uint8

	MaxCoinAmount uint64

	// Max block cost in program cost units.
	MaxBlockCostCLVM uint64

	// Cost per byte of generator program.
	CostPerByte uint64

	WeightProofThreshold      uint8
	WeightProofRecentBlocks   uint32
	MaxBlockCountPerRequests  uint32
	StakingEstimateBlockRange uint32
	BlocksCacheSize           uint32
	MaxGeneratorSize          uint32
	MaxGeneratorRefListSize   uint32
	PoolSubSlotIters          uint64
	SoftFork2Height           uint32
	SoftFork4Height           uint32
	SoftFork5Height           uint32

	// First block with the plot filter adjustment.
	HardForkHeight uint32

	HardForkFixHeight   uint32
	PlotFilter128Height uint32
	PlotFilter64Height  uint32
	PlotFilter32Height  uint32
}

// Fields implements streamable.Streamable.
func (c *ConsensusConstants) Fields() []streamable.Field {
	return []streamable.Field{
		streamable.NewField("slot_blocks_target", &c.SlotBlocksTarget, encoding.U32),
		streamable.NewField("min_blocks_per_challenge_block", &c.MinBlocksPerChallengeBlock, encoding.U8),
		streamable.NewField("max_sub_slot_blocks", &c.MaxSubSlotBlocks, encoding.U32),
		streamable.NewField("num_sps_sub_slot", &c.NumSPsSubSlot, encoding.U32),
		streamable.NewField("sub_slot_iters_starting", &c.SubSlotItersStarting, encoding.U64),
		streamable.NewField("difficulty_constant_factor", &c.DifficultyConstantFactor, encoding.U128),
		streamable.NewField("difficulty_starting", &c.DifficultyStarting, encoding.U64),
		streamable.NewField("difficulty_change_max_factor", &c.DifficultyChangeMaxFactor, encoding.U32),
		streamable.NewField("sub_epoch_blocks", &c.SubEpochBlocks, encoding.U32),
		streamable.NewField("epoch_blocks", &c.EpochBlocks, encoding.U32),
		streamable.NewField("significant_bits", &c.SignificantBits, encoding.U8),
		streamable.NewField("discriminant_size_bits", &c.DiscriminantSizeBits, encoding.U16),
		streamable.NewField("number_zero_bits_plot_filter", &c.NumberZeroBitsPlotFilter, encoding.U8),
		streamable.NewField("min_plot_size", &c.MinPlotSize, encoding.U8),
		streamable.NewField("max_plot_size", &c.MaxPlotSize, encoding.U8),
		streamable.NewField("sub_slot_time_target", &c.SubSlotTimeTarget, encoding.U16),
		streamable.NewField("num_sp_intervals_extra", &c.NumSpIntervalsExtra, encoding.U8),
		streamable.NewField("max_future_time2", &c.MaxFutureTime2, encoding.U32),
		streamable.NewField("number_of_timestamps", &c.NumberOfTimestamps, encoding.U8),
		streamable.NewField("genesis_challenge", &c.GenesisChallenge, encoding.Hash),
		streamable.NewField("agg_sig_me_additional_data", &c.AggSigMeAdditionalData, encoding.Hash),
		streamable.NewField("genesis_pre_farm_pool_puzzle_hash", &c.GenesisPreFarmPoolPuzzleHash, encoding.Hash),
		streamable.NewField("genesis_pre_farm_farmer_puzzle_hash", &c.GenesisPreFarmFarmerPuzzleHash, encoding.Hash),
		streamable.NewField("max_vdf_witness_size", &c.MaxVDFWitnessSize, encoding.U8),
		streamable.NewField("mempool_block_buffer", &c.MempoolBlockBuffer, encoding.U8),
		streamable.NewField("max_coin_amount", &c.MaxCoinAmount, encoding.U64),
		streamable.NewField("max_block_cost_clvm", &c.MaxBlockCostCLVM, encoding.U64),
		streamable.NewField("cost_per_byte", &c.CostPerByte, encoding.U64),
		streamable.NewField("weight_proof_threshold", &c.WeightProofThreshold, encoding.U8),
		streamable.NewField("weight_proof_recent_blocks", &c.WeightProofRecentBlocks, encoding.U32),
		streamable.NewField("max_block_count_per_requests", &c.MaxBlockCountPerRequests, encoding.U32),
		streamable.NewField("staking_estimate_block_range", &c.StakingEstimateBlockRange, encoding.U32),
		streamable.NewField("blocks_cache_size", &c.BlocksCacheSize, encoding.U32),
		streamable.NewField("max_generator_size", &c.MaxGeneratorSize, encoding.U32),
		streamable.NewField("max_generator_ref_list_size", &c.MaxGeneratorRefListSize, encoding.U32),
		streamable.NewField("pool_sub_slot_iters", &c.PoolSubSlotIters, encoding.U64),
		streamable.NewField("soft_fork2_height", &c.SoftFork2Height, encoding.U32),
		streamable.NewField("soft_fork4_height", &c.SoftFork4Height, encoding.U32),
		streamable.NewField("soft_fork5_height", &c.SoftFork5Height, encoding.U32),
		streamable.NewField("hard_fork_height", &c.HardForkHeight, encoding.U32),
		streamable.NewField("hard_fork_fix_height", &c.HardForkFixHeight, encoding.U32),
		streamable.NewField("plot_filter_128_height", &c.PlotFilter128Height, encoding.U32),
		streamable.NewField("plot_filter_64_height", &c.PlotFilter64Height, encoding.U32),
		streamable.NewField("plot_filter_32_height", &c.PlotFilter32Height, encoding.U32),
	}
}

// Codec encodes ConsensusConstants inside other records.
var Codec = streamable.Struct[ConsensusConstants]()

func mustHex(s string) encoding.Bytes32 {
	b, err := encoding.Bytes32FromHex(s)
	if err != nil {
		panic(err)
	}
	return b
}

// TestConstants returns the constants test networks and simulations run
// with.
func TestConstants() ConsensusConstants {
	return ConsensusConstants{
		SlotBlocksTarget:               32,
		MinBlocksPerChallengeBlock:     16,
		MaxSubSlotBlocks:               128,
		NumSPsSubSlot:                  64,
		SubSlotItersStarting:           1 << 27,
		DifficultyConstantFactor:       encoding.Uint128{Hi: 1 << 3},
		DifficultyStarting:             7,
		DifficultyChangeMaxFactor:      3,
		SubEpochBlocks:                 384,
		EpochBlocks:                    4608,
		SignificantBits:                8,
		DiscriminantSizeBits:           1024,
		NumberZeroBitsPlotFilter:       9,
		MinPlotSize:                    32,
		MaxPlotSize:                    50,
		SubSlotTimeTarget:              600,
		NumSpIntervalsExtra:            3,
		MaxFutureTime2:                 2 * 60,
		NumberOfTimestamps:             11,
		GenesisChallenge:               mustHex("e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855"),
		AggSigMeAdditionalData:         mustHex("ccd5bb71183532bff220ba46c268991a3ff07eb358e8255a65c30a2dce0e5fbb"),
		GenesisPreFarmPoolPuzzleHash:   mustHex("d23da14695a188ae5708dd152263c4db883eb27edeb936178d4d988b8f3ce5fc"),
		GenesisPreFarmFarmerPuzzleHash: mustHex("3d8765d3a597ec1d99663f6c9816d915b9f68613ac94009884c4addaefcce6af"),
		MaxVDFWitnessSize:              64,
		MempoolBlockBuffer:             10,
		MaxCoinAmount:                  math.MaxUint64,
		MaxBlockCostCLVM:               11000000000,
		CostPerByte:                    12000,
		WeightProofThreshold:           2,
		WeightProofRecentBlocks:        1000,
		MaxBlockCountPerRequests:       32,
		StakingEstimateBlockRange:      4608 * 3,
		BlocksCacheSize:                4608*3 + 128*4,
		MaxGeneratorSize:               1000000,
		MaxGeneratorRefListSize:        512,
		PoolSubSlotIters:               37600000000,
		SoftFork2Height:                0,
		SoftFork4Height:                5716000,
		SoftFork5Height:                5940000,
		HardForkHeight:                 5496000,
		HardForkFixHeight:              5496000,
		PlotFilter128Height:            10542000,
		PlotFilter64Height:             15592000,
		PlotFilter32Height:             20643000,
	}
}

// Hash returns the canonical hash of the constants.
func (c *ConsensusConstants) Hash() (encoding.Bytes32, error) {
	return hash.Of(c)
}
