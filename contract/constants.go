package contract

import "quadra_dao/sdk"

// treasuryAsset is the single asset this DAO stakes and pays out in.
const treasuryAsset = sdk.AssetHive

// PowerPrecision is the fixed multiplier under the square root so small
// stakes still resolve to distinct integer voting power.
const PowerPrecision uint64 = 1_000_000

// -----------------------------------------------------------------------------
// Default/Fallback Values
// -----------------------------------------------------------------------------

const (
	// FallbackVotingDelay is the block gap before voting opens.
	FallbackVotingDelay uint64 = 10
	// FallbackVotingPeriod is the voting window in blocks.
	FallbackVotingPeriod uint64 = 1000
	// FallbackProposalThreshold is the own-power floor for proposers.
	FallbackProposalThreshold uint64 = 1000
)

// fallbackQuorumPercent maps risk category to quorum percent of total power.
var fallbackQuorumPercent = [categoryCount]uint64{
	CategoryHighConviction:     30,
	CategoryExperimentalBet:    20,
	CategoryOperationalExpense: 10,
}

// fallbackTimelockDelay maps risk category to execution delay in seconds.
var fallbackTimelockDelay = [categoryCount]int64{
	CategoryHighConviction:     60 * 60 * 48,
	CategoryExperimentalBet:    60 * 60 * 24,
	CategoryOperationalExpense: 60 * 60 * 6,
}
