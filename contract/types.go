package contract

import (
	"math"

	"quadra_dao/sdk"
)

// AmountScale defines the precision multiplier for converting floats to int64.
const AmountScale = 1000

// Amount is a native value amount in scaled ledger units.
type Amount int64

// FloatToAmount scales human floats by AmountScale and rounds to int64 so storage stays precise.
// Example payload: FloatToAmount(1.234)
func FloatToAmount(v float64) Amount {
	return Amount(math.Round(v * AmountScale))
}

// AmountToFloat converts back to float64 for reporting or events.
// Example payload: AmountToFloat(FloatToAmount(2.5))
func AmountToFloat(v Amount) float64 {
	return float64(v) / AmountScale
}

// AmountToInt64 exposes the raw scaled int64 for ledger transfer functions.
// Example payload: AmountToInt64(FloatToAmount(3.14))
func AmountToInt64(v Amount) int64 {
	return int64(v)
}

// Category partitions the treasury by risk profile. The category of a
// proposal also selects its quorum percentage and timelock delay.
type Category uint8

const (
	CategoryHighConviction     Category = 0
	CategoryExperimentalBet    Category = 1
	CategoryOperationalExpense Category = 2

	categoryCount = 3
)

// String prints the category as lower-case text for events and logs.
// Example payload: CategoryHighConviction.String()
func (c Category) String() string {
	switch c {
	case CategoryHighConviction:
		return "high_conviction"
	case CategoryExperimentalBet:
		return "experimental_bet"
	case CategoryOperationalExpense:
		return "operational_expense"
	default:
		return "unspecified"
	}
}

// Role is a capability checked before privileged operations.
type Role uint8

const (
	RoleProposer      Role = 0
	RoleVoter         Role = 1
	RoleExecutor      Role = 2
	RoleGuardian      Role = 3
	RoleTimelockAdmin Role = 4

	roleCount = 5
)

// String serializes the role for events and storage keys.
// Example payload: RoleGuardian.String()
func (r Role) String() string {
	switch r {
	case RoleProposer:
		return "proposer"
	case RoleVoter:
		return "voter"
	case RoleExecutor:
		return "executor"
	case RoleGuardian:
		return "guardian"
	case RoleTimelockAdmin:
		return "timelock_admin"
	default:
		return "unspecified"
	}
}

// VoteSupport encodes the three allowed ballot values.
type VoteSupport uint8

const (
	VoteAgainst VoteSupport = 0
	VoteFor     VoteSupport = 1
	VoteAbstain VoteSupport = 2
)

// String prints the support choice for events.
// Example payload: VoteFor.String()
func (v VoteSupport) String() string {
	switch v {
	case VoteAgainst:
		return "against"
	case VoteFor:
		return "for"
	case VoteAbstain:
		return "abstain"
	default:
		return "unspecified"
	}
}

// ProposalStatus is derived from proposal fields on every query, never stored.
type ProposalStatus uint8

const (
	StatusPending   ProposalStatus = 0
	StatusActive    ProposalStatus = 1
	StatusDefeated  ProposalStatus = 2
	StatusSucceeded ProposalStatus = 3
	StatusQueued    ProposalStatus = 4
	StatusExecuted  ProposalStatus = 5
	StatusCancelled ProposalStatus = 6
)

// String prints the derived status as lower-case text for events and logs.
// Example payload: StatusQueued.String()
func (s ProposalStatus) String() string {
	switch s {
	case StatusPending:
		return "pending"
	case StatusActive:
		return "active"
	case StatusDefeated:
		return "defeated"
	case StatusSucceeded:
		return "succeeded"
	case StatusQueued:
		return "queued"
	case StatusExecuted:
		return "executed"
	case StatusCancelled:
		return "cancelled"
	default:
		return "unspecified"
	}
}

// Proposal is the stored record; everything status-related is a pure
// function of these fields (see GovernanceEngine.status).
type Proposal struct {
	ID           uint64
	Proposer     sdk.Address
	Recipient    sdk.Address
	Amount       Amount
	Description  string
	Category     Category
	StartBlock   uint64
	EndBlock     uint64
	ForVotes     uint64
	AgainstVotes uint64
	AbstainVotes uint64
	Cancelled    bool
	Executed     bool
	Queued       bool
	Eta          int64
	Tx           string
}

// VoteReceipt marks one (proposal, voter) ballot; never overwritten.
type VoteReceipt struct {
	Support VoteSupport
	Weight  uint64
	VotedAt int64
}

// GovernanceParams bundles the admin-settable governance knobs. Quorum and
// timelock are per category, indexed by the Category constants.
type GovernanceParams struct {
	VotingDelay       uint64
	VotingPeriod      uint64
	ProposalThreshold uint64
	QuorumPercent     [categoryCount]uint64
	TimelockDelay     [categoryCount]int64
}

// ContractConfig stores the deploy-time owner. The owner seeds roles and
// treasury ceilings; day-to-day authority flows through AccessRegistry.
type ContractConfig struct {
	Owner sdk.Address
}

// AddressFromString converts a human string to the platform address wrapper.
// Example payload: AddressFromString("hive:alice")
func AddressFromString(s string) sdk.Address { return sdk.Address(s) }

// AddressToString turns the wrapped type back into the underlying string.
// Example payload: AddressToString(AddressFromString("hive:bob"))
func AddressToString(a sdk.Address) string { return a.String() }
