package contract

import (
	"strings"

	"quadra_dao/sdk"
)

// GovernanceEngine owns the proposal lifecycle. The collaborating
// registries are injected at construction so the engine never reaches for
// ambient state beyond the host kv store.
type GovernanceEngine struct {
	stakes      *StakeLedger
	delegations *DelegationRegistry
	treasury    *Treasury
	access      *AccessRegistry
}

func newGovernanceEngine() *GovernanceEngine {
	stakes := newStakeLedger()
	return &GovernanceEngine{
		stakes:      stakes,
		delegations: newDelegationRegistry(stakes),
		treasury:    newTreasury(),
		access:      newAccessRegistry(),
	}
}

// -----------------------------------------------------------------------------
// Proposal persistence
// -----------------------------------------------------------------------------

func saveProposal(p *Proposal) {
	sdk.StateSetObject(proposalKey(p.ID), string(EncodeProposal(p)))
}

func loadProposal(id uint64) *Proposal {
	ptr := sdk.StateGetObject(proposalKey(id))
	if ptr == nil || *ptr == "" {
		fail(errProposalNotFound, "proposal "+UInt64ToString(id)+" not found")
	}
	p, err := DecodeProposal([]byte(*ptr))
	if err != nil {
		sdk.Abort("failed to decode proposal")
	}
	return p
}

func loadVoteReceipt(id uint64, voter sdk.Address) *VoteReceipt {
	ptr := sdk.StateGetObject(voteReceiptKey(id, voter))
	if ptr == nil || *ptr == "" {
		return nil
	}
	v, err := DecodeVoteReceipt([]byte(*ptr))
	if err != nil {
		sdk.Abort("failed to decode vote receipt")
	}
	return v
}

func saveVoteReceipt(id uint64, voter sdk.Address, v *VoteReceipt) {
	sdk.StateSetObject(voteReceiptKey(id, voter), string(EncodeVoteReceipt(v)))
}

// -----------------------------------------------------------------------------
// Derived state
// -----------------------------------------------------------------------------

// status classifies a proposal purely from its stored fields plus the
// block/time oracle. Nothing here is cached, so the answer can never drift
// from the record.
func (e *GovernanceEngine) status(p *Proposal, height uint64) ProposalStatus {
	switch {
	case p.Cancelled:
		return StatusCancelled
	case p.Executed:
		return StatusExecuted
	case p.Queued:
		return StatusQueued
	case height <= p.StartBlock:
		return StatusPending
	case height <= p.EndBlock:
		return StatusActive
	case p.ForVotes <= p.AgainstVotes:
		// a tie is a loss; majority must be strict
		return StatusDefeated
	default:
		return StatusSucceeded
	}
}

// -----------------------------------------------------------------------------
// Operations
// -----------------------------------------------------------------------------

// Create registers a new proposal. The threshold check deliberately uses
// the proposer's own power, not delegation-inclusive power, so borrowed
// stake cannot be used to spam proposals.
func (e *GovernanceEngine) Create(proposer sdk.Address, recipient sdk.Address, amount Amount, description string, cat Category) uint64 {
	if recipient.IsZero() {
		fail(errZeroAddress, "recipient must not be the null identity")
	}
	if amount <= 0 {
		fail(errInvalidAmount, "proposal amount must be positive")
	}
	if strings.TrimSpace(description) == "" {
		fail(errEmptyDescription, "proposal needs a description")
	}
	params := loadGovernanceParams()
	if e.stakes.VotingPower(proposer) < params.ProposalThreshold {
		fail(errInsufficientProposalPower, "own voting power below proposal threshold")
	}

	id := getCount(ProposalsCount)
	setCount(ProposalsCount, id+1)

	startBlock := blockHeight() + params.VotingDelay
	p := &Proposal{
		ID:          id,
		Proposer:    proposer,
		Recipient:   recipient,
		Amount:      amount,
		Description: description,
		Category:    cat,
		StartBlock:  startBlock,
		EndBlock:    startBlock + params.VotingPeriod,
		Tx:          getTxID(),
	}
	saveProposal(p)
	emitProposalCreated(p)
	return id
}

// CastVote records one ballot. The receipt is written before any counter
// moves (record-then-count), so a reentrant call trips already_voted
// instead of accumulating weight twice. Weight is captured at cast time
// and never retallied.
func (e *GovernanceEngine) CastVote(voter sdk.Address, id uint64, support VoteSupport) {
	p := loadProposal(id)
	if p.Cancelled {
		fail(errProposalCancelled, "proposal was cancelled")
	}
	if loadVoteReceipt(id, voter) != nil {
		fail(errAlreadyVoted, "one vote per proposal")
	}
	if support != VoteAgainst && support != VoteFor && support != VoteAbstain {
		fail(errInvalidSupport, "support must be 0, 1 or 2")
	}
	if e.status(p, blockHeight()) != StatusActive {
		fail(errProposalNotActive, "voting window is not open")
	}
	weight := e.delegations.VotingPowerWithDelegation(voter)
	if weight == 0 {
		fail(errNoVotingPower, "no voting power")
	}

	saveVoteReceipt(id, voter, &VoteReceipt{
		Support: support,
		Weight:  weight,
		VotedAt: nowUnix(),
	})
	switch support {
	case VoteFor:
		p.ForVotes += weight
	case VoteAgainst:
		p.AgainstVotes += weight
	default:
		p.AbstainVotes += weight
	}
	saveProposal(p)
	emitVoteCast(id, voter.String(), support, weight)
}

// Queue moves a succeeded proposal into the timelock. Quorum counts every
// cast ballot (for+against+abstain) against the sub-additive total power;
// the integer division rounds the requirement down on purpose.
func (e *GovernanceEngine) Queue(id uint64) {
	p := loadProposal(id)
	if p.Cancelled {
		fail(errProposalCancelled, "proposal was cancelled")
	}
	if p.Queued {
		fail(errAlreadyQueued, "proposal already queued")
	}
	height := blockHeight()
	if height <= p.EndBlock {
		fail(errVotingNotEnded, "voting period still running")
	}
	if p.ForVotes <= p.AgainstVotes {
		fail(errProposalNotPassed, "strict majority required")
	}
	params := loadGovernanceParams()
	totalVotes := p.ForVotes + p.AgainstVotes + p.AbstainVotes
	required := e.stakes.TotalVotingPower() * params.QuorumPercent[p.Category] / 100
	if totalVotes < required {
		fail(errQuorumNotReached, "participation below quorum")
	}

	p.Queued = true
	p.Eta = nowUnix() + params.TimelockDelay[p.Category]
	saveProposal(p)
	emitProposalQueued(id, p.Eta)
}

// Execute pays the proposal out after the timelock. The executed flag is
// flipped before the treasury call so a reentrant execute sees
// already_executed; a treasury failure reverts the whole call, flag
// included, which keeps the proposal retryable.
func (e *GovernanceEngine) Execute(id uint64) {
	p := loadProposal(id)
	if p.Cancelled {
		fail(errProposalCancelled, "proposal was cancelled")
	}
	if p.Executed {
		fail(errAlreadyExecuted, "proposal already executed")
	}
	if !p.Queued {
		fail(errNotQueued, "queue the proposal first")
	}
	if nowUnix() < p.Eta {
		fail(errTimelockNotExpired, "timelock still running")
	}

	p.Executed = true
	saveProposal(p)
	e.treasury.Transfer(p.Category, p.Recipient, p.Amount)
	emitProposalExecuted(id, p.Recipient.String(), p.Amount, p.Category)
}

// Cancel is the guardian's emergency brake. Works in any non-terminal
// state and has deliberately no inverse.
func (e *GovernanceEngine) Cancel(guardian sdk.Address, id uint64) {
	e.access.requireRole(RoleGuardian, guardian)
	p := loadProposal(id)
	if p.Cancelled {
		fail(errAlreadyCancelled, "proposal already cancelled")
	}
	if p.Executed {
		fail(errAlreadyExecuted, "cannot cancel an executed proposal")
	}
	p.Cancelled = true
	saveProposal(p)
	emitProposalCancelled(id, guardian.String())
}

// SetTimelockDelay updates one category's delay. Queued proposals keep the
// eta they were queued with.
func (e *GovernanceEngine) SetTimelockDelay(caller sdk.Address, cat Category, delaySecs int64) {
	e.access.requireRole(RoleTimelockAdmin, caller)
	if delaySecs < 0 {
		fail(errInvalidAmount, "delay must not be negative")
	}
	params := loadGovernanceParams()
	old := params.TimelockDelay[cat]
	params.TimelockDelay[cat] = delaySecs
	saveGovernanceParams(params)
	emitParamsUpdated("timelock_"+cat.String(), UInt64ToString(uint64(old)), UInt64ToString(uint64(delaySecs)))
}

// SetGovernanceParameters replaces the voting knobs. Takes effect for
// everything not yet queued.
func (e *GovernanceEngine) SetGovernanceParameters(caller sdk.Address, votingDelay, votingPeriod, proposalThreshold uint64, quorum [categoryCount]uint64) {
	e.access.requireRole(RoleTimelockAdmin, caller)
	for _, q := range quorum {
		if q > 100 {
			fail(errInvalidAmount, "quorum percent above 100")
		}
	}
	params := loadGovernanceParams()
	params.VotingDelay = votingDelay
	params.VotingPeriod = votingPeriod
	params.ProposalThreshold = proposalThreshold
	params.QuorumPercent = quorum
	saveGovernanceParams(params)
	emitParamsUpdated("governance", "", "updated")
}
