package contract

import (
	"strings"

	"quadra_dao/sdk"
)

// engine wires the registries together once; every component is stateless
// over the host kv store, so sharing the instance across calls is safe.
var engine = newGovernanceEngine()

// -----------------------------------------------------------------------------
// Contract Initialization
// -----------------------------------------------------------------------------

// ContractInit initializes the contract with the caller as owner and seeds
// the governance knobs and treasury ceilings.
// Payload: "votingDelay|votingPeriod|proposalThreshold|q0,q1,q2|d0,d1,d2|l0,l1,l2"
// (quorum percents, timelock delays in seconds and ceiling amounts are
// given per category in declaration order). Three optional trailing fields
// seed the guardian, executor and timelock admin accounts.
//
//go:wasmexport contract_init
func ContractInit(payload *string) *string {
	if isContractInitialized() {
		sdk.Abort("contract already initialized")
	}
	parts := payloadFields(payload, 6, "votingDelay|votingPeriod|proposalThreshold|quorums|delays|limits")

	quorum := parsePayloadTriple(parts[3])
	for _, q := range quorum {
		if q > 100 {
			fail(errInvalidPayload, "quorum percent above 100")
		}
	}
	params := &GovernanceParams{
		VotingDelay:       parsePayloadUint(parts[0]),
		VotingPeriod:      parsePayloadUint(parts[1]),
		ProposalThreshold: parsePayloadUint(parts[2]),
		QuorumPercent:     quorum,
		TimelockDelay:     parsePayloadTripleInt(parts[4]),
	}

	cfg := ContractConfig{Owner: getSenderAddress()}
	saveContractConfig(&cfg)
	saveGovernanceParams(params)

	limits := parsePayloadAmountTriple(parts[5])
	for i, limit := range limits {
		engine.treasury.setLimit(Category(i), limit)
	}

	seedRoles := [...]Role{RoleGuardian, RoleExecutor, RoleTimelockAdmin}
	for i, role := range seedRoles {
		if len(parts) <= 6+i {
			break
		}
		account := sdk.Address(strings.TrimSpace(parts[6+i]))
		if account.IsZero() {
			continue
		}
		sdk.StateSetObject(roleKey(role, account), "1")
		emitRoleGranted(role, account.String(), cfg.Owner.String())
	}

	emitInitEvent(cfg.Owner.String())
	return strptr("initialized")
}

// -----------------------------------------------------------------------------
// Stake
// -----------------------------------------------------------------------------

// StakeDeposit locks the caller's funds as voting stake.
// Payload: "amount" (human decimal, e.g. "12.5")
//
//go:wasmexport stake_deposit
func StakeDeposit(payload *string) *string {
	parts := payloadFields(payload, 1, "amount")
	caller := getSenderAddress()
	engine.stakes.Deposit(caller, parsePayloadAmount(parts[0]))
	return strptr("staked")
}

// StakeWithdraw releases stake back to the caller.
// Payload: "amount"
//
//go:wasmexport stake_withdraw
func StakeWithdraw(payload *string) *string {
	parts := payloadFields(payload, 1, "amount")
	caller := getSenderAddress()
	engine.stakes.Withdraw(caller, parsePayloadAmount(parts[0]))
	return strptr("withdrawn")
}

// -----------------------------------------------------------------------------
// Delegation
// -----------------------------------------------------------------------------

// DelegateSet points the caller's voting power at another member.
// Payload: "delegatee"
//
//go:wasmexport delegate_set
func DelegateSet(payload *string) *string {
	parts := payloadFields(payload, 1, "delegatee")
	caller := getSenderAddress()
	engine.delegations.Delegate(caller, sdk.Address(strings.TrimSpace(parts[0])))
	return strptr("delegated")
}

// DelegateRevoke removes the caller's delegation.
//
//go:wasmexport delegate_revoke
func DelegateRevoke(_ *string) *string {
	engine.delegations.Revoke(getSenderAddress())
	return strptr("revoked")
}

// -----------------------------------------------------------------------------
// Treasury
// -----------------------------------------------------------------------------

// TreasuryDeposit funds one category from the caller's balance.
// Payload: "category|amount"
//
//go:wasmexport treasury_deposit
func TreasuryDeposit(payload *string) *string {
	parts := payloadFields(payload, 2, "category|amount")
	caller := getSenderAddress()
	engine.treasury.Deposit(caller, parsePayloadCategory(parts[0]), parsePayloadAmount(parts[1]))
	return strptr("deposited")
}

// TreasurySetLimit updates one category's ceiling. Owner only.
// Payload: "category|limit"
//
//go:wasmexport treasury_set_limit
func TreasurySetLimit(payload *string) *string {
	parts := payloadFields(payload, 2, "category|limit")
	caller := getSenderAddress()
	engine.treasury.SetLimit(caller, parsePayloadCategory(parts[0]), parsePayloadAmount(parts[1]))
	return strptr("limit updated")
}

// -----------------------------------------------------------------------------
// Roles
// -----------------------------------------------------------------------------

// RolesGrant flags a role for an account. Owner only.
// Payload: "role|account"
//
//go:wasmexport roles_grant
func RolesGrant(payload *string) *string {
	parts := payloadFields(payload, 2, "role|account")
	caller := getSenderAddress()
	engine.access.Grant(caller, parsePayloadRole(parts[0]), requirePayloadAddress(parts[1]))
	return strptr("granted")
}

// RolesRevoke clears a role from an account. Owner only.
// Payload: "role|account"
//
//go:wasmexport roles_revoke
func RolesRevoke(payload *string) *string {
	parts := payloadFields(payload, 2, "role|account")
	caller := getSenderAddress()
	engine.access.Revoke(caller, parsePayloadRole(parts[0]), requirePayloadAddress(parts[1]))
	return strptr("revoked")
}

// -----------------------------------------------------------------------------
// Proposals
// -----------------------------------------------------------------------------

// ProposalsCreate registers a spending proposal.
// Payload: "recipient|amount|category|description" (description may itself
// contain pipes, so only the first three separators count).
//
//go:wasmexport proposals_create
func ProposalsCreate(payload *string) *string {
	if payload == nil {
		fail(errInvalidPayload, "missing payload, expected recipient|amount|category|description")
	}
	parts := strings.SplitN(*payload, "|", 4)
	if len(parts) < 4 {
		fail(errInvalidPayload, "expected recipient|amount|category|description")
	}
	caller := getSenderAddress()
	id := engine.Create(
		caller,
		sdk.Address(strings.TrimSpace(parts[0])),
		parsePayloadAmount(parts[1]),
		parts[3],
		parsePayloadCategory(parts[2]),
	)
	return strptr(UInt64ToString(id))
}

// ProposalsVote casts the caller's ballot.
// Payload: "proposalId|support" (support: against/for/abstain or 0/1/2)
//
//go:wasmexport proposals_vote
func ProposalsVote(payload *string) *string {
	parts := payloadFields(payload, 2, "proposalId|support")
	caller := getSenderAddress()
	engine.CastVote(caller, parsePayloadUint(parts[0]), parsePayloadSupport(parts[1]))
	return strptr("voted")
}

// ProposalsQueue moves a succeeded proposal into the timelock. Anyone may
// call it; the proposal's own state is the gate.
// Payload: "proposalId"
//
//go:wasmexport proposals_queue
func ProposalsQueue(payload *string) *string {
	parts := payloadFields(payload, 1, "proposalId")
	engine.Queue(parsePayloadUint(parts[0]))
	return strptr("queued")
}

// ProposalsExecute pays a queued proposal out after its timelock.
// Payload: "proposalId"
//
//go:wasmexport proposals_execute
func ProposalsExecute(payload *string) *string {
	parts := payloadFields(payload, 1, "proposalId")
	engine.Execute(parsePayloadUint(parts[0]))
	return strptr("executed")
}

// ProposalsCancel is the guardian's emergency stop.
// Payload: "proposalId"
//
//go:wasmexport proposals_cancel
func ProposalsCancel(payload *string) *string {
	parts := payloadFields(payload, 1, "proposalId")
	caller := getSenderAddress()
	engine.Cancel(caller, parsePayloadUint(parts[0]))
	return strptr("cancelled")
}

// -----------------------------------------------------------------------------
// Parameters
// -----------------------------------------------------------------------------

// ParamsSetTimelock updates one category's timelock delay. Timelock admin only.
// Payload: "category|delaySeconds"
//
//go:wasmexport params_set_timelock
func ParamsSetTimelock(payload *string) *string {
	parts := payloadFields(payload, 2, "category|delaySeconds")
	caller := getSenderAddress()
	engine.SetTimelockDelay(caller, parsePayloadCategory(parts[0]), parsePayloadInt(parts[1]))
	return strptr("timelock updated")
}

// ParamsSetGov replaces the voting knobs. Timelock admin only.
// Payload: "votingDelay|votingPeriod|proposalThreshold|q0,q1,q2"
//
//go:wasmexport params_set_gov
func ParamsSetGov(payload *string) *string {
	parts := payloadFields(payload, 4, "votingDelay|votingPeriod|proposalThreshold|quorums")
	caller := getSenderAddress()
	engine.SetGovernanceParameters(
		caller,
		parsePayloadUint(parts[0]),
		parsePayloadUint(parts[1]),
		parsePayloadUint(parts[2]),
		parsePayloadTriple(parts[3]),
	)
	return strptr("params updated")
}

// -----------------------------------------------------------------------------
// Reads
// -----------------------------------------------------------------------------

// ProposalsGetOne returns the proposal as JSON with its derived status.
// Payload: "proposalId"
//
//go:wasmexport proposals_get_one
func ProposalsGetOne(payload *string) *string {
	parts := payloadFields(payload, 1, "proposalId")
	p := loadProposal(parsePayloadUint(parts[0]))
	view := newProposalView(p, engine.status(p, blockHeight()))
	data, err := view.MarshalJSON()
	abortOnError(err, "failed to encode proposal view")
	return strptr(string(data))
}

// PowerGet returns the stake and power breakdown for an account.
// Payload: "account" (empty falls back to the caller)
//
//go:wasmexport power_get
func PowerGet(payload *string) *string {
	account := getSenderAddress()
	if payload != nil {
		if trimmed := strings.TrimSpace(*payload); trimmed != "" {
			account = sdk.Address(trimmed)
		}
	}
	view := PowerView{
		Account:        account.String(),
		Stake:          int64(engine.stakes.StakeOf(account)),
		OwnPower:       engine.stakes.VotingPower(account),
		EffectivePower: engine.delegations.VotingPowerWithDelegation(account),
		DelegatorCount: len(engine.delegations.Delegators(account)),
	}
	if delegatee, ok := engine.delegations.DelegateeOf(account); ok {
		view.Delegatee = delegatee.String()
	}
	data, err := view.MarshalJSON()
	abortOnError(err, "failed to encode power view")
	return strptr(string(data))
}

// TreasuryGet returns all category balances and ceilings as JSON.
//
//go:wasmexport treasury_get
func TreasuryGet(_ *string) *string {
	view := TreasuryView{
		Categories: make([]TreasuryCategoryView, 0, categoryCount),
		TotalHeld:  int64(engine.treasury.heldFunds()),
	}
	for i := 0; i < categoryCount; i++ {
		cat := Category(i)
		view.Categories = append(view.Categories, TreasuryCategoryView{
			Category: cat.String(),
			Balance:  int64(engine.treasury.BalanceOf(cat)),
			Limit:    int64(engine.treasury.LimitOf(cat)),
		})
	}
	data, err := view.MarshalJSON()
	abortOnError(err, "failed to encode treasury view")
	return strptr(string(data))
}
