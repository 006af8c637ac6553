package contract

import (
	"fmt"

	"quadra_dao/sdk"
)

// -----------------------------------------------------------------------------
// Event emission
// -----------------------------------------------------------------------------
// Events are short pipe-delimited log lines. Indexers parse them off-chain;
// the codes are part of the contract's public surface and must stay stable.

// emitInitEvent marks successful contract initialization.
func emitInitEvent(owner string) {
	sdk.Log(fmt.Sprintf("ci|owner:%s", owner))
}

// emitStakeDeposited -> sd|<member>|<amount>|<newStake>
func emitStakeDeposited(addr string, amount Amount, newStake Amount) {
	sdk.Log(fmt.Sprintf("sd|%s|%d|%d", addr, amount, newStake))
}

// emitStakeWithdrawn -> sw|<member>|<amount>|<newStake>
func emitStakeWithdrawn(addr string, amount Amount, newStake Amount) {
	sdk.Log(fmt.Sprintf("sw|%s|%d|%d", addr, amount, newStake))
}

// emitDelegationCreated -> dg|<delegator>|<delegatee>
func emitDelegationCreated(delegator string, delegatee string) {
	sdk.Log(fmt.Sprintf("dg|%s|%s", delegator, delegatee))
}

// emitDelegationRevoked -> dr|<delegator>|<delegatee>
func emitDelegationRevoked(delegator string, delegatee string) {
	sdk.Log(fmt.Sprintf("dr|%s|%s", delegator, delegatee))
}

// emitTreasuryDeposit -> td|<category>|<by>|<amount>
func emitTreasuryDeposit(cat Category, by string, amount Amount) {
	sdk.Log(fmt.Sprintf("td|%s|%s|%d", cat.String(), by, amount))
}

// emitBalanceLimitUpdated -> tl|<category>|<old>|<new>
func emitBalanceLimitUpdated(cat Category, oldLimit Amount, newLimit Amount) {
	sdk.Log(fmt.Sprintf("tl|%s|%d|%d", cat.String(), oldLimit, newLimit))
}

// emitRoleGranted -> rg|<role>|<account>|<by>
func emitRoleGranted(role Role, account string, by string) {
	sdk.Log(fmt.Sprintf("rg|%s|%s|%s", role.String(), account, by))
}

// emitRoleRevoked -> rr|<role>|<account>|<by>
func emitRoleRevoked(role Role, account string, by string) {
	sdk.Log(fmt.Sprintf("rr|%s|%s|%s", role.String(), account, by))
}

// emitProposalCreated logs the compact line plus a JSON view so indexers
// get the full record without a follow-up read.
func emitProposalCreated(p *Proposal) {
	sdk.Log(fmt.Sprintf("pc|id:%d|by:%s|cat:%s|amt:%d", p.ID, p.Proposer.String(), p.Category.String(), p.Amount))
	if view := newProposalView(p, StatusPending); view != nil {
		if data, err := view.MarshalJSON(); err == nil {
			sdk.Log(string(data))
		}
	}
}

// emitVoteCast -> v|<id>|<voter>|<support>|<weight>
func emitVoteCast(id uint64, voter string, support VoteSupport, weight uint64) {
	sdk.Log(fmt.Sprintf("v|%d|%s|%s|%d", id, voter, support.String(), weight))
}

// emitProposalQueued -> pq|<id>|eta:<unix>
func emitProposalQueued(id uint64, eta int64) {
	sdk.Log(fmt.Sprintf("pq|%d|eta:%d", id, eta))
}

// emitProposalExecuted -> px|<id>|<recipient>|<amount>|<category>
func emitProposalExecuted(id uint64, recipient string, amount Amount, cat Category) {
	sdk.Log(fmt.Sprintf("px|%d|%s|%d|%s", id, recipient, amount, cat.String()))
}

// emitProposalCancelled -> pX|<id>|by:<guardian>
func emitProposalCancelled(id uint64, by string) {
	sdk.Log(fmt.Sprintf("pX|%d|by:%s", id, by))
}

// emitParamsUpdated -> gp|<name>|<old>|<new>
func emitParamsUpdated(name string, oldVal string, newVal string) {
	sdk.Log(fmt.Sprintf("gp|%s|%s|%s", name, oldVal, newVal))
}
