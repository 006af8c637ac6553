package contract

import (
	"quadra_dao/sdk"
)

// DelegationRegistry tracks proxy edges between members. The forward
// mapping (delegator -> delegatee) and the reverse index (delegatee ->
// delegator list) are only ever touched together through writeEdge and
// clearEdge, so the two sides cannot drift apart.
type DelegationRegistry struct {
	stakes *StakeLedger
}

func newDelegationRegistry(stakes *StakeLedger) *DelegationRegistry {
	return &DelegationRegistry{stakes: stakes}
}

// DelegateeOf returns the caller's current delegatee, if any.
func (d *DelegationRegistry) DelegateeOf(addr sdk.Address) (sdk.Address, bool) {
	ptr := sdk.StateGetObject(delegateForwardKey(addr))
	if ptr == nil || *ptr == "" {
		return "", false
	}
	return sdk.Address(*ptr), true
}

// Delegators returns the unordered reverse index for a delegatee.
func (d *DelegationRegistry) Delegators(addr sdk.Address) []sdk.Address {
	ptr := sdk.StateGetObject(delegateReverseKey(addr))
	if ptr == nil || *ptr == "" {
		return nil
	}
	list, err := DecodeAddressList([]byte(*ptr))
	if err != nil {
		sdk.Abort("corrupt delegator list for " + addr.String())
	}
	return list
}

// Delegate points the caller's voting power at delegatee. Re-delegating is
// a replace-in-place: the old reverse entry is removed in the same call.
func (d *DelegationRegistry) Delegate(caller sdk.Address, delegatee sdk.Address) {
	if delegatee.IsZero() {
		fail(errZeroAddress, "delegatee must not be the null identity")
	}
	if delegatee == caller {
		fail(errSelfDelegation, "cannot delegate to yourself")
	}
	if d.stakes.StakeOf(caller) == 0 {
		fail(errNoStake, "delegating requires stake")
	}
	d.writeEdge(caller, delegatee)
	emitDelegationCreated(caller.String(), delegatee.String())
}

// Revoke removes the caller's delegation edge entirely.
func (d *DelegationRegistry) Revoke(caller sdk.Address) {
	old, ok := d.DelegateeOf(caller)
	if !ok {
		fail(errNoDelegation, "no active delegation to revoke")
	}
	d.clearEdge(caller, old)
	emitDelegationRevoked(caller.String(), old.String())
}

// writeEdge is the single mutation path for creating/replacing an edge:
// drop the old reverse entry, add the new one, then flip the forward key.
func (d *DelegationRegistry) writeEdge(delegator sdk.Address, delegatee sdk.Address) {
	if old, ok := d.DelegateeOf(delegator); ok {
		d.removeDelegatorEntry(old, delegator)
	}
	d.addDelegatorEntry(delegatee, delegator)
	sdk.StateSetObject(delegateForwardKey(delegator), delegatee.String())
}

// clearEdge is the single mutation path for destroying an edge.
func (d *DelegationRegistry) clearEdge(delegator sdk.Address, delegatee sdk.Address) {
	d.removeDelegatorEntry(delegatee, delegator)
	sdk.StateDeleteObject(delegateForwardKey(delegator))
}

// addDelegatorEntry appends to the reverse index with a uniqueness guard
// so a re-delegation to the same target never duplicates the entry.
func (d *DelegationRegistry) addDelegatorEntry(delegatee sdk.Address, delegator sdk.Address) {
	list := d.Delegators(delegatee)
	for _, a := range list {
		if a == delegator {
			return
		}
	}
	list = append(list, delegator)
	sdk.StateSetObject(delegateReverseKey(delegatee), string(EncodeAddressList(list)))
}

// removeDelegatorEntry removes with swap-with-last-and-shrink; order among
// remaining delegators is unspecified by contract.
func (d *DelegationRegistry) removeDelegatorEntry(delegatee sdk.Address, delegator sdk.Address) {
	list := d.Delegators(delegatee)
	for i, a := range list {
		if a != delegator {
			continue
		}
		list[i] = list[len(list)-1]
		list = list[:len(list)-1]
		if len(list) == 0 {
			sdk.StateDeleteObject(delegateReverseKey(delegatee))
		} else {
			sdk.StateSetObject(delegateReverseKey(delegatee), string(EncodeAddressList(list)))
		}
		return
	}
}

// VotingPowerWithDelegation recomputes effective power live: the account's
// own power (suppressed while it has an outgoing delegation, so weight
// lives under exactly one account) plus the power of every delegator.
func (d *DelegationRegistry) VotingPowerWithDelegation(addr sdk.Address) uint64 {
	var power uint64
	if _, delegated := d.DelegateeOf(addr); !delegated {
		power = d.stakes.VotingPower(addr)
	}
	for _, delegator := range d.Delegators(addr) {
		power += d.stakes.VotingPower(delegator)
	}
	return power
}
