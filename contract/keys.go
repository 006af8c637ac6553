package contract

import "quadra_dao/sdk"

const (
	// kContractConfig stores the encoded ContractConfig singleton.
	kContractConfig byte = 0x01
	// kGovParams stores the encoded GovernanceParams singleton.
	kGovParams byte = 0x02
	// kMemberStake holds one decimal stake amount per account.
	kMemberStake byte = 0x03
	// kDelegateForward maps delegator -> delegatee (single edge).
	kDelegateForward byte = 0x04
	// kDelegateReverse stores the encoded delegator list per delegatee.
	kDelegateReverse byte = 0x05
	// kTreasuryBalance keeps one balance per category.
	kTreasuryBalance byte = 0x06
	// kTreasuryLimit keeps one ceiling per category.
	kTreasuryLimit byte = 0x07
	// kRoleFlag flags (role, account) memberships.
	kRoleFlag byte = 0x08
	// kProposalMeta contains encoded Proposal records.
	kProposalMeta byte = 0x10
	// kVoteReceipt stores encoded VoteReceipt entries per proposal+voter.
	kVoteReceipt byte = 0x11
)

const (
	// TotalStakeKey holds the running total of all member stakes.
	TotalStakeKey = "stake:total"
	// ProposalsCount holds an integer counter for proposals (used for generating IDs).
	ProposalsCount = "count:props"
)

// packU64LEInline sprinkles a uint64 into dst in little-endian order so our keys stay compact.
func packU64LEInline(x uint64, dst []byte) {
	dst[0] = byte(x)
	dst[1] = byte(x >> 8)
	dst[2] = byte(x >> 16)
	dst[3] = byte(x >> 24)
	dst[4] = byte(x >> 32)
	dst[5] = byte(x >> 40)
	dst[6] = byte(x >> 48)
	dst[7] = byte(x >> 56)
}

// packU64LE appends the encoded number to dst and returns the new slice.
func packU64LE(x uint64, dst []byte) []byte {
	return append(dst,
		byte(x),
		byte(x>>8),
		byte(x>>16),
		byte(x>>24),
		byte(x>>32),
		byte(x>>40),
		byte(x>>48),
		byte(x>>56),
	)
}

// addrKey builds prefix+address keys without nested maps in host storage.
func addrKey(prefix byte, addr sdk.Address) string {
	addrStr := AddressToString(addr)
	buf := make([]byte, 0, 1+len(addrStr))
	buf = append(buf, prefix)
	buf = append(buf, addrStr...)
	return string(buf)
}

// contractConfigKey is the singleton slot for the deploy config.
func contractConfigKey() string {
	return string([]byte{kContractConfig})
}

// govParamsKey is the singleton slot for governance parameters.
func govParamsKey() string {
	return string([]byte{kGovParams})
}

// stakeKey addresses one member's stake amount.
func stakeKey(addr sdk.Address) string {
	return addrKey(kMemberStake, addr)
}

// delegateForwardKey addresses the single outgoing edge of a delegator.
func delegateForwardKey(addr sdk.Address) string {
	return addrKey(kDelegateForward, addr)
}

// delegateReverseKey addresses the delegator list of a delegatee.
func delegateReverseKey(addr sdk.Address) string {
	return addrKey(kDelegateReverse, addr)
}

// treasuryBalanceKey addresses one category balance.
func treasuryBalanceKey(cat Category) string {
	return string([]byte{kTreasuryBalance, byte(cat)})
}

// treasuryLimitKey addresses one category ceiling.
func treasuryLimitKey(cat Category) string {
	return string([]byte{kTreasuryLimit, byte(cat)})
}

// roleKey mixes the role byte with the account so lookups stay single-read.
func roleKey(role Role, addr sdk.Address) string {
	addrStr := AddressToString(addr)
	buf := make([]byte, 0, 2+len(addrStr))
	buf = append(buf, kRoleFlag, byte(role))
	buf = append(buf, addrStr...)
	return string(buf)
}

// proposalKey encodes id under the 0x10 prefix keeping metadata lumps contiguous.
func proposalKey(id uint64) string {
	var buf [9]byte
	buf[0] = kProposalMeta
	packU64LEInline(id, buf[1:])
	return string(buf[:])
}

// voteReceiptKey scopes a ballot to proposal id plus voter address.
func voteReceiptKey(id uint64, voter sdk.Address) string {
	addrStr := AddressToString(voter)
	buf := make([]byte, 0, 1+8+len(addrStr))
	buf = append(buf, kVoteReceipt)
	buf = packU64LE(id, buf)
	buf = append(buf, addrStr...)
	return string(buf)
}
