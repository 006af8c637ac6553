package contract

import (
	"strconv"
	"strings"

	"quadra_dao/sdk"
)

// -----------------------------------------------------------------------------
// Payload decoding
// -----------------------------------------------------------------------------
// Entrypoint payloads are pipe-delimited strings, e.g. the proposal payload
// "hive:bob|12.5|operational_expense|server costs". Field parsers revert
// with invalid_payload so callers get an actionable symbol instead of a
// raw abort.

// payloadFields splits the raw payload and checks the arity.
func payloadFields(payload *string, want int, usage string) []string {
	if payload == nil {
		fail(errInvalidPayload, "missing payload, expected "+usage)
	}
	parts := strings.Split(*payload, "|")
	if len(parts) < want {
		fail(errInvalidPayload, "expected "+usage)
	}
	return parts
}

// requirePayloadAddress trims and validates one address field.
func requirePayloadAddress(field string) sdk.Address {
	addr := sdk.Address(strings.TrimSpace(field))
	if addr.IsZero() {
		fail(errZeroAddress, "address field must not be empty")
	}
	return addr
}

// parsePayloadAmount reads a human decimal ("12.5") into scaled units.
func parsePayloadAmount(field string) Amount {
	v, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
	if err != nil {
		fail(errInvalidPayload, "bad amount: "+field)
	}
	return FloatToAmount(v)
}

// parsePayloadUint reads a bare decimal counter field.
func parsePayloadUint(field string) uint64 {
	v, err := strconv.ParseUint(strings.TrimSpace(field), 10, 64)
	if err != nil {
		fail(errInvalidPayload, "bad number: "+field)
	}
	return v
}

// parsePayloadInt reads a signed decimal field (timelock seconds).
func parsePayloadInt(field string) int64 {
	v, err := strconv.ParseInt(strings.TrimSpace(field), 10, 64)
	if err != nil {
		fail(errInvalidPayload, "bad number: "+field)
	}
	return v
}

// parsePayloadCategory accepts the category name or its numeric code.
func parsePayloadCategory(field string) Category {
	switch strings.TrimSpace(field) {
	case "high_conviction", "0":
		return CategoryHighConviction
	case "experimental_bet", "1":
		return CategoryExperimentalBet
	case "operational_expense", "2":
		return CategoryOperationalExpense
	}
	fail(errInvalidCategory, "unknown category: "+field)
	return 0
}

// parsePayloadRole accepts the role name or its numeric code.
func parsePayloadRole(field string) Role {
	switch strings.TrimSpace(field) {
	case "proposer", "0":
		return RoleProposer
	case "voter", "1":
		return RoleVoter
	case "executor", "2":
		return RoleExecutor
	case "guardian", "3":
		return RoleGuardian
	case "timelock_admin", "4":
		return RoleTimelockAdmin
	}
	fail(errInvalidRole, "unknown role: "+field)
	return 0
}

// parsePayloadSupport keeps unknown values as-is so CastVote can report
// invalid_support after the existence checks, in the documented order.
func parsePayloadSupport(field string) VoteSupport {
	switch strings.TrimSpace(field) {
	case "against", "0":
		return VoteAgainst
	case "for", "1":
		return VoteFor
	case "abstain", "2":
		return VoteAbstain
	}
	if v, err := strconv.ParseUint(strings.TrimSpace(field), 10, 8); err == nil {
		return VoteSupport(v)
	}
	fail(errInvalidPayload, "bad support: "+field)
	return 0
}

// parsePayloadTriple reads a comma-separated uint triple ("30,20,10").
func parsePayloadTriple(field string) [categoryCount]uint64 {
	parts := strings.Split(strings.TrimSpace(field), ",")
	if len(parts) != categoryCount {
		fail(errInvalidPayload, "expected three comma-separated values: "+field)
	}
	var out [categoryCount]uint64
	for i, p := range parts {
		out[i] = parsePayloadUint(p)
	}
	return out
}

// parsePayloadTripleInt is parsePayloadTriple for signed values.
func parsePayloadTripleInt(field string) [categoryCount]int64 {
	parts := strings.Split(strings.TrimSpace(field), ",")
	if len(parts) != categoryCount {
		fail(errInvalidPayload, "expected three comma-separated values: "+field)
	}
	var out [categoryCount]int64
	for i, p := range parts {
		out[i] = parsePayloadInt(p)
	}
	return out
}

// parsePayloadAmountTriple reads three human decimals into scaled units.
func parsePayloadAmountTriple(field string) [categoryCount]Amount {
	parts := strings.Split(strings.TrimSpace(field), ",")
	if len(parts) != categoryCount {
		fail(errInvalidPayload, "expected three comma-separated values: "+field)
	}
	var out [categoryCount]Amount
	for i, p := range parts {
		out[i] = parsePayloadAmount(p)
	}
	return out
}
