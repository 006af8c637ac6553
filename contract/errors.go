package contract

import "quadra_dao/sdk"

// Revert symbols. Every validation failure aborts the whole operation with
// one of these; the host guarantees zero state mutation for reverted calls.
const (
	errInvalidAmount               = "invalid_amount"
	errInsufficientStake           = "insufficient_stake"
	errZeroAddress                 = "zero_address"
	errSelfDelegation              = "self_delegation"
	errNoStake                     = "no_stake"
	errNoDelegation                = "no_delegation"
	errCategoryLimitExceeded       = "category_limit_exceeded"
	errInsufficientCategoryBalance = "insufficient_category_balance"
	errInsufficientTotalBalance    = "insufficient_total_balance"
	errUnauthorized                = "unauthorized"
	errEmptyDescription            = "empty_description"
	errInsufficientProposalPower   = "insufficient_proposal_power"
	errInvalidSupport              = "invalid_support"
	errProposalNotActive           = "proposal_not_active"
	errAlreadyVoted                = "already_voted"
	errNoVotingPower               = "no_voting_power"
	errProposalCancelled           = "proposal_cancelled"
	errAlreadyQueued               = "already_queued"
	errVotingNotEnded              = "voting_not_ended"
	errProposalNotPassed           = "proposal_not_passed"
	errQuorumNotReached            = "quorum_not_reached"
	errAlreadyExecuted             = "already_executed"
	errNotQueued                   = "not_queued"
	errTimelockNotExpired          = "timelock_not_expired"
	errAlreadyCancelled            = "already_cancelled"
	errProposalNotFound            = "proposal_not_found"
	errTransferFailed              = "transfer_failed"
	errInvalidCategory             = "invalid_category"
	errInvalidRole                 = "invalid_role"
	errInvalidPayload              = "invalid_payload"
)

// fail reverts the current call with a typed symbol.
func fail(symbol string, msg string) {
	sdk.Revert(msg, symbol)
}

// abortOnError keeps payload decoding terse; parse failures are not typed.
func abortOnError(err error, msg string) {
	if err != nil {
		sdk.Abort(msg + ": " + err.Error())
	}
}
