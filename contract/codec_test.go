package contract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quadra_dao/sdk"
)

func TestProposalCodecRoundTrip(t *testing.T) {
	in := &Proposal{
		ID:           7,
		Proposer:     "hive:alice",
		Recipient:    "hive:carol",
		Amount:       12_500,
		Description:  "server costs | with a pipe and ümlauts",
		Category:     CategoryExperimentalBet,
		StartBlock:   101,
		EndBlock:     111,
		ForVotes:     316_227,
		AgainstVotes: 100_000,
		AbstainVotes: 1,
		Cancelled:    false,
		Executed:     true,
		Queued:       true,
		Eta:          1_756_021_600,
		Tx:           "tx-99",
	}
	out, err := DecodeProposal(EncodeProposal(in))
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestProposalDecodeTruncated(t *testing.T) {
	data := EncodeProposal(&Proposal{ID: 1, Proposer: "hive:alice", Description: "d"})
	_, err := DecodeProposal(data[:len(data)/2])
	assert.Error(t, err)
}

func TestGovernanceParamsCodecRoundTrip(t *testing.T) {
	in := &GovernanceParams{
		VotingDelay:       1,
		VotingPeriod:      10,
		ProposalThreshold: 50_000,
		QuorumPercent:     [categoryCount]uint64{30, 20, 10},
		TimelockDelay:     [categoryCount]int64{172_800, 86_400, 21_600},
	}
	out, err := DecodeGovernanceParams(EncodeGovernanceParams(in))
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestAddressListCodec(t *testing.T) {
	empty, err := DecodeAddressList(EncodeAddressList(nil))
	require.NoError(t, err)
	assert.Empty(t, empty)

	in := []sdk.Address{"hive:alice", "hive:bob", "did:key:z6Mk"}
	out, err := DecodeAddressList(EncodeAddressList(in))
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestVoteReceiptCodecRoundTrip(t *testing.T) {
	in := &VoteReceipt{Support: VoteAbstain, Weight: 223_606, VotedAt: 1_756_000_123}
	out, err := DecodeVoteReceipt(EncodeVoteReceipt(in))
	require.NoError(t, err)
	assert.Equal(t, in, out)
}
