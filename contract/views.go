package contract

// JSON views returned by the read entrypoints. Kept separate from the
// stored records so the wire shape can evolve without a state migration.

//tinyjson:json
type ProposalView struct {
	Id           uint64 `json:"id"`
	Proposer     string `json:"proposer"`
	Recipient    string `json:"recipient"`
	Amount       int64  `json:"amount"`
	Description  string `json:"description"`
	Category     string `json:"category"`
	Status       string `json:"status"`
	StartBlock   uint64 `json:"start_block"`
	EndBlock     uint64 `json:"end_block"`
	ForVotes     uint64 `json:"for_votes"`
	AgainstVotes uint64 `json:"against_votes"`
	AbstainVotes uint64 `json:"abstain_votes"`
	Eta          int64  `json:"eta"`
	Tx           string `json:"tx"`
}

//tinyjson:json
type PowerView struct {
	Account        string `json:"account"`
	Stake          int64  `json:"stake"`
	OwnPower       uint64 `json:"own_power"`
	EffectivePower uint64 `json:"effective_power"`
	Delegatee      string `json:"delegatee,omitempty"`
	DelegatorCount int    `json:"delegator_count"`
}

//tinyjson:json
type TreasuryCategoryView struct {
	Category string `json:"category"`
	Balance  int64  `json:"balance"`
	Limit    int64  `json:"limit"`
}

//tinyjson:json
type TreasuryView struct {
	Categories []TreasuryCategoryView `json:"categories"`
	TotalHeld  int64                  `json:"total_held"`
}

func newProposalView(p *Proposal, status ProposalStatus) *ProposalView {
	if p == nil {
		return nil
	}
	return &ProposalView{
		Id:           p.ID,
		Proposer:     p.Proposer.String(),
		Recipient:    p.Recipient.String(),
		Amount:       int64(p.Amount),
		Description:  p.Description,
		Category:     p.Category.String(),
		Status:       status.String(),
		StartBlock:   p.StartBlock,
		EndBlock:     p.EndBlock,
		ForVotes:     p.ForVotes,
		AgainstVotes: p.AgainstVotes,
		AbstainVotes: p.AbstainVotes,
		Eta:          p.Eta,
		Tx:           p.Tx,
	}
}
