package sdk

// Intent is a caller-signed permission attached to the transaction,
// e.g. transfer.allow with a limit and token.
type Intent struct {
	Type string            `json:"type"`
	Args map[string]string `json:"args"`
}

type Sender struct {
	Address              Address   `json:"id"`
	RequiredAuths        []Address `json:"required_auths"`
	RequiredPostingAuths []Address `json:"required_posting_auths"`
}

type Caller struct {
	Address Address `json:"id"`
}

//tinyjson:json
type Env struct {
	ContractId string `json:"contract.id"`

	// About the calling tx & operation
	TxId    string `json:"tx.id"`
	Index   uint64 `json:"tx.index"`
	OpIndex uint64 `json:"tx.op_index"`

	// Block section
	BlockId     string `json:"block.id"`
	BlockHeight uint64 `json:"block.height"`
	Timestamp   string `json:"block.timestamp"`

	// Original creator of the transaction triggering this operation
	Sender Sender `json:"sender"`
	// The address calling the contract; can be a contract or user address
	Caller Caller `json:"caller"`

	Intents []Intent `json:"intents"`
}
