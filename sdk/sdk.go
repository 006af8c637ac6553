package sdk

import (
	"github.com/CosmWasm/tinyjson/jlexer"
)

// RevertError carries the typed symbol a contract call failed with.
// On the wasm host the symbol surfaces through the revert import; off-chain
// builds panic with this error so the test harness can catch and roll back.
type RevertError struct {
	Symbol string
	Msg    string
}

func (e *RevertError) Error() string {
	return e.Symbol + ": " + e.Msg
}

// Log writes a message to the host console so we can trace contract steps.
// Example payload: sdk.Log("hello dao")
func Log(s string) {
	hostLog(s)
}

// Abort stops execution immediately and surfaces the message to the chain, so use sparingly.
// Example payload: sdk.Abort("no stake")
func Abort(msg string) {
	hostAbort(msg)
}

// Revert throws a named error back to the caller (like revert in solidity) with a short symbol.
// Example payload: sdk.Revert("amount must be positive", "invalid_amount")
func Revert(msg string, symbol string) {
	hostRevert(msg, symbol)
}

// StateSetObject stores a key/value string pair into contract kv storage.
// Example payload: sdk.StateSetObject("count", "5")
func StateSetObject(key string, value string) {
	hostStateSet(key, value)
}

// StateGetObject fetches a key and returns nil when missing.
// Example payload: sdk.StateGetObject("count")
func StateGetObject(key string) *string {
	return hostStateGet(key)
}

// StateDeleteObject removes the key entirely, handy for cleanup.
// Example payload: sdk.StateDeleteObject("count")
func StateDeleteObject(key string) {
	hostStateDelete(key)
}

// GetEnv pulls the JSON env blob from the chain and decodes it into Env.
// Example payload: sdk.GetEnv()
func GetEnv() Env {
	env := Env{}
	l := jlexer.Lexer{Data: []byte(hostEnvJSON())}
	env.UnmarshalTinyJSON(&l)
	if err := l.Error(); err != nil {
		Abort("failed to decode env: " + err.Error())
	}
	return env
}

// GetEnvKey pulls a single env key (like tx.id) to avoid parsing the whole struct.
// Example payload: sdk.GetEnvKey("tx.id")
func GetEnvKey(key string) *string {
	return hostEnvKey(key)
}

// GetBalance queries the ledger balance for the given account+asset combo.
// Example payload: sdk.GetBalance(sdk.Address("hive:foo"), sdk.AssetHive)
func GetBalance(address Address, asset Asset) int64 {
	return hostBalance(address, asset)
}

// HiveDraw pulls tokens from the caller to the contract within the transfer.allow limit.
// Example payload: sdk.HiveDraw(1000, sdk.AssetHive)
func HiveDraw(amount int64, asset Asset) error {
	return hostDraw(amount, asset)
}

// HiveTransfer sends tokens from the contract towards a user address.
// The host can refuse the transfer; callers must treat a returned error as
// "nothing moved" and unwind their own effects.
// Example payload: sdk.HiveTransfer(sdk.Address("hive:foo"), 500, sdk.AssetHive)
func HiveTransfer(to Address, amount int64, asset Asset) error {
	return hostTransfer(to, amount, asset)
}
