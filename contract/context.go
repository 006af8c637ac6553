package contract

import (
	"strconv"
	"time"

	"quadra_dao/sdk"
)

// cachedEnv is scoped to the currently executing transaction. Whenever the
// tx.id changes we refresh sdk.GetEnv() so subsequent helper calls (sender,
// height, timestamps) always see the same snapshot.
var (
	cachedEnv       sdk.Env
	cachedEnvLoaded bool
)

// currentEnv caches the env per tx.id so we dont poke the host api every few lines.
func currentEnv() *sdk.Env {
	var currentTx string
	if txPtr := sdk.GetEnvKey("tx.id"); txPtr != nil {
		currentTx = *txPtr
	}
	if !cachedEnvLoaded || cachedEnv.TxId != currentTx {
		cachedEnv = sdk.GetEnv()
		cachedEnvLoaded = true
	}
	return &cachedEnv
}

// currentIntents is a tiny helper to access intents already pulled above.
func currentIntents() []sdk.Intent {
	return currentEnv().Intents
}

func getSenderAddress() sdk.Address {
	return currentEnv().Sender.Address
}

// blockHeight returns the chain's monotonically increasing block counter.
func blockHeight() uint64 {
	return currentEnv().BlockHeight
}

// nowUnix returns the current Unix timestamp, preferring the chain's block
// timestamp from the environment.
func nowUnix() int64 {
	if ts := currentEnv().Timestamp; ts != "" {
		if v, ok := parseTimestamp(ts); ok {
			return v
		}
	}
	if tsPtr := sdk.GetEnvKey("block.timestamp"); tsPtr != nil && *tsPtr != "" {
		if v, ok := parseTimestamp(*tsPtr); ok {
			return v
		}
	}
	return time.Now().Unix()
}

// parseTimestamp accepts unix seconds or iso-ish strings since the env flips formats sometimes.
func parseTimestamp(val string) (int64, bool) {
	if v, err := strconv.ParseInt(val, 10, 64); err == nil {
		return v, true
	}
	if t, err := time.Parse(time.RFC3339, val); err == nil {
		return t.Unix(), true
	}
	if t, err := time.ParseInLocation("2006-01-02T15:04:05", val, time.UTC); err == nil {
		return t.Unix(), true
	}
	return 0, false
}

func getTxID() string {
	return currentEnv().TxId
}
