package contract

import (
	"strconv"
	"strings"

	"quadra_dao/sdk"
)

// -----------------------------------------------------------------------------
// State Utilities
// -----------------------------------------------------------------------------

// stateSetIfChanged avoids unnecessary writes so we dont thrash storage fees.
func stateSetIfChanged(key, value string) {
	if existing := sdk.StateGetObject(key); existing != nil && *existing == value {
		return
	}
	sdk.StateSetObject(key, value)
}

// -----------------------------------------------------------------------------
// Counter Operations
// -----------------------------------------------------------------------------

// getCount reads the string counter under the key and defaults to zero, nothing magical here.
func getCount(key string) uint64 {
	ptr := sdk.StateGetObject(key)
	if ptr == nil || *ptr == "" {
		return 0
	}
	n, _ := strconv.ParseUint(*ptr, 10, 64)
	return n
}

// setCount stores uint64 counters back as decimal strings for the host kv.
func setCount(key string, n uint64) {
	stateSetIfChanged(key, strconv.FormatUint(n, 10))
}

// -----------------------------------------------------------------------------
// String Helpers
// -----------------------------------------------------------------------------

// UInt64ToString turns an id back into decimal text for logs or payload building.
// Example payload: UInt64ToString(9001)
func UInt64ToString(val uint64) string {
	return strconv.FormatUint(val, 10)
}

func strptr(s string) *string {
	return &s
}

// -----------------------------------------------------------------------------
// Intent Helpers
// -----------------------------------------------------------------------------

// TransferAllow represents arguments extracted from a transfer.allow intent.
// It specifies the allowed transfer amount (Limit, scaled) and the asset.
type TransferAllow struct {
	Limit Amount
	Token sdk.Asset
}

// getFirstTransferAllow picks the first transfer.allow intent off the tx.
func getFirstTransferAllow(intents []sdk.Intent) *TransferAllow {
	for _, intent := range intents {
		if intent.Type != "transfer.allow" {
			continue
		}
		token := strings.TrimSpace(intent.Args["token"])
		limitStr := strings.TrimSpace(intent.Args["limit"])
		limit, err := strconv.ParseFloat(limitStr, 64)
		if err != nil {
			sdk.Abort("invalid intent limit: " + limitStr)
		}
		return &TransferAllow{
			Limit: FloatToAmount(limit),
			Token: sdk.Asset(token),
		}
	}
	return nil
}

// requireTransferAllow enforces an intent covering amount in treasuryAsset.
func requireTransferAllow(amount Amount) {
	ta := getFirstTransferAllow(currentIntents())
	if ta == nil {
		sdk.Abort("transfer.allow intent required")
	}
	if ta.Token != treasuryAsset {
		sdk.Abort("intent token != treasury asset")
	}
	if ta.Limit < amount {
		sdk.Abort("intent limit below requested amount")
	}
}
