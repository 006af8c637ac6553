package sdk

import "strconv"

func formatAmount(v int64) string {
	return strconv.FormatInt(v, 10)
}

func parseBalance(s string) int64 {
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		Abort("host returned non-numeric balance: " + s)
	}
	return v
}
