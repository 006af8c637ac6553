//go:build !wasm

package sdk

import (
	"github.com/JustinKnueppel/go-result"
)

// Host is the off-chain stand-in for the wasm import surface. Method shapes
// mirror the node-side sdk module: fallible host calls hand back a
// result.Result instead of aborting the runtime.
type Host interface {
	Log(msg string)
	StateSet(key, value string) result.Result[struct{}]
	StateGet(key string) result.Result[string]
	StateDelete(key string) result.Result[struct{}]
	EnvJSON() string
	EnvKey(key string) *string
	Balance(address Address, asset Asset) result.Result[int64]
	Draw(amount int64, asset Asset) result.Result[struct{}]
	Transfer(to Address, amount int64, asset Asset) result.Result[struct{}]
}

// activeHost backs every sdk call in non-wasm builds. Tests install a
// MockHost here before touching contract code.
var activeHost Host

// UseHost installs the host implementation for this process.
func UseHost(h Host) {
	activeHost = h
}

// CurrentHost returns the installed host, aborting when none is set so a
// missing test setup fails loudly instead of nil-dereferencing.
func CurrentHost() Host {
	if activeHost == nil {
		panic("sdk: no host installed; call sdk.UseHost first")
	}
	return activeHost
}

func hostLog(s string) {
	CurrentHost().Log(s)
}

func hostAbort(msg string) {
	panic(&RevertError{Symbol: "abort", Msg: msg})
}

func hostRevert(msg string, symbol string) {
	panic(&RevertError{Symbol: symbol, Msg: msg})
}

func hostStateSet(key string, value string) {
	CurrentHost().StateSet(key, value).Expect("state set failed")
}

func hostStateGet(key string) *string {
	res := CurrentHost().StateGet(key)
	if res.IsErr() {
		return nil
	}
	val := res.Unwrap()
	if val == "" {
		return nil
	}
	return &val
}

func hostStateDelete(key string) {
	CurrentHost().StateDelete(key).Expect("state delete failed")
}

func hostEnvJSON() string {
	return CurrentHost().EnvJSON()
}

func hostEnvKey(key string) *string {
	return CurrentHost().EnvKey(key)
}

func hostBalance(address Address, asset Asset) int64 {
	return CurrentHost().Balance(address, asset).UnwrapOr(0)
}

func hostDraw(amount int64, asset Asset) error {
	res := CurrentHost().Draw(amount, asset)
	if res.IsErr() {
		return res.UnwrapErr()
	}
	return nil
}

func hostTransfer(to Address, amount int64, asset Asset) error {
	res := CurrentHost().Transfer(to, amount, asset)
	if res.IsErr() {
		return res.UnwrapErr()
	}
	return nil
}
