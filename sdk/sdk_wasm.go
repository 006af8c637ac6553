//go:build wasm

package sdk

import "errors"

//go:wasmimport sdk console.log
func log(s *string) *string

//go:wasmimport sdk db.set_object
func stateSetObject(key *string, value *string) *string

//go:wasmimport sdk db.get_object
func stateGetObject(key *string) *string

//go:wasmimport sdk db.rm_object
func stateDeleteObject(key *string) *string

//go:wasmimport sdk system.get_env
func getEnv(arg *string) *string

//go:wasmimport sdk system.get_env_key
func getEnvKey(arg *string) *string

//go:wasmimport sdk hive.get_balance
func getBalance(arg1 *string, arg2 *string) *string

//go:wasmimport sdk hive.draw
func hiveDraw(arg1 *string, arg2 *string) *string

//go:wasmimport sdk hive.transfer
func hiveTransfer(arg1 *string, arg2 *string, arg3 *string) *string

//go:wasmimport env abort
func abort(msg, file *string, line, column *int32)

//go:wasmimport env revert
func revert(msg, symbol *string)

func hostLog(s string) {
	log(&s)
}

func hostAbort(msg string) {
	ln := int32(0)
	abort(&msg, nil, &ln, &ln)
	panic(msg)
}

func hostRevert(msg string, symbol string) {
	revert(&msg, &symbol)
	panic(&RevertError{Symbol: symbol, Msg: msg})
}

func hostStateSet(key string, value string) {
	stateSetObject(&key, &value)
}

func hostStateGet(key string) *string {
	ptr := stateGetObject(&key)
	if ptr == nil || *ptr == "" {
		return nil
	}
	return ptr
}

func hostStateDelete(key string) {
	stateDeleteObject(&key)
}

func hostEnvJSON() string {
	return *getEnv(nil)
}

func hostEnvKey(key string) *string {
	return getEnvKey(&key)
}

func hostBalance(address Address, asset Asset) int64 {
	addr := address.String()
	as := asset.String()
	balStr := *getBalance(&addr, &as)
	return parseBalance(balStr)
}

func hostDraw(amount int64, asset Asset) error {
	amt := formatAmount(amount)
	as := asset.String()
	if ret := hiveDraw(&amt, &as); ret != nil && *ret != "" {
		return errors.New(*ret)
	}
	return nil
}

func hostTransfer(to Address, amount int64, asset Asset) error {
	toaddr := to.String()
	amt := formatAmount(amount)
	as := asset.String()
	if ret := hiveTransfer(&toaddr, &amt, &as); ret != nil && *ret != "" {
		return errors.New(*ret)
	}
	return nil
}
