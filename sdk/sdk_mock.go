//go:build !wasm

package sdk

import (
	"errors"
	"strconv"
	"sync/atomic"

	"github.com/CosmWasm/tinyjson/jwriter"
	"github.com/JustinKnueppel/go-result"
)

// mockTxSeq hands out process-wide unique tx ids so env caches keyed on
// tx.id never leak between hosts in consecutive tests.
var mockTxSeq uint64

// MockHost emulates the chain host for plain-Go tests: an in-memory kv
// store, a tiny token ledger, and a scriptable environment. A failed call
// restores the pre-call snapshot, matching the host's all-or-nothing
// execution of contract operations.
type MockHost struct {
	ContractId string

	state    map[string]string
	balances map[Address]map[Asset]int64

	sender    Address
	intents   []Intent
	height    uint64
	now       int64
	txCounter uint64

	// FailTransfers makes every outbound Transfer fail, for rollback tests.
	FailTransfers bool

	Logs []string
}

func NewMockHost() *MockHost {
	return &MockHost{
		ContractId: "vscquadradao",
		state:      map[string]string{},
		balances:   map[Address]map[Asset]int64{},
		height:     100,
		now:        1_756_000_000,
	}
}

// ContractAddress is where drawn funds land on the mock ledger.
func (m *MockHost) ContractAddress() Address {
	return Address("contract:" + m.ContractId)
}

// --- test scripting -------------------------------------------------------

// Fund seeds a user balance on the mock ledger.
func (m *MockHost) Fund(addr Address, asset Asset, amount int64) {
	m.creditBalance(addr, asset, amount)
}

// SetCaller switches the identity the next calls run under.
func (m *MockHost) SetCaller(addr Address) {
	m.sender = addr
}

// AllowTransfer attaches a transfer.allow intent to the next call.
func (m *MockHost) AllowTransfer(limit string, token Asset) {
	m.intents = []Intent{{
		Type: "transfer.allow",
		Args: map[string]string{"limit": limit, "token": token.String()},
	}}
}

// ClearIntents drops any scripted intents.
func (m *MockHost) ClearIntents() {
	m.intents = nil
}

// AdvanceBlocks moves the block counter forward.
func (m *MockHost) AdvanceBlocks(n uint64) {
	m.height += n
}

// AdvanceTime moves the wall clock forward by secs.
func (m *MockHost) AdvanceTime(secs int64) {
	m.now += secs
}

// Height exposes the current mock block counter.
func (m *MockHost) Height() uint64 {
	return m.height
}

// Now exposes the current mock timestamp in unix seconds.
func (m *MockHost) Now() int64 {
	return m.now
}

// BalanceOf reads the mock ledger directly.
func (m *MockHost) BalanceOf(addr Address, asset Asset) int64 {
	return m.balances[addr][asset]
}

// StateRaw reads a raw state value for assertions, nil when missing.
func (m *MockHost) StateRaw(key string) *string {
	val, ok := m.state[key]
	if !ok {
		return nil
	}
	return &val
}

// Call runs fn as one contract operation: fresh tx id, snapshot before,
// rollback + error on revert/abort. Mirrors the atomic-per-call model the
// real host provides.
func (m *MockHost) Call(fn func() *string) (ret *string, err error) {
	m.txCounter = atomic.AddUint64(&mockTxSeq, 1)
	stateSnap, balSnap := m.snapshot()
	defer func() {
		if r := recover(); r != nil {
			rev, ok := r.(*RevertError)
			if !ok {
				panic(r)
			}
			m.restore(stateSnap, balSnap)
			ret = nil
			err = rev
		}
		m.intents = nil
	}()
	ret = fn()
	return ret, nil
}

func (m *MockHost) snapshot() (map[string]string, map[Address]map[Asset]int64) {
	stateSnap := make(map[string]string, len(m.state))
	for k, v := range m.state {
		stateSnap[k] = v
	}
	balSnap := make(map[Address]map[Asset]int64, len(m.balances))
	for addr, assets := range m.balances {
		cp := make(map[Asset]int64, len(assets))
		for a, v := range assets {
			cp[a] = v
		}
		balSnap[addr] = cp
	}
	return stateSnap, balSnap
}

func (m *MockHost) restore(stateSnap map[string]string, balSnap map[Address]map[Asset]int64) {
	m.state = stateSnap
	m.balances = balSnap
}

// --- Host implementation --------------------------------------------------

func (m *MockHost) Log(msg string) {
	m.Logs = append(m.Logs, msg)
}

func (m *MockHost) StateSet(key, value string) result.Result[struct{}] {
	m.state[key] = value
	return result.Ok(struct{}{})
}

func (m *MockHost) StateGet(key string) result.Result[string] {
	val, ok := m.state[key]
	if !ok {
		return result.Err[string](errors.New("key not found"))
	}
	return result.Ok(val)
}

func (m *MockHost) StateDelete(key string) result.Result[struct{}] {
	delete(m.state, key)
	return result.Ok(struct{}{})
}

func (m *MockHost) EnvJSON() string {
	env := Env{
		ContractId:  m.ContractId,
		TxId:        "tx-" + strconv.FormatUint(m.txCounter, 10),
		Index:       0,
		OpIndex:     0,
		BlockId:     "block-" + strconv.FormatUint(m.height, 10),
		BlockHeight: m.height,
		Timestamp:   strconv.FormatInt(m.now, 10),
		Sender: Sender{
			Address:              m.sender,
			RequiredAuths:        []Address{m.sender},
			RequiredPostingAuths: []Address{},
		},
		Caller:  Caller{Address: m.sender},
		Intents: m.intents,
	}
	w := jwriter.Writer{}
	env.MarshalTinyJSON(&w)
	data, err := w.BuildBytes()
	if err != nil {
		panic(err)
	}
	return string(data)
}

func (m *MockHost) EnvKey(key string) *string {
	var val string
	switch key {
	case "tx.id":
		val = "tx-" + strconv.FormatUint(m.txCounter, 10)
	case "block.height":
		val = strconv.FormatUint(m.height, 10)
	case "block.timestamp":
		val = strconv.FormatInt(m.now, 10)
	case "contract.id":
		val = m.ContractId
	default:
		return nil
	}
	return &val
}

func (m *MockHost) Balance(address Address, asset Asset) result.Result[int64] {
	return result.Ok(m.balances[address][asset])
}

func (m *MockHost) Draw(amount int64, asset Asset) result.Result[struct{}] {
	if amount <= 0 {
		return result.Err[struct{}](errors.New("draw amount must be positive"))
	}
	if m.balances[m.sender][asset] < amount {
		return result.Err[struct{}](errors.New("insufficient sender balance"))
	}
	m.balances[m.sender][asset] -= amount
	m.creditBalance(m.ContractAddress(), asset, amount)
	return result.Ok(struct{}{})
}

func (m *MockHost) Transfer(to Address, amount int64, asset Asset) result.Result[struct{}] {
	if m.FailTransfers {
		return result.Err[struct{}](errors.New("transfer rejected by host"))
	}
	if amount <= 0 {
		return result.Err[struct{}](errors.New("transfer amount must be positive"))
	}
	contract := m.ContractAddress()
	if m.balances[contract][asset] < amount {
		return result.Err[struct{}](errors.New("insufficient contract balance"))
	}
	m.balances[contract][asset] -= amount
	m.creditBalance(to, asset, amount)
	return result.Ok(struct{}{})
}

func (m *MockHost) creditBalance(addr Address, asset Asset, amount int64) {
	if m.balances[addr] == nil {
		m.balances[addr] = map[Asset]int64{}
	}
	m.balances[addr][asset] += amount
}
