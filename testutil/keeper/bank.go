package keeper

import (
	"context"
	"fmt"
	"sync"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"
)

// MockBankKeeper is a map-backed bank keeper for keeper tests. It tracks
// per-account balances and per-denom supply and enforces the same
// no-overdraft rule as the real bank module.
type MockBankKeeper struct {
	mu       sync.Mutex
	balances map[string]sdk.Coins // bech32 address -> balance
	supply   map[string]math.Int  // denom -> total supply
}

// NewMockBankKeeper creates an empty mock bank keeper
func NewMockBankKeeper() *MockBankKeeper {
	return &MockBankKeeper{
		balances: make(map[string]sdk.Coins),
		supply:   make(map[string]math.Int),
	}
}

// FundAccount credits an account out of thin air, adjusting supply. Test
// setup only.
func (m *MockBankKeeper) FundAccount(addr sdk.AccAddress, coins sdk.Coins) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.credit(addr.String(), coins)
	for _, c := range coins {
		m.addSupply(c.Denom, c.Amount)
	}
}

// FundModule credits a module account by name. Test setup only.
func (m *MockBankKeeper) FundModule(moduleName string, coins sdk.Coins) {
	m.FundAccount(authtypes.NewModuleAddress(moduleName), coins)
}

// SendCoinsFromAccountToModule moves coins from an account to a module account
func (m *MockBankKeeper) SendCoinsFromAccountToModule(_ context.Context, senderAddr sdk.AccAddress, recipientModule string, amt sdk.Coins) error {
	return m.send(senderAddr.String(), authtypes.NewModuleAddress(recipientModule).String(), amt)
}

// SendCoinsFromModuleToAccount moves coins from a module account to an account
func (m *MockBankKeeper) SendCoinsFromModuleToAccount(_ context.Context, senderModule string, recipientAddr sdk.AccAddress, amt sdk.Coins) error {
	return m.send(authtypes.NewModuleAddress(senderModule).String(), recipientAddr.String(), amt)
}

// MintCoins creates coins in a module account and grows supply
func (m *MockBankKeeper) MintCoins(_ context.Context, moduleName string, amt sdk.Coins) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.credit(authtypes.NewModuleAddress(moduleName).String(), amt)
	for _, c := range amt {
		m.addSupply(c.Denom, c.Amount)
	}
	return nil
}

// BurnCoins destroys coins held by a module account and shrinks supply
func (m *MockBankKeeper) BurnCoins(_ context.Context, moduleName string, amt sdk.Coins) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	addr := authtypes.NewModuleAddress(moduleName).String()
	if err := m.debit(addr, amt); err != nil {
		return err
	}
	for _, c := range amt {
		m.addSupply(c.Denom, c.Amount.Neg())
	}
	return nil
}

// GetBalance returns the balance of a single denom for an address
func (m *MockBankKeeper) GetBalance(_ context.Context, addr sdk.AccAddress, denom string) sdk.Coin {
	m.mu.Lock()
	defer m.mu.Unlock()

	amt := m.balances[addr.String()].AmountOf(denom)
	return sdk.NewCoin(denom, amt)
}

// GetSupply returns the total supply of a single denom
func (m *MockBankKeeper) GetSupply(_ context.Context, denom string) sdk.Coin {
	m.mu.Lock()
	defer m.mu.Unlock()

	amt, ok := m.supply[denom]
	if !ok {
		amt = math.ZeroInt()
	}
	return sdk.NewCoin(denom, amt)
}

func (m *MockBankKeeper) send(from, to string, amt sdk.Coins) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.debit(from, amt); err != nil {
		return err
	}
	m.credit(to, amt)
	return nil
}

func (m *MockBankKeeper) credit(addr string, amt sdk.Coins) {
	m.balances[addr] = m.balances[addr].Add(amt...)
}

func (m *MockBankKeeper) debit(addr string, amt sdk.Coins) error {
	have := m.balances[addr]
	if !have.IsAllGTE(amt) {
		return fmt.Errorf("insufficient funds: %s has %s, needs %s", addr, have, amt)
	}
	m.balances[addr] = have.Sub(amt...)
	return nil
}

func (m *MockBankKeeper) addSupply(denom string, delta math.Int) {
	cur, ok := m.supply[denom]
	if !ok {
		cur = math.ZeroInt()
	}
	m.supply[denom] = cur.Add(delta)
}
