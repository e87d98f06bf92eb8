package service

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/starrep/starrep/database"
	"github.com/starrep/starrep/stellar"
)

const testAddress = "GCEZWKCA5VLDNRLN3RPRJMRZOX3Z6G5CHCGSNFHEYVXM3XOJMDS674JZ"

func newTestWalletService(horizonURL string) *WalletService {
	return &WalletService{
		DB:      database.GetDB(),
		Horizon: stellar.NewClient(horizonURL),
	}
}

func TestConnectWallet(t *testing.T) {
	setup(t)
	userId := registerTestUser(t, "alice@x.com")
	s := newTestWalletService("http://horizon.invalid")

	address, err := s.Connect(userId, testAddress)
	require.NoError(t, err)
	assert.Equal(t, testAddress, address)

	linked, err := s.Status(userId)
	require.NoError(t, err)
	require.NotNil(t, linked)
	assert.Equal(t, testAddress, *linked)
}

func TestConnectWalletIdempotent(t *testing.T) {
	setup(t)
	userId := registerTestUser(t, "bob@x.com")
	s := newTestWalletService("http://horizon.invalid")

	_, err := s.Connect(userId, testAddress)
	require.NoError(t, err)

	// Re-linking the same address to the same owner succeeds.
	address, err := s.Connect(userId, testAddress)
	require.NoError(t, err)
	assert.Equal(t, testAddress, address)
}

func TestConnectWalletAlreadyLinked(t *testing.T) {
	setup(t)
	ownerId := registerTestUser(t, "carol@x.com")
	otherId := registerTestUser(t, "dave@x.com")
	s := newTestWalletService("http://horizon.invalid")

	_, err := s.Connect(ownerId, testAddress)
	require.NoError(t, err)

	_, err = s.Connect(otherId, testAddress)
	assert.ErrorIs(t, err, ErrAddressAlreadyLinked)

	// The rejected caller remains unlinked.
	linked, err := s.Status(otherId)
	require.NoError(t, err)
	assert.Nil(t, linked)
}

func TestStatusUnlinked(t *testing.T) {
	setup(t)
	userId := registerTestUser(t, "eve@x.com")
	s := newTestWalletService("http://horizon.invalid")

	linked, err := s.Status(userId)
	require.NoError(t, err)
	assert.Nil(t, linked)
}

func TestBalanceNotConnected(t *testing.T) {
	setup(t)
	userId := registerTestUser(t, "frank@x.com")
	s := newTestWalletService("http://horizon.invalid")

	_, err := s.Balance(userId)
	assert.ErrorIs(t, err, ErrNotConnected)
}

func TestBalance(t *testing.T) {
	setup(t)
	userId := registerTestUser(t, "grace@x.com")

	horizon := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/accounts/"+testAddress, r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"account_id":"` + testAddress + `","balances":[
			{"balance":"12.5000000","asset_type":"credit_alphanum4","asset_code":"USDC"},
			{"balance":"100.0000000","asset_type":"native"}
		]}`))
	}))
	defer horizon.Close()

	s := newTestWalletService(horizon.URL)
	_, err := s.Connect(userId, testAddress)
	require.NoError(t, err)

	balance, err := s.Balance(userId)
	require.NoError(t, err)
	assert.Equal(t, "100.0000000", balance)
}

func TestBalanceUnfundedAccount(t *testing.T) {
	setup(t)
	userId := registerTestUser(t, "heidi@x.com")

	horizon := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"type":"https://stellar.org/horizon-errors/not_found","title":"Resource Missing","status":404}`))
	}))
	defer horizon.Close()

	s := newTestWalletService(horizon.URL)
	_, err := s.Connect(userId, testAddress)
	require.NoError(t, err)

	balance, err := s.Balance(userId)
	require.NoError(t, err)
	assert.Equal(t, "0", balance)
}
