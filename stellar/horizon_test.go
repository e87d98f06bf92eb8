package stellar

import (
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/op/go-logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/starrep/starrep/logger"
)

const testAddress = "GCEZWKCA5VLDNRLN3RPRJMRZOX3Z6G5CHCGSNFHEYVXM3XOJMDS674JZ"

func TestMain(m *testing.M) {
	dir, _ := os.MkdirTemp("", "starrep-test")
	os.Setenv("SRP_LOG_FOLDER", dir)
	logger.InitLogger(logging.DEBUG)
	code := m.Run()
	os.RemoveAll(dir)
	os.Exit(code)
}

func TestLoadAccountBalance(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/accounts/"+testAddress, r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"account_id":"` + testAddress + `","sequence":"123","balances":[
			{"balance":"7.0000000","asset_type":"credit_alphanum4","asset_code":"USDC"},
			{"balance":"250.5000000","asset_type":"native"}
		]}`))
	}))
	defer server.Close()

	c := NewClient(server.URL)
	balance, err := c.LoadAccountBalance(testAddress)
	require.NoError(t, err)
	assert.Equal(t, "250.5000000", balance)
}

func TestLoadAccountBalanceNoNativeEntry(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"account_id":"` + testAddress + `","balances":[]}`))
	}))
	defer server.Close()

	c := NewClient(server.URL)
	balance, err := c.LoadAccountBalance(testAddress)
	require.NoError(t, err)
	assert.Equal(t, "0", balance)
}

func TestLoadAccountNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"type":"https://stellar.org/horizon-errors/not_found","title":"Resource Missing","status":404}`))
	}))
	defer server.Close()

	c := NewClient(server.URL)
	_, err := c.LoadAccount(testAddress)
	assert.ErrorIs(t, err, ErrAccountNotFound)
}

func TestSubmitTransaction(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/transactions", r.URL.Path)
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "AAAA-signed-envelope", r.PostForm.Get("tx"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"hash":"deadbeef","ledger":1234}`))
	}))
	defer server.Close()

	c := NewClient(server.URL)
	hash, err := c.SubmitTransaction("AAAA-signed-envelope")
	require.NoError(t, err)
	assert.Equal(t, "deadbeef", hash)
}

func TestSubmitTransactionFailed(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/problem+json")
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"type":"https://stellar.org/horizon-errors/transaction_failed",
			"title":"Transaction Failed","status":400,
			"extras":{"result_codes":{"transaction":"tx_bad_seq"}}}`))
	}))
	defer server.Close()

	c := NewClient(server.URL)
	_, err := c.SubmitTransaction("AAAA-signed-envelope")
	require.Error(t, err)

	txErr, ok := err.(*TxError)
	require.True(t, ok)
	assert.Equal(t, "tx_bad_seq", txErr.ResultCode)
	assert.Contains(t, txErr.Error(), "tx_bad_seq")
	assert.NotNil(t, txErr.Extras["result_codes"])
}

func TestNetwork(t *testing.T) {
	c := NewClient("http://horizon.invalid/")
	assert.Equal(t, "Testnet", c.Network())
}
