// Package stellar is a minimal client for the Stellar Horizon REST API. It
// covers the two calls the server needs: reading an account's native balance
// and relaying an already-signed transaction envelope.
package stellar

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/starrep/starrep/logger"
)

// ErrAccountNotFound is returned when Horizon does not know the account,
// which for testnet usually means it was never funded.
var ErrAccountNotFound = errors.New("account not found on horizon")

// TxError is a failed transaction submission. ResultCode carries the
// transaction-level result code Horizon reported (e.g. tx_bad_seq) and
// Extras the raw extras object for the client to inspect.
type TxError struct {
	ResultCode string
	Extras     map[string]any
}

func (e *TxError) Error() string {
	if e.ResultCode == "" {
		return "transaction submission failed"
	}
	return "transaction submission failed: " + e.ResultCode
}

// Account is the subset of Horizon's account resource the server reads.
type Account struct {
	AccountID string    `json:"account_id"`
	Sequence  string    `json:"sequence"`
	Balances  []Balance `json:"balances"`
}

// Balance is one entry of an account's balances array.
type Balance struct {
	Balance   string `json:"balance"`
	AssetType string `json:"asset_type"`
	AssetCode string `json:"asset_code"`
}

type submitResponse struct {
	Hash   string `json:"hash"`
	Ledger int64  `json:"ledger"`
}

type problemResponse struct {
	Type   string         `json:"type"`
	Title  string         `json:"title"`
	Status int            `json:"status"`
	Extras map[string]any `json:"extras"`
}

// Client talks to a single Horizon instance.
type Client struct {
	baseURL    string
	network    string
	httpClient *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		network: "Testnet",
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// Network returns the human-readable network name reported alongside
// balances.
func (c *Client) Network() string {
	return c.network
}

// LoadAccount fetches the account resource for the given address.
func (c *Client) LoadAccount(address string) (*Account, error) {
	resp, err := c.httpClient.Get(c.baseURL + "/accounts/" + url.PathEscape(address))
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, ErrAccountNotFound
	}
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("horizon account lookup failed: %s: %s", resp.Status, string(body))
	}

	account := &Account{}
	if err := json.NewDecoder(resp.Body).Decode(account); err != nil {
		return nil, err
	}
	return account, nil
}

// LoadAccountBalance returns the account's native (XLM) balance. Accounts
// without a native entry report "0".
func (c *Client) LoadAccountBalance(address string) (string, error) {
	account, err := c.LoadAccount(address)
	if err != nil {
		return "", err
	}
	for _, b := range account.Balances {
		if b.AssetType == "native" {
			return b.Balance, nil
		}
	}
	return "0", nil
}

// SubmitTransaction relays a base64 signed transaction envelope (XDR) to
// Horizon and returns the transaction hash. The envelope is forwarded
// untouched; signing and validation happened on the client side.
func (c *Client) SubmitTransaction(signedXdr string) (string, error) {
	form := url.Values{}
	form.Set("tx", signedXdr)

	resp, err := c.httpClient.PostForm(c.baseURL+"/transactions", form)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", err
	}

	if resp.StatusCode == http.StatusOK {
		var result submitResponse
		if err := json.Unmarshal(body, &result); err != nil {
			return "", err
		}
		return result.Hash, nil
	}

	var problem problemResponse
	if err := json.Unmarshal(body, &problem); err != nil {
		logger.Debugf("unparseable horizon error (%s): %s", resp.Status, string(body))
		return "", fmt.Errorf("horizon submission failed: %s", resp.Status)
	}
	return "", &TxError{
		ResultCode: transactionResultCode(problem.Extras),
		Extras:     problem.Extras,
	}
}

// transactionResultCode digs extras.result_codes.transaction out of a
// Horizon problem response.
func transactionResultCode(extras map[string]any) string {
	codes, ok := extras["result_codes"].(map[string]any)
	if !ok {
		return ""
	}
	code, _ := codes["transaction"].(string)
	return code
}
