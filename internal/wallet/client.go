// Package wallet implements the REST client for the payment-wallet provider:
// account creation and the bank-info status, register and fetch calls.
package wallet

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"walletsync/internal/config"
	"walletsync/internal/domain"
	"walletsync/pkg/retry"
)

type Client struct {
	baseURL    string
	login      string
	password   string
	httpClient *http.Client
	maxRetries int
}

func NewClient(cfg config.WalletConfig) *Client {
	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		login:      cfg.Login,
		password:   cfg.Password,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		maxRetries: cfg.MaxRetries,
	}
}

// AccountExists checks the provider for an account registered on email. The
// provider reports availability, so an unavailable email means the account
// exists. Extra criteria supplied by hooks are passed as query parameters.
func (c *Client) AccountExists(ctx context.Context, email string, criteria map[string]string) (bool, error) {
	query := url.Values{}
	query.Set("email", email)
	for key, value := range criteria {
		query.Set(key, value)
	}

	var response struct {
		IsAvailable bool `json:"is_available"`
	}
	err := c.do(ctx, http.MethodGet, "/v2/accounts/available?"+query.Encode(), nil, &response)
	if err != nil {
		return false, err
	}

	return !response.IsAvailable, nil
}

func (c *Client) CreateAccount(ctx context.Context, basic domain.AccountBasic, details domain.AccountDetails, merchant domain.MerchantData) (int64, error) {
	request := struct {
		Basic    domain.AccountBasic   `json:"account_basic"`
		Details  domain.AccountDetails `json:"account_details"`
		Merchant domain.MerchantData   `json:"merchant_data"`
	}{basic, details, merchant}

	var response struct {
		AccountID int64 `json:"account_id"`
	}
	if err := c.do(ctx, http.MethodPost, "/v2/accounts", request, &response); err != nil {
		return 0, err
	}

	return response.AccountID, nil
}

func (c *Client) LookupWalletID(ctx context.Context, email string) (int64, error) {
	var response struct {
		AccountID int64 `json:"account_id"`
	}
	err := c.do(ctx, http.MethodGet, "/v2/accounts/id?email="+url.QueryEscape(email), nil, &response)
	if err != nil {
		return 0, err
	}

	return response.AccountID, nil
}

func (c *Client) BankInfoStatus(ctx context.Context, walletID int64) (domain.BankInfoStatus, error) {
	var response struct {
		Status string `json:"status"`
	}
	err := c.do(ctx, http.MethodGet, fmt.Sprintf("/v2/accounts/%d/bank-info/status", walletID), nil, &response)
	if err != nil {
		return domain.BankInfoStatusUnknown, err
	}

	return domain.ParseBankInfoStatus(response.Status), nil
}

func (c *Client) BankInfoRegister(ctx context.Context, walletID int64, info domain.BankInfo) (bool, error) {
	var response struct {
		Registered bool `json:"registered"`
	}
	err := c.do(ctx, http.MethodPost, fmt.Sprintf("/v2/accounts/%d/bank-info", walletID), info, &response)
	if err != nil {
		return false, err
	}

	return response.Registered, nil
}

func (c *Client) BankInfoFetch(ctx context.Context, walletID int64) (domain.BankInfo, error) {
	var info domain.BankInfo
	err := c.do(ctx, http.MethodGet, fmt.Sprintf("/v2/accounts/%d/bank-info", walletID), nil, &info)
	if err != nil {
		return domain.BankInfo{}, err
	}

	info.Source = domain.BankInfoSourceProvider
	return info, nil
}

func (c *Client) do(ctx context.Context, method, path string, in, out interface{}) error {
	var payload []byte
	if in != nil {
		encoded, err := json.Marshal(in)
		if err != nil {
			return err
		}
		payload = encoded
	}

	return retry.Do(ctx, func() error {
		var body io.Reader
		if payload != nil {
			body = bytes.NewReader(payload)
		}

		req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
		if err != nil {
			return err
		}
		req.SetBasicAuth(c.login, c.password)
		req.Header.Set("Accept", "application/json")
		if payload != nil {
			req.Header.Set("Content-Type", "application/json")
		}

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return err
		}
		defer resp.Body.Close()

		if resp.StatusCode < 200 || resp.StatusCode > 299 {
			return fmt.Errorf("wallet provider returned status %d", resp.StatusCode)
		}

		if out == nil {
			return nil
		}
		return json.NewDecoder(resp.Body).Decode(out)
	}, retry.WithMaxAttempts(c.maxRetries))
}
