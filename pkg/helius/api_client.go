package helius

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// Client represents a Helius API client
type Client struct {
	apiKey     string
	rpcURL     string
	httpClient *http.Client
}

// NewClient creates a new Helius API client
func NewClient(apiKey string) *Client {
	return &Client{
		apiKey: apiKey,
		rpcURL: "https://mainnet.helius-rpc.com",
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
			Transport: &http.Transport{
				IdleConnTimeout:       10 * time.Second,
				TLSHandshakeTimeout:   10 * time.Second,
				ResponseHeaderTimeout: 10 * time.Second,
				ExpectContinueTimeout: 1 * time.Second,
			},
		},
	}
}

// AssetContent holds the off-chain metadata resolved by the DAS API
type AssetContent struct {
	JsonURI  string `json:"json_uri"`
	Metadata struct {
		Name        string `json:"name"`
		Symbol      string `json:"symbol"`
		Description string `json:"description"`
	} `json:"metadata"`
}

// AssetOwnership holds the current owner of an asset
type AssetOwnership struct {
	Owner     string `json:"owner"`
	Frozen    bool   `json:"frozen"`
	Delegated bool   `json:"delegated"`
}

// AssetRoyalty holds the royalty settings registered for an asset
type AssetRoyalty struct {
	BasisPoints int  `json:"basis_points"`
	Locked      bool `json:"locked"`
}

// AssetCreator is one creator entry of an asset
type AssetCreator struct {
	Address  string `json:"address"`
	Share    int    `json:"share"`
	Verified bool   `json:"verified"`
}

// Asset represents a DAS asset as returned by getAsset
type Asset struct {
	ID        string         `json:"id"`
	Interface string         `json:"interface"`
	Content   AssetContent   `json:"content"`
	Ownership AssetOwnership `json:"ownership"`
	Royalty   AssetRoyalty   `json:"royalty"`
	Creators  []AssetCreator `json:"creators"`
	Burnt     bool           `json:"burnt"`
}

// getAssetResponse represents the JSON-RPC response for getAsset
type getAssetResponse struct {
	JsonRPC string `json:"jsonrpc"`
	ID      string `json:"id"`
	Result  *Asset `json:"result"`
	Error   *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// GetAsset retrieves a minted NFT's indexed state by its mint address
func (c *Client) GetAsset(mint string) (*Asset, error) {
	payload := map[string]interface{}{
		"jsonrpc": "2.0",
		"id":      "1",
		"method":  "getAsset",
		"params":  map[string]string{"id": mint},
	}

	var resp getAssetResponse
	if err := c.rpcCall(payload, &resp); err != nil {
		return nil, err
	}
	if resp.Error != nil {
		return nil, fmt.Errorf("getAsset failed: %s", resp.Error.Message)
	}
	if resp.Result == nil {
		return nil, fmt.Errorf("asset not found: %s", mint)
	}
	return resp.Result, nil
}

// TokenSupplyValue represents the token supply information
type TokenSupplyValue struct {
	Amount         string  `json:"amount"`
	Decimals       int     `json:"decimals"`
	UiAmount       float64 `json:"uiAmount"`
	UiAmountString string  `json:"uiAmountString"`
}

// tokenSupplyResponse represents the JSON-RPC response for getTokenSupply
type tokenSupplyResponse struct {
	JsonRPC string `json:"jsonrpc"`
	ID      string `json:"id"`
	Result  struct {
		Context struct {
			Slot uint64 `json:"slot"`
		} `json:"context"`
		Value TokenSupplyValue `json:"value"`
	} `json:"result"`
}

// GetTokenSupply retrieves the current supply of a SPL Token
func (c *Client) GetTokenSupply(mint string) (*TokenSupplyValue, error) {
	payload := map[string]interface{}{
		"jsonrpc": "2.0",
		"id":      "1",
		"method":  "getTokenSupply",
		"params":  []string{mint},
	}

	var resp tokenSupplyResponse
	if err := c.rpcCall(payload, &resp); err != nil {
		return nil, err
	}
	return &resp.Result.Value, nil
}

func (c *Client) rpcCall(payload interface{}, out interface{}) error {
	jsonData, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal request payload: %w", err)
	}

	rpcURLWithKey := fmt.Sprintf("%s/?api-key=%s", c.rpcURL, c.apiKey)
	req, err := http.NewRequest("POST", rpcURLWithKey, bytes.NewBuffer(jsonData))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("API request failed with status code: %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
