package helius

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testClient points a Client at a stub JSON-RPC server.
func testClient(srv *httptest.Server) *Client {
	return &Client{
		apiKey:     "test-key",
		rpcURL:     srv.URL,
		httpClient: srv.Client(),
	}
}

func rpcStub(t *testing.T, handler func(method string, params json.RawMessage) interface{}) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Method string          `json:"method"`
			Params json.RawMessage `json:"params"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.NoError(t, json.NewEncoder(w).Encode(handler(req.Method, req.Params)))
	}))
}

func TestGetAsset(t *testing.T) {
	t.Run("Resolves Minted Asset", func(t *testing.T) {
		srv := rpcStub(t, func(method string, _ json.RawMessage) interface{} {
			assert.Equal(t, "getAsset", method)
			return map[string]interface{}{
				"jsonrpc": "2.0",
				"id":      "1",
				"result": map[string]interface{}{
					"id":        "MintAddr111",
					"interface": "V1_NFT",
					"ownership": map[string]interface{}{"owner": "Owner111"},
					"royalty":   map[string]interface{}{"basis_points": 500},
				},
			}
		})
		defer srv.Close()

		asset, err := testClient(srv).GetAsset("MintAddr111")
		require.NoError(t, err)
		assert.Equal(t, "MintAddr111", asset.ID)
		assert.Equal(t, "Owner111", asset.Ownership.Owner)
		assert.Equal(t, 500, asset.Royalty.BasisPoints)
	})

	t.Run("RPC Error", func(t *testing.T) {
		srv := rpcStub(t, func(string, json.RawMessage) interface{} {
			return map[string]interface{}{
				"jsonrpc": "2.0",
				"id":      "1",
				"error":   map[string]interface{}{"code": -32602, "message": "Asset not found"},
			}
		})
		defer srv.Close()

		_, err := testClient(srv).GetAsset("Missing111")
		assert.ErrorContains(t, err, "Asset not found")
	})

	t.Run("Missing Result", func(t *testing.T) {
		srv := rpcStub(t, func(string, json.RawMessage) interface{} {
			return map[string]interface{}{"jsonrpc": "2.0", "id": "1"}
		})
		defer srv.Close()

		_, err := testClient(srv).GetAsset("Missing111")
		assert.ErrorContains(t, err, "asset not found")
	})
}

func TestGetTokenSupply(t *testing.T) {
	t.Run("Single Supply Mint", func(t *testing.T) {
		srv := rpcStub(t, func(method string, params json.RawMessage) interface{} {
			assert.Equal(t, "getTokenSupply", method)

			var mints []string
			require.NoError(t, json.Unmarshal(params, &mints))
			require.Equal(t, []string{"MintAddr111"}, mints)

			return map[string]interface{}{
				"jsonrpc": "2.0",
				"id":      "1",
				"result": map[string]interface{}{
					"context": map[string]interface{}{"slot": 12345},
					"value": map[string]interface{}{
						"amount":         "1",
						"decimals":       0,
						"uiAmount":       1.0,
						"uiAmountString": "1",
					},
				},
			}
		})
		defer srv.Close()

		supply, err := testClient(srv).GetTokenSupply("MintAddr111")
		require.NoError(t, err)
		assert.Equal(t, "1", supply.Amount)
		assert.Equal(t, 0, supply.Decimals)
	})

	t.Run("Upstream Failure", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer srv.Close()

		_, err := testClient(srv).GetTokenSupply("MintAddr111")
		assert.ErrorContains(t, err, "status code")
	})
}
