package http

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/junctionlabs/junction-backend/internal/chainaddr"
	"github.com/junctionlabs/junction-backend/internal/controller"
	"github.com/junctionlabs/junction-backend/internal/ledger"
	"github.com/junctionlabs/junction-backend/internal/store"
	"github.com/junctionlabs/junction-backend/internal/swapengine"
	"github.com/junctionlabs/junction-backend/internal/testutil"
	"github.com/junctionlabs/junction-backend/internal/utils/config"
)

func newTestServer(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := testutil.NewTestDB(t)
	s := store.New()
	log := testutil.NewTestLogger()
	appConfig := &config.AppConfig{
		ApiServer: config.ApiServerConfig{AllowedOrigins: "http://localhost:3000"},
		Bitcoin:   config.BitcoinConfig{Network: "testnet"},
		Swap: config.SwapConfig{
			MasterDerivationSeed: []byte("0123456789abcdef0123456789abcdef"),
		},
	}

	l := ledger.New(s.Balance, log)
	engine := swapengine.New(db, s, l, log)
	registry, err := chainaddr.New(db, s.ChainAddress, appConfig, log)
	require.NoError(t, err)
	ctrl := controller.New(db, s, l, engine, registry, nil, log, appConfig)

	return NewHttpServer(appConfig, log, ctrl, db, prometheus.NewRegistry())
}

func doJSON(t *testing.T, r *gin.Engine, method, path, principal string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if principal != "" {
		req.Header.Set("X-Principal-ID", principal)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeData(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var envelope struct {
		Data    map[string]any `json:"data"`
		Error   string         `json:"error"`
		Message string         `json:"message"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	return envelope.Data
}

func TestHealthz(t *testing.T) {
	r := newTestServer(t)

	w := doJSON(t, r, http.MethodGet, "/healthz", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestMetricsEndpoint(t *testing.T) {
	r := newTestServer(t)

	w := doJSON(t, r, http.MethodGet, "/metrics", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestPrincipalRequired(t *testing.T) {
	r := newTestServer(t)

	body := gin.H{"symbol": "ICP", "amount": 100, "chain": "ICP"}

	w := doJSON(t, r, http.MethodPost, "/api/v1/assets/deposit", "", body)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// the anonymous principal is rejected the same way
	w = doJSON(t, r, http.MethodPost, "/api/v1/assets/deposit", "2vxsx-fae", body)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestDepositAndBalances(t *testing.T) {
	r := newTestServer(t)

	w := doJSON(t, r, http.MethodPost, "/api/v1/assets/deposit", "alice",
		gin.H{"symbol": "ICP", "amount": 750, "chain": "ICP"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = doJSON(t, r, http.MethodGet, "/api/v1/assets/balances/ICP", "alice", nil)
	require.Equal(t, http.StatusOK, w.Code)
	data := decodeData(t, w)
	assert.Equal(t, float64(750), data["amount"])

	// balances are scoped to the caller's principal
	w = doJSON(t, r, http.MethodGet, "/api/v1/assets/balances/ICP", "bob", nil)
	require.Equal(t, http.StatusOK, w.Code)
	data = decodeData(t, w)
	assert.Equal(t, float64(0), data["amount"])
}

func TestDepositRejectsUnknownChain(t *testing.T) {
	r := newTestServer(t)

	w := doJSON(t, r, http.MethodPost, "/api/v1/assets/deposit", "alice",
		gin.H{"symbol": "ICP", "amount": 100, "chain": "Dogecoin"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDepositRejectsMalformedBody(t *testing.T) {
	r := newTestServer(t)

	w := doJSON(t, r, http.MethodPost, "/api/v1/assets/deposit", "alice",
		gin.H{"symbol": "ICP"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSwapLifecycleOverHTTP(t *testing.T) {
	r := newTestServer(t)

	w := doJSON(t, r, http.MethodPost, "/api/v1/assets/deposit", "alice",
		gin.H{"symbol": "ICP", "amount": 1000, "chain": "ICP"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	w = doJSON(t, r, http.MethodPost, "/api/v1/assets/deposit", "bob",
		gin.H{"symbol": "BTC", "amount": 2000, "chain": "Bitcoin"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = doJSON(t, r, http.MethodPost, "/api/v1/swaps", "alice", gin.H{
		"from_symbol": "ICP", "from_amount": 1000,
		"to_symbol": "BTC", "to_chain": "Bitcoin",
		"duration_seconds": 3600,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	idA := decodeData(t, w)["swap_id"].(float64)

	w = doJSON(t, r, http.MethodPost, "/api/v1/swaps", "bob", gin.H{
		"from_symbol": "BTC", "from_amount": 2000,
		"to_symbol": "ICP", "to_chain": "ICP",
		"duration_seconds": 3600,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	idB := decodeData(t, w)["swap_id"].(float64)

	// pending list is public, no principal needed
	w = doJSON(t, r, http.MethodGet, "/api/v1/swaps/pending", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodGet, fmt.Sprintf("/api/v1/swaps/%.0f", idA), "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "alice", decodeData(t, w)["user"])

	w = doJSON(t, r, http.MethodPost, "/api/v1/swaps/execute", "alice",
		gin.H{"id_a": idA, "id_b": idB})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = doJSON(t, r, http.MethodGet, "/api/v1/assets/balances/BTC", "alice", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(2000), decodeData(t, w)["amount"])
}

func TestExecuteSwapErrorStatuses(t *testing.T) {
	r := newTestServer(t)

	w := doJSON(t, r, http.MethodPost, "/api/v1/assets/deposit", "alice",
		gin.H{"symbol": "ICP", "amount": 100, "chain": "ICP"})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodPost, "/api/v1/swaps", "alice", gin.H{
		"from_symbol": "ICP", "from_amount": 100,
		"to_symbol": "BTC", "to_chain": "Bitcoin",
		"duration_seconds": 3600,
	})
	require.Equal(t, http.StatusOK, w.Code)
	id := decodeData(t, w)["swap_id"].(float64)

	// same id twice
	w = doJSON(t, r, http.MethodPost, "/api/v1/swaps/execute", "alice",
		gin.H{"id_a": id, "id_b": id})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// unknown counterpart
	w = doJSON(t, r, http.MethodPost, "/api/v1/swaps/execute", "alice",
		gin.H{"id_a": id, "id_b": id + 999})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetSwapRequestNotFound(t *testing.T) {
	r := newTestServer(t)

	w := doJSON(t, r, http.MethodGet, "/api/v1/swaps/12345", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/v1/swaps/not-a-number", "", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetDepositAddress(t *testing.T) {
	r := newTestServer(t)

	w := doJSON(t, r, http.MethodGet, "/api/v1/addresses/Bitcoin", "alice", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	first := decodeData(t, w)["address"].(string)
	assert.NotEmpty(t, first)

	// stable across calls
	w = doJSON(t, r, http.MethodGet, "/api/v1/addresses/Bitcoin", "alice", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, first, decodeData(t, w)["address"])

	w = doJSON(t, r, http.MethodGet, "/api/v1/addresses/Dogecoin", "alice", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestWithdrawOverHTTP(t *testing.T) {
	r := newTestServer(t)

	w := doJSON(t, r, http.MethodPost, "/api/v1/assets/deposit", "alice",
		gin.H{"symbol": "ICP", "amount": 1000, "chain": "ICP"})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/v1/addresses/ICP", "alice", nil)
	require.Equal(t, http.StatusOK, w.Code)
	address := decodeData(t, w)["address"].(string)

	w = doJSON(t, r, http.MethodPost, "/api/v1/assets/withdraw", "alice", gin.H{
		"symbol": "ICP", "amount": 400,
		"target_chain": "ICP", "target_address": address,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "pending", decodeData(t, w)["status"])

	w = doJSON(t, r, http.MethodGet, "/api/v1/assets/balances/ICP", "alice", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(600), decodeData(t, w)["amount"])

	// malformed target address is rejected before any debit
	w = doJSON(t, r, http.MethodPost, "/api/v1/assets/withdraw", "alice", gin.H{
		"symbol": "ICP", "amount": 100,
		"target_chain": "ICP", "target_address": "nonsense",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
