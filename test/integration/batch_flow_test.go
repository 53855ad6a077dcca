package integration

import (
	"archive/zip"
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"walletsync/internal/config"
	"walletsync/internal/domain"
	"walletsync/internal/handler"
	"walletsync/internal/hooks"
	"walletsync/internal/reconciler"
	"walletsync/internal/server"
	"walletsync/internal/storage"
	"walletsync/internal/transfer"
	"walletsync/pkg/logger"
)

// marketplaceStub serves a fixed vendor listing and document bundle.
type marketplaceStub struct {
	vendors []domain.MarketplaceVendor
	bundle  []byte
}

func (m *marketplaceStub) ListVendors(ctx context.Context, since time.Time) ([]domain.MarketplaceVendor, error) {
	return m.vendors, nil
}

func (m *marketplaceStub) DownloadDocumentBundle(ctx context.Context, shopIDs []int64) ([]byte, error) {
	return m.bundle, nil
}

// walletStub keeps provider-side account and bank state in memory.
type walletStub struct {
	mu       sync.Mutex
	nextID   int64
	accounts map[string]int64
	statuses map[int64]domain.BankInfoStatus
	bank     map[int64]domain.BankInfo
}

func newWalletStub() *walletStub {
	return &walletStub{
		nextID:   100,
		accounts: make(map[string]int64),
		statuses: make(map[int64]domain.BankInfoStatus),
		bank:     make(map[int64]domain.BankInfo),
	}
}

func (w *walletStub) AccountExists(ctx context.Context, email string, criteria map[string]string) (bool, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	_, exists := w.accounts[email]
	return exists, nil
}

func (w *walletStub) CreateAccount(ctx context.Context, basic domain.AccountBasic, details domain.AccountDetails, merchant domain.MerchantData) (int64, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.nextID++
	w.accounts[basic.Email] = w.nextID
	w.statuses[w.nextID] = domain.BankInfoStatusBlank
	return w.nextID, nil
}

func (w *walletStub) LookupWalletID(ctx context.Context, email string) (int64, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	id, exists := w.accounts[email]
	if !exists {
		return 0, domain.ErrVendorNotFound
	}
	return id, nil
}

func (w *walletStub) BankInfoStatus(ctx context.Context, walletID int64) (domain.BankInfoStatus, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	status, exists := w.statuses[walletID]
	if !exists {
		return domain.BankInfoStatusBlank, nil
	}
	return status, nil
}

func (w *walletStub) BankInfoRegister(ctx context.Context, walletID int64, info domain.BankInfo) (bool, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.bank[walletID] = info
	w.statuses[walletID] = domain.BankInfoStatusPending
	return true, nil
}

func (w *walletStub) BankInfoFetch(ctx context.Context, walletID int64) (domain.BankInfo, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	info := w.bank[walletID]
	info.Source = domain.BankInfoSourceProvider
	return info, nil
}

func vendorListing() []domain.MarketplaceVendor {
	return []domain.MarketplaceVendor{
		{
			ShopID:   1,
			ShopName: "Fresh Goods",
			Currency: "EUR",
			Contact: domain.ContactInformation{
				Email:     "fresh@goods.example",
				FirstName: "Jane",
				LastName:  "Doe",
				Street:    "1 rue de la Paix",
				City:      "Paris",
				ZipCode:   "75002",
				Country:   "FR",
			},
			Pro: domain.ProDetails{
				CorporateName: "Fresh Goods SARL",
				TaxID:         "FR123456789",
			},
			Bank: &domain.BankDetails{
				IBAN:      "FR7630004000031234567890143",
				BIC:       "BNPAFRPP",
				BankName:  "BNP Paribas",
				OwnerName: "Jane Doe",
			},
		},
		{
			ShopID:   2,
			ShopName: "Old Books",
			Currency: "EUR",
			Contact: domain.ContactInformation{
				Email:     "old@books.example",
				FirstName: "John",
				LastName:  "Smith",
				Street:    "2 quai Voltaire",
				City:      "Paris",
				ZipCode:   "75007",
				Country:   "FR",
			},
			Pro: domain.ProDetails{
				CorporateName: "Old Books SAS",
				TaxID:         "FR987654321",
			},
			Bank: &domain.BankDetails{
				IBAN:      "FR7630004000039876543210987",
				BIC:       "BNPAFRPP",
				BankName:  "BNP Paribas",
				OwnerName: "John Smith",
			},
		},
	}
}

func buildBundle(t *testing.T, files map[string]string) []byte {
	t.Helper()

	var buf bytes.Buffer
	writer := zip.NewWriter(&buf)
	for name, content := range files {
		entry, err := writer.Create(name)
		require.NoError(t, err)
		_, err = entry.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())

	return buf.Bytes()
}

func setupTestServer(t *testing.T) (*httptest.Server, *walletStub, string) {
	t.Helper()

	log := logger.NewNop()
	store := storage.NewMemoryStore()
	registry := hooks.NewRegistry()

	marketplace := &marketplaceStub{
		vendors: vendorListing(),
		bundle: buildBundle(t, map[string]string{
			"1/identity.pdf": "identity proof",
			"1/kbis.pdf":     "registration extract",
			"2/identity.pdf": "identity proof",
		}),
	}
	wallet := newWalletStub()
	remoteRoot := t.TempDir()

	identity := reconciler.NewIdentitySynchronizer(store, wallet, registry, log)
	documents := reconciler.NewDocumentRelay(
		marketplace,
		store,
		transfer.NewLocalClient(),
		transfer.NewZipExtractor(),
		log,
		filepath.Join(t.TempDir(), "bundle.zip"),
		t.TempDir(),
		remoteRoot,
		2,
	)
	bank := reconciler.NewBankInfoReconciler(wallet, registry, log)

	orchestrator := reconciler.NewBatchOrchestrator(
		marketplace,
		wallet,
		store,
		store,
		identity,
		documents,
		bank,
		registry,
		log,
	)

	runHandler := handler.NewRunHandler(orchestrator, store, 24*time.Hour, log)
	healthHandler := handler.NewHealthHandler()

	cfg := &config.Config{
		Server: config.ServerConfig{
			Port: "8080",
			Host: "0.0.0.0",
		},
	}

	srv := server.New(cfg, log, runHandler, healthHandler)

	return httptest.NewServer(srv.Handler()), wallet, remoteRoot
}

func triggerRun(t *testing.T, url string) string {
	t.Helper()

	resp, err := http.Post(url+"/runs", "application/json", nil)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusAccepted, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.NotEmpty(t, body["run_id"])

	return body["run_id"]
}

func waitForRun(t *testing.T, url, runID string) map[string]interface{} {
	t.Helper()

	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		resp, err := http.Get(url + "/runs/" + runID)
		require.NoError(t, err)

		var report map[string]interface{}
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&report))
		resp.Body.Close()

		if report["status"] != string(domain.RunStatusRunning) {
			return report
		}
		time.Sleep(50 * time.Millisecond)
	}

	t.Fatal("run did not finish in time")
	return nil
}

func TestBatchFlow(t *testing.T) {
	srv, wallet, remoteRoot := setupTestServer(t)
	defer srv.Close()

	runID := triggerRun(t, srv.URL)
	report := waitForRun(t, srv.URL, runID)

	assert.Equal(t, string(domain.RunStatusCompleted), report["status"])

	identity := report["identity"].(map[string]interface{})
	assert.Equal(t, float64(2), identity["succeeded"])
	assert.Equal(t, float64(0), identity["failed"])

	bankInfo := report["bank_info"].(map[string]interface{})
	assert.Equal(t, float64(2), bankInfo["succeeded"])

	// Both wallets were created and their bank info registered.
	wallet.mu.Lock()
	assert.Len(t, wallet.accounts, 2)
	assert.Len(t, wallet.bank, 2)
	wallet.mu.Unlock()

	// Documents landed under the wallet-id staging directories.
	firstWallet, err := wallet.LookupWalletID(context.Background(), "fresh@goods.example")
	require.NoError(t, err)
	entries, err := os.ReadDir(filepath.Join(remoteRoot, strconv.FormatInt(firstWallet, 10)))
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}

func TestBatchFlow_SecondRunIsIdempotent(t *testing.T) {
	srv, wallet, _ := setupTestServer(t)
	defer srv.Close()

	first := triggerRun(t, srv.URL)
	waitForRun(t, srv.URL, first)

	second := triggerRun(t, srv.URL)
	report := waitForRun(t, srv.URL, second)

	assert.Equal(t, string(domain.RunStatusCompleted), report["status"])

	// Re-running never creates duplicate wallets.
	wallet.mu.Lock()
	assert.Len(t, wallet.accounts, 2)
	wallet.mu.Unlock()

	// Registered bank info is PENDING on the second pass, left untouched.
	bankInfo := report["bank_info"].(map[string]interface{})
	assert.Equal(t, float64(2), bankInfo["skipped"])
}

func TestGetRun_UnknownIDReturnsNotFound(t *testing.T) {
	srv, _, _ := setupTestServer(t)
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/runs/does-not-exist")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestHealthCheck(t *testing.T) {
	srv, _, _ := setupTestServer(t)
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/health")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var result map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))

	assert.Equal(t, "ok", result["status"])
	assert.NotEmpty(t, result["timestamp"])
}
