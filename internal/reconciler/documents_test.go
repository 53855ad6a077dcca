package reconciler

import (
	"archive/zip"
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"walletsync/internal/domain"
	"walletsync/internal/transfer"
	"walletsync/mocks"
	"walletsync/pkg/logger"
)

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

type relayFixture struct {
	marketplace *mocks.MockMarketplaceClient
	store       *mocks.MockVendorStore
	transfer    *mocks.MockTransferClient
	relay       *DocumentRelay
	remoteRoot  string
}

func newRelayFixture(t *testing.T) *relayFixture {
	t.Helper()

	f := &relayFixture{
		marketplace: mocks.NewMockMarketplaceClient(t),
		store:       mocks.NewMockVendorStore(t),
		transfer:    mocks.NewMockTransferClient(t),
		remoteRoot:  "/staging",
	}
	f.relay = NewDocumentRelay(
		f.marketplace,
		f.store,
		f.transfer,
		transfer.NewZipExtractor(),
		logger.NewNop(),
		filepath.Join(t.TempDir(), "bundle.zip"),
		t.TempDir(),
		f.remoteRoot,
		2,
	)
	return f
}

func TestTransferFiles_DeliversDocumentsPerShop(t *testing.T) {
	f := newRelayFixture(t)
	ctx := context.Background()

	bundle := buildBundle(t, map[string]string{
		"42/identity.pdf": "identity proof",
		"42/kbis.pdf":     "registration extract",
	})

	vendors := singleVendor(42, 1001, "jane@shop.example")

	f.marketplace.EXPECT().
		DownloadDocumentBundle(mock.Anything, []int64{42}).
		Return(bundle, nil).
		Once()
	f.transfer.EXPECT().
		DirectoryExists(mock.Anything, filepath.Join(f.remoteRoot, "1001")).
		Return(false, nil).
		Once()
	f.transfer.EXPECT().
		CreateDirectory(mock.Anything, filepath.Join(f.remoteRoot, "1001")).
		Return(nil).
		Once()
	f.transfer.EXPECT().
		Upload(mock.Anything, mock.Anything, mock.Anything).
		Return(true, nil).
		Twice()

	report, err := f.relay.TransferFiles(ctx, vendors, []int64{42})

	require.NoError(t, err)
	assert.False(t, report.HasErrors)
	assert.Equal(t, domain.TransferOutcomeDelivered, report.Outcomes[42])
	assert.Equal(t, 1, report.Stage.Succeeded)
}

func TestTransferFiles_ShopWithoutDocumentsIsNotAFailure(t *testing.T) {
	f := newRelayFixture(t)
	ctx := context.Background()

	bundle := buildBundle(t, map[string]string{
		"42/identity.pdf": "identity proof",
	})

	vendors := singleVendor(42, 1001, "jane@shop.example")
	vendors[43] = domain.NewVendorRecord("john@shop.example", 2002, 43)

	f.marketplace.EXPECT().
		DownloadDocumentBundle(mock.Anything, []int64{42, 43}).
		Return(bundle, nil).
		Once()
	f.transfer.EXPECT().
		DirectoryExists(mock.Anything, filepath.Join(f.remoteRoot, "1001")).
		Return(true, nil).
		Once()
	f.transfer.EXPECT().
		Upload(mock.Anything, mock.Anything, mock.Anything).
		Return(true, nil).
		Once()

	report, err := f.relay.TransferFiles(ctx, vendors, []int64{42, 43})

	require.NoError(t, err)
	assert.False(t, report.HasErrors)
	assert.Equal(t, domain.TransferOutcomeDelivered, report.Outcomes[42])
	assert.Equal(t, domain.TransferOutcomeNoDocuments, report.Outcomes[43])
	assert.Empty(t, report.Failures)
}

func TestTransferFiles_RefusedUploadIsRecorded(t *testing.T) {
	f := newRelayFixture(t)
	ctx := context.Background()

	bundle := buildBundle(t, map[string]string{
		"42/identity.pdf": "identity proof",
	})

	vendors := singleVendor(42, 1001, "jane@shop.example")

	f.marketplace.EXPECT().
		DownloadDocumentBundle(mock.Anything, []int64{42}).
		Return(bundle, nil).
		Once()
	f.transfer.EXPECT().
		DirectoryExists(mock.Anything, filepath.Join(f.remoteRoot, "1001")).
		Return(true, nil).
		Once()
	f.transfer.EXPECT().
		Upload(mock.Anything, mock.Anything, mock.Anything).
		Return(false, nil).
		Once()

	report, err := f.relay.TransferFiles(ctx, vendors, []int64{42})

	require.NoError(t, err)
	assert.True(t, report.HasErrors)
	require.Len(t, report.Failures, 1)
	assert.Equal(t, int64(42), report.Failures[0].ShopID)
	assert.Equal(t, domain.TransferOutcomeFailed, report.Outcomes[42])
	assert.Equal(t, 1, report.Stage.Failed)
}

func TestTransferFiles_DownloadErrorFlagsReportWithoutRaising(t *testing.T) {
	f := newRelayFixture(t)
	ctx := context.Background()

	f.marketplace.EXPECT().
		DownloadDocumentBundle(mock.Anything, []int64{42}).
		Return(nil, assert.AnError).
		Once()

	report, err := f.relay.TransferFiles(ctx, singleVendor(42, 1001, "jane@shop.example"), []int64{42})

	require.NoError(t, err)
	assert.True(t, report.HasErrors)
	assert.Empty(t, report.Outcomes)
}

func TestTransferFiles_UnrequestedDirectoryIsIgnored(t *testing.T) {
	f := newRelayFixture(t)
	ctx := context.Background()

	bundle := buildBundle(t, map[string]string{
		"99/stray.pdf": "not requested",
	})

	f.marketplace.EXPECT().
		DownloadDocumentBundle(mock.Anything, []int64{42}).
		Return(bundle, nil).
		Once()

	report, err := f.relay.TransferFiles(ctx, singleVendor(42, 1001, "jane@shop.example"), []int64{42})

	require.NoError(t, err)
	assert.False(t, report.HasErrors)
	assert.NotContains(t, report.Outcomes, int64(99))
	assert.Equal(t, domain.TransferOutcomeNoDocuments, report.Outcomes[42])
}

func TestTransferFiles_UnresolvedVendorIsSkipped(t *testing.T) {
	f := newRelayFixture(t)
	ctx := context.Background()

	bundle := buildBundle(t, map[string]string{
		"42/identity.pdf": "identity proof",
	})

	f.marketplace.EXPECT().
		DownloadDocumentBundle(mock.Anything, []int64{42}).
		Return(bundle, nil).
		Once()
	f.store.EXPECT().
		FindByMarketplaceID(mock.Anything, int64(42)).
		Return(nil, domain.ErrVendorNotFound).
		Once()

	report, err := f.relay.TransferFiles(ctx, map[int64]*domain.VendorRecord{}, []int64{42})

	require.NoError(t, err)
	assert.Equal(t, 1, report.Stage.Skipped)
}

func TestTransferFiles_BundlePathMustNotBeADirectory(t *testing.T) {
	marketplace := mocks.NewMockMarketplaceClient(t)
	store := mocks.NewMockVendorStore(t)
	transferClient := mocks.NewMockTransferClient(t)

	dir := t.TempDir()
	relay := NewDocumentRelay(
		marketplace,
		store,
		transferClient,
		transfer.NewZipExtractor(),
		logger.NewNop(),
		dir,
		t.TempDir(),
		"/staging",
		1,
	)

	_, err := relay.TransferFiles(context.Background(), map[int64]*domain.VendorRecord{}, []int64{42})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "is a directory")
}

func TestTransferFiles_BundleIsRemovedAfterExtraction(t *testing.T) {
	f := newRelayFixture(t)
	ctx := context.Background()

	bundle := buildBundle(t, map[string]string{
		"42/identity.pdf": "identity proof",
	})

	f.marketplace.EXPECT().
		DownloadDocumentBundle(mock.Anything, []int64{42}).
		Return(bundle, nil).
		Once()
	f.transfer.EXPECT().
		DirectoryExists(mock.Anything, mock.Anything).
		Return(true, nil).
		Once()
	f.transfer.EXPECT().
		Upload(mock.Anything, mock.Anything, mock.Anything).
		Return(true, nil).
		Once()

	_, err := f.relay.TransferFiles(ctx, singleVendor(42, 1001, "jane@shop.example"), []int64{42})
	require.NoError(t, err)

	_, statErr := os.Stat(f.relay.bundlePath)
	assert.True(t, os.IsNotExist(statErr))
}
