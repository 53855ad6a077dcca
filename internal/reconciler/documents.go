package reconciler

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"sync"

	"golang.org/x/sync/errgroup"

	"walletsync/internal/domain"
	"walletsync/pkg/logger"
)

// DocumentRelay delivers each shop's document bundle to the wallet provider's
// staging storage, addressed by wallet id since the provider only knows
// accounts by wallet id.
type DocumentRelay struct {
	marketplace domain.MarketplaceClient
	store       domain.VendorStore
	transfer    domain.TransferClient
	archive     domain.ArchiveService
	logger      *logger.Logger

	bundlePath  string
	extractDir  string
	remoteRoot  string
	concurrency int
}

// TransferReport aggregates the per-vendor outcomes of one relay stage.
// HasErrors gates progression to bank-info reconciliation.
type TransferReport struct {
	HasErrors bool
	Failures  []domain.TransferFailure
	Outcomes  map[int64]domain.DocumentTransferOutcome
	Stage     domain.StageReport
}

func NewDocumentRelay(
	marketplace domain.MarketplaceClient,
	store domain.VendorStore,
	transfer domain.TransferClient,
	archive domain.ArchiveService,
	log *logger.Logger,
	bundlePath, extractDir, remoteRoot string,
	concurrency int,
) *DocumentRelay {
	if concurrency < 1 {
		concurrency = 1
	}
	return &DocumentRelay{
		marketplace: marketplace,
		store:       store,
		transfer:    transfer,
		archive:     archive,
		logger:      log,
		bundlePath:  bundlePath,
		extractDir:  extractDir,
		remoteRoot:  remoteRoot,
		concurrency: concurrency,
	}
}

// TransferFiles downloads the bundle covering shopIDs, extracts it and
// uploads each shop's documents. The returned error is reserved for
// configuration-level misuse; everything else is recorded on the report.
func (r *DocumentRelay) TransferFiles(ctx context.Context, vendors map[int64]*domain.VendorRecord, shopIDs []int64) (*TransferReport, error) {
	report := &TransferReport{
		Outcomes: make(map[int64]domain.DocumentTransferOutcome),
	}

	if info, err := os.Stat(r.bundlePath); err == nil && info.IsDir() {
		return nil, fmt.Errorf("bundle path %s is a directory", r.bundlePath)
	}

	bundle, err := r.marketplace.DownloadDocumentBundle(ctx, shopIDs)
	if err != nil {
		// Recoverable: the run is notified through HasErrors, not aborted
		// with a raised error.
		r.logger.Warn(ctx, "No documents were transferred",
			"error", err,
		)
		report.HasErrors = true
		return report, nil
	}

	if err := r.extractBundle(ctx, bundle); err != nil {
		r.logger.Warn(ctx, "Failed to extract document bundle",
			"error", err,
		)
		report.HasErrors = true
		return report, nil
	}

	requested := make(map[int64]bool, len(shopIDs))
	for _, id := range shopIDs {
		requested[id] = true
	}

	entries, err := os.ReadDir(r.extractDir)
	if err != nil {
		return nil, fmt.Errorf("reading extract dir %s: %w", r.extractDir, err)
	}

	treated := make(map[int64]bool)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		shopID, err := strconv.ParseInt(entry.Name(), 10, 64)
		if err != nil || !requested[shopID] {
			r.logger.Info(ctx, "Ignoring directory not in the requested set",
				"directory", entry.Name(),
			)
			continue
		}

		shopCtx := logger.WithShopID(ctx, shopID)

		record := r.resolveVendor(shopCtx, vendors, shopID)
		if record == nil {
			r.logger.Info(shopCtx, "Vendor unresolved, skipping documents")
			report.Stage.Skipped++
			continue
		}

		failures := r.uploadShopDocuments(shopCtx, record, filepath.Join(r.extractDir, entry.Name()))
		treated[shopID] = true

		if len(failures) > 0 {
			report.HasErrors = true
			report.Failures = append(report.Failures, failures...)
			report.Outcomes[shopID] = domain.TransferOutcomeFailed
			report.Stage.Failed++
			continue
		}

		report.Outcomes[shopID] = domain.TransferOutcomeDelivered
		report.Stage.Succeeded++
	}

	// Shops without an extracted directory simply had nothing to send.
	untreated := make([]int64, 0)
	for _, id := range shopIDs {
		if !treated[id] {
			untreated = append(untreated, id)
		}
	}
	sort.Slice(untreated, func(i, j int) bool { return untreated[i] < untreated[j] })
	for _, id := range untreated {
		if _, seen := report.Outcomes[id]; seen {
			continue
		}
		r.logger.Info(logger.WithShopID(ctx, id), "No document to transfer")
		report.Outcomes[id] = domain.TransferOutcomeNoDocuments
	}

	return report, nil
}

func (r *DocumentRelay) extractBundle(ctx context.Context, bundle []byte) error {
	if err := os.MkdirAll(filepath.Dir(r.bundlePath), 0o755); err != nil {
		return err
	}
	if err := os.WriteFile(r.bundlePath, bundle, 0o644); err != nil {
		return err
	}

	if err := r.archive.Extract(ctx, r.bundlePath, r.extractDir); err != nil {
		return err
	}

	return os.Remove(r.bundlePath)
}

// resolveVendor prefers the in-run collection and falls back to the store for
// records persisted by earlier runs.
func (r *DocumentRelay) resolveVendor(ctx context.Context, vendors map[int64]*domain.VendorRecord, shopID int64) *domain.VendorRecord {
	if record, ok := vendors[shopID]; ok {
		return record
	}

	record, err := r.store.FindByMarketplaceID(ctx, shopID)
	if err != nil {
		return nil
	}
	return record
}

// uploadShopDocuments uploads every file of one shop directory. Individual
// failures are collected, not fatal; aggregation is mutex-guarded because
// uploads fan out over a bounded group.
func (r *DocumentRelay) uploadShopDocuments(ctx context.Context, record *domain.VendorRecord, shopDir string) []domain.TransferFailure {
	remoteDir := filepath.Join(r.remoteRoot, strconv.FormatInt(record.WalletID, 10))

	exists, err := r.transfer.DirectoryExists(ctx, remoteDir)
	if err == nil && !exists {
		err = r.transfer.CreateDirectory(ctx, remoteDir)
	}
	if err != nil {
		return []domain.TransferFailure{{
			ShopID:      record.MarketplaceID,
			Source:      shopDir,
			Destination: remoteDir,
		}}
	}

	entries, err := os.ReadDir(shopDir)
	if err != nil {
		return []domain.TransferFailure{{
			ShopID:      record.MarketplaceID,
			Source:      shopDir,
			Destination: remoteDir,
		}}
	}

	var (
		mu       sync.Mutex
		failures []domain.TransferFailure
	)

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(r.concurrency)

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		source := filepath.Join(shopDir, entry.Name())
		destination := filepath.Join(remoteDir, entry.Name())

		group.Go(func() error {
			r.logger.Info(groupCtx, "Transferring document",
				"source", source,
			)

			ok, err := r.transfer.Upload(groupCtx, source, destination)
			if err != nil || !ok {
				failure := domain.TransferFailure{
					ShopID:      record.MarketplaceID,
					Source:      source,
					Destination: destination,
				}
				r.logger.Warn(groupCtx, "Document upload failed",
					"source", source,
					"destination", destination,
					"error", err,
				)
				mu.Lock()
				failures = append(failures, failure)
				mu.Unlock()
			}
			return nil
		})
	}

	_ = group.Wait()

	return failures
}
