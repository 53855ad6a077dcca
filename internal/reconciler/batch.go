package reconciler

import (
	"context"
	"errors"
	"fmt"
	stdsync "sync"
	"time"

	"walletsync/internal/domain"
	"walletsync/internal/hooks"
	"walletsync/pkg/logger"
)

// BatchOrchestrator sequences the identity, document and bank-info stages
// into one re-runnable batch. A run reports and returns; it never lets an
// escaping error crash the host process.
type BatchOrchestrator struct {
	marketplace domain.MarketplaceClient
	wallet      domain.WalletClient
	store       domain.VendorStore
	runs        domain.RunStore
	identity    *IdentitySynchronizer
	documents   *DocumentRelay
	bank        *BankInfoReconciler
	hooks       *hooks.Registry
	logger      *logger.Logger

	mu stdsync.Mutex
}

func NewBatchOrchestrator(
	marketplace domain.MarketplaceClient,
	wallet domain.WalletClient,
	store domain.VendorStore,
	runs domain.RunStore,
	identity *IdentitySynchronizer,
	documents *DocumentRelay,
	bank *BankInfoReconciler,
	registry *hooks.Registry,
	log *logger.Logger,
) *BatchOrchestrator {
	return &BatchOrchestrator{
		marketplace: marketplace,
		wallet:      wallet,
		store:       store,
		runs:        runs,
		identity:    identity,
		documents:   documents,
		bank:        bank,
		hooks:       registry,
		logger:      log,
	}
}

// Run executes one batch. Runs are serialized; the report for runID is
// created if the caller did not pre-register it.
func (o *BatchOrchestrator) Run(ctx context.Context, runID string, since time.Time) *domain.RunReport {
	o.mu.Lock()
	defer o.mu.Unlock()

	report, err := o.runs.GetRun(ctx, runID)
	if err != nil {
		report = domain.NewRunReport(runID)
		if err := o.runs.CreateRun(ctx, report); err != nil {
			o.logger.Error(ctx, "Failed to create run report",
				"error", err,
			)
		}
	}

	ctx = logger.WithRunID(ctx, runID)

	defer func() {
		if rec := recover(); rec != nil {
			o.fail(ctx, report, fmt.Errorf("panic: %v", rec))
		}
	}()

	if err := o.run(ctx, since, report); err != nil {
		o.fail(ctx, report, err)
		return report
	}

	if report.Status == domain.RunStatusRunning {
		report.Finish(domain.RunStatusCompleted)
	}
	o.saveReport(ctx, report)

	o.logger.Info(ctx, "Vendor processing finished",
		"status", report.Status,
	)

	return report
}

func (o *BatchOrchestrator) run(ctx context.Context, since time.Time, report *domain.RunReport) error {
	o.logger.Info(ctx, "Vendor processing")

	payloads, err := o.fetchVendors(ctx, since)
	if err != nil {
		return err
	}
	o.logger.Info(ctx, "Fetched vendors from marketplace",
		"count", len(payloads),
	)

	o.logger.Info(ctx, "Wallet registration")
	vendors, identityReport := o.identity.RegisterWallets(ctx, payloads)
	report.Identity = identityReport
	o.logger.Info(ctx, "Wallets reconciled",
		"count", len(vendors),
	)

	records := make([]*domain.VendorRecord, 0, len(vendors))
	shopIDs := make([]int64, 0, len(vendors))
	for id, record := range vendors {
		records = append(records, record)
		shopIDs = append(shopIDs, id)
	}
	if err := o.store.SaveAll(ctx, records); err != nil {
		return err
	}
	o.logger.Info(ctx, "Vendors saved")

	o.logger.Info(ctx, "Transferring files")
	transferReport, err := o.documents.TransferFiles(ctx, vendors, shopIDs)
	if err != nil {
		return err
	}
	report.Documents = transferReport.Stage
	report.Outcomes = transferReport.Outcomes
	report.TransferFailures = transferReport.Failures

	if transferReport.HasErrors {
		// Bank reconciliation must not run against vendors whose document
		// evidence was not delivered.
		o.logger.Error(ctx, "Errors while transferring files, skipping bank info")
		report.AbortReason = "document transfer reported errors"
		report.Finish(domain.RunStatusAborted)
		return nil
	}
	o.logger.Info(ctx, "Files transferred")

	o.logger.Info(ctx, "Updating bank data")
	bankReport, criticals := o.bank.HandleBankInfo(ctx, vendors, indexPayloads(payloads))
	report.BankInfo = bankReport
	report.CriticalErrors = append(report.CriticalErrors, criticals...)
	o.logger.Info(ctx, "Bank info updated")

	return nil
}

func (o *BatchOrchestrator) fetchVendors(ctx context.Context, since time.Time) ([]domain.MarketplaceVendor, error) {
	event := &hooks.VendorFetch{Since: since}

	if err := o.hooks.Fire(ctx, hooks.BeforeVendorFetch, event); err != nil {
		return nil, err
	}

	payloads, err := o.marketplace.ListVendors(ctx, event.Since)
	if err != nil {
		return nil, err
	}

	event.Count = len(payloads)
	if err := o.hooks.Fire(ctx, hooks.AfterVendorFetch, event); err != nil {
		return nil, err
	}

	return payloads, nil
}

// RecordVendor re-registers a single vendor record from the marketplace and
// provider state, for operator recovery after a failed run.
func (o *BatchOrchestrator) RecordVendor(ctx context.Context, shopID int64) error {
	payloads, err := o.marketplace.ListVendors(ctx, time.Time{})
	if err != nil {
		return err
	}

	for _, payload := range payloads {
		if payload.ShopID != shopID {
			continue
		}

		walletID, err := o.wallet.LookupWalletID(ctx, payload.Contact.Email)
		if err != nil {
			return err
		}

		record := domain.NewVendorRecord(payload.Contact.Email, walletID, shopID)
		mergePayload(record, payload)

		return o.store.Save(ctx, record)
	}

	return domain.ErrVendorNotFound
}

func (o *BatchOrchestrator) fail(ctx context.Context, report *domain.RunReport, err error) {
	o.logger.Error(ctx, "Batch run failed",
		"severity", domain.SeverityCritical,
		"error", err,
	)
	report.CriticalErrors = append(report.CriticalErrors, err.Error())
	report.Finish(domain.RunStatusFailed)
	o.saveReport(ctx, report)
}

func (o *BatchOrchestrator) saveReport(ctx context.Context, report *domain.RunReport) {
	if err := o.runs.UpdateRun(ctx, report); err != nil && !errors.Is(err, domain.ErrRunNotFound) {
		o.logger.Error(ctx, "Failed to persist run report",
			"error", err,
		)
	}
}

func indexPayloads(payloads []domain.MarketplaceVendor) map[int64]domain.MarketplaceVendor {
	indexed := make(map[int64]domain.MarketplaceVendor, len(payloads))
	for _, payload := range payloads {
		indexed[payload.ShopID] = payload
	}
	return indexed
}
