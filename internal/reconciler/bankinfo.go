package reconciler

import (
	"context"
	"sort"

	"walletsync/internal/domain"
	"walletsync/internal/hooks"
	"walletsync/pkg/logger"
)

// BankInfoReconciler registers or verifies banking details per vendor,
// driven by the status the wallet provider reports. The status is read fresh
// from the provider on every run, never cached.
type BankInfoReconciler struct {
	wallet domain.WalletClient
	hooks  *hooks.Registry
	logger *logger.Logger
}

func NewBankInfoReconciler(wallet domain.WalletClient, registry *hooks.Registry, log *logger.Logger) *BankInfoReconciler {
	return &BankInfoReconciler{
		wallet: wallet,
		hooks:  registry,
		logger: log,
	}
}

// HandleBankInfo runs the state machine over the synchronized vendor set.
// Mismatch errors are critical and returned for alerting; every other
// per-vendor failure is a warning and the loop continues.
func (r *BankInfoReconciler) HandleBankInfo(ctx context.Context, vendors map[int64]*domain.VendorRecord, payloads map[int64]domain.MarketplaceVendor) (domain.StageReport, []string) {
	report := domain.StageReport{}
	var criticals []string

	shopIDs := make([]int64, 0, len(vendors))
	for id := range vendors {
		shopIDs = append(shopIDs, id)
	}
	sort.Slice(shopIDs, func(i, j int) bool { return shopIDs[i] < shopIDs[j] })

	for _, shopID := range shopIDs {
		vendor := vendors[shopID]
		vendorCtx := logger.WithShopID(ctx, shopID)

		payload, ok := payloads[shopID]
		if !ok {
			r.logger.Info(vendorCtx, "Vendor missing from the marketplace collection, skipping")
			report.Skipped++
			continue
		}

		err := r.reconcileVendor(vendorCtx, vendor, payload, &report)
		if err == nil {
			continue
		}

		severity := domain.ClassifySeverity(err)
		if severity == domain.SeverityCritical {
			r.logger.Error(vendorCtx, "Bank info reconciliation failed",
				"severity", severity,
				"error", err,
			)
			criticals = append(criticals, err.Error())
		} else {
			r.logger.Warn(vendorCtx, "Bank info reconciliation failed",
				"severity", severity,
				"error", err,
			)
		}
		report.Failed++
	}

	return report, criticals
}

func (r *BankInfoReconciler) reconcileVendor(ctx context.Context, vendor *domain.VendorRecord, payload domain.MarketplaceVendor, report *domain.StageReport) error {
	status, err := r.wallet.BankInfoStatus(ctx, vendor.WalletID)
	if err != nil {
		return err
	}

	bankInfo := domain.BankInfoFromMarketplace(payload)

	r.logger.Debug(ctx, "Bank info status",
		"status", status,
	)

	switch status {
	case domain.BankInfoStatusBlank:
		if err := validateBankInfo(vendor.MarketplaceID, bankInfo); err != nil {
			return err
		}
		ok, err := r.sendBankAccount(ctx, vendor, &bankInfo)
		if err != nil {
			return err
		}
		if !ok {
			return &domain.BankAccountCreationError{
				ShopID:   vendor.MarketplaceID,
				BankInfo: bankInfo,
			}
		}
		r.logger.Info(ctx, "Created bank account")
		report.Succeeded++

	case domain.BankInfoStatusValidated:
		synced, err := r.isSynchronized(ctx, vendor, bankInfo)
		if err != nil {
			return err
		}
		if !synced {
			return &domain.BankInfoMismatchError{
				ShopID:      vendor.MarketplaceID,
				Field:       "iban",
				Marketplace: bankInfo,
			}
		}
		r.logger.Info(ctx, "Bank information is synchronized")
		report.Succeeded++

	case domain.BankInfoStatusPending, domain.BankInfoStatusRefused, domain.BankInfoStatusUnknown:
		// The provider's own lifecycle resolves these.
		report.Skipped++
	}

	return nil
}

func (r *BankInfoReconciler) sendBankAccount(ctx context.Context, vendor *domain.VendorRecord, bankInfo *domain.BankInfo) (bool, error) {
	event := &hooks.AddBankAccount{
		WalletID: vendor.WalletID,
		BankInfo: bankInfo,
	}

	if err := r.hooks.Fire(ctx, hooks.BeforeBankAccountAdd, event); err != nil {
		return false, err
	}

	return r.wallet.BankInfoRegister(ctx, vendor.WalletID, *event.BankInfo)
}

// isSynchronized compares the IBAN registered at the provider with the
// marketplace one. The synchrony hook may assert additional fields and veto.
func (r *BankInfoReconciler) isSynchronized(ctx context.Context, vendor *domain.VendorRecord, bankInfo domain.BankInfo) (bool, error) {
	providerInfo, err := r.wallet.BankInfoFetch(ctx, vendor.WalletID)
	if err != nil {
		return false, err
	}

	event := &hooks.BankInfoSynchrony{
		Marketplace:  bankInfo,
		Provider:     providerInfo,
		Synchronized: true,
	}

	ibanMatch := providerInfo.IBAN == bankInfo.IBAN

	if err := r.hooks.Fire(ctx, hooks.CheckBankInfoSynchrony, event); err != nil {
		return false, err
	}

	return ibanMatch && event.Synchronized, nil
}

// IsBankInfoUsable reports whether the marketplace bank info matches what the
// provider holds. With checkStatus set, it refuses outright when the provider
// status is VALIDATED; this gate is intentionally the inverse of
// AddBankInformation's.
func (r *BankInfoReconciler) IsBankInfoUsable(ctx context.Context, vendor *domain.VendorRecord, bankInfo domain.BankInfo, checkStatus bool) (bool, error) {
	if checkStatus {
		status, err := r.wallet.BankInfoStatus(ctx, vendor.WalletID)
		if err != nil {
			return false, err
		}
		if status == domain.BankInfoStatusValidated {
			return false, nil
		}
	}

	return r.isSynchronized(ctx, vendor, bankInfo)
}

// IsBankInfoUsableForPayload is IsBankInfoUsable taking a raw marketplace
// payload instead of a pre-built value.
func (r *BankInfoReconciler) IsBankInfoUsableForPayload(ctx context.Context, vendor *domain.VendorRecord, payload domain.MarketplaceVendor, checkStatus bool) (bool, error) {
	return r.IsBankInfoUsable(ctx, vendor, domain.BankInfoFromMarketplace(payload), checkStatus)
}

// AddBankInformation registers the bank info on the vendor's wallet. With
// checkStatus set, it refuses outright when the provider status is BLANK.
func (r *BankInfoReconciler) AddBankInformation(ctx context.Context, vendor *domain.VendorRecord, bankInfo domain.BankInfo, checkStatus bool) (bool, error) {
	if checkStatus {
		status, err := r.wallet.BankInfoStatus(ctx, vendor.WalletID)
		if err != nil {
			return false, err
		}
		if status == domain.BankInfoStatusBlank {
			return false, nil
		}
	}

	return r.sendBankAccount(ctx, vendor, &bankInfo)
}

// AddBankInformationForPayload is AddBankInformation taking a raw marketplace
// payload instead of a pre-built value.
func (r *BankInfoReconciler) AddBankInformationForPayload(ctx context.Context, vendor *domain.VendorRecord, payload domain.MarketplaceVendor, checkStatus bool) (bool, error) {
	return r.AddBankInformation(ctx, vendor, domain.BankInfoFromMarketplace(payload), checkStatus)
}
