package reconciler

import (
	"context"
	"errors"

	"walletsync/internal/domain"
	"walletsync/internal/hooks"
	"walletsync/pkg/logger"
)

// IdentitySynchronizer turns marketplace vendor payloads into reconciled
// vendor records, creating a wallet at the provider when none exists and
// enforcing immutability of the identity fields.
type IdentitySynchronizer struct {
	store  domain.VendorStore
	wallet domain.WalletClient
	hooks  *hooks.Registry
	logger *logger.Logger
}

func NewIdentitySynchronizer(store domain.VendorStore, wallet domain.WalletClient, registry *hooks.Registry, log *logger.Logger) *IdentitySynchronizer {
	return &IdentitySynchronizer{
		store:  store,
		wallet: wallet,
		hooks:  registry,
		logger: log,
	}
}

// RegisterWallets processes each payload independently. A failing vendor is
// logged as a warning and excluded from the output set; the batch never
// aborts because one vendor is malformed.
func (s *IdentitySynchronizer) RegisterWallets(ctx context.Context, payloads []domain.MarketplaceVendor) (map[int64]*domain.VendorRecord, domain.StageReport) {
	vendors := make(map[int64]*domain.VendorRecord)
	report := domain.StageReport{}

	for _, payload := range payloads {
		vendorCtx := logger.WithShopID(ctx, payload.ShopID)
		s.logger.Debug(vendorCtx, "Processing vendor")

		record, err := s.syncVendor(vendorCtx, payload)
		if err != nil {
			s.logger.Warn(vendorCtx, "Vendor excluded from run",
				"severity", domain.ClassifySeverity(err),
				"error", err,
			)
			report.Failed++
			continue
		}

		vendors[record.MarketplaceID] = record
		report.Succeeded++
		s.logger.Info(vendorCtx, "Vendor reconciled",
			"wallet_id", record.WalletID,
		)
	}

	return vendors, report
}

func (s *IdentitySynchronizer) syncVendor(ctx context.Context, payload domain.MarketplaceVendor) (*domain.VendorRecord, error) {
	record, err := s.lookupRecord(ctx, payload)
	if err != nil {
		return nil, err
	}

	if record == nil {
		walletID, err := s.resolveWalletID(ctx, payload)
		if err != nil {
			return nil, err
		}
		record = domain.NewVendorRecord(payload.Contact.Email, walletID, payload.ShopID)
		s.logger.Info(ctx, "Wallet recorded",
			"wallet_id", walletID,
		)
	}

	previous := snapshotIdentity(record)
	mergePayload(record, payload)

	if err := validateRecord(record); err != nil {
		return nil, err
	}

	if err := checkImmutability(record, previous); err != nil {
		return nil, err
	}

	return record, nil
}

// lookupRecord resolves an existing record by email first; on a miss it falls
// back to the marketplace id so that a payload carrying a changed email still
// reaches the immutability check instead of registering a second wallet.
func (s *IdentitySynchronizer) lookupRecord(ctx context.Context, payload domain.MarketplaceVendor) (*domain.VendorRecord, error) {
	record, err := s.store.FindByEmail(ctx, payload.Contact.Email)
	if err == nil {
		return record, nil
	}
	if !errors.Is(err, domain.ErrVendorNotFound) {
		return nil, err
	}

	record, err = s.store.FindByMarketplaceID(ctx, payload.ShopID)
	if err == nil {
		return record, nil
	}
	if !errors.Is(err, domain.ErrVendorNotFound) {
		return nil, err
	}

	return nil, nil
}

// resolveWalletID guards against double-registration: when the provider
// already holds an account for this email (stale or unpopulated local store),
// its id is fetched instead of creating a new wallet.
func (s *IdentitySynchronizer) resolveWalletID(ctx context.Context, payload domain.MarketplaceVendor) (int64, error) {
	exists, err := s.hasWallet(ctx, payload.Contact.Email)
	if err != nil {
		return 0, err
	}

	if exists {
		return s.wallet.LookupWalletID(ctx, payload.Contact.Email)
	}

	walletID, err := s.createWallet(ctx, payload)
	if err != nil {
		return 0, err
	}
	s.logger.Info(ctx, "Created wallet",
		"wallet_id", walletID,
	)
	return walletID, nil
}

func (s *IdentitySynchronizer) hasWallet(ctx context.Context, email string) (bool, error) {
	event := &hooks.AvailabilityCheck{Email: email}

	if err := s.hooks.Fire(ctx, hooks.BeforeAvailabilityCheck, event); err != nil {
		return false, err
	}

	exists, err := s.wallet.AccountExists(ctx, event.Email, event.Criteria)
	if err != nil {
		return false, err
	}

	if err := s.hooks.Fire(ctx, hooks.AfterAvailabilityCheck, event); err != nil {
		return false, err
	}

	return exists, nil
}

func (s *IdentitySynchronizer) createWallet(ctx context.Context, payload domain.MarketplaceVendor) (int64, error) {
	basic := domain.NewAccountBasic(payload)
	details := domain.NewAccountDetails(payload)
	merchant := domain.NewMerchantData(payload)

	event := &hooks.CreateWallet{
		Basic:    &basic,
		Details:  &details,
		Merchant: &merchant,
	}

	if err := s.hooks.Fire(ctx, hooks.BeforeWalletCreate, event); err != nil {
		return 0, err
	}

	walletID, err := s.wallet.CreateAccount(ctx, *event.Basic, *event.Details, *event.Merchant)
	if err != nil {
		return 0, &domain.WalletCreationError{
			ShopID: payload.ShopID,
			Email:  payload.Contact.Email,
			Err:    err,
		}
	}

	if err := s.hooks.Fire(ctx, hooks.AfterWalletCreate, event); err != nil {
		return 0, err
	}

	return walletID, nil
}

// mergePayload writes the latest marketplace data into the record. Identity
// fields are written too; drift is caught by the immutability check against
// the pre-merge snapshot.
func mergePayload(record *domain.VendorRecord, payload domain.MarketplaceVendor) {
	record.MarketplaceID = payload.ShopID
	if payload.Contact.Email != "" {
		record.Email = payload.Contact.Email
	}
	record.CompanyName = payload.Pro.CorporateName
	if record.CompanyName == "" {
		record.CompanyName = payload.ShopName
	}
	record.Phone = payload.Contact.Phone
	record.Street = payload.Contact.Street
	record.City = payload.Contact.City
	record.ZipCode = payload.Contact.ZipCode
	record.Country = payload.Contact.Country
	record.Currency = payload.Currency
}
