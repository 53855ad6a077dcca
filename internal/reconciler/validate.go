package reconciler

import "walletsync/internal/domain"

// identityFields is the snapshot of the fields that must never change once a
// wallet registration established them. Compared by value before and after a
// payload merge.
type identityFields struct {
	Email         string
	WalletID      int64
	MarketplaceID int64
}

func snapshotIdentity(record *domain.VendorRecord) identityFields {
	return identityFields{
		Email:         record.Email,
		WalletID:      record.WalletID,
		MarketplaceID: record.MarketplaceID,
	}
}

// checkImmutability compares the record against its pre-merge snapshot. A
// zero previous value means the field was never established, so setting it is
// allowed.
func checkImmutability(record *domain.VendorRecord, previous identityFields) error {
	if previous.Email != "" && record.Email != previous.Email {
		return &domain.ImmutabilityViolationError{ShopID: record.MarketplaceID, Field: "email"}
	}
	if previous.WalletID != 0 && record.WalletID != previous.WalletID {
		return &domain.ImmutabilityViolationError{ShopID: record.MarketplaceID, Field: "wallet_id"}
	}
	if previous.MarketplaceID != 0 && record.MarketplaceID != previous.MarketplaceID {
		return &domain.ImmutabilityViolationError{ShopID: previous.MarketplaceID, Field: "marketplace_id"}
	}
	return nil
}

// validateRecord runs the structural checks: required fields present and
// business constraints on the fields the payload carries.
func validateRecord(record *domain.VendorRecord) error {
	var fields []string

	if record.Email == "" {
		fields = append(fields, "email")
	}
	if record.MarketplaceID <= 0 {
		fields = append(fields, "marketplace_id")
	}
	if record.WalletID <= 0 {
		fields = append(fields, "wallet_id")
	}

	if len(fields) > 0 {
		return &domain.ValidationError{ShopID: record.MarketplaceID, Fields: fields}
	}

	return nil
}

// validateBankInfo rejects bank details that are present but incomplete.
func validateBankInfo(shopID int64, info domain.BankInfo) error {
	if info.IBAN == "" {
		return &domain.ValidationError{ShopID: shopID, Fields: []string{"iban"}}
	}
	return nil
}
