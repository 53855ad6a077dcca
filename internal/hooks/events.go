package hooks

import (
	"time"

	"walletsync/internal/domain"
)

// VendorFetch wraps the marketplace listing call. After the fetch, Count
// carries the number of payloads returned.
type VendorFetch struct {
	Since time.Time
	Count int
}

// AvailabilityCheck lets handlers rewrite the lookup email or supply extra
// lookup criteria before the wallet-existence check.
type AvailabilityCheck struct {
	Email    string
	Criteria map[string]string
}

// CreateWallet exposes the three account sub-structures for rewriting before
// submission to the provider.
type CreateWallet struct {
	Basic    *domain.AccountBasic
	Details  *domain.AccountDetails
	Merchant *domain.MerchantData
}

// AddBankAccount lets handlers rewrite the bank info before registration.
type AddBankAccount struct {
	WalletID int64
	BankInfo *domain.BankInfo
}

// BankInfoSynchrony lets handlers assert additional fields during the
// synchrony check; setting Synchronized to false vetoes the comparison.
type BankInfoSynchrony struct {
	Marketplace  domain.BankInfo
	Provider     domain.BankInfo
	Synchronized bool
}
