package domain

import (
	"context"
	"time"
)

// MarketplaceClient lists vendors and serves their document bundles.
type MarketplaceClient interface {
	ListVendors(ctx context.Context, since time.Time) ([]MarketplaceVendor, error)
	DownloadDocumentBundle(ctx context.Context, shopIDs []int64) ([]byte, error)
}

// WalletClient talks to the payment-wallet provider. Extra lookup criteria on
// AccountExists come from the availability-check hook; a nil map is valid.
type WalletClient interface {
	AccountExists(ctx context.Context, email string, criteria map[string]string) (bool, error)
	CreateAccount(ctx context.Context, basic AccountBasic, details AccountDetails, merchant MerchantData) (int64, error)
	LookupWalletID(ctx context.Context, email string) (int64, error)
	BankInfoStatus(ctx context.Context, walletID int64) (BankInfoStatus, error)
	BankInfoRegister(ctx context.Context, walletID int64, info BankInfo) (bool, error)
	BankInfoFetch(ctx context.Context, walletID int64) (BankInfo, error)
}

// VendorStore persists reconciled vendor records. Lookups return
// ErrVendorNotFound when no record matches.
type VendorStore interface {
	FindByEmail(ctx context.Context, email string) (*VendorRecord, error)
	FindByMarketplaceID(ctx context.Context, marketplaceID int64) (*VendorRecord, error)
	Save(ctx context.Context, record *VendorRecord) error
	SaveAll(ctx context.Context, records []*VendorRecord) error
}

// TransferClient moves document files to the provider's staging storage.
type TransferClient interface {
	DirectoryExists(ctx context.Context, path string) (bool, error)
	CreateDirectory(ctx context.Context, path string) error
	Upload(ctx context.Context, localPath, remotePath string) (bool, error)
}

type ArchiveService interface {
	Extract(ctx context.Context, archivePath, destDir string) error
}

type RunStore interface {
	CreateRun(ctx context.Context, report *RunReport) error
	GetRun(ctx context.Context, runID string) (*RunReport, error)
	UpdateRun(ctx context.Context, report *RunReport) error
}
