package domain

import "strings"

type BankInfoSource string

const (
	BankInfoSourceMarketplace BankInfoSource = "marketplace"
	BankInfoSourceProvider    BankInfoSource = "provider"
)

// BankInfo unifies the bank data of both platforms for comparison. It is
// built per reconciliation check and never persisted.
type BankInfo struct {
	IBAN      string         `json:"iban"`
	BIC       string         `json:"bic"`
	BankName  string         `json:"bank_name"`
	OwnerName string         `json:"owner_name"`
	Source    BankInfoSource `json:"source"`
}

func BankInfoFromMarketplace(v MarketplaceVendor) BankInfo {
	info := BankInfo{Source: BankInfoSourceMarketplace}
	if v.Bank != nil {
		info.IBAN = v.Bank.IBAN
		info.BIC = v.Bank.BIC
		info.BankName = v.Bank.BankName
		info.OwnerName = v.Bank.OwnerName
	}
	return info
}

// BankInfoStatus is the provider-reported lifecycle stage of a vendor's
// registered bank account.
type BankInfoStatus string

const (
	BankInfoStatusBlank     BankInfoStatus = "BLANK"
	BankInfoStatusPending   BankInfoStatus = "PENDING"
	BankInfoStatusValidated BankInfoStatus = "VALIDATED"
	BankInfoStatusRefused   BankInfoStatus = "REFUSED"
	BankInfoStatusUnknown   BankInfoStatus = "UNKNOWN"
)

// ParseBankInfoStatus maps the provider's wording onto the closed status set.
// Unrecognized values parse to Unknown, which the reconciler treats as a no-op.
func ParseBankInfoStatus(s string) BankInfoStatus {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "BLANK", "NO BANK INFORMATION", "":
		return BankInfoStatusBlank
	case "PENDING", "VALIDATION IN PROGRESS":
		return BankInfoStatusPending
	case "VALIDATED":
		return BankInfoStatusValidated
	case "REFUSED":
		return BankInfoStatusRefused
	default:
		return BankInfoStatusUnknown
	}
}

type DocumentTransferOutcome string

const (
	TransferOutcomeDelivered   DocumentTransferOutcome = "delivered"
	TransferOutcomeNoDocuments DocumentTransferOutcome = "no_documents"
	TransferOutcomeFailed      DocumentTransferOutcome = "failed"
)
