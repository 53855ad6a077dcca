package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrVendorNotFound = errors.New("vendor not found")
	ErrRunNotFound    = errors.New("run not found")
)

type Severity string

const (
	SeverityWarning  Severity = "warning"
	SeverityCritical Severity = "critical"
)

// ValidationError reports structural problems with a vendor record, naming
// every offending field.
type ValidationError struct {
	ShopID int64
	Fields []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("vendor %d failed validation: %s", e.ShopID, strings.Join(e.Fields, ", "))
}

// ImmutabilityViolationError reports an attempt to change an identity field
// after the wallet registration established it.
type ImmutabilityViolationError struct {
	ShopID int64
	Field  string
}

func (e *ImmutabilityViolationError) Error() string {
	return fmt.Sprintf("vendor %d attempted to change immutable field %q", e.ShopID, e.Field)
}

type WalletCreationError struct {
	ShopID int64
	Email  string
	Err    error
}

func (e *WalletCreationError) Error() string {
	return fmt.Sprintf("wallet creation failed for vendor %d (%s): %v", e.ShopID, e.Email, e.Err)
}

func (e *WalletCreationError) Unwrap() error { return e.Err }

// BankAccountCreationError is raised when the provider rejects a bank info
// registration submission.
type BankAccountCreationError struct {
	ShopID   int64
	BankInfo BankInfo
}

func (e *BankAccountCreationError) Error() string {
	return fmt.Sprintf("bank account creation refused for vendor %d (iban %s)", e.ShopID, e.BankInfo.IBAN)
}

// BankInfoMismatchError signals a real discrepancy in the money-movement
// destination between the two platforms. Always classified critical.
type BankInfoMismatchError struct {
	ShopID      int64
	Field       string
	Marketplace BankInfo
	Provider    BankInfo
}

func (e *BankInfoMismatchError) Error() string {
	return fmt.Sprintf("bank info for vendor %d is out of sync on field %q", e.ShopID, e.Field)
}

// TransferFailure records one failed document upload.
type TransferFailure struct {
	ShopID      int64  `json:"shop_id"`
	Source      string `json:"source"`
	Destination string `json:"destination"`
}

func (e *TransferFailure) Error() string {
	return fmt.Sprintf("upload of %s to %s failed for vendor %d", e.Source, e.Destination, e.ShopID)
}

// ClassifySeverity decides continuation-vs-alerting behavior for an error
// recovered at a stage boundary. Trust-impacting mismatches are critical,
// everything else recoverable per vendor is a warning.
func ClassifySeverity(err error) Severity {
	var mismatch *BankInfoMismatchError
	if errors.As(err, &mismatch) {
		return SeverityCritical
	}
	return SeverityWarning
}
