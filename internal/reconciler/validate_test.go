package reconciler

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"walletsync/internal/domain"
)

func TestValidateRecord_NamesOffendingFields(t *testing.T) {
	record := &domain.VendorRecord{}

	err := validateRecord(record)

	var validation *domain.ValidationError
	require.True(t, errors.As(err, &validation))
	assert.ElementsMatch(t, []string{"email", "marketplace_id", "wallet_id"}, validation.Fields)
}

func TestValidateRecord_CompleteRecordPasses(t *testing.T) {
	record := domain.NewVendorRecord("jane@shop.example", 1001, 42)

	assert.NoError(t, validateRecord(record))
}

func TestCheckImmutability_AllowsSettingUnestablishedFields(t *testing.T) {
	record := domain.NewVendorRecord("jane@shop.example", 1001, 42)

	assert.NoError(t, checkImmutability(record, identityFields{}))
}

func TestCheckImmutability_DetectsDriftPerField(t *testing.T) {
	previous := identityFields{Email: "jane@shop.example", WalletID: 1001, MarketplaceID: 42}

	tests := []struct {
		name   string
		mutate func(*domain.VendorRecord)
		field  string
	}{
		{"email", func(r *domain.VendorRecord) { r.Email = "other@shop.example" }, "email"},
		{"wallet id", func(r *domain.VendorRecord) { r.WalletID = 9999 }, "wallet_id"},
		{"marketplace id", func(r *domain.VendorRecord) { r.MarketplaceID = 43 }, "marketplace_id"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			record := domain.NewVendorRecord("jane@shop.example", 1001, 42)
			tt.mutate(record)

			err := checkImmutability(record, previous)

			var violation *domain.ImmutabilityViolationError
			require.True(t, errors.As(err, &violation))
			assert.Equal(t, tt.field, violation.Field)
		})
	}
}
