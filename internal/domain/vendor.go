package domain

import "time"

// VendorRecord is the reconciled view of a marketplace vendor and its
// payment wallet. MarketplaceID, WalletID and Email are immutable once set;
// later payloads may only touch the profile fields.
type VendorRecord struct {
	MarketplaceID int64      `json:"marketplace_id"`
	WalletID      int64      `json:"wallet_id"`
	Email         string     `json:"email"`
	CompanyName   string     `json:"company_name"`
	Phone         string     `json:"phone"`
	Street        string     `json:"street"`
	City          string     `json:"city"`
	ZipCode       string     `json:"zip_code"`
	Country       string     `json:"country"`
	Currency      string     `json:"currency"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

func NewVendorRecord(email string, walletID, marketplaceID int64) *VendorRecord {
	now := time.Now()
	return &VendorRecord{
		MarketplaceID: marketplaceID,
		WalletID:      walletID,
		Email:         email,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// Clone returns a copy so callers can mutate records without leaking changes
// into the store before they are saved.
func (v *VendorRecord) Clone() *VendorRecord {
	c := *v
	return &c
}

// MarketplaceVendor is one vendor payload as listed by the marketplace API.
type MarketplaceVendor struct {
	ShopID   int64              `json:"shop_id"`
	ShopName string             `json:"shop_name"`
	Currency string             `json:"currency"`
	Contact  ContactInformation `json:"contact_informations"`
	Pro      ProDetails         `json:"pro_details"`
	Bank     *BankDetails       `json:"payment_info,omitempty"`
}

type ContactInformation struct {
	Email     string `json:"email"`
	FirstName string `json:"firstname"`
	LastName  string `json:"lastname"`
	Phone     string `json:"phone"`
	Street    string `json:"street"`
	City      string `json:"city"`
	ZipCode   string `json:"zip_code"`
	Country   string `json:"country"`
}

type ProDetails struct {
	CorporateName string `json:"corporate_name"`
	TaxID         string `json:"tax_identification_number"`
}

type BankDetails struct {
	IBAN      string `json:"iban"`
	BIC       string `json:"bic"`
	BankName  string `json:"bank_name"`
	BankCity  string `json:"bank_city"`
	OwnerName string `json:"owner"`
}

// Wallet-provider account creation is split into three sub-structures; hook
// handlers may rewrite any of them before submission.

type AccountBasic struct {
	Email     string `json:"email"`
	FirstName string `json:"firstname"`
	LastName  string `json:"lastname"`
	Currency  string `json:"currency"`
}

type AccountDetails struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	ZipCode string `json:"zip_code"`
	Country string `json:"country"`
	Phone   string `json:"phone"`
}

type MerchantData struct {
	LegalName string `json:"legal_name"`
	TaxID     string `json:"tax_id"`
	ShopID    int64  `json:"shop_id"`
}

func NewAccountBasic(v MarketplaceVendor) AccountBasic {
	return AccountBasic{
		Email:     v.Contact.Email,
		FirstName: v.Contact.FirstName,
		LastName:  v.Contact.LastName,
		Currency:  v.Currency,
	}
}

func NewAccountDetails(v MarketplaceVendor) AccountDetails {
	return AccountDetails{
		Street:  v.Contact.Street,
		City:    v.Contact.City,
		ZipCode: v.Contact.ZipCode,
		Country: v.Contact.Country,
		Phone:   v.Contact.Phone,
	}
}

func NewMerchantData(v MarketplaceVendor) MerchantData {
	return MerchantData{
		LegalName: v.Pro.CorporateName,
		TaxID:     v.Pro.TaxID,
		ShopID:    v.ShopID,
	}
}
