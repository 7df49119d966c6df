package models

import "time"

// Vendor tiers mirror product tiers but carry their own names.
const (
	VendorTierFreemium = "freemium"
	VendorTierPlus     = "plus"
	VendorTierPremium  = "premium"
)

// VendorCard is the row shape returned by get_vendor_cards.
type VendorCard struct {
	VendorID     string  `gorm:"column:vendor_id" json:"vendor_id"`
	Name         string  `gorm:"column:name" json:"name"`
	LogoURL      string  `gorm:"column:logo_url" json:"logo_url"`
	Tier         string  `gorm:"column:tier" json:"tier"` // freemium, plus, premium
	ShortDesc    string  `gorm:"column:short_desc" json:"short_desc"`
	ProductCount int     `gorm:"column:product_count" json:"product_count"`
	Rating       float64 `gorm:"column:rating" json:"rating"`
}

// VendorProfile is the full row returned by get_vendor_profile.
type VendorProfile struct {
	VendorID     string `gorm:"column:vendor_id" json:"vendor_id"`
	Name         string `gorm:"column:name" json:"name"`
	LogoURL      string `gorm:"column:logo_url" json:"logo_url"`
	Tier         string `gorm:"column:tier" json:"tier"`
	Description  string `gorm:"column:description" json:"description"`
	WebsiteURL   string `gorm:"column:website_url" json:"website_url,omitempty"`
	CompanySize  string `gorm:"column:company_size" json:"company_size"`
	Headquarters string `gorm:"column:headquarters" json:"headquarters"`
	FoundedAt    string `gorm:"column:founded_at" json:"founded_at"`
	OwnerUserID  string `gorm:"column:owner_user_id" json:"owner_user_id,omitempty"`
}

// ApplyVendorTierGate blanks profile fields the vendor's tier does not unlock.
func ApplyVendorTierGate(v *VendorProfile) {
	switch v.Tier {
	case VendorTierPremium:
	case VendorTierPlus:
		v.WebsiteURL = ""
	default:
		v.WebsiteURL = ""
		v.Description = ""
	}
}

// OwnershipClaim is a vendor-ownership request awaiting admin review.
type OwnershipClaim struct {
	ClaimID   string    `gorm:"column:claim_id" json:"claim_id"`
	ProductID string    `gorm:"column:product_id" json:"product_id"`
	VendorID  string    `gorm:"column:vendor_id" json:"vendor_id"`
	UserID    string    `gorm:"column:user_id" json:"user_id"`
	WorkEmail string    `gorm:"column:work_email" json:"work_email"`
	Message   string    `gorm:"column:message" json:"message"`
	Status    string    `gorm:"column:status" json:"status"` // pending, approved, rejected
	AdminNote string    `gorm:"column:admin_note" json:"admin_note,omitempty"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
}
