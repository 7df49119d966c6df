package models

import "time"

// Product tiers gate how much of a listing is visible.
const (
	TierFreemium = "freemium"
	TierSilver   = "silver"
	TierGold     = "gold"
)

// ProductCard is the row shape returned by get_product_cards for catalog
// listings and search results.
type ProductCard struct {
	ProductID    string  `gorm:"column:product_id" json:"product_id"`
	ProductName  string  `gorm:"column:product_name" json:"product_name"`
	LogoURL      string  `gorm:"column:logo_url" json:"logo_url"`
	ShortDesc    string  `gorm:"column:short_desc" json:"short_desc"`
	MainCategory string  `gorm:"column:main_category" json:"main_category"`
	Tier         string  `gorm:"column:tier" json:"tier"` // freemium, silver, gold
	Rating       float64 `gorm:"column:rating" json:"rating"`
	ReviewCount  int     `gorm:"column:review_count" json:"review_count"`
	CompanyName  string  `gorm:"column:company_name" json:"company_name"`
}

// ProductDetails is the full row returned by get_product_details. Categories
// and Languages come back as comma-separated text from the procedure; the
// gateway splits them after scanning.
type ProductDetails struct {
	ProductID     string   `gorm:"column:product_id" json:"product_id"`
	ProductName   string   `gorm:"column:product_name" json:"product_name"`
	LogoURL       string   `gorm:"column:logo_url" json:"logo_url"`
	ShortDesc     string   `gorm:"column:short_desc" json:"short_desc"`
	Description   string   `gorm:"column:description" json:"description"`
	MainCategory  string   `gorm:"column:main_category" json:"main_category"`
	CategoriesRaw string   `gorm:"column:categories" json:"-"`
	Categories    []string `gorm:"-" json:"categories"`
	Pricing       string   `gorm:"column:pricing" json:"pricing,omitempty"`
	LanguagesRaw  string   `gorm:"column:languages" json:"-"`
	Languages     []string `gorm:"-" json:"languages"`
	Rating        float64  `gorm:"column:rating" json:"rating"`
	ReviewCount   int      `gorm:"column:review_count" json:"review_count"`
	Tier          string   `gorm:"column:tier" json:"tier"`
	WebsiteURL    string   `gorm:"column:website_url" json:"website_url,omitempty"`
	VendorID      string   `gorm:"column:vendor_id" json:"vendor_id"`
	CompanyName   string   `gorm:"column:company_name" json:"company_name"`
	CompanySize   string   `gorm:"column:company_size" json:"company_size"`
	Headquarters  string   `gorm:"column:headquarters" json:"headquarters"`
	FoundedAt     string   `gorm:"column:founded_at" json:"founded_at"`
	Subscription  string   `gorm:"column:subscription" json:"subscription"`
	Promoted      bool     `gorm:"-" json:"promoted"`
}

// Card reduces a details row to its catalog-card shape.
func (d ProductDetails) Card() ProductCard {
	return ProductCard{
		ProductID:    d.ProductID,
		ProductName:  d.ProductName,
		LogoURL:      d.LogoURL,
		ShortDesc:    d.ShortDesc,
		MainCategory: d.MainCategory,
		Tier:         d.Tier,
		Rating:       d.Rating,
		ReviewCount:  d.ReviewCount,
		CompanyName:  d.CompanyName,
	}
}

// ApplyTierGate blanks the fields a listing's tier does not pay for.
// Freemium hides pricing and the outbound website link, silver unlocks
// pricing, gold unlocks everything and gets catalog promotion.
func ApplyTierGate(d *ProductDetails) {
	switch d.Tier {
	case TierGold:
		d.Promoted = true
	case TierSilver:
		d.WebsiteURL = ""
	default:
		d.WebsiteURL = ""
		d.Pricing = ""
	}
}

// Category is a row from get_categories.
type Category struct {
	Key   string `gorm:"column:key" json:"key"`
	Label string `gorm:"column:label" json:"label"`
	Count int    `gorm:"column:count" json:"count"`
}

// AdminProduct is the unrestricted row shape used by the admin product panel.
type AdminProduct struct {
	ProductID   string    `gorm:"column:product_id" json:"product_id"`
	ProductName string    `gorm:"column:product_name" json:"product_name"`
	VendorID    string    `gorm:"column:vendor_id" json:"vendor_id"`
	Tier        string    `gorm:"column:tier" json:"tier"`
	Hidden      bool      `gorm:"column:hidden" json:"hidden"`
	CreatedAt   time.Time `gorm:"column:created_at" json:"created_at"`
}
