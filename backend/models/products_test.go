package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApplyTierGate(t *testing.T) {
	base := ProductDetails{
		ProductID:  "p1",
		Pricing:    "from $49/mo",
		WebsiteURL: "https://example.com",
	}

	freemium := base
	freemium.Tier = TierFreemium
	ApplyTierGate(&freemium)
	assert.Empty(t, freemium.Pricing)
	assert.Empty(t, freemium.WebsiteURL)
	assert.False(t, freemium.Promoted)

	silver := base
	silver.Tier = TierSilver
	ApplyTierGate(&silver)
	assert.Equal(t, "from $49/mo", silver.Pricing)
	assert.Empty(t, silver.WebsiteURL)

	gold := base
	gold.Tier = TierGold
	ApplyTierGate(&gold)
	assert.Equal(t, "from $49/mo", gold.Pricing)
	assert.Equal(t, "https://example.com", gold.WebsiteURL)
	assert.True(t, gold.Promoted)
}

func TestApplyVendorTierGate(t *testing.T) {
	base := VendorProfile{
		Description: "HR suite vendor",
		WebsiteURL:  "https://vendor.example.com",
	}

	freemium := base
	freemium.Tier = VendorTierFreemium
	ApplyVendorTierGate(&freemium)
	assert.Empty(t, freemium.Description)
	assert.Empty(t, freemium.WebsiteURL)

	plus := base
	plus.Tier = VendorTierPlus
	ApplyVendorTierGate(&plus)
	assert.Equal(t, "HR suite vendor", plus.Description)
	assert.Empty(t, plus.WebsiteURL)

	premium := base
	premium.Tier = VendorTierPremium
	ApplyVendorTierGate(&premium)
	assert.Equal(t, "https://vendor.example.com", premium.WebsiteURL)
}

func TestAdminQueueItemIsReply(t *testing.T) {
	parent := "r1"
	empty := ""
	assert.False(t, AdminReviewQueueItem{}.IsReply())
	assert.False(t, AdminReviewQueueItem{ParentReviewID: &empty}.IsReply())
	assert.True(t, AdminReviewQueueItem{ParentReviewID: &parent}.IsReply())
}
