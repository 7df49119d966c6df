package controllers_test

import (
	"context"
	"sync/atomic"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hrmarket/backend/gateway/gatewaytest"
	"hrmarket/backend/models"
)

func TestModerationQueueRequiresAdmin(t *testing.T) {
	app := newTestApp(&gatewaytest.Fake{})

	resp, err := app.Test(jsonRequest(t, "GET", "/api/admin/products/p1/reviews?tab=pending", nil, ""))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	resp, err = app.Test(jsonRequest(t, "GET", "/api/admin/products/p1/reviews?tab=pending", nil, userToken(t)))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}

func TestModerationQueueComposesTab(t *testing.T) {
	parent := "r2"
	gw := &gatewaytest.Fake{
		AdminGetReviewsForProductFn: func(ctx context.Context, productID, tab string) ([]models.AdminReviewQueueItem, error) {
			return []models.AdminReviewQueueItem{
				{ReviewID: "r1", Status: models.StatusPending},
				{ReviewID: "r2", Status: models.StatusApproved},
				{ReviewID: "p1", ParentReviewID: &parent, Status: models.StatusPending},
			}, nil
		},
	}
	app := newTestApp(gw)

	resp, err := app.Test(jsonRequest(t, "GET", "/api/admin/products/p1/reviews?tab=pending", nil, adminToken(t)))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	data := decodeBody(t, resp)["data"].(map[string]interface{})
	assert.Equal(t, "pending", data["tab"])
	nodes := data["reviews"].([]interface{})
	require.Len(t, nodes, 2)

	// r2 appears only because of its pending reply
	second := nodes[1].(map[string]interface{})
	assert.Equal(t, "r2", second["review_id"])
	assert.Len(t, second["replies"].([]interface{}), 1)
}

func TestModerationQueueRejectsUnknownTab(t *testing.T) {
	app := newTestApp(&gatewaytest.Fake{})

	resp, err := app.Test(jsonRequest(t, "GET", "/api/admin/products/p1/reviews?tab=archived", nil, adminToken(t)))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestModerationActions(t *testing.T) {
	var approved, rejected atomic.Value
	gw := &gatewaytest.Fake{
		AdminApproveReviewFn: func(ctx context.Context, reviewID string) error {
			approved.Store(reviewID)
			return nil
		},
		AdminRejectReplyFn: func(ctx context.Context, replyID, adminNote string) error {
			rejected.Store(replyID + "/" + adminNote)
			return nil
		},
	}
	app := newTestApp(gw)
	token := adminToken(t)

	resp, err := app.Test(jsonRequest(t, "POST", "/api/admin/reviews/r9/approve", nil, token))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "r9", approved.Load())

	resp, err = app.Test(jsonRequest(t, "POST", "/api/admin/replies/p7/reject",
		fiber.Map{"admin_note": "off topic"}, token))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "p7/off topic", rejected.Load())
}

func TestResolveOwnershipClaimApprovalAssignsOwner(t *testing.T) {
	var resolvedClaim, assigned atomic.Value
	gw := &gatewaytest.Fake{
		AdminResolveOwnershipClaimFn: func(ctx context.Context, claimID string, approve bool, note string) error {
			resolvedClaim.Store(claimID)
			return nil
		},
		AdminAssignVendorOwnerFn: func(ctx context.Context, vendorID, userID string) error {
			assigned.Store(vendorID + "/" + userID)
			return nil
		},
	}
	app := newTestApp(gw)

	resp, err := app.Test(jsonRequest(t, "POST", "/api/admin/ownership-claims/c1/resolve",
		fiber.Map{"approve": true, "vendor_id": "v1", "user_id": "u1"}, adminToken(t)))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	assert.Equal(t, "c1", resolvedClaim.Load())
	assert.Equal(t, "v1/u1", assigned.Load())
}

func TestSetProductTierValidation(t *testing.T) {
	var tier atomic.Value
	gw := &gatewaytest.Fake{
		AdminSetProductTierFn: func(ctx context.Context, productID, t string) error {
			tier.Store(t)
			return nil
		},
	}
	app := newTestApp(gw)
	token := adminToken(t)

	resp, err := app.Test(jsonRequest(t, "PUT", "/api/admin/products/p1/tier",
		fiber.Map{"tier": "platinum"}, token))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Nil(t, tier.Load())

	resp, err = app.Test(jsonRequest(t, "PUT", "/api/admin/products/p1/tier",
		fiber.Map{"tier": "gold"}, token))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "gold", tier.Load())
}
