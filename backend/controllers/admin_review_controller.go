package controllers

import (
	"github.com/gofiber/fiber/v2"

	"hrmarket/backend/config"
	"hrmarket/backend/gateway"
	"hrmarket/backend/reviews"
	"hrmarket/backend/utils"
)

type AdminReviewController struct {
	GW  gateway.Gateway
	Cfg *config.Config
}

func NewAdminReviewController(gw gateway.Gateway, cfg *config.Config) *AdminReviewController {
	return &AdminReviewController{GW: gw, Cfg: cfg}
}

// GetQueue godoc
// @Summary Moderation queue for a product
// @Description Tab-partitioned review tree; see reviews.ComposeQueue for the nesting rules
// @Tags admin
// @Produce json
// @Param id path string true "Product ID"
// @Param tab query string true "pending, approved or rejected"
// @Success 200 {object} utils.SuccessResponse
// @Security ApiKeyAuth
// @Router /admin/products/{id}/reviews [get]
func (arc *AdminReviewController) GetQueue(c *fiber.Ctx) error {
	tab := c.Query("tab", reviews.TabPending)
	if !reviews.ValidTab(tab) {
		return utils.BadRequest(c, "Invalid tab")
	}

	items, err := arc.GW.AdminGetReviewsForProduct(c.Context(), c.Params("id"), tab)
	if err != nil {
		return utils.InternalServerError(c, "Could not fetch moderation queue")
	}

	nodes := reviews.ComposeQueue(items, tab)
	if nodes == nil {
		nodes = []reviews.QueueNode{}
	}
	return utils.Success(c, fiber.StatusOK, fiber.Map{
		"tab":     tab,
		"reviews": nodes,
	})
}

// ApproveReview approves the item; when an edit is pending this approves the
// edit, promoting the pending fields to live.
func (arc *AdminReviewController) ApproveReview(c *fiber.Ctx) error {
	if err := arc.GW.AdminApproveReview(c.Context(), c.Params("reviewId")); err != nil {
		return utils.InternalServerError(c, "Could not approve review")
	}
	return utils.Success(c, fiber.StatusOK, fiber.Map{"approved": true})
}

func (arc *AdminReviewController) RejectReview(c *fiber.Ctx) error {
	var input struct {
		AdminNote string `json:"admin_note"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	if err := arc.GW.AdminRejectReview(c.Context(), c.Params("reviewId"), input.AdminNote); err != nil {
		return utils.InternalServerError(c, "Could not reject review")
	}
	return utils.Success(c, fiber.StatusOK, fiber.Map{"rejected": true})
}

func (arc *AdminReviewController) DeleteReview(c *fiber.Ctx) error {
	if err := arc.GW.AdminDeleteReview(c.Context(), c.Params("reviewId")); err != nil {
		return utils.InternalServerError(c, "Could not delete review")
	}
	return utils.Success(c, fiber.StatusOK, fiber.Map{"deleted": true})
}

func (arc *AdminReviewController) ApproveReply(c *fiber.Ctx) error {
	if err := arc.GW.AdminApproveReply(c.Context(), c.Params("replyId")); err != nil {
		return utils.InternalServerError(c, "Could not approve reply")
	}
	return utils.Success(c, fiber.StatusOK, fiber.Map{"approved": true})
}

func (arc *AdminReviewController) RejectReply(c *fiber.Ctx) error {
	var input struct {
		AdminNote string `json:"admin_note"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	if err := arc.GW.AdminRejectReply(c.Context(), c.Params("replyId"), input.AdminNote); err != nil {
		return utils.InternalServerError(c, "Could not reject reply")
	}
	return utils.Success(c, fiber.StatusOK, fiber.Map{"rejected": true})
}

func (arc *AdminReviewController) DeleteReply(c *fiber.Ctx) error {
	if err := arc.GW.AdminDeleteReply(c.Context(), c.Params("replyId")); err != nil {
		return utils.InternalServerError(c, "Could not delete reply")
	}
	return utils.Success(c, fiber.StatusOK, fiber.Map{"deleted": true})
}
