package controllers

import (
	"github.com/gofiber/fiber/v2"

	"hrmarket/backend/config"
	"hrmarket/backend/gateway"
	"hrmarket/backend/middleware"
	"hrmarket/backend/models"
	"hrmarket/backend/reviews"
	"hrmarket/backend/utils"
)

type ReviewController struct {
	GW  gateway.Gateway
	Cfg *config.Config
}

func NewReviewController(gw gateway.Gateway, cfg *config.Config) *ReviewController {
	return &ReviewController{GW: gw, Cfg: cfg}
}

// ListReviews godoc
// @Summary List product reviews
// @Description Sorted, offset-paginated reviews with replies embedded per review
// @Tags reviews
// @Produce json
// @Param id path string true "Product ID"
// @Param sort query string false "helpful, newest, oldest, highest, lowest"
// @Success 200 {object} utils.PaginatedResponse
// @Router /products/{id}/reviews [get]
func (rc *ReviewController) ListReviews(c *fiber.Ctx) error {
	productID := c.Params("id")
	sort := c.Query("sort", models.SortHelpful)
	if !reviews.ValidSort(sort) {
		return utils.BadRequest(c, "Invalid sort")
	}
	offset := c.QueryInt("offset", 0)
	limit := c.QueryInt("limit", 10)
	if offset < 0 {
		offset = 0
	}
	if limit <= 0 || limit > 50 {
		limit = 10
	}

	list, err := rc.GW.GetProductReviews(c.Context(), productID, sort, offset, limit, middleware.UserID(c))
	if err != nil {
		return utils.InternalServerError(c, "Could not fetch reviews")
	}

	// Replies are fetched per review, not inlined by the listing procedure.
	// A failed reply fetch leaves that review's thread empty.
	for i := range list {
		replies, err := rc.GW.GetReviewReplies(c.Context(), list[i].ReviewID)
		if err != nil {
			replies = nil
		}
		list[i].Replies = replies
	}

	if list == nil {
		list = []models.ReviewRecord{}
	}
	return utils.Paginate(c, list, len(list), offset, limit)
}

// SubmitReview validates the form and files a pending review. Validation
// failures never reach the gateway.
func (rc *ReviewController) SubmitReview(c *fiber.Ctx) error {
	var input reviews.ReviewInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	if errs := reviews.ValidateReview(input); errs != nil {
		return utils.ValidationError(c, errs)
	}

	err := rc.GW.SubmitReview(c.Context(), gateway.SubmitReviewParams{
		ProductID:       input.ProductID,
		UserID:          middleware.UserID(c),
		Rating:          input.Rating,
		Title:           input.Title,
		Body:            input.Body,
		ReviewerName:    input.ReviewerName,
		ReviewerRole:    input.ReviewerRole,
		ReviewerCompany: input.ReviewerCompany,
	})
	if err != nil {
		return utils.InternalServerError(c, "Could not submit review")
	}
	return utils.Success(c, fiber.StatusOK, fiber.Map{"status": models.StatusPending})
}

// EditMyReview parks an edit in the review's pending shadow fields. Only an
// approved review with no outstanding edit can take another one.
func (rc *ReviewController) EditMyReview(c *fiber.Ctx) error {
	var input reviews.EditInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	if errs := reviews.ValidateEdit(input); errs != nil {
		return utils.ValidationError(c, errs)
	}

	userID := middleware.UserID(c)
	mine, err := rc.GW.GetMyReview(c.Context(), c.Params("id"), userID)
	if err != nil {
		return utils.InternalServerError(c, "Could not fetch review")
	}
	if mine == nil || mine.ReviewID != input.ReviewID {
		return utils.NotFound(c, "Review not found")
	}
	if !reviews.CanEdit(mine) {
		return utils.Conflict(c, "Review cannot be edited while a previous edit is pending")
	}

	err = rc.GW.EditMyReview(c.Context(), gateway.EditReviewParams{
		ReviewID: input.ReviewID,
		UserID:   userID,
		Rating:   input.Rating,
		Title:    input.Title,
		Body:     input.Body,
	})
	if err != nil {
		return utils.InternalServerError(c, "Could not submit edit")
	}
	return utils.Success(c, fiber.StatusOK, fiber.Map{"has_pending_edit": true})
}

// SubmitReply files a pending reply under a review.
func (rc *ReviewController) SubmitReply(c *fiber.Ctx) error {
	var input reviews.ReplyInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	if errs := reviews.ValidateReply(input); errs != nil {
		return utils.ValidationError(c, errs)
	}

	err := rc.GW.SubmitReply(c.Context(), input.ReviewID, input.Body, input.ReplierName, input.ReplierRole)
	if err != nil {
		return utils.InternalServerError(c, "Could not submit reply")
	}
	return utils.Success(c, fiber.StatusOK, fiber.Map{"status": models.StatusPending})
}

// ToggleVote sends the requested direction to the database; whether a repeat
// vote clears is decided there. The handler only relays and refreshes.
func (rc *ReviewController) ToggleVote(c *fiber.Ctx) error {
	var input struct {
		IsHelpful *bool `json:"is_helpful"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	if input.IsHelpful == nil {
		return utils.BadRequest(c, "is_helpful is required")
	}

	err := rc.GW.ToggleReviewVote(c.Context(), c.Params("reviewId"), middleware.UserID(c), *input.IsHelpful)
	if err != nil {
		return utils.InternalServerError(c, "Could not record vote")
	}
	return utils.Success(c, fiber.StatusOK, fiber.Map{"voted": true})
}
