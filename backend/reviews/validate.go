package reviews

import (
	"strings"

	"github.com/go-playground/validator/v10"

	"hrmarket/backend/models"
)

var validate = validator.New()

// ReviewInput is what the review form submits. Limits mirror what the form
// enforces: rating 1-5, title up to 100 chars, body up to 2000.
type ReviewInput struct {
	ProductID       string `json:"product_id" validate:"required"`
	Rating          int    `json:"rating" validate:"min=1,max=5"`
	Title           string `json:"title" validate:"max=100"`
	Body            string `json:"body" validate:"max=2000"`
	ReviewerName    string `json:"reviewer_name"`
	ReviewerRole    string `json:"reviewer_role"`
	ReviewerCompany string `json:"reviewer_company"`
}

// ValidateReview checks a submission before anything touches the network.
// A non-empty map means the request never reaches the gateway.
func ValidateReview(in ReviewInput) map[string]string {
	errs := map[string]string{}

	if err := validate.Struct(in); err != nil {
		for _, fe := range err.(validator.ValidationErrors) {
			switch fe.Field() {
			case "ProductID":
				errs["product_id"] = "Product is required"
			case "Rating":
				errs["rating"] = "Rating must be between 1 and 5"
			case "Title":
				errs["title"] = "Title must be at most 100 characters"
			case "Body":
				errs["body"] = "Review must be at most 2000 characters"
			}
		}
	}

	if strings.TrimSpace(in.ReviewerName) == "" {
		errs["reviewer_name"] = "Name is required"
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

// EditInput is an edit to an already-approved review. Same bounds as a fresh
// submission; the product is fixed by the review being edited.
type EditInput struct {
	ReviewID string `json:"review_id" validate:"required"`
	Rating   int    `json:"rating" validate:"min=1,max=5"`
	Title    string `json:"title" validate:"max=100"`
	Body     string `json:"body" validate:"max=2000"`
}

func ValidateEdit(in EditInput) map[string]string {
	errs := map[string]string{}
	if err := validate.Struct(in); err != nil {
		for _, fe := range err.(validator.ValidationErrors) {
			switch fe.Field() {
			case "ReviewID":
				errs["review_id"] = "Review is required"
			case "Rating":
				errs["rating"] = "Rating must be between 1 and 5"
			case "Title":
				errs["title"] = "Title must be at most 100 characters"
			case "Body":
				errs["body"] = "Review must be at most 2000 characters"
			}
		}
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

// CanEdit enforces the single-outstanding-edit rule: only an approved review
// with no pending edit may be edited again.
func CanEdit(r *models.ReviewRecord) bool {
	return r != nil && r.Status == models.StatusApproved && !r.HasPendingEdit
}

// ReplyInput is a reply form submission.
type ReplyInput struct {
	ReviewID    string `json:"review_id"`
	Body        string `json:"body"`
	ReplierName string `json:"replier_name"`
	ReplierRole string `json:"replier_role"`
}

// ValidateReply requires at least 5 characters of body after trimming.
func ValidateReply(in ReplyInput) map[string]string {
	errs := map[string]string{}
	if in.ReviewID == "" {
		errs["review_id"] = "Review is required"
	}
	if len(strings.TrimSpace(in.Body)) < 5 {
		errs["body"] = "Reply must be at least 5 characters"
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

// ValidSort reports whether the sort key is one get_product_reviews accepts.
func ValidSort(sort string) bool {
	switch sort {
	case models.SortHelpful, models.SortNewest, models.SortOldest, models.SortHighest, models.SortLowest:
		return true
	}
	return false
}
