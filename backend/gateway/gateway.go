package gateway

import (
	"context"

	"hrmarket/backend/models"
)

// Gateway is the one boundary to the marketplace database: a fixed catalog of
// named stored procedures. Each call is a direct fire-and-await — no retries,
// no batching, no caching. Controllers depend on this interface; the postgres
// client lives in Client.
type Gateway interface {
	// Catalog
	GetProductCards(ctx context.Context, search, category, tier string, offset, limit int) ([]models.ProductCard, error)
	GetProductDetails(ctx context.Context, productID string) (*models.ProductDetails, error)
	GetSimilarProducts(ctx context.Context, productID string, limit int) ([]models.ProductCard, error)
	GetCategories(ctx context.Context) ([]models.Category, error)
	GetVendorCards(ctx context.Context, search string, offset, limit int) ([]models.VendorCard, error)
	GetVendorProfile(ctx context.Context, vendorID string) (*models.VendorProfile, error)
	GetVendorProducts(ctx context.Context, vendorID string) ([]models.ProductCard, error)

	// Reviews
	GetProductReviews(ctx context.Context, productID, sort string, offset, limit int, viewerID string) ([]models.ReviewRecord, error)
	GetReviewReplies(ctx context.Context, reviewID string) ([]models.ReplyRecord, error)
	GetMyReview(ctx context.Context, productID, userID string) (*models.ReviewRecord, error)
	SubmitReview(ctx context.Context, p SubmitReviewParams) error
	EditMyReview(ctx context.Context, p EditReviewParams) error
	SubmitReply(ctx context.Context, reviewID, body, replierName, replierRole string) error
	ToggleReviewVote(ctx context.Context, reviewID, userID string, isHelpful bool) error

	// Review moderation
	AdminGetReviewsForProduct(ctx context.Context, productID, tab string) ([]models.AdminReviewQueueItem, error)
	AdminApproveReview(ctx context.Context, reviewID string) error
	AdminRejectReview(ctx context.Context, reviewID, adminNote string) error
	AdminDeleteReview(ctx context.Context, reviewID string) error
	AdminApproveReply(ctx context.Context, replyID string) error
	AdminRejectReply(ctx context.Context, replyID, adminNote string) error
	AdminDeleteReply(ctx context.Context, replyID string) error

	// Admin management
	AdminGetProducts(ctx context.Context, offset, limit int) ([]models.AdminProduct, error)
	AdminUpdateProduct(ctx context.Context, p AdminUpdateProductParams) error
	AdminSetProductTier(ctx context.Context, productID, tier string) error
	AdminGetVendors(ctx context.Context, offset, limit int) ([]models.VendorProfile, error)
	AdminUpdateVendor(ctx context.Context, p AdminUpdateVendorParams) error
	AdminSetVendorTier(ctx context.Context, vendorID, tier string) error
	AdminGetUsers(ctx context.Context, offset, limit int) ([]models.User, error)
	AdminSearchUsers(ctx context.Context, query string, offset, limit int) ([]models.User, error)
	AdminSetUserRole(ctx context.Context, userID, role string) error
	AdminGetOwnershipClaims(ctx context.Context, status string) ([]models.OwnershipClaim, error)
	AdminResolveOwnershipClaim(ctx context.Context, claimID string, approve bool, note string) error
	AdminAssignVendorOwner(ctx context.Context, vendorID, userID string) error

	// Ownership & accounts
	SubmitOwnershipClaim(ctx context.Context, productID, userID, workEmail, message string) error
	GetUser(ctx context.Context, userID string) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	CreateUser(ctx context.Context, u models.User) (*models.User, error)
	UpdateUserProfile(ctx context.Context, userID, fullName string) error
}

// SubmitReviewParams are the flat inputs to submit_review.
type SubmitReviewParams struct {
	ProductID       string
	UserID          string
	Rating          int
	Title           string
	Body            string
	ReviewerName    string
	ReviewerRole    string
	ReviewerCompany string
}

// EditReviewParams are the flat inputs to edit_my_review. The procedure parks
// the new values in the review's pending_* shadow fields.
type EditReviewParams struct {
	ReviewID string
	UserID   string
	Rating   int
	Title    string
	Body     string
}

// AdminUpdateProductParams are the flat inputs to admin_update_product.
type AdminUpdateProductParams struct {
	ProductID    string
	ProductName  string
	ShortDesc    string
	Description  string
	MainCategory string
	Pricing      string
	WebsiteURL   string
	Hidden       bool
}

// AdminUpdateVendorParams are the flat inputs to admin_update_vendor.
type AdminUpdateVendorParams struct {
	VendorID     string
	Name         string
	Description  string
	WebsiteURL   string
	CompanySize  string
	Headquarters string
}
