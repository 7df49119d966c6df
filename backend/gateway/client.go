package gateway

import (
	"context"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"hrmarket/backend/models"
	"hrmarket/backend/utils"
)

// Client invokes the marketplace stored procedures over the database
// connection. It is the only place SQL appears in this codebase.
type Client struct {
	DB  *gorm.DB
	Log *logrus.Logger
}

func NewClient(db *gorm.DB, log *logrus.Logger) *Client {
	return &Client{DB: db, Log: log}
}

var _ Gateway = (*Client)(nil)

// call wraps Exec-style procedures: error in, error out, tagged with the
// procedure name.
func (g *Client) call(ctx context.Context, proc string, sql string, args ...interface{}) error {
	if err := g.DB.WithContext(ctx).Exec(sql, args...).Error; err != nil {
		utils.LogError(g.Log, "gateway", proc, args, err)
		return fmt.Errorf("%s: %w", proc, err)
	}
	return nil
}

func scanRows[T any](ctx context.Context, g *Client, proc string, sql string, args ...interface{}) ([]T, error) {
	var rows []T
	if err := g.DB.WithContext(ctx).Raw(sql, args...).Scan(&rows).Error; err != nil {
		utils.LogError(g.Log, "gateway", proc, args, err)
		return nil, fmt.Errorf("%s: %w", proc, err)
	}
	return rows, nil
}

// splitList turns the procedures' comma-separated text columns into slices.
func splitList(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// Catalog

func (g *Client) GetProductCards(ctx context.Context, search, category, tier string, offset, limit int) ([]models.ProductCard, error) {
	return scanRows[models.ProductCard](ctx, g, "get_product_cards",
		"SELECT * FROM get_product_cards(?, ?, ?, ?, ?)", search, category, tier, offset, limit)
}

// GetProductDetails returns (nil, nil) when the ID does not resolve;
// not-found is handled by omission on this path.
func (g *Client) GetProductDetails(ctx context.Context, productID string) (*models.ProductDetails, error) {
	rows, err := scanRows[models.ProductDetails](ctx, g, "get_product_details",
		"SELECT * FROM get_product_details(?)", productID)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	d := rows[0]
	d.Categories = splitList(d.CategoriesRaw)
	d.Languages = splitList(d.LanguagesRaw)
	return &d, nil
}

func (g *Client) GetSimilarProducts(ctx context.Context, productID string, limit int) ([]models.ProductCard, error) {
	return scanRows[models.ProductCard](ctx, g, "get_similar_products",
		"SELECT * FROM get_similar_products(?, ?)", productID, limit)
}

func (g *Client) GetCategories(ctx context.Context) ([]models.Category, error) {
	return scanRows[models.Category](ctx, g, "get_categories", "SELECT * FROM get_categories()")
}

func (g *Client) GetVendorCards(ctx context.Context, search string, offset, limit int) ([]models.VendorCard, error) {
	return scanRows[models.VendorCard](ctx, g, "get_vendor_cards",
		"SELECT * FROM get_vendor_cards(?, ?, ?)", search, offset, limit)
}

func (g *Client) GetVendorProfile(ctx context.Context, vendorID string) (*models.VendorProfile, error) {
	rows, err := scanRows[models.VendorProfile](ctx, g, "get_vendor_profile",
		"SELECT * FROM get_vendor_profile(?)", vendorID)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return &rows[0], nil
}

func (g *Client) GetVendorProducts(ctx context.Context, vendorID string) ([]models.ProductCard, error) {
	return scanRows[models.ProductCard](ctx, g, "get_vendor_products",
		"SELECT * FROM get_vendor_products(?)", vendorID)
}

// Reviews

func (g *Client) GetProductReviews(ctx context.Context, productID, sort string, offset, limit int, viewerID string) ([]models.ReviewRecord, error) {
	return scanRows[models.ReviewRecord](ctx, g, "get_product_reviews",
		"SELECT * FROM get_product_reviews(?, ?, ?, ?, ?)", productID, sort, offset, limit, viewerID)
}

func (g *Client) GetReviewReplies(ctx context.Context, reviewID string) ([]models.ReplyRecord, error) {
	return scanRows[models.ReplyRecord](ctx, g, "get_review_replies",
		"SELECT * FROM get_review_replies(?)", reviewID)
}

func (g *Client) GetMyReview(ctx context.Context, productID, userID string) (*models.ReviewRecord, error) {
	rows, err := scanRows[models.ReviewRecord](ctx, g, "get_my_review",
		"SELECT * FROM get_my_review(?, ?)", productID, userID)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return &rows[0], nil
}

func (g *Client) SubmitReview(ctx context.Context, p SubmitReviewParams) error {
	return g.call(ctx, "submit_review",
		"SELECT submit_review(?, ?, ?, ?, ?, ?, ?, ?)",
		p.ProductID, p.UserID, p.Rating, p.Title, p.Body, p.ReviewerName, p.ReviewerRole, p.ReviewerCompany)
}

func (g *Client) EditMyReview(ctx context.Context, p EditReviewParams) error {
	return g.call(ctx, "edit_my_review",
		"SELECT edit_my_review(?, ?, ?, ?, ?)", p.ReviewID, p.UserID, p.Rating, p.Title, p.Body)
}

func (g *Client) SubmitReply(ctx context.Context, reviewID, body, replierName, replierRole string) error {
	return g.call(ctx, "submit_reply",
		"SELECT submit_reply(?, ?, ?, ?)", reviewID, body, replierName, replierRole)
}

func (g *Client) ToggleReviewVote(ctx context.Context, reviewID, userID string, isHelpful bool) error {
	return g.call(ctx, "toggle_review_vote",
		"SELECT toggle_review_vote(?, ?, ?)", reviewID, userID, isHelpful)
}

// Review moderation

func (g *Client) AdminGetReviewsForProduct(ctx context.Context, productID, tab string) ([]models.AdminReviewQueueItem, error) {
	return scanRows[models.AdminReviewQueueItem](ctx, g, "admin_get_reviews_for_product",
		"SELECT * FROM admin_get_reviews_for_product(?, ?)", productID, tab)
}

func (g *Client) AdminApproveReview(ctx context.Context, reviewID string) error {
	return g.call(ctx, "admin_approve_review", "SELECT admin_approve_review(?)", reviewID)
}

func (g *Client) AdminRejectReview(ctx context.Context, reviewID, adminNote string) error {
	return g.call(ctx, "admin_reject_review", "SELECT admin_reject_review(?, ?)", reviewID, adminNote)
}

func (g *Client) AdminDeleteReview(ctx context.Context, reviewID string) error {
	return g.call(ctx, "admin_delete_review", "SELECT admin_delete_review(?)", reviewID)
}

func (g *Client) AdminApproveReply(ctx context.Context, replyID string) error {
	return g.call(ctx, "admin_approve_reply", "SELECT admin_approve_reply(?)", replyID)
}

func (g *Client) AdminRejectReply(ctx context.Context, replyID, adminNote string) error {
	return g.call(ctx, "admin_reject_reply", "SELECT admin_reject_reply(?, ?)", replyID, adminNote)
}

func (g *Client) AdminDeleteReply(ctx context.Context, replyID string) error {
	return g.call(ctx, "admin_delete_reply", "SELECT admin_delete_reply(?)", replyID)
}

// Admin management

func (g *Client) AdminGetProducts(ctx context.Context, offset, limit int) ([]models.AdminProduct, error) {
	return scanRows[models.AdminProduct](ctx, g, "admin_get_products",
		"SELECT * FROM admin_get_products(?, ?)", offset, limit)
}

func (g *Client) AdminUpdateProduct(ctx context.Context, p AdminUpdateProductParams) error {
	return g.call(ctx, "admin_update_product",
		"SELECT admin_update_product(?, ?, ?, ?, ?, ?, ?, ?)",
		p.ProductID, p.ProductName, p.ShortDesc, p.Description, p.MainCategory, p.Pricing, p.WebsiteURL, p.Hidden)
}

func (g *Client) AdminSetProductTier(ctx context.Context, productID, tier string) error {
	return g.call(ctx, "admin_set_product_tier", "SELECT admin_set_product_tier(?, ?)", productID, tier)
}

func (g *Client) AdminGetVendors(ctx context.Context, offset, limit int) ([]models.VendorProfile, error) {
	return scanRows[models.VendorProfile](ctx, g, "admin_get_vendors",
		"SELECT * FROM admin_get_vendors(?, ?)", offset, limit)
}

func (g *Client) AdminUpdateVendor(ctx context.Context, p AdminUpdateVendorParams) error {
	return g.call(ctx, "admin_update_vendor",
		"SELECT admin_update_vendor(?, ?, ?, ?, ?, ?)",
		p.VendorID, p.Name, p.Description, p.WebsiteURL, p.CompanySize, p.Headquarters)
}

func (g *Client) AdminSetVendorTier(ctx context.Context, vendorID, tier string) error {
	return g.call(ctx, "admin_set_vendor_tier", "SELECT admin_set_vendor_tier(?, ?)", vendorID, tier)
}

func (g *Client) AdminGetUsers(ctx context.Context, offset, limit int) ([]models.User, error) {
	return scanRows[models.User](ctx, g, "admin_get_users",
		"SELECT * FROM admin_get_users(?, ?)", offset, limit)
}

func (g *Client) AdminSearchUsers(ctx context.Context, query string, offset, limit int) ([]models.User, error) {
	return scanRows[models.User](ctx, g, "admin_search_users",
		"SELECT * FROM admin_search_users(?, ?, ?)", query, offset, limit)
}

func (g *Client) AdminSetUserRole(ctx context.Context, userID, role string) error {
	return g.call(ctx, "admin_set_user_role", "SELECT admin_set_user_role(?, ?)", userID, role)
}

func (g *Client) AdminGetOwnershipClaims(ctx context.Context, status string) ([]models.OwnershipClaim, error) {
	return scanRows[models.OwnershipClaim](ctx, g, "admin_get_ownership_claims",
		"SELECT * FROM admin_get_ownership_claims(?)", status)
}

func (g *Client) AdminResolveOwnershipClaim(ctx context.Context, claimID string, approve bool, note string) error {
	return g.call(ctx, "admin_resolve_ownership_claim",
		"SELECT admin_resolve_ownership_claim(?, ?, ?)", claimID, approve, note)
}

func (g *Client) AdminAssignVendorOwner(ctx context.Context, vendorID, userID string) error {
	return g.call(ctx, "admin_assign_vendor_owner", "SELECT admin_assign_vendor_owner(?, ?)", vendorID, userID)
}

// Ownership & accounts

func (g *Client) SubmitOwnershipClaim(ctx context.Context, productID, userID, workEmail, message string) error {
	return g.call(ctx, "submit_ownership_claim",
		"SELECT submit_ownership_claim(?, ?, ?, ?)", productID, userID, workEmail, message)
}

func (g *Client) GetUser(ctx context.Context, userID string) (*models.User, error) {
	rows, err := scanRows[models.User](ctx, g, "get_user", "SELECT * FROM get_user(?)", userID)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return &rows[0], nil
}

func (g *Client) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	rows, err := scanRows[models.User](ctx, g, "get_user_by_email",
		"SELECT * FROM get_user_by_email(?)", email)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return &rows[0], nil
}

func (g *Client) CreateUser(ctx context.Context, u models.User) (*models.User, error) {
	rows, err := scanRows[models.User](ctx, g, "create_user",
		"SELECT * FROM create_user(?, ?, ?, ?)", u.Email, u.FullName, u.Role, u.PasswordHash)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("create_user: no row returned")
	}
	return &rows[0], nil
}

func (g *Client) UpdateUserProfile(ctx context.Context, userID, fullName string) error {
	return g.call(ctx, "update_user_profile", "SELECT update_user_profile(?, ?)", userID, fullName)
}
