// Package gatewaytest provides a function-field fake of the gateway for
// handler and workflow tests. Unset methods return empty results.
package gatewaytest

import (
	"context"

	"hrmarket/backend/gateway"
	"hrmarket/backend/models"
)

type Fake struct {
	GetProductCardsFn    func(ctx context.Context, search, category, tier string, offset, limit int) ([]models.ProductCard, error)
	GetProductDetailsFn  func(ctx context.Context, productID string) (*models.ProductDetails, error)
	GetSimilarProductsFn func(ctx context.Context, productID string, limit int) ([]models.ProductCard, error)
	GetCategoriesFn      func(ctx context.Context) ([]models.Category, error)
	GetVendorCardsFn     func(ctx context.Context, search string, offset, limit int) ([]models.VendorCard, error)
	GetVendorProfileFn   func(ctx context.Context, vendorID string) (*models.VendorProfile, error)
	GetVendorProductsFn  func(ctx context.Context, vendorID string) ([]models.ProductCard, error)

	GetProductReviewsFn func(ctx context.Context, productID, sort string, offset, limit int, viewerID string) ([]models.ReviewRecord, error)
	GetReviewRepliesFn  func(ctx context.Context, reviewID string) ([]models.ReplyRecord, error)
	GetMyReviewFn       func(ctx context.Context, productID, userID string) (*models.ReviewRecord, error)
	SubmitReviewFn      func(ctx context.Context, p gateway.SubmitReviewParams) error
	EditMyReviewFn      func(ctx context.Context, p gateway.EditReviewParams) error
	SubmitReplyFn       func(ctx context.Context, reviewID, body, replierName, replierRole string) error
	ToggleReviewVoteFn  func(ctx context.Context, reviewID, userID string, isHelpful bool) error

	AdminGetReviewsForProductFn func(ctx context.Context, productID, tab string) ([]models.AdminReviewQueueItem, error)
	AdminApproveReviewFn        func(ctx context.Context, reviewID string) error
	AdminRejectReviewFn         func(ctx context.Context, reviewID, adminNote string) error
	AdminDeleteReviewFn         func(ctx context.Context, reviewID string) error
	AdminApproveReplyFn         func(ctx context.Context, replyID string) error
	AdminRejectReplyFn          func(ctx context.Context, replyID, adminNote string) error
	AdminDeleteReplyFn          func(ctx context.Context, replyID string) error

	AdminGetProductsFn           func(ctx context.Context, offset, limit int) ([]models.AdminProduct, error)
	AdminUpdateProductFn         func(ctx context.Context, p gateway.AdminUpdateProductParams) error
	AdminSetProductTierFn        func(ctx context.Context, productID, tier string) error
	AdminGetVendorsFn            func(ctx context.Context, offset, limit int) ([]models.VendorProfile, error)
	AdminUpdateVendorFn          func(ctx context.Context, p gateway.AdminUpdateVendorParams) error
	AdminSetVendorTierFn         func(ctx context.Context, vendorID, tier string) error
	AdminGetUsersFn              func(ctx context.Context, offset, limit int) ([]models.User, error)
	AdminSearchUsersFn           func(ctx context.Context, query string, offset, limit int) ([]models.User, error)
	AdminSetUserRoleFn           func(ctx context.Context, userID, role string) error
	AdminGetOwnershipClaimsFn    func(ctx context.Context, status string) ([]models.OwnershipClaim, error)
	AdminResolveOwnershipClaimFn func(ctx context.Context, claimID string, approve bool, note string) error
	AdminAssignVendorOwnerFn     func(ctx context.Context, vendorID, userID string) error

	SubmitOwnershipClaimFn func(ctx context.Context, productID, userID, workEmail, message string) error
	GetUserFn              func(ctx context.Context, userID string) (*models.User, error)
	GetUserByEmailFn       func(ctx context.Context, email string) (*models.User, error)
	CreateUserFn           func(ctx context.Context, u models.User) (*models.User, error)
	UpdateUserProfileFn    func(ctx context.Context, userID, fullName string) error
}

var _ gateway.Gateway = (*Fake)(nil)

func (f *Fake) GetProductCards(ctx context.Context, search, category, tier string, offset, limit int) ([]models.ProductCard, error) {
	if f.GetProductCardsFn == nil {
		return nil, nil
	}
	return f.GetProductCardsFn(ctx, search, category, tier, offset, limit)
}

func (f *Fake) GetProductDetails(ctx context.Context, productID string) (*models.ProductDetails, error) {
	if f.GetProductDetailsFn == nil {
		return nil, nil
	}
	return f.GetProductDetailsFn(ctx, productID)
}

func (f *Fake) GetSimilarProducts(ctx context.Context, productID string, limit int) ([]models.ProductCard, error) {
	if f.GetSimilarProductsFn == nil {
		return nil, nil
	}
	return f.GetSimilarProductsFn(ctx, productID, limit)
}

func (f *Fake) GetCategories(ctx context.Context) ([]models.Category, error) {
	if f.GetCategoriesFn == nil {
		return nil, nil
	}
	return f.GetCategoriesFn(ctx)
}

func (f *Fake) GetVendorCards(ctx context.Context, search string, offset, limit int) ([]models.VendorCard, error) {
	if f.GetVendorCardsFn == nil {
		return nil, nil
	}
	return f.GetVendorCardsFn(ctx, search, offset, limit)
}

func (f *Fake) GetVendorProfile(ctx context.Context, vendorID string) (*models.VendorProfile, error) {
	if f.GetVendorProfileFn == nil {
		return nil, nil
	}
	return f.GetVendorProfileFn(ctx, vendorID)
}

func (f *Fake) GetVendorProducts(ctx context.Context, vendorID string) ([]models.ProductCard, error) {
	if f.GetVendorProductsFn == nil {
		return nil, nil
	}
	return f.GetVendorProductsFn(ctx, vendorID)
}

func (f *Fake) GetProductReviews(ctx context.Context, productID, sort string, offset, limit int, viewerID string) ([]models.ReviewRecord, error) {
	if f.GetProductReviewsFn == nil {
		return nil, nil
	}
	return f.GetProductReviewsFn(ctx, productID, sort, offset, limit, viewerID)
}

func (f *Fake) GetReviewReplies(ctx context.Context, reviewID string) ([]models.ReplyRecord, error) {
	if f.GetReviewRepliesFn == nil {
		return nil, nil
	}
	return f.GetReviewRepliesFn(ctx, reviewID)
}

func (f *Fake) GetMyReview(ctx context.Context, productID, userID string) (*models.ReviewRecord, error) {
	if f.GetMyReviewFn == nil {
		return nil, nil
	}
	return f.GetMyReviewFn(ctx, productID, userID)
}

func (f *Fake) SubmitReview(ctx context.Context, p gateway.SubmitReviewParams) error {
	if f.SubmitReviewFn == nil {
		return nil
	}
	return f.SubmitReviewFn(ctx, p)
}

func (f *Fake) EditMyReview(ctx context.Context, p gateway.EditReviewParams) error {
	if f.EditMyReviewFn == nil {
		return nil
	}
	return f.EditMyReviewFn(ctx, p)
}

func (f *Fake) SubmitReply(ctx context.Context, reviewID, body, replierName, replierRole string) error {
	if f.SubmitReplyFn == nil {
		return nil
	}
	return f.SubmitReplyFn(ctx, reviewID, body, replierName, replierRole)
}

func (f *Fake) ToggleReviewVote(ctx context.Context, reviewID, userID string, isHelpful bool) error {
	if f.ToggleReviewVoteFn == nil {
		return nil
	}
	return f.ToggleReviewVoteFn(ctx, reviewID, userID, isHelpful)
}

func (f *Fake) AdminGetReviewsForProduct(ctx context.Context, productID, tab string) ([]models.AdminReviewQueueItem, error) {
	if f.AdminGetReviewsForProductFn == nil {
		return nil, nil
	}
	return f.AdminGetReviewsForProductFn(ctx, productID, tab)
}

func (f *Fake) AdminApproveReview(ctx context.Context, reviewID string) error {
	if f.AdminApproveReviewFn == nil {
		return nil
	}
	return f.AdminApproveReviewFn(ctx, reviewID)
}

func (f *Fake) AdminRejectReview(ctx context.Context, reviewID, adminNote string) error {
	if f.AdminRejectReviewFn == nil {
		return nil
	}
	return f.AdminRejectReviewFn(ctx, reviewID, adminNote)
}

func (f *Fake) AdminDeleteReview(ctx context.Context, reviewID string) error {
	if f.AdminDeleteReviewFn == nil {
		return nil
	}
	return f.AdminDeleteReviewFn(ctx, reviewID)
}

func (f *Fake) AdminApproveReply(ctx context.Context, replyID string) error {
	if f.AdminApproveReplyFn == nil {
		return nil
	}
	return f.AdminApproveReplyFn(ctx, replyID)
}

func (f *Fake) AdminRejectReply(ctx context.Context, replyID, adminNote string) error {
	if f.AdminRejectReplyFn == nil {
		return nil
	}
	return f.AdminRejectReplyFn(ctx, replyID, adminNote)
}

func (f *Fake) AdminDeleteReply(ctx context.Context, replyID string) error {
	if f.AdminDeleteReplyFn == nil {
		return nil
	}
	return f.AdminDeleteReplyFn(ctx, replyID)
}

func (f *Fake) AdminGetProducts(ctx context.Context, offset, limit int) ([]models.AdminProduct, error) {
	if f.AdminGetProductsFn == nil {
		return nil, nil
	}
	return f.AdminGetProductsFn(ctx, offset, limit)
}

func (f *Fake) AdminUpdateProduct(ctx context.Context, p gateway.AdminUpdateProductParams) error {
	if f.AdminUpdateProductFn == nil {
		return nil
	}
	return f.AdminUpdateProductFn(ctx, p)
}

func (f *Fake) AdminSetProductTier(ctx context.Context, productID, tier string) error {
	if f.AdminSetProductTierFn == nil {
		return nil
	}
	return f.AdminSetProductTierFn(ctx, productID, tier)
}

func (f *Fake) AdminGetVendors(ctx context.Context, offset, limit int) ([]models.VendorProfile, error) {
	if f.AdminGetVendorsFn == nil {
		return nil, nil
	}
	return f.AdminGetVendorsFn(ctx, offset, limit)
}

func (f *Fake) AdminUpdateVendor(ctx context.Context, p gateway.AdminUpdateVendorParams) error {
	if f.AdminUpdateVendorFn == nil {
		return nil
	}
	return f.AdminUpdateVendorFn(ctx, p)
}

func (f *Fake) AdminSetVendorTier(ctx context.Context, vendorID, tier string) error {
	if f.AdminSetVendorTierFn == nil {
		return nil
	}
	return f.AdminSetVendorTierFn(ctx, vendorID, tier)
}

func (f *Fake) AdminGetUsers(ctx context.Context, offset, limit int) ([]models.User, error) {
	if f.AdminGetUsersFn == nil {
		return nil, nil
	}
	return f.AdminGetUsersFn(ctx, offset, limit)
}

func (f *Fake) AdminSearchUsers(ctx context.Context, query string, offset, limit int) ([]models.User, error) {
	if f.AdminSearchUsersFn == nil {
		return nil, nil
	}
	return f.AdminSearchUsersFn(ctx, query, offset, limit)
}

func (f *Fake) AdminSetUserRole(ctx context.Context, userID, role string) error {
	if f.AdminSetUserRoleFn == nil {
		return nil
	}
	return f.AdminSetUserRoleFn(ctx, userID, role)
}

func (f *Fake) AdminGetOwnershipClaims(ctx context.Context, status string) ([]models.OwnershipClaim, error) {
	if f.AdminGetOwnershipClaimsFn == nil {
		return nil, nil
	}
	return f.AdminGetOwnershipClaimsFn(ctx, status)
}

func (f *Fake) AdminResolveOwnershipClaim(ctx context.Context, claimID string, approve bool, note string) error {
	if f.AdminResolveOwnershipClaimFn == nil {
		return nil
	}
	return f.AdminResolveOwnershipClaimFn(ctx, claimID, approve, note)
}

func (f *Fake) AdminAssignVendorOwner(ctx context.Context, vendorID, userID string) error {
	if f.AdminAssignVendorOwnerFn == nil {
		return nil
	}
	return f.AdminAssignVendorOwnerFn(ctx, vendorID, userID)
}

func (f *Fake) SubmitOwnershipClaim(ctx context.Context, productID, userID, workEmail, message string) error {
	if f.SubmitOwnershipClaimFn == nil {
		return nil
	}
	return f.SubmitOwnershipClaimFn(ctx, productID, userID, workEmail, message)
}

func (f *Fake) GetUser(ctx context.Context, userID string) (*models.User, error) {
	if f.GetUserFn == nil {
		return nil, nil
	}
	return f.GetUserFn(ctx, userID)
}

func (f *Fake) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	if f.GetUserByEmailFn == nil {
		return nil, nil
	}
	return f.GetUserByEmailFn(ctx, email)
}

func (f *Fake) CreateUser(ctx context.Context, u models.User) (*models.User, error) {
	if f.CreateUserFn == nil {
		return &u, nil
	}
	return f.CreateUserFn(ctx, u)
}

func (f *Fake) UpdateUserProfile(ctx context.Context, userID, fullName string) error {
	if f.UpdateUserProfileFn == nil {
		return nil
	}
	return f.UpdateUserProfileFn(ctx, userID, fullName)
}
