package models

import "time"

// Review and reply moderation statuses.
const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

// Review sort orders accepted by get_product_reviews.
const (
	SortHelpful = "helpful"
	SortNewest  = "newest"
	SortOldest  = "oldest"
	SortHighest = "highest"
	SortLowest  = "lowest"
)

// ReviewRecord is a public review row. MyVote is tri-state: nil when the
// caller has not voted on this review.
type ReviewRecord struct {
	ReviewID        string        `gorm:"column:review_id" json:"review_id"`
	ProductID       string        `gorm:"column:product_id" json:"product_id"`
	UserID          string        `gorm:"column:user_id" json:"user_id"`
	Rating          int           `gorm:"column:rating" json:"rating"`
	Title           string        `gorm:"column:title" json:"title,omitempty"`
	Body            string        `gorm:"column:body" json:"body,omitempty"`
	ReviewerName    string        `gorm:"column:reviewer_name" json:"reviewer_name"`
	ReviewerRole    string        `gorm:"column:reviewer_role" json:"reviewer_role,omitempty"`
	ReviewerCompany string        `gorm:"column:reviewer_company" json:"reviewer_company,omitempty"`
	Status          string        `gorm:"column:status" json:"status"`
	HasPendingEdit  bool          `gorm:"column:has_pending_edit" json:"has_pending_edit"`
	HelpfulCount    int           `gorm:"column:helpful_count" json:"helpful_count"`
	NotHelpfulCount int           `gorm:"column:not_helpful_count" json:"not_helpful_count"`
	MyVote          *bool         `gorm:"column:my_vote" json:"my_vote"`
	CreatedAt       time.Time     `gorm:"column:created_at" json:"created_at"`
	Replies         []ReplyRecord `gorm:"-" json:"replies"`
}

// ReplyRecord is a reply row. ReviewID is the reply's own id; the non-null
// ParentReviewID is what distinguishes it from a top-level review.
type ReplyRecord struct {
	ReviewID       string    `gorm:"column:review_id" json:"review_id"`
	ParentReviewID string    `gorm:"column:parent_review_id" json:"parent_review_id"`
	ReviewerName   string    `gorm:"column:reviewer_name" json:"reviewer_name"`
	ReviewerRole   string    `gorm:"column:reviewer_role" json:"reviewer_role,omitempty"`
	Body           string    `gorm:"column:body" json:"body"`
	Status         string    `gorm:"column:status" json:"status"`
	CreatedAt      time.Time `gorm:"column:created_at" json:"created_at"`
}

// AdminReviewQueueItem is the moderation-view superset of review and reply
// rows. Top-level reviews have a nil ParentReviewID. A review whose edit
// awaits moderation carries the shadow pending_* fields while the live fields
// keep their last-approved values.
type AdminReviewQueueItem struct {
	ReviewID        string    `gorm:"column:review_id" json:"review_id"`
	ParentReviewID  *string   `gorm:"column:parent_review_id" json:"parent_review_id"`
	ProductID       string    `gorm:"column:product_id" json:"product_id"`
	UserID          string    `gorm:"column:user_id" json:"user_id"`
	Rating          int       `gorm:"column:rating" json:"rating"`
	Title           string    `gorm:"column:title" json:"title,omitempty"`
	Body            string    `gorm:"column:body" json:"body,omitempty"`
	ReviewerName    string    `gorm:"column:reviewer_name" json:"reviewer_name"`
	ReviewerRole    string    `gorm:"column:reviewer_role" json:"reviewer_role,omitempty"`
	ReviewerCompany string    `gorm:"column:reviewer_company" json:"reviewer_company,omitempty"`
	Status          string    `gorm:"column:status" json:"status"`
	HasPendingEdit  bool      `gorm:"column:has_pending_edit" json:"has_pending_edit"`
	PendingRating   *int      `gorm:"column:pending_rating" json:"pending_rating,omitempty"`
	PendingTitle    *string   `gorm:"column:pending_title" json:"pending_title,omitempty"`
	PendingBody     *string   `gorm:"column:pending_body" json:"pending_body,omitempty"`
	AdminNote       string    `gorm:"column:admin_note" json:"admin_note,omitempty"`
	HelpfulCount    int       `gorm:"column:helpful_count" json:"helpful_count"`
	NotHelpfulCount int       `gorm:"column:not_helpful_count" json:"not_helpful_count"`
	CreatedAt       time.Time `gorm:"column:created_at" json:"created_at"`
}

// IsReply reports whether the item is nested under a parent review.
func (i AdminReviewQueueItem) IsReply() bool {
	return i.ParentReviewID != nil && *i.ParentReviewID != ""
}
