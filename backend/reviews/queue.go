package reviews

import "hrmarket/backend/models"

// Moderation queue tabs.
const (
	TabPending  = "pending"
	TabApproved = "approved"
	TabRejected = "rejected"
)

// ValidTab reports whether the tab name is one the moderation view knows.
func ValidTab(tab string) bool {
	return tab == TabPending || tab == TabApproved || tab == TabRejected
}

// QueueNode is one top-level review in the moderation view with the replies
// the active tab lets through nested beneath it.
type QueueNode struct {
	models.AdminReviewQueueItem
	Replies []models.AdminReviewQueueItem `json:"replies"`
}

// ComposeQueue partitions a flat admin listing into the tab's tree. The
// nesting filter differs per tab and misrepresenting it would show admins the
// wrong moderation state, so the rules are spelled out here:
//
//   - pending: top-level pending reviews, plus any parent (whatever its own
//     status) that carries pending replies — with only those pending replies
//     nested. An approved review whose edit awaits moderation is NOT a
//     pending top-level item; its diff is handled on the approved tab.
//   - approved: approved top-level reviews with ALL their replies nested,
//     regardless of reply status.
//   - rejected: rejected top-level reviews only, nothing nested.
//
// Input order is preserved for both parents and replies.
func ComposeQueue(items []models.AdminReviewQueueItem, tab string) []QueueNode {
	repliesByParent := make(map[string][]models.AdminReviewQueueItem)
	var topLevel []models.AdminReviewQueueItem
	for _, item := range items {
		if item.IsReply() {
			parent := *item.ParentReviewID
			repliesByParent[parent] = append(repliesByParent[parent], item)
		} else {
			topLevel = append(topLevel, item)
		}
	}

	var nodes []QueueNode
	for _, review := range topLevel {
		replies := repliesByParent[review.ReviewID]

		switch tab {
		case TabPending:
			var pendingReplies []models.AdminReviewQueueItem
			for _, r := range replies {
				if r.Status == models.StatusPending {
					pendingReplies = append(pendingReplies, r)
				}
			}
			if review.Status != models.StatusPending && len(pendingReplies) == 0 {
				continue
			}
			nodes = append(nodes, QueueNode{AdminReviewQueueItem: review, Replies: pendingReplies})

		case TabApproved:
			if review.Status != models.StatusApproved {
				continue
			}
			nodes = append(nodes, QueueNode{AdminReviewQueueItem: review, Replies: replies})

		case TabRejected:
			if review.Status != models.StatusRejected {
				continue
			}
			nodes = append(nodes, QueueNode{AdminReviewQueueItem: review})
		}
	}
	return nodes
}
