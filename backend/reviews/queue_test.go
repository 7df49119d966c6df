package reviews

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"hrmarket/backend/models"
)

func review(id, status string) models.AdminReviewQueueItem {
	return models.AdminReviewQueueItem{ReviewID: id, Status: status}
}

func reply(id, parent, status string) models.AdminReviewQueueItem {
	return models.AdminReviewQueueItem{ReviewID: id, ParentReviewID: &parent, Status: status}
}

func nodeIDs(nodes []QueueNode) []string {
	out := make([]string, len(nodes))
	for i, n := range nodes {
		out[i] = n.ReviewID
	}
	return out
}

func replyIDs(n QueueNode) []string {
	out := make([]string, len(n.Replies))
	for i, r := range n.Replies {
		out[i] = r.ReviewID
	}
	return out
}

func TestComposeQueuePendingTab(t *testing.T) {
	items := []models.AdminReviewQueueItem{
		review("r1", models.StatusPending),
		review("r2", models.StatusApproved), // hosts a pending reply
		reply("p1", "r2", models.StatusPending),
		reply("p2", "r2", models.StatusApproved), // filtered out on this tab
		review("r3", models.StatusApproved),      // nothing pending beneath it
		review("r4", models.StatusRejected),
	}

	nodes := ComposeQueue(items, TabPending)

	// r1 is pending itself; r2 appears only to host its pending reply
	assert.Equal(t, []string{"r1", "r2"}, nodeIDs(nodes))
	assert.Empty(t, nodes[0].Replies)
	assert.Equal(t, []string{"p1"}, replyIDs(nodes[1]))
}

func TestComposeQueuePendingEditIsNotAPendingTopLevelItem(t *testing.T) {
	edited := review("r1", models.StatusApproved)
	edited.HasPendingEdit = true
	pending := 4
	edited.PendingRating = &pending

	items := []models.AdminReviewQueueItem{edited}

	// the edit awaits moderation, but the review itself is approved:
	// absent from the pending tab, present on the approved tab with its
	// shadow fields intact for diffing
	assert.Empty(t, ComposeQueue(items, TabPending))

	approved := ComposeQueue(items, TabApproved)
	assert.Equal(t, []string{"r1"}, nodeIDs(approved))
	assert.True(t, approved[0].HasPendingEdit)
	assert.Equal(t, 4, *approved[0].PendingRating)
}

func TestComposeQueueApprovedTabNestsAllReplies(t *testing.T) {
	items := []models.AdminReviewQueueItem{
		review("r1", models.StatusApproved),
		reply("p1", "r1", models.StatusPending),
		reply("p2", "r1", models.StatusApproved),
		reply("p3", "r1", models.StatusRejected),
		review("r2", models.StatusPending),
	}

	nodes := ComposeQueue(items, TabApproved)

	assert.Equal(t, []string{"r1"}, nodeIDs(nodes))
	// replies nest regardless of their own status
	assert.Equal(t, []string{"p1", "p2", "p3"}, replyIDs(nodes[0]))
}

func TestComposeQueueRejectedTabHasNoNesting(t *testing.T) {
	items := []models.AdminReviewQueueItem{
		review("r1", models.StatusRejected),
		reply("p1", "r1", models.StatusRejected),
		reply("p2", "r1", models.StatusApproved),
		review("r2", models.StatusApproved),
	}

	nodes := ComposeQueue(items, TabRejected)

	assert.Equal(t, []string{"r1"}, nodeIDs(nodes))
	assert.Empty(t, nodes[0].Replies)
}

func TestComposeQueuePreservesInputOrder(t *testing.T) {
	items := []models.AdminReviewQueueItem{
		review("r3", models.StatusPending),
		review("r1", models.StatusPending),
		review("r2", models.StatusPending),
	}
	assert.Equal(t, []string{"r3", "r1", "r2"}, nodeIDs(ComposeQueue(items, TabPending)))
}

func TestComposeQueueEmptyInput(t *testing.T) {
	assert.Empty(t, ComposeQueue(nil, TabPending))
	assert.Empty(t, ComposeQueue([]models.AdminReviewQueueItem{}, TabApproved))
}
