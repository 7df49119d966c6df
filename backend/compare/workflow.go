package compare

import (
	"context"

	"hrmarket/backend/async"
	"hrmarket/backend/gateway"
	"hrmarket/backend/models"
)

// MaxSlots is the comparison capacity.
const MaxSlots = 5

// Workflow holds the ordered comparison slots. Order reflects add sequence;
// removal filters without reordering the remainder.
type Workflow struct {
	slots []models.ProductDetails
}

func NewWorkflow() *Workflow {
	return &Workflow{}
}

// Resolve rebuilds a workflow from decoded URL IDs. Lookups fan out in
// parallel; an ID that fails to resolve is dropped without surfacing an
// error, so a stale shared link simply yields fewer slots.
func Resolve(ctx context.Context, gw gateway.Gateway, ids []string) *Workflow {
	if len(ids) > MaxSlots {
		ids = ids[:MaxSlots]
	}
	resolved := async.Settle(ctx, len(ids), func(ctx context.Context, i int) (*models.ProductDetails, error) {
		return gw.GetProductDetails(ctx, ids[i])
	})

	w := NewWorkflow()
	for _, d := range resolved {
		if d != nil {
			w.Add(*d)
		}
	}
	return w
}

// Add appends a product slot. It is a no-op when the workflow is full or the
// product already occupies a slot; the caller gets false and nothing changes.
func (w *Workflow) Add(p models.ProductDetails) bool {
	if len(w.slots) >= MaxSlots || w.Has(p.ProductID) {
		return false
	}
	w.slots = append(w.slots, p)
	return true
}

// Remove filters the slot with the given ID out of the sequence.
func (w *Workflow) Remove(id string) bool {
	for i, p := range w.slots {
		if p.ProductID == id {
			w.slots = append(w.slots[:i], w.slots[i+1:]...)
			return true
		}
	}
	return false
}

func (w *Workflow) Has(id string) bool {
	for _, p := range w.slots {
		if p.ProductID == id {
			return true
		}
	}
	return false
}

func (w *Workflow) Len() int {
	return len(w.slots)
}

// Products returns the occupied slots in add order.
func (w *Workflow) Products() []models.ProductDetails {
	out := make([]models.ProductDetails, len(w.slots))
	copy(out, w.slots)
	return out
}

// IDs returns the ordered product IDs currently held.
func (w *Workflow) IDs() []string {
	ids := make([]string, len(w.slots))
	for i, p := range w.slots {
		ids[i] = p.ProductID
	}
	return ids
}

// Query serializes the current state into the shareable products parameter.
func (w *Workflow) Query() string {
	return EncodeProducts(w.IDs())
}

// TableVisible is the hard guard for rendering the diff table: at least two
// occupied slots and at least one selected feature.
func TableVisible(slotCount, featureCount int) bool {
	return slotCount >= 2 && featureCount >= 1
}
