package search

import (
	"context"

	"hrmarket/backend/async"
	"hrmarket/backend/gateway"
	"hrmarket/backend/models"
)

const maxSuggestionSeeds = 2

// Suggestions builds the "suggested" rail next to the comparison picker:
// similar products for up to the first two occupied slots, fetched in
// parallel, deduplicated, and filtered against the exclusion set. A failed
// branch contributes nothing; the rail never errors.
func Suggestions(ctx context.Context, gw gateway.Gateway, seedIDs []string, exclude []string, limit int) []models.ProductCard {
	if len(seedIDs) > maxSuggestionSeeds {
		seedIDs = seedIDs[:maxSuggestionSeeds]
	}
	if len(seedIDs) == 0 {
		return nil
	}

	rails := async.Settle(ctx, len(seedIDs), func(ctx context.Context, i int) ([]models.ProductCard, error) {
		return gw.GetSimilarProducts(ctx, seedIDs[i], limit)
	})

	skip := make(map[string]bool, len(exclude))
	for _, id := range exclude {
		skip[id] = true
	}

	var out []models.ProductCard
	for _, rail := range rails {
		for _, card := range rail {
			if skip[card.ProductID] {
				continue
			}
			skip[card.ProductID] = true
			out = append(out, card)
			if limit > 0 && len(out) == limit {
				return out
			}
		}
	}
	return out
}
