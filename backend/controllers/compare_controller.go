package controllers

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"hrmarket/backend/compare"
	"hrmarket/backend/config"
	"hrmarket/backend/gateway"
	"hrmarket/backend/middleware"
	"hrmarket/backend/models"
	"hrmarket/backend/search"
	"hrmarket/backend/utils"
)

type CompareController struct {
	GW        gateway.Gateway
	Cfg       *config.Config
	Bookmarks *search.BookmarkStore
}

func NewCompareController(gw gateway.Gateway, cfg *config.Config) *CompareController {
	return &CompareController{GW: gw, Cfg: cfg, Bookmarks: search.NewBookmarkStore()}
}

// compareState is the payload every comparison endpoint returns: the resolved
// slots, the canonical products parameter (the client's shareable URL), the
// feature rows, and the table guard.
func compareState(w *compare.Workflow, sel compare.FeatureSelection) fiber.Map {
	return fiber.Map{
		"products":       w.Products(),
		"products_param": w.Query(),
		"features": fiber.Map{
			"available": compare.FeatureKeys,
			"selected":  sel.Selected(),
		},
		"table_visible": compare.TableVisible(w.Len(), sel.Count()),
	}
}

func parseFeatureQuery(raw string) compare.FeatureSelection {
	var keys []string
	for _, k := range strings.Split(raw, ",") {
		if k = strings.TrimSpace(k); k != "" {
			keys = append(keys, k)
		}
	}
	return compare.ParseFeatures(keys)
}

// GetComparison godoc
// @Summary Resolve comparison state from the shareable URL
// @Description Resolves the products parameter into slots; unresolvable IDs are dropped
// @Tags compare
// @Produce json
// @Param products query string false "Comma-separated product IDs, up to 5"
// @Param features query string false "Comma-separated feature keys"
// @Success 200 {object} utils.SuccessResponse
// @Router /compare [get]
func (cc *CompareController) GetComparison(c *fiber.Ctx) error {
	ids := compare.DecodeProducts(c.Query("products"))
	w := compare.Resolve(c.Context(), cc.GW, ids)
	sel := parseFeatureQuery(c.Query("features"))
	return utils.Success(c, fiber.StatusOK, compareState(w, sel))
}

// AddProduct adds a candidate to the comparison. Duplicate IDs and a full
// workflow are silent no-ops; the response always carries the canonical
// parameter for the resulting state.
func (cc *CompareController) AddProduct(c *fiber.Ctx) error {
	var input struct {
		Products  string `json:"products"`
		ProductID string `json:"product_id"`
		Features  string `json:"features"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	if input.ProductID == "" {
		return utils.BadRequest(c, "product_id is required")
	}

	w := compare.Resolve(c.Context(), cc.GW, compare.DecodeProducts(input.Products))
	sel := parseFeatureQuery(input.Features)

	if w.Len() >= compare.MaxSlots || w.Has(input.ProductID) {
		return utils.Success(c, fiber.StatusOK, compareState(w, sel))
	}

	details, err := cc.GW.GetProductDetails(c.Context(), input.ProductID)
	if err != nil {
		return utils.InternalServerError(c, "Could not fetch product")
	}
	if details == nil {
		return utils.NotFound(c, "Product not found")
	}
	w.Add(*details)

	return utils.Success(c, fiber.StatusOK, compareState(w, sel))
}

// RemoveProduct drops a slot and re-serializes the parameter. No
// confirmation step.
func (cc *CompareController) RemoveProduct(c *fiber.Ctx) error {
	var input struct {
		Products  string `json:"products"`
		ProductID string `json:"product_id"`
		Features  string `json:"features"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	w := compare.Resolve(c.Context(), cc.GW, compare.DecodeProducts(input.Products))
	w.Remove(input.ProductID)
	sel := parseFeatureQuery(input.Features)

	return utils.Success(c, fiber.StatusOK, compareState(w, sel))
}

// ToggleFeature flips one feature row. Feature selection stays out of the
// products parameter, so this only returns the updated selection.
func (cc *CompareController) ToggleFeature(c *fiber.Ctx) error {
	var input struct {
		Features string `json:"features"`
		Key      string `json:"key"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	sel := parseFeatureQuery(input.Features)
	if !sel.Toggle(input.Key) {
		return utils.BadRequest(c, "Unknown feature key")
	}

	return utils.Success(c, fiber.StatusOK, fiber.Map{
		"available": compare.FeatureKeys,
		"selected":  sel.Selected(),
	})
}

// SearchProducts is the picker's two-mode search: a non-empty q runs the
// server-side fuzzy match, otherwise it browses by category with load-more
// pagination. Failures degrade to an empty list.
func (cc *CompareController) SearchProducts(c *fiber.Ctx) error {
	q := strings.TrimSpace(c.Query("q"))
	category := c.Query("category")
	offset := c.QueryInt("offset", 0)
	if offset < 0 {
		offset = 0
	}

	mode := "browse"
	var cards []models.ProductCard
	var err error
	if q != "" {
		mode = "search"
		cards, err = cc.GW.GetProductCards(c.Context(), q, "", "", 0, defaultPageSize)
	} else {
		cards, err = cc.GW.GetProductCards(c.Context(), "", category, "", offset, defaultPageSize)
	}
	if err != nil {
		cards = nil
	}
	if cards == nil {
		cards = []models.ProductCard{}
	}

	return utils.Success(c, fiber.StatusOK, fiber.Map{
		"mode":    mode,
		"results": cards,
	})
}

// GetSuggestions returns the suggested rail for the current slots. Seeds are
// the first two occupied slots; products already in slots are excluded.
func (cc *CompareController) GetSuggestions(c *fiber.Ctx) error {
	ids := compare.DecodeProducts(c.Query("products"))
	cards := search.Suggestions(c.Context(), cc.GW, ids, ids, 6)
	if cards == nil {
		cards = []models.ProductCard{}
	}
	return utils.Success(c, fiber.StatusOK, cards)
}

// GetBookmarks returns the caller's bookmark rail; slot occupants come back
// disabled rather than hidden.
func (cc *CompareController) GetBookmarks(c *fiber.Ctx) error {
	exclude := compare.DecodeProducts(c.Query("products"))
	entries := search.BookmarkRail(c.Context(), cc.GW, cc.Bookmarks, middleware.UserID(c), exclude)
	if entries == nil {
		entries = []search.BookmarkEntry{}
	}
	return utils.Success(c, fiber.StatusOK, entries)
}

func (cc *CompareController) AddBookmark(c *fiber.Ctx) error {
	var input struct {
		ProductID string `json:"product_id"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	if input.ProductID == "" {
		return utils.BadRequest(c, "product_id is required")
	}
	cc.Bookmarks.Add(middleware.UserID(c), input.ProductID)
	return utils.Success(c, fiber.StatusOK, fiber.Map{"bookmarked": true})
}

func (cc *CompareController) RemoveBookmark(c *fiber.Ctx) error {
	cc.Bookmarks.Remove(middleware.UserID(c), c.Params("productId"))
	return utils.Success(c, fiber.StatusOK, fiber.Map{"bookmarked": false})
}
