package controllers

import (
	"github.com/gofiber/fiber/v2"

	"hrmarket/backend/config"
	"hrmarket/backend/gateway"
	"hrmarket/backend/middleware"
	"hrmarket/backend/models"
	"hrmarket/backend/utils"
)

const defaultPageSize = 12

type ProductController struct {
	GW  gateway.Gateway
	Cfg *config.Config
}

func NewProductController(gw gateway.Gateway, cfg *config.Config) *ProductController {
	return &ProductController{GW: gw, Cfg: cfg}
}

// ListProducts godoc
// @Summary List product cards
// @Description Paginated, filtered product catalog
// @Tags products
// @Produce json
// @Param search query string false "Free-text search"
// @Param category query string false "Category filter"
// @Param tier query string false "Tier filter"
// @Success 200 {object} utils.PaginatedResponse
// @Router /products [get]
func (pc *ProductController) ListProducts(c *fiber.Ctx) error {
	search := c.Query("search")
	category := c.Query("category")
	tier := c.Query("tier")
	offset := c.QueryInt("offset", 0)
	limit := c.QueryInt("limit", defaultPageSize)
	if offset < 0 {
		offset = 0
	}
	if limit <= 0 || limit > 50 {
		limit = defaultPageSize
	}

	cards, err := pc.GW.GetProductCards(c.Context(), search, category, tier, offset, limit)
	if err != nil {
		return utils.InternalServerError(c, "Could not fetch products")
	}
	if cards == nil {
		cards = []models.ProductCard{}
	}
	return utils.Paginate(c, cards, len(cards), offset, limit)
}

// GetProduct returns the detail page payload: gated details, the similar
// rail, and the first page of approved reviews. The auxiliary fetches degrade
// silently to empty lists.
func (pc *ProductController) GetProduct(c *fiber.Ctx) error {
	productID := c.Params("id")

	details, err := pc.GW.GetProductDetails(c.Context(), productID)
	if err != nil {
		return utils.InternalServerError(c, "Could not fetch product")
	}
	if details == nil {
		return utils.NotFound(c, "Product not found")
	}
	models.ApplyTierGate(details)

	similar, err := pc.GW.GetSimilarProducts(c.Context(), productID, 4)
	if err != nil {
		similar = nil
	}

	reviewsHead, err := pc.GW.GetProductReviews(c.Context(), productID, models.SortHelpful, 0, 3, middleware.UserID(c))
	if err != nil {
		reviewsHead = nil
	}

	return utils.Success(c, fiber.StatusOK, fiber.Map{
		"product": details,
		"similar": similar,
		"reviews": reviewsHead,
	})
}

// GetCategories returns the category pills for browse mode.
func (pc *ProductController) GetCategories(c *fiber.Ctx) error {
	categories, err := pc.GW.GetCategories(c.Context())
	if err != nil {
		return utils.InternalServerError(c, "Could not fetch categories")
	}
	return utils.Success(c, fiber.StatusOK, categories)
}
