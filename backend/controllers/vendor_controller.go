package controllers

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"hrmarket/backend/config"
	"hrmarket/backend/gateway"
	"hrmarket/backend/middleware"
	"hrmarket/backend/models"
	"hrmarket/backend/utils"
)

type VendorController struct {
	GW  gateway.Gateway
	Cfg *config.Config
}

func NewVendorController(gw gateway.Gateway, cfg *config.Config) *VendorController {
	return &VendorController{GW: gw, Cfg: cfg}
}

// ListVendors godoc
// @Summary List vendor cards
// @Tags vendors
// @Produce json
// @Success 200 {object} utils.PaginatedResponse
// @Router /vendors [get]
func (vc *VendorController) ListVendors(c *fiber.Ctx) error {
	search := c.Query("search")
	offset := c.QueryInt("offset", 0)
	limit := c.QueryInt("limit", defaultPageSize)
	if offset < 0 {
		offset = 0
	}
	if limit <= 0 || limit > 50 {
		limit = defaultPageSize
	}

	cards, err := vc.GW.GetVendorCards(c.Context(), search, offset, limit)
	if err != nil {
		return utils.InternalServerError(c, "Could not fetch vendors")
	}
	if cards == nil {
		cards = []models.VendorCard{}
	}
	return utils.Paginate(c, cards, len(cards), offset, limit)
}

// GetVendor returns the tier-gated vendor profile with its product listings.
func (vc *VendorController) GetVendor(c *fiber.Ctx) error {
	vendorID := c.Params("id")

	profile, err := vc.GW.GetVendorProfile(c.Context(), vendorID)
	if err != nil {
		return utils.InternalServerError(c, "Could not fetch vendor")
	}
	if profile == nil {
		return utils.NotFound(c, "Vendor not found")
	}
	models.ApplyVendorTierGate(profile)

	products, err := vc.GW.GetVendorProducts(c.Context(), vendorID)
	if err != nil {
		products = nil
	}

	return utils.Success(c, fiber.StatusOK, fiber.Map{
		"vendor":   profile,
		"products": products,
	})
}

// SubmitOwnershipClaim files a request to take over a product listing.
// The claim lands in the admin queue as pending.
func (vc *VendorController) SubmitOwnershipClaim(c *fiber.Ctx) error {
	var input struct {
		ProductID string `json:"product_id"`
		WorkEmail string `json:"work_email"`
		Message   string `json:"message"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	errs := map[string]string{}
	if input.ProductID == "" {
		errs["product_id"] = "Product is required"
	}
	if !strings.Contains(input.WorkEmail, "@") {
		errs["work_email"] = "A valid work email is required"
	}
	if len(errs) > 0 {
		return utils.ValidationError(c, errs)
	}

	err := vc.GW.SubmitOwnershipClaim(c.Context(), input.ProductID, middleware.UserID(c), input.WorkEmail, input.Message)
	if err != nil {
		return utils.InternalServerError(c, "Could not submit ownership request")
	}
	return utils.Success(c, fiber.StatusOK, fiber.Map{"submitted": true})
}
