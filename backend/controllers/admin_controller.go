package controllers

import (
	"github.com/gofiber/fiber/v2"

	"hrmarket/backend/config"
	"hrmarket/backend/gateway"
	"hrmarket/backend/models"
	"hrmarket/backend/utils"
)

// AdminController backs the vendor/user/product management panels.
type AdminController struct {
	GW  gateway.Gateway
	Cfg *config.Config
}

func NewAdminController(gw gateway.Gateway, cfg *config.Config) *AdminController {
	return &AdminController{GW: gw, Cfg: cfg}
}

func validProductTier(tier string) bool {
	return tier == models.TierFreemium || tier == models.TierSilver || tier == models.TierGold
}

func validVendorTier(tier string) bool {
	return tier == models.VendorTierFreemium || tier == models.VendorTierPlus || tier == models.VendorTierPremium
}

// Products

func (ac *AdminController) ListProducts(c *fiber.Ctx) error {
	offset := c.QueryInt("offset", 0)
	limit := c.QueryInt("limit", 25)
	list, err := ac.GW.AdminGetProducts(c.Context(), offset, limit)
	if err != nil {
		return utils.InternalServerError(c, "Could not fetch products")
	}
	if list == nil {
		list = []models.AdminProduct{}
	}
	return utils.Paginate(c, list, len(list), offset, limit)
}

func (ac *AdminController) UpdateProduct(c *fiber.Ctx) error {
	var input struct {
		ProductName  string `json:"product_name"`
		ShortDesc    string `json:"short_desc"`
		Description  string `json:"description"`
		MainCategory string `json:"main_category"`
		Pricing      string `json:"pricing"`
		WebsiteURL   string `json:"website_url"`
		Hidden       bool   `json:"hidden"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	err := ac.GW.AdminUpdateProduct(c.Context(), gateway.AdminUpdateProductParams{
		ProductID:    c.Params("id"),
		ProductName:  input.ProductName,
		ShortDesc:    input.ShortDesc,
		Description:  input.Description,
		MainCategory: input.MainCategory,
		Pricing:      input.Pricing,
		WebsiteURL:   input.WebsiteURL,
		Hidden:       input.Hidden,
	})
	if err != nil {
		return utils.InternalServerError(c, "Could not update product")
	}
	return utils.Success(c, fiber.StatusOK, fiber.Map{"updated": true})
}

func (ac *AdminController) SetProductTier(c *fiber.Ctx) error {
	var input struct {
		Tier string `json:"tier"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	if !validProductTier(input.Tier) {
		return utils.BadRequest(c, "Invalid tier")
	}
	if err := ac.GW.AdminSetProductTier(c.Context(), c.Params("id"), input.Tier); err != nil {
		return utils.InternalServerError(c, "Could not set tier")
	}
	return utils.Success(c, fiber.StatusOK, fiber.Map{"tier": input.Tier})
}

// Vendors

func (ac *AdminController) ListVendors(c *fiber.Ctx) error {
	offset := c.QueryInt("offset", 0)
	limit := c.QueryInt("limit", 25)
	list, err := ac.GW.AdminGetVendors(c.Context(), offset, limit)
	if err != nil {
		return utils.InternalServerError(c, "Could not fetch vendors")
	}
	if list == nil {
		list = []models.VendorProfile{}
	}
	return utils.Paginate(c, list, len(list), offset, limit)
}

func (ac *AdminController) UpdateVendor(c *fiber.Ctx) error {
	var input struct {
		Name         string `json:"name"`
		Description  string `json:"description"`
		WebsiteURL   string `json:"website_url"`
		CompanySize  string `json:"company_size"`
		Headquarters string `json:"headquarters"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	err := ac.GW.AdminUpdateVendor(c.Context(), gateway.AdminUpdateVendorParams{
		VendorID:     c.Params("id"),
		Name:         input.Name,
		Description:  input.Description,
		WebsiteURL:   input.WebsiteURL,
		CompanySize:  input.CompanySize,
		Headquarters: input.Headquarters,
	})
	if err != nil {
		return utils.InternalServerError(c, "Could not update vendor")
	}
	return utils.Success(c, fiber.StatusOK, fiber.Map{"updated": true})
}

func (ac *AdminController) SetVendorTier(c *fiber.Ctx) error {
	var input struct {
		Tier string `json:"tier"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	if !validVendorTier(input.Tier) {
		return utils.BadRequest(c, "Invalid tier")
	}
	if err := ac.GW.AdminSetVendorTier(c.Context(), c.Params("id"), input.Tier); err != nil {
		return utils.InternalServerError(c, "Could not set tier")
	}
	return utils.Success(c, fiber.StatusOK, fiber.Map{"tier": input.Tier})
}

// Users

func (ac *AdminController) ListUsers(c *fiber.Ctx) error {
	offset := c.QueryInt("offset", 0)
	limit := c.QueryInt("limit", 25)

	query := c.Query("search")
	var list []models.User
	var err error
	if query != "" {
		list, err = ac.GW.AdminSearchUsers(c.Context(), query, offset, limit)
	} else {
		list, err = ac.GW.AdminGetUsers(c.Context(), offset, limit)
	}
	if err != nil {
		return utils.InternalServerError(c, "Could not fetch users")
	}
	if list == nil {
		list = []models.User{}
	}
	return utils.Paginate(c, list, len(list), offset, limit)
}

func (ac *AdminController) SetUserRole(c *fiber.Ctx) error {
	var input struct {
		Role string `json:"role"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	if input.Role != models.RoleUser && input.Role != models.RoleAdmin {
		return utils.BadRequest(c, "Invalid role")
	}
	if err := ac.GW.AdminSetUserRole(c.Context(), c.Params("id"), input.Role); err != nil {
		return utils.InternalServerError(c, "Could not set role")
	}
	return utils.Success(c, fiber.StatusOK, fiber.Map{"role": input.Role})
}

// Ownership claims

func (ac *AdminController) ListOwnershipClaims(c *fiber.Ctx) error {
	status := c.Query("status", models.StatusPending)
	list, err := ac.GW.AdminGetOwnershipClaims(c.Context(), status)
	if err != nil {
		return utils.InternalServerError(c, "Could not fetch claims")
	}
	if list == nil {
		list = []models.OwnershipClaim{}
	}
	return utils.Success(c, fiber.StatusOK, list)
}

// ResolveOwnershipClaim approves or rejects a claim. Approval is a two-step
// sequence: resolve the claim, then hand the vendor profile to the claimant.
// A failure on the second step is surfaced; the claim itself stays resolved.
func (ac *AdminController) ResolveOwnershipClaim(c *fiber.Ctx) error {
	var input struct {
		Approve  bool   `json:"approve"`
		Note     string `json:"note"`
		VendorID string `json:"vendor_id"`
		UserID   string `json:"user_id"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	claimID := c.Params("id")
	if err := ac.GW.AdminResolveOwnershipClaim(c.Context(), claimID, input.Approve, input.Note); err != nil {
		return utils.InternalServerError(c, "Could not resolve claim")
	}

	if input.Approve && input.VendorID != "" && input.UserID != "" {
		if err := ac.GW.AdminAssignVendorOwner(c.Context(), input.VendorID, input.UserID); err != nil {
			return utils.InternalServerError(c, "Claim resolved but owner assignment failed")
		}
	}

	return utils.Success(c, fiber.StatusOK, fiber.Map{"resolved": true, "approved": input.Approve})
}
