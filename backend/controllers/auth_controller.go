package controllers

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"

	"hrmarket/backend/config"
	"hrmarket/backend/gateway"
	"hrmarket/backend/middleware"
	"hrmarket/backend/models"
	"hrmarket/backend/utils"
)

type AuthController struct {
	GW  gateway.Gateway
	Cfg *config.Config
}

func NewAuthController(gw gateway.Gateway, cfg *config.Config) *AuthController {
	return &AuthController{GW: gw, Cfg: cfg}
}

// Register godoc
// @Summary Register a new user
// @Description Creates a marketplace account and returns a session token
// @Tags auth
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 409 {object} utils.ErrorResponse
// @Router /auth/register [post]
func (ac *AuthController) Register(c *fiber.Ctx) error {
	var input struct {
		Email    string `json:"email"`
		FullName string `json:"full_name"`
		Password string `json:"password"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	input.Email = strings.TrimSpace(strings.ToLower(input.Email))
	if input.Email == "" || !strings.Contains(input.Email, "@") {
		return utils.ValidationError(c, map[string]string{"email": "A valid email is required"})
	}
	if len(input.Password) < 8 {
		return utils.ValidationError(c, map[string]string{"password": "Password must be at least 8 characters"})
	}

	existing, err := ac.GW.GetUserByEmail(c.Context(), input.Email)
	if err != nil {
		return utils.InternalServerError(c, "Could not check account")
	}
	if existing != nil {
		return utils.Conflict(c, "An account with this email already exists")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return utils.InternalServerError(c, "Could not hash password")
	}

	user, err := ac.GW.CreateUser(c.Context(), models.User{
		Email:        input.Email,
		FullName:     input.FullName,
		Role:         models.RoleUser,
		PasswordHash: string(hashed),
	})
	if err != nil {
		return utils.InternalServerError(c, "Could not create account")
	}

	token, err := utils.GenerateJWTToken(user.UserID, user.Role, ac.Cfg)
	if err != nil {
		return utils.InternalServerError(c, "Could not generate token")
	}

	return c.JSON(fiber.Map{
		"token": token,
		"user":  user,
	})
}

// Login godoc
// @Summary User login
// @Description Authenticates by email and password, returns a session token
// @Tags auth
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} utils.ErrorResponse
// @Router /auth/login [post]
func (ac *AuthController) Login(c *fiber.Ctx) error {
	var input struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	user, err := ac.GW.GetUserByEmail(c.Context(), strings.TrimSpace(strings.ToLower(input.Email)))
	if err != nil {
		return utils.InternalServerError(c, "Could not query account")
	}
	if user == nil {
		return utils.Unauthorized(c, "Invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		return utils.Unauthorized(c, "Invalid credentials")
	}

	token, err := utils.GenerateJWTToken(user.UserID, user.Role, ac.Cfg)
	if err != nil {
		return utils.InternalServerError(c, "Could not generate token")
	}

	return c.JSON(fiber.Map{
		"token": token,
		"user":  user,
	})
}

// GetProfile returns the authenticated user's account row.
func (ac *AuthController) GetProfile(c *fiber.Ctx) error {
	user, err := ac.GW.GetUser(c.Context(), middleware.UserID(c))
	if err != nil {
		return utils.InternalServerError(c, "Could not fetch profile")
	}
	if user == nil {
		return utils.NotFound(c, "User not found")
	}
	return utils.Success(c, fiber.StatusOK, user)
}

// UpdateProfile updates the caller's display name.
func (ac *AuthController) UpdateProfile(c *fiber.Ctx) error {
	var input struct {
		FullName string `json:"full_name"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	if strings.TrimSpace(input.FullName) == "" {
		return utils.ValidationError(c, map[string]string{"full_name": "Name is required"})
	}

	if err := ac.GW.UpdateUserProfile(c.Context(), middleware.UserID(c), input.FullName); err != nil {
		return utils.InternalServerError(c, "Could not update profile")
	}
	return utils.Success(c, fiber.StatusOK, fiber.Map{"updated": true})
}
