package routes

import (
	"github.com/gofiber/fiber/v2"

	"hrmarket/backend/config"
	"hrmarket/backend/controllers"
	"hrmarket/backend/gateway"
	"hrmarket/backend/middleware"
)

func SetupRoutes(app *fiber.App, gw gateway.Gateway, cfg *config.Config) {
	// Auth routes
	authController := controllers.NewAuthController(gw, cfg)
	app.Post("/api/auth/register", authController.Register)
	app.Post("/api/auth/login", authController.Login)

	// Middleware
	authMiddleware := middleware.AuthMiddleware(cfg)
	adminMiddleware := middleware.AdminMiddleware(cfg)

	// Profile routes
	app.Get("/api/user/profile", authMiddleware, authController.GetProfile)
	app.Put("/api/user/profile", authMiddleware, authController.UpdateProfile)

	// Catalog routes
	productController := controllers.NewProductController(gw, cfg)
	app.Get("/api/products", productController.ListProducts)
	app.Get("/api/products/:id", productController.GetProduct)
	app.Get("/api/categories", productController.GetCategories)

	vendorController := controllers.NewVendorController(gw, cfg)
	app.Get("/api/vendors", vendorController.ListVendors)
	app.Get("/api/vendors/:id", vendorController.GetVendor)
	app.Post("/api/ownership-claims", authMiddleware, vendorController.SubmitOwnershipClaim)

	// Comparison routes
	compareController := controllers.NewCompareController(gw, cfg)
	cmp := app.Group("/api/compare")
	cmp.Get("/", compareController.GetComparison)
	cmp.Post("/add", compareController.AddProduct)
	cmp.Post("/remove", compareController.RemoveProduct)
	cmp.Post("/features/toggle", compareController.ToggleFeature)
	cmp.Get("/search", compareController.SearchProducts)
	cmp.Get("/suggestions", compareController.GetSuggestions)
	cmp.Get("/bookmarks", authMiddleware, compareController.GetBookmarks)
	cmp.Post("/bookmarks", authMiddleware, compareController.AddBookmark)
	cmp.Delete("/bookmarks/:productId", authMiddleware, compareController.RemoveBookmark)

	// Review routes
	reviewController := controllers.NewReviewController(gw, cfg)
	app.Get("/api/products/:id/reviews", reviewController.ListReviews)
	app.Post("/api/products/:id/reviews", authMiddleware, reviewController.SubmitReview)
	app.Put("/api/products/:id/reviews", authMiddleware, reviewController.EditMyReview)
	app.Post("/api/reviews/:reviewId/replies", authMiddleware, reviewController.SubmitReply)
	app.Post("/api/reviews/:reviewId/vote", authMiddleware, reviewController.ToggleVote)

	// Admin review moderation
	adminReviewController := controllers.NewAdminReviewController(gw, cfg)
	adminReviews := app.Group("/api/admin", authMiddleware, adminMiddleware)
	adminReviews.Get("/products/:id/reviews", adminReviewController.GetQueue)
	adminReviews.Post("/reviews/:reviewId/approve", adminReviewController.ApproveReview)
	adminReviews.Post("/reviews/:reviewId/reject", adminReviewController.RejectReview)
	adminReviews.Delete("/reviews/:reviewId", adminReviewController.DeleteReview)
	adminReviews.Post("/replies/:replyId/approve", adminReviewController.ApproveReply)
	adminReviews.Post("/replies/:replyId/reject", adminReviewController.RejectReply)
	adminReviews.Delete("/replies/:replyId", adminReviewController.DeleteReply)

	// Admin management panels
	adminController := controllers.NewAdminController(gw, cfg)
	admin := app.Group("/api/admin", authMiddleware, adminMiddleware)
	admin.Get("/products", adminController.ListProducts)
	admin.Put("/products/:id", adminController.UpdateProduct)
	admin.Put("/products/:id/tier", adminController.SetProductTier)
	admin.Get("/vendors", adminController.ListVendors)
	admin.Put("/vendors/:id", adminController.UpdateVendor)
	admin.Put("/vendors/:id/tier", adminController.SetVendorTier)
	admin.Get("/users", adminController.ListUsers)
	admin.Put("/users/:id/role", adminController.SetUserRole)
	admin.Get("/ownership-claims", adminController.ListOwnershipClaims)
	admin.Post("/ownership-claims/:id/resolve", adminController.ResolveOwnershipClaim)
}
