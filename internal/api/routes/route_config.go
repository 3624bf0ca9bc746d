package routes

import (
	"recipe-room-backend/internal/api/handlers"
	"recipe-room-backend/internal/middleware"
	"recipe-room-backend/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App            *fiber.App
	UserHandler    handlers.UserHandler
	RecipeHandler  handlers.RecipeHandler
	SearchHandler  handlers.SearchHandler
	GroupHandler   handlers.GroupHandler
	CommentHandler handlers.CommentHandler
	PaymentHandler handlers.PaymentHandler
	Middleware     middleware.Middleware
	JWTService     jwt.JWTService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.GuestRoute()
	c.Auth()
	c.Recipes()
	c.Search()
	c.Groups()
	c.Comments()
	c.Payments()
}

func (c *Config) GuestRoute() {
	c.App.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"name":    "recipe-room-backend",
			"message": "welcome to the recipe room API",
		})
	})
	c.App.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})
	c.App.Post("/webhook/midtrans", c.PaymentHandler.MidtransWebhook)
}

func (c *Config) Auth() {
	auth := c.App.Group("/api/auth")
	{
		auth.Post("/register", c.UserHandler.Register)
		auth.Post("/login", c.UserHandler.Login)
		auth.Get("/profile", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.GetProfile)
		auth.Put("/profile", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.UpdateProfile)
		auth.Post("/upload-image", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.UploadProfileImage)
	}
}

func (c *Config) Recipes() {
	recipes := c.App.Group("/api/recipes")
	auth := c.Middleware.AuthMiddleware(c.JWTService)

	// Browsing recipes is public
	recipes.Get("/discover", c.RecipeHandler.DiscoverRecipes)
	recipes.Get("/user/:user_id", c.RecipeHandler.GetRecipesByUser)
	recipes.Get("", c.RecipeHandler.GetRecipes)
	recipes.Get("/:id/rating", c.RecipeHandler.GetRecipeRating)
	recipes.Get("/:id", c.RecipeHandler.GetRecipeByID)

	// Mutations, history, and per-user state require auth
	recipes.Post("", auth, c.RecipeHandler.CreateRecipe)
	recipes.Put("/:id", auth, c.RecipeHandler.UpdateRecipe)
	recipes.Delete("/:id", auth, c.RecipeHandler.DeleteRecipe)
	recipes.Get("/:id/history", auth, c.RecipeHandler.GetEditHistory)
	recipes.Post("/:id/rate", auth, c.RecipeHandler.RateRecipe)
	recipes.Post("/:id/bookmark", auth, c.RecipeHandler.BookmarkRecipe)
	recipes.Delete("/:id/bookmark", auth, c.RecipeHandler.RemoveBookmark)
}

func (c *Config) Search() {
	search := c.App.Group("/api/search")
	search.Get("/recipes", c.SearchHandler.SearchRecipes)
}

func (c *Config) Groups() {
	groups := c.App.Group("/api/groups", c.Middleware.AuthMiddleware(c.JWTService))

	groups.Post("", c.GroupHandler.CreateGroup)
	groups.Get("", c.GroupHandler.GetUserGroups)
	groups.Get("/:id", c.GroupHandler.GetGroupByID)
	groups.Put("/:id", c.GroupHandler.UpdateGroup)
	groups.Delete("/:id", c.GroupHandler.DeleteGroup)

	groups.Get("/:id/recipes", c.GroupHandler.GetGroupRecipes)
	groups.Post("/:id/recipes/:recipe_id", c.GroupHandler.AddRecipeToGroup)
	groups.Delete("/:id/recipes/:recipe_id", c.GroupHandler.RemoveRecipeFromGroup)

	groups.Post("/:id/members", c.GroupHandler.AddMember)
	groups.Delete("/:id/members/:user_id", c.GroupHandler.RemoveMember)
}

func (c *Config) Comments() {
	comments := c.App.Group("/api/comments")

	// Reading comments is public, writing requires auth
	comments.Get("/recipe/:recipe_id", c.CommentHandler.GetRecipeComments)
	comments.Post("", c.Middleware.AuthMiddleware(c.JWTService), c.CommentHandler.CreateComment)
	comments.Put("/:id", c.Middleware.AuthMiddleware(c.JWTService), c.CommentHandler.UpdateComment)
	comments.Delete("/:id", c.Middleware.AuthMiddleware(c.JWTService), c.CommentHandler.DeleteComment)
}

func (c *Config) Payments() {
	payments := c.App.Group("/api/payments", c.Middleware.AuthMiddleware(c.JWTService))
	payments.Post("/initiate", c.PaymentHandler.InitiatePayment)
}
