package config

import (
	"os"
	"time"

	"recipe-room-backend/internal/api/handlers"
	"recipe-room-backend/internal/api/routes"
	"recipe-room-backend/internal/middleware"
	"recipe-room-backend/internal/utils"
	"recipe-room-backend/internal/utils/storage"
	"recipe-room-backend/pkg/comment"
	"recipe-room-backend/pkg/group"
	"recipe-room-backend/pkg/jwt"
	"recipe-room-backend/pkg/payment"
	"recipe-room-backend/pkg/recipe"
	"recipe-room-backend/pkg/user"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/gorm"
)

func NewApp(db *gorm.DB) (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: true,
	})
	middlewares := middleware.NewMiddleware()
	validator := utils.Validate

	// setting up logging and limiter
	err := os.MkdirAll("./logs", os.ModePerm)
	if err != nil {
		log.Fatalf("error creating logs directory: %v", err)
	}
	file, err := os.OpenFile(
		"./logs/app.log",
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		log.Fatalf("error opening file: %v", err)
	}
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   "Africa/Nairobi",
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Second,
	}))

	// utils
	s3 := storage.NewAwsS3()

	// Repository
	userRepository := user.NewUserRepository(db)
	recipeRepository := recipe.NewRecipeRepository(db)
	groupRepository := group.NewGroupRepository(db)
	commentRepository := comment.NewCommentRepository(db)
	paymentRepository := payment.NewPaymentRepository(db)

	// Service
	jwtService := jwt.NewJWTService()
	userService := user.NewUserService(userRepository, jwtService, s3)
	recipeService := recipe.NewRecipeService(recipeRepository, s3)
	groupService := group.NewGroupService(groupRepository, recipeRepository, userRepository)
	commentService := comment.NewCommentService(commentRepository, recipeRepository)
	paymentService := payment.NewPaymentService(paymentRepository, userRepository, payment.NewSnapClient())

	// Handler
	userHandler := handlers.NewUserHandler(userService, validator)
	recipeHandler := handlers.NewRecipeHandler(recipeService, validator)
	searchHandler := handlers.NewSearchHandler(recipeService)
	groupHandler := handlers.NewGroupHandler(groupService, validator)
	commentHandler := handlers.NewCommentHandler(commentService, validator)
	paymentHandler := handlers.NewPaymentHandler(paymentService, validator)

	// routes
	routesConfig := routes.Config{
		App:            app,
		UserHandler:    userHandler,
		RecipeHandler:  recipeHandler,
		SearchHandler:  searchHandler,
		GroupHandler:   groupHandler,
		CommentHandler: commentHandler,
		PaymentHandler: paymentHandler,
		Middleware:     middlewares,
		JWTService:     jwtService,
	}
	routesConfig.Setup()
	return app, nil
}
