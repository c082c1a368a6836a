package config

import (
	"MealPlanner-Backend/internal/api/handlers"
	"MealPlanner-Backend/internal/api/routes"
	"MealPlanner-Backend/internal/middleware"
	"MealPlanner-Backend/internal/utils"
	"MealPlanner-Backend/internal/utils/storage"
	"MealPlanner-Backend/pkg/ingredient"
	"MealPlanner-Backend/pkg/jwt"
	"MealPlanner-Backend/pkg/mealplan"
	"MealPlanner-Backend/pkg/recipe"
	"MealPlanner-Backend/pkg/user"
	"os"
	"time"

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
		TimeZone:   "Asia/Jakarta",
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
	ingredientRepository := ingredient.NewIngredientRepository(db)
	recipeRepository := recipe.NewRecipeRepository(db)
	mealplanRepository := mealplan.NewMealplanRepository(db)

	// Service
	jwtService := jwt.NewJWTService()
	userService := user.NewUserService(userRepository, jwtService)
	ingredientService := ingredient.NewIngredientService(ingredientRepository)
	recipeService := recipe.NewRecipeService(recipeRepository, ingredientRepository, s3)
	mealplanService := mealplan.NewMealplanService(mealplanRepository, recipeRepository, ingredientRepository)

	// Handler
	userHandler := handlers.NewUserHandler(userService, validator)
	ingredientHandler := handlers.NewIngredientHandler(ingredientService, validator)
	recipeHandler := handlers.NewRecipeHandler(recipeService, validator)
	mealplanHandler := handlers.NewMealplanHandler(mealplanService, validator)

	// routes
	routesConfig := routes.Config{
		App:               app,
		UserHandler:       userHandler,
		IngredientHandler: ingredientHandler,
		RecipeHandler:     recipeHandler,
		MealplanHandler:   mealplanHandler,
		Middleware:        middlewares,
		JWTService:        jwtService,
	}
	routesConfig.Setup()
	return app, nil
}
