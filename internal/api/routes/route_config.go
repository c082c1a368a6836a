package routes

import (
	"MealPlanner-Backend/internal/api/handlers"
	"MealPlanner-Backend/internal/middleware"
	"MealPlanner-Backend/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App               *fiber.App
	UserHandler       handlers.UserHandler
	IngredientHandler handlers.IngredientHandler
	RecipeHandler     handlers.RecipeHandler
	MealplanHandler   handlers.MealplanHandler
	Middleware        middleware.Middleware
	JWTService        jwt.JWTService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.User()
	c.Ingredients()
	c.Recipes()
	c.Mealplan()
	c.GuestRoute()
}

func (c *Config) User() {
	user := c.App.Group("/api/v1/users")
	// user routes
	{
		user.Post("/register", c.UserHandler.Register)
		user.Post("/login", c.UserHandler.Login)
		user.Post("/send_verify", c.UserHandler.SendVerificationEmail)
		user.Get("/verify", c.UserHandler.VerifyEmail)
		user.Get("/me", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.Me)
		user.Patch("/update", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.UpdateUser)
	}
}

func (c *Config) Ingredients() {
	ingredients := c.App.Group("/api/v1/ingredients", c.Middleware.AuthMiddleware(c.JWTService))

	ingredients.Post("", c.IngredientHandler.AddIngredient)
	ingredients.Get("", c.IngredientHandler.GetIngredients)
	ingredients.Get("/search", c.IngredientHandler.SearchIngredients)
	ingredients.Put("/:id", c.IngredientHandler.UpdateIngredient)
	ingredients.Delete("/:id", c.IngredientHandler.DeleteIngredient)

	// recurring purchase schedules
	ingredients.Post("/schedules", c.IngredientHandler.AddSchedule)
	ingredients.Get("/schedules", c.IngredientHandler.GetSchedules)
	ingredients.Delete("/schedules/:id", c.IngredientHandler.DeleteSchedule)
}

func (c *Config) Recipes() {
	recipes := c.App.Group("/api/v1/recipes", c.Middleware.AuthMiddleware(c.JWTService))

	recipes.Post("", c.RecipeHandler.SaveRecipe)
	recipes.Get("", c.RecipeHandler.GetRecipes)
	recipes.Get("/:id", c.RecipeHandler.GetRecipeDetail)
	recipes.Put("/:id", c.RecipeHandler.UpdateRecipe)
	recipes.Delete("/:id", c.RecipeHandler.DeleteRecipe)
	recipes.Post("/image", c.RecipeHandler.UploadRecipeImage)
}

func (c *Config) Mealplan() {
	mealplan := c.App.Group("/api/v1/mealplan", c.Middleware.AuthMiddleware(c.JWTService))

	mealplan.Post("/days", c.MealplanHandler.AddMealDay)
	mealplan.Get("/days", c.MealplanHandler.GetMealDays)
	mealplan.Delete("/days/:id", c.MealplanHandler.DeleteMealDay)
	mealplan.Get("/shopping-list", c.MealplanHandler.GetShoppingList)
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
}
