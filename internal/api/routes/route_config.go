package routes

import (
	"github.com/gofiber/fiber/v2"
	"recipehub/internal/api/handlers"
	"recipehub/internal/middleware"
)

type Config struct {
	App           *fiber.App
	UserHandler   handlers.UserHandler
	RecipeHandler handlers.RecipeHandler
	TagHandler    handlers.TagHandler
	HealthHandler handlers.HealthHandler
	Middleware    middleware.Middleware
	CORSOrigins   string
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware(c.CORSOrigins))
	c.GuestRoute()
	c.User()
	c.Recipe()
	c.Tag()
	c.App.Use(middleware.NotFound)
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", c.HealthHandler.Ping)
	c.App.Get("/api/health", c.HealthHandler.Health)
}

func (c *Config) User() {
	user := c.App.Group("/api/users")
	{
		user.Post("/register", c.UserHandler.Register)
		user.Post("/login", c.UserHandler.Login)
		user.Post("/refresh", c.UserHandler.RefreshToken)
		user.Get("/me", c.Middleware.AuthMiddleware(), c.UserHandler.Me)
		user.Get("/email/:email", c.UserHandler.GetUserByEmail)
		user.Get("", c.UserHandler.GetUsers)
		user.Post("", c.UserHandler.CreateUser)
	}
}

func (c *Config) Recipe() {
	recipe := c.App.Group("/api/recipes")
	auth := c.Middleware.AuthMiddleware()
	optional := c.Middleware.OptionalAuthMiddleware()

	recipe.Get("", optional, c.RecipeHandler.GetRecipes)
	recipe.Post("", auth, c.RecipeHandler.CreateRecipe)
	recipe.Get("/recent", optional, c.RecipeHandler.GetRecentRecipes)
	recipe.Get("/me", auth, c.RecipeHandler.GetMyRecipes)
	recipe.Post("/ai", auth, c.RecipeHandler.GenerateRecipe)

	// static bookmark paths must precede the :slug ones
	bookmark := recipe.Group("/bookmark/me", auth)
	bookmark.Get("", c.RecipeHandler.GetBookmarkedRecipes)
	bookmark.Delete("/clear", c.RecipeHandler.ClearBookmarks)
	bookmark.Put("/:slug", c.RecipeHandler.BookmarkRecipe)
	bookmark.Delete("/:slug", c.RecipeHandler.RemoveBookmark)

	recipe.Get("/slug/:slug", optional, c.RecipeHandler.GetRecipeBySlug)
	recipe.Delete("/slug/:slug", auth, c.RecipeHandler.DeleteRecipe)
}

func (c *Config) Tag() {
	tag := c.App.Group("/api/tags", c.Middleware.OptionalAuthMiddleware())
	tag.Get("", c.TagHandler.GetTags)
	tag.Get("/:tagId", c.TagHandler.GetTagDetail)
}
