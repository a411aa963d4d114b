package router

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/platemind/backend/internal/api"
	"github.com/platemind/backend/internal/middleware"
)

// SetupRouter configures the application routes. limiter may be nil when
// redis is unavailable; generation then runs unthrottled.
func SetupRouter(
	authHandler *api.AuthHandler,
	recipeHandler *api.RecipeHandler,
	validator middleware.TokenValidator,
	limiter *middleware.RateLimiter,
	logger *zap.Logger,
) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger(logger))
	router.Use(cors.Default())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := router.Group("/api/v1")

	auth := v1.Group("/auth")
	{
		auth.POST("/register", authHandler.Register)
		auth.POST("/login", authHandler.Login)
	}

	recipes := v1.Group("/recipes")
	recipes.Use(middleware.OptionalAuthMiddleware(validator))
	{
		generate := []gin.HandlerFunc{}
		if limiter != nil {
			generate = append(generate, limiter.RateLimitMiddleware())
		}
		generate = append(generate, recipeHandler.GenerateRecipe)

		recipes.POST("/generate", generate...)
		recipes.GET("", recipeHandler.ListRecipes)
		recipes.GET("/:id", recipeHandler.GetRecipe)
		recipes.DELETE("/:id", middleware.AuthMiddleware(validator), recipeHandler.DeleteRecipe)
	}

	return router
}
