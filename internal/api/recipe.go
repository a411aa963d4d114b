package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/platemind/backend/internal/model"
	"github.com/platemind/backend/internal/service"
	"github.com/platemind/backend/internal/types"
)

const generateTimeout = 45 * time.Second

const globalFeedLimit = 50

type RecipeHandler struct {
	generator *service.GeneratorService
	recipes   *service.RecipeService
	logger    *zap.Logger
}

func NewRecipeHandler(generator *service.GeneratorService, recipes *service.RecipeService, logger *zap.Logger) *RecipeHandler {
	return &RecipeHandler{
		generator: generator,
		recipes:   recipes,
		logger:    logger,
	}
}

// GenerateRecipe handles POST /api/v1/recipes/generate. Generation itself
// never fails; only an unreadable body or a missing request text is rejected.
func (h *RecipeHandler) GenerateRecipe(c *gin.Context) {
	var req types.RecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	if len(req.Ingredients) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Ingredients are required"})
		return
	}

	userID := callerID(c)

	ctx, cancel := context.WithTimeout(c.Request.Context(), generateTimeout)
	defer cancel()

	recipe := h.generator.Generate(ctx, req, userID)

	// Only authenticated generations are saved; a storage failure still
	// returns the recipe.
	if userID != model.AnonymousUserID {
		if err := h.recipes.Create(recipe); err != nil {
			h.logger.Error("failed to save generated recipe", zap.Error(err), zap.String("user_id", userID))
		}
	}

	c.JSON(http.StatusOK, gin.H{"recipe": recipe})
}

// ListRecipes handles GET /api/v1/recipes. userOnly=true scopes the listing
// to the caller when authenticated and silently falls back to the global
// feed otherwise.
func (h *RecipeHandler) ListRecipes(c *gin.Context) {
	userID := callerID(c)

	var recipes []model.Recipe
	var err error
	if c.Query("userOnly") == "true" && userID != model.AnonymousUserID {
		recipes, err = h.recipes.ListByOwner(userID)
	} else {
		recipes, err = h.recipes.ListRecent(globalFeedLimit)
	}

	if err != nil {
		h.logger.Error("failed to list recipes", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch recipes"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"recipes": recipes})
}

func (h *RecipeHandler) GetRecipe(c *gin.Context) {
	recipe, err := h.recipes.GetByID(c.Param("id"))
	if err != nil {
		h.logger.Error("failed to fetch recipe", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch recipe"})
		return
	}
	if recipe == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Recipe not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"recipe": recipe})
}

// DeleteRecipe handles DELETE /api/v1/recipes/:id. Requires auth; only the
// owner's rows are deletable, anything else reads as not found.
func (h *RecipeHandler) DeleteRecipe(c *gin.Context) {
	userID := callerID(c)
	if userID == model.AnonymousUserID {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	deleted, err := h.recipes.DeleteByOwner(c.Param("id"), userID)
	if err != nil {
		h.logger.Error("failed to delete recipe", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete recipe"})
		return
	}
	if !deleted {
		c.JSON(http.StatusNotFound, gin.H{"error": "Recipe not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Recipe deleted successfully"})
}

// callerID resolves the authenticated user id from the request context,
// falling back to the anonymous sentinel.
func callerID(c *gin.Context) string {
	value, exists := c.Get("user_id")
	if !exists {
		return model.AnonymousUserID
	}
	id, ok := value.(uuid.UUID)
	if !ok {
		return model.AnonymousUserID
	}
	return id.String()
}
