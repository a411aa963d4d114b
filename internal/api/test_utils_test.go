package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/platemind/backend/internal/middleware"
	"github.com/platemind/backend/internal/model"
	"github.com/platemind/backend/internal/service"
)

type testEnv struct {
	Router      *gin.Engine
	DB          *gorm.DB
	AuthService *service.AuthService
}

// setupTestEnv wires the handlers against an in-memory database, mirroring
// the production route layout. backend may be nil to exercise the mock
// generation path.
func setupTestEnv(t *testing.T, backend service.RecipeCompleter) *testEnv {
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open("file:"+uuid.NewString()+"?mode=memory&cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.User{}, &model.Recipe{}))

	log := zap.NewNop()
	authService := service.NewAuthService(db, "test-secret")
	generator := service.NewGeneratorService(backend, service.NewMockRecipeService(), log)
	recipeService := service.NewRecipeService(db)

	authHandler := NewAuthHandler(authService, log)
	recipeHandler := NewRecipeHandler(generator, recipeService, log)

	router := gin.New()
	v1 := router.Group("/api/v1")

	auth := v1.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)

	recipes := v1.Group("/recipes")
	recipes.Use(middleware.OptionalAuthMiddleware(authService))
	recipes.POST("/generate", recipeHandler.GenerateRecipe)
	recipes.GET("", recipeHandler.ListRecipes)
	recipes.GET("/:id", recipeHandler.GetRecipe)
	recipes.DELETE("/:id", middleware.AuthMiddleware(authService), recipeHandler.DeleteRecipe)

	return &testEnv{
		Router:      router,
		DB:          db,
		AuthService: authService,
	}
}

// registerTestUser registers a user through the API and returns their id and
// bearer token.
func registerTestUser(t *testing.T, env *testEnv, email string) (string, string) {
	token, err := env.AuthService.Register("Test User", email, "password123")
	require.NoError(t, err)

	claims, err := env.AuthService.ValidateToken(token)
	require.NoError(t, err)

	return claims.UserID.String(), token
}

// performRequest makes an HTTP request against the test router. token may be
// empty for anonymous calls. A raw string body is sent as-is; anything else
// is JSON-encoded.
func performRequest(router *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	var req *http.Request
	switch b := body.(type) {
	case nil:
		req = httptest.NewRequest(method, path, nil)
	case string:
		req = httptest.NewRequest(method, path, bytes.NewBufferString(b))
	default:
		jsonBody, err := json.Marshal(b)
		if err != nil {
			panic(err)
		}
		req = httptest.NewRequest(method, path, bytes.NewBuffer(jsonBody))
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}
