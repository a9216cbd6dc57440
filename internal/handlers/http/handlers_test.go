package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"metahub/internal/core/services"
	"metahub/internal/infrastructure/catalog"
	"metahub/internal/infrastructure/middleware"
	"metahub/internal/infrastructure/repositories/keyed"
	"metahub/internal/infrastructure/storage"
)

// newTestRouter wires the full handler surface over an in-memory store,
// the same shape the server assembles at startup.
func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	ctx := context.Background()
	logger := zaptest.NewLogger(t).Sugar()
	store := storage.NewMemoryStore()

	profileRepo := keyed.NewProfileRepository(ctx, store, logger, nil)
	buildRepo := keyed.NewBuildRepository(ctx, store, logger, nil)
	tierListRepo := keyed.NewTierListRepository(ctx, store, logger, nil)
	chatRepo := keyed.NewChatRepository(store, 0, logger, nil)
	notificationRepo := keyed.NewNotificationRepository(ctx, store, 0, logger, nil)
	favoritesRepo := keyed.NewFavoritesRepository(ctx, store, logger, nil)
	catalogRepo := catalog.NewStaticRepository()

	profileService := services.NewProfileService(profileRepo, logger)
	notificationService := services.NewNotificationService(notificationRepo, nil, logger)
	buildService := services.NewBuildService(buildRepo, profileRepo, notificationService, nil, logger)
	tierListService := services.NewTierListService(tierListRepo, profileRepo, notificationService, nil, logger)
	chatService := services.NewChatService(chatRepo, profileRepo, nil, nil, logger)
	favoritesService := services.NewFavoritesService(favoritesRepo, profileService, logger)
	catalogService := services.NewCatalogService(catalogRepo, logger)

	router := gin.New()
	router.Use(middleware.ErrorHandlerMiddleware(logger))
	NewProfileHandler(profileService).SetupRoutes(router)
	NewBuildHandler(buildService).SetupRoutes(router)
	NewTierListHandler(tierListService).SetupRoutes(router)
	NewChatHandler(chatService).SetupRoutes(router)
	NewNotificationHandler(notificationService).SetupRoutes(router)
	NewFavoritesHandler(favoritesService).SetupRoutes(router)
	NewCatalogHandler(catalogService).SetupRoutes(router)
	return router
}

func doRequest(t *testing.T, router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req, err := http.NewRequest(method, path, strings.NewReader(body))
	require.NoError(t, err)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}
