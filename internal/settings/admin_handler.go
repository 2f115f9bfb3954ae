package settings

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/kedai-ramen/site-backend/internal/platform/web"
)

const maxKeyLength = 255

// AdminHandler is the dashboard's read/write view of the settings table.
// Unlike the public endpoints it reports store failures.
type AdminHandler struct {
	store  Store
	logger *zap.Logger
}

// NewAdminHandler creates an AdminHandler.
func NewAdminHandler(store Store, logger *zap.Logger) *AdminHandler {
	return &AdminHandler{store: store, logger: logger}
}

// RegisterRoutes mounts the admin endpoints under <api>/admin/settings,
// guarded by token.
func (h *AdminHandler) RegisterRoutes(api *gin.RouterGroup, token string) {
	g := api.Group("/admin/settings", web.RequireBearerToken(token), web.NoCache())
	g.GET("", h.List)
	g.PUT("/:key", h.Put)
}

type settingResponse struct {
	Key   string  `json:"key"`
	Value *string `json:"value"`
}

// List handles GET /api/admin/settings.
func (h *AdminHandler) List(c *gin.Context) {
	rows, err := h.store.List(c.Request.Context())
	if err != nil {
		h.logger.Error("failed to list settings", zap.Error(err))
		web.WriteError(c, http.StatusInternalServerError, "SETTINGS_STORE_ERROR", "failed to list settings")
		return
	}

	out := make([]settingResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, settingResponse{Key: r.Key, Value: r.Value})
	}
	c.JSON(http.StatusOK, gin.H{"settings": out})
}

type putSettingRequest struct {
	Value *string `json:"value" binding:"required"`
}

// Put handles PUT /api/admin/settings/:key.
func (h *AdminHandler) Put(c *gin.Context) {
	key := c.Param("key")
	if key == "" || len(key) > maxKeyLength {
		web.WriteError(c, http.StatusBadRequest, "SETTINGS_INVALID_KEY", "key must be 1-255 characters")
		return
	}

	var req putSettingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		web.WriteError(c, http.StatusBadRequest, "SETTINGS_INVALID_BODY", "body must be {\"value\": \"<string>\"}")
		return
	}

	if v, ok := ValidatorFor(key); ok {
		if err := v.Validate(*req.Value); err != nil {
			web.WriteError(c, http.StatusBadRequest, "SETTINGS_INVALID_VALUE", err.Error())
			return
		}
	}

	if err := h.store.Upsert(c.Request.Context(), key, *req.Value); err != nil {
		h.logger.Error("failed to write setting", zap.String("key", key), zap.Error(err))
		web.WriteError(c, http.StatusInternalServerError, "SETTINGS_STORE_ERROR", "failed to write setting")
		return
	}

	h.logger.Info("setting updated", zap.String("key", key), zap.String("value", *req.Value))
	c.JSON(http.StatusOK, settingResponse{Key: key, Value: req.Value})
}
