package settings

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kedai-ramen/site-backend/internal/platform/web"
)

// Handler serves the public settings endpoints. Every response is 200 with
// a single-field JSON body; lookup failures fall back to the key's default.
type Handler struct {
	resolver *Resolver
}

// NewHandler creates a Handler over resolver.
func NewHandler(resolver *Resolver) *Handler {
	return &Handler{resolver: resolver}
}

// RegisterRoutes mounts the endpoints under <api>/settings.
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	g := api.Group("/settings", web.NoCache())
	g.GET("/instagram-gallery", serveSetting(h.resolver, "enabled", InstagramGalleryEnabled))
	g.GET("/instagram-post-count", serveSetting(h.resolver, "count", InstagramPostCount))
	g.GET("/menu-popup", serveSetting(h.resolver, "enabled", MenuPopupEnabled))
	g.GET("/menu-show-price", serveSetting(h.resolver, "showPrice", MenuShowPrice))
}

func serveSetting[T any](r *Resolver, field string, d Decoder[T]) gin.HandlerFunc {
	return func(c *gin.Context) {
		res := Resolve(c.Request.Context(), r, d)
		c.JSON(http.StatusOK, gin.H{field: ValueOrDefault(res, d)})
	}
}
