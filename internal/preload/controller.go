package preload

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"virasat/internal/shared/utils/response"
)

type Controller interface {
	WarmCache(c *gin.Context)
	ClearCache(c *gin.Context)
}

type controller struct {
	preloader *Preloader
}

func NewController(preloader *Preloader) Controller {
	return &controller{preloader: preloader}
}

// WarmCache bulk-inserts the full catalog into the cache.
func (ctrl *controller) WarmCache(c *gin.Context) {
	events := ctrl.preloader.PreloadAll(c.Request.Context())
	response.RespondJSON(c, "success", http.StatusOK, "Event cache warmed", gin.H{"cached_events": len(events)}, nil)
}

// ClearCache empties the event cache. The catalog is untouched.
func (ctrl *controller) ClearCache(c *gin.Context) {
	if err := ctrl.preloader.Clear(c.Request.Context()); err != nil {
		response.RespondJSON(c, "error", http.StatusInternalServerError, "Failed to clear event cache", nil, err.Error())
		return
	}
	response.RespondJSON(c, "success", http.StatusOK, "Event cache cleared", nil, nil)
}
