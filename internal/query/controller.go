package query

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"virasat/internal/catalog"
	"virasat/internal/preload"
	"virasat/internal/shared/utils/response"
)

type Controller interface {
	GetEvents(c *gin.Context)
	GetEventsByDay(c *gin.Context)
	GetEvent(c *gin.Context)
	GetFeaturedEvents(c *gin.Context)
	GetFilters(c *gin.Context)
}

type controller struct {
	service   Service
	catalog   *catalog.Catalog
	preloader *preload.Preloader
}

func NewController(service Service, cat *catalog.Catalog, preloader *preload.Preloader) Controller {
	return &controller{service: service, catalog: cat, preloader: preloader}
}

func (ctrl *controller) GetEvents(c *gin.Context) {
	var q EventListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid query parameters", nil, err.Error())
		return
	}

	events := ctrl.service.GetEvents(q.Page, q.Limit, q.Filters())

	// Best-effort warm of the visible window and the one after it; a miss
	// later always falls back to the catalog, so failures are irrelevant.
	go func(page, limit int) {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		ctrl.preloader.PreloadVisible(ctx, page, limit)
		ctrl.preloader.PreloadNextPage(ctx, page, limit)
	}(events.CurrentPage, q.Limit)

	response.RespondJSON(c, "success", http.StatusOK, "Events retrieved successfully", events, nil)
}

func (ctrl *controller) GetEventsByDay(c *gin.Context) {
	var q EventsByDayQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid query parameters", nil, err.Error())
		return
	}

	events := ctrl.service.GetEventsByDay(q.Page, q.Days, q.Filters())
	response.RespondJSON(c, "success", http.StatusOK, "Events retrieved successfully", events, nil)
}

func (ctrl *controller) GetEvent(c *gin.Context) {
	eventID, err := strconv.Atoi(c.Param("eventId"))
	if err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid event ID", nil, err.Error())
		return
	}

	event, ok := ctrl.preloader.PreloadEvent(c.Request.Context(), eventID)
	if !ok {
		response.RespondJSON(c, "error", http.StatusNotFound, "Event not found", nil, nil)
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Event retrieved successfully", event, nil)
}

func (ctrl *controller) GetFeaturedEvents(c *gin.Context) {
	response.RespondJSON(c, "success", http.StatusOK, "Featured events retrieved successfully", ctrl.catalog.Featured(), nil)
}

func (ctrl *controller) GetFilters(c *gin.Context) {
	filters := FiltersResponse{
		Categories: ctrl.catalog.Categories(),
		Days:       ctrl.catalog.Days(),
	}
	response.RespondJSON(c, "success", http.StatusOK, "Filters retrieved successfully", filters, nil)
}
