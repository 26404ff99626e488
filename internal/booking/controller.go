package booking

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"virasat/internal/shared/utils/response"
)

type Controller interface {
	CreateSession(c *gin.Context)
	GetSession(c *gin.Context)
	GetSeatingTiers(c *gin.Context)
	SelectTier(c *gin.Context)
	AdjustQuantity(c *gin.Context)
	Confirm(c *gin.Context)
	Restart(c *gin.Context)
}

type controller struct {
	service   Service
	validator *validator.Validate
}

func NewController(service Service) Controller {
	return &controller{
		service:   service,
		validator: validator.New(),
	}
}

func statusForError(err error) int {
	switch {
	case errors.Is(err, ErrEventNotFound),
		errors.Is(err, ErrSessionNotFound),
		errors.Is(err, ErrTierNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrTierSoldOut),
		errors.Is(err, ErrInvalidTransition):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func (ctrl *controller) CreateSession(c *gin.Context) {
	var req CreateSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	if err := ctrl.validator.Struct(&req); err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Validation failed", nil, err.Error())
		return
	}

	session, err := ctrl.service.CreateSession(c.Request.Context(), req.EventID)
	if err != nil {
		response.RespondJSON(c, "error", statusForError(err), err.Error(), nil, nil)
		return
	}

	response.RespondJSON(c, "success", http.StatusCreated, "Booking session created", session, nil)
}

func (ctrl *controller) GetSession(c *gin.Context) {
	session, err := ctrl.service.GetSession(c.Request.Context(), c.Param("sessionId"))
	if err != nil {
		response.RespondJSON(c, "error", statusForError(err), err.Error(), nil, nil)
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Booking session retrieved", session, nil)
}

func (ctrl *controller) GetSeatingTiers(c *gin.Context) {
	response.RespondJSON(c, "success", http.StatusOK, "Seating tiers retrieved", ctrl.service.Tiers(), nil)
}

func (ctrl *controller) SelectTier(c *gin.Context) {
	var req SelectTierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	if err := ctrl.validator.Struct(&req); err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Validation failed", nil, err.Error())
		return
	}

	session, err := ctrl.service.SelectTier(c.Request.Context(), c.Param("sessionId"), req.TierID)
	if err != nil {
		response.RespondJSON(c, "error", statusForError(err), err.Error(), nil, nil)
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Seating tier selected", session, nil)
}

func (ctrl *controller) AdjustQuantity(c *gin.Context) {
	var req AdjustQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	session, err := ctrl.service.AdjustQuantity(c.Request.Context(), c.Param("sessionId"), req.Quantity)
	if err != nil {
		response.RespondJSON(c, "error", statusForError(err), err.Error(), nil, nil)
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Quantity updated", session, nil)
}

func (ctrl *controller) Confirm(c *gin.Context) {
	session, err := ctrl.service.Confirm(c.Request.Context(), c.Param("sessionId"))
	if err != nil {
		response.RespondJSON(c, "error", statusForError(err), err.Error(), nil, nil)
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Booking confirmed", session, nil)
}

func (ctrl *controller) Restart(c *gin.Context) {
	session, err := ctrl.service.Restart(c.Request.Context(), c.Param("sessionId"))
	if err != nil {
		response.RespondJSON(c, "error", statusForError(err), err.Error(), nil, nil)
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Booking restarted", session, nil)
}
