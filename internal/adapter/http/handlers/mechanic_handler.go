package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	request "moto_workshop/internal/adapter/http/dto/request"
	response "moto_workshop/internal/adapter/http/dto/response"
	"moto_workshop/internal/usecase"
	"moto_workshop/pkg"
)

type MechanicHandler struct {
	usecase usecase.IMechanicUseCase
}

func NewMechanicHandler(uc usecase.IMechanicUseCase) *MechanicHandler {
	return &MechanicHandler{usecase: uc}
}

func (h *MechanicHandler) ListMechanics(c *gin.Context) {
	mechanics, err := h.usecase.ListActive(c.Request.Context())
	if err != nil {
		respondError(c, mapMechanicError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromMechanics(mechanics))
}

func (h *MechanicHandler) CreateMechanic(c *gin.Context) {
	var payload request.CreateMechanicRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, errInvalidRequest)
		return
	}

	m, err := h.usecase.CreateMechanic(c.Request.Context(), payload.Name, payload.DailyHoursGoal)
	if err != nil {
		respondError(c, mapMechanicError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromMechanic(m))
}

func mapMechanicError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidMechanicName), errors.Is(err, usecase.ErrInvalidHoursGoal), errors.Is(err, usecase.ErrInvalidMechanicID):
		return pkg.NewDomainError("INVALID_REQUEST", "Invalid request", err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrMechanicNotFound):
		return pkg.NewDomainErrorSimple("MECHANIC_NOT_FOUND", "Mechanic not found", http.StatusNotFound)
	default:
		return internalError(err)
	}
}
