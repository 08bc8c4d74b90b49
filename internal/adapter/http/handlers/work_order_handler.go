package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	request "moto_workshop/internal/adapter/http/dto/request"
	response "moto_workshop/internal/adapter/http/dto/response"
	"moto_workshop/internal/domain/entities"
	"moto_workshop/internal/usecase"
	"moto_workshop/pkg"
)

type WorkOrderHandler struct {
	usecase usecase.IWorkOrderUseCase
}

func NewWorkOrderHandler(uc usecase.IWorkOrderUseCase) *WorkOrderHandler {
	return &WorkOrderHandler{usecase: uc}
}

func (h *WorkOrderHandler) CreateWorkOrder(c *gin.Context) {
	var payload request.CreateWorkOrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, errInvalidRequest)
		return
	}

	wo, err := h.usecase.CreateWorkOrder(c.Request.Context(), usecase.CreateWorkOrderInput{
		JobNumber:       payload.JobNumber,
		Description:     payload.Description,
		CustomerID:      payload.CustomerID,
		Priority:        entities.WorkOrderPriority(strings.ToLower(strings.TrimSpace(payload.Priority))),
		CustomerWaiting: payload.CustomerWaiting,
		EstimatedHours:  payload.EstimatedHours,
	})
	if err != nil {
		respondError(c, mapWorkOrderError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromWorkOrder(wo))
}

func (h *WorkOrderHandler) GetWorkOrder(c *gin.Context) {
	wo, err := h.usecase.GetWorkOrder(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, mapWorkOrderError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromWorkOrder(wo))
}

func (h *WorkOrderHandler) UpdateStatus(c *gin.Context) {
	var payload request.UpdateWorkOrderStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, errInvalidRequest)
		return
	}

	status := entities.WorkOrderStatus(strings.ToLower(strings.TrimSpace(payload.Status)))
	wo, err := h.usecase.UpdateStatus(c.Request.Context(), c.Param("id"), status)
	if err != nil {
		respondError(c, mapWorkOrderError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromWorkOrder(wo))
}

func mapWorkOrderError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidWorkOrderID), errors.Is(err, usecase.ErrInvalidDescription),
		errors.Is(err, usecase.ErrInvalidPriority), errors.Is(err, usecase.ErrInvalidStatus),
		errors.Is(err, usecase.ErrInvalidEstimatedHours):
		return pkg.NewDomainError("INVALID_REQUEST", "Invalid request", err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrWorkOrderNotFound):
		return pkg.NewDomainErrorSimple("WORK_ORDER_NOT_FOUND", "Work order not found", http.StatusNotFound)
	default:
		return internalError(err)
	}
}
