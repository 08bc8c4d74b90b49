package handlers

import (
	"errors"
	"net/http"
	"net/url"
	"time"

	"github.com/gin-gonic/gin"

	request "moto_workshop/internal/adapter/http/dto/request"
	response "moto_workshop/internal/adapter/http/dto/response"
	"moto_workshop/internal/domain/entities"
	"moto_workshop/internal/domain/scheduling"
	"moto_workshop/internal/infrastructure/reports"
	"moto_workshop/internal/usecase"
	"moto_workshop/pkg"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ScheduleHandler serves the week board, the backlog and job placement.
// Dates in queries and responses are calendar dates in the workshop location.
type ScheduleHandler struct {
	usecase usecase.IScheduleUseCase
	loc     *time.Location
	clock   scheduling.Clock
}

// NewScheduleHandler takes the clock the board is built with so exported
// feeds are stamped with the same instant. A nil clock reads the wall clock.
func NewScheduleHandler(uc usecase.IScheduleUseCase, loc *time.Location, clock scheduling.Clock) *ScheduleHandler {
	if loc == nil {
		loc = time.Local
	}
	if clock == nil {
		clock = scheduling.SystemClock{Location: loc}
	}
	return &ScheduleHandler{usecase: uc, loc: loc, clock: clock}
}

func (h *ScheduleHandler) dateQuery(c *gin.Context) (time.Time, bool) {
	anchor, err := request.ParseDate(c.Query("date"), h.loc)
	if err != nil {
		respondError(c, errInvalidDate)
		return time.Time{}, false
	}
	return anchor, true
}

func (h *ScheduleHandler) GetWeek(c *gin.Context) {
	anchor, ok := h.dateQuery(c)
	if !ok {
		return
	}
	board, err := h.usecase.GetWeekBoard(c.Request.Context(), anchor)
	if err != nil {
		respondError(c, mapScheduleError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromWeekBoard(board, h.loc))
}

// ExportWeek downloads the week board as an xlsx workbook.
func (h *ScheduleHandler) ExportWeek(c *gin.Context) {
	anchor, ok := h.dateQuery(c)
	if !ok {
		return
	}
	board, err := h.usecase.GetWeekBoard(c.Request.Context(), anchor)
	if err != nil {
		respondError(c, mapScheduleError(err))
		return
	}

	buf, filename, err := reports.WeekWorkbook(board)
	if err != nil {
		respondError(c, internalError(err))
		return
	}
	attachment(c, filename)
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}

func (h *ScheduleHandler) GetBacklog(c *gin.Context) {
	backlog, err := h.usecase.ListBacklog(c.Request.Context())
	if err != nil {
		respondError(c, mapScheduleError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromBacklog(backlog))
}

func (h *ScheduleHandler) GetMechanicCapacity(c *gin.Context) {
	day, ok := h.dateQuery(c)
	if !ok {
		return
	}
	load, err := h.usecase.GetMechanicDay(c.Request.Context(), c.Param("id"), day)
	if err != nil {
		respondError(c, mapScheduleError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromDayLoad(load, h.loc))
}

// GetMechanicCalendar serves the mechanic's jobs for the week as an iCalendar feed.
func (h *ScheduleHandler) GetMechanicCalendar(c *gin.Context) {
	anchor, ok := h.dateQuery(c)
	if !ok {
		return
	}
	mechanic, orders, err := h.usecase.ListWeekOrdersForMechanic(c.Request.Context(), c.Param("id"), anchor)
	if err != nil {
		respondError(c, mapScheduleError(err))
		return
	}
	body := reports.MechanicCalendar(mechanic, orders, h.clock.Now())
	c.Data(http.StatusOK, "text/calendar; charset=utf-8", []byte(body))
}

// ScheduleWorkOrder places a job. The typed outcome decides the status code:
// rejected commands map to 4xx, storage failures to 500.
func (h *ScheduleHandler) ScheduleWorkOrder(c *gin.Context) {
	var payload request.ScheduleRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, errInvalidRequest)
		return
	}
	start, err := payload.ResolveStart(h.loc)
	if err != nil {
		respondError(c, pkg.NewDomainError("INVALID_START", err.Error(), err, http.StatusBadRequest))
		return
	}

	result := h.usecase.ScheduleWorkOrder(c.Request.Context(), entities.ScheduleCommand{
		WorkOrderID:   c.Param("id"),
		MechanicID:    payload.MechanicID,
		Start:         start,
		DurationHours: payload.DurationHours,
	})

	switch result.Outcome {
	case entities.ScheduleOutcomeScheduled:
		c.JSON(http.StatusOK, response.ScheduleResponse{
			Outcome:   string(result.Outcome),
			WorkOrder: response.FromWorkOrder(result.WorkOrder),
		})
	case entities.ScheduleOutcomeFailed:
		respondError(c, pkg.NewDomainError("SCHEDULE_UPDATE_FAILED", "The schedule could not be saved", result.Err, http.StatusInternalServerError))
	default:
		respondError(c, mapScheduleError(result.Err))
	}
}

func mapScheduleError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidWorkOrderID), errors.Is(err, usecase.ErrInvalidMechanicID),
		errors.Is(err, usecase.ErrMissingScheduleStart), errors.Is(err, usecase.ErrInvalidDuration):
		return pkg.NewDomainError("INVALID_REQUEST", "Invalid request", err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrWorkOrderNotFound):
		return pkg.NewDomainErrorSimple("WORK_ORDER_NOT_FOUND", "Work order not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrMechanicNotFound):
		return pkg.NewDomainErrorSimple("MECHANIC_NOT_FOUND", "Mechanic not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrMechanicInactive):
		return pkg.NewDomainErrorSimple("MECHANIC_INACTIVE", "Mechanic is not active", http.StatusConflict)
	default:
		return internalError(err)
	}
}

func attachment(c *gin.Context, filename string) {
	c.Header("Content-Description", "File Transfer")
	c.Header("Content-Disposition", "attachment; filename*=UTF-8''"+url.QueryEscape(filename))
}
