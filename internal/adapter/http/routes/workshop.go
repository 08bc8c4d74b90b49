package routes

import (
	"github.com/gin-gonic/gin"

	"moto_workshop/internal/adapter/http/handlers"
)

const (
	PathSchedule   = "/schedule"
	PathMechanics  = "/mechanics"
	PathWorkOrders = "/work-orders"
)

func addWorkshopRoutes(rg *gin.RouterGroup, schedule *handlers.ScheduleHandler, workOrders *handlers.WorkOrderHandler, mechanics *handlers.MechanicHandler) {
	board := rg.Group(PathSchedule)
	{
		board.GET("/week", schedule.GetWeek)
		board.GET("/week/export", schedule.ExportWeek)
		board.GET("/backlog", schedule.GetBacklog)
	}

	mech := rg.Group(PathMechanics)
	{
		mech.GET("", mechanics.ListMechanics)
		mech.POST("", mechanics.CreateMechanic)
		mech.GET("/:id/capacity", schedule.GetMechanicCapacity)
		mech.GET("/:id/calendar.ics", schedule.GetMechanicCalendar)
	}

	orders := rg.Group(PathWorkOrders)
	{
		orders.POST("", workOrders.CreateWorkOrder)
		orders.GET("/:id", workOrders.GetWorkOrder)
		orders.PATCH("/:id/status", workOrders.UpdateStatus)
		orders.PUT("/:id/schedule", schedule.ScheduleWorkOrder)
	}
}
