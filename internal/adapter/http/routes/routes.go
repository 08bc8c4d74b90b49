package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "moto_workshop/docs"
	"moto_workshop/internal/adapter/http/handlers"
	"moto_workshop/internal/adapter/http/middleware"
)

// Handlers groups everything the router mounts.
type Handlers struct {
	Schedule       *handlers.ScheduleHandler
	WorkOrders     *handlers.WorkOrderHandler
	Mechanics      *handlers.MechanicHandler
	Invoices       *handlers.InvoiceHandler
	InvoicePayment *handlers.InvoicePaymentHandler
}

// NewRouter builds the gin engine with middlewares, swagger (optional) and
// every /v1 route.
func NewRouter(h Handlers, log *zap.Logger, swagger bool) *gin.Engine {
	router := gin.New()
	setMiddlewares(router, log)

	if swagger {
		router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addWorkshopRoutes(v1, h.Schedule, h.WorkOrders, h.Mechanics)
	addBillingRoutes(v1, h.Invoices, h.InvoicePayment)
	return router
}

func addPingRoutes(rg *gin.RouterGroup) {
	rg.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
}

func setMiddlewares(router *gin.Engine, log *zap.Logger) {
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(log.Named("http")))
	router.Use(middleware.Recovery(log))
}
