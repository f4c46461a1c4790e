package http

import (
	"github.com/gin-gonic/gin"
	"github.com/rgladkov/shoporder/internal/adapter/config"
	"github.com/rgladkov/shoporder/internal/core/port"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type Router struct {
	*gin.Engine
}

func NewRouter(
	conf *config.HTTP,
	tokenService port.TokenService,
	paymentHandler *PaymentHandler,
	orderHandler *OrderHandler,
	shipmentHandler *ShipmentHandler) (*Router, error) {

	router := gin.New()
	router.Use(gin.Recovery())

	// Swagger
	router.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := router.Group("/api")
	{
		payment := api.Group("/payment")
		{
			// Webhook authenticates itself via the body signature.
			payment.POST("/webhook", paymentHandler.Webhook)
			payment.POST("/verify", paymentHandler.Verify)
		}

		admin := api.Group("/admin")
		{
			admin.Use(authCheck(tokenService))
			admin.GET("/orders/:id", orderHandler.GetOrder)
			admin.POST("/orders/:id/shipment", shipmentHandler.RegisterShipment)
			admin.GET("/orders/:id/label", shipmentHandler.ShippingLabel)
			admin.POST("/shipments/sync", shipmentHandler.SyncShipments)
		}
	}

	return &Router{router}, nil
}

// Serve starts the HTTP server
func (r *Router) Serve(listenAddr string) error {
	return r.Run(listenAddr)
}
