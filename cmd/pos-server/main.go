// pos-server is the restaurant point-of-sale backend: menu reads, the
// order lifecycle, table occupancy, and payment recording over REST.
//
//	@title        RestoPOS API
//	@version      1.0
//	@description  Restaurant point-of-sale backend.
//	@BasePath     /api/v1
package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "restopos/docs"
	"restopos/internal/config"
	"restopos/internal/database"
	"restopos/internal/httpx"
	"restopos/internal/menu"
	"restopos/internal/order"
	"restopos/internal/payment"
	"restopos/internal/table"
)

func main() {
	cfg := config.Load()

	ctx := context.Background()
	pool, err := database.Connect(ctx, cfg.PostgresDSN)
	if err != nil {
		log.Fatalf("[db] %v", err)
	}
	defer pool.Close()

	if err := database.RunMigrations(ctx, pool, cfg.MigrationsDir); err != nil {
		log.Fatalf("[db] migrations: %v", err)
	}

	orders := order.NewPGRepo(pool)
	items := menu.NewPGRepo(pool)
	tables := table.NewPGRepo(pool)
	payments := payment.NewPGRepo(pool)
	svc := order.NewService(orders, items, tables, payments)

	r := gin.New()
	r.Use(gin.Recovery(), httpx.RequestID(), httpx.Logger(), httpx.ResolvePrincipal())
	r.Use(cors.New(cors.Config{
		AllowAllOrigins:  true,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "X-Request-ID", "X-Staff-ID", "X-Staff-Role"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/healthz", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/api/v1")
	{
		api.POST("/orders", createOrderHandler(svc))
		api.GET("/orders", listOrdersHandler(svc))
		api.GET("/orders/table/:tableId", orderByTableHandler(svc))
		api.GET("/orders/:id", getOrderHandler(svc))
		api.GET("/orders/:id/status", getOrderStatusHandler(svc))
		api.PUT("/orders/:id", updateOrderHandler(svc))
		api.PUT("/orders/:id/status", setOrderStatusHandler(svc))
		api.DELETE("/orders/:id", cancelOrderHandler(svc))

		api.GET("/cashier/orders", cashierOrdersHandler(svc))
		api.GET("/cashier/orders/:id", cashierOrderHandler(svc))
		api.POST("/cashier/orders/:id/pay", payOrderHandler(svc))
		api.POST("/cashier/orders/:id/close", closeOrderHandler(svc))
		api.GET("/cashier/payments", listPaymentsHandler(payments))

		api.GET("/tables", listTablesHandler(tables))
		api.GET("/tables/:id", getTableHandler(tables))
		api.GET("/menu", listMenuHandler(items))
	}

	log.Printf("pos-server listening on %s", cfg.HTTPAddr)
	if err := r.Run(cfg.HTTPAddr); err != nil {
		log.Fatalf("server: %v", err)
	}
}
