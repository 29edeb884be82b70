package main // Entry point for the CampusBites API server

import (
	"context"
	"log"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/campusbites/campusbites-api/internal/config"
	"github.com/campusbites/campusbites-api/internal/database"
	"github.com/campusbites/campusbites-api/internal/handler"
	"github.com/campusbites/campusbites-api/internal/middleware"
	"github.com/campusbites/campusbites-api/internal/queue"
	"github.com/campusbites/campusbites-api/internal/repository"
	"github.com/campusbites/campusbites-api/internal/router"
	queue_publisher "github.com/campusbites/campusbites-api/internal/service"
)

func main() {
	_ = godotenv.Load() // .env is optional; real env vars win
	cfg := config.Load()

	ctx := context.Background()
	client, err := database.Open(ctx, cfg.MongoURI)
	if err != nil {
		log.Fatalf("mongodb: %v", err)
	}
	defer func() { _ = client.Disconnect(context.Background()) }()
	db := client.Database(cfg.MongoDB)

	rdb := config.NewRedisClient()
	if rdb == nil {
		// Refresh-token sessions live in Redis; without it nobody can log in.
		log.Fatal("redis: connection failed, refusing to start without a session store")
	}

	users := repository.NewUserRepo(db)
	tokens := repository.NewTokenRepo(rdb)
	orders := repository.NewOrderRepo(db)
	catalog := repository.NewCatalogRepo(db)

	authH := handler.NewAuthHandler(cfg, users, tokens)
	catalogH := handler.NewCatalogHandler(catalog)
	orderH := handler.NewOrderHandler(orders, catalog, queue_publisher.PublishOrderPlaced)
	orderAdminH := handler.NewOrderAdminHandler(orders)

	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.Logger())
	e.Use(echomw.Recover())
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: []string{cfg.FrontendURL},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAuthorization},
	}))

	router.RegisterRoutes(e)
	router.RegisterAuth(e, authH, cfg.AccessTokenSecret)
	router.RegisterCatalog(e, catalogH, cfg.AccessTokenSecret)
	router.RegisterOrder(e, orderH,
		middleware.JWTAuth(cfg.AccessTokenSecret),
		middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb),
	)
	router.RegisterOrderAdmin(e, orderAdminH,
		middleware.JWTAuth(cfg.AccessTokenSecret),
		middleware.RequireRole("ADMIN"),
	)

	// Order events are consumed in-process for now; the consumer
	// reconnects on its own if the broker restarts.
	go func() {
		if err := queue.StartOrderConsumer(); err != nil {
			log.Printf("order consumer stopped: %v", err)
		}
	}()

	addr := ":" + cfg.Port
	log.Printf("listening on %s", addr)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
