package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/nsemenov/wholesale_backend/internal/config"
	"github.com/nsemenov/wholesale_backend/internal/es"
	"github.com/nsemenov/wholesale_backend/internal/httpserver"
	"github.com/nsemenov/wholesale_backend/internal/logging"
	"github.com/nsemenov/wholesale_backend/internal/mykafka"
	"github.com/nsemenov/wholesale_backend/internal/repo"
	"github.com/nsemenov/wholesale_backend/internal/service"
	loggingmw "github.com/nsemenov/wholesale_backend/pkg/middleware/logging"
)

const productIndex = "product"

func main() {
	configuration, err := config.LoadConfig()
	if err != nil {
		log.Fatal(err)
	}

	logger := logging.New(configuration.LOG_LEVEL)

	ctx := context.Background()
	db, err := config.InitDB(ctx, configuration)
	if err != nil {
		log.Fatalf("database init error: %v", err)
	}

	var prod *mykafka.Producer
	if configuration.KAFKA_ADDRESS != "" {
		prod = mykafka.NewProducer([]string{configuration.KAFKA_ADDRESS})
	}

	r := repo.New(db)
	catalogSvc := &service.CatalogService{Repo: r}
	retailerSvc := &service.RetailerService{Repo: r}
	orderSvc := &service.OrderService{Repo: r}

	productHandler := &httpserver.ProductHTTP{Svc: catalogSvc, Producer: prod, Index: productIndex}
	var searchHandler *httpserver.SearchHTTP
	if configuration.ES_URL != "" {
		esClient, err := es.NewClient(configuration)
		if err != nil {
			log.Fatal(err)
		}
		productHandler.ES = esClient
		searchHandler = &httpserver.SearchHTTP{ES: esClient, Index: productIndex}
	}

	e := echo.New()
	e.Pre(middleware.RemoveTrailingSlash())
	e.Use(middleware.Recover(), middleware.RequestID())
	e.Use(loggingmw.RequestLogger(logger))

	deps := httpserver.Deps{
		ProductHandler:  productHandler,
		RetailerHandler: &httpserver.RetailerHTTP{Svc: retailerSvc, Producer: prod},
		OrderHandler:    &httpserver.OrderHTTP{Svc: orderSvc, Producer: prod},
		ExportHandler:   &httpserver.ExportHTTP{Svc: orderSvc},
		SearchHandler:   searchHandler,
	}
	httpserver.Register(e, &deps)

	srv := &http.Server{
		Addr:         ":" + configuration.SERVER_PORT,
		Handler:      e,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("http server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("server shutdown error: %v", err)
	}

	if sqlDB, err := db.DB(); err == nil {
		if err := sqlDB.Close(); err != nil {
			log.Printf("db close error: %v", err)
		}
	} else {
		log.Printf("db() error: %v", err)
	}

	if prod != nil {
		if err := prod.Close(); err != nil {
			log.Printf("kafka close error: %v", err)
		}
	}

	log.Println("shutdown complete")
}
