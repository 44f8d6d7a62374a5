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

	"pos-system/internal/config"
	"pos-system/internal/es"
	"pos-system/internal/httpserver"
	"pos-system/internal/logging"
	"pos-system/internal/mykafka"
	"pos-system/internal/repo"
	"pos-system/internal/service"
	"pos-system/internal/service/search"
)

func main() {
	configuration, err := config.LoadConfig()
	if err != nil {
		log.Fatal(err)
	}

	db, err := config.InitDB()
	if err != nil {
		log.Fatalf("database init error: %v", err)
	}

	logger := logging.New(configuration.LOG_LEVEL)

	var prod *mykafka.Producer
	if configuration.KAFKA_ADDRESS != "" {
		prod, err = mykafka.NewProducer(
			[]string{configuration.KAFKA_ADDRESS},
			[]string{"order_events", "menu_events"},
		)
		if err != nil {
			log.Fatal(err)
		}
	} else {
		log.Println("KAFKA_ADDRESS not set, events disabled")
	}

	gormRepo := repo.New(db)
	hub := service.NewHub()
	selected := &service.SelectedService{Repo: gormRepo}

	orderSvc := &service.OrderService{Repo: gormRepo, Selected: selected, Hub: hub}
	cartSvc := &service.CartService{Repo: gormRepo, Hub: hub}
	menuSvc := &service.MenuService{Repo: gormRepo, Hub: hub}
	employeeSvc := &service.EmployeeService{Repo: gormRepo}
	expenseSvc := &service.ExpenseService{Repo: gormRepo}
	reportSvc := &service.ReportService{Repo: gormRepo}
	authSvc := &service.AuthService{Repo: gormRepo, JWTSecret: []byte(configuration.JWT_SECRET)}

	deps := httpserver.Deps{
		AuthHandler:     &httpserver.AuthHTTP{Svc: authSvc},
		OrderHandler:    &httpserver.OrderHTTP{Svc: orderSvc, Producer: prod},
		CartHandler:     &httpserver.CartHTTP{Svc: cartSvc, Producer: prod},
		MenuHandler:     &httpserver.MenuHTTP{Svc: menuSvc, Producer: prod},
		EmployeeHandler: &httpserver.EmployeeHTTP{Svc: employeeSvc},
		ExpenseHandler:  &httpserver.ExpenseHTTP{Svc: expenseSvc},
		ReportHandler:   &httpserver.ReportHTTP{Svc: reportSvc},
		JWTSecret:       []byte(configuration.JWT_SECRET),
	}

	if configuration.ES_URL != "" {
		esClient, err := es.NewClient(configuration)
		if err != nil {
			log.Fatal(err)
		}
		menuSvc.Indexer = &search.ESIndexer{ES: esClient, Index: configuration.ES_INDEX}
		deps.SearchHandler = &httpserver.SearchHTTP{ES: esClient, Index: configuration.ES_INDEX}
	} else {
		log.Println("ES_URL not set, menu search disabled")
	}

	e := echo.New()
	e.Pre(middleware.RemoveTrailingSlash())
	e.Use(middleware.Recover(), middleware.RequestID(), httpserver.RequestLogger(logger))
	e.Validator = httpserver.NewValidator()

	httpserver.Register(e, &deps)

	srv := &http.Server{
		Addr:         configuration.HTTP_ADDR,
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

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
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
