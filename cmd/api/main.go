package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/ritu-rajkumar/Ri-Eat/internal/cache"
	"github.com/ritu-rajkumar/Ri-Eat/internal/config"
	"github.com/ritu-rajkumar/Ri-Eat/internal/db"
	"github.com/ritu-rajkumar/Ri-Eat/internal/httpserver"
	"github.com/ritu-rajkumar/Ri-Eat/internal/mailer"
	adminrepo "github.com/ritu-rajkumar/Ri-Eat/internal/repository/admin"
	analyticsrepo "github.com/ritu-rajkumar/Ri-Eat/internal/repository/analytics"
	claimrepo "github.com/ritu-rajkumar/Ri-Eat/internal/repository/claim"
	customerrepo "github.com/ritu-rajkumar/Ri-Eat/internal/repository/customer"
	feedbackrepo "github.com/ritu-rajkumar/Ri-Eat/internal/repository/feedback"
	menurepo "github.com/ritu-rajkumar/Ri-Eat/internal/repository/menu"
	orderrepo "github.com/ritu-rajkumar/Ri-Eat/internal/repository/order"
	tokenrepo "github.com/ritu-rajkumar/Ri-Eat/internal/repository/token"
	adminsvc "github.com/ritu-rajkumar/Ri-Eat/internal/service/admin"
	analyticssvc "github.com/ritu-rajkumar/Ri-Eat/internal/service/analytics"
	customersvc "github.com/ritu-rajkumar/Ri-Eat/internal/service/customer"
	feedbacksvc "github.com/ritu-rajkumar/Ri-Eat/internal/service/feedback"
	menusvc "github.com/ritu-rajkumar/Ri-Eat/internal/service/menu"
	ordersvc "github.com/ritu-rajkumar/Ri-Eat/internal/service/order"
	rewardsvc "github.com/ritu-rajkumar/Ri-Eat/internal/service/reward"
	"github.com/ritu-rajkumar/Ri-Eat/internal/tracing"
)

func main() {
	cfg := config.FromEnv()
	logger := log.New(os.Stdout, "[api] ", log.LstdFlags|log.LUTC|log.Lshortfile)

	ctx := context.Background()

	shutdownTracing, err := tracing.Init(cfg.TracingEnabled, cfg.JaegerEndpoint)
	if err != nil {
		logger.Fatalf("init tracing: %v", err)
	}

	dbpool, err := db.Connect(ctx, cfg.DBConnString)
	if err != nil {
		logger.Fatalf("connect to db: %v", err)
	}
	defer dbpool.Close()

	var c cache.Cache
	if cfg.RedisAddr != "" {
		c, err = cache.NewRedis(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err != nil {
			logger.Fatalf("connect to redis: %v", err)
		}
		logger.Printf("cache: redis at %s", cfg.RedisAddr)
	} else {
		c = cache.NewMemory()
		logger.Printf("cache: in-memory")
	}

	mail := mailer.New(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword, cfg.MailFrom, logger)

	customerRepo := customerrepo.NewPostgres(dbpool, logger)
	menuRepo := menurepo.NewPostgres(dbpool)
	orderRepo := orderrepo.NewPostgres(dbpool, logger)
	claimRepo := claimrepo.NewPostgres(dbpool)
	feedbackRepo := feedbackrepo.NewPostgres(dbpool)
	adminRepo := adminrepo.NewPostgres(dbpool)
	tokenRepo := tokenrepo.NewPostgres(dbpool)
	analyticsRepo := analyticsrepo.NewPostgres(dbpool)

	rewardService := rewardsvc.New(claimRepo, customerRepo, c, cfg.CacheTTL, logger)
	customerService := customersvc.New(customerRepo, rewardService)
	menuService := menusvc.New(menuRepo, c, cfg.CacheTTL, logger)
	orderService := ordersvc.New(orderRepo, menuRepo, customerRepo, rewardService)
	feedbackService := feedbacksvc.New(feedbackRepo)
	analyticsService := analyticssvc.New(analyticsRepo)
	adminService := adminsvc.New(adminRepo, tokenRepo, cfg.AdminTokenTTL, mail, cfg.ResetTokenTTL, cfg.ResetBaseURL, logger)

	srv := httpserver.New(cfg.HTTPAddr, logger, dbpool, httpserver.Deps{
		Customers: customerService,
		Menu:      menuService,
		Orders:    orderService,
		Rewards:   rewardService,
		Feedback:  feedbackService,
		Analytics: analyticsService,
		Admins:    adminService,
	})

	serverErr := make(chan error, 1)
	go func() {
		logger.Printf("starting http server on %s", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-stopCh:
		logger.Printf("received signal %s, shutting down", sig)
	case err := <-serverErr:
		logger.Printf("server error: %v", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Printf("graceful shutdown failed: %v", err)
	} else {
		logger.Printf("server stopped")
	}

	if err := shutdownTracing(shutdownCtx); err != nil {
		logger.Printf("tracing shutdown failed: %v", err)
	}
}
