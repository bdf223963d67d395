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

	"github.com/redis/go-redis/v9"

	"tulynx-storefront/internal/cart"
	"tulynx-storefront/internal/catalog"
	"tulynx-storefront/internal/checkout"
	"tulynx-storefront/internal/config"
	"tulynx-storefront/internal/db"
	"tulynx-storefront/internal/httpserver"
	"tulynx-storefront/internal/notify"
	"tulynx-storefront/internal/otp"
	messagerepo "tulynx-storefront/internal/repository/message"
	orderrepo "tulynx-storefront/internal/repository/order"
	authsvc "tulynx-storefront/internal/service/auth"
	ordersvc "tulynx-storefront/internal/service/order"
)

func main() {
	cfg := config.FromEnv()
	logger := log.New(os.Stdout, "[api] ", log.LstdFlags|log.LUTC|log.Lshortfile)

	ctx := context.Background()
	dbpool, err := db.Connect(ctx, cfg.DBConnString)
	if err != nil {
		logger.Fatalf("connect to db: %v", err)
	}
	defer dbpool.Close()

	mongoDB, err := db.ConnectMongo(ctx, cfg.MongoURI, cfg.MongoDatabase)
	if err != nil {
		logger.Fatalf("connect to mongo: %v", err)
	}
	defer func() {
		if err := mongoDB.Client().Disconnect(context.Background()); err != nil {
			logger.Printf("disconnect mongo: %v", err)
		}
	}()

	cat, err := catalog.Load()
	if err != nil {
		logger.Fatalf("load catalog: %v", err)
	}

	var otpStore otp.Store
	if cfg.RedisAddr != "" {
		otpStore = otp.NewRedisStore(redis.NewClient(&redis.Options{Addr: cfg.RedisAddr}))
		logger.Printf("otp store: redis at %s", cfg.RedisAddr)
	} else {
		memStore := otp.NewMemoryStore(time.Minute)
		defer memStore.Close()
		otpStore = memStore
		logger.Printf("otp store: in-process")
	}

	sender := &notify.LogSender{Logger: logger}
	mailer := &notify.OrderMailer{Email: sender, Logger: logger}

	carts := cart.NewStore()
	orderRepo := orderrepo.NewMongo(mongoDB)
	checkoutService := checkout.NewService(carts, orderRepo, checkout.DefaultFeeSchedule(), checkout.DefaultDiscountRules(), mailer, logger)
	authService := authsvc.New(otpStore, sender, cfg.OTPTTL, cfg.SessionTTL, logger)
	orderService := ordersvc.New(orderRepo)
	messageRepo := messagerepo.NewPostgres(dbpool, logger)

	srv := httpserver.New(cfg.HTTPAddr, logger, dbpool, mongoDB, httpserver.Deps{
		Catalog:  cat,
		Carts:    carts,
		Checkout: checkoutService,
		Auth:     authService,
		Orders:   orderService,
		Messages: messageRepo,
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
}
