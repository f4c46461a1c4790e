package main

import (
	"context"
	"fmt"

	"github.com/rgladkov/shoporder/internal/adapter/auth"
	"github.com/rgladkov/shoporder/internal/adapter/client/carrier"
	"github.com/rgladkov/shoporder/internal/adapter/client/payment"
	"github.com/rgladkov/shoporder/internal/adapter/config"
	"github.com/rgladkov/shoporder/internal/adapter/handler/http"
	"github.com/rgladkov/shoporder/internal/adapter/logger"
	"github.com/rgladkov/shoporder/internal/adapter/mail"
	"github.com/rgladkov/shoporder/internal/adapter/storage"
	"github.com/rgladkov/shoporder/internal/adapter/storage/repository"
	"github.com/rgladkov/shoporder/internal/core/service"
	"go.uber.org/zap"
)

func main() {
	conf, err := config.NewConfig()
	if err != nil {
		fmt.Printf("config error:%s", err)
		return
	}

	log := logger.NewLogger(conf.App)
	if log == nil {
		fmt.Printf("error creating log")
		return
	}
	defer func() {
		err := log.Sync()
		if err != nil {
			fmt.Printf("log error: %s", err)
		}
	}()

	ctx := context.Background()

	db, err := storage.NewDBStorage(ctx, conf.Database)
	if err != nil {
		log.Error("database error", zap.Error(err))
		return
	}
	err = db.RunMigrations()
	if err != nil {
		log.Error("database migration error", zap.Error(err))
		return
	}

	repo, err := repository.NewRepository(db)
	if err != nil {
		log.Error("repository creating error", zap.Error(err))
		return
	}

	tokenService, err := auth.New(conf.Auth)
	if err != nil {
		log.Error("token service creating error", zap.Error(err))
		return
	}

	// Clients re-read config per call so credential reloads apply without restart.
	paymentClient, err := payment.NewClient(func() *config.Payment { return conf.Payment }, log.Named("Payment"))
	if err != nil {
		log.Error("payment client creating error", zap.Error(err))
		return
	}
	carrierClient, err := carrier.NewClient(func() *config.Carrier { return conf.Carrier }, log.Named("Carrier"))
	if err != nil {
		log.Error("carrier client creating error", zap.Error(err))
		return
	}
	notifier, err := mail.NewNotifier(func() *config.Mail { return conf.Mail }, log.Named("Mail"))
	if err != nil {
		log.Error("notifier creating error", zap.Error(err))
		return
	}

	svc, err := service.NewService(repo, paymentClient, carrierClient, notifier, log.Named("Service"))
	if err != nil {
		log.Error("order service creating error", zap.Error(err))
		return
	}

	paymentHandler, err := http.NewPaymentHandler(svc, log.Named("Payment handler"))
	if err != nil {
		log.Error("payment handler creating error", zap.Error(err))
		return
	}
	orderHandler, err := http.NewOrderHandler(svc, log.Named("Order handler"))
	if err != nil {
		log.Error("order handler creating error", zap.Error(err))
		return
	}
	shipmentHandler, err := http.NewShipmentHandler(svc, log.Named("Shipment handler"))
	if err != nil {
		log.Error("shipment handler creating error", zap.Error(err))
		return
	}

	r, err := http.NewRouter(conf.HTTP, tokenService, paymentHandler, orderHandler, shipmentHandler)
	if err != nil {
		log.Error("router creating error", zap.Error(err))
		return
	}

	err = r.Serve(conf.HTTP.HostString)
	if err != nil {
		log.Error("router serve error", zap.Error(err))
		return
	}
}
