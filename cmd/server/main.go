package main

import (
	"log"

	"github.com/TTJ-s/qr-annujoom/internal/campaign"
	"github.com/TTJ-s/qr-annujoom/internal/checkout"
	"github.com/TTJ-s/qr-annujoom/internal/config"
	"github.com/TTJ-s/qr-annujoom/internal/logger"
	"github.com/TTJ-s/qr-annujoom/internal/logic"
	"github.com/TTJ-s/qr-annujoom/internal/payment"
	"github.com/TTJ-s/qr-annujoom/internal/repository"
	"github.com/TTJ-s/qr-annujoom/internal/router"
	"github.com/TTJ-s/qr-annujoom/internal/task"
	"github.com/gin-gonic/gin"
)

func main() {
	cfg := config.Load()
	logger.Init(cfg.Log)

	db, err := repository.Init(cfg.Database)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}

	client := campaign.NewClient(cfg.Upstream.BaseURL, cfg.Upstream.TimeoutDuration())

	razorpay := payment.NewRazorpay(cfg.Razorpay.KeyID, cfg.Razorpay.KeySecret)
	gateways := payment.Registry{
		payment.MethodRazorpay: razorpay,
	}
	if cfg.Mswipe.Enabled {
		gateways[payment.MethodMswipe] = payment.NewMswipe()
	}

	ctrl := checkout.NewController(
		checkout.Options{
			RequireContact: cfg.Checkout.RequireContact,
			Currency:       cfg.Checkout.Currency,
		},
		client,
		client,
		client,
		gateways,
		logic.NewPreferenceLogic(db),
		logic.NewDonationLogic(db),
	)

	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := router.Setup(db, client, ctrl)

	task.Start(db, razorpay, cfg)

	log.Printf("Server starting on port %s", cfg.Server.Port)
	if err := r.Run(":" + cfg.Server.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
