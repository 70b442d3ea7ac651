package router

import (
	"github.com/TTJ-s/qr-annujoom/internal/campaign"
	"github.com/TTJ-s/qr-annujoom/internal/checkout"
	"github.com/TTJ-s/qr-annujoom/internal/handler"
	"github.com/TTJ-s/qr-annujoom/internal/logic"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func Setup(db *gorm.DB, client *campaign.Client, ctrl *checkout.Controller) *gin.Engine {
	r := gin.Default()

	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(corsMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": "qr-annujoom",
		})
	})

	prefs := logic.NewPreferenceLogic(db)
	r.Use(handler.SessionMiddleware(prefs))

	campaignHandler := handler.NewCampaignHandler(client)
	checkoutHandler := handler.NewCheckoutHandler(ctrl)
	preferenceHandler := handler.NewPreferenceHandler(prefs)
	donationHandler := handler.NewDonationHandler(logic.NewDonationLogic(db))

	// Referral capture from the QR route path.
	r.GET("/user/:user_id", preferenceHandler.CaptureReferral)

	v1 := r.Group("/api/v1")
	{
		campaigns := v1.Group("/campaigns")
		{
			campaigns.GET("", campaignHandler.GetCategories)
			campaigns.GET("/general", campaignHandler.GetGeneral)
			campaigns.GET("/:id", campaignHandler.GetCampaign)
			campaigns.GET("/:id/donations", donationHandler.RecentDonors)
		}

		co := v1.Group("/checkout")
		{
			co.POST("/quote", checkoutHandler.Quote)
			co.POST("/order", checkoutHandler.CreateOrder)
			co.POST("/verify", checkoutHandler.Verify)
			co.POST("/cancel", checkoutHandler.Cancel)
		}

		preferences := v1.Group("/preferences")
		{
			preferences.GET("/language", preferenceHandler.GetLanguage)
			preferences.PUT("/language", preferenceHandler.SetLanguage)
			preferences.POST("/language/toggle", preferenceHandler.ToggleLanguage)
		}
	}

	return r
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
