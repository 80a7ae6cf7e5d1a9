package main

import (
	"log"
	"os"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/sipgo/sip-calculator/internal/api/handlers"
	"github.com/sipgo/sip-calculator/internal/api/middleware"
	"github.com/sipgo/sip-calculator/internal/calculation"
	"github.com/sipgo/sip-calculator/internal/store"
)

func main() {
	port := os.Getenv("API_PORT")
	if port == "" {
		port = "8080"
	}

	if os.Getenv("API_ENV") == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Memory cache by default; Redis when an address is configured so
	// multiple replicas share computed projections.
	var cache store.Cache = store.NewMemoryCache()
	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		log.Printf("Using Redis result cache at %s", addr)
		cache = store.NewRedisCache(addr, 24*time.Hour)
	}

	engine := calculation.NewEngine()
	sipHandler := handlers.NewSIPHandler(engine, cache)
	fundHandler := handlers.NewFundHandler(engine)

	router := gin.Default()
	router.Use(middleware.CORS())
	router.Use(middleware.ErrorHandler())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	v1 := router.Group("/api/v1")
	{
		sip := v1.Group("/sip")
		{
			sip.POST("/forward", sipHandler.ComputeForward)
			sip.POST("/reverse", sipHandler.ComputeReverse)
			sip.POST("/verify", sipHandler.VerifyRoundTrip)
			sip.POST("/projection", sipHandler.GenerateProjection)
		}

		funds := v1.Group("/funds")
		{
			funds.POST("/score", fundHandler.ScoreFund)
			funds.POST("/allocation", fundHandler.SuggestAllocation)
		}
	}

	log.Printf("SIP calculator API listening on :%s", port)
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("server failed: %v", err)
	}
}
