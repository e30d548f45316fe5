// Package api exposes the bot's status endpoints: a health check, a
// small JSON status document for the public status page, and the
// Prometheus scrape target.
package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/whdzera/atem/internal/bot/whatsapp"
	"github.com/whdzera/atem/internal/browse"
	"github.com/whdzera/atem/internal/match"
)

type statusResponse struct {
	Name           string   `json:"name"`
	UptimeSeconds  int64    `json:"uptime_seconds"`
	CorpusSize     int      `json:"corpus_size"`
	ActiveSessions int      `json:"active_sessions"`
	Platforms      []string `json:"platforms"`
}

// SetupRouter builds the status server. CORS is open so the project's
// status page can read /api/status from the browser. When a WhatsApp
// engine is attached, the gateway's inbound webhook is mounted too.
func SetupRouter(index *match.Index, store *browse.Store, platforms []string, waEngine *whatsapp.Engine) *gin.Engine {
	router := gin.Default()

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowMethods = []string{"GET", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept"}
	router.Use(cors.New(corsConfig))

	startedAt := time.Now()

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	apiGroup := router.Group("/api")
	{
		apiGroup.GET("/status", func(c *gin.Context) {
			c.JSON(http.StatusOK, statusResponse{
				Name:           "atem",
				UptimeSeconds:  int64(time.Since(startedAt).Seconds()),
				CorpusSize:     index.Len(),
				ActiveSessions: store.Active(),
				Platforms:      platforms,
			})
		})

		if waEngine != nil {
			apiGroup.POST("/whatsapp/inbound", func(c *gin.Context) {
				var msg whatsapp.Message
				if err := c.ShouldBindJSON(&msg); err != nil {
					c.JSON(http.StatusBadRequest, gin.H{"error": "invalid message payload"})
					return
				}
				// Replies go back through the gateway transport, so the
				// webhook can acknowledge immediately.
				go func() {
					ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
					defer cancel()
					waEngine.HandleMessage(ctx, msg)
				}()
				c.JSON(http.StatusOK, gin.H{"status": "accepted"})
			})
		}
	}

	return router
}
