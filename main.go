package main

import (
	"math/rand"
	"net/http"
	"slices"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/Carlos-Manoel-WorkTi/gameup/config"
	"github.com/Carlos-Manoel-WorkTi/gameup/game"
	"github.com/Carlos-Manoel-WorkTi/gameup/logger"
)

func CreateServer(allowedOrigins []string) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.GET("/health", func(ctx *gin.Context) { ctx.String(http.StatusOK, "healthy") })

	r.Use(func(ctx *gin.Context) {
		origin := ctx.Request.Header.Get("Origin")
		if origin == "" || slices.Contains(allowedOrigins, origin) {
			ctx.Next()
			return
		}
		ctx.String(http.StatusForbidden, "forbidden origin")
		ctx.Abort()
	})

	r.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowCredentials: true,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders: []string{
			"Content-Type",
			"Upgrade",
			"Connection",
			"Sec-WebSocket-Key",
			"Sec-WebSocket-Version",
			"Sec-WebSocket-Extensions",
			"Sec-WebSocket-Protocol",
		},
	}))

	return r
}

func main() {
	env := config.Load()
	logger.Init(env.Debug)
	if env.GinMode != "" {
		gin.SetMode(env.GinMode)
	}

	hub := game.NewHub()
	registry := game.NewRegistry()
	answers := game.NewAnswerSource(rand.New(rand.NewSource(time.Now().UnixNano())))
	coordinator := game.NewCoordinator(registry, hub, answers, env.BotMoveDelay)
	handler := game.NewHandler(hub, coordinator)

	r := CreateServer(env.AllowedOrigins)
	r.GET("/ws", handler.SocketHandler)

	log.Info().Str("port", env.Port).Msg("server listening")
	if err := r.Run(":" + env.Port); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
