package middleware

import (
	"log/slog"
	"slices"

	"github.com/sanctumos/clawedroad/internal/pkg/config"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// NewCORSMiddleware lets browsers send and read X-Request-ID. A "*" origin
// list opens every origin and turns credentials off, since browsers refuse
// credentialed wildcard responses.
func NewCORSMiddleware(cfg config.CORSConfig) gin.HandlerFunc {
	corsCfg := cors.Config{
		AllowMethods:     cfg.AllowMethods,
		AllowHeaders:     withRequestID(cfg.AllowHeaders),
		ExposeHeaders:    withRequestID(cfg.ExposeHeaders),
		AllowCredentials: cfg.AllowCredentials,
		MaxAge:           cfg.MaxAge,
	}

	if slices.Contains(cfg.AllowOrigins, "*") {
		corsCfg.AllowAllOrigins = true
		if corsCfg.AllowCredentials {
			slog.Warn("CORS credentials disabled for wildcard origin")
			corsCfg.AllowCredentials = false
		}
	} else {
		corsCfg.AllowOrigins = cfg.AllowOrigins
	}

	slog.Info("CORS middleware initialized",
		"allow_origins", cfg.AllowOrigins,
		"allow_all", corsCfg.AllowAllOrigins)
	return cors.New(corsCfg)
}

func withRequestID(headers []string) []string {
	if slices.Contains(headers, headerRequestID) {
		return headers
	}
	return append(slices.Clone(headers), headerRequestID)
}
