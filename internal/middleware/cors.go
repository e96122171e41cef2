package middleware

import (
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// CORS allows any subdomain of the primary domain as an origin, since every
// couple site lives on its own subdomain. Extra origins cover local frontend
// dev servers.
func CORS(primaryDomain string, extraOrigins ...string) gin.HandlerFunc {
	extra := make(map[string]bool, len(extraOrigins))
	for _, o := range extraOrigins {
		extra[o] = true
	}

	return cors.New(cors.Config{
		AllowOriginFunc: func(origin string) bool {
			return originAllowed(origin, primaryDomain) || extra[origin]
		},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Accept", "Origin", "User-Agent", "Cache-Control", "X-Requested-With"},
		AllowCredentials: true,
		MaxAge:           24 * time.Hour,
	})
}

func originAllowed(origin, primaryDomain string) bool {
	if origin == "" || primaryDomain == "" {
		return false
	}
	host := strings.TrimPrefix(strings.TrimPrefix(origin, "https://"), "http://")
	if i := strings.LastIndex(host, ":"); i >= 0 {
		host = host[:i]
	}
	return host == primaryDomain || strings.HasSuffix(host, "."+primaryDomain)
}
