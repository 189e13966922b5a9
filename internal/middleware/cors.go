package middleware

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// AdminCORS restricts the staff API to the dashboard origin. The storefront
// endpoints stay wide open; only the dashboard sends its bearer token here.
func AdminCORS(adminURL string) gin.HandlerFunc {
	return cors.New(cors.Config{
		AllowOrigins: []string{adminURL},
		AllowMethods: []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Authorization"},
		MaxAge:       12 * time.Hour,
	})
}
