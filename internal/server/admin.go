package server

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// adminAuth checks the bearer token in constant time
func (s *Server) adminAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := strings.CutPrefix(c.GetHeader("Authorization"), "Bearer ")
		if !ok || subtle.ConstantTimeCompare([]byte(token), []byte(s.opts.AdminToken)) != 1 {
			s.logger.Warn("Failed admin request", "client", s.clientHash(c))
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}
		c.Next()
	}
}

func (s *Server) setupAdminRoutes(r *gin.Engine) {
	admin := r.Group("/admin")
	admin.Use(s.adminAuth())

	admin.GET("/stats", func(c *gin.Context) {
		if s.opts.Visits == nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "visitor tracking disabled"})
			return
		}

		stats, err := s.opts.Visits.Stats(c.Request.Context(), s.opts.Now())
		if err != nil {
			s.logger.Error("Error loading admin stats", "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load statistics"})
			return
		}
		c.JSON(http.StatusOK, stats)
	})
}

func (s *Server) clientHash(c *gin.Context) string {
	if s.opts.Hasher == nil {
		return ""
	}
	return s.opts.Hasher.Hash(c.ClientIP())
}
