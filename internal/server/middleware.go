package server

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Zachkp/portfolio/internal/portfolio"
	"github.com/Zachkp/portfolio/internal/visits"
)

const (
	requestIDHeader = "X-Request-ID"
	requestIDKey    = "request_id"

	visitWriteTimeout = 5 * time.Second
)

func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(requestIDKey, id)
		c.Header(requestIDHeader, id)
		c.Next()
	}
}

func requestLogger(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		level := slog.LevelInfo
		if c.Writer.Status() >= 500 {
			level = slog.LevelError
		}
		logger.Log(c.Request.Context(), level, "request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration", time.Since(start),
			"request_id", c.GetString(requestIDKey),
		)
	}
}

// visitorTracking records page views with hashed IPs. Fragments other than
// nav, admin and health routes are skipped, and so is anyone sending DNT.
func (s *Server) visitorTracking() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		var raw string
		switch c.FullPath() {
		case "/":
			raw = c.Query("section")
		case NavFragmentPrefix + ":section":
			raw = c.Param("section")
		default:
			return
		}

		if c.Request.Method != http.MethodGet || c.Writer.Status() >= 400 {
			return
		}
		if c.GetHeader("DNT") == "1" {
			return
		}

		// only known sections are counted
		var section string
		if parsed, err := portfolio.ParseSection(raw); err == nil {
			section = parsed.ID()
		}

		visit := visits.Visit{
			HashedIP:  s.opts.Hasher.Hash(c.ClientIP()),
			UserAgent: c.GetHeader("User-Agent"),
			Path:      c.Request.URL.Path,
			Section:   section,
			Timestamp: s.opts.Now(),
		}

		s.wg.Add(1)
		go func() {
			defer s.wg.Done()
			ctx, cancel := context.WithTimeout(context.Background(), visitWriteTimeout)
			defer cancel()
			if err := s.opts.Visits.Record(ctx, visit); err != nil {
				s.logger.Error("Error recording visitor", "error", err)
			}
		}()
	}
}
