package http

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/student-sumit04/AI-powered-meeting-notes-summarizer-and-sharer/internal/config"
)

// Origins allowed in production mode. Development allows everything.
var allowedOrigins = []string{
	"https://ai-powered-meeting-notes-summarizer-and-sharer.vercel.app",
	"https://ai-meeting-summarizer.vercel.app",
	"http://localhost:3000",
}

func CORS(cfg config.Config) gin.HandlerFunc {
	corsCfg := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "X-Requested-With", "Content-Type", "Accept", "Authorization"},
		AllowCredentials: true,
	}

	if cfg.IsProduction() {
		corsCfg.AllowOrigins = allowedOrigins
	} else {
		corsCfg.AllowOriginFunc = func(origin string) bool { return true }
	}

	return cors.New(corsCfg)
}

const requestIDKey = "requestID"

func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(requestIDKey, id)
		c.Header("X-Request-ID", id)
		c.Next()
	}
}

func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		duration := time.Since(start)
		log.Printf("%s %s %d %s id=%s", c.Request.Method, c.Request.URL.Path, c.Writer.Status(), duration, c.GetString(requestIDKey))
	}
}

func MaxBodySize(limit int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if limit > 0 {
			c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, limit)
		}
		c.Next()
	}
}
