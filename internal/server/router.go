package server

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"storyforge/internal/config"
	"storyforge/internal/story"
)

const (
	serviceName     = "storyforge"
	requestIDHeader = "X-Request-ID"
)

// NewRouter 初始化 Gin 路由
func NewRouter(cfg *config.Config, runner StoryRunner) *gin.Engine {
	router := gin.Default()

	router.Use(otelgin.Middleware(serviceName))
	router.Use(corsMiddleware(cfg.HTTP.CORSOrigins))
	router.Use(requestContext())

	router.POST("/generate-story", handleGenerateStory(runner))

	return router
}

func corsMiddleware(origins []string) gin.HandlerFunc {
	c := cors.Config{
		AllowMethods: []string{http.MethodPost, http.MethodOptions},
		AllowHeaders: []string{"Content-Type", "Authorization", "X-Requested-With", requestIDHeader},
	}
	if len(origins) == 0 {
		c.AllowAllOrigins = true
	} else {
		c.AllowOrigins = origins
	}
	return cors.New(c)
}

// requestContext 为每个请求生成 request id，并把带 id 的 logger 放入 context
func requestContext() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Header(requestIDHeader, id)

		entry := logrus.WithField("request_id", id)
		c.Request = c.Request.WithContext(story.ContextWithLogger(c.Request.Context(), entry))
		c.Next()
	}
}
