package main

import (
	"time"

	"github.com/gin-gonic/gin"
	_uuid "github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"isaacdex/config"
	"isaacdex/controller"
	"isaacdex/middleware"
	"isaacdex/model"
	"isaacdex/platform"
	"isaacdex/service"
)

// CORSMiddleware ...
// CORS (Cross-Origin Resource Sharing), open to every origin like the
// public site expects
func CORSMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Max-Age", "86400")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS, PATCH, DELETE")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "X-Requested-With, Content-Type, Origin, Accept, Accept-Encoding, X-API-Key")
		c.Writer.Header().Set("Access-Control-Expose-Headers", "Content-Length")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(200)
		} else {
			c.Next()
		}
	}
}

// RequestIDMiddleware ...
// Generate a unique ID and attach it to each request for future reference or use
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		uuid := _uuid.New()
		c.Writer.Header().Set("X-Request-Id", uuid.String())
		c.Set("requestId", uuid.String())
		c.Next()
	}
}

func LogMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		raw := c.Request.URL.RawQuery
		if raw != "" {
			path = path + "?" + raw
		}

		c.Next()

		latency := time.Since(start)
		status := c.Writer.Status()
		clientIP := c.ClientIP()
		method := c.Request.Method
		userAgent := c.Request.UserAgent()
		requestId := c.GetString("requestId")

		logrus.Infof(
			" [%s] %d | %v | %s | %s | %s | %s ",
			requestId,
			status,
			latency,
			clientIP,
			method,
			path,
			userAgent,
		)
	}
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("Failed to load configuration: %v", err)
	}

	platform.InitRequestLog("./log", "gin")
	logger := platform.Logger

	db, err := platform.NewDB(cfg.DatabaseURL)
	if err != nil {
		logger.Fatalf("Failed to connect to database: %v", err)
	}
	if err := model.Migrate(db); err != nil {
		logger.Fatalf("Failed to migrate database: %v", err)
	}

	llm := platform.NewLLMClient(cfg.LLMAPIKey, cfg.LLMBaseURL)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(CORSMiddleware())
	r.Use(RequestIDMiddleware())
	r.Use(LogMiddleware())

	auth := middleware.APIKeyAuth(cfg.APIKey)

	items := controller.NewItemController(service.NewItemService(db))
	itemRoutes := r.Group("/items", auth)
	{
		itemRoutes.GET("/", items.List)
		itemRoutes.GET("/:id", items.Detail)
		itemRoutes.PATCH("/:id", items.Patch)
		itemRoutes.DELETE("/:id", items.Delete)
	}

	monsters := controller.NewMonsterController(service.NewMonsterService(db))
	monsterRoutes := r.Group("/monsters", auth)
	{
		monsterRoutes.GET("/", monsters.List)
		monsterRoutes.GET("/:id", monsters.Detail)
		monsterRoutes.POST("/", monsters.Create)
		monsterRoutes.PATCH("/:id", monsters.Patch)
		monsterRoutes.DELETE("/:id", monsters.Delete)
	}

	chat := controller.NewChatController(service.NewChatService(llm))
	r.POST("/chat", auth, chat.Chat)

	logger.Infof("Server started on :%s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Fatalf("Server stopped: %v", err)
	}
}
