package main

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Biswa2Das/marketing-storyline/cache"
	"github.com/Biswa2Das/marketing-storyline/config"
	"github.com/Biswa2Das/marketing-storyline/internal/platform"
	"github.com/Biswa2Das/marketing-storyline/llm"
	"github.com/Biswa2Das/marketing-storyline/marketing"
	"github.com/Biswa2Das/marketing-storyline/processing"
	"github.com/Biswa2Das/marketing-storyline/ratelimit"
)

type Server struct {
	Cfg     *config.Config
	DB      *gorm.DB
	Router  *gin.Engine
	Handler *marketing.Handler
}

func NewServer(cfg *config.Config) (*Server, error) {
	client, err := llm.NewClient(cfg)
	if err != nil {
		return nil, err
	}

	// One-time pre-flight against a locally hosted backend: fail fast at
	// startup instead of on the first request.
	if cfg.Provider == "ollama" {
		ctx, cancel := context.WithTimeout(context.Background(), cfg.RequestTimeout)
		defer cancel()
		if err := client.Ping(ctx); err != nil {
			return nil, err
		}
		log.Println("Ollama backend reachable")
	}

	var store cache.Cache
	if cfg.CacheEnabled {
		if cfg.RedisAddr != "" {
			store = cache.NewRedis(platform.NewRedisClient(cfg.RedisAddr), cfg.CacheTTL)
		} else {
			store = cache.NewMemory(cfg.CacheMaxSize, cfg.CacheTTL)
		}
	}

	db, err := platform.NewDBConnection(cfg.DatabaseURL)
	if err != nil {
		return nil, err
	}

	extractor := processing.NewFeatureExtractor(client, cfg, store)
	stories := processing.NewStoryGenerator(client, cfg, store, extractor)
	handler := marketing.NewHandler(extractor, stories, db, cfg.Model)

	router := gin.Default()

	// CORS for the frontend
	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", cfg.FrontendURL)
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	})

	server := &Server{
		Cfg:     cfg,
		DB:      db,
		Router:  router,
		Handler: handler,
	}
	server.setupRoutes()
	return server, nil
}

func (s *Server) setupRoutes() {
	s.Router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"service": "marketing-storyline-generator",
		})
	})

	extractLimiter := ratelimit.PerMinute(s.Cfg.ExtractRatePerMin)
	storylineLimiter := ratelimit.PerMinute(s.Cfg.StorylineRatePerMin)

	s.Router.POST("/extract", extractLimiter.Middleware(), s.Handler.ExtractFeatures)
	s.Router.POST("/storyline", storylineLimiter.Middleware(), s.Handler.GenerateStoryline)

	if s.DB != nil {
		s.Router.GET("/storylines", s.Handler.ListStorylines)
	}
}

func (s *Server) Run() error {
	log.Printf("Server starting on port %s", s.Cfg.Port)
	return s.Router.Run(":" + s.Cfg.Port)
}

func main() {
	cfg := config.Load()

	server, err := NewServer(cfg)
	if err != nil {
		log.Fatal("Failed to create server: ", err)
	}

	if err := server.Run(); err != nil {
		log.Fatal("Failed to run server: ", err)
	}
}
