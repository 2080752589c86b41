package v1

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/hushboard/backend/config"
	"github.com/hushboard/backend/internal/service"
)

func New(svc *service.Service, conf *config.Config) (*gin.Engine, error) {
	var (
		router = gin.New()
	)

	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposeHeaders:    []string{"Link"},
		AllowCredentials: false,
		MaxAge:           300 * time.Second,
	}))

	h := &handler{svc: svc, conf: conf}

	apiGroup := router.Group("/api")
	{
		apiGroup.Use(gin.Logger())

		apiGroup.GET("/ping", func(c *gin.Context) {
			c.Status(http.StatusOK)
		})

		postsGroup := apiGroup.Group("/posts")
		{
			postsGroup.POST("", RateLimit(conf.RateLimit), h.createPost)
			postsGroup.GET("", h.listPosts)
			postsGroup.GET("/:id", h.getPost)
			postsGroup.GET("/:id/kindness", h.getKindness)
		}

		kindnessGroup := apiGroup.Group("/kindness")
		{
			kindnessGroup.POST("/token", h.issueToken)
			kindnessGroup.POST("/redeem", h.redeemToken)
		}
	}

	router.GET("/_debug/flags", h.debugFlags)

	return router, nil
}

type handler struct {
	svc  *service.Service
	conf *config.Config
}
