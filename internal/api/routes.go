package api

import (
	"github.com/gin-gonic/gin"
	"geocentroid/internal/api/handlers"
	"geocentroid/internal/api/middleware"
)

type Router struct {
	centerHandler     *handlers.CenterHandler
	collectionHandler *handlers.CollectionHandler
}

func NewRouter(
	centerHandler *handlers.CenterHandler,
	collectionHandler *handlers.CollectionHandler,
) *Router {
	return &Router{
		centerHandler:     centerHandler,
		collectionHandler: collectionHandler,
	}
}

func (r *Router) Setup(engine *gin.Engine) {
	engine.Use(middleware.RequestID())

	// Health check endpoint
	engine.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Stateless computation over the request body
	engine.POST("/centroid", r.centerHandler.ComputeCenter)

	collections := engine.Group("/collections")
	{
		collections.POST("", r.collectionHandler.Create)
		collections.GET("", r.collectionHandler.List)
		collections.GET("/:id", r.collectionHandler.Get)
		collections.DELETE("/:id", r.collectionHandler.Delete)
		collections.POST("/:id/points", r.collectionHandler.AddPoint)
		collections.GET("/:id/center", r.collectionHandler.Center)
	}
}
