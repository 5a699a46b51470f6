// Package modules wires feature handlers into routes.
package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/emocionario/usuarios-api/internal/container"
	handlers "github.com/emocionario/usuarios-api/internal/interface/http"
	"github.com/emocionario/usuarios-api/internal/interface/middleware"
)

// UserModule registers the user CRUD routes under /api/usuarios.
type UserModule struct {
	Handler *handlers.UserHandler
}

func NewUserModule(h *handlers.UserHandler) *UserModule {
	return &UserModule{Handler: h}
}

func (m *UserModule) Register(rg *gin.RouterGroup) {
	// Tighter limit on writes, softer on reads; both no-ops without redis.
	writeLimiter := middleware.RateLimit(container.GetRedis(), 60, time.Minute, middleware.KeyByIPAndPath())
	readLimiter := middleware.RateLimit(container.GetRedis(), 300, time.Minute, middleware.KeyByIP())

	g := rg.Group("/usuarios")
	{
		g.POST("", writeLimiter, m.Handler.Create)
		g.GET("/:id", readLimiter, m.Handler.GetByID)
		g.GET("/email/:email", readLimiter, m.Handler.GetByEmail)
		g.PUT("/:id", writeLimiter, m.Handler.Update)
		g.DELETE("/:id", writeLimiter, m.Handler.Delete)
	}
}
