package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/habitflow/habitflow-api/internal/interface/http"
	"github.com/habitflow/habitflow-api/internal/interface/middleware"
	"github.com/habitflow/habitflow-api/pkg/helpers"
)

// HabitModule wires habit endpoints behind the bearer auth gate.
type HabitModule struct {
	Handler *handlers.HabitHandler
	JWT     *helpers.JWTManager
}

func NewHabitModule(h *handlers.HabitHandler, jwt *helpers.JWTManager) *HabitModule {
	return &HabitModule{Handler: h, JWT: jwt}
}

func (m *HabitModule) Register(rg *gin.RouterGroup) {
	auth := rg.Group("/habits")
	auth.Use(middleware.Auth(m.JWT))
	{
		auth.POST("", m.Handler.Create)
		auth.GET("", m.Handler.List)
		auth.POST("/:id/complete", m.Handler.Complete)
	}
}
