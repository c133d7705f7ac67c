package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/habitflow/habitflow-api/internal/interface/http"
)

// AuthModule wires the public credential lifecycle endpoints.
type AuthModule struct {
	Handler *handlers.AuthHandler
}

func NewAuthModule(h *handlers.AuthHandler) *AuthModule {
	return &AuthModule{Handler: h}
}

func (m *AuthModule) Register(rg *gin.RouterGroup) {
	rg.POST("/auth/register", m.Handler.Register)
	rg.POST("/auth/verify", m.Handler.Verify)
	rg.POST("/auth/login", m.Handler.Login)
}
