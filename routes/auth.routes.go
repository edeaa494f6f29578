package routes

import (
	"booking-client/handlers"
	"booking-client/security"

	"github.com/gin-gonic/gin"
)

type AuthRouteHandler struct {
	authHandler handlers.AuthHandler
	store       *security.CredentialStore
}

func NewAuthRouteHandler(authHandler handlers.AuthHandler, store *security.CredentialStore) AuthRouteHandler {
	return AuthRouteHandler{authHandler, store}
}

func (ar *AuthRouteHandler) AuthRoute(rg *gin.RouterGroup) {
	router := rg.Group("auth")
	router.POST("/login", ar.authHandler.Login)
	router.POST("/register", ar.authHandler.Register)

	protected := rg.Group("users")
	protected.Use(security.Guard(ar.store, security.Authenticated))
	protected.POST("/logout", ar.authHandler.Logout)
	protected.GET("/profile", ar.authHandler.CurrentUser)
}
