package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/frankwrk/neomax-engage-rules/pkg/auth"
)

// Handlers объединяет все обработчики для регистрации маршрутов
type Handlers struct {
	Auth        *AuthHandler
	User        *UserHandler
	Competition *CompetitionHandler
	Entry       *EntryHandler
	Winner      *WinnerHandler
	Consent     *ConsentHandler
	Admin       *AdminHandler
}

// NewRouter собирает gin-движок со всеми маршрутами и middleware
func NewRouter(h Handlers, jwtService *auth.JWTService) *gin.Engine {
	router := gin.Default()

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := router.Group("/api")

	// Публичные маршруты
	authGroup := api.Group("/auth")
	{
		authGroup.POST("/register", h.Auth.Register)
		authGroup.POST("/login", h.Auth.Login)
		authGroup.POST("/refresh", h.Auth.Refresh)
		authGroup.POST("/logout", h.Auth.Logout)
	}

	api.GET("/competitions", h.Competition.ListActive)
	api.GET("/competitions/:id", h.Competition.Get)
	api.POST("/consent", OptionalAuthMiddleware(jwtService), h.Consent.Save)

	// Маршруты, требующие аутентификации
	authenticated := api.Group("")
	authenticated.Use(AuthMiddleware(jwtService))
	{
		authenticated.POST("/entries", h.Entry.Submit)
		authenticated.GET("/entries", h.Entry.List)
		authenticated.GET("/winners", h.Winner.ListPublic)
		authenticated.GET("/profile", h.User.GetProfile)
		authenticated.PUT("/profile", h.User.UpdateProfile)
		authenticated.GET("/consent", h.Consent.GetMine)
	}

	// Маршруты администратора
	admin := api.Group("/admin")
	admin.Use(AuthMiddleware(jwtService), AdminMiddleware())
	{
		admin.GET("/dashboard", h.Admin.Dashboard)
		admin.GET("/competitions", h.Competition.ListAll)
		admin.POST("/competitions", h.Competition.Create)
		admin.PUT("/competitions/:id", h.Competition.Update)
		admin.DELETE("/competitions/:id", h.Competition.Delete)
		admin.GET("/winners", h.Winner.List)
		admin.POST("/winners/:id/award", h.Winner.Award)
		admin.POST("/winners/:id/notify", h.Winner.Notify)
		admin.GET("/consent-records", h.Consent.List)
	}

	return router
}
