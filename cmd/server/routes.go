package main

import (
	"github.com/forgenova/console/internal/middleware"
	"github.com/forgenova/console/pkg/logger"
	"github.com/forgenova/console/pkg/response"
	"github.com/gin-gonic/gin"
)

// registerRoutes sets up all HTTP routes on the given Gin engine.
func registerRoutes(r *gin.Engine, svc *appServices) {
	// Middleware
	r.Use(logger.GinLogger(), logger.GinRecovery())
	r.RedirectTrailingSlash = false
	r.RedirectFixedPath = false
	r.Use(middleware.CORS())

	// Wrong method on a known path gets 405 with the standard envelope
	r.HandleMethodNotAllowed = true
	r.NoMethod(func(c *gin.Context) {
		response.MethodNotAllowed(c)
	})

	// Rate limiter for the public notification endpoint
	notifyLimiter := middleware.NewRateLimiter(5, 10)

	// Health check
	r.GET("/health", svc.healthHandler.CheckHealth)

	api := r.Group("/api")
	{
		// Public routes
		api.POST("/admin-login", svc.authHandler.Login)
		api.GET("/admin-verify", svc.authHandler.Verify)
		api.POST("/admin-verify", svc.authHandler.Verify)
		api.POST("/create-profile", svc.userHandler.CreateProfile)
		api.POST("/admin-notification", notifyLimiter.Middleware(), svc.notificationHandler.Notify)

		// Admin routes: the guard re-verifies the token on every request
		admin := api.Group("")
		admin.Use(middleware.AdminRequired(svc.guard))
		{
			admin.POST("/admin-logout", svc.authHandler.Logout)
			admin.GET("/auth-me", svc.authHandler.Me)
			admin.GET("/admin-stats", svc.statsHandler.Get)

			admin.GET("/admin-settings", svc.settingsHandler.Get)
			admin.POST("/admin-settings", svc.settingsHandler.Update)

			admin.GET("/admin-feature-flags", svc.flagHandler.List)
			admin.POST("/admin-feature-flags", svc.flagHandler.Update)

			admin.GET("/admin-users-roles", svc.roleHandler.List)
			admin.POST("/admin-users-roles", svc.roleHandler.Update)

			admin.GET("/admin-email-settings", svc.emailSettingsHandler.Get)
			admin.POST("/admin-email-settings", svc.emailSettingsHandler.Update)

			admin.GET("/admin-api-keys", svc.apiKeyHandler.List)
			admin.POST("/admin-api-keys", svc.apiKeyHandler.Create)
			admin.DELETE("/admin-api-keys", svc.apiKeyHandler.Revoke)

			admin.GET("/admin-logs", svc.logHandler.List)

			admin.GET("/admin-workspaces", svc.workspaceHandler.List)
			admin.PUT("/admin-workspaces", svc.workspaceHandler.Update)
			admin.DELETE("/admin-workspaces", svc.workspaceHandler.Delete)

			admin.GET("/admin-templates", svc.templateHandler.List)
			admin.POST("/admin-templates", svc.templateHandler.Create)
			admin.PUT("/admin-templates", svc.templateHandler.Update)
			admin.DELETE("/admin-templates", svc.templateHandler.Delete)

			admin.GET("/admin-backups", svc.backupHandler.List)
			admin.POST("/admin-backups", svc.backupHandler.Create)

			admin.GET("/admin-users", svc.userHandler.List)
			admin.POST("/admin-activate-user", svc.userHandler.Activate)
			admin.POST("/admin-delete-user", svc.userHandler.Delete)
			admin.POST("/admin-reset-password", svc.userHandler.ResetPassword)
		}
	}
}
