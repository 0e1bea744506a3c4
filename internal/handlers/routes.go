package handlers

import (
	"github.com/gin-gonic/gin"
)

// Middlewares are the authentication and authorization gates applied by
// RegisterRoutes.
type Middlewares struct {
	// Authenticate rejects requests without a valid identity.
	Authenticate gin.HandlerFunc
	// Identify sets the identity when present.
	Identify gin.HandlerFunc
	// RequireAdmin rejects non-admin callers. It runs after Authenticate.
	RequireAdmin gin.HandlerFunc
}

// RegisterRoutes mounts every endpoint on router, which is expected to be
// the /api/v1 group.
func RegisterRoutes(router *gin.RouterGroup, h *Handler, mw Middlewares) {
	router.GET("/health", wrap(h.Health))
	router.GET("/courses", mw.Identify, wrap(h.ListCatalogue))

	me := router.Group("/me", mw.Authenticate)
	me.GET("/progress", wrap(h.GetProgress))
	me.PUT("/progress/course", wrap(h.SelectCourse))
	me.POST("/lessons/:id/complete", wrap(h.CompleteLesson))
	me.POST("/lessons/:id/mistake", wrap(h.RecordMistake))
	me.POST("/hearts/refill", wrap(h.RefillHearts))
	me.GET("/subscription", wrap(h.GetSubscription))

	admin := router.Group("/admin", mw.Authenticate, mw.RequireAdmin)
	h.courses.register(admin)
	h.units.register(admin)
	h.chapters.register(admin)
	h.lessons.register(admin)
	h.subscriptions.register(admin)

	admin.GET("/admins", wrap(h.ListAdmins))
	admin.POST("/admins", wrap(h.GrantAdmin))
	admin.DELETE("/admins/:userId", wrap(h.RevokeAdmin))
}
