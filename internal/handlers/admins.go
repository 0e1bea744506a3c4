package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	v1 "github.com/learnloop/academy/api/v1"
	"github.com/learnloop/academy/internal/auth"
	"github.com/learnloop/academy/pkg/listquery"
)

const adminsEntity = "admins"

// ListAdmins returns the admins table through the list-query protocol
// (GET /admin/admins)
func (h *Handler) ListAdmins(c *gin.Context) error {
	d := h.parser.ParseValues(c.Request.URL.Query())

	result, err := h.adminSrv.List(c.Request.Context(), d)
	if err != nil {
		return err
	}

	listquery.Respond(c, adminsEntity, mapSlice(result.Items, v1.NewAdminFromModel), result.Total, d)
	return nil
}

// GrantAdmin adds a user to the admins table
// (POST /admin/admins)
func (h *Handler) GrantAdmin(c *gin.Context) error {
	var req v1.AdminRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}

	admin, err := h.adminSrv.Grant(c.Request.Context(), req.UserId)
	if err != nil {
		return err
	}

	caller, _ := auth.FromContext(c)
	zap.S().Named("admin_handler").Infow("admin granted", "user_id", admin.UserID, "by", caller.UserID)

	c.JSON(http.StatusCreated, v1.NewAdminFromModel(*admin))
	return nil
}

// RevokeAdmin removes a user from the admins table
// (DELETE /admin/admins/{userId})
func (h *Handler) RevokeAdmin(c *gin.Context) error {
	userID := c.Param("userId")
	if err := h.adminSrv.Revoke(c.Request.Context(), userID); err != nil {
		return err
	}

	caller, _ := auth.FromContext(c)
	zap.S().Named("admin_handler").Infow("admin revoked", "user_id", userID, "by", caller.UserID)

	c.Status(http.StatusNoContent)
	return nil
}
