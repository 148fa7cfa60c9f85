package handlers

import (
	"net/http"

	"studyhive/internal/db"
	"studyhive/internal/middleware"
	"studyhive/internal/models"

	"github.com/gin-gonic/gin"
)

// clientError mirrors the original API's 4xx shape.
func clientError(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{"message": message})
}

// serverError surfaces the raw error text on 500s, as the original
// does. Leaky, but part of the observed contract.
func serverError(c *gin.Context, err error) {
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}

// requireMembership loads the group and checks the current user is in
// it; writes the error response itself when the check fails.
func requireMembership(c *gin.Context, groupID uint) (*models.User, bool) {
	user := middleware.CurrentUser(c)

	var group models.Group
	if err := db.DB.Preload("Members").First(&group, groupID).Error; err != nil {
		clientError(c, http.StatusNotFound, "Group not found")
		return nil, false
	}
	if !group.HasMember(user.ID) {
		clientError(c, http.StatusForbidden, "Not a member of this group")
		return nil, false
	}
	return user, true
}

// IsGroupMember answers membership without a request context; used by
// the realtime layer to gate room joins.
func IsGroupMember(userID, groupID uint) bool {
	var count int64
	db.DB.Table("group_members").
		Where("group_id = ? AND user_id = ?", groupID, userID).
		Count(&count)
	return count > 0
}
