package handlers

import (
	"net/http"

	"studyhive/internal/db"
	"studyhive/internal/middleware"
	"studyhive/internal/models"
	"studyhive/internal/utils"

	"github.com/gin-gonic/gin"
)

type GroupHandler struct{}

func NewGroupHandler() *GroupHandler {
	return &GroupHandler{}
}

type groupRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Create makes a group with the creator as its first member.
func (h *GroupHandler) Create(c *gin.Context) {
	user := middleware.CurrentUser(c)

	var req groupRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Name == "" {
		clientError(c, http.StatusBadRequest, "Name is required")
		return
	}

	group := models.Group{
		Name:        req.Name,
		Description: req.Description,
		CreatedByID: user.ID,
		Members:     []models.User{*user},
	}
	if err := db.DB.Create(&group).Error; err != nil {
		serverError(c, err)
		return
	}

	c.JSON(http.StatusCreated, group)
}

// List returns all groups for discovery, members populated.
func (h *GroupHandler) List(c *gin.Context) {
	var groups []models.Group
	if err := db.DB.Preload("Members").Order("created_at DESC").Find(&groups).Error; err != nil {
		serverError(c, err)
		return
	}
	c.JSON(http.StatusOK, groups)
}

func (h *GroupHandler) Get(c *gin.Context) {
	var group models.Group
	if err := db.DB.Preload("Members").First(&group, utils.StringToUint(c.Param("id"))).Error; err != nil {
		clientError(c, http.StatusNotFound, "Group not found")
		return
	}
	c.JSON(http.StatusOK, group)
}

// Update renames a group; creator only.
func (h *GroupHandler) Update(c *gin.Context) {
	user := middleware.CurrentUser(c)

	var group models.Group
	if err := db.DB.First(&group, utils.StringToUint(c.Param("id"))).Error; err != nil {
		clientError(c, http.StatusNotFound, "Group not found")
		return
	}
	if group.CreatedByID != user.ID {
		clientError(c, http.StatusForbidden, "Not authorized to edit this group")
		return
	}

	var req groupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		clientError(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Name != "" {
		group.Name = req.Name
	}
	if req.Description != "" {
		group.Description = req.Description
	}
	if err := db.DB.Save(&group).Error; err != nil {
		serverError(c, err)
		return
	}

	c.JSON(http.StatusOK, group)
}

// Delete removes the group record; creator only. Group content is
// intentionally left in place (no cascade).
func (h *GroupHandler) Delete(c *gin.Context) {
	user := middleware.CurrentUser(c)

	var group models.Group
	if err := db.DB.First(&group, utils.StringToUint(c.Param("id"))).Error; err != nil {
		clientError(c, http.StatusNotFound, "Group not found")
		return
	}
	if group.CreatedByID != user.ID {
		clientError(c, http.StatusForbidden, "Not authorized to delete this group")
		return
	}

	if err := db.DB.Select("Members").Delete(&group).Error; err != nil {
		serverError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Group deleted successfully"})
}

// Join adds the current user to the member set. Idempotent.
func (h *GroupHandler) Join(c *gin.Context) {
	user := middleware.CurrentUser(c)

	var group models.Group
	if err := db.DB.Preload("Members").First(&group, utils.StringToUint(c.Param("id"))).Error; err != nil {
		clientError(c, http.StatusNotFound, "Group not found")
		return
	}

	if !group.HasMember(user.ID) {
		if err := db.DB.Model(&group).Association("Members").Append(user); err != nil {
			serverError(c, err)
			return
		}
		group.Members = append(group.Members, *user)
	}

	c.JSON(http.StatusOK, group)
}
