package handlers

import (
	"net/http"

	"studyhive/internal/db"
	"studyhive/internal/middleware"
	"studyhive/internal/services"

	"github.com/gin-gonic/gin"
)

type UserHandler struct{}

func NewUserHandler() *UserHandler {
	return &UserHandler{}
}

type updateProfileRequest struct {
	Name string `json:"name"`
}

func (h *UserHandler) UpdateProfile(c *gin.Context) {
	user := middleware.CurrentUser(c)

	var req updateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Name == "" {
		clientError(c, http.StatusBadRequest, "Name is required")
		return
	}

	user.Name = req.Name
	if err := db.DB.Save(user).Error; err != nil {
		serverError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

// UploadProfilePicture stores an avatar and points the account at it.
func (h *UserHandler) UploadProfilePicture(c *gin.Context) {
	user := middleware.CurrentUser(c)

	header, err := c.FormFile("profilePicture")
	if err != nil {
		clientError(c, http.StatusBadRequest, "No file uploaded")
		return
	}

	stored, err := services.SaveUpload(header, "profile-")
	if err != nil {
		serverError(c, err)
		return
	}

	user.ProfilePicture = stored.URL
	if err := db.DB.Save(user).Error; err != nil {
		serverError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"profilePicture": stored.URL, "user": user})
}

// ReputationLog returns the caller's ledger entries, newest first.
func (h *UserHandler) ReputationLog(c *gin.Context) {
	user := middleware.CurrentUser(c)

	entries, err := services.ReputationHistory(user.ID, 100)
	if err != nil {
		serverError(c, err)
		return
	}

	c.JSON(http.StatusOK, entries)
}
