package handlers

import (
	"net/http"

	"studyhive/internal/db"
	"studyhive/internal/models"
	"studyhive/internal/services"
	"studyhive/internal/utils"

	"github.com/gin-gonic/gin"
)

type FileHandler struct{}

func NewFileHandler() *FileHandler {
	return &FileHandler{}
}

// Upload stores a multipart file on disk and records its metadata
// against the group.
func (h *FileHandler) Upload(c *gin.Context) {
	header, err := c.FormFile("file")
	if err != nil {
		clientError(c, http.StatusBadRequest, "No file uploaded")
		return
	}

	groupID := utils.StringToUint(c.PostForm("groupId"))
	if groupID == 0 {
		clientError(c, http.StatusBadRequest, "groupId is required")
		return
	}

	user, ok := requireMembership(c, groupID)
	if !ok {
		return
	}

	stored, err := services.SaveUpload(header, "")
	if err != nil {
		serverError(c, err)
		return
	}

	file := models.File{
		GroupID:      groupID,
		UploaderID:   user.ID,
		Filename:     stored.Filename,
		OriginalName: header.Filename,
		Path:         stored.URL,
	}
	if err := db.DB.Create(&file).Error; err != nil {
		serverError(c, err)
		return
	}

	c.JSON(http.StatusOK, file)
}

// ListByGroup returns a group's file records, newest first.
func (h *FileHandler) ListByGroup(c *gin.Context) {
	groupID := utils.StringToUint(c.Param("id"))
	if _, ok := requireMembership(c, groupID); !ok {
		return
	}

	var files []models.File
	if err := db.DB.Preload("Uploader").
		Where("group_id = ?", groupID).
		Order("created_at DESC").
		Find(&files).Error; err != nil {
		serverError(c, err)
		return
	}

	c.JSON(http.StatusOK, files)
}
