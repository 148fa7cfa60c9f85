package handlers

import (
	"net/http"

	"studyhive/internal/db"
	"studyhive/internal/middleware"
	"studyhive/internal/models"
	"studyhive/internal/realtime"
	"studyhive/internal/services"
	"studyhive/internal/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type PostHandler struct {
	hub *realtime.Hub
}

func NewPostHandler(hub *realtime.Hub) *PostHandler {
	return &PostHandler{hub: hub}
}

// loadPost fetches a post with everything the clients render: author,
// comments with authors, poll options with votes in option order.
func loadPost(id uint) (*models.Post, error) {
	var post models.Post
	err := db.DB.
		Preload("Author").
		Preload("Comments", func(tx *gorm.DB) *gorm.DB { return tx.Order("created_at ASC") }).
		Preload("Comments.Author").
		Preload("Poll.Options", func(tx *gorm.DB) *gorm.DB { return tx.Order("position ASC") }).
		Preload("Poll.Options.Votes").
		First(&post, id).Error
	if err != nil {
		return nil, err
	}
	post.ContentHTML = utils.RenderMarkdown(post.Content)
	return &post, nil
}

type pollInput struct {
	Question string   `json:"question"`
	Options  []string `json:"options"`
}

type createPostRequest struct {
	Title   string     `json:"title"`
	Content string     `json:"content"`
	GroupID uint       `json:"groupId"`
	Poll    *pollInput `json:"poll"`
}

// Create persists a post (optionally with a poll), applies the
// reputation delta and fans the new post out to the group room.
func (h *PostHandler) Create(c *gin.Context) {
	var req createPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		clientError(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Title == "" || req.Content == "" || req.GroupID == 0 {
		clientError(c, http.StatusBadRequest, "Title, content and groupId are required")
		return
	}

	user, ok := requireMembership(c, req.GroupID)
	if !ok {
		return
	}

	post := models.Post{
		GroupID:  req.GroupID,
		AuthorID: user.ID,
		Title:    req.Title,
		Content:  req.Content,
	}
	// A poll needs at least two options to mean anything; anything
	// less is silently ignored, as the original does.
	if req.Poll != nil && len(req.Poll.Options) >= 2 {
		poll := &models.Poll{Question: req.Poll.Question}
		for i, text := range req.Poll.Options {
			poll.Options = append(poll.Options, models.PollOption{Position: i, Text: text})
		}
		post.Poll = poll
	}

	if err := db.DB.Create(&post).Error; err != nil {
		serverError(c, err)
		return
	}

	services.ApplyReputation(user.ID, services.DeltaPostCreate, services.ReasonPostCreate)

	populated, err := loadPost(post.ID)
	if err != nil {
		serverError(c, err)
		return
	}

	h.hub.PublishToGroup(post.GroupID, realtime.EventNewPost, populated)

	c.JSON(http.StatusCreated, populated)
}

// ListByGroup returns a group's posts, newest first.
func (h *PostHandler) ListByGroup(c *gin.Context) {
	groupID := utils.StringToUint(c.Param("id"))
	if _, ok := requireMembership(c, groupID); !ok {
		return
	}

	var posts []models.Post
	err := db.DB.
		Preload("Author").
		Preload("Comments", func(tx *gorm.DB) *gorm.DB { return tx.Order("created_at ASC") }).
		Preload("Comments.Author").
		Preload("Poll.Options", func(tx *gorm.DB) *gorm.DB { return tx.Order("position ASC") }).
		Preload("Poll.Options.Votes").
		Where("group_id = ?", groupID).
		Order("created_at DESC").
		Find(&posts).Error
	if err != nil {
		serverError(c, err)
		return
	}

	for i := range posts {
		posts[i].ContentHTML = utils.RenderMarkdown(posts[i].Content)
	}

	c.JSON(http.StatusOK, posts)
}

type commentRequest struct {
	Content string `json:"content"`
}

// AddComment appends a comment and republishes the post to the group
// room.
func (h *PostHandler) AddComment(c *gin.Context) {
	var req commentRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Content == "" {
		clientError(c, http.StatusBadRequest, "Content is required")
		return
	}

	var post models.Post
	if err := db.DB.First(&post, utils.StringToUint(c.Param("id"))).Error; err != nil {
		clientError(c, http.StatusNotFound, "Post not found")
		return
	}

	user, ok := requireMembership(c, post.GroupID)
	if !ok {
		return
	}

	comment := models.Comment{
		PostID:   post.ID,
		AuthorID: user.ID,
		Content:  req.Content,
	}
	if err := db.DB.Create(&comment).Error; err != nil {
		serverError(c, err)
		return
	}

	services.ApplyReputation(user.ID, services.DeltaCommentCreate, services.ReasonCommentCreate)

	populated, err := loadPost(post.ID)
	if err != nil {
		serverError(c, err)
		return
	}

	h.hub.PublishToGroup(post.GroupID, realtime.EventPostUpdated, populated)

	c.JSON(http.StatusOK, populated)
}

// Delete removes a post with its comments and poll; author only.
func (h *PostHandler) Delete(c *gin.Context) {
	user := middleware.CurrentUser(c)

	var post models.Post
	if err := db.DB.Preload("Poll").First(&post, utils.StringToUint(c.Param("id"))).Error; err != nil {
		clientError(c, http.StatusNotFound, "Post not found")
		return
	}
	if post.AuthorID != user.ID {
		clientError(c, http.StatusForbidden, "Not authorized to delete this post")
		return
	}

	err := db.DB.Transaction(func(tx *gorm.DB) error {
		if post.Poll != nil {
			if err := tx.Where("poll_id = ?", post.Poll.ID).Delete(&models.PollVote{}).Error; err != nil {
				return err
			}
			if err := tx.Where("poll_id = ?", post.Poll.ID).Delete(&models.PollOption{}).Error; err != nil {
				return err
			}
			if err := tx.Delete(&models.Poll{}, post.Poll.ID).Error; err != nil {
				return err
			}
		}
		if err := tx.Where("post_id = ?", post.ID).Delete(&models.Comment{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Post{}, post.ID).Error
	})
	if err != nil {
		serverError(c, err)
		return
	}

	services.ApplyReputation(user.ID, services.DeltaPostDelete, services.ReasonPostDelete)

	c.JSON(http.StatusOK, gin.H{"message": "Post deleted"})
}

// DeleteComment removes a single comment; comment author only.
func (h *PostHandler) DeleteComment(c *gin.Context) {
	user := middleware.CurrentUser(c)
	postID := utils.StringToUint(c.Param("id"))

	var comment models.Comment
	if err := db.DB.Where("post_id = ?", postID).First(&comment, utils.StringToUint(c.Param("commentId"))).Error; err != nil {
		clientError(c, http.StatusNotFound, "Comment not found")
		return
	}
	if comment.AuthorID != user.ID {
		clientError(c, http.StatusForbidden, "Not authorized to delete this comment")
		return
	}

	if err := db.DB.Delete(&comment).Error; err != nil {
		serverError(c, err)
		return
	}

	services.ApplyReputation(user.ID, services.DeltaCommentDelete, services.ReasonCommentDelete)

	populated, err := loadPost(postID)
	if err != nil {
		serverError(c, err)
		return
	}

	h.hub.PublishToGroup(populated.GroupID, realtime.EventPostUpdated, populated)

	c.JSON(http.StatusOK, populated)
}

type voteRequest struct {
	OptionIndex *int `json:"optionIndex"`
}

// Vote moves the user's poll vote to the chosen option: any prior vote
// in the poll is removed first, so a user holds at most one vote.
func (h *PostHandler) Vote(c *gin.Context) {
	var req voteRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.OptionIndex == nil {
		clientError(c, http.StatusBadRequest, "optionIndex is required")
		return
	}

	post, err := loadPost(utils.StringToUint(c.Param("id")))
	if err != nil || post.Poll == nil {
		clientError(c, http.StatusNotFound, "Poll not found")
		return
	}

	user, ok := requireMembership(c, post.GroupID)
	if !ok {
		return
	}

	idx := *req.OptionIndex
	if idx < 0 || idx >= len(post.Poll.Options) {
		clientError(c, http.StatusBadRequest, "Invalid option index")
		return
	}
	option := post.Poll.Options[idx]

	err = db.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("poll_id = ? AND user_id = ?", post.Poll.ID, user.ID).Delete(&models.PollVote{}).Error; err != nil {
			return err
		}
		return tx.Create(&models.PollVote{
			PollID:   post.Poll.ID,
			OptionID: option.ID,
			UserID:   user.ID,
		}).Error
	})
	if err != nil {
		serverError(c, err)
		return
	}

	populated, err := loadPost(post.ID)
	if err != nil {
		serverError(c, err)
		return
	}

	h.hub.PublishToGroup(populated.GroupID, realtime.EventPostUpdated, populated)

	c.JSON(http.StatusOK, populated)
}
