package handlers

import (
	"log/slog"
	"net/http"

	"studyhive/internal/db"
	"studyhive/internal/middleware"
	"studyhive/internal/models"
	"studyhive/internal/services"
	"studyhive/internal/utils"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	mailService *services.MailService
	otpService  *services.OTPService
}

func NewAuthHandler() *AuthHandler {
	return &AuthHandler{
		mailService: services.NewMailService(),
		otpService:  services.NewOTPService(),
	}
}

type registerRequest struct {
	Name     string `json:"name"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		clientError(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Username == "" || req.Email == "" || req.Password == "" {
		clientError(c, http.StatusBadRequest, "Username, email and password are required")
		return
	}

	var existing models.User
	if err := db.DB.Where("email = ?", req.Email).First(&existing).Error; err == nil {
		clientError(c, http.StatusBadRequest, "Email already exists")
		return
	}
	if err := db.DB.Where("username = ?", req.Username).First(&existing).Error; err == nil {
		clientError(c, http.StatusBadRequest, "Username already exists")
		return
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		serverError(c, err)
		return
	}

	user := models.User{
		Name:     req.Name,
		Username: req.Username,
		Email:    req.Email,
		Password: hash,
	}
	if err := db.DB.Create(&user).Error; err != nil {
		serverError(c, err)
		return
	}

	token, err := middleware.GenerateToken(user.ID)
	if err != nil {
		serverError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"token": token, "user": user})
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		clientError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	var user models.User
	if err := db.DB.Where("email = ?", req.Email).First(&user).Error; err != nil {
		clientError(c, http.StatusBadRequest, "Invalid credentials")
		return
	}
	if !utils.CheckPasswordHash(req.Password, user.Password) {
		clientError(c, http.StatusBadRequest, "Invalid credentials")
		return
	}

	token, err := middleware.GenerateToken(user.ID)
	if err != nil {
		serverError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token, "user": user})
}

// Me returns the current account, reputation included.
func (h *AuthHandler) Me(c *gin.Context) {
	c.JSON(http.StatusOK, middleware.CurrentUser(c))
}

type forgotPasswordRequest struct {
	Email string `json:"email"`
}

// ForgotPassword issues a reset code without revealing whether the
// account exists.
func (h *AuthHandler) ForgotPassword(c *gin.Context) {
	var req forgotPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Email == "" {
		clientError(c, http.StatusBadRequest, "Email is required")
		return
	}

	var user models.User
	if err := db.DB.Where("email = ?", req.Email).First(&user).Error; err == nil {
		code := services.DemoOTP
		if h.mailService.Enabled {
			code = services.GenerateOTP()
		}
		if err := h.otpService.Issue(c.Request.Context(), user.Email, code); err != nil {
			serverError(c, err)
			return
		}
		h.mailService.SendPasswordResetEmail(user.Email, code)
		slog.Info("password reset code issued", "email", user.Email)
	}

	c.JSON(http.StatusOK, gin.H{"message": "OTP sent if the account exists"})
}

type verifyOTPRequest struct {
	Email string `json:"email"`
	OTP   string `json:"otp"`
}

func (h *AuthHandler) VerifyOTP(c *gin.Context) {
	var req verifyOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Email == "" || req.OTP == "" {
		clientError(c, http.StatusBadRequest, "Email and OTP are required")
		return
	}

	ok, err := h.otpService.Verify(c.Request.Context(), req.Email, req.OTP)
	if err != nil {
		serverError(c, err)
		return
	}
	if !ok {
		clientError(c, http.StatusBadRequest, "Invalid or expired OTP")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "OTP verified"})
}

type resetPasswordRequest struct {
	Email    string `json:"email"`
	OTP      string `json:"otp"`
	Password string `json:"password"`
}

// ResetPassword burns the OTP and replaces the password hash.
func (h *AuthHandler) ResetPassword(c *gin.Context) {
	var req resetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Email == "" || req.OTP == "" || req.Password == "" {
		clientError(c, http.StatusBadRequest, "Email, OTP and password are required")
		return
	}

	ok, err := h.otpService.Consume(c.Request.Context(), req.Email, req.OTP)
	if err != nil {
		serverError(c, err)
		return
	}
	if !ok {
		clientError(c, http.StatusBadRequest, "Invalid or expired OTP")
		return
	}

	var user models.User
	if err := db.DB.Where("email = ?", req.Email).First(&user).Error; err != nil {
		clientError(c, http.StatusBadRequest, "User not found")
		return
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		serverError(c, err)
		return
	}
	user.Password = hash
	if err := db.DB.Save(&user).Error; err != nil {
		serverError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Password reset successfully"})
}
