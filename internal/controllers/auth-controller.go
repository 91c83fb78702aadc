package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	log "github.com/sirupsen/logrus"

	"github.com/forteraglobal/fortera-api/internal/services"
)

type AuthController struct {
	userService   services.UserService
	rosterService services.RosterService
	jwtSecret     []byte
}

func NewAuthController(userService services.UserService, rosterService services.RosterService, jwtSecret string) *AuthController {
	return &AuthController{
		userService:   userService,
		rosterService: rosterService,
		jwtSecret:     []byte(jwtSecret),
	}
}

// Login godoc
// @Summary Sign in with email and password
// @Description Authenticate an administrator and issue a session token
// @Tags Auth
// @Accept json
// @Produce json
// @Param credentials body object{email=string,password=string} true "Credentials"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /api/v1/auth/login [post]
func (ac *AuthController) Login(c *gin.Context) {
	var req struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := ac.userService.GetUserByEmail(req.Email)
	if err != nil || !user.CheckPassword(req.Password) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid_credentials"})
		return
	}

	role := ac.rosterService.RoleFor(user.ID)

	// Generate JWT token
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"uid":  user.ID,
		"role": role,
		"exp":  time.Now().Add(time.Hour * 24).Unix(),
		"iat":  time.Now().Unix(),
	})

	tokenString, err := token.SignedString(ac.jwtSecret)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "token_generation_failed"})
		return
	}

	if err := ac.userService.RecordSignIn(user.ID); err != nil {
		log.WithError(err).Warn("Failed to record sign-in time")
	}

	c.JSON(http.StatusOK, gin.H{
		"access_token": tokenString,
		"token_type":   "Bearer",
		"expires_in":   86400,
		"user": gin.H{
			"id":    user.ID,
			"email": user.Email,
			"role":  role,
		},
	})
}

// UpdatePassword godoc
// @Summary Change the current user's password
// @Description Rotate the authenticated user's password. The current password must be correct and the new password must be confirmed.
// @Tags Auth
// @Accept json
// @Produce json
// @Param passwords body object{current_password=string,new_password=string,confirm_password=string} true "Password change"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Security BearerAuth
// @Router /api/v1/admin/password [put]
func (ac *AuthController) UpdatePassword(c *gin.Context) {
	userID := c.GetString("userID")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not_authenticated"})
		return
	}

	var req struct {
		CurrentPassword string `json:"current_password" binding:"required"`
		NewPassword     string `json:"new_password" binding:"required,min=8"`
		ConfirmPassword string `json:"confirm_password" binding:"required"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.NewPassword != req.ConfirmPassword {
		c.JSON(http.StatusBadRequest, gin.H{"error": "passwords_do_not_match"})
		return
	}

	user, err := ac.userService.GetUserByID(userID)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "session_user_not_found"})
		return
	}

	if !user.CheckPassword(req.CurrentPassword) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_current_password"})
		return
	}

	if err := ac.userService.UpdatePassword(userID, req.NewPassword); err != nil {
		log.WithError(err).Error("Failed to update password")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "password_update_failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "password_updated"})
}

// Me godoc
// @Summary Current session identity
// @Description Return the authenticated user's identity and role as the server sees them
// @Tags Auth
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} map[string]string
// @Security BearerAuth
// @Router /api/v1/auth/me [get]
func (ac *AuthController) Me(c *gin.Context) {
	userID := c.GetString("userID")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not_authenticated"})
		return
	}

	user, err := ac.userService.GetUserByID(userID)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "session_user_not_found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":              user.ID,
		"email":           user.Email,
		"role":            ac.rosterService.RoleFor(user.ID),
		"last_sign_in_at": user.LastSignInAt,
	})
}
