package authControllers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/devmalik7/shopcart-api/api"
	"github.com/devmalik7/shopcart-api/auth"
	"github.com/devmalik7/shopcart-api/models"
)

type RegisterInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Name     string `json:"name" binding:"required"`
}

type LoginInput struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// POST /api/auth/register
func Register(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input RegisterInput
		if err := c.ShouldBindJSON(&input); err != nil {
			api.Error(c, http.StatusBadRequest, "Please provide email, password, and name")
			return
		}

		email := strings.ToLower(input.Email)

		var existing models.User
		err := db.Where("email = ?", email).First(&existing).Error
		if err == nil {
			api.Error(c, http.StatusBadRequest, "User already exists")
			return
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			api.Error(c, http.StatusInternalServerError, "Failed to check existing user")
			return
		}

		hash, err := auth.HashPassword(input.Password)
		if err != nil {
			api.Error(c, http.StatusInternalServerError, "Failed to hash password")
			return
		}

		user := models.User{
			Email:    email,
			Name:     input.Name,
			Password: hash,
		}
		if err := db.Create(&user).Error; err != nil {
			api.Error(c, http.StatusInternalServerError, "Failed to create user")
			return
		}

		token, err := auth.IssueToken(user.ID, user.Email)
		if err != nil {
			api.Error(c, http.StatusInternalServerError, "Token generation failed")
			return
		}

		api.OK(c, http.StatusCreated, gin.H{
			"token": token,
			"user":  gin.H{"id": user.ID, "email": user.Email, "name": user.Name},
		})
	}
}

// POST /api/auth/login
func Login(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input LoginInput
		if err := c.ShouldBindJSON(&input); err != nil {
			api.Error(c, http.StatusBadRequest, "Please provide email and password")
			return
		}

		var user models.User
		err := db.Where("email = ?", strings.ToLower(input.Email)).First(&user).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			api.Error(c, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		if err != nil {
			api.Error(c, http.StatusInternalServerError, "Failed to fetch user")
			return
		}

		if !auth.CheckPassword(user.Password, input.Password) {
			api.Error(c, http.StatusUnauthorized, "Invalid credentials")
			return
		}

		token, err := auth.IssueToken(user.ID, user.Email)
		if err != nil {
			api.Error(c, http.StatusInternalServerError, "Token generation failed")
			return
		}

		api.OK(c, http.StatusOK, gin.H{
			"token": token,
			"user":  gin.H{"id": user.ID, "email": user.Email, "name": user.Name},
		})
	}
}
