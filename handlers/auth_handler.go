package handlers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/Vigneshwaren333/LexComply/config"
	"github.com/Vigneshwaren333/LexComply/database"
	"github.com/Vigneshwaren333/LexComply/models"
)

/* ====================== Config & Helpers ====================== */

const tokenTTL = 24 * time.Hour

type AuthHandler struct {
	db        *database.Database
	jwtSecret string
}

func NewAuthHandler(db *database.Database, cfg *config.Config) *AuthHandler {
	return &AuthHandler{db: db, jwtSecret: cfg.JWTSecret}
}

func (h *AuthHandler) signJWT(userID uint, email string) (string, error) {
	claims := jwt.MapClaims{
		"user_id": userID,
		"email":   email,
		"exp":     time.Now().Add(tokenTTL).Unix(),
		"iat":     time.Now().Unix(),
	}
	tk := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return tk.SignedString([]byte(h.jwtSecret))
}

/* ====================== DTOs ====================== */

type RegisterReq struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

/* ====================== Handlers ====================== */

// POST /api/auth/register
func (h *AuthHandler) Register(c echo.Context) error {
	var req RegisterReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"success": false, "message": "Invalid request body"})
	}

	name := strings.TrimSpace(req.Name)
	email := strings.TrimSpace(strings.ToLower(req.Email))
	pass := req.Password

	if name == "" || email == "" || pass == "" {
		return c.JSON(http.StatusBadRequest, map[string]any{"success": false, "message": "All fields are required"})
	}
	if !reEmail.MatchString(email) {
		return c.JSON(http.StatusBadRequest, map[string]any{"success": false, "message": "Invalid email format"})
	}

	var dup models.User
	if err := h.db.Where("email = ?", email).First(&dup).Error; err == nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"success": false, "message": "Email already registered"})
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(pass), bcrypt.DefaultCost)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]any{"success": false, "message": "Registration failed"})
	}

	user := models.User{Name: name, Email: email, Password: string(hash)}
	if err := h.db.Create(&user).Error; err != nil {
		// unique index closes the race between the duplicate check and the insert
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return c.JSON(http.StatusBadRequest, map[string]any{"success": false, "message": "Email already registered"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]any{"success": false, "message": "Registration failed"})
	}

	token, err := h.signJWT(user.ID, user.Email)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]any{"success": false, "message": "Registration failed"})
	}

	return c.JSON(http.StatusCreated, map[string]any{
		"success": true,
		"message": "Registration successful",
		"token":   token,
		"user":    map[string]any{"id": user.ID, "name": user.Name, "email": user.Email},
	})
}

// POST /api/auth/login
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"success": false, "message": "Invalid request body"})
	}

	email := strings.TrimSpace(strings.ToLower(req.Email))
	if email == "" || req.Password == "" {
		return c.JSON(http.StatusBadRequest, map[string]any{"success": false, "message": "Email and password are required"})
	}

	// unknown email and wrong password answer identically so callers
	// cannot probe which addresses hold accounts
	var user models.User
	if err := h.db.Where("email = ?", email).First(&user).Error; err != nil {
		return c.JSON(http.StatusUnauthorized, map[string]any{"success": false, "message": "Invalid credentials"})
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)) != nil {
		return c.JSON(http.StatusUnauthorized, map[string]any{"success": false, "message": "Invalid credentials"})
	}

	token, err := h.signJWT(user.ID, user.Email)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]any{"success": false, "message": "Login failed"})
	}

	return c.JSON(http.StatusOK, map[string]any{
		"success": true,
		"message": "Login successful",
		"token":   token,
		"user":    map[string]any{"id": user.ID, "name": user.Name, "email": user.Email},
	})
}
