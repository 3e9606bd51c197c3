package handlers

import (
	"database/sql"
	"errors"
	"net/http"
	"strings"
	"time"

	intconfig "busticket/internal/config"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// AuthHandler issues and registers user accounts backed by the users table.
type AuthHandler struct {
	DB     *sql.DB
	Secret []byte
}

func (h AuthHandler) db() *sql.DB {
	if h.DB != nil {
		return h.DB
	}
	return intconfig.DB
}

// AuthUser is the user payload returned by login and register.
type AuthUser struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
	Role  string `json:"role"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// POST /api/auth/login
func (h AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	var (
		user         AuthUser
		passwordHash string
	)
	err := h.db().QueryRowContext(c.Request.Context(), `
        SELECT id, name, email, COALESCE(phone,''), password_hash, role
        FROM users
        WHERE email = ?`, strings.TrimSpace(req.Email),
	).Scan(&user.ID, &user.Name, &user.Email, &user.Phone, &passwordHash, &user.Role)

	if errors.Is(err, sql.ErrNoRows) {
		respondError(c, http.StatusUnauthorized, "unauthorized", "wrong email or password")
		return
	}
	if err != nil {
		respondError(c, http.StatusInternalServerError, "internal_error", "user lookup failed")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(req.Password)); err != nil {
		respondError(c, http.StatusUnauthorized, "unauthorized", "wrong email or password")
		return
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": user.ID,
		"role":    user.Role,
		"exp":     time.Now().Add(24 * time.Hour).Unix(),
	})
	signed, err := token.SignedString(h.Secret)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "internal_error", "token signing failed")
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": signed, "user": user})
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

// POST /api/auth/register
func (h AuthHandler) Register(c *gin.Context) {
	var req registerRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)
	if req.Name == "" || req.Email == "" || len(req.Password) < 8 {
		respondError(c, http.StatusBadRequest, "validation_error", "name, email and a password of at least 8 characters are required")
		return
	}

	db := h.db()
	var exists int
	if err := db.QueryRowContext(c.Request.Context(),
		`SELECT COUNT(*) FROM users WHERE email = ?`, req.Email,
	).Scan(&exists); err != nil {
		respondError(c, http.StatusInternalServerError, "internal_error", "user lookup failed")
		return
	}
	if exists > 0 {
		respondError(c, http.StatusConflict, "conflict", "email already registered")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "internal_error", "password hashing failed")
		return
	}

	res, err := db.ExecContext(c.Request.Context(), `
        INSERT INTO users (name, email, phone, password_hash, role, created_at, updated_at)
        VALUES (?, ?, ?, ?, 'user', NOW(), NOW())`,
		req.Name, req.Email, strings.TrimSpace(req.Phone), string(hash))
	if err != nil {
		respondError(c, http.StatusInternalServerError, "internal_error", "user insert failed")
		return
	}

	id, _ := res.LastInsertId()
	c.JSON(http.StatusCreated, gin.H{
		"user": AuthUser{ID: id, Name: req.Name, Email: req.Email, Phone: strings.TrimSpace(req.Phone), Role: "user"},
	})
}
