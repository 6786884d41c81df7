package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"clinic-booking-api/internal/auth"
	"clinic-booking-api/internal/model"
	"clinic-booking-api/internal/store"
)

const (
	refreshCookie = "refresh_token"
	refreshTTL    = 7 * 24 * time.Hour
	dateLayout    = "2006-01-02"
)

type registerRequest struct {
	Name      string `json:"name" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=8"`
	CitizenID string `json:"citizen_id" binding:"required"`
	BirthDate string `json:"birth_date" binding:"required"`
	Phone     string `json:"phone"`
}

type registerDoctorRequest struct {
	registerRequest
	SpecialtyID string `json:"specialty_id" binding:"required"`
	LicenseNo   string `json:"license_no"`
	Bio         string `json:"bio"`
}

func (h *Handler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	u := h.newUser(c, &req, model.RolePatient)
	if u == nil {
		return
	}
	if err := h.store.CreateUser(c.Request.Context(), u); err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			// unique violation on email or citizen id; don't echo which
			c.JSON(http.StatusConflict, gin.H{"error": "account already exists"})
			return
		}
		h.fail(c, "register", err)
		return
	}

	h.issueSession(c, u, http.StatusCreated)
}

func (h *Handler) RegisterDoctor(c *gin.Context) {
	var req registerDoctorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	u := h.newUser(c, &req.registerRequest, model.RoleDoctor)
	if u == nil {
		return
	}
	profile := &model.DoctorProfile{
		UserID:      u.ID,
		SpecialtyID: req.SpecialtyID,
		LicenseNo:   req.LicenseNo,
		Bio:         req.Bio,
	}
	if err := h.store.CreateDoctor(c.Request.Context(), u, profile); err != nil {
		switch {
		case errors.Is(err, store.ErrDuplicate):
			c.JSON(http.StatusConflict, gin.H{"error": "account already exists"})
		case errors.Is(err, store.ErrNotFound):
			c.JSON(http.StatusBadRequest, gin.H{"error": "unknown specialty"})
		default:
			h.fail(c, "register doctor", err)
		}
		return
	}

	h.issueSession(c, u, http.StatusCreated)
}

// newUser validates the shared registration fields and builds the user
// row. On validation failure the response is already written and nil is
// returned.
func (h *Handler) newUser(c *gin.Context, req *registerRequest, role model.Role) *model.User {
	birth, err := time.Parse(dateLayout, req.BirthDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "birth_date must be YYYY-MM-DD"})
		return nil
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		h.fail(c, "hash password", err)
		return nil
	}

	return &model.User{
		ID:           uuid.New().String(),
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hash,
		CitizenID:    req.CitizenID,
		BirthDate:    birth,
		Phone:        req.Phone,
		Role:         role,
		Status:       "active",
	}
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func (h *Handler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email and password required"})
		return
	}

	u, err := h.store.UserByEmail(c.Request.Context(), req.Email)
	if err != nil {
		// same response for unknown email and wrong password
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
		return
	}
	if !auth.CheckPassword(u.PasswordHash, req.Password) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
		return
	}

	h.issueSession(c, u, http.StatusOK)
}

// issueSession mints the access token, persists a fresh refresh token and
// sets it as an httponly cookie scoped to /auth.
func (h *Handler) issueSession(c *gin.Context, u *model.User, status int) {
	tok, err := auth.MakeToken(u.ID, u.Role, h.secret)
	if err != nil {
		h.fail(c, "make token", err)
		return
	}

	rawRefresh, tokenHash, err := auth.GenerateRefreshToken()
	if err != nil {
		h.fail(c, "generate refresh token", err)
		return
	}
	if _, err := h.store.CreateRefreshToken(c.Request.Context(), u.ID, tokenHash, time.Now().Add(refreshTTL)); err != nil {
		h.fail(c, "store refresh token", err)
		return
	}

	h.setRefreshCookie(c, rawRefresh)
	c.JSON(status, gin.H{"token": tok, "user": u})
}

func (h *Handler) setRefreshCookie(c *gin.Context, raw string) {
	c.SetCookie(refreshCookie, raw, int(refreshTTL.Seconds()), "/auth", "", false, true)
}

// Refresh rotates the refresh token and returns a new access token.
// Presenting a revoked token revokes the whole family: rotation means a
// revoked token reappearing implies it was stolen.
func (h *Handler) Refresh(c *gin.Context) {
	raw, err := c.Cookie(refreshCookie)
	if err != nil || raw == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing refresh token"})
		return
	}

	ctx := c.Request.Context()
	rt, err := h.store.RefreshTokenByHash(ctx, auth.HashRefreshToken(raw))
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid refresh token"})
		return
	}
	if rt.Revoked {
		_ = h.store.RevokeAllRefreshTokens(ctx, rt.UserID)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid refresh token"})
		return
	}
	if time.Now().After(rt.ExpiresAt) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "refresh token expired"})
		return
	}

	u, err := h.store.UserByID(ctx, rt.UserID)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid refresh token"})
		return
	}

	newRaw, newHash, err := auth.GenerateRefreshToken()
	if err != nil {
		h.fail(c, "generate refresh token", err)
		return
	}
	newID := uuid.New().String()
	if err := h.store.RotateRefreshToken(ctx, rt.ID, newID, u.ID, newHash, time.Now().Add(refreshTTL)); err != nil {
		h.fail(c, "rotate refresh token", err)
		return
	}

	tok, err := auth.MakeToken(u.ID, u.Role, h.secret)
	if err != nil {
		h.fail(c, "make token", err)
		return
	}

	h.setRefreshCookie(c, newRaw)
	c.JSON(http.StatusOK, gin.H{"token": tok})
}

// Logout revokes every refresh token for the authenticated user.
func (h *Handler) Logout(c *gin.Context) {
	if err := h.store.RevokeAllRefreshTokens(c.Request.Context(), userID(c)); err != nil {
		h.fail(c, "logout", err)
		return
	}
	c.SetCookie(refreshCookie, "", -1, "/auth", "", false, true)
	c.JSON(http.StatusOK, gin.H{"message": "logged out"})
}
