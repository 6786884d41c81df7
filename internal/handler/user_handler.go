package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (h *Handler) GetMe(c *gin.Context) {
	u, err := h.store.UserByID(c.Request.Context(), userID(c))
	if err != nil {
		h.fail(c, "get profile", err)
		return
	}
	c.JSON(http.StatusOK, u)
}

type updateProfileRequest struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

func (h *Handler) UpdateMe(c *gin.Context) {
	var req updateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if req.Name == "" && req.Phone == "" && req.Address == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "no update fields provided"})
		return
	}

	ctx := c.Request.Context()
	if err := h.store.UpdateProfile(ctx, userID(c), req.Name, req.Phone, req.Address); err != nil {
		h.fail(c, "update profile", err)
		return
	}

	u, err := h.store.UserByID(ctx, userID(c))
	if err != nil {
		h.fail(c, "get profile", err)
		return
	}
	c.JSON(http.StatusOK, u)
}
