package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"clinic-booking-api/internal/middleware"
	"clinic-booking-api/internal/store"
)

type Handler struct {
	store  *store.Store
	secret string
	log    *zap.SugaredLogger
}

func New(st *store.Store, secret string, log *zap.SugaredLogger) *Handler {
	return &Handler{store: st, secret: secret, log: log}
}

// fail maps store sentinels onto HTTP statuses. A booking conflict is an
// expected outcome and must never look like a server error to the client.
func (h *Handler) fail(c *gin.Context, op string, err error) {
	switch {
	case errors.Is(err, store.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	case errors.Is(err, store.ErrSlotTaken):
		c.JSON(http.StatusConflict, gin.H{"error": "slot already taken"})
	case errors.Is(err, store.ErrDuplicate):
		c.JSON(http.StatusConflict, gin.H{"error": "already exists"})
	default:
		h.log.Errorw(op, "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

func userID(c *gin.Context) string {
	return c.GetString(middleware.CtxUserID)
}
