package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"clinic-booking-api/internal/model"
)

func (h *Handler) ListSpecialties(c *gin.Context) {
	sps, err := h.store.ListSpecialties(c.Request.Context())
	if err != nil {
		h.fail(c, "list specialties", err)
		return
	}
	c.JSON(http.StatusOK, sps)
}

// ListDoctors serves the public directory, optionally filtered by
// ?specialty= name fragment.
func (h *Handler) ListDoctors(c *gin.Context) {
	docs, err := h.store.ListDoctors(c.Request.Context(), c.Query("specialty"))
	if err != nil {
		h.fail(c, "list doctors", err)
		return
	}
	c.JSON(http.StatusOK, docs)
}

type createSlotRequest struct {
	StartTime time.Time `json:"start_time" binding:"required"`
	EndTime   time.Time `json:"end_time" binding:"required"`
}

// CreateSlot publishes a new availability window for the authenticated
// doctor. Route middleware has already established role=doctor.
func (h *Handler) CreateSlot(c *gin.Context) {
	var req createSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "start_time and end_time required"})
		return
	}
	if !req.EndTime.After(req.StartTime) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "end must be after start"})
		return
	}
	if req.StartTime.Before(time.Now().Add(-5 * time.Minute)) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "cannot publish a slot in the past"})
		return
	}

	sl := &model.Slot{
		ID:        uuid.New().String(),
		DoctorID:  userID(c),
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		Status:    model.SlotAvailable,
	}
	if err := h.store.CreateSlot(c.Request.Context(), sl); err != nil {
		h.fail(c, "create slot", err)
		return
	}
	c.JSON(http.StatusCreated, sl)
}

// DoctorSlots lists one doctor's open slots, earliest first.
func (h *Handler) DoctorSlots(c *gin.Context) {
	slots, err := h.store.SlotsByDoctor(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, "doctor slots", err)
		return
	}
	c.JSON(http.StatusOK, slots)
}

// AvailableSlots lists every open slot with doctor identity attached.
func (h *Handler) AvailableSlots(c *gin.Context) {
	slots, err := h.store.AvailableSlots(c.Request.Context())
	if err != nil {
		h.fail(c, "available slots", err)
		return
	}
	c.JSON(http.StatusOK, slots)
}
