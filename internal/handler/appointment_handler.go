package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type bookRequest struct {
	SlotID string `json:"slot_id" binding:"required"`
}

// Book claims one slot for the authenticated patient. The whole
// check-and-claim runs inside a single store transaction; this handler
// only translates the outcome. 404 means no such slot, 409 means someone
// got there first — the client should re-fetch the slot list, not retry.
func (h *Handler) Book(c *gin.Context) {
	var req bookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "slot_id required"})
		return
	}

	pid := userID(c)
	if pid == "" {
		// the middleware should make this impossible
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing identity"})
		return
	}

	a, err := h.store.BookSlot(c.Request.Context(), pid, req.SlotID)
	if err != nil {
		h.fail(c, "book slot", err)
		return
	}

	h.log.Infow("slot booked", "appointment", a.ID, "slot", a.SlotID, "patient", a.PatientID)
	c.JSON(http.StatusCreated, a)
}

func (h *Handler) MyAppointments(c *gin.Context) {
	apts, err := h.store.AppointmentsByPatient(c.Request.Context(), userID(c))
	if err != nil {
		h.fail(c, "patient appointments", err)
		return
	}
	c.JSON(http.StatusOK, apts)
}

func (h *Handler) DoctorAppointments(c *gin.Context) {
	apts, err := h.store.AppointmentsByDoctor(c.Request.Context(), userID(c))
	if err != nil {
		h.fail(c, "doctor appointments", err)
		return
	}
	c.JSON(http.StatusOK, apts)
}
