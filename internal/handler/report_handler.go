package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"clinic-booking-api/internal/middleware"
	"clinic-booking-api/internal/model"
)

// AppointmentsReport counts the appointments created on one calendar day.
// Admins see the whole clinic; doctors see only their own rows. The date
// goes to the store as a bound parameter.
func (h *Handler) AppointmentsReport(c *gin.Context) {
	day, err := time.Parse(dateLayout, c.Query("date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date must be YYYY-MM-DD"})
		return
	}

	scope := ""
	if role, _ := c.Get(middleware.CtxRole); role == model.RoleDoctor {
		scope = userID(c)
	}

	apts, err := h.store.AppointmentsOn(c.Request.Context(), day, scope)
	if err != nil {
		h.fail(c, "appointments report", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"date":               day.Format(dateLayout),
		"total_appointments": len(apts),
		"appointments":       apts,
	})
}
