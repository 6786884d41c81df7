package handler

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"clinic-booking-api/internal/middleware"
	"clinic-booking-api/internal/model"
)

// Routes builds the full REST surface. Shared between main and the
// integration tests so both exercise the same middleware chain.
func Routes(h *Handler, secret string, rl *middleware.RateLimiter, origins []string) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	authRoutes := r.Group("/auth")
	authRoutes.Use(middleware.RateLimit(rl))
	{
		authRoutes.POST("/register", h.Register)
		authRoutes.POST("/register/doctor", h.RegisterDoctor)
		authRoutes.POST("/login", h.Login)
		authRoutes.POST("/refresh", h.Refresh)
	}

	// public browsing: no identity required to look around
	r.GET("/specialties", h.ListSpecialties)
	r.GET("/doctors", h.ListDoctors)
	r.GET("/doctors/slots", h.AvailableSlots)
	r.GET("/doctors/:id/slots", h.DoctorSlots)

	api := r.Group("/api")
	api.Use(middleware.Auth(secret))
	{
		api.POST("/doctors/slots", middleware.RequireRole(model.RoleDoctor), h.CreateSlot)

		api.POST("/appointments", middleware.RequireRole(model.RolePatient), h.Book)
		api.GET("/appointments/me", middleware.RequireRole(model.RolePatient), h.MyAppointments)
		api.GET("/appointments/doctor/me", middleware.RequireRole(model.RoleDoctor), h.DoctorAppointments)

		api.GET("/users/me", h.GetMe)
		api.PUT("/users/me", h.UpdateMe)
		api.POST("/auth/logout", h.Logout)

		api.GET("/reports/appointments",
			middleware.RequireRole(model.RoleAdmin, model.RoleDoctor), h.AppointmentsReport)
	}

	return r
}
