package model

import "time"

// Role is the closed set of account kinds. Every protected route declares
// which roles it accepts; the check happens once at the boundary.
type Role string

const (
	RolePatient Role = "patient"
	RoleDoctor  Role = "doctor"
	RoleAdmin   Role = "admin"
)

func ParseRole(s string) (Role, bool) {
	switch Role(s) {
	case RolePatient, RoleDoctor, RoleAdmin:
		return Role(s), true
	}
	return "", false
}

// Slot statuses. A slot flips available→booked exactly once, inside
// Store.BookSlot, and never flips back.
const (
	SlotAvailable = "available"
	SlotBooked    = "booked"
)

type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CitizenID    string    `json:"-"`
	BirthDate    time.Time `json:"birth_date"`
	Phone        string    `json:"phone"`
	Address      string    `json:"address"`
	Role         Role      `json:"role"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type Specialty struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// DoctorProfile holds the doctor-only registration fields.
type DoctorProfile struct {
	UserID      string `json:"user_id"`
	SpecialtyID string `json:"specialty_id"`
	LicenseNo   string `json:"license_no"`
	Bio         string `json:"bio"`
}

type Slot struct {
	ID        string    `json:"id"`
	DoctorID  string    `json:"doctor_id"`
	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

type Appointment struct {
	ID        string    `json:"id"`
	PatientID string    `json:"patient_id"`
	SlotID    string    `json:"slot_id"`
	DoctorID  string    `json:"doctor_id"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

// DoctorListing is the public directory projection of a doctor.
type DoctorListing struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Specialty string `json:"specialty"`
	LicenseNo string `json:"license_no"`
	Bio       string `json:"bio"`
}

// SlotWithDoctor is an open slot joined with its doctor's identity,
// as shown on the public booking page.
type SlotWithDoctor struct {
	Slot
	DoctorName string `json:"doctor_name"`
	Specialty  string `json:"specialty"`
}

// PatientAppointment is a patient's view of one booking: the counterpart
// doctor plus the slot's time window.
type PatientAppointment struct {
	Appointment
	StartTime  time.Time `json:"start_time"`
	EndTime    time.Time `json:"end_time"`
	DoctorName string    `json:"doctor_name"`
	Specialty  string    `json:"specialty"`
}

// DoctorAppointment is a doctor's view of one booking: the counterpart
// patient plus the slot's time window.
type DoctorAppointment struct {
	Appointment
	StartTime   time.Time `json:"start_time"`
	EndTime     time.Time `json:"end_time"`
	PatientName string    `json:"patient_name"`
}
