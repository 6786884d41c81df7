package store

import (
	"context"
	"time"

	"clinic-booking-api/internal/model"
)

// AppointmentsOn returns the appointments created on the given calendar
// day. A non-empty doctorID narrows the report to that doctor's rows.
// The date is always bound as a parameter, never spliced into the query.
func (s *Store) AppointmentsOn(ctx context.Context, day time.Time, doctorID string) ([]model.Appointment, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT id, patient_id, slot_id, doctor_id, status, created_at
		 FROM appointments
		 WHERE created_at::date = $1::date
		   AND ($2 = '' OR doctor_id = $2)
		 ORDER BY created_at`, day, doctorID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Appointment
	for rows.Next() {
		var a model.Appointment
		if err := rows.Scan(&a.ID, &a.PatientID, &a.SlotID, &a.DoctorID, &a.Status, &a.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}
