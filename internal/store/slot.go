package store

import (
	"context"

	"clinic-booking-api/internal/model"
)

func (s *Store) CreateSlot(ctx context.Context, sl *model.Slot) error {
	return s.pool.QueryRow(ctx,
		`INSERT INTO doctor_slots (id, doctor_id, start_time, end_time, status)
		 VALUES ($1,$2,$3,$4,$5)
		 RETURNING created_at`,
		sl.ID, sl.DoctorID, sl.StartTime, sl.EndTime, sl.Status,
	).Scan(&sl.CreatedAt)
}

// SlotsByDoctor returns a doctor's open slots, earliest first.
func (s *Store) SlotsByDoctor(ctx context.Context, doctorID string) ([]model.Slot, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT id, doctor_id, start_time, end_time, status, created_at
		 FROM doctor_slots
		 WHERE doctor_id = $1 AND status = $2
		 ORDER BY start_time`, doctorID, model.SlotAvailable,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Slot
	for rows.Next() {
		var sl model.Slot
		if err := rows.Scan(&sl.ID, &sl.DoctorID, &sl.StartTime, &sl.EndTime, &sl.Status, &sl.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, sl)
	}
	return out, rows.Err()
}

// AvailableSlots returns every open slot across all doctors, joined with
// the doctor's name and specialty for the public booking page.
func (s *Store) AvailableSlots(ctx context.Context) ([]model.SlotWithDoctor, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT sl.id, sl.doctor_id, sl.start_time, sl.end_time, sl.status, sl.created_at,
		        u.name, COALESCE(sp.name, '')
		 FROM doctor_slots sl
		 JOIN users u ON u.id = sl.doctor_id
		 LEFT JOIN doctor_profiles dp ON dp.user_id = sl.doctor_id
		 LEFT JOIN specialties sp ON sp.id = dp.specialty_id
		 WHERE sl.status = $1
		 ORDER BY sl.start_time`, model.SlotAvailable,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.SlotWithDoctor
	for rows.Next() {
		var sw model.SlotWithDoctor
		if err := rows.Scan(&sw.ID, &sw.DoctorID, &sw.StartTime, &sw.EndTime, &sw.Status,
			&sw.CreatedAt, &sw.DoctorName, &sw.Specialty); err != nil {
			return nil, err
		}
		out = append(out, sw)
	}
	return out, rows.Err()
}
