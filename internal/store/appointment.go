package store

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"clinic-booking-api/internal/model"
)

// BookSlot atomically claims one available slot for one patient. The slot
// row is locked for the duration of the transaction, so two concurrent
// attempts on the same slot serialize: the first commits, the second sees
// status=booked and gets ErrSlotTaken. The conditional UPDATE and the
// UNIQUE constraint on appointments.slot_id back the lock up; a plain
// read-then-write would race across service instances.
func (s *Store) BookSlot(ctx context.Context, patientID, slotID string) (*model.Appointment, error) {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	var doctorID, status string
	err = tx.QueryRow(ctx,
		`SELECT doctor_id, status FROM doctor_slots WHERE id = $1 FOR UPDATE`, slotID,
	).Scan(&doctorID, &status)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if status != model.SlotAvailable {
		return nil, ErrSlotTaken
	}

	a := &model.Appointment{
		ID:        uuid.New().String(),
		PatientID: patientID,
		SlotID:    slotID,
		DoctorID:  doctorID, // from the locked row, keeping appointment and slot in agreement
		Status:    model.SlotBooked,
	}
	err = tx.QueryRow(ctx,
		`INSERT INTO appointments (id, patient_id, slot_id, doctor_id, status)
		 VALUES ($1,$2,$3,$4,$5)
		 RETURNING created_at`,
		a.ID, a.PatientID, a.SlotID, a.DoctorID, a.Status,
	).Scan(&a.CreatedAt)
	if err != nil {
		if pgErrCode(err) == codeUniqueViolation {
			return nil, ErrSlotTaken
		}
		return nil, err
	}

	ct, err := tx.Exec(ctx,
		`UPDATE doctor_slots SET status = $1 WHERE id = $2 AND status = $3`,
		model.SlotBooked, slotID, model.SlotAvailable,
	)
	if err != nil {
		return nil, err
	}
	if ct.RowsAffected() != 1 {
		return nil, ErrSlotTaken
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return a, nil
}

// AppointmentsByPatient lists a patient's bookings, most recent first,
// each with the slot window and the doctor's identity.
func (s *Store) AppointmentsByPatient(ctx context.Context, patientID string) ([]model.PatientAppointment, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT a.id, a.patient_id, a.slot_id, a.doctor_id, a.status, a.created_at,
		        sl.start_time, sl.end_time, u.name, COALESCE(sp.name, '')
		 FROM appointments a
		 JOIN doctor_slots sl ON sl.id = a.slot_id
		 JOIN users u ON u.id = a.doctor_id
		 LEFT JOIN doctor_profiles dp ON dp.user_id = a.doctor_id
		 LEFT JOIN specialties sp ON sp.id = dp.specialty_id
		 WHERE a.patient_id = $1
		 ORDER BY a.created_at DESC`, patientID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.PatientAppointment
	for rows.Next() {
		var pa model.PatientAppointment
		if err := rows.Scan(&pa.ID, &pa.PatientID, &pa.SlotID, &pa.DoctorID, &pa.Status,
			&pa.CreatedAt, &pa.StartTime, &pa.EndTime, &pa.DoctorName, &pa.Specialty); err != nil {
			return nil, err
		}
		out = append(out, pa)
	}
	return out, rows.Err()
}

// AppointmentsByDoctor lists a doctor's bookings, most recent first,
// each with the slot window and the patient's identity.
func (s *Store) AppointmentsByDoctor(ctx context.Context, doctorID string) ([]model.DoctorAppointment, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT a.id, a.patient_id, a.slot_id, a.doctor_id, a.status, a.created_at,
		        sl.start_time, sl.end_time, u.name
		 FROM appointments a
		 JOIN doctor_slots sl ON sl.id = a.slot_id
		 JOIN users u ON u.id = a.patient_id
		 WHERE a.doctor_id = $1
		 ORDER BY a.created_at DESC`, doctorID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.DoctorAppointment
	for rows.Next() {
		var da model.DoctorAppointment
		if err := rows.Scan(&da.ID, &da.PatientID, &da.SlotID, &da.DoctorID, &da.Status,
			&da.CreatedAt, &da.StartTime, &da.EndTime, &da.PatientName); err != nil {
			return nil, err
		}
		out = append(out, da)
	}
	return out, rows.Err()
}
