package store

import (
	"context"

	"clinic-booking-api/internal/model"
)

func (s *Store) ListSpecialties(ctx context.Context) ([]model.Specialty, error) {
	rows, err := s.pool.Query(ctx, `SELECT id, name FROM specialties ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Specialty
	for rows.Next() {
		var sp model.Specialty
		if err := rows.Scan(&sp.ID, &sp.Name); err != nil {
			return nil, err
		}
		out = append(out, sp)
	}
	return out, rows.Err()
}
