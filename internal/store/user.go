package store

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"clinic-booking-api/internal/model"
)

func (s *Store) CreateUser(ctx context.Context, u *model.User) error {
	_, err := s.pool.Exec(ctx,
		`INSERT INTO users (id, name, email, password_hash, citizen_id, birth_date, phone, role)
		 VALUES ($1,$2,$3,$4,$5,$6,$7,$8)`,
		u.ID, u.Name, u.Email, u.PasswordHash, u.CitizenID, u.BirthDate, u.Phone, u.Role,
	)
	if pgErrCode(err) == codeUniqueViolation {
		return ErrDuplicate
	}
	return err
}

// CreateDoctor inserts the user row and its doctor profile together.
// An unknown specialty surfaces as ErrNotFound via the FK.
func (s *Store) CreateDoctor(ctx context.Context, u *model.User, p *model.DoctorProfile) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx,
		`INSERT INTO users (id, name, email, password_hash, citizen_id, birth_date, phone, role)
		 VALUES ($1,$2,$3,$4,$5,$6,$7,$8)`,
		u.ID, u.Name, u.Email, u.PasswordHash, u.CitizenID, u.BirthDate, u.Phone, model.RoleDoctor,
	)
	if err != nil {
		if pgErrCode(err) == codeUniqueViolation {
			return ErrDuplicate
		}
		return err
	}

	_, err = tx.Exec(ctx,
		`INSERT INTO doctor_profiles (user_id, specialty_id, license_no, bio) VALUES ($1,$2,$3,$4)`,
		u.ID, p.SpecialtyID, p.LicenseNo, p.Bio,
	)
	if err != nil {
		if pgErrCode(err) == codeForeignKeyViolation {
			return ErrNotFound
		}
		return err
	}

	return tx.Commit(ctx)
}

func (s *Store) UserByEmail(ctx context.Context, email string) (*model.User, error) {
	u := &model.User{}
	err := s.pool.QueryRow(ctx,
		`SELECT id, name, email, password_hash, citizen_id, birth_date, phone, address, role, status, created_at, updated_at
		 FROM users WHERE email = $1`, email,
	).Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.CitizenID, &u.BirthDate,
		&u.Phone, &u.Address, &u.Role, &u.Status, &u.CreatedAt, &u.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return u, nil
}

func (s *Store) UserByID(ctx context.Context, id string) (*model.User, error) {
	u := &model.User{}
	err := s.pool.QueryRow(ctx,
		`SELECT id, name, email, password_hash, citizen_id, birth_date, phone, address, role, status, created_at, updated_at
		 FROM users WHERE id = $1`, id,
	).Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.CitizenID, &u.BirthDate,
		&u.Phone, &u.Address, &u.Role, &u.Status, &u.CreatedAt, &u.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return u, nil
}

// UpdateProfile overwrites only the fields a user may edit themselves.
// Empty strings mean "leave unchanged".
func (s *Store) UpdateProfile(ctx context.Context, id, name, phone, address string) error {
	ct, err := s.pool.Exec(ctx,
		`UPDATE users
		 SET name    = COALESCE(NULLIF($2, ''), name),
		     phone   = COALESCE(NULLIF($3, ''), phone),
		     address = COALESCE(NULLIF($4, ''), address),
		     updated_at = NOW()
		 WHERE id = $1`,
		id, name, phone, address,
	)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// ListDoctors returns the public doctor directory, optionally filtered by
// a case-insensitive specialty name fragment.
func (s *Store) ListDoctors(ctx context.Context, specialty string) ([]model.DoctorListing, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT u.id, u.name, u.email,
		        COALESCE(sp.name, ''), COALESCE(dp.license_no, ''), COALESCE(dp.bio, '')
		 FROM users u
		 LEFT JOIN doctor_profiles dp ON dp.user_id = u.id
		 LEFT JOIN specialties sp ON sp.id = dp.specialty_id
		 WHERE u.role = 'doctor'
		   AND ($1 = '' OR sp.name ILIKE '%' || $1 || '%')
		 ORDER BY u.name`, specialty,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.DoctorListing
	for rows.Next() {
		var d model.DoctorListing
		if err := rows.Scan(&d.ID, &d.Name, &d.Email, &d.Specialty, &d.LicenseNo, &d.Bio); err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}
