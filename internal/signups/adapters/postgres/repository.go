package postgres

import (
	"context"

	"funnel-report-service/internal/signups/core/domain"
	"funnel-report-service/internal/signups/core/ports"
)

type SignupRepository struct {
	db DB
}

func NewSignupRepository(db DB) *SignupRepository {
	return &SignupRepository{db: db}
}

var _ ports.SignupRepositoryPort = (*SignupRepository)(nil)

// SQL template
const insertSignupSQL = `
INSERT INTO signups (
    email,
    source
) VALUES (
    $1, $2
)
ON CONFLICT (email) DO NOTHING;
`

func (r *SignupRepository) InsertSignup(ctx context.Context, s *domain.Signup) (bool, error) {
	var source any
	if s.Source == "" {
		source = nil
	} else {
		source = s.Source
	}

	res, err := r.db.ExecContext(ctx, insertSignupSQL, s.Email, source)
	if err != nil {
		return false, err
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return false, err
	}

	// rows == 1 -> new signup
	// rows == 0 -> email already captured (ON CONFLICT DO NOTHING)
	return rows > 0, nil
}
