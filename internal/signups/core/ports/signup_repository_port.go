package ports

import (
	"context"

	"funnel-report-service/internal/signups/core/domain"
)

type SignupRepositoryPort interface {
	// InsertSignup:
	//   created = true,  err = nil  -> new signup
	//   created = false, err = nil  -> email already captured (idempotent)
	//   created = false, err != nil -> DB error
	InsertSignup(ctx context.Context, s *domain.Signup) (created bool, err error)
}
