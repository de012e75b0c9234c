package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	eventsdomain "funnel-report-service/internal/events/core/domain"
	eventsusecase "funnel-report-service/internal/events/core/usecase"
	"funnel-report-service/internal/notifier"
	"funnel-report-service/internal/signups/core/domain"
	"funnel-report-service/internal/signups/core/ports"

	"github.com/rs/zerolog"
)

var ErrInvalidEmail = errors.New("invalid email")

type EventLogger interface {
	Execute(ctx context.Context, in eventsusecase.LogEventInput) (int64, error)
}

type Notifier interface {
	Notify(ctx context.Context, text string) bool
}

// CaptureSignupUseCase stores a signup exactly once per email. A repeated
// email is a success with created=false: no second row, no signup event,
// no second notification.
type CaptureSignupUseCase struct {
	repo     ports.SignupRepositoryPort
	events   EventLogger
	notifier Notifier
	loc      *time.Location
	log      zerolog.Logger

	now func() time.Time
}

func NewCaptureSignupUseCase(
	repo ports.SignupRepositoryPort,
	events EventLogger,
	notifier Notifier,
	loc *time.Location,
	log zerolog.Logger,
) *CaptureSignupUseCase {
	return &CaptureSignupUseCase{
		repo:     repo,
		events:   events,
		notifier: notifier,
		loc:      loc,
		log:      log,
		now:      time.Now,
	}
}

type CaptureSignupInput struct {
	Email  string
	Source string
}

func (uc *CaptureSignupUseCase) Execute(ctx context.Context, in CaptureSignupInput) (bool, error) {
	email := normalizeEmail(in.Email)
	if err := validateEmail(email); err != nil {
		return false, err
	}

	s := &domain.Signup{
		Email:  email,
		Source: strings.TrimSpace(in.Source),
	}

	created, err := uc.repo.InsertSignup(ctx, s)
	if err != nil {
		return false, err
	}
	if !created {
		uc.log.Debug().Str("email", email).Msg("duplicate signup ignored")
		return false, nil
	}

	// The funnel event and the notification ride on the capture; neither
	// failing undoes the stored signup.
	if _, err := uc.events.Execute(ctx, eventsusecase.LogEventInput{
		Type:    eventsdomain.TypeSignup,
		Payload: map[string]any{"email": email, "source": s.Source},
	}); err != nil {
		uc.log.Error().Err(err).Msg("failed to log signup event")
	}

	if ok := uc.notifier.Notify(ctx, notifier.SignupMessage(email, s.Source, uc.now().In(uc.loc))); !ok {
		uc.log.Warn().Str("email", email).Msg("signup notification not delivered")
	}

	return true, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func validateEmail(email string) error {
	if email == "" || len(email) > 254 {
		return ErrInvalidEmail
	}
	at := strings.Index(email, "@")
	if at <= 0 || at == len(email)-1 {
		return ErrInvalidEmail
	}
	return nil
}
