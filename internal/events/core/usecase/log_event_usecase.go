package usecase

import (
	"context"
	"errors"

	"funnel-report-service/internal/events/core/domain"
	"funnel-report-service/internal/events/core/ports"
)

var (
	ErrInvalidEventType = errors.New("unknown event type")
	ErrNegativeAmount   = errors.New("amount cannot be negative")
)

type LogEventUseCase struct {
	repo ports.EventRepositoryPort
}

func NewLogEventUseCase(repo ports.EventRepositoryPort) *LogEventUseCase {
	return &LogEventUseCase{repo: repo}
}

type LogEventInput struct {
	Type        domain.EventType
	Payload     map[string]any
	AmountCents int64
}

func (uc *LogEventUseCase) Execute(ctx context.Context, in LogEventInput) (int64, error) {
	if !in.Type.Known() {
		return 0, ErrInvalidEventType
	}
	if in.AmountCents < 0 {
		return 0, ErrNegativeAmount
	}

	// Amounts only carry meaning on purchases.
	if in.Type != domain.TypePurchase {
		in.AmountCents = 0
	}

	if in.Payload == nil {
		in.Payload = map[string]any{}
	}

	e := &domain.Event{
		Type:        in.Type,
		Payload:     in.Payload,
		AmountCents: in.AmountCents,
	}

	return uc.repo.InsertEvent(ctx, e)
}
