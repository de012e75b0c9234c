package fiber

import (
	"context"
	"errors"
	"net/http"
	"time"

	"funnel-report-service/internal/events/core/domain"
	"funnel-report-service/internal/events/core/usecase"
	"funnel-report-service/internal/notifier"
	signupsusecase "funnel-report-service/internal/signups/core/usecase"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
)

type LogEventUseCase interface {
	Execute(ctx context.Context, in usecase.LogEventInput) (int64, error)
}

type CaptureSignupUseCase interface {
	Execute(ctx context.Context, in signupsusecase.CaptureSignupInput) (bool, error)
}

type ReportRunner interface {
	Execute(ctx context.Context) error
}

type WindowStatsSource interface {
	QueryWindow(ctx context.Context, start, end time.Time) (domain.WindowStats, error)
}

type Notifier interface {
	Notify(ctx context.Context, text string) bool
}

// IntakeHandler owns every inbound route: webhook intake, signup
// capture, health, and the debug surface.
type IntakeHandler struct {
	logUC            LogEventUseCase
	signupUC         CaptureSignupUseCase
	reportUC         ReportRunner
	stats            WindowStatsSource
	notifier         Notifier
	loc              *time.Location
	checkoutTracking bool
	log              zerolog.Logger
}

func NewIntakeHandler(
	logUC LogEventUseCase,
	signupUC CaptureSignupUseCase,
	reportUC ReportRunner,
	stats WindowStatsSource,
	notifier Notifier,
	loc *time.Location,
	checkoutTracking bool,
	log zerolog.Logger,
) *IntakeHandler {
	return &IntakeHandler{
		logUC:            logUC,
		signupUC:         signupUC,
		reportUC:         reportUC,
		stats:            stats,
		notifier:         notifier,
		loc:              loc,
		checkoutTracking: checkoutTracking,
		log:              log,
	}
}

// LogEvent godoc
// @Summary Log a normalized funnel event
// @Description Appends one event of any known type to the event log
// @Tags Intake
// @Accept json
// @Produce json
// @Param request body LogEventRequest true "Event payload"
// @Success 201 {object} LogEventResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /events [post]
func (h *IntakeHandler) LogEvent(c *fiber.Ctx) error {
	var req LogEventRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid_json",
		})
	}

	return h.appendEvent(c, usecase.LogEventInput{
		Type:        domain.EventType(req.Type),
		Payload:     req.Payload,
		AmountCents: req.AmountCents,
	})
}

// QRScan godoc
// @Summary Receive a QR scan webhook
// @Tags Intake
// @Accept json
// @Produce json
// @Param request body QRScanRequest true "Scan payload"
// @Success 201 {object} LogEventResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /webhook/qr [post]
func (h *IntakeHandler) QRScan(c *fiber.Ctx) error {
	var req QRScanRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid_json",
		})
	}

	return h.appendEvent(c, usecase.LogEventInput{
		Type: domain.TypeScan,
		Payload: map[string]any{
			"country": req.Country,
			"device":  req.DeviceType,
			"qr_id":   req.QRCodeID,
		},
	})
}

// TrackClick godoc
// @Summary Receive a website click event
// @Tags Intake
// @Accept json
// @Produce json
// @Param request body ClickRequest true "Click payload"
// @Success 201 {object} LogEventResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /track/click [post]
func (h *IntakeHandler) TrackClick(c *fiber.Ctx) error {
	var req ClickRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid_json",
		})
	}

	page := req.Page
	if page == "" {
		page = "unknown"
	}

	return h.appendEvent(c, usecase.LogEventInput{
		Type: domain.TypeClick,
		Payload: map[string]any{
			"button": req.Button,
			"page":   page,
		},
	})
}

// Payment godoc
// @Summary Receive a normalized payment webhook
// @Description Completed sessions log a purchase and trigger an immediate notification; expired sessions log an expired checkout when tracking is enabled
// @Tags Intake
// @Accept json
// @Produce json
// @Param request body PaymentRequest true "Payment payload"
// @Success 201 {object} LogEventResponse
// @Success 200 {object} LogEventResponse "Ignored session status"
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /webhook/payment [post]
func (h *IntakeHandler) Payment(c *fiber.Ctx) error {
	var req PaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid_json",
		})
	}

	if req.Status == "expired" {
		if !h.checkoutTracking {
			return c.Status(http.StatusOK).JSON(LogEventResponse{Status: "ignored"})
		}
		return h.appendEvent(c, usecase.LogEventInput{
			Type: domain.TypeExpiredCheckout,
			Payload: map[string]any{
				"session_id": req.SessionID,
			},
		})
	}

	err := h.appendEvent(c, usecase.LogEventInput{
		Type: domain.TypePurchase,
		Payload: map[string]any{
			"session_id": req.SessionID,
			"email":      req.CustomerEmail,
			"currency":   req.Currency,
		},
		AmountCents: req.AmountCents,
	})
	if err != nil || c.Response().StatusCode() != http.StatusCreated {
		return err
	}

	// Purchases get a heads-up ahead of the next scheduled report.
	// Best effort: delivery failure never fails the webhook.
	if ok := h.notifier.Notify(c.UserContext(), notifier.PurchaseMessage(req.AmountCents, time.Now().In(h.loc))); !ok {
		h.log.Warn().Str("session_id", req.SessionID).Msg("purchase notification not delivered")
	}

	return nil
}

// Signup godoc
// @Summary Capture an email signup
// @Description Duplicate emails are accepted without a second row or notification
// @Tags Intake
// @Accept json
// @Produce json
// @Param request body SignupRequest true "Signup payload"
// @Success 201 {object} LogEventResponse
// @Success 200 {object} LogEventResponse "Duplicate email"
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /webhook/signup [post]
func (h *IntakeHandler) Signup(c *fiber.Ctx) error {
	var req SignupRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid_json",
		})
	}

	created, err := h.signupUC.Execute(c.UserContext(), signupsusecase.CaptureSignupInput{
		Email:  req.Email,
		Source: req.Source,
	})
	if err != nil {
		switch {
		case errors.Is(err, signupsusecase.ErrInvalidEmail):
			return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
				Error:   "invalid_signup",
				Message: err.Error(),
			})
		default:
			h.log.Error().Err(err).Msg("signup capture failed")
			return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
				Error: "internal_server_error",
			})
		}
	}

	if !created {
		return c.Status(http.StatusOK).JSON(LogEventResponse{Status: "duplicate"})
	}
	return c.Status(http.StatusCreated).JSON(LogEventResponse{Status: "created"})
}

// Health godoc
// @Summary Health check
// @Tags Ops
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /health [get]
func (h *IntakeHandler) Health(c *fiber.Ctx) error {
	return c.Status(http.StatusOK).JSON(HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now().In(h.loc).Format(time.RFC3339),
	})
}

// DebugStats godoc
// @Summary Current funnel stats
// @Description Event-log totals for the last 24h and today (debug only)
// @Tags Ops
// @Produce json
// @Success 200 {object} StatsResponse
// @Failure 500 {object} ErrorResponse
// @Router /debug/stats [get]
func (h *IntakeHandler) DebugStats(c *fiber.Ctx) error {
	now := time.Now()
	lt := now.In(h.loc)
	todayStart := time.Date(lt.Year(), lt.Month(), lt.Day(), 0, 0, 0, 0, h.loc)

	last24h, err := h.stats.QueryWindow(c.UserContext(), now.Add(-24*time.Hour), now)
	if err != nil {
		h.log.Error().Err(err).Msg("stats query failed")
		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
			Error: "internal_server_error",
		})
	}
	today, err := h.stats.QueryWindow(c.UserContext(), todayStart, now)
	if err != nil {
		h.log.Error().Err(err).Msg("stats query failed")
		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
			Error: "internal_server_error",
		})
	}

	return c.Status(http.StatusOK).JSON(StatsResponse{
		Last24h: windowStatsResponse(last24h),
		Today:   windowStatsResponse(today),
	})
}

// DebugSendReport godoc
// @Summary Trigger a report cycle now
// @Tags Ops
// @Produce json
// @Success 200 {object} LogEventResponse
// @Failure 500 {object} ErrorResponse
// @Router /debug/send-report [post]
func (h *IntakeHandler) DebugSendReport(c *fiber.Ctx) error {
	if err := h.reportUC.Execute(c.UserContext()); err != nil {
		h.log.Error().Err(err).Msg("manual report cycle failed")
		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
			Error: "internal_server_error",
		})
	}
	return c.Status(http.StatusOK).JSON(LogEventResponse{Status: "sent"})
}

func (h *IntakeHandler) appendEvent(c *fiber.Ctx, in usecase.LogEventInput) error {
	eventID, err := h.logUC.Execute(c.UserContext(), in)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidEventType),
			errors.Is(err, usecase.ErrNegativeAmount):
			return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
				Error:   "invalid_event",
				Message: err.Error(),
			})
		default:
			h.log.Error().Err(err).Str("type", string(in.Type)).Msg("event append failed")
			return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
				Error: "internal_server_error",
			})
		}
	}

	return c.Status(http.StatusCreated).JSON(LogEventResponse{
		Status:  "logged",
		EventID: eventID,
	})
}

func windowStatsResponse(stats domain.WindowStats) WindowStatsResponse {
	return WindowStatsResponse{
		Scans:            stats.Count(domain.TypeScan),
		Clicks:           stats.Count(domain.TypeClick),
		Purchases:        stats.Count(domain.TypePurchase),
		Revenue:          float64(stats.AmountCents(domain.TypePurchase)) / 100,
		ExpiredCheckouts: stats.Count(domain.TypeExpiredCheckout),
		Signups:          stats.Count(domain.TypeSignup),
	}
}
