package fiber

// LogEventRequest is the normalized intake payload
// @Description Generic funnel event DTO
type LogEventRequest struct {
	Type        string         `json:"type"`
	Payload     map[string]any `json:"payload"`
	AmountCents int64          `json:"amount_cents"`
}

type LogEventResponse struct {
	Status  string `json:"status"`
	EventID int64  `json:"event_id,omitempty"`
}

type QRScanRequest struct {
	Country    string `json:"country"`
	DeviceType string `json:"device_type"`
	QRCodeID   string `json:"qr_code_id"`
}

type ClickRequest struct {
	Button string `json:"button"`
	Page   string `json:"page"`
}

type PaymentRequest struct {
	SessionID     string `json:"session_id"`
	Status        string `json:"status"`
	AmountCents   int64  `json:"amount_cents"`
	Currency      string `json:"currency"`
	CustomerEmail string `json:"customer_email"`
}

type SignupRequest struct {
	Email  string `json:"email"`
	Source string `json:"source"`
}

type WindowStatsResponse struct {
	Scans            int64   `json:"scans"`
	Clicks           int64   `json:"clicks"`
	Purchases        int64   `json:"purchases"`
	Revenue          float64 `json:"revenue"`
	ExpiredCheckouts int64   `json:"expired_checkouts"`
	Signups          int64   `json:"signups"`
}

type StatsResponse struct {
	Last24h WindowStatsResponse `json:"last_24h"`
	Today   WindowStatsResponse `json:"today"`
}

type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}

type ErrorResponse struct {
	Error   string `json:"error" example:"invalid_event"`
	Message string `json:"message" example:"Event payload is invalid"`
}
