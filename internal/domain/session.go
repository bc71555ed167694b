package domain

// Session — контекст авторизованной сессии водителя.
type Session struct {
	UserID ID
	Token  string
}

// Valid — без userId и токена любые операции с кэшем запрещены.
func (s Session) Valid() bool {
	return !s.UserID.IsZero() && s.Token != ""
}

// RealtimeState — состояние realtime-канала.
type RealtimeState string

const (
	RealtimeDisabled    RealtimeState = "disabled"
	RealtimeConnecting  RealtimeState = "connecting"
	RealtimeConnected   RealtimeState = "connected"
	RealtimeDegraded    RealtimeState = "degraded"
	RealtimeUnavailable RealtimeState = "unavailable"
)

// SessionStatus — снимок состояния сессии для /healthz и /api/session.
type SessionStatus struct {
	Active   bool          `json:"active"`
	UserID   ID            `json:"user_id,omitempty"`
	Realtime RealtimeState `json:"realtime"`
}
