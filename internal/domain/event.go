package domain

import "encoding/json"

// EventType — тип realtime-сообщения.
type EventType string

const (
	EventNotification       EventType = "notification"
	EventNotificationUpdate EventType = "notification_update"
	EventOrderAccepted      EventType = "order_accepted"
	EventOrderCompleted     EventType = "order_completed"
	EventOrderRemoved       EventType = "order_removed"

	// Управление сессией.
	EventAuthenticated  EventType = "authenticated"
	EventAuthError      EventType = "auth_error"
	EventSessionExpired EventType = "session_expired"
	EventForceLogout    EventType = "force_logout"
	EventPong           EventType = "pong"
	EventHeartbeatAck   EventType = "heartbeat_ack"
)

// Event — конверт входящего realtime-сообщения.
// Поля заполняются в зависимости от Type; неизвестные поля игнорируются.
type Event struct {
	Type           EventType     `json:"type"`
	DriverID       ID            `json:"driver_id,omitempty"`
	OrderID        ID            `json:"order_id,omitempty"`
	NotificationID ID            `json:"notification_id,omitempty"`
	Order          *RawOrder     `json:"order,omitempty"`
	Notification   *Notification `json:"notification,omitempty"`
	DeliveredAt    *Timestamp    `json:"delivered_at,omitempty"`
	Message        string        `json:"message,omitempty"`

	// Data — часть серверов кладёт полезную нагрузку в data, а не в order/notification.
	Data json.RawMessage `json:"data,omitempty"`
}

// AuthenticateMessage — первое сообщение после установки соединения.
type AuthenticateMessage struct {
	Type         string `json:"type"`
	UserID       ID     `json:"userId"`
	UserType     string `json:"userType"`
	SessionToken string `json:"sessionToken"`
}

// NewAuthenticateMessage — сообщение аутентификации водителя.
func NewAuthenticateMessage(s Session) AuthenticateMessage {
	return AuthenticateMessage{
		Type:         "authenticate",
		UserID:       s.UserID,
		UserType:     "driver",
		SessionToken: s.Token,
	}
}

// HeartbeatMessage — периодический пинг канала.
var HeartbeatMessage = json.RawMessage(`{"type":"heartbeat"}`)
