package domain

// NotificationStatus — статус уведомления.
type NotificationStatus string

const (
	NotificationPending   NotificationStatus = "pending"
	NotificationConfirmed NotificationStatus = "confirmed"
)

// Notification — уведомление водителю. Pending-уведомление с order_id —
// живое предложение заказа, которое ещё никто не принял.
type Notification struct {
	ID        ID                 `json:"id"`
	OrderID   ID                 `json:"order_id,omitempty"`
	Status    NotificationStatus `json:"status,omitempty"`
	Title     string             `json:"title,omitempty"`
	Message   string             `json:"message,omitempty"`
	ShopName  string             `json:"shop_name,omitempty"`
	Amount    float64            `json:"amount,omitempty"`
	CreatedAt *Timestamp         `json:"created_at,omitempty"`
}

var _ Record[Notification] = Notification{}

func (n Notification) Key() ID { return n.ID }

// IsPending — отсутствующий статус трактуется как pending.
func (n Notification) IsPending() bool {
	return n.Status == "" || n.Status == NotificationPending
}

func (n Notification) Merge(p Notification) Notification {
	out := n
	if !p.ID.IsZero() {
		out.ID = p.ID
	}
	if !p.OrderID.IsZero() {
		out.OrderID = p.OrderID
	}
	if p.Status != "" {
		out.Status = p.Status
	}
	out.Title = pickString(out.Title, p.Title)
	out.Message = pickString(out.Message, p.Message)
	out.ShopName = pickString(out.ShopName, p.ShopName)
	if p.Amount != 0 {
		out.Amount = p.Amount
	}
	out.CreatedAt = pickTime(out.CreatedAt, p.CreatedAt)
	return out
}
