package domain

// OrderStatus — статус заказа.
type OrderStatus string

const (
	OrderPending   OrderStatus = "pending"
	OrderAssigned  OrderStatus = "assigned"
	OrderPickedUp  OrderStatus = "picked_up"
	OrderDelivered OrderStatus = "delivered"
	OrderCancelled OrderStatus = "cancelled"
)

// Valid — статус из известного набора.
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderPending, OrderAssigned, OrderPickedUp, OrderDelivered, OrderCancelled:
		return true
	}
	return false
}

// Order — каноническое представление заказа в кэше.
type Order struct {
	ID       ID          `json:"id"`
	Status   OrderStatus `json:"status,omitempty"`
	DriverID ID          `json:"driver_id,omitempty"`

	ShopID      ID     `json:"shop_id,omitempty"`
	ShopName    string `json:"shop_name,omitempty"`
	ShopAddress string `json:"shop_address,omitempty"`
	ShopPhone   string `json:"shop_phone,omitempty"`

	CustomerName    string `json:"customer_name,omitempty"`
	CustomerPhone   string `json:"customer_phone,omitempty"`
	DeliveryAddress string `json:"delivery_address,omitempty"`
	Notes           string `json:"notes,omitempty"`

	OrderAmount float64 `json:"order_amount,omitempty"`
	DeliveryFee float64 `json:"delivery_fee,omitempty"`
	TotalAmount float64 `json:"total_amount,omitempty"`

	CreatedAt   *Timestamp `json:"created_at,omitempty"`
	AssignedAt  *Timestamp `json:"assigned_at,omitempty"`
	PickedUpAt  *Timestamp `json:"picked_up_at,omitempty"`
	DeliveredAt *Timestamp `json:"delivered_at,omitempty"`
}

// RawOrder — заказ в том виде, в каком его присылают REST и WebSocket.
// Разные источники заполняют разные подмножества полей: id может прийти
// как order_id, магазин — только ссылкой, время доставки — как delivery_time.
type RawOrder struct {
	Order

	OrderID       ID         `json:"order_id,omitempty"`
	ShopAccountID ID         `json:"shop_account_id,omitempty"`
	DeliveryTime  *Timestamp `json:"delivery_time,omitempty"`
}

var _ Record[Order] = Order{}

func (o Order) Key() ID { return o.ID }

// Merge — заданные поля патча перезаписывают, остальные сохраняются.
func (o Order) Merge(p Order) Order {
	out := o
	if !p.ID.IsZero() {
		out.ID = p.ID
	}
	if p.Status != "" {
		out.Status = p.Status
	}
	if !p.DriverID.IsZero() {
		out.DriverID = p.DriverID
	}
	if !p.ShopID.IsZero() {
		out.ShopID = p.ShopID
	}
	out.ShopName = pickString(out.ShopName, p.ShopName)
	out.ShopAddress = pickString(out.ShopAddress, p.ShopAddress)
	out.ShopPhone = pickString(out.ShopPhone, p.ShopPhone)
	out.CustomerName = pickString(out.CustomerName, p.CustomerName)
	out.CustomerPhone = pickString(out.CustomerPhone, p.CustomerPhone)
	out.DeliveryAddress = pickString(out.DeliveryAddress, p.DeliveryAddress)
	out.Notes = pickString(out.Notes, p.Notes)
	if p.OrderAmount != 0 {
		out.OrderAmount = p.OrderAmount
	}
	if p.DeliveryFee != 0 {
		out.DeliveryFee = p.DeliveryFee
	}
	if p.TotalAmount != 0 {
		out.TotalAmount = p.TotalAmount
	}
	out.CreatedAt = pickTime(out.CreatedAt, p.CreatedAt)
	out.AssignedAt = pickTime(out.AssignedAt, p.AssignedAt)
	out.PickedUpAt = pickTime(out.PickedUpAt, p.PickedUpAt)
	out.DeliveredAt = pickTime(out.DeliveredAt, p.DeliveredAt)
	return out
}

// Renderable — заказ можно показывать: есть id и время создания.
func (o Order) Renderable() bool {
	return !o.ID.IsZero() && isSet(o.CreatedAt)
}

func pickString(cur, patch string) string {
	if patch != "" {
		return patch
	}
	return cur
}

func pickTime(cur, patch *Timestamp) *Timestamp {
	if isSet(patch) {
		t := *patch
		return &t
	}
	return cur
}
