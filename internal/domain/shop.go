package domain

// Shop — магазин, к которому привязан водитель.
type Shop struct {
	ID        ID     `json:"id"`
	AccountID ID     `json:"account_id,omitempty"`
	Name      string `json:"name,omitempty"`
	Address   string `json:"address,omitempty"`
	Phone     string `json:"phone,omitempty"`
}

var _ Record[Shop] = Shop{}

func (s Shop) Key() ID { return s.ID }

func (s Shop) Merge(p Shop) Shop {
	out := s
	if !p.ID.IsZero() {
		out.ID = p.ID
	}
	if !p.AccountID.IsZero() {
		out.AccountID = p.AccountID
	}
	out.Name = pickString(out.Name, p.Name)
	out.Address = pickString(out.Address, p.Address)
	out.Phone = pickString(out.Phone, p.Phone)
	return out
}

// Matches — магазин соответствует ссылке shop_id или shop_account_id.
func (s Shop) Matches(ref ID) bool {
	if ref.IsZero() {
		return false
	}
	return s.ID == ref || s.AccountID == ref
}
