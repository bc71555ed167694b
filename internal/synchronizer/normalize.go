package synchronizer

import "github.com/Gunvolt24/driver_sync/internal/domain"

// Normalize — полное отображение «сырого» заказа в канонический Order.
// Выполняется один раз на границе синхронизатора, дальше код
// не ветвится по форме payload'а:
//   - id берётся из order_id, если id не пришёл;
//   - shop_id подставляется из shop_account_id;
//   - недостающие данные магазина ищутся в коллекции shops;
//   - delivery_time становится delivered_at.
func Normalize(raw domain.RawOrder, shops []domain.Shop) domain.Order {
	o := raw.Order

	if o.ID.IsZero() {
		o.ID = raw.OrderID
	}
	if o.ShopID.IsZero() {
		o.ShopID = raw.ShopAccountID
	}
	if o.DeliveredAt == nil && raw.DeliveryTime != nil && !raw.DeliveryTime.IsZero() {
		t := *raw.DeliveryTime
		o.DeliveredAt = &t
	}

	if o.ShopName == "" || o.ShopAddress == "" || o.ShopPhone == "" {
		if shop, ok := findShop(shops, raw.ShopID, raw.ShopAccountID); ok {
			o.ShopName = pick(o.ShopName, shop.Name)
			o.ShopAddress = pick(o.ShopAddress, shop.Address)
			o.ShopPhone = pick(o.ShopPhone, shop.Phone)
		}
	}
	return o
}

// NormalizeAll — нормализация пачки заказов из REST.
func NormalizeAll(raws []domain.RawOrder, shops []domain.Shop) []domain.Order {
	out := make([]domain.Order, 0, len(raws))
	for i := range raws {
		out = append(out, Normalize(raws[i], shops))
	}
	return out
}

func findShop(shops []domain.Shop, refs ...domain.ID) (domain.Shop, bool) {
	for _, ref := range refs {
		if ref.IsZero() {
			continue
		}
		for _, s := range shops {
			if s.Matches(ref) {
				return s, true
			}
		}
	}
	return domain.Shop{}, false
}

func pick(cur, fallback string) string {
	if cur != "" {
		return cur
	}
	return fallback
}
