package validate

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Gunvolt24/driver_sync/internal/domain"
)

// ErrInvalidOrder — базовая (sentinel error) ошибка валидации.
var ErrInvalidOrder = errors.New("order validation failed")

// Validator — проверка канонического заказа.
type Validator interface {
	Validate(ctx context.Context, order *domain.Order) error
}

// Проверка, что OrderValidator удовлетворяет интерфейсу Validator.
var _ Validator = (*OrderValidator)(nil)

// OrderValidator — те же правила, по которым заказ попадает в список на экране,
// плюс проверки статуса и сумм.
type OrderValidator struct{}

// NewOrderValidator — конструктор OrderValidator.
// Возвращает ErrInvalidOrder (с обёрнутой причиной) при любой проблеме.
func NewOrderValidator() *OrderValidator { return &OrderValidator{} }

// Validate — проверяет корректность полей заказа.
func (v *OrderValidator) Validate(_ context.Context, order *domain.Order) error {
	if err := v.validateCore(order); err != nil {
		return err
	}
	if err := v.validateAmounts(order); err != nil {
		return err
	}
	return v.validateTimeline(order)
}

// validateCore — id, время создания и статус.
func (v *OrderValidator) validateCore(order *domain.Order) error {
	if order == nil {
		return fmt.Errorf("%w: заказ не может быть nil", ErrInvalidOrder)
	}
	if order.ID.IsZero() {
		return fmt.Errorf("%w: id обязателен", ErrInvalidOrder)
	}
	if order.CreatedAt == nil || order.CreatedAt.IsZero() {
		return fmt.Errorf("%w: created_at обязателен", ErrInvalidOrder)
	}
	if order.CreatedAt.Before(time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)) {
		return fmt.Errorf("%w: created_at некорректен", ErrInvalidOrder)
	}
	if order.Status != "" && !order.Status.Valid() {
		return fmt.Errorf("%w: неизвестный status %q", ErrInvalidOrder, order.Status)
	}
	return nil
}

// Валидация сумм
func (v *OrderValidator) validateAmounts(order *domain.Order) error {
	if order.OrderAmount < 0 {
		return fmt.Errorf("%w: order_amount должен быть неотрицательным", ErrInvalidOrder)
	}
	if order.DeliveryFee < 0 {
		return fmt.Errorf("%w: delivery_fee должен быть неотрицательным", ErrInvalidOrder)
	}
	if order.TotalAmount < 0 {
		return fmt.Errorf("%w: total_amount должен быть неотрицательным", ErrInvalidOrder)
	}
	return nil
}

// Доставка не может быть раньше создания
func (v *OrderValidator) validateTimeline(order *domain.Order) error {
	if order.DeliveredAt != nil && !order.DeliveredAt.IsZero() && order.DeliveredAt.Before(order.CreatedAt.Time) {
		return fmt.Errorf("%w: delivered_at раньше created_at", ErrInvalidOrder)
	}
	return nil
}
