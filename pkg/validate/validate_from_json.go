package validate

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/Gunvolt24/driver_sync/internal/domain"
	"github.com/Gunvolt24/driver_sync/internal/synchronizer"
)

// ValidateOrderFromJSON — разбор «сырого» заказа (как его отдаёт REST),
// нормализация и валидация. Лишние поля сервера допустимы.
func ValidateOrderFromJSON(ctx context.Context, validator Validator, raw []byte) (*domain.Order, error) {
	var ro domain.RawOrder
	dec := json.NewDecoder(bytes.NewReader(raw))
	if err := dec.Decode(&ro); err != nil {
		return nil, fmt.Errorf("%w: invalid json: %w", ErrInvalidOrder, err)
	}
	// после объекта ничего быть не должно
	if err := dec.Decode(new(struct{})); err != io.EOF {
		return nil, fmt.Errorf("%w: invalid json: trailing data", ErrInvalidOrder)
	}
	order := synchronizer.Normalize(ro, nil)
	if err := validator.Validate(ctx, &order); err != nil {
		return nil, err
	}
	return &order, nil
}
