package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// ID — канонический идентификатор сущности.
// REST и WebSocket присылают id то строкой, то числом; на границе модели
// оба варианта приводятся к строке, поэтому дальше сравнение — обычное ==.
type ID string

// ParseID — приводит значение произвольного типа (строка, число, json.Number) к ID.
func ParseID(v any) ID {
	switch val := v.(type) {
	case nil:
		return ""
	case ID:
		return val
	case string:
		return ID(strings.TrimSpace(val))
	case json.Number:
		return idFromNumber(val.String())
	case int:
		return ID(strconv.Itoa(val))
	case int64:
		return ID(strconv.FormatInt(val, 10))
	case float64:
		return idFromNumber(strconv.FormatFloat(val, 'f', -1, 64))
	default:
		return ID(strings.TrimSpace(fmt.Sprint(val)))
	}
}

// IsZero — id не задан.
func (id ID) IsZero() bool { return id == "" }

func (id ID) String() string { return string(id) }

// UnmarshalJSON принимает "42", 42 и null.
func (id *ID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		*id = ""
		return nil
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return fmt.Errorf("id: %w", err)
		}
		*id = ID(strings.TrimSpace(s))
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("id: %w", err)
	}
	*id = idFromNumber(n.String())
	return nil
}

// idFromNumber — 42.0 и 42 дают одинаковый id.
func idFromNumber(s string) ID {
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return ID(strconv.FormatInt(i, 10))
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil && f == float64(int64(f)) {
		return ID(strconv.FormatInt(int64(f), 10))
	}
	return ID(s)
}
