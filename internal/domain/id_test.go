package domain_test

import (
	"encoding/json"
	"testing"

	"github.com/Gunvolt24/driver_sync/internal/domain"
)

func TestID_UnmarshalJSON_StringAndNumberAreEqual(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		raw  string
		want domain.ID
	}{
		{"number", `42`, "42"},
		{"string", `"42"`, "42"},
		{"float without fraction", `42.0`, "42"},
		{"spaced string", `" 42 "`, "42"},
		{"uuid string", `"a1b2-c3"`, "a1b2-c3"},
		{"null", `null`, ""},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var got domain.ID
			if err := json.Unmarshal([]byte(tt.raw), &got); err != nil {
				t.Fatalf("unmarshal %s: %v", tt.raw, err)
			}
			if got != tt.want {
				t.Fatalf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestID_UnmarshalJSON_Invalid(t *testing.T) {
	var id domain.ID
	if err := json.Unmarshal([]byte(`{}`), &id); err == nil {
		t.Fatalf("expected error for object id")
	}
}

func TestParseID(t *testing.T) {
	t.Parallel()

	if got := domain.ParseID(42); got != "42" {
		t.Fatalf("ParseID(int) = %q", got)
	}
	if got := domain.ParseID(float64(7)); got != "7" {
		t.Fatalf("ParseID(float64) = %q", got)
	}
	if got := domain.ParseID(json.Number("15")); got != "15" {
		t.Fatalf("ParseID(json.Number) = %q", got)
	}
	if got := domain.ParseID(" x "); got != "x" {
		t.Fatalf("ParseID(string) = %q", got)
	}
	if got := domain.ParseID(nil); !got.IsZero() {
		t.Fatalf("ParseID(nil) = %q, want empty", got)
	}
}

func TestRawOrder_DecodesMixedPayload(t *testing.T) {
	raw := []byte(`{"order_id": 42, "shop_account_id": "7", "status": "assigned",
		"created_at": "2024-05-01 10:00:00", "delivery_time": 1714557600000}`)

	var o domain.RawOrder
	if err := json.Unmarshal(raw, &o); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if o.OrderID != "42" || o.ShopAccountID != "7" || o.Status != domain.OrderAssigned {
		t.Fatalf("unexpected decode: %+v", o)
	}
	if o.CreatedAt == nil || o.CreatedAt.Hour() != 10 {
		t.Fatalf("created_at not parsed: %+v", o.CreatedAt)
	}
	if o.DeliveryTime == nil || o.DeliveryTime.IsZero() {
		t.Fatalf("delivery_time not parsed")
	}
}
