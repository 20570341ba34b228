package validate_test

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/Gunvolt24/storefront_api/pkg/validate"
)

func TestValidateOrderFromJSON_OK(t *testing.T) {
	t.Parallel()

	ord := validOrder()
	raw, err := json.Marshal(&ord)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	got, err := validate.ValidateOrderFromJSON(context.Background(), validate.NewOrderValidator(), raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.ID != ord.ID || got.OwnerID != ord.OwnerID || got.OrderTotal != ord.OrderTotal {
		t.Fatalf("wrong order: %+v", got)
	}
}

func TestValidateOrderFromJSON_UnknownField(t *testing.T) {
	t.Parallel()

	raw := []byte(`{"id":"A1","owner_id":"U1","created_at":"2024-03-05T00:00:00Z","order_total":499,"surprise":true}`)
	_, err := validate.ValidateOrderFromJSON(context.Background(), validate.NewOrderValidator(), raw)
	if err == nil || !strings.Contains(err.Error(), "invalid json") {
		t.Fatalf("want invalid json error, got %v", err)
	}
}

func TestValidateOrderFromJSON_TrailingData(t *testing.T) {
	t.Parallel()

	ord := validOrder()
	raw, _ := json.Marshal(&ord)
	raw = append(raw, []byte(" {}")...)

	_, err := validate.ValidateOrderFromJSON(context.Background(), validate.NewOrderValidator(), raw)
	if err == nil || !strings.Contains(err.Error(), "trailing data") {
		t.Fatalf("want trailing data error, got %v", err)
	}
}
