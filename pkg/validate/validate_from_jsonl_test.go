package validate_test

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/Gunvolt24/storefront_api/pkg/validate"
)

func TestValidateJSONLStream_MixedLines(t *testing.T) {
	t.Parallel()

	good := validOrder()
	rawGood, _ := json.Marshal(&good)

	input := strings.Join([]string{
		string(rawGood),
		"", // пустая строка пропускается
		`{"id":"","owner_id":"U1"}`,
		"not json at all",
		string(rawGood),
	}, "\n")

	var out bytes.Buffer
	res, err := validate.ValidateJSONLStream(context.Background(), validate.NewOrderValidator(), strings.NewReader(input), &out)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.ValidLinesCount != 2 || res.InvalidLinesCount != 2 {
		t.Fatalf("want 2 valid / 2 invalid, got %+v", res)
	}
	if got := strings.Count(out.String(), "\n"); got != 2 {
		t.Fatalf("want 2 output lines, got %d", got)
	}
}
