package response_test

import (
	"encoding/json"
	"testing"
	"time"

	"preference-service/pkg/response"
)

func TestDateTimeMarshalJSON(t *testing.T) {
	tm := time.Date(2024, 5, 1, 15, 30, 0, 0, time.UTC)
	dt := response.DateTime(tm)

	b, err := json.Marshal(dt)
	if err != nil {
		t.Fatalf("unexpected error marshaling DateTime: %v", err)
	}

	if string(b) != `"2024-05-01 15:30:00"` {
		t.Errorf("unexpected DateTime JSON: %s", b)
	}
}

func TestDateTimeMarshalJSON_ConvertsToUTC(t *testing.T) {
	loc := time.FixedZone("UTC+7", 7*60*60)
	tm := time.Date(2024, 5, 1, 22, 0, 0, 0, loc)

	b, err := json.Marshal(response.DateTime(tm))
	if err != nil {
		t.Fatalf("unexpected error marshaling DateTime: %v", err)
	}

	if string(b) != `"2024-05-01 15:00:00"` {
		t.Errorf("expected UTC-normalised time, got %s", b)
	}
}
