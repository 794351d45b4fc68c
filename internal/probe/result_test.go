package probe

import (
	"encoding/json"
	"testing"
	"time"
)

func TestHealthyStatusBounds(t *testing.T) {
	cases := []struct {
		code int
		want bool
	}{
		{199, false},
		{200, true},
		{301, true},
		{399, true},
		{400, false},
		{500, false},
	}
	for _, c := range cases {
		if got := healthyStatus(c.code); got != c.want {
			t.Errorf("healthyStatus(%d) = %v, want %v", c.code, got, c.want)
		}
	}
}

func TestResult_SetErrorMerges(t *testing.T) {
	var r Result
	r.setError("Connection Error: refused")
	r.setError("SSL Error: handshake failed")

	want := "Connection Error: refused; SSL Error: handshake failed"
	if r.Error == nil || *r.Error != want {
		t.Fatalf("want %q, got %+v", want, r.Error)
	}
}

func TestExpiryTime_JSONRoundTrip(t *testing.T) {
	want := ExpiryTime{time.Date(2026, 3, 1, 8, 30, 0, 0, time.UTC)}

	b, err := json.Marshal(want)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if got := string(b); got != `"2026-03-01 08:30:00 UTC"` {
		t.Fatalf("unexpected encoding: %s", got)
	}

	var got ExpiryTime
	if err := json.Unmarshal(b, &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !got.Equal(want.Time) {
		t.Fatalf("mismatch after round-trip: want=%v got=%v", want.Time, got.Time)
	}
}
