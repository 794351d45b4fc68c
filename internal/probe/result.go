package probe

import (
	"fmt"
	"strconv"
	"time"
)

// expiryLayout matches the certificate expiry format emitted in reports,
// e.g. "2026-03-01 08:30:00 UTC".
const expiryLayout = "2006-01-02 15:04:05 UTC"

// ExpiryTime is a time.Time that serializes in the expiryLayout form.
type ExpiryTime struct {
	time.Time
}

func (t ExpiryTime) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(t.UTC().Format(expiryLayout))), nil
}

func (t *ExpiryTime) UnmarshalJSON(data []byte) error {
	s, err := strconv.Unquote(string(data))
	if err != nil {
		return fmt.Errorf("invalid expiry timestamp: %w", err)
	}
	parsed, err := time.Parse(expiryLayout, s)
	if err != nil {
		return fmt.Errorf("invalid expiry timestamp: %w", err)
	}
	t.Time = parsed.UTC()
	return nil
}

// Result is the outcome of a single health probe. It is built once by
// Prober.Check and never mutated afterwards. Optional fields are pointers so
// they serialize as null when the probe could not produce them.
type Result struct {
	URL                string      `json:"url"`
	Timestamp          time.Time   `json:"timestamp"`
	StatusCode         *int        `json:"status_code"`
	StatusHealthy      bool        `json:"status_healthy"`
	ResponseTime       *float64    `json:"response_time"`
	FinalURL           string      `json:"final_url"`
	SSLChecked         bool        `json:"ssl_checked"`
	SSLValid           *bool       `json:"ssl_valid"`
	SSLExpiry          *ExpiryTime `json:"ssl_expiry"`
	SSLDaysUntilExpiry *int        `json:"ssl_days_until_expiry"`
	Error              *string     `json:"error"`
}

// Redirected reports whether the probe ended up at a different URL than it
// was given.
func (r Result) Redirected() bool {
	return r.FinalURL != r.URL
}

// healthyStatus is this tool's definition of a healthy response: any 2xx or
// 3xx status counts, since a redirect still means the site is serving.
func healthyStatus(code int) bool {
	return code >= 200 && code < 400
}

// setError records msg on the result, appending to any failure already
// recorded so both the transport and certificate stories survive.
func (r *Result) setError(msg string) {
	if r.Error != nil {
		msg = *r.Error + "; " + msg
	}
	r.Error = &msg
}
