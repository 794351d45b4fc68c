package output

import (
	"strings"
	"testing"

	"github.com/Srialok01/healthcheck/internal/probe"
)

func intp(v int) *int           { return &v }
func floatp(v float64) *float64 { return &v }
func strp(v string) *string     { return &v }
func boolp(v bool) *bool        { return &v }

func TestRenderResults(t *testing.T) {
	results := []probe.Result{
		{
			URL:           "https://up.example.com",
			FinalURL:      "https://up.example.com",
			StatusCode:    intp(200),
			StatusHealthy: true,
			ResponseTime:  floatp(0.123),
			SSLChecked:    true,
			SSLValid:      boolp(true),
			SSLDaysUntilExpiry: intp(90),
		},
		{
			URL:      "http://down.example.com",
			FinalURL: "http://down.example.com",
			Error:    strp("Connection Error: refused"),
		},
	}

	out := RenderResults(results)

	for _, want := range []string{
		"https://up.example.com",
		"200 (healthy)",
		"0.123s",
		"certificate valid",
		"http://down.example.com",
		"no response",
		"Connection Error: refused",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("want %q in output, got:\n%s", want, out)
		}
	}
}

func TestRenderResults_Redirect(t *testing.T) {
	results := []probe.Result{{
		URL:           "http://old.example.com",
		FinalURL:      "https://new.example.com",
		StatusCode:    intp(200),
		StatusHealthy: true,
	}}

	out := RenderResults(results)
	if !strings.Contains(out, "Redirected To:") || !strings.Contains(out, "https://new.example.com") {
		t.Errorf("want redirect note in output, got:\n%s", out)
	}
}

func TestRenderSummary(t *testing.T) {
	results := []probe.Result{
		{StatusHealthy: true, ResponseTime: floatp(0.1)},
		{StatusHealthy: true, ResponseTime: floatp(0.3)},
		{StatusHealthy: false, Error: strp("Timeout Error: request took longer than 1s")},
	}

	out := RenderSummary(probe.Summarize(results))

	for _, want := range []string{
		"Summary",
		"2/3 healthy (66.7%)",
		"fastest 0.100s",
		"slowest 0.300s",
		"1 site(s) reported errors",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("want %q in summary, got:\n%s", want, out)
		}
	}
}
