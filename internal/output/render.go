package output

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Srialok01/healthcheck/internal/probe"
)

var (
	colorHealthy   = lipgloss.Color("#00FF94") // Neon Green
	colorUnhealthy = lipgloss.Color("#FF0055") // Neon Red
	colorWarning   = lipgloss.Color("#FFD700") // Gold
	colorAccent    = lipgloss.Color("#04D9FF") // Neon Cyan
	colorMuted     = lipgloss.Color("#565f89") // Muted Blue

	urlStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorAccent)

	healthyStyle = lipgloss.NewStyle().
			Foreground(colorHealthy).
			Bold(true)

	unhealthyStyle = lipgloss.NewStyle().
			Foreground(colorUnhealthy).
			Bold(true)

	warningStyle = lipgloss.NewStyle().
			Foreground(colorWarning)

	labelStyle = lipgloss.NewStyle().
			Foreground(colorMuted)

	errorStyle = lipgloss.NewStyle().
			Foreground(colorUnhealthy)

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorAccent).
			MarginTop(1)
)

// RenderResults renders one block of formatted text per probed site.
func RenderResults(results []probe.Result) string {
	var b strings.Builder
	for _, r := range results {
		b.WriteString(renderResult(r))
		b.WriteString("\n")
	}
	return b.String()
}

func renderResult(r probe.Result) string {
	var b strings.Builder

	marker := healthyStyle.Render("●")
	if !r.StatusHealthy {
		marker = unhealthyStyle.Render("●")
	}
	b.WriteString(fmt.Sprintf("%s %s\n", marker, urlStyle.Render(r.URL)))

	b.WriteString(fmt.Sprintf("  %s %s\n", labelStyle.Render("Status:"), renderStatus(r)))

	if r.ResponseTime != nil {
		b.WriteString(fmt.Sprintf("  %s %s\n", labelStyle.Render("Response Time:"), renderLatency(*r.ResponseTime)))
	}

	if r.Redirected() {
		b.WriteString(fmt.Sprintf("  %s %s\n", labelStyle.Render("Redirected To:"), r.FinalURL))
	}

	if r.SSLChecked {
		b.WriteString(fmt.Sprintf("  %s %s\n", labelStyle.Render("SSL:"), renderSSL(r)))
	}

	if r.Error != nil {
		b.WriteString(fmt.Sprintf("  %s %s\n", labelStyle.Render("Error:"), errorStyle.Render(*r.Error)))
	}

	return b.String()
}

func renderStatus(r probe.Result) string {
	if r.StatusCode == nil {
		return unhealthyStyle.Render("no response")
	}
	if r.StatusHealthy {
		return healthyStyle.Render(fmt.Sprintf("%d (healthy)", *r.StatusCode))
	}
	return unhealthyStyle.Render(fmt.Sprintf("%d (unhealthy)", *r.StatusCode))
}

// renderLatency bands response times the same way the dashboard did: under a
// second is fine, under three is slow, anything more is a problem.
func renderLatency(seconds float64) string {
	text := fmt.Sprintf("%.3fs", seconds)
	switch {
	case seconds < 1:
		return healthyStyle.Render(text)
	case seconds < 3:
		return warningStyle.Render(text)
	default:
		return unhealthyStyle.Render(text)
	}
}

func renderSSL(r probe.Result) string {
	if r.SSLValid == nil || !*r.SSLValid {
		return unhealthyStyle.Render("certificate invalid")
	}

	text := "certificate valid"
	if r.SSLExpiry != nil {
		text += fmt.Sprintf(", expires %s", r.SSLExpiry.UTC().Format("2006-01-02"))
	}
	if r.SSLDaysUntilExpiry == nil {
		return healthyStyle.Render(text)
	}

	days := *r.SSLDaysUntilExpiry
	text += fmt.Sprintf(" (%d days)", days)
	switch {
	case days > 30:
		return healthyStyle.Render(text)
	case days > 7:
		return warningStyle.Render(text)
	default:
		return unhealthyStyle.Render(text)
	}
}

// RenderSummary renders the aggregate block printed after per-site results.
func RenderSummary(s probe.Summary) string {
	var b strings.Builder
	b.WriteString(headerStyle.Render("Summary"))
	b.WriteString("\n")

	health := fmt.Sprintf("%d/%d healthy (%.1f%%)", s.HealthySites, s.TotalSites, s.HealthPercentage)
	if s.UnhealthySites == 0 && s.TotalSites > 0 {
		b.WriteString(fmt.Sprintf("  %s %s\n", labelStyle.Render("Sites:"), healthyStyle.Render(health)))
	} else {
		b.WriteString(fmt.Sprintf("  %s %s\n", labelStyle.Render("Sites:"), unhealthyStyle.Render(health)))
	}

	if s.FastestResponseTime != nil && s.SlowestResponseTime != nil {
		b.WriteString(fmt.Sprintf("  %s avg %.3fs, fastest %.3fs, slowest %.3fs\n",
			labelStyle.Render("Response Times:"),
			s.AverageResponseTime, *s.FastestResponseTime, *s.SlowestResponseTime))
	}

	if s.SSLSitesChecked > 0 {
		b.WriteString(fmt.Sprintf("  %s %d/%d valid\n",
			labelStyle.Render("SSL:"), s.SSLValidSites, s.SSLSitesChecked))
	}

	if s.SitesWithErrors > 0 {
		b.WriteString(fmt.Sprintf("  %s %s\n",
			labelStyle.Render("Errors:"),
			errorStyle.Render(fmt.Sprintf("%d site(s) reported errors", s.SitesWithErrors))))
	}

	return b.String()
}
