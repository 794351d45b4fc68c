package probe

// Summary aggregates a batch of results into the numbers the original
// per-site data reduces to: counts, a health percentage, and timing extremes.
type Summary struct {
	TotalSites          int      `json:"total_sites"`
	HealthySites        int      `json:"healthy_sites"`
	UnhealthySites      int      `json:"unhealthy_sites"`
	HealthPercentage    float64  `json:"health_percentage"`
	AverageResponseTime float64  `json:"average_response_time"`
	SSLSitesChecked     int      `json:"ssl_sites_checked"`
	SSLValidSites       int      `json:"ssl_valid_sites"`
	SSLInvalidSites     int      `json:"ssl_invalid_sites"`
	SitesWithErrors     int      `json:"sites_with_errors"`
	FastestResponseTime *float64 `json:"fastest_response_time"`
	SlowestResponseTime *float64 `json:"slowest_response_time"`
}

// Summarize reduces results to a Summary in a single pass. It is pure and
// order-independent, performs no I/O, and cannot fail: an empty input
// produces the all-zero Summary with absent timing extremes.
func Summarize(results []Result) Summary {
	s := Summary{TotalSites: len(results)}

	var (
		timed   int
		sum     float64
		fastest float64
		slowest float64
	)
	for _, r := range results {
		if r.StatusHealthy {
			s.HealthySites++
		}
		if r.SSLChecked {
			s.SSLSitesChecked++
			if r.SSLValid != nil && *r.SSLValid {
				s.SSLValidSites++
			}
		}
		if r.Error != nil {
			s.SitesWithErrors++
		}
		if r.ResponseTime != nil {
			v := *r.ResponseTime
			sum += v
			if timed == 0 || v < fastest {
				fastest = v
			}
			if timed == 0 || v > slowest {
				slowest = v
			}
			timed++
		}
	}

	s.UnhealthySites = s.TotalSites - s.HealthySites
	s.SSLInvalidSites = s.SSLSitesChecked - s.SSLValidSites
	if s.TotalSites > 0 {
		s.HealthPercentage = float64(s.HealthySites) / float64(s.TotalSites) * 100
	}
	if timed > 0 {
		s.AverageResponseTime = sum / float64(timed)
		s.FastestResponseTime = &fastest
		s.SlowestResponseTime = &slowest
	}
	return s
}
