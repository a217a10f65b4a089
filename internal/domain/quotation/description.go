package quotation

import "strings"

type DescriptionInput struct {
	ProjectDescription  string
	CurrentPermits      []string
	MonitoringFrequency string
	Notes               string
}

// BuildDescription derives the stored description. Monitoring requests are
// summarized from their form fields; permit acquisition keeps the project text.
func BuildDescription(serviceType ServiceType, in DescriptionInput) string {
	if serviceType != ServiceMonitoring {
		return strings.TrimSpace(in.ProjectDescription)
	}

	var lines []string
	var permits []string
	for _, p := range in.CurrentPermits {
		if p = strings.TrimSpace(p); p != "" {
			permits = append(permits, p)
		}
	}
	if len(permits) > 0 {
		lines = append(lines, "Current permits: "+strings.Join(permits, ", "))
	}
	if f := strings.TrimSpace(in.MonitoringFrequency); f != "" {
		lines = append(lines, "Monitoring frequency: "+f)
	}
	if n := strings.TrimSpace(in.Notes); n != "" {
		lines = append(lines, "Additional notes: "+n)
	}
	return strings.Join(lines, "\n")
}
