package pretty

import (
	"fmt"
)

// CheckStats describes the outcome of checking one buffer.
type CheckStats struct {
	Path      string
	Bytes     int
	Tokens    int
	Nodes     int
	Anomalies int
	Lossless  bool
}

// FormatCheckSummary formats check results as a single line.
// Example: "README.md: lossless, 42 tokens, 9 nodes, 2 anomalies".
func (s *Styles) FormatCheckSummary(stats CheckStats) string {
	status := s.Success.Render("lossless")
	if !stats.Lossless {
		status = s.Failure.Render("NOT lossless")
	}

	anomalies := s.Success.Render("no anomalies")
	if stats.Anomalies > 0 {
		anomalies = s.Failure.Render(fmt.Sprintf("%d %s", stats.Anomalies, plural(stats.Anomalies, "anomaly", "anomalies")))
	}

	return fmt.Sprintf("%s: %s, %s, %s, %s\n",
		s.FilePath.Render(stats.Path),
		status,
		s.Dim.Render(fmt.Sprintf("%d %s", stats.Tokens, plural(stats.Tokens, "token", "tokens"))),
		s.Dim.Render(fmt.Sprintf("%d %s", stats.Nodes, plural(stats.Nodes, "node", "nodes"))),
		anomalies,
	)
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
