package app

import "github.com/prometheus/client_golang/prometheus"

// Version and Commit are set via ldflags at build time.
// Example: go build -ldflags "-X github.com/heartmarshall/homecheck-backend/internal/app.Version=1.0.0"
var (
	Version = "dev"
	Commit  = "unknown"
)

// buildInfo exposes the running build as a constant 1-valued gauge so
// dashboards can join on version.
func buildInfo() prometheus.Collector {
	g := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "homecheck",
		Name:      "build_info",
		Help:      "Build of the running binary.",
	}, []string{"version", "commit"})
	g.WithLabelValues(Version, Commit).Set(1)
	return g
}
