package newrelic

import (
	"log"

	"github.com/newrelic/go-agent/v3/newrelic"

	"github.com/caravelo/fleettrack/internal/pkg/models"
)

// InitNewRelic initializes the New Relic application from configuration.
// Returns nil when the agent is disabled or misconfigured; the service runs
// without APM in that case.
func InitNewRelic(cfg models.NewRelicConfig) *newrelic.Application {
	if !cfg.Enabled || cfg.LicenseKey == "" {
		return nil
	}

	nrApp, err := newrelic.NewApplication(
		newrelic.ConfigAppName(cfg.AppName),
		newrelic.ConfigLicense(cfg.LicenseKey),
		newrelic.ConfigDistributedTracerEnabled(true),
		newrelic.ConfigAppLogForwardingEnabled(true),
	)
	if err != nil {
		// The logger is not set up yet at this point in startup.
		log.Printf("Warning: failed to initialize New Relic, continuing without it: %v", err)
		return nil
	}

	return nrApp
}
