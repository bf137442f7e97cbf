package monitoring

import (
	"fmt"
	"time"

	"github.com/newrelic/go-agent/v3/newrelic"
)

// Config holds New Relic configuration.
type Config struct {
	LicenseKey string
	AppName    string
	Enabled    bool
}

// App wraps the New Relic application. A disabled App is a valid
// value whose methods are all no-ops.
type App struct {
	*newrelic.Application
	enabled bool
}

// New creates a New Relic application. Returns a disabled App when
// monitoring is off or no license key is configured.
func New(cfg Config) (*App, error) {
	if !cfg.Enabled || cfg.LicenseKey == "" {
		return &App{nil, false}, nil
	}

	app, err := newrelic.NewApplication(
		newrelic.ConfigAppName(cfg.AppName),
		newrelic.ConfigLicense(cfg.LicenseKey),
		newrelic.ConfigAppLogForwardingEnabled(true),
		newrelic.ConfigDistributedTracerEnabled(true),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create New Relic application: %w", err)
	}

	return &App{app, true}, nil
}

// IsEnabled returns whether New Relic is enabled.
func (a *App) IsEnabled() bool {
	return a.enabled
}

// Shutdown flushes pending data and shuts down the agent.
func (a *App) Shutdown(timeout time.Duration) {
	if !a.enabled || a.Application == nil {
		return
	}
	a.Application.Shutdown(timeout)
}

// RecordCustomEvent records a custom event.
func (a *App) RecordCustomEvent(eventType string, params map[string]interface{}) {
	if !a.enabled || a.Application == nil {
		return
	}
	a.Application.RecordCustomEvent(eventType, params)
}

// Domain event helpers

// RecordUserRegistered records a user registration.
func (a *App) RecordUserRegistered(role string) {
	a.RecordCustomEvent("UserRegistered", map[string]interface{}{
		"role":      role,
		"timestamp": time.Now().Unix(),
	})
}

// RecordRideRequested records a new ride request.
func (a *App) RecordRideRequested(rideID string) {
	a.RecordCustomEvent("RideRequested", map[string]interface{}{
		"ride_id":   rideID,
		"timestamp": time.Now().Unix(),
	})
}

// RecordRideAccepted records a driver claiming a ride.
func (a *App) RecordRideAccepted(rideID, driverID string) {
	a.RecordCustomEvent("RideAccepted", map[string]interface{}{
		"ride_id":   rideID,
		"driver_id": driverID,
		"timestamp": time.Now().Unix(),
	})
}

// RecordRideCompleted records a ride completion.
func (a *App) RecordRideCompleted(rideID string) {
	a.RecordCustomEvent("RideCompleted", map[string]interface{}{
		"ride_id":   rideID,
		"timestamp": time.Now().Unix(),
	})
}
