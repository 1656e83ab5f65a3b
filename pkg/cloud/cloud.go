package cloud

import (
	"context"
	"errors"
	"fmt"
	"net/http"
)

// Status is the tri-state health classification of a credential.
type Status string

const (
	StatusHealthy   Status = "healthy"
	StatusUnhealthy Status = "unhealthy"
	StatusLimited   Status = "limited"
)

// AccountInfo is the provider-agnostic view of an account-info payload.
type AccountInfo struct {
	Email          string
	Balance        float64
	PendingCharges float64
	AccountStatus  string
	Suspended      bool
}

// Instance is the provider-agnostic result of an instance creation.
// RootPasswordApplied reports whether the provider actually set the
// requested root password; providers that generate or mail their own
// leave it false so callers never hand out a password the machine
// doesn't have.
type Instance struct {
	ID                  string
	Name                string
	IPv4                string
	IPv6                string
	Status              string
	RootPasswordApplied bool
}

// CreateInstanceParams carries the resolved template parameters.
type CreateInstanceParams struct {
	Name         string
	Region       string
	Plan         string
	Image        string
	DiskGB       int
	EnableIPv6   bool
	UserData     string
	RootPassword string
}

// APIError is a provider REST error with the upstream status code preserved
// so the classifier can map it.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("provider API error (status %d): %s", e.StatusCode, e.Message)
}

// Provider is the per-variant capability: probe an account, create an
// instance, and classify a probe outcome into a Status.
type Provider interface {
	Name() string
	GetAccountInfo(ctx context.Context, apiKey string) (*AccountInfo, error)
	CreateInstance(ctx context.Context, apiKey string, params CreateInstanceParams) (*Instance, error)
	Classify(info *AccountInfo, err error) (Status, string)
}

var registry = map[string]Provider{}

// Register makes a provider selectable by its tag. Called from provider
// init functions and from tests installing fakes.
func Register(p Provider) {
	registry[p.Name()] = p
}

// Get resolves a provider by tag. Callers must treat a miss as unhealthy
// (fail closed), never as healthy.
func Get(name string) (Provider, bool) {
	p, ok := registry[name]
	return p, ok
}

// Names lists the registered provider tags.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	return names
}

// classifyError maps a probe error to a status. Authentication failures are
// unhealthy, authorization/quota failures are limited, everything else is
// unhealthy with the raw message retained.
func classifyError(err error) (Status, string) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		switch apiErr.StatusCode {
		case http.StatusUnauthorized:
			return StatusUnhealthy, "credential invalid or expired"
		case http.StatusForbidden, http.StatusTooManyRequests:
			return StatusLimited, apiErr.Message
		}
	}
	return StatusUnhealthy, err.Error()
}
