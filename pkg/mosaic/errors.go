package mosaic

import (
	"fmt"
	"strings"
)

// ErrProjectionNotRegistered indicates a config references a projection id
// with no registered factory.
type ErrProjectionNotRegistered struct {
	ID         string
	Registered []string
}

func (e *ErrProjectionNotRegistered) Error() string {
	return fmt.Sprintf("projection %q is not registered (registered: %s)",
		e.ID, strings.Join(e.Registered, ", "))
}

// ErrUnsupportedVersion indicates a config file written for an incompatible
// format version.
type ErrUnsupportedVersion struct {
	Version   string
	Supported string
}

func (e *ErrUnsupportedVersion) Error() string {
	return fmt.Sprintf("unsupported config version %q (supported: %s)", e.Version, e.Supported)
}

// ErrInvalidConfig indicates a structurally invalid configuration: a missing
// or malformed required field. Territory is empty for top-level fields.
type ErrInvalidConfig struct {
	Field     string
	Territory string
	Reason    string
}

func (e *ErrInvalidConfig) Error() string {
	if e.Territory != "" {
		return fmt.Sprintf("invalid config: territory %q: field %q: %s", e.Territory, e.Field, e.Reason)
	}
	return fmt.Sprintf("invalid config: field %q: %s", e.Field, e.Reason)
}

// ErrMalformedJSON indicates the config payload is not valid JSON at all,
// as opposed to valid JSON failing schema validation (ErrInvalidConfig).
type ErrMalformedJSON struct {
	Err error
}

func (e *ErrMalformedJSON) Error() string {
	return fmt.Sprintf("malformed config JSON: %v", e.Err)
}

func (e *ErrMalformedJSON) Unwrap() error { return e.Err }

// ErrTerritoryConstruction indicates a territory's sub-projection could not
// be built.
type ErrTerritoryConstruction struct {
	Code string
	Err  error
}

func (e *ErrTerritoryConstruction) Error() string {
	return fmt.Sprintf("territory %q: building sub-projection: %v", e.Code, e.Err)
}

func (e *ErrTerritoryConstruction) Unwrap() error { return e.Err }

// ErrInvalidParameter indicates a parameter key or value that cannot be
// stored (unknown key, wrong shape). Family-relevance checks use
// ValidateParameter instead, which returns a Validation rather than an
// error.
type ErrInvalidParameter struct {
	Key    string
	Reason string
}

func (e *ErrInvalidParameter) Error() string {
	return fmt.Sprintf("invalid parameter %q: %s", e.Key, e.Reason)
}
