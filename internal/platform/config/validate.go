package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Tags reported by the struct-level rules below.
const (
	tagWhenEnabled = "required_when_enabled"
	tagForOTLP     = "required_for_otlp"
	tagStaticRoles = "required_in_static_mode"
	tagExporter    = "exporter"
)

var rules = newRules()

func newRules() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		return f.Tag.Get("koanf")
	})
	v.RegisterStructValidation(cacheRules, CacheConfig{})
	v.RegisterStructValidation(authzRules, AuthzConfig{})
	v.RegisterStructValidation(telemetryRules, TelemetryConfig{})
	return v
}

// Validate checks every setting and reports all failures at once, each
// named by its koanf key, for example "database.max_open_conns".
func (c *Config) Validate() error {
	err := rules.Struct(c)
	var fails validator.ValidationErrors
	if !errors.As(err, &fails) {
		return err
	}
	errs := make([]error, 0, len(fails))
	for _, fe := range fails {
		_, key, _ := strings.Cut(fe.Namespace(), ".")
		errs = append(errs, fmt.Errorf("%s %s, got %v", key, explain(fe), fe.Value()))
	}
	return errors.Join(errs...)
}

func explain(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "must not be empty"
	case "url":
		return "must be an absolute URL"
	case "oneof", tagExporter:
		return "must be one of: " + strings.ReplaceAll(fe.Param(), " ", ", ")
	case "min":
		return "must be >= " + fe.Param()
	case "max":
		return "must be <= " + fe.Param()
	case "gt":
		return "must be > " + fe.Param()
	case "ltefield":
		return "must not exceed max_open_conns"
	case tagWhenEnabled:
		return "must be set when the cache is enabled"
	case tagForOTLP:
		return "must not be empty when exporter is otlp"
	case tagStaticRoles:
		return "must not be empty in static mode"
	default:
		return "is invalid (" + fe.Tag() + ")"
	}
}

func cacheRules(sl validator.StructLevel) {
	c := sl.Current().Interface().(CacheConfig) //nolint:forcetypeassert // registered for CacheConfig
	if !c.Enabled {
		return
	}
	if c.URL == "" {
		sl.ReportError(c.URL, "url", "URL", tagWhenEnabled, "")
	}
	if c.TTL <= 0 {
		sl.ReportError(c.TTL, "ttl", "TTL", tagWhenEnabled, "")
	}
}

func authzRules(sl validator.StructLevel) {
	a := sl.Current().Interface().(AuthzConfig) //nolint:forcetypeassert // registered for AuthzConfig
	if a.Mode == "static" && len(a.ApproverRoles) == 0 {
		sl.ReportError(a.ApproverRoles, "approver_roles", "ApproverRoles", tagStaticRoles, "")
	}
}

func telemetryRules(sl validator.StructLevel) {
	t := sl.Current().Interface().(TelemetryConfig) //nolint:forcetypeassert // registered for TelemetryConfig
	if !t.Enabled {
		return
	}
	switch t.Exporter {
	case "stdout":
	case "otlp":
		if t.Endpoint == "" {
			sl.ReportError(t.Endpoint, "endpoint", "Endpoint", tagForOTLP, "")
		}
	default:
		sl.ReportError(t.Exporter, "exporter", "Exporter", tagExporter, "stdout otlp")
	}
}
