package config

import "context"

// ContextKey is an alias used for storing values in context
type ContextKey string

// ConfigCtxKey is the context key used to store the active *Config
const ConfigCtxKey ContextKey = "config"

// ContextWithConfig stores the configuration in the context
func ContextWithConfig(ctx context.Context, cfg *Config) context.Context {
	return context.WithValue(ctx, ConfigCtxKey, cfg)
}

// FromContext returns the configuration stored in ctx, or the defaults when none is attached.
func FromContext(ctx context.Context) *Config {
	if ctx != nil {
		if cfg, ok := ctx.Value(ConfigCtxKey).(*Config); ok && cfg != nil {
			return cfg
		}
	}
	return Default()
}

// ServiceCtxKey is the context key used to store the Service that produced the active *Config
const ServiceCtxKey ContextKey = "config_service"

// ContextWithService stores the configuration service in the context
func ContextWithService(ctx context.Context, svc Service) context.Context {
	return context.WithValue(ctx, ServiceCtxKey, svc)
}

// ServiceFromContext returns the service stored in ctx, or nil when none is attached.
func ServiceFromContext(ctx context.Context) Service {
	if ctx == nil {
		return nil
	}
	svc, _ := ctx.Value(ServiceCtxKey).(Service)
	return svc
}
