package metrics

// Config holds settings for the Prometheus metrics endpoint.
type Config struct {
	// Address the /metrics HTTP server listens on, e.g. ":9090".
	Address string `yaml:"address" env:"METRICS_ADDRESS"`

	// ServiceName is attached as a constant "service" label to every metric.
	ServiceName string `yaml:"service_name" env:"METRICS_SERVICE_NAME"`

	// EnableDefaultCollectors registers the Go, process and build info
	// collectors in addition to the adapter metrics.
	EnableDefaultCollectors bool `yaml:"enable_default_collectors" env:"METRICS_ENABLE_DEFAULT_COLLECTORS"`
}

// DefaultConfig provides sensible defaults for most use cases.
func DefaultConfig() Config {
	return Config{
		Address:                 ":9090",
		ServiceName:             "retrieval",
		EnableDefaultCollectors: true,
	}
}
