package logger

// Level controls the minimum severity emitted by the logger.
type Level int

const (
	Debug Level = iota
	Info
	Warning
	Error
)

// Config holds the logger settings.
type Config struct {
	// Level is the minimum severity emitted.
	Level Level `yaml:"level" env:"LOG_LEVEL"`

	// ServiceName is attached as a default field to every log entry.
	ServiceName string `yaml:"service_name" env:"LOG_SERVICE_NAME"`
}
