package config

// LogFormat selects how cmd/prominence emits its log lines.
type LogFormat string

const (
	LogFormatText LogFormat = "text"
	LogFormatJSON LogFormat = "json"
)

// InputFormat selects how cmd/prominence decodes its input file.
type InputFormat string

const (
	InputFormatAuto InputFormat = "auto"
	InputFormatBin  InputFormat = "bin"
	InputFormatCSV  InputFormat = "csv"
)

// Config configures a single run of the prominence CLI.
//
// Fields:
//
//	Input         string      — path to the DEM file, "-" for stdin.
//	Format        InputFormat — InputFormatAuto, InputFormatBin, InputFormatCSV.
//	K             int         — number of top results to report.
//	MinProminence int32       — drop results below this threshold before reporting.
//	LogLevel      string      — one of "debug", "info", "warn", "error".
//	LogFormat     LogFormat   — LogFormatText or LogFormatJSON.
type Config struct {
	Input         string
	Format        InputFormat
	K             int
	MinProminence int32
	LogLevel      string
	LogFormat     LogFormat
}

// Option configures a Config. All Option functions should modify the
// pointed Config.
type Option func(*Config)

// WithInput returns an Option that sets the input file path.
func WithInput(path string) Option {
	return func(c *Config) {
		c.Input = path
	}
}

// WithFormat returns an Option that sets the input decoding format.
func WithFormat(f InputFormat) Option {
	return func(c *Config) {
		c.Format = f
	}
}

// WithK returns an Option that sets the number of top results to report.
func WithK(k int) Option {
	return func(c *Config) {
		c.K = k
	}
}

// WithMinProminence returns an Option that sets the minimum prominence
// threshold applied before top-K selection.
func WithMinProminence(min int32) Option {
	return func(c *Config) {
		c.MinProminence = min
	}
}

// WithLogLevel returns an Option that sets the log level.
func WithLogLevel(level string) Option {
	return func(c *Config) {
		c.LogLevel = level
	}
}

// WithLogFormat returns an Option that sets the log line format.
func WithLogFormat(f LogFormat) Option {
	return func(c *Config) {
		c.LogFormat = f
	}
}

// DefaultConfig returns a Config initialized to:
//
//	– Format        = InputFormatAuto
//	– K              = 100
//	– MinProminence  = 0 (no filtering)
//	– LogLevel       = "info"
//	– LogFormat      = LogFormatText
//
// Complexity: O(1) to construct.
func DefaultConfig() Config {
	return Config{
		Format:        InputFormatAuto,
		K:             100,
		MinProminence: 0,
		LogLevel:      "info",
		LogFormat:     LogFormatText,
	}
}

// New builds a Config from DefaultConfig with the given Options applied in
// order.
func New(opts ...Option) Config {
	c := DefaultConfig()
	for _, opt := range opts {
		opt(&c)
	}
	return c
}
