package report

import (
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config holds the reporting setup shared by every wrapper built with it.
type Config struct {
	// Output receives diagnostics when Reporter is not set. Default: the
	// process's standard output, looked up on every write.
	Output io.Writer
	// Reporter prints diagnostics at warn level. Default: NewReporter(Output).
	Reporter *zap.Logger
}

// Option customizes a Config.
type Option func(*Config)

// WithOutput redirects diagnostics to w.
func WithOutput(w io.Writer) Option {
	return func(c *Config) {
		c.Output = w
	}
}

// WithReporter replaces the diagnostic printer.
func WithReporter(logger *zap.Logger) Option {
	return func(c *Config) {
		c.Reporter = logger
	}
}

// NewConfig applies opts and fills in the defaults.
func NewConfig(opts ...Option) Config {
	var c Config
	for _, opt := range opts {
		opt(&c)
	}
	if c.Output == nil {
		c.Output = stdout{}
	}
	if c.Reporter == nil {
		c.Reporter = NewReporter(c.Output)
	}
	return c
}

// NewReporter builds a logger that writes each entry's bare message as one
// line to w: no timestamp, level, caller or fields.
func NewReporter(w io.Writer) *zap.Logger {
	encoderConfig := zapcore.EncoderConfig{
		MessageKey: "msg",
		LineEnding: zapcore.DefaultLineEnding,
	}
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderConfig),
		zapcore.Lock(zapcore.AddSync(w)),
		zap.WarnLevel,
	)
	return zap.New(core)
}

// stdout writes to whatever os.Stdout is at the time of the write.
type stdout struct{}

func (stdout) Write(p []byte) (int, error) {
	return os.Stdout.Write(p)
}

func (stdout) Sync() error {
	return os.Stdout.Sync()
}

func (c Config) report(category string, entityID any, err error) {
	c.Reporter.Warn(Message(category, entityID, err))
}
