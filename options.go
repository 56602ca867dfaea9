package toggler

import "github.com/rs/zerolog"

// Option configures a Toggler.
type Option func(*config)

type config struct {
	log             zerolog.Logger
	skipFrontMatter bool
}

func defaultConfig() config {
	return config{log: zerolog.Nop()}
}

// WithLogger sets the sink for command diagnostics such as no-op notices.
func WithLogger(log zerolog.Logger) Option {
	return func(cfg *config) {
		cfg.log = log
	}
}

// WithSkipFrontMatter treats links inside a leading front-matter block as absent.
func WithSkipFrontMatter(enabled bool) Option {
	return func(cfg *config) {
		cfg.skipFrontMatter = enabled
	}
}
