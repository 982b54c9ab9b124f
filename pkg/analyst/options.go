package analyst

import (
	"github.com/espectros/analista-tritoes/pkg/llm"
	loggerpkg "github.com/espectros/analista-tritoes/pkg/logger"
	"github.com/espectros/analista-tritoes/pkg/sheet"
)

// LoaderFunc reads the spreadsheet at path.
type LoaderFunc func(path string) (*sheet.Table, error)

// Option configures optional runtime dependencies for Session.
type Option func(*sessionDeps)

type sessionDeps struct {
	logger    loggerpkg.Logger
	loader    LoaderFunc
	generator llm.Generator
}

// WithLogger injects a logger dependency.
func WithLogger(l loggerpkg.Logger) Option {
	return func(d *sessionDeps) {
		d.logger = l
	}
}

// WithLoader replaces sheet.Load.
func WithLoader(load LoaderFunc) Option {
	return func(d *sessionDeps) {
		d.loader = load
	}
}

// WithGenerator replaces the OpenAI-compatible client.
func WithGenerator(g llm.Generator) Option {
	return func(d *sessionDeps) {
		d.generator = g
	}
}
