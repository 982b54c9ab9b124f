// Package analyst holds the question-answering session over a loaded play table.
package analyst

import (
	"context"
	"errors"
	"fmt"

	configpkg "github.com/espectros/analista-tritoes/pkg/config"
	"github.com/espectros/analista-tritoes/pkg/llm"
	loggerpkg "github.com/espectros/analista-tritoes/pkg/logger"
	"github.com/espectros/analista-tritoes/pkg/prompt"
	"github.com/espectros/analista-tritoes/pkg/sheet"
)

// CredentialEnv names the environment variable holding the API key.
const CredentialEnv = "CHAVE_API"

// StartupError is fatal: the session cannot be built and the loop must not start.
type StartupError struct {
	Reason string
	Err    error
}

func (e *StartupError) Error() string {
	if e.Err == nil {
		return e.Reason
	}
	return fmt.Sprintf("%s: %v", e.Reason, e.Err)
}

func (e *StartupError) Unwrap() error { return e.Err }

// ErrPromptTooLarge is wrapped in a QueryError when the size guard rejects a question.
var ErrPromptTooLarge = errors.New("prompt excede o limite configurado")

// Session is the immutable state behind the query loop.
type Session struct {
	config    configpkg.Config
	table     *sheet.Table
	generator llm.Generator

	ctx     context.Context
	logger  loggerpkg.Logger
	verbose bool
}

// New validates the credential, loads the spreadsheet and wires the generator,
// in that order. The spreadsheet is never touched when the credential is missing.
func New(ctx context.Context, cfg configpkg.Config, opts ...Option) (*Session, error) {
	cfg = configpkg.Normalize(cfg)
	deps := sessionDeps{logger: loggerpkg.NopLogger{}, loader: sheet.Load}
	for _, opt := range opts {
		if opt != nil {
			opt(&deps)
		}
	}

	loggerpkg.Debug(cfg.Verbose, deps.logger, "session init", map[string]any{
		"sheet_path":       cfg.SheetPath,
		"model":            cfg.Model,
		"base_url":         cfg.BaseURL,
		"max_prompt_bytes": cfg.MaxPromptBytes,
	})
	if cfg.APIKey == "" {
		return nil, &StartupError{
			Reason: fmt.Sprintf("a variável de ambiente %s não foi encontrada. Verifique seu arquivo .env", CredentialEnv),
		}
	}
	if ctx == nil {
		ctx = context.Background()
	}

	table, err := deps.loader(cfg.SheetPath)
	if err != nil {
		return nil, &StartupError{Reason: "não foi possível carregar a planilha", Err: err}
	}
	loggerpkg.Info(deps.logger, "planilha carregada", map[string]any{
		"path":    cfg.SheetPath,
		"rows":    table.Len(),
		"columns": table.Columns,
	})

	generator := deps.generator
	if generator == nil {
		generator = llm.NewOpenAI(cfg.BaseURL, cfg.APIKey, cfg.Model)
	}

	return &Session{
		config:    cfg,
		table:     table,
		generator: generator,

		ctx:     ctx,
		logger:  deps.logger,
		verbose: cfg.Verbose,
	}, nil
}

// Table returns the loaded spreadsheet. Callers must not modify it.
func (s *Session) Table() *sheet.Table {
	return s.table
}

// Ask builds a fresh prompt for question and performs exactly one remote call.
// Failures are returned as *llm.QueryError.
func (s *Session) Ask(question string) (string, error) {
	built := prompt.Build(s.table, question)
	loggerpkg.Debug(s.verbose, s.logger, "prompt built", map[string]any{
		"bytes": len(built),
	})
	if limit := s.config.MaxPromptBytes; limit > 0 && len(built) > limit {
		return "", &llm.QueryError{
			Err: fmt.Errorf("%w: %d > %d bytes", ErrPromptTooLarge, len(built), limit),
		}
	}

	answer, err := s.generator.Generate(s.ctx, built)
	if err != nil {
		loggerpkg.Debug(s.verbose, s.logger, "generation failed", map[string]any{
			"error": err.Error(),
		})
		return "", &llm.QueryError{Err: err}
	}
	return answer, nil
}
