// Package main is the interactive play-data analyst CLI.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"github.com/espectros/analista-tritoes/pkg/analyst"
	configpkg "github.com/espectros/analista-tritoes/pkg/config"
	loggerpkg "github.com/espectros/analista-tritoes/pkg/logger"
)

const (
	envModel   = "ANALISTA_MODEL"
	envBaseURL = "ANALISTA_BASE_URL"
)

// main is the program entry point. Startup failures are reported and main returns.
func main() {
	_ = godotenv.Load()

	cfg, err := parseCLIConfig(flag.CommandLine, os.Args[1:], os.Getenv)
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "ERRO: %v\n", err)
		return
	}

	if err := run(cfg, os.Stdin, os.Stdout, os.Stderr); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "ERRO: %v\n", err)
	}
}

// run builds the session and hands it to the query loop.
func run(cfg configpkg.Config, in io.Reader, out, errOut io.Writer, opts ...analyst.Option) error {
	level := loggerpkg.LevelWarn
	if cfg.Verbose {
		level = loggerpkg.LevelDebug
	}
	appLogger := loggerpkg.NewWriterLogger(errOut, level)

	session, err := analyst.New(context.Background(), cfg, append([]analyst.Option{analyst.WithLogger(appLogger)}, opts...)...)
	if err != nil {
		loggerpkg.Error(appLogger, "startup failed", map[string]any{
			"sheet_path": cfg.SheetPath,
			"error":      err.Error(),
		})
		return err
	}
	_, _ = fmt.Fprintln(out, "✔ Planilha carregada com sucesso!")

	return runREPL(session, replOptions{
		Verbose: cfg.Verbose,
		Logger:  appLogger,
	}, in, out)
}

// parseCLIConfig loads env + flags into runtime config.
func parseCLIConfig(fs *flag.FlagSet, args []string, getenv func(string) string) (configpkg.Config, error) {
	defaults := configpkg.DefaultConfig()

	sheetPath := fs.String("planilha", defaults.SheetPath, "Spreadsheet (.xlsx or .csv) with the plays to analyse")
	verbose := fs.Bool("verbose", defaults.Verbose, "Verbose diagnostics on stderr")
	maxPromptBytes := fs.Int("max_prompt_bytes", defaults.MaxPromptBytes, "Reject questions whose prompt exceeds this many bytes (0 = no limit)")
	if err := fs.Parse(args); err != nil {
		return configpkg.Config{}, err
	}

	cfg := defaults
	cfg.SheetPath = strings.TrimSpace(*sheetPath)
	cfg.Verbose = *verbose
	cfg.MaxPromptBytes = *maxPromptBytes
	cfg.APIKey = strings.TrimSpace(getenv(analyst.CredentialEnv))
	if model := strings.TrimSpace(getenv(envModel)); model != "" {
		cfg.Model = model
	}
	if baseURL := strings.TrimSpace(getenv(envBaseURL)); baseURL != "" {
		cfg.BaseURL = baseURL
	}
	return configpkg.Normalize(cfg), nil
}
