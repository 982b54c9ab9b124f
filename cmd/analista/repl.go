package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	loggerpkg "github.com/espectros/analista-tritoes/pkg/logger"
)

var separator = strings.Repeat("-", 60)

// exitKeywords end the session, compared case-insensitively.
var exitKeywords = map[string]bool{
	"sair": true,
	"exit": true,
	"quit": true,
}

// asker answers one question; *analyst.Session satisfies it.
type asker interface {
	Ask(question string) (string, error)
}

type replState int

const (
	stateAwaitingInput replState = iota
	stateTerminated
)

// replOptions configures REPL behavior.
type replOptions struct {
	Verbose bool
	Logger  loggerpkg.Logger
}

// runREPL asks questions read from in until an exit keyword or end of input.
// A failed question never ends the loop.
func runREPL(session asker, opts replOptions, in io.Reader, out io.Writer) error {
	if session == nil {
		return fmt.Errorf("session is required")
	}
	if in == nil {
		return fmt.Errorf("input reader is required")
	}
	if out == nil {
		out = io.Discard
	}

	loggerpkg.Debug(opts.Verbose, opts.Logger, "repl start", nil)

	reader := bufio.NewReader(in)
	printWelcome(out)

	var (
		state   = stateAwaitingInput
		readErr error
	)
	for state == stateAwaitingInput {
		state, readErr = step(session, opts, reader, out)
	}
	_, _ = fmt.Fprintln(out, "Encerrando o programa. Até mais!")

	if readErr != nil {
		return fmt.Errorf("read input: %w", readErr)
	}
	return nil
}

// step handles one line of input and returns the next state.
// Lines have no length limit.
func step(session asker, opts replOptions, reader *bufio.Reader, out io.Writer) (replState, error) {
	_, _ = fmt.Fprint(out, "> Sua pergunta: ")
	line, err := reader.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		_, _ = fmt.Fprintln(out)
		return stateTerminated, err
	}
	if err != nil && line == "" {
		_, _ = fmt.Fprintln(out)
		return stateTerminated, nil
	}

	question := trimLineEnding(line)
	if isExitKeyword(question) {
		return stateTerminated, nil
	}

	_, _ = fmt.Fprintln(out, "\nAnalisando os dados e gerando uma resposta...")
	answer, askErr := session.Ask(question)
	if askErr != nil {
		loggerpkg.Warn(opts.Logger, "query failed", map[string]any{
			"question_bytes": len(question),
			"error":          askErr.Error(),
		})
		_, _ = fmt.Fprintf(out, "Ocorreu um erro ao chamar a API de IA: %v\n", askErr)
		printSeparator(out)
		return stateAwaitingInput, nil
	}

	_, _ = fmt.Fprint(out, "\n--- Resposta do Analista de IA ---\n\n")
	_, _ = fmt.Fprintln(out, answer)
	printSeparator(out)
	return stateAwaitingInput, nil
}

func trimLineEnding(line string) string {
	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r")
}

func isExitKeyword(input string) bool {
	return exitKeywords[strings.ToLower(input)]
}

func printSeparator(out io.Writer) {
	_, _ = fmt.Fprintf(out, "\n%s\n\n", separator)
}

func printWelcome(out io.Writer) {
	_, _ = fmt.Fprintln(out)
	_, _ = fmt.Fprintln(out, "--- Analista de Dados pronto! Faça suas perguntas. Digite 'sair' para terminar. ---")
	_, _ = fmt.Fprintln(out)
}
