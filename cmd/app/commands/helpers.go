// Package commands contains CLI command implementations for the application.
package commands

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/golang-migrate/migrate/v4"

	"github.com/memoriz2/greensupia-sub000/internal/app"
)

// IOTuple holds reader and writer for commands, allowing for testing.
type IOTuple struct {
	Reader io.Reader
	Writer io.Writer
}

// DefaultIO returns an IOTuple with os.Stdin and os.Stdout.
func DefaultIO() IOTuple {
	return IOTuple{
		Reader: os.Stdin,
		Writer: os.Stdout,
	}
}

// closeContainer closes all resources in the container and logs any errors.
func closeContainer(container *app.Container, logger *slog.Logger) {
	if err := container.Shutdown(context.Background()); err != nil {
		logger.Error("failed to shutdown container", slog.Any("error", err))
	}
}

// closeMigrate closes the migration instance and logs any errors.
func closeMigrate(migrate *migrate.Migrate, logger *slog.Logger) {
	sourceError, databaseError := migrate.Close()
	if sourceError != nil || databaseError != nil {
		logger.Error(
			"failed to close the migrate",
			slog.Any("source_error", sourceError),
			slog.Any("database_error", databaseError),
		)
	}
}

// readValue returns value when set, otherwise prompts on io and reads one line.
// The trailing newline is stripped; other whitespace is kept because secrets may contain it.
func readValue(stdio IOTuple, value, prompt string) (string, error) {
	if value != "" {
		return value, nil
	}

	_, _ = fmt.Fprintf(stdio.Writer, "%s: ", prompt)
	reader, ok := stdio.Reader.(*bufio.Reader)
	if !ok {
		reader = bufio.NewReader(stdio.Reader)
	}
	line, err := reader.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("failed to read %s: %w", strings.ToLower(prompt), err)
	}
	line = strings.TrimRight(line, "\r\n")
	if line == "" {
		return "", fmt.Errorf("%s is required", strings.ToLower(prompt))
	}
	return line, nil
}

// buffered wraps the reader once so consecutive readValue calls share its buffer.
func buffered(stdio IOTuple) IOTuple {
	if _, ok := stdio.Reader.(*bufio.Reader); !ok {
		stdio.Reader = bufio.NewReader(stdio.Reader)
	}
	return stdio
}

// writeResult prints result as indented JSON when format is "json", otherwise as
// "key: value" lines in the order given by keys.
func writeResult(writer io.Writer, format string, keys []string, result map[string]any) error {
	if format == "json" {
		jsonBytes, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		_, _ = fmt.Fprintln(writer, string(jsonBytes))
		return nil
	}

	for _, key := range keys {
		_, _ = fmt.Fprintf(writer, "%s: %v\n", key, result[key])
	}
	return nil
}

// validateFormat rejects output formats other than text and json.
func validateFormat(format string) error {
	switch format {
	case "text", "json":
		return nil
	default:
		return fmt.Errorf("invalid format: %s (valid options: text, json)", format)
	}
}
