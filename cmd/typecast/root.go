package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/zero-day-ai/typecast"
	"github.com/zero-day-ai/typecast/config"
	"github.com/zero-day-ai/typecast/temporal"
)

// version is set at build time via ldflags.
var version = "dev"

// errNotCoercible reports a value that came back unchanged.
var errNotCoercible = errors.New("value is not coercible")

type rootFlags struct {
	configFile string
	location   string
	logLevel   string
}

func run(args []string) int {
	root := newRootCommand(os.Stdin, os.Stdout, os.Stderr)
	root.SetArgs(args)
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "typecast:", err)
		return exitCodeForError(err)
	}
	return 0
}

func newRootCommand(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	flags := &rootFlags{}
	cmd := &cobra.Command{
		Use:           "typecast <instant|date|datetime> [value]",
		Short:         "Coerce a value into a canonical temporal value",
		Version:       version,
		Args:          cobra.RangeArgs(1, 2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := temporal.ParseKind(args[0])
			if err != nil {
				return err
			}

			coercer, err := newCoercer(flags, cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			var raw string
			if len(args) == 2 {
				raw = args[1]
			} else {
				data, err := io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return fmt.Errorf("read stdin: %w", err)
				}
				raw = strings.TrimSpace(string(data))
			}

			value, err := decodeValue(raw)
			if err != nil {
				return err
			}

			out, err := coercer.CoerceContext(cmd.Context(), value, kind)
			if err != nil {
				return err
			}
			if !isCanonical(out) {
				return fmt.Errorf("%w as %s: %s", errNotCoercible, kind, raw)
			}

			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}
	cmd.SetIn(stdin)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	cmd.PersistentFlags().StringVar(&flags.configFile, "config", "", "Config file path")
	cmd.PersistentFlags().StringVar(&flags.location, "location", "", "Time zone for local time (overrides config)")
	cmd.PersistentFlags().StringVar(&flags.logLevel, "log-level", "", "Log level (overrides config)")
	return cmd
}

func newCoercer(flags *rootFlags, logOut io.Writer) (*typecast.Coercer, error) {
	cfg := config.Default()
	if flags.configFile != "" {
		loaded, err := config.Load(flags.configFile)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}
	if flags.location != "" {
		cfg.Location = flags.location
	}
	if flags.logLevel != "" {
		cfg.LogLevel = flags.logLevel
	}

	level, err := cfg.SlogLevel()
	if err != nil {
		return nil, err
	}
	logger := slog.New(slog.NewTextHandler(logOut, &slog.HandlerOptions{Level: level}))

	return typecast.New(
		typecast.WithConfig(cfg),
		typecast.WithLogger(logger),
	)
}

// decodeValue turns a JSON object into a segment mapping and leaves any other
// text as is. Numbers are kept as json.Number.
func decodeValue(raw string) (any, error) {
	if !strings.HasPrefix(raw, "{") {
		return raw, nil
	}

	dec := json.NewDecoder(bytes.NewReader([]byte(raw)))
	dec.UseNumber()
	var m map[string]any
	if err := dec.Decode(&m); err != nil {
		return nil, fmt.Errorf("decode mapping: %w", err)
	}
	return m, nil
}

func isCanonical(v any) bool {
	switch v.(type) {
	case temporal.Instant, temporal.Date, temporal.DateTime:
		return true
	default:
		return false
	}
}

func exitCodeForError(err error) int {
	if errors.Is(err, errNotCoercible) {
		return 2
	}
	return 1
}
