// SPDX-License-Identifier: MIT

// qmaps builds a reference qubit channel, optionally tensors several copies
// of it, converts the result to the requested representation and prints it.
//
//	qmaps --channel depolarizing --param 0.3 --to choi
//	qmaps --channel amplitude-damping --param 0.1 --to kraus --copies 2
//
// Settings (tidy-up policy, CP check, log level) come from an optional YAML
// file given by --config or $QMAPS_CONFIG. A .env file in the working
// directory is loaded first.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/pflag"

	"github.com/katalvlaran/qmaps/compose"
	"github.com/katalvlaran/qmaps/qobj"
	"github.com/katalvlaran/qmaps/superop"
)

var errUsage = errors.New("qmaps: usage")

func main() {
	_ = godotenv.Load()

	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// run parses args, builds the channel and writes the converted map to stdout.
func run(args []string, stdout, stderr io.Writer) error {
	var (
		channel    string
		param      float64
		target     string
		copies     int
		configPath string
		logLevel   string
	)
	flagSet := pflag.NewFlagSet("qmaps", pflag.ContinueOnError)
	flagSet.SetOutput(stderr)
	flagSet.StringVar(&channel, "channel", "depolarizing", "channel: identity, depolarizing, amplitude-damping, hadamard, sigmax")
	flagSet.Float64Var(&param, "param", 0.3, "channel parameter (depolarizing pe, damping gamma)")
	flagSet.StringVar(&target, "to", "super", "target representation: super, choi, kraus")
	flagSet.IntVar(&copies, "copies", 1, "tensor this many copies of the channel before converting")
	flagSet.StringVar(&configPath, "config", "", "YAML settings file (default $QMAPS_CONFIG)")
	flagSet.StringVar(&logLevel, "log-level", "", "override the settings log level")

	if err := flagSet.Parse(args); err != nil {
		return err
	}
	if rest := flagSet.Args(); len(rest) > 0 {
		return fmt.Errorf("unexpected argument %q: %w", rest[0], errUsage)
	}
	if copies < 1 {
		return fmt.Errorf("--copies %d: %w", copies, errUsage)
	}

	settings, err := LoadSettings(configPath)
	if err != nil {
		return err
	}
	if flagSet.Changed("log-level") {
		settings.LogLevel = logLevel
		if err := settings.Validate(); err != nil {
			return err
		}
	}
	settings.Apply()

	log := newLogger(stderr, settings.LogLevel)
	log.Debug().
		Str("channel", channel).
		Float64("param", param).
		Int("copies", copies).
		Str("to", target).
		Msg("starting")

	convOpts := settings.ConversionOptions(log)
	m, err := buildChannel(channel, param, convOpts)
	if err != nil {
		return err
	}
	if copies > 1 {
		composer := compose.New(superop.NewPromoter(convOpts...),
			compose.WithLogger(log), compose.WithAutoTidyup(settings.Tidyup))
		ops := make([]*qobj.Qobj, copies)
		for i := range ops {
			ops[i] = m
		}
		if m, err = composer.Composite(ops...); err != nil {
			return err
		}
	}

	return convert(stdout, m, target, convOpts)
}

// newLogger writes human-readable events to w at the given level.
func newLogger(w io.Writer, level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}

	return zerolog.New(zerolog.ConsoleWriter{Out: w, TimeFormat: "15:04:05"}).
		Level(lvl).
		With().
		Timestamp().
		Logger()
}

// buildChannel returns the named reference channel. Unitary channels are
// returned as plain operators; the conversion layer promotes them.
func buildChannel(name string, param float64, opts []superop.Option) (*qobj.Qobj, error) {
	switch name {
	case "identity":
		return qobj.Identity(2)
	case "hadamard":
		return qobj.Hadamard(), nil
	case "sigmax":
		return qobj.SigmaX(), nil
	case "depolarizing":
		return superop.DepolarizingSuper(param)
	case "amplitude-damping":
		k, err := superop.AmplitudeDamping(param)
		if err != nil {
			return nil, err
		}
		return superop.KrausToSuper(k, opts...)
	default:
		return nil, fmt.Errorf("unknown channel %q: %w", name, errUsage)
	}
}

// convert writes m in the target representation.
func convert(w io.Writer, m *qobj.Qobj, target string, opts []superop.Option) error {
	switch target {
	case "super":
		s, err := superop.ToSuper(m, opts...)
		if err != nil {
			return err
		}
		fmt.Fprintln(w, s)
	case "choi":
		c, err := superop.ToChoi(m, opts...)
		if err != nil {
			return err
		}
		fmt.Fprintln(w, c)
	case "kraus":
		k, err := superop.ToKraus(m, opts...)
		if err != nil {
			return err
		}
		for i, a := range k.Operators() {
			fmt.Fprintf(w, "K%d:\n%v\n", i, a)
		}
	default:
		return fmt.Errorf("unknown representation %q: %w", target, errUsage)
	}

	return nil
}
