// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/MKhiriev/go-secure-id/internal/app"
	"github.com/MKhiriev/go-secure-id/internal/logger"
	"github.com/MKhiriev/go-secure-id/internal/service"
	"github.com/MKhiriev/go-secure-id/models"
)

// Environment variables consulted for passwords before stdin.
const (
	EnvPassword    = "SECUREID_PASSWORD"
	EnvNewPassword = "SECUREID_NEW_PASSWORD"
)

// ServicesFactory opens the vault services. The returned close function
// releases the underlying storage.
type ServicesFactory func(ctx context.Context) (*service.Services, func() error, error)

// App is the secureid command runtime.
type App struct {
	open      ServicesFactory
	buildInfo models.AppBuildInfo

	stdin  *bufio.Reader
	stdout io.Writer
	getenv func(string) string

	logger *logger.Logger
}

// Option customises an [App].
type Option func(*App)

// WithIO replaces stdin and stdout.
func WithIO(in io.Reader, out io.Writer) Option {
	return func(a *App) {
		a.stdin = bufio.NewReader(in)
		a.stdout = out
	}
}

// WithGetenv replaces the environment lookup.
func WithGetenv(fn func(string) string) Option {
	return func(a *App) {
		a.getenv = fn
	}
}

// NewApp returns an App that opens services through open on the first
// command that needs them.
func NewApp(open ServicesFactory, buildInfo models.AppBuildInfo, logger *logger.Logger, opts ...Option) (*App, error) {
	if open == nil {
		return nil, errors.New("services factory is nil")
	}

	a := &App{
		open:      open,
		buildInfo: buildInfo,
		stdin:     bufio.NewReader(os.Stdin),
		stdout:    os.Stdout,
		getenv:    os.Getenv,
		logger:    logger,
	}
	for _, opt := range opts {
		opt(a)
	}

	return a, nil
}

// Run executes one command. args[0] is the command name.
func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		a.printUsage()
		return ErrUsage
	}

	name, args := args[0], args[1:]
	if name == "help" {
		a.printUsage()
		return nil
	}

	cmd, ok := commands[name]
	if !ok {
		a.printUsage()
		return fmt.Errorf("%w: %s", ErrUnknownCommand, name)
	}
	if len(args) < cmd.minArgs {
		fmt.Fprintf(a.stdout, "usage: secureid %s %s\n", name, cmd.usage)
		return fmt.Errorf("%w: %s %s", ErrUsage, name, cmd.usage)
	}

	ctx = a.logger.WithContext(ctx)
	log := logger.FromContext(ctx)

	if !cmd.needsVault {
		return cmd.run(ctx, a, nil, args)
	}

	services, closeFn, err := a.open(ctx)
	if err != nil {
		return fmt.Errorf("error opening vault: %w", err)
	}
	defer func() {
		if cerr := closeFn(); cerr != nil {
			log.Err(cerr).Str("func", "App.Run").Msg("failed to close storage")
		}
	}()

	log.Debug().Str("command", name).Msg("running command")

	return cmd.run(ctx, a, services, args)
}

// Message renders err for the terminal.
func (a *App) Message(err error) string {
	switch {
	case errors.Is(err, ErrUsage), errors.Is(err, ErrUnknownCommand), errors.Is(err, ErrNoPassword):
		return err.Error()
	default:
		return app.Message(err)
	}
}

// password reads the value of env, falling back to the next stdin line.
func (a *App) password(env string) (string, error) {
	if p := a.getenv(env); p != "" {
		return p, nil
	}

	line, err := a.stdin.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("error reading password: %w", err)
	}
	line = strings.TrimRight(line, "\r\n")
	if line == "" {
		return "", fmt.Errorf("%w: set %s or pipe it on stdin", ErrNoPassword, env)
	}

	return line, nil
}

func (a *App) printUsage() {
	fmt.Fprintln(a.stdout, "usage: secureid [flags] <command> [args]")
	fmt.Fprintln(a.stdout, "commands:")
	for _, name := range commandOrder {
		fmt.Fprintf(a.stdout, "  %-8s %s\n", name, commands[name].usage)
	}
}
