// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/MKhiriev/go-secure-id/internal/crypto"
	"github.com/MKhiriev/go-secure-id/internal/service"
	"github.com/MKhiriev/go-secure-id/models"
)

type command struct {
	usage      string
	minArgs    int
	needsVault bool
	run        func(ctx context.Context, a *App, s *service.Services, args []string) error
}

var commandOrder = []string{"init", "passwd", "put", "attach", "get", "list", "delete", "status", "version"}

var commands = map[string]command{
	"init":    {usage: "", needsVault: true, run: runInit},
	"passwd":  {usage: "", needsVault: true, run: runPasswd},
	"put":     {usage: "<type> key=value...", minArgs: 2, needsVault: true, run: runPut},
	"attach":  {usage: "<type> <file>...", minArgs: 2, needsVault: true, run: runAttach},
	"get":     {usage: "<type> [dir]", minArgs: 1, needsVault: true, run: runGet},
	"list":    {usage: "", needsVault: true, run: runList},
	"delete":  {usage: "<type>", minArgs: 1, needsVault: true, run: runDelete},
	"status":  {usage: "", needsVault: true, run: runStatus},
	"version": {usage: "", run: runVersion},
}

func runInit(ctx context.Context, a *App, s *service.Services, _ []string) error {
	vault := s.VaultService
	password, err := a.password(EnvPassword)
	if err != nil {
		return err
	}

	session, err := vault.Setup(ctx, password)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.stdout, "vault initialized, secret id %d\n", session.SecretID())
	return nil
}

func runPasswd(ctx context.Context, a *App, s *service.Services, _ []string) error {
	vault := s.VaultService
	session, err := a.unlock(ctx, vault)
	if err != nil {
		return err
	}

	newPassword, err := a.password(EnvNewPassword)
	if err != nil {
		return err
	}

	next, err := vault.ChangePassword(ctx, session, newPassword)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.stdout, "password changed, generation %d\n", next.Generation())
	return nil
}

func runPut(ctx context.Context, a *App, s *service.Services, args []string) error {
	vault := s.VaultService
	valueType := models.SecureValueType(args[0])

	fields, err := parseFields(args[1:])
	if err != nil {
		return err
	}

	session, err := a.unlock(ctx, vault)
	if err != nil {
		return err
	}

	current, err := currentValue(ctx, vault, session, valueType)
	if err != nil {
		return err
	}

	data := current.Data
	if data == nil {
		data = make(map[string]string, len(fields))
	}
	for k, v := range fields {
		data[k] = v
	}

	saved, err := vault.SaveValue(ctx, session, models.SaveValueRequest{
		Type:  valueType,
		Data:  data,
		Files: current.Files,
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(a.stdout, "%s saved (%s)\n", saved.Type, saved.ID)
	return nil
}

func runAttach(ctx context.Context, a *App, s *service.Services, args []string) error {
	vault := s.VaultService
	valueType := models.SecureValueType(args[0])

	files := make([][]byte, 0, len(args)-1)
	for _, path := range args[1:] {
		b, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("error reading %s: %w", path, err)
		}
		files = append(files, b)
	}

	session, err := a.unlock(ctx, vault)
	if err != nil {
		return err
	}

	current, err := currentValue(ctx, vault, session, valueType)
	if err != nil {
		return err
	}

	saved, err := vault.SaveValue(ctx, session, models.SaveValueRequest{
		Type:  valueType,
		Data:  current.Data,
		Files: append(current.Files, files...),
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(a.stdout, "%s saved with %d file(s)\n", saved.Type, len(saved.FileHashes))
	return nil
}

func runGet(ctx context.Context, a *App, s *service.Services, args []string) error {
	vault := s.VaultService
	valueType := models.SecureValueType(args[0])

	session, err := a.unlock(ctx, vault)
	if err != nil {
		return err
	}

	value, err := vault.GetValue(ctx, session, valueType)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.stdout, "type: %s\nid: %s\n", value.Type, value.ID)

	keys := make([]string, 0, len(value.Data))
	for k := range value.Data {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(a.stdout, "%s: %s\n", k, value.Data[k])
	}
	fmt.Fprintf(a.stdout, "files: %d\n", len(value.Files))

	if len(args) < 2 {
		return nil
	}

	dir := args[1]
	if err = os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("error creating %s: %w", dir, err)
	}
	for i, f := range value.Files {
		path := filepath.Join(dir, fmt.Sprintf("%s_%d.bin", value.Type, i+1))
		if err = os.WriteFile(path, f, 0o600); err != nil {
			return fmt.Errorf("error writing %s: %w", path, err)
		}
		fmt.Fprintln(a.stdout, path)
	}

	return nil
}

func runList(ctx context.Context, a *App, s *service.Services, _ []string) error {
	vault := s.VaultService
	values, err := vault.ListValues(ctx)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(a.stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "TYPE\tDATA\tFILES\tUPDATED")
	for _, v := range values {
		updated := "-"
		if v.UpdatedAt != nil {
			updated = v.UpdatedAt.Local().Format(time.DateTime)
		}
		fmt.Fprintf(w, "%s\t%t\t%d\t%s\n", v.Type, len(v.DataHash) > 0, len(v.FileHashes), updated)
	}

	return w.Flush()
}

func runDelete(ctx context.Context, a *App, s *service.Services, args []string) error {
	vault := s.VaultService
	valueType := models.SecureValueType(args[0])

	if err := vault.DeleteValue(ctx, valueType); err != nil {
		return err
	}

	fmt.Fprintf(a.stdout, "%s deleted\n", valueType)
	return nil
}

func runStatus(ctx context.Context, a *App, s *service.Services, _ []string) error {
	status, err := s.AppInfoService.Status(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.stdout, "version: %s\n", status.AppVersion)
	if !status.Initialized {
		fmt.Fprintln(a.stdout, "vault: not initialized")
		return nil
	}
	fmt.Fprintf(a.stdout, "vault: initialized\nsecret id: %d\ngeneration: %d\nkdf: %s\nvalues: %d\n",
		status.SecretID, status.Generation, status.KDF, status.Values)

	return nil
}

func runVersion(_ context.Context, a *App, _ *service.Services, _ []string) error {
	fmt.Fprint(a.stdout, a.buildInfo.String())
	return nil
}

func (a *App) unlock(ctx context.Context, vault service.VaultService) (crypto.Session, error) {
	password, err := a.password(EnvPassword)
	if err != nil {
		return crypto.Session{}, err
	}
	return vault.Unlock(ctx, password)
}

// currentValue returns the stored value of valueType, or an empty one.
func currentValue(ctx context.Context, vault service.VaultService, session crypto.Session, valueType models.SecureValueType) (models.DecryptedValue, error) {
	value, err := vault.GetValue(ctx, session, valueType)
	if errors.Is(err, service.ErrValueNotFound) {
		return models.DecryptedValue{Type: valueType}, nil
	}
	return value, err
}

func parseFields(args []string) (map[string]string, error) {
	fields := make(map[string]string, len(args))
	for _, arg := range args {
		k, v, ok := strings.Cut(arg, "=")
		if !ok || k == "" {
			return nil, fmt.Errorf("%w: expected key=value, got %q", ErrUsage, arg)
		}
		fields[k] = v
	}
	return fields, nil
}
