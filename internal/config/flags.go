package config

import (
	"flag"
	"fmt"
	"io"
)

// ParseFlags parses the global configuration flags from args and returns
// the remaining positional arguments (the subcommand and its operands).
//
// Flags:
//
//	-kdf password KDF for new secret records
//	-byte-order secret ID byte order (big|little)
//	-driver database driver (sqlite3|pgx)
//	-d database DSN
//	-w worker pool concurrency
//	-log-level log level
//	-c/-config json file path with configs
func ParseFlags(args []string) (*StructuredConfig, []string, error) {
	var kdf, byteOrder string
	var driver, databaseDSN string
	var concurrency int
	var logLevel string
	var jsonConfigPath string

	fs := flag.NewFlagSet("secureid", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&kdf, "kdf", "", "Password KDF: sha512, pbkdf2-sha512, argon2id")
	fs.StringVar(&byteOrder, "byte-order", "", "Secret ID byte order: big, little")
	fs.StringVar(&driver, "driver", "", "Database driver: sqlite3, pgx")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.IntVar(&concurrency, "w", 0, "Worker pool concurrency")
	fs.StringVar(&logLevel, "log-level", "", "Log level")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			KDF:               kdf,
			SecretIDByteOrder: byteOrder,
		},
		Storage: Storage{
			DB: DB{
				Driver: driver,
				DSN:    databaseDSN,
			},
		},
		Workers: Workers{
			Concurrency: concurrency,
		},
		Log: Log{
			Level: logLevel,
		},
		JSONFilePath: jsonConfigPath,
	}, fs.Args(), nil
}
