// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/aoclib/input"
)

// Configuration keys. Each is also read from AOC_<KEY> with '-' mapped to '_'.
const (
	keyInputDir   = "input-dir"
	keyLogLevel   = "log-level"
	keyMaxSettled = "max-settled"
	keyEnvFile    = "env-file"
)

// app carries the configuration and logger shared by every subcommand.
type app struct {
	v   *viper.Viper
	log *logrus.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{v: viper.New(), log: logrus.New()}

	root := &cobra.Command{
		Use:           "aocgrid",
		Short:         "Grid, region and shortest-path tools for puzzle inputs",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.configure(cmd)
		},
	}

	flags := root.PersistentFlags()
	flags.String(keyInputDir, "", "directory to start searching for input/<id>.txt")
	flags.String(keyLogLevel, "warn", "log level (debug, info, warn, error)")
	flags.Int(keyMaxSettled, 0, "abort searches after this many expanded cells (0 = no limit)")
	flags.String(keyEnvFile, ".env", "optional dotenv file loaded before reading AOC_* variables")

	root.AddCommand(a.pathCmd(), a.regionsCmd(), a.showCmd())
	return root
}

// configure loads the dotenv file, binds flags and environment through viper
// and sets up the logger.
func (a *app) configure(cmd *cobra.Command) error {
	envFile, _ := cmd.Flags().GetString(keyEnvFile)
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("load %s: %w", envFile, err)
		}
	}

	a.v.SetEnvPrefix("AOC")
	a.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.v.AutomaticEnv()
	if err := a.v.BindPFlags(cmd.Flags()); err != nil {
		return fmt.Errorf("bind flags: %w", err)
	}

	level, err := logrus.ParseLevel(a.v.GetString(keyLogLevel))
	if err != nil {
		return fmt.Errorf("%s: %w", keyLogLevel, err)
	}
	a.log.SetLevel(level)
	a.log.SetOutput(cmd.ErrOrStderr())
	a.log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})

	if n := a.v.GetInt(keyMaxSettled); n < 0 {
		return fmt.Errorf("%s must be non-negative, got %d", keyMaxSettled, n)
	}
	return nil
}

// load returns the text named by arg: a file path if one exists, otherwise
// the input file for the puzzle id arg.
func (a *app) load(arg string) (string, error) {
	if info, err := os.Stat(arg); err == nil && !info.IsDir() {
		a.log.WithFields(logrus.Fields{"file": arg}).Debug("reading input file")
		b, err := os.ReadFile(arg)
		if err != nil {
			return "", err
		}
		return string(b), nil
	}

	path, err := input.Locate(arg, input.WithStartDir(a.v.GetString(keyInputDir)))
	if err != nil {
		return "", err
	}
	a.log.WithFields(logrus.Fields{"puzzle": arg, "file": path}).Debug("resolved puzzle input")
	b, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
