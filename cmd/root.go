package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"pairingcheck/internal/application/common/logging"
	"pairingcheck/internal/application/common/slogger"
	"pairingcheck/internal/config"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// ErrCheckFailed is returned when at least one file failed the check. The
// report has already been printed, so Execute exits without another message.
var ErrCheckFailed = errors.New("pairing check failed")

// skipConfigAnnotation marks commands that run without loading configuration.
const skipConfigAnnotation = "pairingcheck/skip-config"

// envPrefix is prepended to every configuration key read from the environment.
const envPrefix = "PAIRINGCHECK"

var (
	cfgFile string
	cfg     *config.Config
)

// flagKeys maps command-line flags onto configuration keys. A flag only
// overrides the config file and environment when it is set explicitly.
//
//nolint:gochecknoglobals // read-only lookup
var flagKeys = map[string]string{
	"log-level":         "log.level",
	"log-format":        "log.format",
	"pairs":             "check.pairs_file",
	"format":            "check.format",
	"omit-counts":       "check.omit_counts",
	"concurrency":       "check.concurrency",
	"warn-conflicts":    "check.warn_conflicts",
	"git-changed":       "git.enabled",
	"repo":              "git.repository",
	"include-untracked": "git.include_untracked",
}

// rootCmd represents the base command when called without any subcommands
var rootCmd = newRootCmd() //nolint:gochecknoglobals // Standard Cobra CLI pattern

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pairingcheck",
		Short: "Find unbalanced paired function calls",
		Long: `pairingcheck scans source files for calls to paired functions such as
malloc/free, init/destroy or add/remove and reports every file in which
the open and close calls do not balance.

It is meant as a pre-commit or CI gate: the exit status is non-zero when
any file has mismatched pairings or cannot be read.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if _, skip := cmd.Annotations[skipConfigAnnotation]; skip {
				return nil
			}
			return initConfig(cmd)
		},
	}

	// Global flags
	cmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./configs/config.yaml)")
	cmd.PersistentFlags().String("log-level", "warn", "Log level (debug, info, warn, error)")
	cmd.PersistentFlags().String("log-format", "text", "Log format (json, text)")

	return cmd
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()

	if err != nil {
		if !errors.Is(err, ErrCheckFailed) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}

// initConfig loads configuration for cmd and configures logging from it.
func initConfig(cmd *cobra.Command) error {
	loaded, err := loadConfig(cmd.Flags())
	if err != nil {
		return err
	}
	cfg = loaded

	return slogger.Configure(logging.Config{
		Level:  strings.ToUpper(cfg.Log.Level),
		Format: cfg.Log.Format,
		Output: "stderr",
	})
}

// loadConfig merges defaults, the config file, PAIRINGCHECK_* environment
// variables and explicitly set flags, in increasing order of precedence.
func loadConfig(flags *pflag.FlagSet) (*config.Config, error) {
	v := viper.New()

	config.SetDefaults(v)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./configs")
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found; use defaults and environment
	}

	for name, key := range flagKeys {
		flag := flags.Lookup(name)
		if flag == nil {
			continue
		}
		if err := v.BindPFlag(key, flag); err != nil {
			return nil, fmt.Errorf("error binding %s flag: %w", name, err)
		}
	}

	return config.New(v)
}
