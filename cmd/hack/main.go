package main

import (
	"context"
	"os"
	"runtime/debug"

	"github.com/charmbracelet/log"
	"github.com/hackhub/hackhub/cmd"
	"github.com/hackhub/hackhub/cmd/hack/admin"
	"github.com/hackhub/hackhub/cmd/hack/serve"
	"github.com/hackhub/hackhub/pkg/config"
	logr "github.com/hackhub/hackhub/pkg/log"
	"github.com/hackhub/hackhub/pkg/version"
	"github.com/spf13/cobra"
	"go.uber.org/automaxprocs/maxprocs"
)

var rootCmd = &cobra.Command{
	Use:          "hack",
	Short:        "Hackathon team formation and registration",
	Long:         "Hackhub lets participants form teams and register them for hackathons.",
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().String("as", "", "act as the given user ID (defaults to $"+cmd.UserEnv+")")
	rootCmd.AddCommand(
		serve.Command,
		admin.Command,
		manCmd,
		cmd.TokenCommand(),
		cmd.TeamCommand(),
		cmd.HackathonCommand(),
		cmd.ProfileCommand(),
		cmd.WebhookCommand(),
	)
	rootCmd.CompletionOptions.HiddenDefaultCmd = true

	if len(version.CommitSHA) >= 7 {
		vt := rootCmd.VersionTemplate()
		rootCmd.SetVersionTemplate(vt[:len(vt)-1] + " (" + version.CommitSHA[0:7] + ")\n")
	}
	if version.Version == "dev" {
		if info, ok := debug.ReadBuildInfo(); ok && info.Main.Sum != "" {
			version.Version = info.Main.Version
		}
	}
	rootCmd.Version = version.Version
}

func main() {
	os.Exit(run())
}

func run() int {
	ctx := context.Background()
	cfg := config.DefaultConfig()
	if cfg.Exist() {
		if err := cfg.ParseFile(); err != nil {
			log.Error("parse config file", "err", err)
			return 1
		}
	}

	if err := cfg.ParseEnv(); err != nil {
		log.Error("parse environment variables", "err", err)
		return 1
	}

	ctx = config.WithContext(ctx, cfg)
	logger, f, err := logr.NewLogger(cfg)
	if err != nil {
		log.Error("failed to create logger", "err", err)
		return 1
	}
	if f != nil {
		defer f.Close() //nolint:errcheck
	}

	// Set global logger
	log.SetDefault(logger)

	// Set the max number of processes to the number of CPUs
	// This is useful when running hackhub in a container
	if _, err := maxprocs.Set(maxprocs.Logger(log.Debugf)); err != nil {
		log.Warn("couldn't set automaxprocs", "error", err)
	}

	ctx = log.WithContext(ctx, logger)
	rootCmd.SetOut(os.Stdout)
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		return 1
	}

	return 0
}
