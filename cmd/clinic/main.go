// Package main provides the clinic console CLI entry point.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"clinicshell/internal/config"
	"clinicshell/internal/logger"
	"clinicshell/internal/output"
	"clinicshell/internal/shell"
	"clinicshell/internal/storage"
	"clinicshell/internal/theme"
	"clinicshell/internal/version"
)

var (
	cfg      *config.Config
	detailed bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "clinic",
	Short: "Clinic console - patients, appointments and prescriptions",
	Long: `Clinic is a line-command console for a small clinic. It keeps patient records,
medical histories, appointments and prescriptions in plain text files.`,
	RunE:          runShell,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// shellCmd represents the shell command (explicit version of default behavior)
var shellCmd = &cobra.Command{
	Use:   "shell",
	Short: "Start interactive shell mode",
	RunE:  runShell,
}

// batchCmd runs a command file without the prompt
var batchCmd = &cobra.Command{
	Use:   "batch <file.clinic>",
	Short: "Execute a .clinic command file",
	Long: `Execute a .clinic file with one console command per line. Blank lines and lines
starting with # are ignored. Execution stops at the first failing line.`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(cmd *cobra.Command, _ []string) {
		if detailed {
			fmt.Fprintln(cmd.OutOrStdout(), version.GetDetailedVersion())
			return
		}
		fmt.Fprintln(cmd.OutOrStdout(), version.GetFormattedVersion())
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.String("data-dir", "data", "Directory holding the record files")
	flags.String("log-level", "", "Set log level (debug|info|warn|error) [default: warn]")
	flags.String("log-file", "", "Write logs to file instead of stderr")
	flags.String("theme", "default", "Colour theme (default|dark|light|plain)")
	flags.Bool("plain", false, "Disable colours and styling")
	flags.Bool("test-mode", false, "Run in deterministic test mode")

	for key, flag := range map[string]string{
		config.KeyDataDir:  "data-dir",
		config.KeyLogLevel: "log-level",
		config.KeyLogFile:  "log-file",
		config.KeyTheme:    "theme",
		config.KeyPlain:    "plain",
		config.KeyTestMode: "test-mode",
	} {
		if err := viper.BindPFlag(key, flags.Lookup(flag)); err != nil {
			fmt.Fprintf(os.Stderr, "Error binding %s flag: %v\n", flag, err)
			os.Exit(1)
		}
	}

	versionCmd.Flags().BoolVar(&detailed, "detailed", false, "Show build details")

	rootCmd.AddCommand(shellCmd)
	rootCmd.AddCommand(batchCmd)
	rootCmd.AddCommand(versionCmd)

	cobra.OnInitialize(initConfig)
}

func initConfig() {
	workDir, err := os.Getwd()
	if err != nil {
		workDir = "."
	}
	cfg, err = config.Load(viper.GetViper(), workDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		os.Exit(1)
	}
	if err := logger.Configure(cfg.LogLevel, cfg.LogFile, cfg.TestMode); err != nil {
		fmt.Fprintf(os.Stderr, "Error configuring logger: %v\n", err)
		os.Exit(1)
	}
}

// newPrinter builds the console printer for the resolved configuration.
func newPrinter(c *config.Config) *output.Printer {
	th := theme.Load(c.Theme)
	opts := []output.Option{output.WithStyles(th)}

	style := ""
	if c.Plain || !th.IsAvailable() {
		opts = append(opts, output.PlainText())
		style = "notty"
	} else if th.Name == "dark" || th.Name == "light" {
		style = th.Name
	}

	if c.TestMode {
		return output.NewPrinter(append(opts, output.TestMode())...)
	}
	md, err := output.NewGlamourRenderer(80, style)
	if err != nil {
		logger.Warn("Markdown rendering disabled", "error", err)
	} else {
		opts = append(opts, output.WithMarkdown(md))
	}
	return output.NewPrinter(opts...)
}

func newSession(c *config.Config) (*shell.Session, error) {
	return shell.NewSession(storage.New(c.DataDir), newPrinter(c), shell.WithTestMode(c.TestMode))
}

func runShell(_ *cobra.Command, _ []string) error {
	logger.Info("Starting clinic console", "version", version.Version, "data", cfg.DataDir)

	s, err := newSession(cfg)
	if err != nil {
		return err
	}
	return s.Run(shell.PromptConfig{Prompt: cfg.Prompt, HistoryFile: cfg.HistoryFile})
}

func runBatch(_ *cobra.Command, args []string) error {
	path := args[0]
	logger.Info("Starting batch mode", "version", version.Version, "file", path)

	if err := shell.ValidateBatchFile(path); err != nil {
		return err
	}
	s, err := newSession(cfg)
	if err != nil {
		return err
	}
	if err := s.RunBatchFile(path); err != nil {
		return err
	}

	logger.Info("Batch executed successfully", "file", path)
	return nil
}
