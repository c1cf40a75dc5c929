package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"belsheets/internal/config"
	"belsheets/internal/logging"
	"belsheets/internal/repository"
)

// version is set at build time via -ldflags.
var version = "dev"

var rootFlags struct {
	configPath string
	roundsDir  string
	cacheDir   string
	logLevel   string
	logFormat  string
	rebuild    bool
}

var rootCmd = &cobra.Command{
	Use:   "belsheets",
	Short: "Compile curated BEL sheets into a graph and curation reports",
	Long: "Belsheets walks the curation rounds directory, translates every\n" +
		"curated spreadsheet row into a BEL statement, and reports on the\n" +
		"curation quality per gene symbol.\n\n" +
		"Run without a subcommand to regenerate both summary CSVs, build or\n" +
		"load the graph, and page through any translation warnings. The\n" +
		"process exits non-zero when warnings are present.",
	CompletionOptions: cobra.CompletionOptions{
		HiddenDefaultCmd: true,
	},
	SilenceUsage:      true,
	PersistentPreRunE: setupLogging,
	RunE:              runRoot,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&rootFlags.configPath, "config", "", "Path to config file (YAML or JSON)")
	pf.StringVar(&rootFlags.roundsDir, "rounds", "", "Override the rounds directory")
	pf.StringVar(&rootFlags.cacheDir, "cache-dir", "", "Override the cache directory")
	pf.StringVar(&rootFlags.logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	pf.StringVar(&rootFlags.logFormat, "log-format", "text", "Log format (text, json)")
	pf.BoolVar(&rootFlags.rebuild, "rebuild", false, "Rescan all sheets instead of using the cached graph")

	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(graphCmd)
	rootCmd.Version = version
}

func setupLogging(_ *cobra.Command, _ []string) error {
	level, err := logging.ParseLevel(rootFlags.logLevel)
	if err != nil {
		return err
	}
	logging.Init(level, rootFlags.logFormat)
	return nil
}

// loadConfig resolves the effective configuration: config file (or the
// built-in defaults), then flag overrides on top.
func loadConfig() (config.Config, error) {
	cfg := config.Default()
	if rootFlags.configPath != "" {
		c, err := config.LoadFromPath(rootFlags.configPath)
		if err != nil {
			return config.Config{}, err
		}
		cfg = *c
	}
	if rootFlags.roundsDir != "" {
		cfg.RoundsDir = rootFlags.roundsDir
	}
	if rootFlags.cacheDir != "" {
		cfg.CacheDir = rootFlags.cacheDir
	}
	return cfg, nil
}

func runRoot(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	repo := repository.New(cfg)

	if _, err := repo.GenerateCurationSummary(); err != nil {
		return fmt.Errorf("generate curation summary: %w", err)
	}

	g, err := repo.Graph(!rootFlags.rebuild)
	if err != nil {
		return fmt.Errorf("build graph: %w", err)
	}

	out := cmd.OutOrStdout()
	info := g.Summary()
	fmt.Fprintln(out, info.String())
	fmt.Fprintln(out, warningSummaryLine(info))

	if info.Warnings == 0 {
		return nil
	}
	if err := showPager(formatWarnings(g.Warnings), out); err != nil {
		return err
	}
	return fmt.Errorf("graph has %d warnings", info.Warnings)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
