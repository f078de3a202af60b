package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nao1215/itemreport/internal/config"
	"github.com/nao1215/itemreport/internal/database"
	"github.com/nao1215/itemreport/internal/log"
	"github.com/nao1215/itemreport/internal/pipeline"
	"github.com/nao1215/itemreport/internal/processor"
	"github.com/nao1215/itemreport/internal/report"
)

// NewGenerateCmd creates the generate command.
func NewGenerateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate an item report for a user",
		Long: `Generate renders a report of a user's items in the requested format.

The user's role decides what the report contains:
- ADMIN users see every item; items above the priority threshold are
  visually emphasized in formats that support it.
- USER users only see items at or below the configured value limit.
- Any other role produces a report with no rows.

Examples:
  # CSV report for user 1 on stdout
  itemreport generate --user 1 --format CSV

  # HTML report written to a file
  itemreport generate --user 1 --format HTML --output report.html

  # Reports for every user, one file each
  itemreport generate --all --format MARKDOWN --output-dir reports/

  # Use a custom configuration file
  itemreport generate --user 1 -c myconfig.yaml

Configuration file (.itemreport) example:
  user_value_limit: 500
  admin_priority_threshold: 1000
  database_dir: /var/lib/itemreport
  concurrency: 4`,
		RunE: runGenerateCmd,
	}

	cmd.Flags().StringP("format", "f", report.FormatCSV,
		"Report format (CSV, HTML, or MARKDOWN; case-sensitive)")
	cmd.Flags().Int64P("user", "u", 0,
		"ID of the user to generate the report for")
	cmd.Flags().Bool("all", false,
		"Generate reports for every user in the store")
	cmd.Flags().StringP("output", "o", "",
		"Output file path (default: stdout; single-user mode only)")
	cmd.Flags().String("output-dir", "reports",
		"Output directory for --all mode")
	cmd.Flags().StringP("config", "c", "",
		"Path to the configuration file")
	cmd.Flags().String("db", "",
		"Database directory (overrides configuration)")

	return cmd
}

// runGenerateCmd executes the generate command.
func runGenerateCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}

	logger := log.NewSecureLogger(os.Stderr, cfg.Verbose)

	all, err := cmd.Flags().GetBool("all")
	if err != nil {
		return err
	}
	userID, err := cmd.Flags().GetInt64("user")
	if err != nil {
		return err
	}
	if !all && userID == 0 {
		return fmt.Errorf("either --user or --all is required")
	}

	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return err
	}

	db, err := database.Open(cfg.DatabaseDir, database.Options{EnableWAL: true})
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	gen := report.NewGenerator(db, report.WithProcessor(processor.New(
		processor.WithUserValueLimit(cfg.UserValueLimit),
		processor.WithAdminPriorityThreshold(cfg.AdminPriorityThreshold),
	)))
	p := pipeline.New(db, gen, pipeline.WithLogger(logger))

	if all {
		outputDir, err := cmd.Flags().GetString("output-dir")
		if err != nil {
			return err
		}
		return generateAll(cmd, p, db, cfg, format, outputDir, logger)
	}

	out, err := p.Run(cmd.Context(), userID, format)
	if err != nil {
		return err
	}

	outputPath, err := cmd.Flags().GetString("output")
	if err != nil {
		return err
	}
	if outputPath == "" {
		fmt.Fprintln(cmd.OutOrStdout(), out)
		return nil
	}
	if err := os.WriteFile(outputPath, []byte(out+"\n"), 0600); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Report written to %s\n", outputPath)
	return nil
}

// generateAll renders one report per user into outputDir.
func generateAll(cmd *cobra.Command, p *pipeline.Pipeline, db *database.StoreDB,
	cfg *config.Config, format, outputDir string, logger *slog.Logger,
) error {
	users, err := db.ListUsers(cmd.Context())
	if err != nil {
		return err
	}
	if len(users) == 0 {
		return fmt.Errorf("no users in the store; run 'itemreport import' first")
	}

	userIDs := make([]int64, len(users))
	for i, u := range users {
		userIDs[i] = u.ID
	}

	bp := pipeline.NewBatchProcessor(p,
		pipeline.WithConcurrency(cfg.Concurrency),
		pipeline.WithBatchLogger(logger),
	)
	results, err := bp.ProcessBatch(cmd.Context(), userIDs, format)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(outputDir, 0750); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	var failed int
	for _, r := range results {
		if r.Err != nil {
			failed++
			logger.Warn("skipping report", "user_id", r.UserID, "error", r.Err)
			continue
		}

		path := filepath.Join(outputDir, fmt.Sprintf("user-%d.%s", r.UserID, extensionFor(format)))
		if err := os.WriteFile(path, []byte(r.Report+"\n"), 0600); err != nil {
			return fmt.Errorf("failed to write report for user %d: %w", r.UserID, err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Report written to %s\n", path)
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d reports failed", failed, len(results))
	}
	return nil
}

// extensionFor maps a report-type key to a file extension.
func extensionFor(format string) string {
	switch format {
	case report.FormatCSV:
		return "csv"
	case report.FormatHTML:
		return "html"
	case report.FormatMarkdown:
		return "md"
	default:
		return strings.ToLower(format)
	}
}

// buildConfig assembles the effective configuration from defaults, an
// optional config file, and CLI flags, in that order of precedence.
func buildConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.NewConfig()

	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}
	if path := config.FindConfigFile(configPath); path != "" {
		cf, err := config.LoadConfigFile(path)
		if err != nil {
			return nil, err
		}
		cf.Apply(cfg)
	} else if configPath != "" {
		return nil, fmt.Errorf("configuration file not found: %s", configPath)
	}

	if dbDir, err := cmd.Flags().GetString("db"); err == nil && dbDir != "" {
		cfg.DatabaseDir = dbDir
	}
	cfg.Verbose = getVerboseFlag(cmd)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// getVerboseFlag retrieves the verbose flag from the command or its parent.
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		verbose, err = cmd.Root().PersistentFlags().GetBool("verbose")
		if err != nil {
			return false
		}
	}
	return verbose
}
