package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/nao1215/itemreport/internal/database"
	"github.com/nao1215/itemreport/internal/log"
	"github.com/nao1215/itemreport/internal/model"
)

// datasetFile is the YAML layout of an importable dataset.
type datasetFile struct {
	Users []datasetUser `yaml:"users"`
}

// datasetUser is one user and their items in a dataset file.
type datasetUser struct {
	ID    int64         `yaml:"id"`
	Name  string        `yaml:"name"`
	Role  string        `yaml:"role"`
	Items []datasetItem `yaml:"items"`
}

// datasetItem is one item in a dataset file.
type datasetItem struct {
	ID    int64   `yaml:"id"`
	Name  string  `yaml:"name"`
	Value float64 `yaml:"value"`
}

// NewImportCmd creates the import command.
func NewImportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import <dataset.yaml>",
		Short: "Import users and items from a YAML dataset",
		Long: `Import loads users and their items from a YAML file into the store.
Existing users and items with the same IDs are replaced.

Dataset example:
  users:
    - id: 1
      name: Ann
      role: ADMIN
      items:
        - id: 1
          name: Laptop
          value: 1500
    - id: 2
      name: Bob
      role: USER
      items:
        - id: 2
          name: Mouse
          value: 100`,
		Args: cobra.ExactArgs(1),
		RunE: runImportCmd,
	}

	cmd.Flags().StringP("config", "c", "",
		"Path to the configuration file")
	cmd.Flags().String("db", "",
		"Database directory (overrides configuration)")

	return cmd
}

// runImportCmd executes the import command.
func runImportCmd(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}

	logger := log.NewSecureLogger(os.Stderr, cfg.Verbose)

	data, err := os.ReadFile(args[0]) //nolint:gosec // User-provided dataset path is intentional
	if err != nil {
		return fmt.Errorf("failed to read dataset: %w", err)
	}

	var ds datasetFile
	if err := yaml.Unmarshal(data, &ds); err != nil {
		return fmt.Errorf("failed to parse dataset: %w", err)
	}
	if len(ds.Users) == 0 {
		return fmt.Errorf("dataset contains no users: %s", args[0])
	}

	db, err := database.Open(cfg.DatabaseDir, database.DefaultOptions())
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	ctx := cmd.Context()
	var itemCount int
	for _, u := range ds.Users {
		user := model.User{ID: u.ID, Name: u.Name, Role: model.Role(u.Role)}
		if err := db.SaveUser(ctx, user); err != nil {
			return err
		}
		if !user.Role.Known() {
			logger.Warn("user has an unrecognized role; their reports will be empty",
				"user_id", user.ID,
				"role", u.Role,
			)
		}

		for _, it := range u.Items {
			item := model.Item{ID: it.ID, Name: it.Name, Value: it.Value}
			if err := db.SaveItem(ctx, user.ID, item); err != nil {
				return err
			}
			itemCount++
		}
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Imported %d users and %d items into %s\n",
		len(ds.Users), itemCount, db.Path())
	return nil
}
