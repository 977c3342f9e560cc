package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/spf13/cobra"

	"github.com/ColinBurgess/MultiLangContentManager-sub000/internal/config"
	"github.com/ColinBurgess/MultiLangContentManager-sub000/internal/infrastructure/database"
	"github.com/ColinBurgess/MultiLangContentManager-sub000/internal/logger"
	"github.com/ColinBurgess/MultiLangContentManager-sub000/internal/migration"
	"github.com/ColinBurgess/MultiLangContentManager-sub000/internal/repository"
)

// Store backends the reconciler can run against.
const (
	storePostgres = "postgres"
	storeMongo    = "mongo"
)

var (
	storeFlag      string
	migrationsFlag string
	modeFlag       string
	dryRunFlag     bool
)

var rootCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Schema and content migrations",
	Long: `Maintenance commands for the content store.

Available subcommands:
  schema   - Apply the SQL schema migrations
  run      - Fill missing statuses and platform blocks
  archives - List the snapshots taken before each run
  rollback - Restore the collection from a snapshot
  discard  - Delete a snapshot`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if storeFlag != storePostgres && storeFlag != storeMongo {
			return fmt.Errorf("--store must be %q or %q", storePostgres, storeMongo)
		}
		return nil
	},
}

var schemaCmd = &cobra.Command{
	Use:   "schema [up|down]",
	Short: "Apply the SQL schema migrations",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runSchema,
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Fill missing statuses and platform blocks",
	Long: `Reconcile every content item of the store.

Modes:
  status   - fill missing top-level statuses from the publication flags
  platform - seed missing per-platform blocks from the top-level state
  all      - both, status first

A real run snapshots the collection first; the snapshot name is printed
with the tally and can be passed to 'rollback'.`,
	RunE: runReconcile,
}

var archivesCmd = &cobra.Command{
	Use:   "archives",
	Short: "List the snapshots taken before each run",
	RunE:  runArchives,
}

var rollbackCmd = &cobra.Command{
	Use:   "rollback <archive>",
	Short: "Restore the collection from a snapshot",
	Args:  cobra.ExactArgs(1),
	RunE:  runRollback,
}

var discardCmd = &cobra.Command{
	Use:   "discard <archive>",
	Short: "Delete a snapshot",
	Args:  cobra.ExactArgs(1),
	RunE:  runDiscard,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&storeFlag, "store", storePostgres, "content store to migrate: postgres or mongo")
	schemaCmd.Flags().StringVar(&migrationsFlag, "path", "migrations", "directory holding the SQL migrations")
	runCmd.Flags().StringVar(&modeFlag, "mode", string(migration.ModeAll), "status, platform or all")
	runCmd.Flags().BoolVar(&dryRunFlag, "dry-run", false, "report what would change without writing")

	rootCmd.AddCommand(schemaCmd, runCmd, archivesCmd, rollbackCmd, discardCmd)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	level, err := logger.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	logger.SetLevel(level)
	return cfg, nil
}

// openReconciler connects to the selected store. The returned func releases
// the connection.
func openReconciler(ctx context.Context, cfg *config.Config) (*migration.Reconciler, func(), error) {
	archives := migration.NewArchiveStore(cfg.ArchiveDir)

	if storeFlag == storeMongo {
		db, err := database.NewMongo(ctx, cfg.Mongo())
		if err != nil {
			return nil, nil, err
		}
		closeFn := func() {
			if err := db.Client().Disconnect(context.Background()); err != nil {
				logger.Warn("Mongo disconnect failed", slog.String("error", err.Error()))
			}
		}
		return migration.NewReconciler(repository.NewMongoContentRepository(db), archives), closeFn, nil
	}

	pool, err := database.NewPostgres(ctx, cfg.Postgres())
	if err != nil {
		return nil, nil, err
	}
	return migration.NewReconciler(repository.NewPostgresContentRepository(pool), archives), pool.Close, nil
}

func printJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func runSchema(cmd *cobra.Command, args []string) error {
	if storeFlag != storePostgres {
		return fmt.Errorf("schema migrations only apply to postgres")
	}
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	m, err := migrate.New("file://"+migrationsFlag, cfg.Postgres().URL())
	if err != nil {
		return fmt.Errorf("open migrations: %w", err)
	}
	defer m.Close()

	direction := "up"
	if len(args) == 1 {
		direction = args[0]
	}
	switch direction {
	case "up":
		err = m.Up()
	case "down":
		err = m.Steps(-1)
	default:
		return fmt.Errorf("unknown direction %q", direction)
	}
	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migrate %s: %w", direction, err)
	}

	v, dirty, err := m.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return err
	}
	logger.Info("Schema migrated", slog.String("direction", direction), slog.Uint64("version", uint64(v)), slog.Bool("dirty", dirty))
	return nil
}

func runReconcile(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	mode, err := migration.ParseMode(modeFlag)
	if err != nil {
		return err
	}

	reconciler, closeFn, err := openReconciler(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	defer closeFn()

	tally, err := reconciler.Run(cmd.Context(), migration.Options{Mode: mode, DryRun: dryRunFlag})
	if printErr := printJSON(cmd, tally); printErr != nil {
		return printErr
	}
	if err != nil {
		return err
	}
	if tally.Failed > 0 {
		return fmt.Errorf("%d items failed", tally.Failed)
	}
	return nil
}

func runArchives(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	archives, err := migration.NewArchiveStore(cfg.ArchiveDir).List()
	if err != nil {
		return err
	}
	return printJSON(cmd, archives)
}

func runRollback(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	reconciler, closeFn, err := openReconciler(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	defer closeFn()

	result, err := reconciler.Rollback(cmd.Context(), args[0])
	if err != nil {
		return err
	}
	return printJSON(cmd, result)
}

func runDiscard(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if err := migration.NewArchiveStore(cfg.ArchiveDir).Discard(args[0]); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "discarded %s\n", args[0])
	return nil
}
