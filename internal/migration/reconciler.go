// Package migration backfills the status model on stored content items.
//
// A single Reconciler replaces the per-field scripts: it selects the items
// that still lack the newer fields, fills the gaps from the legacy flags and
// saves each item on its own. Present, valid statuses are never overwritten,
// so running it twice is a no-op.
package migration

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/ColinBurgess/MultiLangContentManager-sub000/internal/domain"
	"github.com/ColinBurgess/MultiLangContentManager-sub000/internal/logger"
	"github.com/ColinBurgess/MultiLangContentManager-sub000/internal/metrics"
	"github.com/ColinBurgess/MultiLangContentManager-sub000/internal/repository"
)

// Mode selects which gaps a run fills.
type Mode string

const (
	// ModePlatform seeds missing per-platform status blocks.
	ModePlatform Mode = "platform"
	// ModeStatus fills missing top-level statuses.
	ModeStatus Mode = "status"
	// ModeAll runs the status fill then the platform seed on every item.
	ModeAll Mode = "all"
)

// ProgressInterval is how often, in scanned items, a run logs progress.
const ProgressInterval = 10

// ParseMode validates a mode name.
func ParseMode(raw string) (Mode, error) {
	switch m := Mode(raw); m {
	case ModePlatform, ModeStatus, ModeAll:
		return m, nil
	}
	return "", domain.NewValidationError("mode", fmt.Sprintf("unknown mode %q", raw))
}

// Options configures one reconciler run.
type Options struct {
	Mode   Mode
	DryRun bool
}

// RollbackResult describes a completed rollback.
type RollbackResult struct {
	Archive  string `json:"archive"`
	Restored int    `json:"restored"`
	// Backup is the archive holding the state replaced by the rollback.
	Backup string `json:"backup"`
}

// Reconciler runs migrations over a content store.
type Reconciler struct {
	store    repository.ContentStore
	archives *ArchiveStore
}

// NewReconciler creates a Reconciler. archives may be nil, in which case
// only dry runs are allowed.
func NewReconciler(store repository.ContentStore, archives *ArchiveStore) *Reconciler {
	return &Reconciler{store: store, archives: archives}
}

// Run reconciles every item of the store. The returned tally is complete
// even when items failed; the error is only set when the run itself could
// not proceed.
func (r *Reconciler) Run(ctx context.Context, opts Options) (domain.MigrationTally, error) {
	tally := domain.MigrationTally{Mode: string(opts.Mode), DryRun: opts.DryRun}
	log := logger.WithFields(
		slog.String("mode", string(opts.Mode)),
		slog.Bool("dry_run", opts.DryRun),
	)

	if _, err := ParseMode(string(opts.Mode)); err != nil {
		return tally, err
	}

	if !opts.DryRun {
		if r.archives == nil {
			return tally, errors.New("archive store is required for a non dry run")
		}
		name, count, err := r.archives.Create(ctx, r.store)
		if err != nil {
			return tally, fmt.Errorf("archive before migrate: %w", err)
		}
		tally.Archive = name
		log.Info("Content archived before migration",
			slog.String("archive", name),
			slog.Int("items", count))
	}

	start := time.Now()
	err := r.store.StreamRecords(ctx, func(rec repository.ContentRecord) error {
		tally.Scanned++
		if rec.Err != nil {
			tally.Attempted++
			r.fail(&tally, rec.ID, rec.Err, log)
		} else {
			r.reconcile(ctx, &rec.Item, opts, &tally, log)
		}
		if tally.Scanned%ProgressInterval == 0 {
			log.Info("Migration progress",
				slog.Int("scanned", tally.Scanned),
				slog.Int("succeeded", tally.Succeeded),
				slog.Int("failed", tally.Failed),
				slog.Int("skipped", tally.Skipped))
		}
		return ctx.Err()
	})

	metrics.ObserveMigration(string(opts.Mode), opts.DryRun, tally.Succeeded, tally.Failed, tally.Skipped)
	log.Info("Migration finished",
		slog.String("archive", tally.Archive),
		slog.Int("scanned", tally.Scanned),
		slog.Int("attempted", tally.Attempted),
		slog.Int("succeeded", tally.Succeeded),
		slog.Int("failed", tally.Failed),
		slog.Int("skipped", tally.Skipped),
		slog.Duration("duration", time.Since(start)))

	if err != nil {
		return tally, fmt.Errorf("scan content: %w", err)
	}
	return tally, nil
}

func (r *Reconciler) reconcile(ctx context.Context, item *domain.ContentItem, opts Options, tally *domain.MigrationTally, log *slog.Logger) {
	if !Needs(item, opts.Mode) {
		tally.Skipped++
		return
	}
	tally.Attempted++

	err := Apply(item, opts.Mode)
	if err == nil && !opts.DryRun {
		err = r.store.SaveReconciled(ctx, item)
	}
	if err != nil {
		r.fail(tally, item.ID, err, log)
		return
	}
	tally.Succeeded++
}

func (r *Reconciler) fail(tally *domain.MigrationTally, id string, err error, log *slog.Logger) {
	failure := &domain.MigrationItemFailure{ItemID: id, Err: err}
	tally.Failed++
	tally.Failures = append(tally.Failures, failure.Error())
	log.Error("Migration item failed",
		slog.String("item_id", id),
		slog.String("error", err.Error()))
}

// Rollback restores the named archive verbatim after archiving the current
// state, so a rollback can itself be rolled back.
func (r *Reconciler) Rollback(ctx context.Context, name string) (RollbackResult, error) {
	result := RollbackResult{Archive: name}
	if r.archives == nil {
		return result, errors.New("archive store is required for rollback")
	}

	records, err := r.archives.Load(name)
	if err != nil {
		metrics.MigrationRollbacksTotal.WithLabelValues("error").Inc()
		return result, err
	}

	backup, _, err := r.archives.Create(ctx, r.store)
	if err != nil {
		metrics.MigrationRollbacksTotal.WithLabelValues("error").Inc()
		return result, fmt.Errorf("archive before rollback: %w", err)
	}
	result.Backup = backup

	if err := r.store.RestoreRecords(ctx, records); err != nil {
		metrics.MigrationRollbacksTotal.WithLabelValues("error").Inc()
		return result, fmt.Errorf("restore archive: %w", err)
	}
	result.Restored = len(records)

	metrics.MigrationRollbacksTotal.WithLabelValues("success").Inc()
	logger.Info("Archive rolled back",
		slog.String("archive", name),
		slog.String("backup", backup),
		slog.Int("restored", len(records)))
	return result, nil
}

// Archives lists the stored archives, newest first.
func (r *Reconciler) Archives() ([]Archive, error) {
	if r.archives == nil {
		return []Archive{}, nil
	}
	return r.archives.List()
}

// Discard deletes an archive.
func (r *Reconciler) Discard(name string) error {
	if r.archives == nil {
		return fmt.Errorf("archive %s: %w", name, domain.ErrNotFound)
	}
	if err := r.archives.Discard(name); err != nil {
		return err
	}
	logger.Info("Archive discarded", slog.String("archive", name))
	return nil
}
