package service

import (
	"context"
	"sync"

	"github.com/ColinBurgess/MultiLangContentManager-sub000/internal/domain"
	"github.com/ColinBurgess/MultiLangContentManager-sub000/internal/migration"
)

// MigrationService exposes the reconciler over HTTP. Runs are serialized so
// two requests never reconcile the same store at once.
type MigrationService struct {
	reconciler  *migration.Reconciler
	invalidator ContentInvalidator
	mu          sync.Mutex
}

// NewMigrationService creates a new MigrationService. invalidator may be nil.
func NewMigrationService(reconciler *migration.Reconciler, invalidator ContentInvalidator) *MigrationService {
	return &MigrationService{reconciler: reconciler, invalidator: invalidator}
}

// Run reconciles the content store in the given mode.
func (s *MigrationService) Run(ctx context.Context, mode string, dryRun bool) (domain.MigrationTally, error) {
	m, err := migration.ParseMode(mode)
	if err != nil {
		return domain.MigrationTally{Mode: mode, DryRun: dryRun}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	tally, err := s.reconciler.Run(ctx, migration.Options{Mode: m, DryRun: dryRun})
	if !dryRun && tally.Succeeded > 0 {
		s.invalidate()
	}
	return tally, err
}

// Archives lists the stored archives, newest first.
func (s *MigrationService) Archives(_ context.Context) ([]migration.Archive, error) {
	return s.reconciler.Archives()
}

// Rollback restores an archive.
func (s *MigrationService) Rollback(ctx context.Context, name string) (migration.RollbackResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	result, err := s.reconciler.Rollback(ctx, name)
	if err != nil {
		return result, err
	}
	s.invalidate()
	return result, nil
}

// Discard deletes an archive.
func (s *MigrationService) Discard(_ context.Context, name string) error {
	return s.reconciler.Discard(name)
}

func (s *MigrationService) invalidate() {
	if s.invalidator != nil {
		s.invalidator.InvalidateAll()
	}
}
