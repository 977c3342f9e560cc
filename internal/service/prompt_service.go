package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ColinBurgess/MultiLangContentManager-sub000/internal/domain"
	"github.com/ColinBurgess/MultiLangContentManager-sub000/internal/repository"
	"github.com/ColinBurgess/MultiLangContentManager-sub000/internal/validator"
)

// PromptService manages the prompt library.
type PromptService struct {
	repo      repository.PromptRepository
	validator *validator.Validator
	now       func() time.Time
}

// NewPromptService creates a new PromptService.
func NewPromptService(repo repository.PromptRepository, v *validator.Validator) *PromptService {
	return &PromptService{
		repo:      repo,
		validator: v,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

func normalizePrompt(p *domain.Prompt) {
	p.Title = strings.TrimSpace(p.Title)
	p.Category = strings.TrimSpace(p.Category)
	p.Tags = domain.NormalizeTags(p.Tags)
}

// Create stores a new prompt.
func (s *PromptService) Create(ctx context.Context, prompt *domain.Prompt) (*domain.Prompt, error) {
	p := *prompt
	normalizePrompt(&p)
	if err := validator.ToDomainError(s.validator.ValidatePrompt(&p)); err != nil {
		return nil, err
	}

	now := s.now()
	p.ID = uuid.New().String()
	p.CreatedAt, p.UpdatedAt = now, now
	if err := s.repo.Create(ctx, &p); err != nil {
		return nil, fmt.Errorf("create prompt: %w", err)
	}
	return &p, nil
}

// Get returns one prompt.
func (s *PromptService) Get(ctx context.Context, id string) (*domain.Prompt, error) {
	if err := ParseID(id); err != nil {
		return nil, err
	}
	return s.repo.Get(ctx, id)
}

// Update replaces the editable fields of a prompt.
func (s *PromptService) Update(ctx context.Context, id string, prompt *domain.Prompt) (*domain.Prompt, error) {
	if err := ParseID(id); err != nil {
		return nil, err
	}
	existing, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	p := *prompt
	normalizePrompt(&p)
	if err := validator.ToDomainError(s.validator.ValidatePrompt(&p)); err != nil {
		return nil, err
	}

	p.ID = existing.ID
	p.CreatedAt = existing.CreatedAt
	p.UpdatedAt = s.now()
	if err := s.repo.Update(ctx, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// Delete removes a prompt.
func (s *PromptService) Delete(ctx context.Context, id string) error {
	if err := ParseID(id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

// List returns the prompts of a category, or all of them for an empty one.
func (s *PromptService) List(ctx context.Context, category string) ([]domain.Prompt, error) {
	prompts, err := s.repo.List(ctx, strings.TrimSpace(category))
	if err != nil {
		return nil, fmt.Errorf("list prompts: %w", err)
	}
	return prompts, nil
}
