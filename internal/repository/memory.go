package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/ColinBurgess/MultiLangContentManager-sub000/internal/domain"
)

// MemoryContentRepository is an in-process ContentRepository. Records are
// deep-copied on the way in and out.
type MemoryContentRepository struct {
	mu    sync.RWMutex
	items map[string]*domain.ContentItem
}

// NewMemoryContentRepository creates an empty MemoryContentRepository.
func NewMemoryContentRepository() *MemoryContentRepository {
	return &MemoryContentRepository{items: make(map[string]*domain.ContentItem)}
}

func (r *MemoryContentRepository) sorted() []*domain.ContentItem {
	out := make([]*domain.ContentItem, 0, len(r.items))
	for _, it := range r.items {
		out = append(out, it)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out
}

func (r *MemoryContentRepository) Create(_ context.Context, item *domain.ContentItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items[item.ID] = item.Clone()
	return nil
}

func (r *MemoryContentRepository) Get(_ context.Context, id string) (*domain.ContentItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	it, ok := r.items[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return it.Clone(), nil
}

func (r *MemoryContentRepository) Update(_ context.Context, item *domain.ContentItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[item.ID]; !ok {
		return domain.ErrNotFound
	}
	r.items[item.ID] = item.Clone()
	return nil
}

func (r *MemoryContentRepository) Save(_ context.Context, item *domain.ContentItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items[item.ID] = item.Clone()
	return nil
}

func (r *MemoryContentRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.items, id)
	return nil
}

func (r *MemoryContentRepository) List(_ context.Context, filter ContentFilter) ([]domain.ContentItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	q := strings.ToLower(filter.Query)
	out := make([]domain.ContentItem, 0)
	for _, it := range r.sorted() {
		if q != "" &&
			!strings.Contains(strings.ToLower(it.Title), q) &&
			!strings.Contains(strings.ToLower(it.DescriptionEs), q) &&
			!strings.Contains(strings.ToLower(it.DescriptionEn), q) {
			continue
		}
		if filter.Tag != "" && !containsTag(it.Tags, filter.Tag) {
			continue
		}
		out = append(out, *it.Clone())
	}
	return out, nil
}

func containsTag(tags []string, tag string) bool {
	for _, t := range tags {
		if t == tag {
			return true
		}
	}
	return false
}

// StreamAll calls callback on a snapshot so callbacks may write back.
func (r *MemoryContentRepository) StreamAll(ctx context.Context, callback func(domain.ContentItem) error) error {
	r.mu.RLock()
	snapshot := make([]domain.ContentItem, 0, len(r.items))
	for _, it := range r.sorted() {
		snapshot = append(snapshot, *it.Clone())
	}
	r.mu.RUnlock()

	for _, it := range snapshot {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := callback(it); err != nil {
			return err
		}
	}
	return nil
}

// StreamRecords streams a snapshot of every item. The memory store only
// holds ContentItem values, so every record decodes.
func (r *MemoryContentRepository) StreamRecords(ctx context.Context, callback func(ContentRecord) error) error {
	return r.StreamAll(ctx, func(item domain.ContentItem) error {
		raw, err := json.Marshal(&item)
		if err != nil {
			return fmt.Errorf("encode content %s: %w", item.ID, err)
		}
		return callback(ContentRecord{ID: item.ID, Raw: raw, Item: item})
	})
}

// SaveReconciled stores item as a whole; it carries every stored field.
func (r *MemoryContentRepository) SaveReconciled(ctx context.Context, item *domain.ContentItem) error {
	r.mu.RLock()
	_, ok := r.items[item.ID]
	r.mu.RUnlock()
	if !ok {
		return domain.ErrNotFound
	}
	return r.Save(ctx, item)
}

// RestoreRecords replaces every item with the archived records.
func (r *MemoryContentRepository) RestoreRecords(_ context.Context, records []ContentRecord) error {
	next := make(map[string]*domain.ContentItem, len(records))
	for _, rec := range records {
		var item domain.ContentItem
		if err := json.Unmarshal(rec.Raw, &item); err != nil {
			return fmt.Errorf("decode archived content %s: %w", rec.ID, err)
		}
		item.ID = rec.ID
		next[rec.ID] = &item
	}
	r.mu.Lock()
	r.items = next
	r.mu.Unlock()
	return nil
}

// MemoryTaskRepository is an in-process TaskRepository.
type MemoryTaskRepository struct {
	mu    sync.RWMutex
	tasks map[string]*domain.Task
}

// NewMemoryTaskRepository creates an empty MemoryTaskRepository.
func NewMemoryTaskRepository() *MemoryTaskRepository {
	return &MemoryTaskRepository{tasks: make(map[string]*domain.Task)}
}

func (r *MemoryTaskRepository) Create(_ context.Context, task *domain.Task) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.tasks[task.ID] = task.Clone()
	return nil
}

func (r *MemoryTaskRepository) Get(_ context.Context, id string) (*domain.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, ok := r.tasks[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return t.Clone(), nil
}

func (r *MemoryTaskRepository) Update(_ context.Context, task *domain.Task) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.tasks[task.ID]; !ok {
		return domain.ErrNotFound
	}
	r.tasks[task.ID] = task.Clone()
	return nil
}

func (r *MemoryTaskRepository) Upsert(_ context.Context, task *domain.Task) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.tasks[task.ID] = task.Clone()
	return nil
}

func (r *MemoryTaskRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.tasks[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.tasks, id)
	return nil
}

func (r *MemoryTaskRepository) List(_ context.Context) ([]domain.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.Task, 0, len(r.tasks))
	for _, t := range r.tasks {
		out = append(out, *t.Clone())
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}

// MemoryPromptRepository is an in-process PromptRepository.
type MemoryPromptRepository struct {
	mu      sync.RWMutex
	prompts map[string]domain.Prompt
}

// NewMemoryPromptRepository creates an empty MemoryPromptRepository.
func NewMemoryPromptRepository() *MemoryPromptRepository {
	return &MemoryPromptRepository{prompts: make(map[string]domain.Prompt)}
}

func copyPrompt(p domain.Prompt) domain.Prompt {
	if p.Tags != nil {
		p.Tags = append([]string(nil), p.Tags...)
	}
	return p
}

func (r *MemoryPromptRepository) Create(_ context.Context, prompt *domain.Prompt) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.prompts[prompt.ID] = copyPrompt(*prompt)
	return nil
}

func (r *MemoryPromptRepository) Get(_ context.Context, id string) (*domain.Prompt, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.prompts[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	p = copyPrompt(p)
	return &p, nil
}

func (r *MemoryPromptRepository) Update(_ context.Context, prompt *domain.Prompt) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.prompts[prompt.ID]; !ok {
		return domain.ErrNotFound
	}
	r.prompts[prompt.ID] = copyPrompt(*prompt)
	return nil
}

func (r *MemoryPromptRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.prompts[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.prompts, id)
	return nil
}

func (r *MemoryPromptRepository) List(_ context.Context, category string) ([]domain.Prompt, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.Prompt, 0, len(r.prompts))
	for _, p := range r.prompts {
		if category != "" && p.Category != category {
			continue
		}
		out = append(out, copyPrompt(p))
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}

// MemoryPreferencesRepository is an in-process PreferencesRepository.
type MemoryPreferencesRepository struct {
	mu    sync.RWMutex
	prefs *domain.Preferences
}

// NewMemoryPreferencesRepository creates a MemoryPreferencesRepository that
// serves the defaults until the first save.
func NewMemoryPreferencesRepository() *MemoryPreferencesRepository {
	return &MemoryPreferencesRepository{}
}

func copyPreferences(p domain.Preferences) domain.Preferences {
	out := domain.Preferences{
		Settings:  make(map[string]any, len(p.Settings)),
		Cookies:   make(map[string]bool, len(p.Cookies)),
		UpdatedAt: p.UpdatedAt,
	}
	for k, v := range p.Settings {
		out.Settings[k] = v
	}
	for k, v := range p.Cookies {
		out.Cookies[k] = v
	}
	return out
}

func (r *MemoryPreferencesRepository) Get(_ context.Context) (domain.Preferences, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.prefs == nil {
		return domain.DefaultPreferences(), nil
	}
	return copyPreferences(*r.prefs), nil
}

func (r *MemoryPreferencesRepository) Save(_ context.Context, prefs domain.Preferences) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	p := copyPreferences(prefs)
	r.prefs = &p
	return nil
}

// MemoryJobRepository is an in-process RestoreJobRepository.
type MemoryJobRepository struct {
	mu      sync.RWMutex
	jobs    map[string]domain.RestoreJob
	byToken map[string]string
}

// NewMemoryJobRepository creates an empty MemoryJobRepository.
func NewMemoryJobRepository() *MemoryJobRepository {
	return &MemoryJobRepository{
		jobs:    make(map[string]domain.RestoreJob),
		byToken: make(map[string]string),
	}
}

// CreateRestoreJob stores job, or loads the job already holding its
// idempotency token into job.
func (r *MemoryJobRepository) CreateRestoreJob(_ context.Context, job *domain.RestoreJob) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if id, ok := r.byToken[job.IdempotencyToken]; ok {
		*job = copyJob(r.jobs[id])
		return nil
	}
	r.jobs[job.ID] = copyJob(*job)
	r.byToken[job.IdempotencyToken] = job.ID
	return nil
}

func (r *MemoryJobRepository) GetRestoreJob(_ context.Context, id string) (*domain.RestoreJob, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	job, ok := r.jobs[id]
	if !ok {
		return nil, nil
	}
	job = copyJob(job)
	return &job, nil
}

func (r *MemoryJobRepository) GetRestoreJobByIdempotencyToken(_ context.Context, token string) (*domain.RestoreJob, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	id, ok := r.byToken[token]
	if !ok {
		return nil, nil
	}
	job := copyJob(r.jobs[id])
	return &job, nil
}

func (r *MemoryJobRepository) UpdateRestoreJob(_ context.Context, job *domain.RestoreJob) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.jobs[job.ID] = copyJob(*job)
	return nil
}

func copyJob(job domain.RestoreJob) domain.RestoreJob {
	if job.Metadata != nil {
		md := make(map[string]interface{}, len(job.Metadata))
		for k, v := range job.Metadata {
			md[k] = v
		}
		job.Metadata = md
	}
	return job
}
