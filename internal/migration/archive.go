package migration

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/ColinBurgess/MultiLangContentManager-sub000/internal/domain"
	"github.com/ColinBurgess/MultiLangContentManager-sub000/internal/repository"
)

const archiveTimeLayout = "20060102T150405"

var archiveNamePattern = regexp.MustCompile(`^content_\d{8}T\d{6}_[0-9a-f]{8}\.ndjson$`)

// Archive describes one snapshot of the content collection on disk.
type Archive struct {
	Name      string    `json:"name"`
	Size      int64     `json:"size"`
	CreatedAt time.Time `json:"created_at"`
}

// archiveLine is one record of an archive file. Record holds the record in
// the form its store wrote it.
type archiveLine struct {
	ID     string          `json:"id"`
	Record json.RawMessage `json:"record"`
}

// ArchiveStore keeps NDJSON snapshots of the content collection, one stored
// record per line, until they are rolled back or discarded.
type ArchiveStore struct {
	dir string
	now func() time.Time
}

// NewArchiveStore creates an ArchiveStore rooted at dir.
func NewArchiveStore(dir string) *ArchiveStore {
	return &ArchiveStore{dir: dir, now: time.Now}
}

// Dir returns the archive directory.
func (s *ArchiveStore) Dir() string {
	return s.dir
}

func (s *ArchiveStore) path(name string) (string, error) {
	if !archiveNamePattern.MatchString(name) {
		return "", domain.NewValidationError("name", fmt.Sprintf("%q is not an archive name", name))
	}
	return filepath.Join(s.dir, name), nil
}

// Create snapshots every item of src and returns the archive name with the
// number of items written. The file only appears once it is complete.
func (s *ArchiveStore) Create(ctx context.Context, src repository.ContentStore) (string, int, error) {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", 0, fmt.Errorf("create archive dir: %w", err)
	}

	name := fmt.Sprintf("content_%s_%s.ndjson",
		s.now().UTC().Format(archiveTimeLayout), uuid.New().String()[:8])

	tmp, err := os.CreateTemp(s.dir, ".archive-*")
	if err != nil {
		return "", 0, fmt.Errorf("create archive file: %w", err)
	}
	defer os.Remove(tmp.Name())

	w := bufio.NewWriter(tmp)
	enc := json.NewEncoder(w)
	count := 0
	err = src.StreamRecords(ctx, func(rec repository.ContentRecord) error {
		if len(rec.Raw) == 0 {
			return fmt.Errorf("record %s has no stored form", rec.ID)
		}
		count++
		return enc.Encode(archiveLine{ID: rec.ID, Record: rec.Raw})
	})
	if err == nil {
		err = w.Flush()
	}
	if closeErr := tmp.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		return "", 0, fmt.Errorf("write archive: %w", err)
	}

	if err := os.Rename(tmp.Name(), filepath.Join(s.dir, name)); err != nil {
		return "", 0, fmt.Errorf("publish archive: %w", err)
	}
	return name, count, nil
}

// List returns the archives, newest first.
func (s *ArchiveStore) List() ([]Archive, error) {
	entries, err := os.ReadDir(s.dir)
	if errors.Is(err, fs.ErrNotExist) {
		return []Archive{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read archive dir: %w", err)
	}

	archives := make([]Archive, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || !archiveNamePattern.MatchString(e.Name()) {
			continue
		}
		info, err := e.Info()
		if err != nil {
			return nil, fmt.Errorf("stat archive %s: %w", e.Name(), err)
		}
		a := Archive{Name: e.Name(), Size: info.Size(), CreatedAt: info.ModTime().UTC()}
		if t, err := time.Parse(archiveTimeLayout, e.Name()[len("content_"):len("content_")+len(archiveTimeLayout)]); err == nil {
			a.CreatedAt = t
		}
		archives = append(archives, a)
	}

	sort.Slice(archives, func(i, j int) bool { return archives[i].Name > archives[j].Name })
	return archives, nil
}

// Load reads every record of the named archive.
func (s *ArchiveStore) Load(name string) ([]repository.ContentRecord, error) {
	p, err := s.path(name)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(p)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("archive %s: %w", name, domain.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("open archive: %w", err)
	}
	defer f.Close()

	records := make([]repository.ContentRecord, 0)
	dec := json.NewDecoder(bufio.NewReader(f))
	for {
		var line archiveLine
		if err := dec.Decode(&line); err == io.EOF {
			break
		} else if err != nil {
			return nil, fmt.Errorf("decode archive %s line %d: %w", name, len(records)+1, err)
		}
		records = append(records, repository.ContentRecord{ID: line.ID, Raw: line.Record})
	}
	return records, nil
}

// Discard deletes the named archive.
func (s *ArchiveStore) Discard(name string) error {
	p, err := s.path(name)
	if err != nil {
		return err
	}
	if err := os.Remove(p); errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("archive %s: %w", name, domain.ErrNotFound)
	} else if err != nil {
		return fmt.Errorf("remove archive: %w", err)
	}
	return nil
}
