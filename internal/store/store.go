package store

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/mateusdtakayama/meet-transcript/internal/domain/meeting"
)

// Artifact file names within a meeting directory.
const (
	ArtifactAudio      = "audio.wav"
	ArtifactAudioTemp  = "audio_temp.wav"
	ArtifactTranscript = "transcription.txt"
	ArtifactTitle      = "title.txt"
	ArtifactSummary    = "summary.txt"
)

// Store is a filesystem-backed table of meetings, one directory per
// record, keyed by timestamp identifier.
type Store struct {
	root string
}

// New opens a store rooted at dir, creating it if necessary.
func New(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating meetings directory: %w", err)
	}
	return &Store{root: dir}, nil
}

// Dir returns the directory holding the record's artifacts.
func (s *Store) Dir(id string) string {
	return filepath.Join(s.root, id)
}

// ArtifactPath returns the path of the named artifact within a record.
func (s *Store) ArtifactPath(id, name string) string {
	return filepath.Join(s.root, id, name)
}

// Create makes a new, empty record directory. It fails if the identifier
// already exists; a record is never silently overwritten.
func (s *Store) Create(id string) error {
	if err := os.Mkdir(s.Dir(id), 0o755); err != nil {
		if os.IsExist(err) {
			return fmt.Errorf("meeting %s already exists", id)
		}
		return fmt.Errorf("creating meeting directory: %w", err)
	}
	return nil
}

// Get loads a record by identifier. An unknown identifier is an error.
func (s *Store) Get(id string) (meeting.Record, error) {
	startedAt, err := meeting.ParseID(id)
	if err != nil {
		return meeting.Record{}, err
	}
	info, err := os.Stat(s.Dir(id))
	if err != nil || !info.IsDir() {
		return meeting.Record{}, fmt.Errorf("meeting %s not found", id)
	}
	title, err := s.ReadArtifact(id, ArtifactTitle)
	if err != nil {
		return meeting.Record{}, err
	}
	return meeting.Record{
		ID:        id,
		Dir:       s.Dir(id),
		StartedAt: startedAt,
		Title:     strings.TrimSpace(title),
	}, nil
}

// WriteArtifact overwrites the named artifact's content entirely.
func (s *Store) WriteArtifact(id, name, content string) error {
	if err := os.WriteFile(s.ArtifactPath(id, name), []byte(content), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", name, err)
	}
	return nil
}

// ReadArtifact returns the artifact's content. A missing artifact yields
// an empty string, not an error.
func (s *Store) ReadArtifact(id, name string) (string, error) {
	data, err := os.ReadFile(s.ArtifactPath(id, name))
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", fmt.Errorf("reading %s: %w", name, err)
	}
	return string(data), nil
}

// HasArtifact reports whether the named artifact has been written.
func (s *Store) HasArtifact(id, name string) bool {
	_, err := os.Stat(s.ArtifactPath(id, name))
	return err == nil
}

// SetTitle stores the record's title. A title is set at most once.
func (s *Store) SetTitle(id, title string) error {
	if _, err := s.Get(id); err != nil {
		return err
	}
	if s.HasArtifact(id, ArtifactTitle) {
		return fmt.Errorf("meeting %s already has a title", id)
	}
	return s.WriteArtifact(id, ArtifactTitle, title)
}

// List returns all records sorted by identifier descending (most recent
// first). Directories that don't parse as identifiers are skipped.
func (s *Store) List() ([]meeting.Record, error) {
	entries, err := os.ReadDir(s.root)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading meetings directory: %w", err)
	}

	var records []meeting.Record
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		rec, err := s.Get(e.Name())
		if err != nil {
			continue
		}
		records = append(records, rec)
	}

	sort.Slice(records, func(i, j int) bool {
		return records[i].ID > records[j].ID
	})
	return records, nil
}
