package backup

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"
)

// Snapshot is a point-in-time copy of the hub's persisted documents,
// keyed by storage key. Entries hold the raw JSON exactly as stored.
type Snapshot struct {
	Version   string                     `json:"version"`
	Timestamp time.Time                  `json:"timestamp"`
	Entries   map[string]json.RawMessage `json:"entries"`
}

// Storage abstracts where snapshot archives live.
type Storage interface {
	Save(ctx context.Context, name string, data io.Reader) error
	Load(ctx context.Context, name string) (io.ReadCloser, error)
	List(ctx context.Context, prefix string) ([]string, error)
	Delete(ctx context.Context, name string) error
}

// Service writes and reads snapshot archives.
type Service struct {
	storage Storage
	version string
}

func NewService(storage Storage, version string) *Service {
	return &Service{
		storage: storage,
		version: version,
	}
}

// Create archives the snapshot and returns the generated archive name.
func (s *Service) Create(ctx context.Context, snapshot *Snapshot) (string, error) {
	snapshot.Version = s.version
	snapshot.Timestamp = time.Now()

	data, err := json.Marshal(snapshot)
	if err != nil {
		return "", fmt.Errorf("failed to marshal snapshot: %w", err)
	}

	name := fmt.Sprintf("backup-%s.json", snapshot.Timestamp.Format("20060102-150405"))
	if err := s.storage.Save(ctx, name, bytes.NewReader(data)); err != nil {
		return "", fmt.Errorf("failed to save snapshot: %w", err)
	}

	return name, nil
}

// Load reads a snapshot archive back.
func (s *Service) Load(ctx context.Context, name string) (*Snapshot, error) {
	reader, err := s.storage.Load(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("failed to load snapshot: %w", err)
	}
	defer reader.Close()

	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot: %w", err)
	}

	var snapshot Snapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return nil, fmt.Errorf("failed to unmarshal snapshot: %w", err)
	}
	if snapshot.Version == "" {
		return nil, fmt.Errorf("invalid snapshot: missing version")
	}

	return &snapshot, nil
}

// List names all stored archives, oldest naming first.
func (s *Service) List(ctx context.Context) ([]string, error) {
	return s.storage.List(ctx, "backup-")
}

func (s *Service) Delete(ctx context.Context, name string) error {
	return s.storage.Delete(ctx, name)
}
