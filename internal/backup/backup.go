// Package backup snapshots every piece of durable state into a single
// versioned JSON document and restores it.
package backup

import (
	"compress/gzip"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/mod/semver"

	"github.com/abhisek/paomind/internal/pao"
	"github.com/abhisek/paomind/internal/store"
)

const (
	// Format identifies paomind backup documents.
	Format = "paomind-backup"

	// Version is the document version written by this build. Readers accept
	// any document with the same major version.
	Version = "v1.1.0"
)

var (
	ErrNotBackup           = errors.New("not a paomind backup")
	ErrIncompatibleVersion = errors.New("incompatible backup version")
	ErrChecksum            = errors.New("backup checksum mismatch")
)

// Snapshot is the backup document.
type Snapshot struct {
	Format         string           `json:"format"`
	Version        string           `json:"version"`
	ID             string           `json:"id"`
	CreatedAt      time.Time        `json:"createdAt"`
	Theme          store.Theme      `json:"theme,omitempty"`
	User           *store.User      `json:"user,omitempty"`
	OnboardingDone bool             `json:"onboardingDone"`
	Items          []pao.CustomItem `json:"items"`
	Checksum       string           `json:"checksum"`
}

// State is the durable state a snapshot is captured from and restored to.
// *store.Store implements it.
type State interface {
	Theme(ctx context.Context) (store.Theme, bool, error)
	SetTheme(ctx context.Context, t store.Theme) error
	User(ctx context.Context) (*store.User, error)
	SetUser(ctx context.Context, u store.User) error
	ClearUser(ctx context.Context) error
	OnboardingDone(ctx context.Context) (bool, error)
	SetOnboardingDone(ctx context.Context, done bool) error
	LoadCustomItems(ctx context.Context) ([]pao.CustomItem, error)
	SaveCustomItems(ctx context.Context, items []pao.CustomItem) error
}

// Capture reads the current state into a new snapshot.
func Capture(ctx context.Context, st State, now time.Time) (*Snapshot, error) {
	snap := &Snapshot{
		Format:    Format,
		Version:   Version,
		ID:        uuid.NewString(),
		CreatedAt: now.UTC(),
	}
	var err error
	if theme, ok, err := st.Theme(ctx); err != nil {
		return nil, fmt.Errorf("read theme: %w", err)
	} else if ok {
		snap.Theme = theme
	}
	if snap.User, err = st.User(ctx); err != nil {
		return nil, fmt.Errorf("read user: %w", err)
	}
	if snap.OnboardingDone, err = st.OnboardingDone(ctx); err != nil {
		return nil, fmt.Errorf("read onboarding flag: %w", err)
	}
	if snap.Items, err = st.LoadCustomItems(ctx); err != nil {
		return nil, fmt.Errorf("read custom items: %w", err)
	}
	if snap.Items == nil {
		snap.Items = []pao.CustomItem{}
	}
	return snap, nil
}

// Restore overwrites the state with the snapshot's contents.
func Restore(ctx context.Context, st State, snap *Snapshot) error {
	if snap.Theme != "" {
		if err := st.SetTheme(ctx, snap.Theme); err != nil {
			return fmt.Errorf("restore theme: %w", err)
		}
	}
	if snap.User != nil {
		if err := st.SetUser(ctx, *snap.User); err != nil {
			return fmt.Errorf("restore user: %w", err)
		}
	} else if err := st.ClearUser(ctx); err != nil {
		return fmt.Errorf("clear user: %w", err)
	}
	if err := st.SetOnboardingDone(ctx, snap.OnboardingDone); err != nil {
		return fmt.Errorf("restore onboarding flag: %w", err)
	}
	if err := st.SaveCustomItems(ctx, snap.Items); err != nil {
		return fmt.Errorf("restore custom items: %w", err)
	}
	return nil
}

func checksum(items []pao.CustomItem) (string, error) {
	data, err := json.Marshal(items)
	if err != nil {
		return "", err
	}
	h := sha256.Sum256(data)
	return hex.EncodeToString(h[:]), nil
}

// Encode writes snap as indented JSON, filling in its checksum.
func Encode(w io.Writer, snap *Snapshot) error {
	sum, err := checksum(snap.Items)
	if err != nil {
		return fmt.Errorf("checksum: %w", err)
	}
	snap.Checksum = sum
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(snap)
}

// Decode reads and verifies a snapshot.
func Decode(r io.Reader) (*Snapshot, error) {
	var snap Snapshot
	if err := json.NewDecoder(r).Decode(&snap); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotBackup, err)
	}
	if snap.Format != Format {
		return nil, ErrNotBackup
	}
	if !semver.IsValid(snap.Version) {
		return nil, fmt.Errorf("%w: %q", ErrIncompatibleVersion, snap.Version)
	}
	if semver.Major(snap.Version) != semver.Major(Version) {
		return nil, fmt.Errorf("%w: %s (this build reads %s.x)", ErrIncompatibleVersion, snap.Version, semver.Major(Version))
	}
	sum, err := checksum(snap.Items)
	if err != nil {
		return nil, fmt.Errorf("checksum: %w", err)
	}
	if sum != snap.Checksum {
		return nil, fmt.Errorf("%w: expected %s, got %s", ErrChecksum, snap.Checksum, sum)
	}
	return &snap, nil
}

// WriteFile writes snap to path atomically. A ".gz" suffix gzips it.
func WriteFile(path string, snap *Snapshot) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".paomind-backup-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	var w io.Writer = tmp
	var gz *gzip.Writer
	if strings.HasSuffix(path, ".gz") {
		gz = gzip.NewWriter(tmp)
		w = gz
	}
	if err := Encode(w, snap); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("encode: %w", err)
	}
	if gz != nil {
		if err := gz.Close(); err != nil {
			_ = tmp.Close()
			return fmt.Errorf("close gzip: %w", err)
		}
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("rename: %w", err)
	}
	return nil
}

// ReadFile reads a snapshot written by WriteFile.
func ReadFile(path string) (*Snapshot, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	var r io.Reader = f
	if strings.HasSuffix(path, ".gz") {
		gz, err := gzip.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("open gzip: %w", err)
		}
		defer func() { _ = gz.Close() }()
		r = gz
	}
	return Decode(r)
}
