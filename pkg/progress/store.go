// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package progress

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/ai102-labs/command-center/pkg/defaults"
	cnserrors "github.com/ai102-labs/command-center/pkg/errors"
	"github.com/ai102-labs/command-center/pkg/header"
)

// MemoryPath opens a private in-memory database.
const MemoryPath = ":memory:"

const schema = `
CREATE TABLE IF NOT EXISTS completed_layers (
	lab          TEXT    NOT NULL,
	layer        INTEGER NOT NULL,
	completed_at TEXT    NOT NULL,
	PRIMARY KEY (lab, layer)
)`

// LabProgress lists a lab's completed layers in ascending order.
type LabProgress struct {
	CompletedLayers []int `json:"completed_layers" yaml:"completed_layers"`
}

// Progress is the completion state of every lab with at least one completed
// layer.
type Progress struct {
	header.Header `json:",inline" yaml:",inline"`

	Labs map[string]LabProgress `json:"labs" yaml:"labs"`
}

// TableHeader implements serializer.Tabular.
func (p *Progress) TableHeader() []string {
	return []string{"LAB", "COMPLETED"}
}

// TableRows implements serializer.Tabular.
func (p *Progress) TableRows() [][]string {
	ids := make([]string, 0, len(p.Labs))
	for id := range p.Labs {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	rows := make([][]string, 0, len(ids))
	for _, id := range ids {
		layers := p.Labs[id].CompletedLayers
		done := make([]string, len(layers))
		for i, l := range layers {
			done[i] = strconv.Itoa(l)
		}
		rows = append(rows, []string{id, strings.Join(done, ",")})
	}
	return rows
}

// Store persists progress in SQLite.
type Store struct {
	mu   sync.Mutex
	db   *sql.DB
	path string
}

// Open opens or creates the database at path. Parent directories are
// created as needed.
func Open(path string) (*Store, error) {
	if path == "" {
		return nil, cnserrors.New(cnserrors.ErrCodeInvalidRequest, "progress database path is empty")
	}

	dsn := path
	if path != MemoryPath {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("failed to create progress directory: %w", err)
		}
		dsn = path + "?_pragma=journal_mode(WAL)"
		dsn += fmt.Sprintf("&_pragma=busy_timeout(%d)", defaults.StoreBusyTimeout.Milliseconds())
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open progress database: %w", err)
	}
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(context.Background(), schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize progress schema: %w", err)
	}

	return &Store{db: db, path: path}, nil
}

// Path returns the database location.
func (s *Store) Path() string {
	return s.path
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Validate checks a lab id and layer number.
func Validate(lab string, layer int) error {
	if n := utf8.RuneCountInString(lab); n < 1 || n > defaults.MaxLabIDLength {
		return cnserrors.NewWithContext(cnserrors.ErrCodeInvalidRequest,
			fmt.Sprintf("lab must be 1 to %d characters", defaults.MaxLabIDLength),
			map[string]any{"lab": lab})
	}
	if layer < 1 || layer > defaults.MaxLayerNumber {
		return cnserrors.NewWithContext(cnserrors.ErrCodeInvalidRequest,
			fmt.Sprintf("layer must be between 1 and %d", defaults.MaxLayerNumber),
			map[string]any{"layer": layer})
	}
	return nil
}

// Get returns all recorded progress.
func (s *Store) Get(ctx context.Context) (*Progress, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rows, err := s.db.QueryContext(ctx, `SELECT lab, layer FROM completed_layers ORDER BY lab, layer`)
	if err != nil {
		return nil, fmt.Errorf("failed to query progress: %w", err)
	}
	defer rows.Close()

	p := &Progress{Labs: map[string]LabProgress{}}
	for rows.Next() {
		var lab string
		var layer int
		if err := rows.Scan(&lab, &layer); err != nil {
			return nil, fmt.Errorf("failed to scan progress: %w", err)
		}
		lp := p.Labs[lab]
		lp.CompletedLayers = append(lp.CompletedLayers, layer)
		p.Labs[lab] = lp
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read progress: %w", err)
	}
	return p, nil
}

// Complete marks layer of lab as done and returns the lab's completed layers.
func (s *Store) Complete(ctx context.Context, lab string, layer int) ([]int, error) {
	if err := Validate(lab, layer); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.db.ExecContext(ctx,
		`INSERT OR IGNORE INTO completed_layers (lab, layer, completed_at) VALUES (?, ?, ?)`,
		lab, layer, time.Now().UTC().Format(time.RFC3339)); err != nil {
		return nil, fmt.Errorf("failed to record progress: %w", err)
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT layer FROM completed_layers WHERE lab = ? ORDER BY layer`, lab)
	if err != nil {
		return nil, fmt.Errorf("failed to query progress: %w", err)
	}
	defer rows.Close()

	layers := []int{}
	for rows.Next() {
		var l int
		if err := rows.Scan(&l); err != nil {
			return nil, fmt.Errorf("failed to scan progress: %w", err)
		}
		layers = append(layers, l)
	}
	return layers, rows.Err()
}

// Reset deletes all progress.
func (s *Store) Reset(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.db.ExecContext(ctx, `DELETE FROM completed_layers`); err != nil {
		return fmt.Errorf("failed to reset progress: %w", err)
	}
	return nil
}
