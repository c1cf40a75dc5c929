// Package store caches the assembled graph-with-warnings in SQLite so
// a later run can skip re-translating every sheet. The cache is
// all-or-nothing: a hit returns the whole graph, a miss triggers a full
// rescan.
package store

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"belsheets/internal/graph"
)

// ErrNoCache is returned by LoadGraph when no graph has been saved yet.
var ErrNoCache = errors.New("store: no cached graph")

const currentSchemaVersion = 1

// Store is the SQLite-backed graph cache.
type Store struct {
	db *sql.DB
}

// Open opens or creates the cache database at path and runs migrations.
// Creates the parent directory (e.g. cache/) if it does not exist.
func Open(path string) (*Store, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("store: create cache dir: %w", err)
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("store: open sqlite: %w", err)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("store: ping sqlite: %w", err)
	}
	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return s, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	var tableCount int
	err := s.db.QueryRow(
		"SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name='schema_version'",
	).Scan(&tableCount)
	if err != nil {
		return fmt.Errorf("store: check schema_version table: %w", err)
	}
	if tableCount == 0 {
		return s.freshInstall()
	}

	var version int
	if err := s.db.QueryRow("SELECT version FROM schema_version").Scan(&version); err != nil {
		return fmt.Errorf("store: read schema version: %w", err)
	}
	if version != currentSchemaVersion {
		return fmt.Errorf("store: unsupported schema version %d", version)
	}
	return nil
}

func (s *Store) freshInstall() error {
	schema := `
CREATE TABLE schema_version (version INTEGER NOT NULL);

CREATE TABLE metadata (
	id      INTEGER PRIMARY KEY CHECK (id = 1),
	name    TEXT NOT NULL,
	version TEXT NOT NULL,
	authors TEXT NOT NULL,
	contact TEXT NOT NULL
);

CREATE TABLE nodes (
	key      TEXT PRIMARY KEY,
	function TEXT NOT NULL
);

CREATE TABLE edges (
	id            INTEGER PRIMARY KEY AUTOINCREMENT,
	subject       TEXT NOT NULL,
	relation      TEXT NOT NULL,
	object        TEXT NOT NULL,
	citation_type TEXT NOT NULL,
	citation_ref  TEXT NOT NULL,
	evidence      TEXT NOT NULL,
	annotations   TEXT
);

CREATE TABLE warnings (
	id     INTEGER PRIMARY KEY AUTOINCREMENT,
	line   INTEGER NOT NULL,
	path   TEXT NOT NULL,
	reason TEXT NOT NULL
);
`
	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("store: create schema: %w", err)
	}
	if _, err := s.db.Exec("INSERT INTO schema_version (version) VALUES (?)", currentSchemaVersion); err != nil {
		return fmt.Errorf("store: stamp schema version: %w", err)
	}
	return nil
}

// SaveGraph replaces the cached graph with g in one transaction.
func (s *Store) SaveGraph(g *graph.Graph) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("store: begin save: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for _, table := range []string{"metadata", "nodes", "edges", "warnings"} {
		if _, err := tx.Exec("DELETE FROM " + table); err != nil {
			return fmt.Errorf("store: clear %s: %w", table, err)
		}
	}

	md := g.Metadata
	_, err = tx.Exec(
		"INSERT INTO metadata (id, name, version, authors, contact) VALUES (1, ?, ?, ?, ?)",
		md.Name, md.Version, md.Authors, md.Contact,
	)
	if err != nil {
		return fmt.Errorf("store: save metadata: %w", err)
	}

	for key, node := range g.Nodes {
		if _, err := tx.Exec("INSERT INTO nodes (key, function) VALUES (?, ?)", key, node.Function); err != nil {
			return fmt.Errorf("store: save node %q: %w", key, err)
		}
	}

	for _, e := range g.Edges {
		annotations, err := json.Marshal(e.Annotations)
		if err != nil {
			return fmt.Errorf("store: marshal annotations: %w", err)
		}
		_, err = tx.Exec(
			`INSERT INTO edges (subject, relation, object, citation_type, citation_ref, evidence, annotations)
			 VALUES (?, ?, ?, ?, ?, ?, ?)`,
			e.Subject, e.Relation, e.Object, e.Citation.Type, e.Citation.Reference, e.Evidence, string(annotations),
		)
		if err != nil {
			return fmt.Errorf("store: save edge: %w", err)
		}
	}

	for _, w := range g.Warnings {
		if _, err := tx.Exec("INSERT INTO warnings (line, path, reason) VALUES (?, ?, ?)", w.Line, w.Path, w.Reason); err != nil {
			return fmt.Errorf("store: save warning: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("store: commit save: %w", err)
	}
	return nil
}

// LoadGraph returns the cached graph, or ErrNoCache when none was saved.
func (s *Store) LoadGraph() (*graph.Graph, error) {
	var md graph.Metadata
	err := s.db.QueryRow("SELECT name, version, authors, contact FROM metadata WHERE id = 1").
		Scan(&md.Name, &md.Version, &md.Authors, &md.Contact)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNoCache
	}
	if err != nil {
		return nil, fmt.Errorf("store: load metadata: %w", err)
	}

	g := graph.New(md)

	rows, err := s.db.Query("SELECT key, function FROM nodes")
	if err != nil {
		return nil, fmt.Errorf("store: load nodes: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var n graph.Node
		if err := rows.Scan(&n.Key, &n.Function); err != nil {
			return nil, fmt.Errorf("store: scan node: %w", err)
		}
		g.Nodes[n.Key] = n
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("store: iterate nodes: %w", err)
	}

	edgeRows, err := s.db.Query(
		"SELECT subject, relation, object, citation_type, citation_ref, evidence, annotations FROM edges ORDER BY id",
	)
	if err != nil {
		return nil, fmt.Errorf("store: load edges: %w", err)
	}
	defer edgeRows.Close()
	for edgeRows.Next() {
		var e graph.Edge
		var annotations sql.NullString
		err := edgeRows.Scan(
			&e.Subject, &e.Relation, &e.Object,
			&e.Citation.Type, &e.Citation.Reference, &e.Evidence, &annotations,
		)
		if err != nil {
			return nil, fmt.Errorf("store: scan edge: %w", err)
		}
		if annotations.Valid && annotations.String != "" && annotations.String != "null" {
			if err := json.Unmarshal([]byte(annotations.String), &e.Annotations); err != nil {
				return nil, fmt.Errorf("store: unmarshal annotations: %w", err)
			}
		}
		g.Edges = append(g.Edges, e)
	}
	if err := edgeRows.Err(); err != nil {
		return nil, fmt.Errorf("store: iterate edges: %w", err)
	}

	warningRows, err := s.db.Query("SELECT line, path, reason FROM warnings ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("store: load warnings: %w", err)
	}
	defer warningRows.Close()
	for warningRows.Next() {
		var w graph.Warning
		if err := warningRows.Scan(&w.Line, &w.Path, &w.Reason); err != nil {
			return nil, fmt.Errorf("store: scan warning: %w", err)
		}
		g.Warnings = append(g.Warnings, w)
	}
	if err := warningRows.Err(); err != nil {
		return nil, fmt.Errorf("store: iterate warnings: %w", err)
	}

	return g, nil
}
