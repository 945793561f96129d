package dataset

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"

	"github.com/helioview/helioview/pkg/types"
	"github.com/levenlabs/go-lflag"
)

// Store resolves scenario files against the data directory and memoizes
// normalized tables by path. The source files are static, so there is no
// invalidation.
type Store struct {
	mu      sync.Mutex
	tables  map[string]Table
	dataDir string
	catalog types.Catalog
}

// NewStore creates a Store over the given data directory and catalog.
// Primarily used for testing; production code goes through Configured.
func NewStore(dataDir string, catalog types.Catalog) *Store {
	return &Store{
		tables:  make(map[string]Table),
		dataDir: dataDir,
		catalog: catalog,
	}
}

// Configured sets up the Store based on flags. It panics during flag
// processing when the catalog is unusable, matching how the rest of the
// system treats unrecoverable configuration.
func Configured() *Store {
	s := &Store{tables: make(map[string]Table)}

	dataDir := lflag.String("data-dir", ".", "Directory containing the simulation CSV files")
	catalogPath := lflag.String("catalog", "", "Path to a YAML scenario catalog (empty uses the built-in catalog)")

	lflag.Do(func() {
		s.dataDir = *dataDir
		if *catalogPath != "" {
			c, err := LoadCatalog(*catalogPath)
			if err != nil {
				panic(fmt.Sprintf("catalog load failed: %v", err))
			}
			s.catalog = c
		} else {
			s.catalog = DefaultCatalog()
		}
	})

	return s
}

// Catalog returns the scenario catalog.
func (s *Store) Catalog() types.Catalog {
	return s.catalog
}

// DiagramPath returns the resolved path of the model diagram, or "" when the
// catalog has none.
func (s *Store) DiagramPath() string {
	if s.catalog.DiagramPath == "" {
		return ""
	}
	return s.resolve(s.catalog.DiagramPath)
}

// Table returns the normalized table for a catalog-relative path, loading it
// on first use. Missing and unparseable results are memoized too: the files
// are static, so retrying cannot change the outcome.
func (s *Store) Table(ctx context.Context, relPath string) Table {
	if relPath == "" {
		return Table{state: types.StateMissing}
	}
	path := s.resolve(relPath)

	s.mu.Lock()
	defer s.mu.Unlock()
	if t, ok := s.tables[path]; ok {
		return t
	}
	t := Load(ctx, path)
	s.tables[path] = t
	return t
}

// ScenarioTables loads all three tables for a scenario.
func (s *Store) ScenarioTables(ctx context.Context, sc types.Scenario) (tracking, fixed, weather Table) {
	tracking = s.Table(ctx, sc.TrackingPath)
	fixed = s.Table(ctx, sc.FixedPath)
	weather = s.Table(ctx, sc.WeatherPath)
	return tracking, fixed, weather
}

func (s *Store) resolve(relPath string) string {
	if filepath.IsAbs(relPath) {
		return relPath
	}
	return filepath.Join(s.dataDir, relPath)
}
