package tablebase

import (
	"context"
	"sync"

	"github.com/boweiliu/underchex/pkg/board"
	"github.com/google/uuid"
	"github.com/seekerror/logw"
)

// Metadata records generation bookkeeping for one configuration's table
// (spec.md §3 PieceTablebase).
type Metadata struct {
	RunID         string
	PositionCount int
}

// Table is a generated configuration's tablebase: its entries keyed by
// fingerprint+side (board.TablebaseKey), plus generation metadata.
type Table struct {
	Name     string
	Entries  map[string]Entry
	Metadata Metadata
}

// Registry is the process-global tablebase registry (spec.md §5): loads
// are write-once per configuration name and guarded by a single lock.
type Registry struct {
	mu     sync.Mutex
	tables map[string]*Table
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{tables: make(map[string]*Table)}
}

// Lookup returns the loaded table for name, if any.
func (r *Registry) Lookup(name string) (*Table, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	t, ok := r.tables[name]
	return t, ok
}

// Generate runs retrograde analysis for config and installs the result
// under config.Name, unless a table is already loaded under that name
// (write-once). kvk supplies the already-generated KvK table for
// resolving capturing transitions (see Retrograde); pass nil when
// config.Name == "KvK".
func (r *Registry) Generate(ctx context.Context, config Config, kvk map[string]Entry) *Table {
	r.mu.Lock()
	defer r.mu.Unlock()

	if t, ok := r.tables[config.Name]; ok {
		return t
	}

	entries := Retrograde(config, kvk)
	t := &Table{
		Name:    config.Name,
		Entries: entries,
		Metadata: Metadata{
			RunID:         uuid.NewString(),
			PositionCount: len(entries),
		},
	}

	if IsLoneKnight(config.Name) {
		logw.Infof(ctx, "tablebase %v: generated %v positions (expect all draws)", config.Name, len(entries))
	} else {
		logw.Infof(ctx, "tablebase %v: generated %v positions", config.Name, len(entries))
	}

	r.tables[config.Name] = t
	return t
}

var (
	globalRegistry     *Registry
	globalRegistryOnce sync.Once
)

// GlobalRegistry returns the process-wide tablebase registry, seeded
// lazily on first use with the configurations spec.md §4.G names as
// supported: KvK, KQvK, KLvK, KCvK, KNvK. KvK is generated first since
// every other supported configuration's retrograde analysis resolves
// capturing moves through it.
func GlobalRegistry() *Registry {
	globalRegistryOnce.Do(func() {
		globalRegistry = NewRegistry()
		seedDefaultTablebases(context.Background(), globalRegistry)
	})
	return globalRegistry
}

func seedDefaultTablebases(ctx context.Context, r *Registry) {
	kvk := r.Generate(ctx, Config{Name: "KvK"}, nil)

	for _, spec := range []PieceSpec{
		{Type: board.Queen},
		{Type: board.Lance},
		{Type: board.Chariot},
		{Type: board.Knight},
	} {
		name := "K" + string(abbreviation(spec.Type)) + "vK"
		r.Generate(ctx, Config{StrongerSide: []PieceSpec{spec}, Name: name}, kvk.Entries)
	}
}
