package classify

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// ErrNoModel reports that no predictor artifact exists for a drug. It is a
// normal condition, distinct from a corrupt artifact.
var ErrNoModel = errors.New("no predictor model for drug")

// ModelLoader resolves a drug name to a trained model. The classifier
// depends only on this interface so tests can substitute a fresh registry
// per case.
type ModelLoader interface {
	Load(drug string) (*Model, error)
}

// Registry lazily loads per-drug model artifacts discovered by naming
// convention ({drug}_predictor.json) under a configured directory. Each
// artifact is read at most once; load failures are cached as a sentinel so
// repeated classification calls never retry an expensive failed load. Safe
// for concurrent use once constructed.
type Registry struct {
	dir string

	mu     sync.Mutex
	loaded map[string]*registryEntry
}

type registryEntry struct {
	model *Model
	err   error
}

// NewRegistry creates a registry rooted at dir. The directory does not
// need to exist; missing artifacts resolve to ErrNoModel per drug.
func NewRegistry(dir string) *Registry {
	return &Registry{
		dir:    dir,
		loaded: make(map[string]*registryEntry),
	}
}

// Load returns the cached model for drug, reading and validating the
// artifact on first access.
func (r *Registry) Load(drug string) (*Model, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if e, ok := r.loaded[drug]; ok {
		return e.model, e.err
	}

	e := &registryEntry{}
	e.model, e.err = r.read(drug)
	r.loaded[drug] = e
	return e.model, e.err
}

func (r *Registry) read(drug string) (*Model, error) {
	path := filepath.Join(r.dir, drug+"_predictor.json")
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNoModel, drug)
		}
		return nil, fmt.Errorf("read model artifact %s: %w", path, err)
	}

	model := new(Model)
	if err := json.Unmarshal(data, model); err != nil {
		return nil, fmt.Errorf("decode model artifact %s: %w", path, err)
	}
	if err := model.Validate(); err != nil {
		return nil, fmt.Errorf("invalid model artifact %s: %w", path, err)
	}
	return model, nil
}
