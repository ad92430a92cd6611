// Package catalog loads the static site catalog and serves read-only lookups.
package catalog

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/kailas-cloud/dunerides/internal/domain"
	domcat "github.com/kailas-cloud/dunerides/internal/domain/catalog"
)

//go:embed default.yaml
var defaultCatalog []byte

// Repo serves a catalog loaded once at startup. Safe for concurrent use
// since nothing is mutated after Load returns.
type Repo struct {
	catalog domcat.Catalog
}

// New wraps an already-built catalog.
func New(c domcat.Catalog) *Repo {
	return &Repo{catalog: c}
}

// Load reads the catalog YAML at path. An empty path loads the built-in catalog.
func Load(path string) (*Repo, error) {
	data := defaultCatalog
	if path != "" {
		var err error
		data, err = os.ReadFile(filepath.Clean(path))
		if err != nil {
			return nil, fmt.Errorf("read catalog %s: %w", path, err)
		}
	}

	c, err := Decode(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	return New(c), nil
}

// Decode parses catalog YAML. Unknown keys are rejected so typos surface at startup.
func Decode(r io.Reader) (domcat.Catalog, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var f fileRow
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return domcat.Catalog{}, fmt.Errorf("%w: parse: %w", domain.ErrInvalidCatalog, err)
	}

	c, err := f.toDomain()
	if err != nil {
		return domcat.Catalog{}, fmt.Errorf("build catalog: %w", err)
	}
	return c, nil
}

// Catalog returns the underlying catalog.
func (r *Repo) Catalog() domcat.Catalog { return r.catalog }

// Vehicles returns all vehicles in catalog order.
func (r *Repo) Vehicles() []domcat.Vehicle { return r.catalog.Vehicles() }

// Tours returns all tours in catalog order.
func (r *Repo) Tours() []domcat.Tour { return r.catalog.Tours() }

// Posts returns all content posts in catalog order.
func (r *Repo) Posts() []domcat.Post { return r.catalog.Posts() }

// Vehicle looks up a vehicle by id.
func (r *Repo) Vehicle(id string) (domcat.Vehicle, error) {
	for _, v := range r.catalog.Vehicles() {
		if v.ID() == id {
			return v, nil
		}
	}
	return domcat.Vehicle{}, fmt.Errorf("vehicle %q: %w", id, domain.ErrNotFound)
}

// Tour looks up a tour by id.
func (r *Repo) Tour(id string) (domcat.Tour, error) {
	for _, t := range r.catalog.Tours() {
		if t.ID() == id {
			return t, nil
		}
	}
	return domcat.Tour{}, fmt.Errorf("tour %q: %w", id, domain.ErrNotFound)
}
