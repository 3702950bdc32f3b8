package entitlement

import (
	"bytes"
	_ "embed"
	"errors"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed plans.yaml
var defaultPlans []byte

type catalogFile struct {
	Plans []Plan `yaml:"plans"`
}

// LoadCatalog decodes a YAML plan list and validates it.
func LoadCatalog(r io.Reader) (*Catalog, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var file catalogFile
	if err := dec.Decode(&file); err != nil {
		return nil, errors.Join(ErrFailedToLoadPlans, err)
	}
	return NewCatalog(file.Plans...)
}

// LoadCatalogFile reads a catalog from path.
func LoadCatalogFile(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Join(ErrFailedToLoadPlans, err)
	}
	defer f.Close()
	return LoadCatalog(f)
}

// DefaultCatalog returns the built-in Basic and Pro plans.
// Panics if the embedded catalog is broken.
func DefaultCatalog() *Catalog {
	c, err := LoadCatalog(bytes.NewReader(defaultPlans))
	if err != nil {
		panic(err)
	}
	return c
}
