package catalog

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"

	"github.com/osse101/RaidCompanion_Go/internal/domain"
	"github.com/osse101/RaidCompanion_Go/internal/repository"
	"github.com/osse101/RaidCompanion_Go/internal/validation"
)

// ErrInvalidCatalog is returned when catalog files fail structural validation
var ErrInvalidCatalog = errors.New("invalid catalog")

// Collections lists the catalog collections in load order
var Collections = []string{
	domain.CollectionItems,
	domain.CollectionQuests,
	domain.CollectionWorkstations,
	domain.CollectionProjects,
}

// Bundle is a parsed set of catalog files
type Bundle struct {
	Items        []domain.Item
	Quests       []domain.Quest
	Workstations []domain.Workstation
	Projects     []domain.Project

	// Hashes maps collection -> sha256 of the source file
	Hashes map[string]string
}

// Catalog builds an indexed snapshot of the bundle
func (b *Bundle) Catalog() *domain.Catalog {
	c := domain.NewCatalog(b.Items, b.Quests, b.Workstations, b.Projects)
	c.Version = b.Version()
	return c
}

// Version combines the file hashes into one content version
func (b *Bundle) Version() string {
	h := sha256.New()
	for _, collection := range Collections {
		h.Write([]byte(collection + "=" + b.Hashes[collection] + ";"))
	}
	return hex.EncodeToString(h.Sum(nil))[:16]
}

// Bundle also serves as a repository.CatalogReader for running without a database.

func (b *Bundle) GetAllItems(context.Context) ([]domain.Item, error) { return b.Items, nil }

func (b *Bundle) GetAllQuests(context.Context) ([]domain.Quest, error) { return b.Quests, nil }

func (b *Bundle) GetAllWorkstations(context.Context) ([]domain.Workstation, error) {
	return b.Workstations, nil
}

func (b *Bundle) GetAllProjects(context.Context) ([]domain.Project, error) { return b.Projects, nil }

// Loader handles loading, validating and syncing catalog files
type Loader interface {
	Load(files fs.FS) (*Bundle, error)
	Validate(b *Bundle) (warnings []string, err error)
	SyncToDatabase(ctx context.Context, b *Bundle, repo repository.Catalog) (*SyncResult, error)
}

type loader struct {
	schemaValidator validation.SchemaValidator
}

// NewLoader creates a Loader validating files against the schemas in schemas
func NewLoader(schemas fs.FS) Loader {
	return &loader{
		schemaValidator: validation.NewSchemaValidator(schemas),
	}
}

// Load reads every collection file from files, validating each against its schema
func (l *loader) Load(files fs.FS) (*Bundle, error) {
	b := &Bundle{Hashes: make(map[string]string, len(Collections))}

	targets := map[string]any{
		domain.CollectionItems:        &b.Items,
		domain.CollectionQuests:       &b.Quests,
		domain.CollectionWorkstations: &b.Workstations,
		domain.CollectionProjects:     &b.Projects,
	}

	for _, collection := range Collections {
		hash, err := l.loadCollection(files, collection, targets[collection])
		if err != nil {
			return nil, err
		}
		b.Hashes[collection] = hash
	}
	return b, nil
}

func (l *loader) loadCollection(files fs.FS, collection string, target any) (string, error) {
	name := fileName(collection)
	data, err := fs.ReadFile(files, name)
	if err != nil {
		return "", fmt.Errorf(ErrMsgReadFileFailed, name, err)
	}

	if err := l.schemaValidator.ValidateBytes(data, validation.SchemaName(collection)); err != nil {
		return "", fmt.Errorf(ErrMsgSchemaFailed, name, err)
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(data, &envelope); err != nil {
		return "", fmt.Errorf(ErrMsgParseFileFailed, name, err)
	}
	raw, ok := envelope[collection]
	if !ok {
		return "", fmt.Errorf(ErrMsgMissingKey, ErrInvalidCatalog, name, collection)
	}
	if err := json.Unmarshal(raw, target); err != nil {
		return "", fmt.Errorf(ErrMsgParseFileFailed, name, err)
	}

	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:]), nil
}
