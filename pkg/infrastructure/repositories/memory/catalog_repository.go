package memory

import "stockpile/pkg/supply"

// CatalogRepository holds recommended item definitions and serves the
// effective catalog: the entries that are not disabled by the user.
// Disabling lives here, at the repository level; disabled entries
// never reach the calculation engine.
type CatalogRepository struct {
	definitions []*supply.RecommendedItemDefinition
	disabled    map[supply.ItemRef]bool
}

// NewCatalogRepository creates an empty in-memory catalog repository
func NewCatalogRepository() *CatalogRepository {
	return &CatalogRepository{
		disabled: make(map[supply.ItemRef]bool),
	}
}

// Add stores a definition
func (r *CatalogRepository) Add(def *supply.RecommendedItemDefinition) {
	r.definitions = append(r.definitions, def)
}

// Disable removes a definition from the effective catalog without
// deleting it
func (r *CatalogRepository) Disable(id supply.ItemRef) {
	r.disabled[id] = true
}

// Enable restores a previously disabled definition
func (r *CatalogRepository) Enable(id supply.ItemRef) {
	delete(r.disabled, id)
}

// Effective returns the definitions that are currently enabled, in
// insertion order
func (r *CatalogRepository) Effective() []*supply.RecommendedItemDefinition {
	var defs []*supply.RecommendedItemDefinition
	for _, def := range r.definitions {
		if !r.disabled[def.ID] {
			defs = append(defs, def)
		}
	}
	return defs
}
