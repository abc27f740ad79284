// Package feedstock holds the static substrate and mixing-ratio tables
// the rest of the model reads. The tables are built once at startup and
// never mutated afterwards, so they are safe for concurrent readers.
package feedstock

import (
	"fmt"

	"github.com/ecotools/biodigest/core/model"
)

// Table is a read-only lookup over substrates and named mixing ratios.
type Table struct {
	substrates map[string]model.Substrate
	ratios     map[string]model.Ratio
	ratioOrder []string
}

// New builds a Table from the given entries. Ratio listing order follows
// the order of the ratios slice. Every entry is validated up front so a
// bad table fails at startup rather than mid-computation.
func New(substrates []model.Substrate, ratios []model.Ratio) (*Table, error) {
	t := &Table{
		substrates: make(map[string]model.Substrate, len(substrates)),
		ratios:     make(map[string]model.Ratio, len(ratios)),
		ratioOrder: make([]string, 0, len(ratios)),
	}
	for _, s := range substrates {
		if err := s.Validate(); err != nil {
			return nil, err
		}
		if _, ok := t.substrates[s.ID]; ok {
			return nil, fmt.Errorf("duplicate substrate %s: %w", s.ID, model.ErrInvalidParameter)
		}
		t.substrates[s.ID] = s
	}
	for _, r := range ratios {
		if err := r.Validate(); err != nil {
			return nil, err
		}
		if _, ok := t.ratios[r.ID]; ok {
			return nil, fmt.Errorf("duplicate ratio %s: %w", r.ID, model.ErrInvalidParameter)
		}
		t.ratios[r.ID] = r
		t.ratioOrder = append(t.ratioOrder, r.ID)
	}
	return t, nil
}

// Substrate resolves a substrate by identifier.
func (t *Table) Substrate(id string) (model.Substrate, error) {
	s, ok := t.substrates[id]
	if !ok {
		return model.Substrate{}, fmt.Errorf("unknown substrate %q: %w", id, model.ErrNotFound)
	}
	return s, nil
}

// Ratio resolves a named mixing ratio by identifier.
func (t *Table) Ratio(id string) (model.Ratio, error) {
	r, ok := t.ratios[id]
	if !ok {
		return model.Ratio{}, fmt.Errorf("unknown ratio %q: %w", id, model.ErrNotFound)
	}
	return r, nil
}

// RatioIDs lists every ratio identifier in table order.
func (t *Table) RatioIDs() []string {
	ids := make([]string, len(t.ratioOrder))
	copy(ids, t.ratioOrder)
	return ids
}
