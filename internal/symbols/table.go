package symbols

import (
	"fmt"
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/osse101/SpinForge_Go/internal/domain"
	"github.com/osse101/SpinForge_Go/internal/utils"
)

// Table is the immutable symbol catalog with derived reel weights.
// Safe for concurrent use once built.
type Table struct {
	defs     []domain.SymbolDefinition
	byID     map[string]domain.SymbolDefinition
	weights  []float64
	regular  []domain.SymbolDefinition
	wildID   string
	scatter  string
	maxValue float64
}

// NewTable validates defs and derives missing reel weights.
// A regular symbol without an explicit weight gets maxValue / value so cheap
// symbols land far more often than valuable ones. Wild and scatter symbols
// need an explicit weight.
func NewTable(defs []domain.SymbolDefinition) (*Table, error) {
	if len(defs) == 0 {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidConfiguration, ErrMsgEmptyTable)
	}

	t := &Table{byID: make(map[string]domain.SymbolDefinition, len(defs))}
	for _, d := range defs {
		if !d.IsSpecial() && d.PayoutMultiplier > t.maxValue {
			t.maxValue = d.PayoutMultiplier
		}
	}

	title := cases.Title(language.English)
	for _, d := range defs {
		if d.ID == "" {
			return nil, fmt.Errorf("%w: %s", domain.ErrInvalidConfiguration, ErrMsgMissingID)
		}
		if _, dup := t.byID[d.ID]; dup {
			return nil, fmt.Errorf("%w: %s %q", domain.ErrInvalidConfiguration, ErrMsgDuplicateSymbol, d.ID)
		}
		if d.Label == "" {
			d.Label = title.String(strings.ReplaceAll(d.ID, "_", " "))
		}

		switch {
		case d.IsSpecial():
			if d.ReelWeight <= 0 {
				return nil, fmt.Errorf("%w: %s %q", domain.ErrInvalidConfiguration, ErrMsgSpecialWeight, d.ID)
			}
			d.PayoutMultiplier = 0
			if d.IsWild() && t.wildID == "" {
				t.wildID = d.ID
			}
			if d.IsScatter() && t.scatter == "" {
				t.scatter = d.ID
			}
		default:
			if d.PayoutMultiplier <= 0 {
				return nil, fmt.Errorf("%w: %s %q", domain.ErrInvalidConfiguration, ErrMsgRegularValue, d.ID)
			}
			if d.ReelWeight <= 0 {
				d.ReelWeight = t.maxValue / d.PayoutMultiplier
			}
			t.regular = append(t.regular, d)
		}

		t.defs = append(t.defs, d)
		t.weights = append(t.weights, d.ReelWeight)
		t.byID[d.ID] = d
	}

	if len(t.regular) == 0 {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidConfiguration, ErrMsgNoRegular)
	}
	return t, nil
}

// Get looks a symbol up by ID.
func (t *Table) Get(id string) (domain.SymbolDefinition, bool) {
	d, ok := t.byID[id]
	return d, ok
}

// All returns every symbol in catalog order.
func (t *Table) All() []domain.SymbolDefinition {
	return append([]domain.SymbolDefinition(nil), t.defs...)
}

// Regular returns the paying symbols in catalog order.
func (t *Table) Regular() []domain.SymbolDefinition {
	return append([]domain.SymbolDefinition(nil), t.regular...)
}

// RegularByValue returns the paying symbols sorted by ascending multiplier.
func (t *Table) RegularByValue() []domain.SymbolDefinition {
	out := t.Regular()
	sort.SliceStable(out, func(i, j int) bool { return out[i].PayoutMultiplier < out[j].PayoutMultiplier })
	return out
}

// Multiplier returns the base payout multiplier, 0 for specials and unknown IDs.
func (t *Table) Multiplier(id string) float64 {
	return t.byID[id].PayoutMultiplier
}

// Weight returns the effective reel weight.
func (t *Table) Weight(id string) float64 {
	return t.byID[id].ReelWeight
}

// IsWild reports whether id is a wild symbol.
func (t *Table) IsWild(id string) bool {
	d, ok := t.byID[id]
	return ok && d.IsWild()
}

// IsScatter reports whether id is a scatter symbol.
func (t *Table) IsScatter(id string) bool {
	d, ok := t.byID[id]
	return ok && d.IsScatter()
}

// IsSpecial reports whether id is wild or scatter.
func (t *Table) IsSpecial(id string) bool {
	return t.IsWild(id) || t.IsScatter(id)
}

// WildID returns the first wild symbol, or "" when the catalog has none.
func (t *Table) WildID() string { return t.wildID }

// ScatterID returns the first scatter symbol, or "" when the catalog has none.
func (t *Table) ScatterID() string { return t.scatter }

// MaxValue is the largest regular payout multiplier.
func (t *Table) MaxValue() float64 { return t.maxValue }

// Sample draws one symbol ID by reel weight.
func (t *Table) Sample(src utils.Source) string {
	return t.defs[utils.WeightedIndex(src, t.weights)].ID
}
