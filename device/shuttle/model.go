package shuttle

import (
	"sort"
	"sync"
)

// Model describes one supported Contour device variant.
type Model struct {
	Name       string
	VendorID   uint16
	ProductID  uint16
	ReportSize int
}

var (
	modelRegistry   = make(map[string]Model)
	modelRegistryMu sync.RWMutex
)

// RegisterModel registers a device model for lookup by name. Names are
// case-insensitive and stored lowercased.
func RegisterModel(m Model) {
	modelRegistryMu.Lock()
	defer modelRegistryMu.Unlock()
	modelRegistry[toLower(m.Name)] = m
}

// LookupModel retrieves a registered model by name (case-insensitive).
func LookupModel(name string) (Model, bool) {
	modelRegistryMu.RLock()
	defer modelRegistryMu.RUnlock()
	m, ok := modelRegistry[toLower(name)]
	return m, ok
}

// Models returns all registered models sorted by name.
func Models() []Model {
	modelRegistryMu.RLock()
	defer modelRegistryMu.RUnlock()
	out := make([]Model, 0, len(modelRegistry))
	for _, m := range modelRegistry {
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// MatchModel returns the registered model with the given USB identifiers.
func MatchModel(vendor, product uint16) (Model, bool) {
	modelRegistryMu.RLock()
	defer modelRegistryMu.RUnlock()
	for _, m := range modelRegistry {
		if m.VendorID == vendor && m.ProductID == product {
			return m, true
		}
	}
	return Model{}, false
}

func toLower(s string) string {
	b := []byte(s)
	for i := range b {
		if b[i] >= 'A' && b[i] <= 'Z' {
			b[i] += 'a' - 'A'
		}
	}
	return string(b)
}

func init() {
	RegisterModel(Model{Name: "shuttlexpress", VendorID: VendorID, ProductID: ProductShuttleXpress, ReportSize: ReportSize})
	RegisterModel(Model{Name: "shuttlepro", VendorID: VendorID, ProductID: ProductShuttlePro, ReportSize: ReportSize})
}
