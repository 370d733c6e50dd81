// Package params holds the shared parameter state linking the network
// listener to the render loop.
package params

import "sync"

// Overlay binds one external parameter name to the image layers it toggles,
// in draw order.
type Overlay struct {
	Name   string
	Layers []string
}

// Registry lists every parameter the Pure Data patch may address. The slice
// order is the compositing order for active overlays.
var Registry = []Overlay{
	{Name: "notes", Layers: []string{"VisualDot.png", "VisualLine.png"}},
	{Name: "beat", Layers: []string{"SoundDot.png", "SoundLine.png"}},
	{Name: "drum", Layers: []string{"SmellDot.png", "SmellLine.png"}},
	{Name: "drumBeat", Layers: []string{"MindDot.png", "MindLine.png"}},
	{Name: "ambient", Layers: []string{"TasteDot.png", "TasteLine.png"}},
	{Name: "rythmn", Layers: []string{"TouchDot.png", "TouchLine.png", "GeneralLine.png"}},
}

// Table maps parameter names to their active flags. The ingest service is the
// only writer; the render loop reads one Snapshot per frame.
type Table struct {
	mu    sync.RWMutex
	state map[string]bool
	order []string
}

// NewTable seeds a table with every registered parameter, all inactive.
func NewTable() *Table {
	t := &Table{state: make(map[string]bool, len(Registry))}
	for _, ov := range Registry {
		t.state[ov.Name] = false
		t.order = append(t.order, ov.Name)
	}
	return t
}

// Set flips a parameter's flag. It reports false when name is not registered,
// in which case the table is untouched.
func (t *Table) Set(name string, active bool) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, ok := t.state[name]; !ok {
		return false
	}
	t.state[name] = active
	return true
}

// Snapshot returns a consistent copy of every flag for one compositing pass.
func (t *Table) Snapshot() map[string]bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	out := make(map[string]bool, len(t.state))
	for name, active := range t.state {
		out[name] = active
	}
	return out
}

// Names returns the registered parameter names in registry order.
func (t *Table) Names() []string {
	return t.order
}
