package keybinding

import (
	"sort"

	kberrors "github.com/Iron-Ham/claudio/internal/errors"
)

// catalogEntry wraps a KeyBinding with its registration order, used only to
// break ties between equal-priority matches (spec.md §9: "tie-breaking ...
// is unspecified but deterministic"). This repository resolves it as
// first-registered-wins among equal priorities, documented in DESIGN.md.
type catalogEntry struct {
	binding KeyBinding
	order   uint64
	key     string
}

func bindingKey(seq KeySequence, ctx BindingContext, priority Priority) string {
	return seq.String() + "\x00" + ctx.String() + "\x00" + priority.String()
}

// BindingCatalog is the priority-ordered store of KeyBindings (spec.md
// §3/§4.3). It holds no sequence-buffer state of its own — FindMatch and
// IsPartialMatch take the caller's buffer as a parameter, since ownership
// of the buffer belongs exclusively to the InputHandler (spec.md §3's
// Ownership paragraph; see DESIGN.md Open Question 1).
//
// The catalog assumes the single-threaded cooperative scheduling model of
// spec.md §5: it is not safe for concurrent registration and lookup from
// multiple goroutines, matching the host's one-event-loop design.
type BindingCatalog struct {
	entries []catalogEntry
	nextSeq uint64
}

// NewBindingCatalog returns an empty catalog.
func NewBindingCatalog() *BindingCatalog {
	return &BindingCatalog{}
}

// Register adds b to the catalog. It returns a *errors.CatalogError
// wrapping errors.ErrConflict if a binding with the identical (sequence,
// context, priority) triple is already registered with a different
// command, or even the same one — the uniqueness invariant admits no
// duplicate triples (spec.md §3, invariant 1).
func (c *BindingCatalog) Register(b KeyBinding) error {
	key := bindingKey(b.Sequence, b.Context, b.Priority)
	for _, e := range c.entries {
		if e.key == key {
			return kberrors.NewCatalogError(b.Sequence.String(), b.Context.String(), b.Priority.String())
		}
	}
	c.entries = append(c.entries, catalogEntry{binding: b, order: c.nextSeq, key: key})
	c.nextSeq++
	return nil
}

// Unregister removes every binding whose sequence and context match,
// regardless of priority. It never errors and is a no-op if nothing
// matches.
func (c *BindingCatalog) Unregister(seq KeySequence, ctx BindingContext) {
	ctxKey := ctx.String()
	out := c.entries[:0]
	for _, e := range c.entries {
		if e.binding.Sequence.Equal(seq) && e.binding.Context.String() == ctxKey {
			continue
		}
		out = append(out, e)
	}
	c.entries = out
}

// UnregisterByPriority removes every binding at the given priority. This is
// the primitive the user-config reload path uses to purge the prior
// generation's User bindings before loading the new file (spec.md §4.6).
func (c *BindingCatalog) UnregisterByPriority(p Priority) int {
	out := c.entries[:0]
	removed := 0
	for _, e := range c.entries {
		if e.binding.Priority == p {
			removed++
			continue
		}
		out = append(out, e)
	}
	c.entries = out
	return removed
}

// UnregisterPlugin removes every Plugin-priority binding contributed by the
// named plugin, leaving other plugins' bindings untouched. This is the
// bulk-by-(priority, plugin-name-filter) primitive spec.md §4.3 describes,
// specialised to unloading a single plugin.
func (c *BindingCatalog) UnregisterPlugin(pluginName string) int {
	out := c.entries[:0]
	removed := 0
	for _, e := range c.entries {
		if e.binding.Priority == PriorityPlugin &&
			e.binding.Context.Kind == ContextPlugin &&
			e.binding.Context.PluginName == pluginName {
			removed++
			continue
		}
		out = append(out, e)
	}
	c.entries = out
	return removed
}

// FindMatch returns the command of the highest-priority binding whose
// sequence equals buffer and whose context is active in mode. Among
// equal-priority matches the first-registered wins (deterministic, per
// spec.md §4.3 and §9).
func (c *BindingCatalog) FindMatch(buffer KeySequence, mode EditorMode) (Command, bool) {
	best, ok := c.bestMatch(buffer, mode)
	if !ok {
		return Command{}, false
	}
	return best.binding.Command, true
}

func (c *BindingCatalog) bestMatch(buffer KeySequence, mode EditorMode) (catalogEntry, bool) {
	var best catalogEntry
	found := false
	for _, e := range c.entries {
		if !e.binding.Sequence.Equal(buffer) {
			continue
		}
		if !e.binding.Context.IsActive(mode) {
			continue
		}
		if !found || e.binding.Priority > best.binding.Priority {
			best = e
			found = true
		}
	}
	return best, found
}

// IsPartialMatch reports whether buffer is a strict prefix of some
// in-context binding's sequence, and FindMatch does not already resolve
// the buffer to a complete match (spec.md §4.3).
func (c *BindingCatalog) IsPartialMatch(buffer KeySequence, mode EditorMode) bool {
	if _, ok := c.FindMatch(buffer, mode); ok {
		return false
	}
	for _, e := range c.entries {
		if !e.binding.Context.IsActive(mode) {
			continue
		}
		if e.binding.Sequence.HasPrefix(buffer) {
			return true
		}
	}
	return false
}

// Bindings returns a snapshot of every registered binding in priority
// order (descending priority, stable among ties by registration order).
// Intended for help-screen rendering and tests; callers must not mutate
// the catalog while iterating the result.
func (c *BindingCatalog) Bindings() []KeyBinding {
	entries := make([]catalogEntry, len(c.entries))
	copy(entries, c.entries)
	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].binding.Priority != entries[j].binding.Priority {
			return entries[i].binding.Priority > entries[j].binding.Priority
		}
		return entries[i].order < entries[j].order
	})
	out := make([]KeyBinding, len(entries))
	for i, e := range entries {
		out[i] = e.binding
	}
	return out
}

// Len returns the number of registered bindings.
func (c *BindingCatalog) Len() int {
	return len(c.entries)
}
