package menu

import "strconv"

// Meaning names what a menu entry stands for. It drives the displayed label
// and, for action entries, the handler a dispatch is routed to.
type Meaning int

const (
	Update Meaning = iota
	Upgrade
	Use
)

var meaningLabels = map[Meaning]string{
	Update:  "update pkg db",
	Upgrade: "upgrade system",
	Use:     "config use flags",
}

// Label returns the human-readable text for the meaning.
func (m Meaning) Label() string {
	if label, ok := meaningLabels[m]; ok {
		return label
	}
	return "meaning(" + strconv.Itoa(int(m)) + ")"
}

func (m Meaning) String() string {
	return m.Label()
}

// Kind is the variant carried by an Entry: either Action or Checkbox.
type Kind interface {
	isKind()
}

// Action is an activatable entry. Children is reserved for nested submenus
// and is empty for every entry built today.
type Action struct {
	Children []Entry
}

// Checkbox is a stateful on/off entry.
type Checkbox struct {
	On bool
}

func (Action) isKind()   {}
func (Checkbox) isKind() {}

// Entry represents a single row of the menu.
type Entry struct {
	Kind    Kind
	Meaning Meaning
}

// NewAction builds an action entry with no children.
func NewAction(meaning Meaning) Entry {
	return Entry{Kind: Action{}, Meaning: meaning}
}

// NewCheckbox builds a checkbox entry with the given initial state.
func NewCheckbox(meaning Meaning, on bool) Entry {
	return Entry{Kind: Checkbox{On: on}, Meaning: meaning}
}

// Toggle flips a checkbox entry in place and reports whether anything
// changed. Action entries are left untouched.
func (e *Entry) Toggle() bool {
	cb, ok := e.Kind.(Checkbox)
	if !ok {
		return false
	}
	cb.On = !cb.On
	e.Kind = cb
	return true
}

// IsAction reports whether the entry is an Action.
func (e Entry) IsAction() bool {
	_, ok := e.Kind.(Action)
	return ok
}

// Checked returns the checkbox state and whether the entry is a checkbox.
func (e Entry) Checked() (on bool, ok bool) {
	cb, ok := e.Kind.(Checkbox)
	return cb.On, ok
}

// Model is the ordered list of entries shown by the menu. Its length and order
// stay fixed for the lifetime of a session.
type Model []Entry

// Default returns the entries shown at startup.
func Default() Model {
	return Model{
		NewAction(Update),
		NewAction(Upgrade),
		NewAction(Use),
		NewCheckbox(Update, false),
	}
}

// Toggle toggles the entry at idx. Out of range indices are ignored.
func (m Model) Toggle(idx int) bool {
	if idx < 0 || idx >= len(m) {
		return false
	}
	return m[idx].Toggle()
}

// Clone returns a deep copy of the model.
func (m Model) Clone() Model {
	if m == nil {
		return nil
	}
	dup := make(Model, len(m))
	for i, entry := range m {
		dup[i] = entry.clone()
	}
	return dup
}

func (e Entry) clone() Entry {
	if action, ok := e.Kind.(Action); ok && action.Children != nil {
		children := Model(action.Children).Clone()
		return Entry{Kind: Action{Children: children}, Meaning: e.Meaning}
	}
	return e
}
