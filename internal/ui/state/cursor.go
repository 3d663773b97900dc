package state

// Focus tracks the highlighted row of a fixed-length list. Index always stays
// within [0, Len-1]; an empty list pins it to 0.
type Focus struct {
	Index int
	Len   int
}

// NewFocus returns a focus positioned on the first of n rows.
func NewFocus(n int) Focus {
	if n < 0 {
		n = 0
	}
	return Focus{Len: n}
}

// MoveUp moves focus one row up, stopping at the first row.
func (f *Focus) MoveUp() bool {
	return f.moveBy(-1)
}

// MoveDown moves focus one row down, stopping at the last row.
func (f *Focus) MoveDown() bool {
	return f.moveBy(1)
}

func (f *Focus) moveBy(delta int) bool {
	if f.Len <= 0 {
		f.Index = 0
		return false
	}
	old := f.Index
	f.Index += delta
	f.clamp()
	return f.Index != old
}

func (f *Focus) clamp() {
	if f.Index >= f.Len {
		f.Index = f.Len - 1
	}
	if f.Index < 0 {
		f.Index = 0
	}
}
