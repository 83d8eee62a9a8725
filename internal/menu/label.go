package menu

// StringItem is a display-only label, useful for separating groups of
// options.
type StringItem struct {
	text string
}

// NewString returns a label showing text.
func NewString(text string) *StringItem {
	return &StringItem{text: text}
}

func (s *StringItem) Name() string       { return s.text }
func (s *StringItem) Display() string    { return s.text }
func (s *StringItem) HandleKey(Key) bool { return false }
