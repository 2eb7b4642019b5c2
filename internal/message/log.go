package message

// Sink accepts messages for presentation. It is fire-and-forget.
type Sink interface {
	Show(id ID, args ...any)
}

// DefaultLimit is how many lines a Log keeps.
const DefaultLimit = 50

// Log is a bounded, rendered message history.
type Log struct {
	catalog Catalog
	limit   int
	lines   []string
	ids     []ID
}

// NewLog creates a Log rendering through c and keeping at most limit lines.
func NewLog(c Catalog, limit int) *Log {
	if limit <= 0 {
		limit = DefaultLimit
	}
	return &Log{catalog: c, limit: limit}
}

func (l *Log) Show(id ID, args ...any) {
	l.lines = append(l.lines, l.catalog.Render(id, args...))
	l.ids = append(l.ids, id)
	if len(l.lines) > l.limit {
		l.lines = l.lines[len(l.lines)-l.limit:]
		l.ids = l.ids[len(l.ids)-l.limit:]
	}
}

// Lines returns the retained history, oldest first.
func (l *Log) Lines() []string { return l.lines }

// Last returns up to n of the newest lines, oldest first.
func (l *Log) Last(n int) []string {
	if n >= len(l.lines) {
		return l.lines
	}
	return l.lines[len(l.lines)-n:]
}

// IDs returns the ids of the retained lines, oldest first.
func (l *Log) IDs() []ID { return l.ids }
