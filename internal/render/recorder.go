package render

// Recorder is an in-memory Container. It counts resets so callers can
// tell a full re-render from an append.
type Recorder struct {
	Rows   []Row
	Resets int
}

func (r *Recorder) Reset() {
	r.Rows = r.Rows[:0]
	r.Resets++
}

func (r *Recorder) Append(row Row) { r.Rows = append(r.Rows, row) }

// Page is a Document backed by a fixed set of containers.
type Page map[string]Container

func (p Page) Lookup(id string) Container {
	c, ok := p[id]
	if !ok {
		return nil
	}
	return c
}
