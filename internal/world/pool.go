package world

// Pool is a multiset of item names. Names keep the order in which they were
// first added so that expansion is stable.
type Pool struct {
	counts map[string]int
	order  []string
	size   int
}

func NewPool() *Pool {
	return &Pool{counts: make(map[string]int)}
}

func (p *Pool) Add(name string, copies int) {
	if copies <= 0 {
		return
	}
	if _, seen := p.counts[name]; !seen {
		p.order = append(p.order, name)
	}
	p.counts[name] += copies
	p.size += copies
}

// Remove takes one copy of name out of the pool and reports whether there
// was one to take.
func (p *Pool) Remove(name string) bool {
	if p.counts[name] == 0 {
		return false
	}
	p.counts[name]--
	p.size--
	return true
}

func (p *Pool) Count(name string) int { return p.counts[name] }

func (p *Pool) Has(name string) bool { return p.counts[name] > 0 }

func (p *Pool) Len() int { return p.size }

// Counts returns the non-empty entries in first-added order.
func (p *Pool) Counts() []Entry {
	out := make([]Entry, 0, len(p.order))
	for _, name := range p.order {
		if n := p.counts[name]; n > 0 {
			out = append(out, Entry{Name: name, Count: n})
		}
	}
	return out
}

// Items expands duplicates into individual entries.
func (p *Pool) Items() []string {
	out := make([]string, 0, p.size)
	for _, e := range p.Counts() {
		for i := 0; i < e.Count; i++ {
			out = append(out, e.Name)
		}
	}
	return out
}

type Entry struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}
