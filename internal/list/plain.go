package list

// Plain is an unrecorded Part over a caller-owned slice. Running an
// algorithm against Plain gives the reference result that a replayed log
// must reproduce.
type Plain []int

// Get returns p[i].
func (p Plain) Get(i int) int {
	p.check("get", i)
	return p[i]
}

// Set stores v at i.
func (p Plain) Set(i, v int) {
	p.check("set", i)
	p[i] = v
}

// Swap exchanges p[i] and p[j].
func (p Plain) Swap(i, j int) {
	p.check("swap", i)
	p.check("swap", j)
	p[i], p[j] = p[j], p[i]
}

// Slice returns p[start:end], sharing storage.
func (p Plain) Slice(start, end int) Part {
	if start < 0 || start > end || end > len(p) {
		panic(rangeViolation(start, end, len(p)))
	}
	return p[start:end]
}

// Len returns len(p).
func (p Plain) Len() int {
	return len(p)
}

func (p Plain) check(op string, i int) {
	if i < 0 || i >= len(p) {
		panic(indexViolation(op, i, len(p)))
	}
}
