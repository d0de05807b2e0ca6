package list

// View is a range-restricted window onto an Array.
//
// A View is a small value: the root Array and absolute bounds [start, end)
// in root coordinates. It owns nothing. Operations through a view are
// translated with one addition and appended to the root's log.
type View struct {
	root  *Array
	start int
	end   int
}

// Get returns the value at local index i and records Read(start+i).
func (v View) Get(i int) int {
	v.check("get", i)
	return v.root.Get(v.global(i))
}

// Set stores x at local index i and records Write(start+i, x).
func (v View) Set(i, x int) {
	v.check("set", i)
	v.root.Set(v.global(i), x)
}

// Swap exchanges local indices i and j and records the global swap.
func (v View) Swap(i, j int) {
	v.check("swap", i)
	v.check("swap", j)
	v.root.Swap(v.global(i), v.global(j))
}

// Slice returns a sub-view over local [start, end). The child's bounds are
// computed in root coordinates, never by stacking translations.
func (v View) Slice(start, end int) Part {
	v.root.checkOpen("slice")
	if start < 0 || start > end || end > v.Len() {
		panic(rangeViolation(start, end, v.Len()))
	}
	return View{root: v.root, start: v.start + start, end: v.start + end}
}

// Len returns the extent of this view.
func (v View) Len() int {
	return v.end - v.start
}

// Start returns the view's first index in root coordinates.
func (v View) Start() int {
	return v.start
}

// End returns the view's exclusive end in root coordinates.
func (v View) End() int {
	return v.end
}

// Global translates local index i to root coordinates.
func (v View) Global(i int) int {
	return v.global(i)
}

func (v View) global(i int) int {
	return i + v.start
}

// check validates a local index against the view's extent. The root checks
// again against its own length, which also catches a frozen log.
func (v View) check(op string, i int) {
	if i < 0 || i >= v.Len() {
		panic(indexViolation(op, i, v.Len()))
	}
}
