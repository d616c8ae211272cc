package branching

const (
	left  = 0
	right = 1
)

// activeFront keeps the indices of expandable samples ordered by ascending
// center angle. Equal angles pop in insertion order.
//
// The nodes form a red-black tree for ordered insertion and are also
// threaded in key order from first, so pop takes the head without
// descending the tree.
type activeFront struct {
	root  *frontNode
	first *frontNode
	size  int
}

type frontNode struct {
	key   float64 // center angle
	index int     // position in the sampler's arena

	child  [2]*frontNode
	parent *frontNode
	next   *frontNode
	red    bool
}

func (n *frontNode) side(c *frontNode) int {
	if n.child[left] == c {
		return left
	}
	return right
}

func isRed(n *frontNode) bool { return n != nil && n.red }

func (f *activeFront) empty() bool { return f.first == nil }

func (f *activeFront) len() int { return f.size }

func (f *activeFront) push(index int, key float64) {
	n := &frontNode{key: key, index: index, red: true}

	// prev ends as the last node with key <= key, i.e. n's predecessor.
	var parent, prev *frontNode
	dir := left
	for cur := f.root; cur != nil; cur = cur.child[dir] {
		parent = cur
		dir = left
		if cur.key <= key {
			prev = cur
			dir = right
		}
	}

	n.parent = parent
	if parent == nil {
		f.root = n
	} else {
		parent.child[dir] = n
	}

	if prev == nil {
		n.next = f.first
		f.first = n
	} else {
		n.next = prev.next
		prev.next = n
	}

	f.size++
	f.balanceInsert(n)
}

// pop removes the sample with the smallest center angle.
// Popping an empty front is a caller bug.
func (f *activeFront) pop() int {
	n := f.first
	if n == nil {
		panic("branching: pop from empty active front")
	}

	f.first = n.next
	n.next = nil
	f.size--

	// The minimum has no left child, so its right child takes its place.
	parent, c := n.parent, n.child[right]
	f.replace(n, c)
	switch {
	case n.red:
	case isRed(c):
		c.red = false
	default:
		f.balanceRemove(c, parent)
	}

	return n.index
}

// replace puts n where old hangs in the tree.
func (f *activeFront) replace(old, n *frontNode) {
	p := old.parent
	if p == nil {
		f.root = n
	} else {
		p.child[p.side(old)] = n
	}
	if n != nil {
		n.parent = p
	}
}

// rotate moves n down to side d and lifts its child from the other side.
func (f *activeFront) rotate(n *frontNode, d int) {
	up := n.child[1-d]
	n.child[1-d] = up.child[d]
	if up.child[d] != nil {
		up.child[d].parent = n
	}
	f.replace(n, up)
	up.child[d] = n
	n.parent = up
}

func (f *activeFront) balanceInsert(n *frontNode) {
	for p := n.parent; isRed(p); p = n.parent {
		g := p.parent
		d := g.side(p)

		if uncle := g.child[1-d]; isRed(uncle) {
			p.red, uncle.red, g.red = false, false, true
			n = g
			continue
		}

		if n == p.child[1-d] {
			f.rotate(p, d)
			n, p = p, n
		}
		p.red, g.red = false, true
		f.rotate(g, 1-d)
	}
	f.root.red = false
}

// balanceRemove restores black heights after a black node left x's
// position under parent. x may be nil.
func (f *activeFront) balanceRemove(x, parent *frontNode) {
	for x != f.root && !isRed(x) {
		d := parent.side(x)
		s := parent.child[1-d]

		if s.red {
			s.red, parent.red = false, true
			f.rotate(parent, d)
			s = parent.child[1-d]
		}

		if !isRed(s.child[left]) && !isRed(s.child[right]) {
			s.red = true
			x, parent = parent, parent.parent
			continue
		}

		if !isRed(s.child[1-d]) {
			s.child[d].red = false
			s.red = true
			f.rotate(s, 1-d)
			s = parent.child[1-d]
		}
		s.red, parent.red = parent.red, false
		s.child[1-d].red = false
		f.rotate(parent, d)
		x = f.root
	}
	if x != nil {
		x.red = false
	}
}
