package emitter

// Handler is a subscriber callback. It receives whatever the emitting side
// passed to Emit and may return the Unsubscribe sentinel to remove itself.
type Handler func(args ...any) any

const noIndex = int32(-1)

// Token identifies a linked node. Identity, not position: a token stays
// valid until its node is removed, and never aliases a later node that
// happens to reuse the same arena slot. The zero Token matches nothing.
type Token struct {
	idx int32
	seq uint32
}

type slot struct {
	handler Handler
	prev    int32
	next    int32
	seq     uint32
	live    bool
}

// walkFrame tracks one active traversal. Walks nest through plain recursion,
// so the frames form a stack; each frame keeps its own record of the nodes
// its current pass has reached, so a nested walk revisiting the same nodes
// never makes them look unvisited to the walks around it.
type walkFrame struct {
	current Token
	visited []Token
	dirty   bool
}

func (f *walkFrame) saw(tok Token) bool {
	for _, v := range f.visited {
		if v == tok {
			return true
		}
	}
	return false
}

// Registry is a doubly-linked subscriber list laid out in an arena: nodes
// live in slots addressed by stable indices, prev/next are index fields and
// removal pushes the slot onto a free list. Insert and Remove are O(1).
//
// Handlers running under ForEach (or Emitter.Emit) may mutate the registry;
// see ForEach for the restart rule that governs mid-walk removal.
//
// A Registry is confined to a single goroutine.
type Registry struct {
	slots  []slot
	free   []int32
	head   int32
	tail   int32
	count  int
	frames []walkFrame
}

func NewRegistry() *Registry {
	return &Registry{head: noIndex, tail: noIndex}
}

// Insert links handler at the tail and returns its token.
func (r *Registry) Insert(handler Handler) Token {
	if handler == nil {
		panic("emitter: nil handler")
	}
	var idx int32
	if n := len(r.free); n > 0 {
		idx = r.free[n-1]
		r.free = r.free[:n-1]
	} else {
		r.slots = append(r.slots, slot{seq: 1})
		idx = int32(len(r.slots) - 1)
	}
	s := &r.slots[idx]
	s.handler = handler
	s.live = true
	s.prev = r.tail
	s.next = noIndex
	if r.tail != noIndex {
		r.slots[r.tail].next = idx
	} else {
		r.head = idx
	}
	r.tail = idx
	r.count++
	return Token{idx: idx, seq: s.seq}
}

// Remove unlinks the node for tok. It returns false when the token is stale
// or was never linked, leaving the registry untouched.
func (r *Registry) Remove(tok Token) bool {
	if !r.Contains(tok) {
		return false
	}
	s := &r.slots[tok.idx]
	if s.prev != noIndex {
		r.slots[s.prev].next = s.next
	} else {
		r.head = s.next
	}
	if s.next != noIndex {
		r.slots[s.next].prev = s.prev
	} else {
		r.tail = s.prev
	}
	// any active walk that had not reached this node yet must restart from
	// head instead of following a captured next index into a freed slot
	for i := range r.frames {
		f := &r.frames[i]
		if tok != f.current && !f.saw(tok) {
			f.dirty = true
		}
	}
	s.handler = nil
	s.prev = noIndex
	s.next = noIndex
	s.live = false
	s.seq++
	r.free = append(r.free, tok.idx)
	r.count--
	return true
}

// Contains reports whether tok identifies a currently linked node.
func (r *Registry) Contains(tok Token) bool {
	if tok.idx < 0 || int(tok.idx) >= len(r.slots) {
		return false
	}
	s := &r.slots[tok.idx]
	return s.live && s.seq == tok.seq
}

// Size returns the number of linked nodes, maintained as a counter.
func (r *Registry) Size() int {
	return r.count
}

// ForEach invokes visit for every linked node in append order. Handlers may
// mutate the registry mid-walk: removing a node the walk has not reached yet
// restarts the walk from head, and live nodes visited before the restart are
// visited AGAIN. Removing the node currently being visited, or one already
// behind the cursor, does not restart. A node inserted mid-walk is linked
// normally but may or may not be reached before the walk ends.
func (r *Registry) ForEach(visit func(tok Token, handler Handler)) {
	r.walk(func(tok Token, handler Handler) bool {
		visit(tok, handler)
		return false
	})
}

// walk runs the traversal under ForEach and Emitter.Emit. visit reports
// whether the node it was just handed should be unlinked. Each iteration
// captures the next index before invoking the handler; a removal ahead of
// the cursor marks the frame dirty through Remove, and a dirty frame
// abandons the captured index, forgets what it has visited and starts over
// at head. Nested walks from inside a handler push their own frame with
// their own visited record.
func (r *Registry) walk(visit func(tok Token, handler Handler) bool) {
	fi := len(r.frames)
	r.frames = append(r.frames, walkFrame{})
	defer func() {
		r.frames = r.frames[:fi]
	}()

	i := r.head
	for i != noIndex {
		s := &r.slots[i]
		next := s.next
		cur := Token{idx: i, seq: s.seq}
		f := &r.frames[fi]
		f.current = cur
		f.visited = append(f.visited, cur)
		handler := s.handler
		if visit(cur, handler) {
			r.Remove(cur)
		}
		if r.frames[fi].dirty {
			r.frames[fi].dirty = false
			r.frames[fi].visited = r.frames[fi].visited[:0]
			i = r.head
			continue
		}
		i = next
	}
}
