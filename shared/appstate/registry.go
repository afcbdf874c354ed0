package appstate

// Hooks are run when a mode enters or leaves the stack. Setup reports
// whether it finished; an unfinished setup is retried on the next Sync.
type Hooks[C any] struct {
	Setup    func(C) bool
	Teardown func(C)
}

// Registry maps modes to their hooks and tracks which modes are live.
//
// A mode is torn down when it is no longer anywhere on the stack, so pushing
// an overlay suspends the mode below it without tearing it down. A mode is
// set up when it is on top of the stack and was not live before.
type Registry[C any] struct {
	hooks   map[Mode]Hooks[C]
	live    map[Mode]bool
	waiting map[Mode]bool
}

func NewRegistry[C any]() *Registry[C] {
	return &Registry[C]{
		hooks:   make(map[Mode]Hooks[C]),
		live:    make(map[Mode]bool),
		waiting: make(map[Mode]bool),
	}
}

func (r *Registry[C]) Register(m Mode, h Hooks[C]) {
	r.hooks[m] = h
}

// SetupPending reports whether m entered but its setup has not finished.
func (r *Registry[C]) SetupPending(m Mode) bool {
	return r.waiting[m]
}

// Sync compares the stack with the live set and runs hooks.
func (r *Registry[C]) Sync(ctx C, s *Stack) {
	onStack := make(map[Mode]bool, s.Len())
	for _, m := range s.Modes() {
		onStack[m] = true
	}

	for m := range r.live {
		if onStack[m] {
			continue
		}
		if h, ok := r.hooks[m]; ok && h.Teardown != nil {
			h.Teardown(ctx)
		}
		delete(r.live, m)
		delete(r.waiting, m)
	}

	top := s.Top()
	if !r.live[top] {
		r.live[top] = true
		r.waiting[top] = true
	}
	if r.waiting[top] {
		h, ok := r.hooks[top]
		if !ok || h.Setup == nil || h.Setup(ctx) {
			delete(r.waiting, top)
		}
	}
}
