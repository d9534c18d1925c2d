package state

// lifecycle is the three-phase async contract every slice operation
// follows: begin sets loading and clears the error, settle drops loading
// and records the outcome. The sequence number fences concurrent
// operations of the same kind: only the latest settle may touch the slice.
type lifecycle struct {
	loading bool
	err     string
	seq     uint64
}

func (l *lifecycle) begin() uint64 {
	l.seq++
	l.loading = true
	l.err = ""
	return l.seq
}

// settle reports whether the operation still owns the slice. A superseded
// settle leaves the lifecycle untouched and the caller must discard its
// result entirely.
func (l *lifecycle) settle(seq uint64, err error) bool {
	if seq != l.seq {
		return false
	}
	l.loading = false
	if err != nil {
		l.err = err.Error()
	} else {
		l.err = ""
	}
	return true
}

// AsyncStatus is the externally visible lifecycle state of a slice.
type AsyncStatus struct {
	Loading bool
	Err     string
}

func (l lifecycle) status() AsyncStatus {
	return AsyncStatus{Loading: l.loading, Err: l.err}
}
