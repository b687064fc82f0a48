package buffer

// DeltaAction identifies the kind of a Delta.
type DeltaAction uint8

const (
	DeltaInsert DeltaAction = iota
	DeltaRemove
)

func (a DeltaAction) String() string {
	if a == DeltaRemove {
		return "remove"
	}
	return "insert"
}

// Delta describes one primitive document change.
//
// For DeltaInsert, Range spans the inserted text in the document after the
// change. For DeltaRemove, Range spans the removed text in the document before
// the change. Lines always holds the affected text split on '\n', so
// len(Lines) == Range.End.Row-Range.Start.Row+1.
type Delta struct {
	Action DeltaAction
	Range  Range
	Lines  []string
}

// RowDelta returns how many rows the change adds (insert) or removes (remove).
func (d Delta) RowDelta() int {
	return d.Range.End.Row - d.Range.Start.Row
}

// Change groups the deltas produced by one buffer call.
type Change struct {
	VersionBefore uint64
	VersionAfter  uint64
	Deltas        []Delta
}

// Listener receives deltas synchronously, after the buffer applied them.
type Listener func(Delta)

type subscriber struct {
	id int
	fn Listener
}

// Subscribe registers fn for every future delta and returns a function that
// removes the registration.
func (b *Buffer) Subscribe(fn Listener) (unsubscribe func()) {
	if fn == nil {
		return func() {}
	}
	id := b.nextSub
	b.nextSub++
	b.subs = append(b.subs, subscriber{id: id, fn: fn})
	return func() {
		for i, s := range b.subs {
			if s.id == id {
				b.subs = append(b.subs[:i:i], b.subs[i+1:]...)
				return
			}
		}
	}
}

// LastChange returns the most recent effective change.
func (b *Buffer) LastChange() (Change, bool) {
	if !b.hasLastChange {
		return Change{}, false
	}
	return cloneChange(b.lastChange), true
}

func cloneChange(in Change) Change {
	out := in
	out.Deltas = make([]Delta, 0, len(in.Deltas))
	for _, d := range in.Deltas {
		d.Lines = append([]string(nil), d.Lines...)
		out.Deltas = append(out.Deltas, d)
	}
	return out
}

type changeBuilder struct {
	versionBefore uint64
	deltas        []Delta
}

func (b *Buffer) beginChange() changeBuilder {
	return changeBuilder{versionBefore: b.version}
}

func (b *Buffer) commitChange(cb changeBuilder) {
	if b.version == cb.versionBefore {
		return
	}
	b.lastChange = Change{
		VersionBefore: cb.versionBefore,
		VersionAfter:  b.version,
		Deltas:        cb.deltas,
	}
	b.hasLastChange = true
}

// emit bumps the version, records d in cb and notifies subscribers.
func (b *Buffer) emit(cb *changeBuilder, d Delta) {
	b.version++
	cb.deltas = append(cb.deltas, d)
	subs := append([]subscriber(nil), b.subs...)
	for _, s := range subs {
		s.fn(d)
	}
}
