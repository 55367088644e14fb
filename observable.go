package pane

// EventFunc is a subscriber callback invoked with the notifying event.
type EventFunc func(*Event)

type subscriber struct {
	id uint32
	fn EventFunc
}

// Observable is a publish/subscribe primitive. Every stateful object in the
// toolkit embeds one: widgets notify EventChange when their model state
// mutates, and collaborators subscribe to refresh derived display state.
//
// The zero value is ready to use.
type Observable struct {
	subs   map[EventKind][]subscriber
	nextID uint32
}

// Subscription identifies a registered callback so it can be removed.
// Functions are not comparable in Go, so unsubscription is by handle.
type Subscription struct {
	id   uint32
	kind EventKind
	obs  *Observable
}

// Subscribe registers fn to be called for every notification of the given
// kind. Multiple callbacks per kind are supported; no delivery order is
// guaranteed.
func (o *Observable) Subscribe(kind EventKind, fn EventFunc) Subscription {
	if o.subs == nil {
		o.subs = make(map[EventKind][]subscriber)
	}
	o.nextID++
	o.subs[kind] = append(o.subs[kind], subscriber{id: o.nextID, fn: fn})
	return Subscription{id: o.nextID, kind: kind, obs: o}
}

// Remove unregisters the callback. Removing twice is a no-op.
func (s Subscription) Remove() {
	if s.obs == nil {
		return
	}
	subs := s.obs.subs[s.kind]
	for i := range subs {
		if subs[i].id == s.id {
			copy(subs[i:], subs[i+1:])
			subs[len(subs)-1] = subscriber{}
			s.obs.subs[s.kind] = subs[:len(subs)-1]
			return
		}
	}
}

// Notify delivers evt to every subscriber registered for evt.Kind.
func (o *Observable) Notify(evt *Event) {
	for _, s := range o.subs[evt.Kind] {
		s.fn(evt)
	}
}

// NotifyKind delivers a bare event of the given kind.
func (o *Observable) NotifyKind(kind EventKind) {
	o.Notify(&Event{Kind: kind})
}

// NotifyChange delivers a bare EventChange. Observables embedded in a
// [Window] should prefer [Window.NotifyChange], which stamps the sender.
func (o *Observable) NotifyChange() {
	o.NotifyKind(EventChange)
}
