package registry

import (
	"sort"
	"sync"

	"github.com/SergeyBogomolovv/restaurant-order-bot/internal/entities"
)

type record struct {
	order entities.Order
	seq   uint64
}

// Registry is the in-memory set of orders awaiting staff action.
// Records are keyed by order id and never survive a restart.
type Registry struct {
	mu      sync.RWMutex
	orders  map[string]*record
	lastSeq uint64
}

func New() *Registry {
	return &Registry{orders: make(map[string]*record)}
}

// Create stores a new record. An existing record is never overwritten.
func (r *Registry) Create(o entities.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.orders[o.ID]; ok {
		return entities.ErrOrderExists
	}
	r.lastSeq++
	r.orders[o.ID] = &record{order: o, seq: r.lastSeq}
	return nil
}

func (r *Registry) Get(id string) (entities.Order, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rec, ok := r.orders[id]
	if !ok {
		return entities.Order{}, false
	}
	return copyOrder(rec.order), true
}

// AttachLocation sets the coordinates and appends annotation to the details
// the first time a location is attached.
func (r *Registry) AttachLocation(id string, loc entities.Location, annotation string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	rec, ok := r.orders[id]
	if !ok {
		return entities.ErrOrderNotFound
	}
	if rec.order.Location == nil {
		rec.order.Details += annotation
	}
	rec.order.Location = &loc
	return nil
}

func (r *Registry) SetStaffMessage(id string, messageID int) error {
	return r.update(id, func(o *entities.Order) { o.StaffMessageID = messageID })
}

func (r *Registry) SetState(id string, state entities.OrderState) error {
	return r.update(id, func(o *entities.Order) { o.State = state })
}

func (r *Registry) SetPrepTime(id string, p entities.PrepTime) error {
	return r.update(id, func(o *entities.Order) {
		o.PrepTime = p
		o.State = entities.StateTimeSelected
	})
}

func (r *Registry) update(id string, fn func(o *entities.Order)) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	rec, ok := r.orders[id]
	if !ok {
		return entities.ErrOrderNotFound
	}
	fn(&rec.order)
	return nil
}

// Remove is idempotent.
func (r *Registry) Remove(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.orders, id)
}

// FindByNumber returns the id of the most recently created order with the
// given public number. Numbers are only unique among recent orders.
func (r *Registry) FindByNumber(number int) (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var (
		found *record
		id    string
	)
	for k, rec := range r.orders {
		if rec.order.Number != number {
			continue
		}
		if found == nil || rec.seq > found.seq {
			found, id = rec, k
		}
	}
	return id, found != nil
}

// Latest returns the id of the most recently created open order.
func (r *Registry) Latest() (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var (
		best uint64
		id   string
	)
	for k, rec := range r.orders {
		if rec.seq > best {
			best, id = rec.seq, k
		}
	}
	return id, best != 0
}

// List returns a snapshot ordered by creation.
func (r *Registry) List() []entities.Order {
	r.mu.RLock()
	recs := make([]record, 0, len(r.orders))
	for _, rec := range r.orders {
		recs = append(recs, record{order: copyOrder(rec.order), seq: rec.seq})
	}
	r.mu.RUnlock()

	sort.Slice(recs, func(i, j int) bool { return recs[i].seq < recs[j].seq })

	res := make([]entities.Order, 0, len(recs))
	for _, rec := range recs {
		res = append(res, rec.order)
	}
	return res
}

func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.orders)
}

func copyOrder(o entities.Order) entities.Order {
	if o.Location != nil {
		loc := *o.Location
		o.Location = &loc
	}
	return o
}
