package entity

import "encoding/json"

// ID is a stable entity identifier. IDs stay valid across insertions and
// removals, unlike positional indices.
type ID int64

// Arena owns the world entity collection. Iteration follows insertion
// order, which is also the AI sweep order.
type Arena struct {
	nextID ID
	order  []ID
	byID   map[ID]*Entity
}

// NewArena creates an empty arena.
func NewArena() *Arena {
	return &Arena{
		nextID: 1,
		byID:   make(map[ID]*Entity),
	}
}

// Add inserts an entity and returns its assigned ID.
func (a *Arena) Add(e *Entity) ID {
	id := a.nextID
	a.nextID++
	a.byID[id] = e
	a.order = append(a.order, id)
	return id
}

// Get returns the entity with the given ID, or nil.
func (a *Arena) Get(id ID) *Entity {
	return a.byID[id]
}

// Remove deletes the entity with the given ID and returns it.
func (a *Arena) Remove(id ID) *Entity {
	e, ok := a.byID[id]
	if !ok {
		return nil
	}
	delete(a.byID, id)
	for i, other := range a.order {
		if other == id {
			a.order = append(a.order[:i], a.order[i+1:]...)
			break
		}
	}
	return e
}

// IDs returns the entity IDs in insertion order. The returned slice is a
// copy; removing entities while iterating it is safe.
func (a *Arena) IDs() []ID {
	ids := make([]ID, len(a.order))
	copy(ids, a.order)
	return ids
}

// Len returns the number of entities in the arena.
func (a *Arena) Len() int {
	return len(a.order)
}

// Reset discards every entity except the one with the given ID. Used on
// dungeon-level transitions, where only the player survives.
func (a *Arena) Reset(keep ID) {
	kept := a.byID[keep]
	a.order = a.order[:0]
	a.byID = make(map[ID]*Entity)
	if kept != nil {
		a.byID[keep] = kept
		a.order = append(a.order, keep)
	}
}

// arenaDoc is the serialized form of an Arena. Order is preserved so a
// restored session sweeps AI in the same sequence.
type arenaDoc struct {
	NextID   ID            `json:"next_id"`
	Entities []arenaRecord `json:"entities"`
}

type arenaRecord struct {
	ID     ID      `json:"id"`
	Entity *Entity `json:"entity"`
}

// MarshalJSON serializes the arena with IDs and insertion order intact.
func (a *Arena) MarshalJSON() ([]byte, error) {
	doc := arenaDoc{NextID: a.nextID, Entities: make([]arenaRecord, 0, len(a.order))}
	for _, id := range a.order {
		doc.Entities = append(doc.Entities, arenaRecord{ID: id, Entity: a.byID[id]})
	}
	return json.Marshal(doc)
}

// UnmarshalJSON restores the arena from its serialized form.
func (a *Arena) UnmarshalJSON(data []byte) error {
	var doc arenaDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return err
	}
	a.nextID = doc.NextID
	a.order = make([]ID, 0, len(doc.Entities))
	a.byID = make(map[ID]*Entity, len(doc.Entities))
	for _, rec := range doc.Entities {
		a.order = append(a.order, rec.ID)
		a.byID[rec.ID] = rec.Entity
	}
	return nil
}
