package entity

import "slices"

// Layer is an ordered collection of entities and texts. Sorting is stable,
// so items at equal depth keep insertion order.
type Layer struct {
	entities []*Entity
	texts    []*Text
}

// NewLayer returns an empty layer.
func NewLayer() *Layer {
	return &Layer{}
}

// Add appends an entity.
func (l *Layer) Add(e *Entity) {
	l.entities = append(l.entities, e)
}

// Remove drops an entity. It reports whether e was present.
func (l *Layer) Remove(e *Entity) bool {
	i := slices.Index(l.entities, e)
	if i < 0 {
		return false
	}
	l.entities = slices.Delete(l.entities, i, i+1)
	return true
}

// AddText appends a text.
func (l *Layer) AddText(t *Text) {
	l.texts = append(l.texts, t)
}

// RemoveText drops a text. It reports whether t was present.
func (l *Layer) RemoveText(t *Text) bool {
	i := slices.Index(l.texts, t)
	if i < 0 {
		return false
	}
	l.texts = slices.Delete(l.texts, i, i+1)
	return true
}

// Entities returns the entities in insertion order.
func (l *Layer) Entities() []*Entity {
	return l.entities
}

// Texts returns the texts in insertion order.
func (l *Layer) Texts() []*Text {
	return l.texts
}

// Len returns the number of entities plus texts.
func (l *Layer) Len() int {
	return len(l.entities) + len(l.texts)
}

// Clear removes everything. Slices handed out earlier keep their contents.
func (l *Layer) Clear() {
	l.entities = nil
	l.texts = nil
}

// SortedEntities returns the entities ordered by ascending depth.
func (l *Layer) SortedEntities() []*Entity {
	out := slices.Clone(l.entities)
	slices.SortStableFunc(out, func(a, b *Entity) int { return a.Depth - b.Depth })
	return out
}

// SortedText returns the texts ordered by ascending depth.
func (l *Layer) SortedText() []*Text {
	out := slices.Clone(l.texts)
	slices.SortStableFunc(out, func(a, b *Text) int { return a.Depth - b.Depth })
	return out
}
