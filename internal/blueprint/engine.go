package blueprint

import (
	"strings"

	"github.com/rs/zerolog"

	"github.com/noelruault/emd/internal/errs"
)

// Persister writes the whole collection.
type Persister interface {
	SaveBlueprints(Collection) error
}

// Engine owns the blueprint collection, the selected blueprint index and the
// open working copy. Every successful mutation of the open blueprint is
// written back into its store slot and persisted before returning. A failed
// save keeps the in-memory change and reports *errs.PersistenceError.
type Engine struct {
	coll     Collection
	selected int
	current  *Blueprint
	persist  Persister
	logger   zerolog.Logger
}

// NewEngine takes ownership of coll.
func NewEngine(coll Collection, persist Persister, logger zerolog.Logger) *Engine {
	return &Engine{
		coll:    coll.clone(),
		persist: persist,
		logger:  logger.With().Str("component", "blueprint").Logger(),
	}
}

// Collection returns a copy of the stored blueprints.
func (e *Engine) Collection() Collection { return e.coll.clone() }

// Len returns the number of stored blueprints.
func (e *Engine) Len() int { return e.coll.Len() }

// Selected returns the selected blueprint index.
func (e *Engine) Selected() int { return e.selected }

// Select moves the selection. Out-of-range indexes are ignored.
func (e *Engine) Select(index int) bool {
	if index < 0 || index >= e.coll.Len() {
		return false
	}
	e.selected = index
	return true
}

// Get returns a copy of the blueprint at index.
func (e *Engine) Get(index int) (Blueprint, bool) {
	if index < 0 || index >= e.coll.Len() {
		return Blueprint{}, false
	}
	return e.coll.Blueprints[index].clone(), true
}

// Current returns a copy of the open blueprint.
func (e *Engine) Current() (Blueprint, bool) {
	if e.current == nil {
		return Blueprint{}, false
	}
	return e.current.clone(), true
}

// IsOpen reports whether a blueprint is open.
func (e *Engine) IsOpen() bool { return e.current != nil }

// Create appends a new empty blueprint and selects it.
func (e *Engine) Create(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return &errs.ValidationError{Field: "blueprint name", Reason: "must not be empty"}
	}
	e.coll.Blueprints = append(e.coll.Blueprints, Blueprint{Name: name, Resources: []Resource{}})
	e.selected = e.coll.Len() - 1
	e.logger.Debug().Str("name", name).Int("index", e.selected).Msg("blueprint created")
	return e.save()
}

// Delete removes the blueprint at index. Out of range is a no-op returning
// false. The selection is clamped to the new length.
func (e *Engine) Delete(index int) (bool, error) {
	if index < 0 || index >= e.coll.Len() {
		return false, nil
	}
	e.coll.Blueprints = append(e.coll.Blueprints[:index], e.coll.Blueprints[index+1:]...)
	if e.selected >= e.coll.Len() && e.selected > 0 {
		e.selected--
	}
	e.current = nil
	e.logger.Debug().Int("index", index).Int("selected", e.selected).Msg("blueprint deleted")
	return true, e.save()
}

// Open selects index and makes a working copy of it.
func (e *Engine) Open(index int) error {
	b, ok := e.Get(index)
	if !ok {
		return errs.ErrNotFound
	}
	e.selected = index
	e.current = &b
	return nil
}

// Close discards the working copy.
func (e *Engine) Close() {
	e.current = nil
}

// AddResource appends r to the open blueprint.
func (e *Engine) AddResource(r Resource) error {
	if e.current == nil {
		return errs.ErrNoBlueprintOpen
	}
	e.current.Resources = append(e.current.Resources, r)
	return e.sync()
}

// RemoveResource removes entry index of the open blueprint. Out of range is
// a no-op returning false.
func (e *Engine) RemoveResource(index int) (bool, error) {
	if e.current == nil {
		return false, errs.ErrNoBlueprintOpen
	}
	if index < 0 || index >= len(e.current.Resources) {
		return false, nil
	}
	e.current.Resources = append(e.current.Resources[:index], e.current.Resources[index+1:]...)
	return true, e.sync()
}

// MoveUp swaps entry index with the one above it.
func (e *Engine) MoveUp(index int) (bool, error) {
	if e.current == nil || index <= 0 || index >= len(e.current.Resources) {
		return false, nil
	}
	rs := e.current.Resources
	rs[index], rs[index-1] = rs[index-1], rs[index]
	return true, e.sync()
}

// MoveDown swaps entry index with the one below it.
func (e *Engine) MoveDown(index int) (bool, error) {
	if e.current == nil || index < 0 || index+1 >= len(e.current.Resources) {
		return false, nil
	}
	rs := e.current.Resources
	rs[index], rs[index+1] = rs[index+1], rs[index]
	return true, e.sync()
}

// sync writes the working copy into its store slot and persists.
func (e *Engine) sync() error {
	if e.selected < 0 || e.selected >= e.coll.Len() {
		return errs.ErrNoBlueprintOpen
	}
	e.coll.Blueprints[e.selected] = e.current.clone()
	return e.save()
}

func (e *Engine) save() error {
	if e.persist == nil {
		return nil
	}
	if err := e.persist.SaveBlueprints(e.coll.clone()); err != nil {
		e.logger.Error().Err(err).Msg("persist blueprints")
		if errs.IsPersistence(err) {
			return err
		}
		return &errs.PersistenceError{Path: "blueprints", Err: err}
	}
	return nil
}
