// Package ecs stores scene entities as bags of pure-data components.
//
// Particles, buttons and gift cards are entities; systems query them by
// component type each frame. Destruction is deferred until
// RemoveMarkedEntities so a system can mark entities while iterating.
package ecs

import (
	"reflect"
	"sort"
)

// EntityID identifies an entity. Zero is never issued.
type EntityID uint64

// EntityManager owns every entity and its components.
type EntityManager struct {
	nextID uint64
	// EntityID -> component type -> component
	components        map[EntityID]map[reflect.Type]any
	entitiesToDestroy []EntityID
}

// NewEntityManager returns an empty manager whose first entity is 1.
func NewEntityManager() *EntityManager {
	return &EntityManager{
		nextID:            1,
		components:        make(map[EntityID]map[reflect.Type]any),
		entitiesToDestroy: make([]EntityID, 0),
	}
}

// CreateEntity allocates a new entity with no components.
func (em *EntityManager) CreateEntity() EntityID {
	id := EntityID(em.nextID)
	em.nextID++
	em.components[id] = make(map[reflect.Type]any)
	return id
}

// DestroyEntity marks id for removal at the next RemoveMarkedEntities.
// Marking the same entity twice is harmless.
func (em *EntityManager) DestroyEntity(id EntityID) {
	em.entitiesToDestroy = append(em.entitiesToDestroy, id)
}

// Exists reports whether id is still live (marked entities count as live
// until they are swept).
func (em *EntityManager) Exists(id EntityID) bool {
	_, ok := em.components[id]
	return ok
}

// Count returns the number of live entities.
func (em *EntityManager) Count() int {
	return len(em.components)
}

// RemoveMarkedEntities sweeps every entity marked by DestroyEntity.
func (em *EntityManager) RemoveMarkedEntities() {
	for _, id := range em.entitiesToDestroy {
		delete(em.components, id)
	}
	em.entitiesToDestroy = em.entitiesToDestroy[:0]
}

func (em *EntityManager) add(id EntityID, component any) {
	if compMap, exists := em.components[id]; exists {
		compMap[reflect.TypeOf(component)] = component
	}
}

func (em *EntityManager) get(id EntityID, t reflect.Type) (any, bool) {
	compMap, exists := em.components[id]
	if !exists {
		return nil, false
	}
	comp, found := compMap[t]
	return comp, found
}

// entitiesWith returns matching entities in ascending ID order so systems
// process (and render) entities in creation order.
func (em *EntityManager) entitiesWith(types ...reflect.Type) []EntityID {
	result := make([]EntityID, 0)
	for id, compMap := range em.components {
		hasAll := true
		for _, ct := range types {
			if _, found := compMap[ct]; !found {
				hasAll = false
				break
			}
		}
		if hasAll {
			result = append(result, id)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i] < result[j] })
	return result
}

func typeOf[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

// AddComponent attaches component to id, replacing one of the same type.
func AddComponent[T any](em *EntityManager, id EntityID, component T) {
	em.add(id, component)
}

// GetComponent fetches the component of type T attached to id.
func GetComponent[T any](em *EntityManager, id EntityID) (T, bool) {
	var zero T
	comp, ok := em.get(id, typeOf[T]())
	if !ok {
		return zero, false
	}
	typed, ok := comp.(T)
	return typed, ok
}

// HasComponent reports whether id carries a component of type T.
func HasComponent[T any](em *EntityManager, id EntityID) bool {
	_, ok := em.get(id, typeOf[T]())
	return ok
}

// RemoveComponent detaches the component of type T from id.
func RemoveComponent[T any](em *EntityManager, id EntityID) {
	if compMap, exists := em.components[id]; exists {
		delete(compMap, typeOf[T]())
	}
}

// GetEntitiesWith1 lists entities carrying T1.
func GetEntitiesWith1[T1 any](em *EntityManager) []EntityID {
	return em.entitiesWith(typeOf[T1]())
}

// GetEntitiesWith2 lists entities carrying both T1 and T2.
func GetEntitiesWith2[T1, T2 any](em *EntityManager) []EntityID {
	return em.entitiesWith(typeOf[T1](), typeOf[T2]())
}
