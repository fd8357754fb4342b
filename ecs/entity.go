package ecs

const (
	indexBits      = 20
	generationBits = 12

	// MaxSlots is the number of entities a single archetype can hold at once.
	MaxSlots = 1 << indexBits

	indexMask      = MaxSlots - 1
	generationMask = 1<<generationBits - 1
)

// EntityId encodes the archetype ID (upper 32 bits), the slot generation
// (next 12 bits) and the slot index (lower 20 bits). A slot's generation is
// bumped each time it is freed, so ids held past a Delete stop resolving.
type EntityId uint64

// NewEntityId creates an EntityId from an archetype ID, slot generation and index
func NewEntityId(archetypeId uint32, generation uint16, index uint32) EntityId {
	return EntityId(uint64(archetypeId)<<32 |
		uint64(generation&generationMask)<<indexBits |
		uint64(index&indexMask))
}

// ArchetypeId extracts the archetype ID from the entity ID
func (e EntityId) ArchetypeId() uint32 {
	return uint32(e >> 32)
}

// Generation extracts the slot generation from the entity ID
func (e EntityId) Generation() uint16 {
	return uint16((e >> indexBits) & generationMask)
}

// Index extracts the slot index from the entity ID
func (e EntityId) Index() uint32 {
	return uint32(e & indexMask)
}
