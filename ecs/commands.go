package ecs

// Commands buffers structural changes made while systems run.
// They are applied by Flush at the end of the frame, so systems never
// observe entities appearing or vanishing mid-frame.
type Commands struct {
	spawns  [][]any
	deletes []EntityId
}

func newCommands() *Commands {
	return &Commands{}
}

// Spawn queues an entity spawn with the given components.
func (c *Commands) Spawn(components ...any) {
	c.spawns = append(c.spawns, components)
}

// Delete queues an entity deletion.
func (c *Commands) Delete(entity EntityId) {
	c.deletes = append(c.deletes, entity)
}

// Pending returns the number of queued spawns and deletes.
func (c *Commands) Pending() (spawns, deletes int) {
	return len(c.spawns), len(c.deletes)
}

// Flush applies deletes and then spawns to storage, resetting the buffer.
// It returns the ids of the spawned entities in queue order.
// Deleting an entity twice, or a stale id, is a no-op.
func (c *Commands) Flush(storage *Storage) []EntityId {
	for _, id := range c.deletes {
		storage.Delete(id)
	}

	var spawned []EntityId
	if len(c.spawns) > 0 {
		spawned = make([]EntityId, 0, len(c.spawns))
	}
	for _, components := range c.spawns {
		spawned = append(spawned, storage.Spawn(components...))
	}

	clear(c.spawns)
	c.spawns = c.spawns[:0]
	c.deletes = c.deletes[:0]
	return spawned
}
