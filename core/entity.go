package core

// Entity is a unique identifier for an entity
// Allocated from a monotonic counter and never reused; 0 is the null entity
type Entity uint64

// NullEntity never refers to a live entity
const NullEntity Entity = 0
