package domain

// ResultSlot is the well-known output slot every unit publishes its solid
// under.
const ResultSlot = "result"
