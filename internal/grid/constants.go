package grid

// Conflict kinds
const (
	ConflictMultipleMain      = "multiple_main"
	ConflictMultipleFriend    = "multiple_friend"
	ConflictDuplicatePosition = "duplicate_position"
	ConflictOutOfRange        = "out_of_range"
)
