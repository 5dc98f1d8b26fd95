package models

// TitleMaxLength is the maximum number of characters in a to-do title
const TitleMaxLength = 200

// DefaultCompleted is the state given to items created without one
const DefaultCompleted = false
