package model

import "time"

// Priority ranks a task. Unknown values rank after low.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// Rank returns the sort rank of p: high < medium < low < anything else.
func (p Priority) Rank() int {
	switch p {
	case PriorityHigh:
		return 0
	case PriorityMedium:
		return 1
	case PriorityLow:
		return 2
	}
	return 3
}

// Valid reports whether p is one of the known priorities.
func (p Priority) Valid() bool {
	return p.Rank() < 3
}

// Task is a persisted to-do item.
type Task struct {
	ID          int64     `json:"id"`          // Unix-millisecond identity
	Description string    `json:"description"` // What needs doing
	DueDate     string    `json:"dueDate"`     // ISO date, raw token, or empty
	Priority    Priority  `json:"priority"`    // high | medium | low
	Completed   bool      `json:"completed"`   // Toggled externally only
	Created     time.Time `json:"created"`     // Creation instant
}
