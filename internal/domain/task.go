package domain

import "time"

// TaskStatus is the column of a task on the task board.
type TaskStatus string

const (
	TaskStatusDraft      TaskStatus = "draft"
	TaskStatusInProgress TaskStatus = "in-progress"
	TaskStatusDone       TaskStatus = "done"
)

// ValidTaskStatuses contains all valid task statuses in board order.
var ValidTaskStatuses = []TaskStatus{TaskStatusDraft, TaskStatusInProgress, TaskStatusDone}

// IsValidTaskStatus checks if a task status is valid.
func IsValidTaskStatus(status string) bool {
	for _, s := range ValidTaskStatuses {
		if string(s) == status {
			return true
		}
	}
	return false
}

// Task is a standalone board card that always points at a content item.
// ContentTitle is a snapshot of the item's title taken whenever ContentID is
// set or changed.
type Task struct {
	ID           string     `json:"id"`
	Title        string     `json:"title"`
	Description  string     `json:"description"`
	Status       TaskStatus `json:"status"`
	ContentID    string     `json:"contentId"`
	ContentTitle string     `json:"contentTitle"`
	DueDate      *time.Time `json:"dueDate,omitempty"`
	Assignee     string     `json:"assignee"`
	Tags         []string   `json:"tags"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
}

// Clone returns a deep copy of the task.
func (t *Task) Clone() *Task {
	out := *t
	out.DueDate = cloneTime(t.DueDate)
	if t.Tags != nil {
		out.Tags = append([]string(nil), t.Tags...)
	}
	return &out
}
