package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatuses(t *testing.T) {
	want := []TaskStatus{TaskStatusTodo, TaskStatusInProgress, TaskStatusDone}
	assert.Equal(t, want, Statuses(), "every status bucket must be enumerated exactly once")
}

func TestPriorities(t *testing.T) {
	want := []TaskPriority{TaskPriorityHigh, TaskPriorityMedium, TaskPriorityLow}
	assert.Equal(t, want, Priorities(), "every priority bucket must be enumerated exactly once")
}
