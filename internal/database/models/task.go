package models

import (
	"time"

	"github.com/google/uuid"
)

// TaskStatus represents the status of a task
type TaskStatus string

const (
	TaskStatusPending    TaskStatus = "pending"
	TaskStatusInProgress TaskStatus = "in_progress"
	TaskStatusCompleted  TaskStatus = "completed"
)

// Task represents a unit of work, optionally tied to a project and assignee
type Task struct {
	BaseModel
	Title       string     `json:"title" gorm:"not null;size:200" validate:"required,min=1,max=200"`
	Description string     `json:"description" gorm:"type:text"`
	AssignedTo  *uuid.UUID `json:"assigned_to,omitempty" gorm:"type:uuid;index"`
	ProjectID   *uuid.UUID `json:"project_id,omitempty" gorm:"type:uuid;index"`
	Status      TaskStatus `json:"status" gorm:"type:varchar(20);not null;default:'pending'" validate:"required,oneof=pending in_progress completed"`
	Deadline    *time.Time `json:"deadline,omitempty"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`

	// Relationships
	Assignee *Employee `json:"assignee,omitempty" gorm:"foreignKey:AssignedTo;constraint:OnDelete:SET NULL"`
	Project  *Project  `json:"project,omitempty" gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Task
func (Task) TableName() string {
	return "tasks"
}
