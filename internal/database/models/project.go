package models

import "time"

// ProjectStatus represents the status of a project
type ProjectStatus string

const (
	ProjectStatusOngoing   ProjectStatus = "ongoing"
	ProjectStatusCompleted ProjectStatus = "completed"
)

// Project represents a project tracked by the dashboard.
// EndDate is nullable; when present it is assumed to be >= StartDate
// (not enforced at the schema level).
type Project struct {
	BaseModel
	Title       string        `json:"title" gorm:"not null;size:200" validate:"required,min=1,max=200"`
	Description string        `json:"description" gorm:"type:text"`
	Status      ProjectStatus `json:"status" gorm:"type:varchar(20);not null;default:'ongoing'" validate:"required,oneof=ongoing completed"`
	StartDate   time.Time     `json:"start_date" gorm:"not null" validate:"required"`
	EndDate     *time.Time    `json:"end_date,omitempty"`

	// Relationships
	Assignments []ProjectAssignment `json:"assignments,omitempty" gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"`
	Tasks       []Task              `json:"tasks,omitempty" gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Project
func (Project) TableName() string {
	return "projects"
}
