package models

import "github.com/google/uuid"

// ProjectAssignment links an employee to a project. The pair is unique;
// deleting either parent cascades the row away. The whole set for a project
// is replaced in one shot when assignees are edited (no incremental diff).
type ProjectAssignment struct {
	BaseModel
	ProjectID  uuid.UUID `json:"project_id" gorm:"type:uuid;not null;uniqueIndex:idx_project_employee" validate:"required"`
	EmployeeID uuid.UUID `json:"employee_id" gorm:"type:uuid;not null;uniqueIndex:idx_project_employee" validate:"required"`

	// Relationships
	Project  Project  `json:"project,omitempty" gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"`
	Employee Employee `json:"employee,omitempty" gorm:"foreignKey:EmployeeID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for ProjectAssignment
func (ProjectAssignment) TableName() string {
	return "project_assignments"
}
