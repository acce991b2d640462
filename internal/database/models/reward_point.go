package models

import "github.com/google/uuid"

// RewardPoint is a single point award for an employee. Rows are append-only:
// there is no edit or delete path, and an employee's total is the sum over
// all of their rows.
type RewardPoint struct {
	BaseModel
	EmployeeID uuid.UUID `json:"employee_id" gorm:"type:uuid;not null;index" validate:"required"`
	Points     int       `json:"points" gorm:"not null"`
	Reason     string    `json:"reason" gorm:"not null;size:500" validate:"required,max=500"`

	// Relationships
	Employee Employee `json:"employee,omitempty" gorm:"foreignKey:EmployeeID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for RewardPoint
func (RewardPoint) TableName() string {
	return "reward_points"
}
