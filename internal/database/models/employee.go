package models

// EmployeeStatus represents the status of an employee
type EmployeeStatus string

const (
	EmployeeStatusActive   EmployeeStatus = "active"
	EmployeeStatusInactive EmployeeStatus = "inactive"
)

// Employee represents an employee tracked by the dashboard
type Employee struct {
	BaseModel
	Name       string         `json:"name" gorm:"not null;size:200" validate:"required,min=1,max=200"`
	Email      string         `json:"email" gorm:"uniqueIndex;not null;size:255" validate:"required,email,max=255"`
	Department string         `json:"department" gorm:"size:100" validate:"max=100"`
	Status     EmployeeStatus `json:"status" gorm:"type:varchar(20);not null;default:'active'" validate:"required,oneof=active inactive"`

	// Relationships
	Assignments  []ProjectAssignment `json:"assignments,omitempty" gorm:"foreignKey:EmployeeID;constraint:OnDelete:CASCADE"`
	Tasks        []Task              `json:"tasks,omitempty" gorm:"foreignKey:AssignedTo;constraint:OnDelete:SET NULL"`
	RewardPoints []RewardPoint       `json:"reward_points,omitempty" gorm:"foreignKey:EmployeeID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Employee
func (Employee) TableName() string {
	return "employees"
}
