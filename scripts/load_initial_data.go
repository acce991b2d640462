package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"effi-track-backend/internal/config"
	"effi-track-backend/internal/database"
	"effi-track-backend/internal/database/models"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Simple structures that directly match DB schema. Cross-references use
// natural keys (employee email, project title) so the files stay editable
// by hand.
type EmployeeData struct {
	Name       string `yaml:"name"`
	Email      string `yaml:"email"`
	Department string `yaml:"department,omitempty"`
	Status     string `yaml:"status,omitempty"`
}

type ProjectData struct {
	Title          string   `yaml:"title"`
	Description    string   `yaml:"description,omitempty"`
	Status         string   `yaml:"status,omitempty"`
	StartDate      string   `yaml:"start_date"`
	EndDate        string   `yaml:"end_date,omitempty"`
	AssigneeEmails []string `yaml:"assignee_emails,omitempty"`
}

type TaskData struct {
	Title         string `yaml:"title"`
	Description   string `yaml:"description,omitempty"`
	Status        string `yaml:"status,omitempty"`
	Deadline      string `yaml:"deadline,omitempty"`
	AssigneeEmail string `yaml:"assignee_email,omitempty"`
	ProjectTitle  string `yaml:"project_title,omitempty"`
}

type RewardData struct {
	EmployeeEmail string `yaml:"employee_email"`
	Points        int    `yaml:"points"`
	Reason        string `yaml:"reason"`
}

// File structures
type EmployeesFile struct {
	Employees []EmployeeData `yaml:"employees"`
}

type ProjectsFile struct {
	Projects []ProjectData `yaml:"projects"`
}

type TasksFile struct {
	Tasks []TaskData `yaml:"tasks"`
}

type RewardsFile struct {
	Rewards []RewardData `yaml:"rewards"`
}

func main() {
	log.Println("Loading initial data from YAML files...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Connect to database with retry (for dockerized Postgres startup)
	db, err := connectWithRetry(cfg.DatabaseURL, 60, time.Second)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := loadDataFromYAMLFiles(db, "scripts/data"); err != nil {
		log.Fatalf("Failed to load data from YAML files: %v", err)
	}

	log.Println("Initial data loaded successfully!")
}

// connectWithRetry attempts to initialize the DB with retries to wait for Postgres readiness.
func connectWithRetry(dsn string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	opts := &database.Options{
		LogLevel: logger.Silent,
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(dsn, opts)
		if err == nil {
			return db, nil
		}
		if attempt%10 == 0 || attempt == maxAttempts {
			log.Printf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}

func loadDataFromYAMLFiles(db *gorm.DB, dataDir string) error {
	employees, err := loadEmployees(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load employees: %w", err)
	}
	projects, err := loadProjects(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load projects: %w", err)
	}
	tasks, err := loadTasks(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load tasks: %w", err)
	}
	rewards, err := loadRewards(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load rewards: %w", err)
	}

	// Insert in dependency order: employees first, then everything that
	// references them.
	employeeByEmail := make(map[string]*models.Employee, len(employees))
	for _, data := range employees {
		employee, err := upsertEmployee(db, data)
		if err != nil {
			return fmt.Errorf("failed to seed employee %q: %w", data.Email, err)
		}
		employeeByEmail[data.Email] = employee
	}
	log.Printf("Seeded %d employee(s)", len(employees))

	projectByTitle := make(map[string]*models.Project, len(projects))
	for _, data := range projects {
		project, err := upsertProject(db, data, employeeByEmail)
		if err != nil {
			return fmt.Errorf("failed to seed project %q: %w", data.Title, err)
		}
		projectByTitle[data.Title] = project
	}
	log.Printf("Seeded %d project(s)", len(projects))

	for _, data := range tasks {
		if err := upsertTask(db, data, employeeByEmail, projectByTitle); err != nil {
			return fmt.Errorf("failed to seed task %q: %w", data.Title, err)
		}
	}
	log.Printf("Seeded %d task(s)", len(tasks))

	for _, data := range rewards {
		if err := insertReward(db, data, employeeByEmail); err != nil {
			return fmt.Errorf("failed to seed reward for %q: %w", data.EmployeeEmail, err)
		}
	}
	log.Printf("Seeded %d reward(s)", len(rewards))

	return nil
}

func loadEmployees(dataDir string) ([]EmployeeData, error) {
	var file EmployeesFile
	if err := readYAML(filepath.Join(dataDir, "employees.yaml"), &file); err != nil {
		return nil, err
	}
	return file.Employees, nil
}

func loadProjects(dataDir string) ([]ProjectData, error) {
	var file ProjectsFile
	if err := readYAML(filepath.Join(dataDir, "projects.yaml"), &file); err != nil {
		return nil, err
	}
	return file.Projects, nil
}

func loadTasks(dataDir string) ([]TaskData, error) {
	var file TasksFile
	if err := readYAML(filepath.Join(dataDir, "tasks.yaml"), &file); err != nil {
		return nil, err
	}
	return file.Tasks, nil
}

func loadRewards(dataDir string) ([]RewardData, error) {
	var file RewardsFile
	if err := readYAML(filepath.Join(dataDir, "rewards.yaml"), &file); err != nil {
		return nil, err
	}
	return file.Rewards, nil
}

func readYAML(path string, target interface{}) error {
	// Missing files are fine; each section is optional
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	return yaml.Unmarshal(raw, target)
}

func upsertEmployee(db *gorm.DB, data EmployeeData) (*models.Employee, error) {
	status := models.EmployeeStatusActive
	if data.Status != "" {
		status = models.EmployeeStatus(data.Status)
	}

	var existing models.Employee
	err := db.First(&existing, "email = ?", data.Email).Error
	if err == nil {
		existing.Name = data.Name
		existing.Department = data.Department
		existing.Status = status
		return &existing, db.Save(&existing).Error
	}
	if err != gorm.ErrRecordNotFound {
		return nil, err
	}

	employee := &models.Employee{
		Name:       data.Name,
		Email:      data.Email,
		Department: data.Department,
		Status:     status,
	}
	return employee, db.Create(employee).Error
}

func upsertProject(db *gorm.DB, data ProjectData, employeeByEmail map[string]*models.Employee) (*models.Project, error) {
	startDate, err := time.Parse("2006-01-02", data.StartDate)
	if err != nil {
		return nil, fmt.Errorf("invalid start_date %q: %w", data.StartDate, err)
	}
	var endDate *time.Time
	if data.EndDate != "" {
		parsed, err := time.Parse("2006-01-02", data.EndDate)
		if err != nil {
			return nil, fmt.Errorf("invalid end_date %q: %w", data.EndDate, err)
		}
		endDate = &parsed
	}
	status := models.ProjectStatusOngoing
	if data.Status != "" {
		status = models.ProjectStatus(data.Status)
	}

	var project models.Project
	err = db.First(&project, "title = ?", data.Title).Error
	if err == gorm.ErrRecordNotFound {
		project = models.Project{
			Title:       data.Title,
			Description: data.Description,
			Status:      status,
			StartDate:   startDate,
			EndDate:     endDate,
		}
		if err := db.Create(&project).Error; err != nil {
			return nil, err
		}
	} else if err != nil {
		return nil, err
	} else {
		project.Description = data.Description
		project.Status = status
		project.StartDate = startDate
		project.EndDate = endDate
		if err := db.Save(&project).Error; err != nil {
			return nil, err
		}
	}

	// Replace the assignee set to match the file
	if err := db.Where("project_id = ?", project.ID).Delete(&models.ProjectAssignment{}).Error; err != nil {
		return nil, err
	}
	for _, email := range data.AssigneeEmails {
		employee, ok := employeeByEmail[email]
		if !ok {
			return nil, fmt.Errorf("unknown assignee email %q", email)
		}
		assignment := &models.ProjectAssignment{
			ProjectID:  project.ID,
			EmployeeID: employee.ID,
		}
		if err := db.Create(assignment).Error; err != nil {
			return nil, err
		}
	}

	return &project, nil
}

func upsertTask(db *gorm.DB, data TaskData, employeeByEmail map[string]*models.Employee, projectByTitle map[string]*models.Project) error {
	status := models.TaskStatusPending
	if data.Status != "" {
		status = models.TaskStatus(data.Status)
	}
	var deadline *time.Time
	if data.Deadline != "" {
		parsed, err := time.Parse("2006-01-02", data.Deadline)
		if err != nil {
			return fmt.Errorf("invalid deadline %q: %w", data.Deadline, err)
		}
		deadline = &parsed
	}

	task := models.Task{
		Title:       data.Title,
		Description: data.Description,
		Status:      status,
		Deadline:    deadline,
	}
	if data.AssigneeEmail != "" {
		employee, ok := employeeByEmail[data.AssigneeEmail]
		if !ok {
			return fmt.Errorf("unknown assignee email %q", data.AssigneeEmail)
		}
		task.AssignedTo = &employee.ID
	}
	if data.ProjectTitle != "" {
		project, ok := projectByTitle[data.ProjectTitle]
		if !ok {
			return fmt.Errorf("unknown project title %q", data.ProjectTitle)
		}
		task.ProjectID = &project.ID
	}
	if status == models.TaskStatusCompleted {
		now := time.Now()
		task.CompletedAt = &now
	}

	var existing models.Task
	err := db.First(&existing, "title = ?", data.Title).Error
	if err == gorm.ErrRecordNotFound {
		return db.Create(&task).Error
	}
	if err != nil {
		return err
	}
	task.BaseModel = existing.BaseModel
	return db.Save(&task).Error
}

func insertReward(db *gorm.DB, data RewardData, employeeByEmail map[string]*models.Employee) error {
	employee, ok := employeeByEmail[data.EmployeeEmail]
	if !ok {
		return fmt.Errorf("unknown employee email %q", data.EmployeeEmail)
	}

	// The ledger is append-only, so only insert if an identical row is not
	// already present. Keeps reruns idempotent.
	var count int64
	err := db.Model(&models.RewardPoint{}).
		Where("employee_id = ? AND points = ? AND reason = ?", employee.ID, data.Points, data.Reason).
		Count(&count).Error
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	return db.Create(&models.RewardPoint{
		EmployeeID: employee.ID,
		Points:     data.Points,
		Reason:     data.Reason,
	}).Error
}
