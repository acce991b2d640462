package service

import (
	"context"
	"fmt"
	"math"
	"time"

	"effi-track-backend/internal/database/models"
	apperrors "effi-track-backend/internal/errors"
	"effi-track-backend/internal/logger"
	"effi-track-backend/internal/mailer"
	"effi-track-backend/internal/repository"
)

// lookaheadWindow is the fixed interval ahead of now used to select
// upcoming deadlines.
const lookaheadWindow = 3 * 24 * time.Hour

// defaultSendTimeout bounds each individual mail dispatch. A timed-out send
// counts as an isolated per-message failure.
const defaultSendTimeout = 10 * time.Second

// NotifierService selects projects and tasks with upcoming deadlines,
// resolves their recipients and fans out one reminder email per
// (recipient, item) pair. Dispatch failures are isolated: a failed send is
// logged and dropped from the tally, never aborting the batch.
type NotifierService struct {
	projectRepo    repository.ProjectRepositoryInterface
	taskRepo       repository.TaskRepositoryInterface
	employeeRepo   repository.EmployeeRepositoryInterface
	assignmentRepo repository.AssignmentRepositoryInterface
	mailer         mailer.Mailer
	sendTimeout    time.Duration
	log            *logger.Logger

	// Now returns the current time. Tests override it to pin the window.
	Now func() time.Time
}

// NewNotifierService creates a new notifier service
func NewNotifierService(projectRepo repository.ProjectRepositoryInterface, taskRepo repository.TaskRepositoryInterface, employeeRepo repository.EmployeeRepositoryInterface, assignmentRepo repository.AssignmentRepositoryInterface, m mailer.Mailer, sendTimeout time.Duration) *NotifierService {
	if sendTimeout <= 0 {
		sendTimeout = defaultSendTimeout
	}
	return &NotifierService{
		projectRepo:    projectRepo,
		taskRepo:       taskRepo,
		employeeRepo:   employeeRepo,
		assignmentRepo: assignmentRepo,
		mailer:         m,
		sendTimeout:    sendTimeout,
		log:            logger.WithComponent("notifier"),
		Now:            time.Now,
	}
}

// NotifierSummary is the result of one notifier run. A summary is returned
// even when zero emails were sent; only the missing-credential case raises
// an error instead.
type NotifierSummary struct {
	Success         bool     `json:"success"`
	Message         string   `json:"message"`
	EmailsSent      []string `json:"emails_sent"`
	ProjectsChecked int      `json:"projects_checked"`
	TasksChecked    int      `json:"tasks_checked"`
}

// reminder is one rendered (recipient, item) message awaiting dispatch
type reminder struct {
	to      string
	subject string
	body    string
}

// Run executes one notifier pass over the lookahead window.
//
// Per-item read errors (a failed project query, an unresolvable assignee)
// abort that item's contribution and are logged; they do not stop the run.
// Per-message send errors are isolated the same way. Recipients with no
// email on file still go through dispatch; the transport failure is
// swallowed per item. There is no deduplication: an employee assigned to
// two soon-due items receives two separate emails.
func (s *NotifierService) Run(ctx context.Context) (*NotifierSummary, error) {
	if !s.mailer.Configured() {
		return nil, apperrors.ErrMailerNotConfigured
	}

	now := s.Now().UTC()
	horizon := now.Add(lookaheadWindow)

	var reminders []reminder

	projects, err := s.projectRepo.GetOngoingEndingBetween(now, horizon)
	if err != nil {
		s.log.WithError(err).Error("failed to select due projects")
		projects = nil
	}
	for i := range projects {
		project := &projects[i]
		recipients, err := s.resolveProjectRecipients(project)
		if err != nil {
			s.log.WithError(err).WithField("project_id", project.ID).
				Error("failed to resolve project recipients")
			continue
		}
		daysLeft := daysUntil(now, *project.EndDate)
		for _, e := range recipients {
			reminders = append(reminders, renderProjectReminder(e.Name, e.Email, project.Title, daysLeft))
		}
	}

	tasks, err := s.taskRepo.GetOpenDueBetween(now, horizon)
	if err != nil {
		s.log.WithError(err).Error("failed to select due tasks")
		tasks = nil
	}
	for i := range tasks {
		task := &tasks[i]
		if task.AssignedTo == nil {
			continue
		}
		assignee, err := s.employeeRepo.GetByID(*task.AssignedTo)
		if err != nil {
			s.log.WithError(err).WithField("task_id", task.ID).
				Error("failed to resolve task assignee")
			continue
		}
		daysLeft := daysUntil(now, *task.Deadline)
		reminders = append(reminders, renderTaskReminder(assignee.Name, assignee.Email, task.Title, task.Status, daysLeft))
	}

	sent := make([]string, 0, len(reminders))
	for _, r := range reminders {
		sendCtx, cancel := context.WithTimeout(ctx, s.sendTimeout)
		err := s.mailer.Send(sendCtx, r.to, r.subject, r.body)
		cancel()
		if err != nil {
			s.log.WithError(err).WithField("to", r.to).Warn("failed to send reminder")
			continue
		}
		sent = append(sent, r.to)
	}

	return &NotifierSummary{
		Success:         true,
		Message:         fmt.Sprintf("Sent %d deadline reminder(s)", len(sent)),
		EmailsSent:      sent,
		ProjectsChecked: len(projects),
		TasksChecked:    len(tasks),
	}, nil
}

// resolveProjectRecipients batch-fetches the employees assigned to a project.
// A project with zero resolvable recipients yields zero messages, not an error.
func (s *NotifierService) resolveProjectRecipients(project *models.Project) ([]models.Employee, error) {
	ids, err := s.assignmentRepo.GetEmployeeIDsByProject(project.ID)
	if err != nil {
		return nil, err
	}
	return s.employeeRepo.GetByIDs(ids)
}

// daysUntil computes the whole days left until a deadline, rounding up.
// Anything due within the next 24 hours counts as 1 day.
func daysUntil(now, deadline time.Time) int {
	return int(math.Ceil(deadline.Sub(now).Hours() / 24))
}

func dayWord(n int) string {
	if n == 1 {
		return "day"
	}
	return "days"
}

func renderProjectReminder(name, email, title string, daysLeft int) reminder {
	return reminder{
		to:      email,
		subject: fmt.Sprintf("Deadline approaching: %s", title),
		body: fmt.Sprintf(
			"<p>Hi %s,</p><p>The project <strong>%s</strong> is due in %d %s.</p><p>Please make sure your work is wrapped up in time.</p>",
			name, title, daysLeft, dayWord(daysLeft)),
	}
}

func renderTaskReminder(name, email, title string, status models.TaskStatus, daysLeft int) reminder {
	return reminder{
		to:      email,
		subject: fmt.Sprintf("Deadline approaching: %s", title),
		body: fmt.Sprintf(
			"<p>Hi %s,</p><p>Your task <strong>%s</strong> (currently %s) is due in %d %s.</p><p>Please make sure it is completed in time.</p>",
			name, title, status, daysLeft, dayWord(daysLeft)),
	}
}
