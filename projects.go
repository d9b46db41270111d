package secondbrain

import (
	"fmt"

	"github.com/etnz/secondbrain/date"
)

// ProjectStatus is the lifecycle state of a project.
type ProjectStatus string

const (
	StatusPlanning   ProjectStatus = "Planning"
	StatusInProgress ProjectStatus = "In Progress"
	StatusCompleted  ProjectStatus = "Completed"
	StatusOnHold     ProjectStatus = "On Hold"
)

// ParseProjectStatus parses a string into a ProjectStatus.
func ParseProjectStatus(s string) (ProjectStatus, error) {
	switch ProjectStatus(s) {
	case StatusPlanning, StatusInProgress, StatusCompleted, StatusOnHold:
		return ProjectStatus(s), nil
	default:
		return "", fmt.Errorf("unknown project status: %q", s)
	}
}

// Active reports whether the status counts toward the active-project metric.
func (st ProjectStatus) Active() bool {
	return st != StatusCompleted && st != StatusOnHold
}

// Project is a client engagement owning zero or more tasks.
type Project struct {
	ID         string        `json:"id"`
	Name       string        `json:"name"`
	ClientName string        `json:"clientName"`
	Status     ProjectStatus `json:"status"`
	Deadline   date.Date     `json:"deadline"`
	CreatedAt  int64         `json:"createdAt"` // unix milliseconds
}

// Subtask is an inline checklist item on a task. It is not independently
// addressable; subtasks are mutated by replacing the owning task's list.
type Subtask struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	IsCompleted bool   `json:"isCompleted"`
}

// Task belongs to exactly one project. CompletedAt is set exactly when the
// task is completed: it is non-zero iff IsCompleted is true.
type Task struct {
	ID          string    `json:"id"`
	ProjectID   string    `json:"projectId"`
	Title       string    `json:"title"`
	IsCompleted bool      `json:"isCompleted"`
	CompletedAt int64     `json:"completedAt,omitempty"` // unix milliseconds, 0 when incomplete
	IsBillable  bool      `json:"isBillable"`
	Amount      Amount    `json:"amount"`
	Subtasks    []Subtask `json:"subtasks"`
}

// Projects returns all projects in creation order.
func (s *Store) Projects() []Project {
	return records[Project](s, colProjects)
}

// AddProject creates a project in the Planning state.
func (s *Store) AddProject(name, clientName string, deadline date.Date) Project {
	now := s.now()
	project := Project{
		ID:         newID(now),
		Name:       name,
		ClientName: clientName,
		Status:     StatusPlanning,
		Deadline:   deadline,
		CreatedAt:  now.UnixMilli(),
	}
	projects := append(s.Projects(), project)
	s.write(colProjects, projects)
	s.bus.notify()
	return project
}

// UpdateProject fully replaces the stored project with the same id.
func (s *Store) UpdateProject(updated Project) error {
	projects := s.Projects()
	for i, p := range projects {
		if p.ID == updated.ID {
			projects[i] = updated
			s.write(colProjects, projects)
			s.bus.notify()
			return nil
		}
	}
	return &NotFoundError{Kind: "project", ID: updated.ID}
}

// DeleteProject removes the project and every task whose ProjectID matches,
// as a single logical operation: both collections are written before
// subscribers are notified.
func (s *Store) DeleteProject(id string) error {
	projects := s.Projects()
	found := false
	for i, p := range projects {
		if p.ID == id {
			projects = append(projects[:i], projects[i+1:]...)
			found = true
			break
		}
	}
	if !found {
		return &NotFoundError{Kind: "project", ID: id}
	}
	remaining := make([]Task, 0)
	for _, t := range s.Tasks("") {
		if t.ProjectID != id {
			remaining = append(remaining, t)
		}
	}
	s.write(colProjects, projects)
	s.write(colTasks, remaining)
	s.bus.notify()
	return nil
}

// Tasks returns tasks in creation order, filtered to a project when
// projectID is non-empty.
func (s *Store) Tasks(projectID string) []Task {
	tasks := records[Task](s, colTasks)
	if projectID == "" {
		return tasks
	}
	var out []Task
	for _, t := range tasks {
		if t.ProjectID == projectID {
			out = append(out, t)
		}
	}
	return out
}

// AddTask creates an incomplete task under an existing project.
func (s *Store) AddTask(projectID, title string, isBillable bool, amount Amount) (Task, error) {
	if projectID == "" {
		return Task{}, &ValidationError{Field: "projectId", Reason: "required"}
	}
	if !s.hasProject(projectID) {
		return Task{}, &NotFoundError{Kind: "project", ID: projectID}
	}
	now := s.now()
	task := Task{
		ID:         newID(now),
		ProjectID:  projectID,
		Title:      title,
		IsBillable: isBillable,
		Amount:     amount,
		Subtasks:   []Subtask{},
	}
	tasks := append(s.Tasks(""), task)
	s.write(colTasks, tasks)
	s.bus.notify()
	return task, nil
}

// UpdateTask fully replaces the stored task, maintaining the completion
// timestamp invariant: completing a task stamps CompletedAt once, and an
// incomplete task never carries one.
func (s *Store) UpdateTask(updated Task) error {
	switch {
	case updated.IsCompleted && updated.CompletedAt == 0:
		updated.CompletedAt = s.now().UnixMilli()
	case !updated.IsCompleted:
		updated.CompletedAt = 0
	}
	tasks := s.Tasks("")
	for i, t := range tasks {
		if t.ID == updated.ID {
			tasks[i] = updated
			s.write(colTasks, tasks)
			s.bus.notify()
			return nil
		}
	}
	return &NotFoundError{Kind: "task", ID: updated.ID}
}

// DeleteTask removes the task with the given id.
func (s *Store) DeleteTask(id string) error {
	tasks := s.Tasks("")
	for i, t := range tasks {
		if t.ID == id {
			tasks = append(tasks[:i], tasks[i+1:]...)
			s.write(colTasks, tasks)
			s.bus.notify()
			return nil
		}
	}
	return &NotFoundError{Kind: "task", ID: id}
}

// AddSubtask appends an inline subtask to a task's checklist.
func (s *Store) AddSubtask(taskID, title string) (Subtask, error) {
	tasks := s.Tasks("")
	for i, t := range tasks {
		if t.ID == taskID {
			sub := Subtask{ID: newID(s.now()), Title: title}
			tasks[i].Subtasks = append(tasks[i].Subtasks, sub)
			s.write(colTasks, tasks)
			s.bus.notify()
			return sub, nil
		}
	}
	return Subtask{}, &NotFoundError{Kind: "task", ID: taskID}
}

func (s *Store) hasProject(id string) bool {
	for _, p := range s.Projects() {
		if p.ID == id {
			return true
		}
	}
	return false
}
