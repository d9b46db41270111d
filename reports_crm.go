package secondbrain

// ProjectProgress is the per-project slice of the CRM breakdown.
type ProjectProgress struct {
	Name     string
	Progress float64 // completed tasks over all tasks, in [0,1]; 0 for a project with no tasks
	Value    Amount  // sum of billable task amounts on the project
}

// CRMMetrics is a point-in-time derivation over projects and tasks.
type CRMMetrics struct {
	ActiveProjects int // projects whose status is neither Completed nor On Hold
	TotalProjects  int
	PipelineValue  Amount // billable task amounts, regardless of completion
	CollectedValue Amount // billable task amounts restricted to completed tasks
	Projects       []ProjectProgress
}

// CRMMetrics derives the CRM dashboard figures from the current projects
// and tasks. It never mutates state.
func (s *Store) CRMMetrics() CRMMetrics {
	projects := s.Projects()
	tasks := s.Tasks("")

	m := CRMMetrics{TotalProjects: len(projects)}
	for _, p := range projects {
		if p.Status.Active() {
			m.ActiveProjects++
		}
	}
	for _, t := range tasks {
		if !t.IsBillable {
			continue
		}
		m.PipelineValue = m.PipelineValue.Add(t.Amount)
		if t.IsCompleted {
			m.CollectedValue = m.CollectedValue.Add(t.Amount)
		}
	}
	m.PipelineValue = m.PipelineValue.Round()
	m.CollectedValue = m.CollectedValue.Round()

	for _, p := range projects {
		pp := ProjectProgress{Name: p.Name}
		var total, completed int
		for _, t := range tasks {
			if t.ProjectID != p.ID {
				continue
			}
			total++
			if t.IsCompleted {
				completed++
			}
			if t.IsBillable {
				pp.Value = pp.Value.Add(t.Amount)
			}
		}
		if total > 0 {
			pp.Progress = float64(completed) / float64(total)
		}
		pp.Value = pp.Value.Round()
		m.Projects = append(m.Projects, pp)
	}
	return m
}
