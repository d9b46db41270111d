package secondbrain

import (
	"testing"

	"github.com/etnz/secondbrain/date"
)

func TestCRMMetrics(t *testing.T) {
	s := NewMemory()

	website := s.AddProject("Website", "Acme", date.Date{})
	app := s.AddProject("App", "Nexus", date.Date{})
	parked := s.AddProject("Parked", "", date.Date{})
	parked.Status = StatusOnHold
	if err := s.UpdateProject(parked); err != nil {
		t.Fatal(err)
	}

	design, _ := s.AddTask(website.ID, "design", true, A(1000))
	design.IsCompleted = true
	if err := s.UpdateTask(design); err != nil {
		t.Fatal(err)
	}
	s.AddTask(website.ID, "build", true, A(3000))
	s.AddTask(website.ID, "retro", false, A(999)) // non-billable, never counted
	s.AddTask(app.ID, "spec", true, A(500))

	m := s.CRMMetrics()

	if m.TotalProjects != 3 {
		t.Errorf("TotalProjects = %d, want 3", m.TotalProjects)
	}
	if m.ActiveProjects != 2 {
		t.Errorf("ActiveProjects = %d, want 2 (On Hold is not active)", m.ActiveProjects)
	}
	if !m.PipelineValue.Equal(A(4500)) {
		t.Errorf("PipelineValue = %s, want 4500", m.PipelineValue)
	}
	if !m.CollectedValue.Equal(A(1000)) {
		t.Errorf("CollectedValue = %s, want 1000", m.CollectedValue)
	}

	if len(m.Projects) != 3 {
		t.Fatalf("got %d project breakdowns, want 3", len(m.Projects))
	}
	byName := map[string]ProjectProgress{}
	for _, pp := range m.Projects {
		byName[pp.Name] = pp
	}
	if got := byName["Website"].Progress; got != 1.0/3.0 {
		t.Errorf("Website progress = %v, want 1/3", got)
	}
	if got := byName["Website"].Value; !got.Equal(A(4000)) {
		t.Errorf("Website value = %s, want 4000", got)
	}
	if got := byName["App"].Progress; got != 0 {
		t.Errorf("App progress = %v, want 0", got)
	}
	// A project with no tasks reports zero progress, not NaN.
	if got := byName["Parked"].Progress; got != 0 {
		t.Errorf("Parked progress = %v, want 0", got)
	}
}

func TestCRMMetricsEmpty(t *testing.T) {
	s := NewMemory()
	m := s.CRMMetrics()
	if m.TotalProjects != 0 || m.ActiveProjects != 0 {
		t.Errorf("got %+v, want all zero", m)
	}
	if !m.PipelineValue.IsZero() || !m.CollectedValue.IsZero() {
		t.Errorf("got pipeline=%s collected=%s, want zero", m.PipelineValue, m.CollectedValue)
	}
}
