package store

import "testing"

func TestCompletionRate(t *testing.T) {
	tests := []struct {
		name  string
		tasks []Task
		want  float64
	}{
		{"no tasks", nil, 0},
		{"none completed", []Task{{Status: TaskPending}, {Status: TaskInProgress}}, 0},
		{"half completed", []Task{{Status: TaskCompleted}, {Status: TaskPending}}, 0.5},
		{"all completed", []Task{{Status: TaskCompleted}, {Status: TaskCompleted}}, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CompletionRate(tt.tasks); got != tt.want {
				t.Errorf("CompletionRate() = %v; want %v", got, tt.want)
			}
		})
	}
}

func TestAverageRating_emptyIsNotANumber(t *testing.T) {
	if _, ok := AverageRating(nil); ok {
		t.Error("ok = true for no feedback; want false")
	}

	avg, ok := AverageRating([]Feedback{{Rating: 4}, {Rating: 5}})
	if !ok {
		t.Fatal("ok = false; want true")
	}
	if avg != 4.5 {
		t.Errorf("avg = %v; want 4.5", avg)
	}
}

func TestAttendanceBreakdown(t *testing.T) {
	records := []Attendance{
		{Status: AttendancePresent},
		{Status: AttendancePresent},
		{Status: AttendanceLate},
		{Status: AttendanceAbsent},
	}
	got := AttendanceBreakdown(records)
	want := Breakdown{Present: 2, Late: 1, Absent: 1, Total: 4}
	if got != want {
		t.Errorf("AttendanceBreakdown() = %+v; want %+v", got, want)
	}
}

func TestStats_dashboardCounters(t *testing.T) {
	s := State{
		Interns: []Intern{
			{ID: "i1", Status: InternActive},
			{ID: "i2", Status: InternCompleted},
		},
		Tasks: []Task{
			{ID: "t1", Status: TaskCompleted},
			{ID: "t2", Status: TaskPending},
			{ID: "t3", Status: TaskInProgress},
		},
	}
	got := Stats(s)
	want := DashboardStats{ActiveInterns: 1, TotalTasks: 3, CompletedTasks: 1, PendingTasks: 1}
	if got != want {
		t.Errorf("Stats() = %+v; want %+v", got, want)
	}
}

func TestPerInternSelectors(t *testing.T) {
	s := State{
		Tasks:      []Task{{ID: "t1", InternID: "i1"}, {ID: "t2", InternID: "i2"}},
		Feedback:   []Feedback{{ID: "f1", InternID: "i1"}},
		Attendance: []Attendance{{ID: "a1", InternID: "i2"}},
		Documents:  []Document{{ID: "d1", InternID: "i1"}, {ID: "d2", InternID: "i1"}},
	}
	if got := TasksFor(s, "i1"); len(got) != 1 || got[0].ID != "t1" {
		t.Errorf("TasksFor() = %+v", got)
	}
	if got := FeedbackFor(s, "i1"); len(got) != 1 {
		t.Errorf("FeedbackFor() = %+v", got)
	}
	if got := AttendanceFor(s, "i1"); len(got) != 0 {
		t.Errorf("AttendanceFor() = %+v", got)
	}
	if got := DocumentsFor(s, "i1"); len(got) != 2 {
		t.Errorf("DocumentsFor() = %+v", got)
	}
}
