package store

// Derived statistics: pure read projections over a snapshot, recomputed on
// every call, never cached.

type Breakdown struct {
	Present int `json:"present"`
	Late    int `json:"late"`
	Absent  int `json:"absent"`
	Total   int `json:"total"`
}

type DashboardStats struct {
	ActiveInterns  int `json:"active_interns"`
	TotalTasks     int `json:"total_tasks"`
	CompletedTasks int `json:"completed_tasks"`
	PendingTasks   int `json:"pending_tasks"`
}

// CompletionRate returns the completed fraction of the given tasks,
// 0 when there are none.
func CompletionRate(tasks []Task) float64 {
	if len(tasks) == 0 {
		return 0
	}
	var completed int
	for _, t := range tasks {
		if t.Status == TaskCompleted {
			completed++
		}
	}
	return float64(completed) / float64(len(tasks))
}

// AverageRating returns the mean feedback rating. ok is false when there is
// no feedback; callers render the "N/A" sentinel in that case.
func AverageRating(feedback []Feedback) (avg float64, ok bool) {
	if len(feedback) == 0 {
		return 0, false
	}
	var sum int
	for _, f := range feedback {
		sum += f.Rating
	}
	return float64(sum) / float64(len(feedback)), true
}

// AttendanceBreakdown counts the given records by status.
func AttendanceBreakdown(records []Attendance) Breakdown {
	b := Breakdown{Total: len(records)}
	for _, r := range records {
		switch r.Status {
		case AttendancePresent:
			b.Present++
		case AttendanceLate:
			b.Late++
		case AttendanceAbsent:
			b.Absent++
		}
	}
	return b
}

// Stats computes the admin dashboard counters over the snapshot.
func Stats(s State) DashboardStats {
	st := DashboardStats{TotalTasks: len(s.Tasks)}
	for _, i := range s.Interns {
		if i.Status == InternActive {
			st.ActiveInterns++
		}
	}
	for _, t := range s.Tasks {
		switch t.Status {
		case TaskCompleted:
			st.CompletedTasks++
		case TaskPending:
			st.PendingTasks++
		}
	}
	return st
}

// Per-intern selectors used by the dashboards.

func TasksFor(s State, internID string) []Task {
	tasks := make([]Task, 0, len(s.Tasks))
	for _, t := range s.Tasks {
		if t.InternID == internID {
			tasks = append(tasks, t)
		}
	}
	return tasks
}

func FeedbackFor(s State, internID string) []Feedback {
	feedback := make([]Feedback, 0, len(s.Feedback))
	for _, f := range s.Feedback {
		if f.InternID == internID {
			feedback = append(feedback, f)
		}
	}
	return feedback
}

func AttendanceFor(s State, internID string) []Attendance {
	records := make([]Attendance, 0, len(s.Attendance))
	for _, a := range s.Attendance {
		if a.InternID == internID {
			records = append(records, a)
		}
	}
	return records
}

func DocumentsFor(s State, internID string) []Document {
	docs := make([]Document, 0, len(s.Documents))
	for _, d := range s.Documents {
		if d.InternID == internID {
			docs = append(docs, d)
		}
	}
	return docs
}
