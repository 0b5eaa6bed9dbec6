package store

// State is one immutable snapshot of all domain collections plus the
// current session user. Reduce never modifies a snapshot in place; holders
// of a previous snapshot never observe a mutation.
type State struct {
	CurrentUser *User        `json:"current_user"`
	Interns     []Intern     `json:"interns"`
	Admins      []Admin      `json:"admins"`
	Tasks       []Task       `json:"tasks"`
	Feedback    []Feedback   `json:"feedback"`
	Attendance  []Attendance `json:"attendance"`
	Documents   []Document   `json:"documents"`
	News        []NewsItem   `json:"news"`
}

// Clone returns a deep copy of the snapshot. Collections are copied so a
// caller can hold the result across later dispatches.
func (s State) Clone() State {
	c := State{
		Interns:    make([]Intern, len(s.Interns)),
		Admins:     append([]Admin(nil), s.Admins...),
		Tasks:      append([]Task(nil), s.Tasks...),
		Feedback:   append([]Feedback(nil), s.Feedback...),
		Attendance: append([]Attendance(nil), s.Attendance...),
		Documents:  append([]Document(nil), s.Documents...),
		News:       append([]NewsItem(nil), s.News...),
	}
	for i, intern := range s.Interns {
		intern.Skills = append([]string(nil), intern.Skills...)
		c.Interns[i] = intern
	}
	if s.CurrentUser != nil {
		usr := *s.CurrentUser
		c.CurrentUser = &usr
	}
	return c
}
