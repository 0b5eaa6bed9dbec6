package store

// Reduce computes the next snapshot from the previous one and a single
// action. It is pure and total: no I/O, no error returns, and an action
// referencing an absent id (or carrying an unexpected payload) yields a
// fresh snapshot with unchanged content rather than a failure. The input
// snapshot is never modified.
func Reduce(s State, action Action) State {
	switch action.Kind {
	case LoginUser:
		if usr, ok := action.Payload.(User); ok {
			s.CurrentUser = &usr
		}
		return s
	case LogoutUser:
		s.CurrentUser = nil
		return s

	case AddIntern:
		if intern, ok := action.Payload.(Intern); ok {
			interns := make([]Intern, 0, len(s.Interns)+1)
			s.Interns = append(append(interns, s.Interns...), intern)
		}
		return s
	case UpdateIntern:
		if intern, ok := action.Payload.(Intern); ok {
			interns := append([]Intern(nil), s.Interns...)
			for i := range interns {
				if interns[i].ID == intern.ID {
					interns[i] = intern
				}
			}
			s.Interns = interns
		}
		return s
	case DeleteIntern:
		if id, ok := action.Payload.(string); ok {
			interns := make([]Intern, 0, len(s.Interns))
			for _, intern := range s.Interns {
				if intern.ID != id {
					interns = append(interns, intern)
				}
			}
			s.Interns = interns
		}
		return s

	case AddAdmin:
		if admin, ok := action.Payload.(Admin); ok {
			admins := make([]Admin, 0, len(s.Admins)+1)
			s.Admins = append(append(admins, s.Admins...), admin)
		}
		return s

	case AddTask:
		if task, ok := action.Payload.(Task); ok {
			tasks := make([]Task, 0, len(s.Tasks)+1)
			s.Tasks = append(append(tasks, s.Tasks...), task)
		}
		return s
	case UpdateTask:
		if task, ok := action.Payload.(Task); ok {
			tasks := append([]Task(nil), s.Tasks...)
			for i := range tasks {
				if tasks[i].ID == task.ID {
					tasks[i] = task
				}
			}
			s.Tasks = tasks
		}
		return s
	case DeleteTask:
		if id, ok := action.Payload.(string); ok {
			tasks := make([]Task, 0, len(s.Tasks))
			for _, t := range s.Tasks {
				if t.ID != id {
					tasks = append(tasks, t)
				}
			}
			s.Tasks = tasks
		}
		return s

	case AddFeedback:
		if fb, ok := action.Payload.(Feedback); ok {
			feedback := make([]Feedback, 0, len(s.Feedback)+1)
			s.Feedback = append(append(feedback, s.Feedback...), fb)
		}
		return s
	case UpdateFeedback:
		if fb, ok := action.Payload.(Feedback); ok {
			feedback := append([]Feedback(nil), s.Feedback...)
			for i := range feedback {
				if feedback[i].ID == fb.ID {
					feedback[i] = fb
				}
			}
			s.Feedback = feedback
		}
		return s

	case AddAttendance:
		if att, ok := action.Payload.(Attendance); ok {
			attendance := make([]Attendance, 0, len(s.Attendance)+1)
			s.Attendance = append(append(attendance, s.Attendance...), att)
		}
		return s
	case UpdateAttendance:
		if att, ok := action.Payload.(Attendance); ok {
			attendance := append([]Attendance(nil), s.Attendance...)
			for i := range attendance {
				if attendance[i].ID == att.ID {
					attendance[i] = att
				}
			}
			s.Attendance = attendance
		}
		return s

	case AddDocument:
		if doc, ok := action.Payload.(Document); ok {
			documents := make([]Document, 0, len(s.Documents)+1)
			s.Documents = append(append(documents, s.Documents...), doc)
		}
		return s
	case DeleteDocument:
		if id, ok := action.Payload.(string); ok {
			documents := make([]Document, 0, len(s.Documents))
			for _, d := range s.Documents {
				if d.ID != id {
					documents = append(documents, d)
				}
			}
			s.Documents = documents
		}
		return s

	case AddNews:
		if item, ok := action.Payload.(NewsItem); ok {
			news := make([]NewsItem, 0, len(s.News)+1)
			s.News = append(append(news, s.News...), item)
		}
		return s
	case UpdateNews:
		if item, ok := action.Payload.(NewsItem); ok {
			news := append([]NewsItem(nil), s.News...)
			for i := range news {
				if news[i].ID == item.ID {
					news[i] = item
				}
			}
			s.News = news
		}
		return s
	case DeleteNews:
		if id, ok := action.Payload.(string); ok {
			news := make([]NewsItem, 0, len(s.News))
			for _, n := range s.News {
				if n.ID != id {
					news = append(news, n)
				}
			}
			s.News = news
		}
		return s
	}
	return s
}
