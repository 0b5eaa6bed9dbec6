package store

// Kind identifies one member of the closed action set.
type Kind string

const (
	LoginUser  Kind = "LOGIN_USER"
	LogoutUser Kind = "LOGOUT_USER"

	AddIntern    Kind = "ADD_INTERN"
	UpdateIntern Kind = "UPDATE_INTERN"
	DeleteIntern Kind = "DELETE_INTERN"

	AddAdmin Kind = "ADD_ADMIN"

	AddTask    Kind = "ADD_TASK"
	UpdateTask Kind = "UPDATE_TASK"
	DeleteTask Kind = "DELETE_TASK"

	AddFeedback    Kind = "ADD_FEEDBACK"
	UpdateFeedback Kind = "UPDATE_FEEDBACK"

	AddAttendance    Kind = "ADD_ATTENDANCE"
	UpdateAttendance Kind = "UPDATE_ATTENDANCE"

	AddDocument    Kind = "ADD_DOCUMENT"
	DeleteDocument Kind = "DELETE_DOCUMENT"

	AddNews    Kind = "ADD_NEWS"
	UpdateNews Kind = "UPDATE_NEWS"
	DeleteNews Kind = "DELETE_NEWS"
)

// Action is a tagged request to mutate the store. Delete actions carry the
// target id; add/update actions carry the full record.
type Action struct {
	Kind    Kind
	Payload interface{}
}

func Login(usr User) Action       { return Action{Kind: LoginUser, Payload: usr} }
func Logout() Action              { return Action{Kind: LogoutUser} }
func InternAdded(i Intern) Action { return Action{Kind: AddIntern, Payload: i} }

func InternUpdated(i Intern) Action  { return Action{Kind: UpdateIntern, Payload: i} }
func InternDeleted(id string) Action { return Action{Kind: DeleteIntern, Payload: id} }

func AdminAdded(a Admin) Action { return Action{Kind: AddAdmin, Payload: a} }

func TaskAdded(t Task) Action      { return Action{Kind: AddTask, Payload: t} }
func TaskUpdated(t Task) Action    { return Action{Kind: UpdateTask, Payload: t} }
func TaskDeleted(id string) Action { return Action{Kind: DeleteTask, Payload: id} }

func FeedbackAdded(f Feedback) Action   { return Action{Kind: AddFeedback, Payload: f} }
func FeedbackUpdated(f Feedback) Action { return Action{Kind: UpdateFeedback, Payload: f} }

func AttendanceAdded(a Attendance) Action   { return Action{Kind: AddAttendance, Payload: a} }
func AttendanceUpdated(a Attendance) Action { return Action{Kind: UpdateAttendance, Payload: a} }

func DocumentAdded(d Document) Action  { return Action{Kind: AddDocument, Payload: d} }
func DocumentDeleted(id string) Action { return Action{Kind: DeleteDocument, Payload: id} }

func NewsAdded(n NewsItem) Action   { return Action{Kind: AddNews, Payload: n} }
func NewsUpdated(n NewsItem) Action { return Action{Kind: UpdateNews, Payload: n} }
func NewsDeleted(id string) Action  { return Action{Kind: DeleteNews, Payload: id} }
