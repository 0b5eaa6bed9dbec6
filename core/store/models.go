package store

import "time"

// Admin roles
const (
	AdminRoleHR         = "HR"
	AdminRoleSupervisor = "Supervisor"
	AdminRoleMentor     = "Mentor"
)

var AdminRoles = []string{AdminRoleHR, AdminRoleSupervisor, AdminRoleMentor}

// Intern statuses
const (
	InternActive    = "active"
	InternCompleted = "completed"
	InternDropped   = "dropped"
)

// Task statuses
const (
	TaskPending    = "pending"
	TaskInProgress = "in-progress"
	TaskCompleted  = "completed"
)

// Attendance statuses
const (
	AttendancePresent = "present"
	AttendanceAbsent  = "absent"
	AttendanceLate    = "late"
)

// Session user roles
const (
	UserRoleAdmin  = "admin"
	UserRoleIntern = "intern"
)

// User is the session-only authenticated user. It is created on successful
// login/signup, destroyed on logout and never mutated otherwise.
type User struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Role       string `json:"role"` // admin | intern
	IsLoggedIn bool   `json:"is_logged_in"`
}

type Admin struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Role         string    `json:"role"` // HR | Supervisor | Mentor
	PasswordHash []byte    `json:"-"`
	CreatedAt    time.Time `json:"created_at"` // UTC
}

type Intern struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Email           string   `json:"email"`
	Phone           string   `json:"phone"`
	University      string   `json:"university"`
	Program         string   `json:"program"`
	Skills          []string `json:"skills"`
	Status          string   `json:"status"` // active | completed | dropped
	StartDate       string   `json:"start_date"`
	EndDate         string   `json:"end_date"`
	AssignedAdminID string   `json:"assigned_admin_id"`
	ProfileImage    string   `json:"profile_image,omitempty"`
	PasswordHash    []byte   `json:"-"`
}

type Task struct {
	ID              string `json:"id"`
	InternID        string `json:"intern_id"`
	AssignedAdminID string `json:"assigned_admin_id"`
	Title           string `json:"title"`
	Description     string `json:"description"`
	Deadline        string `json:"deadline"`
	Status          string `json:"status"` // pending | in-progress | completed

	// submission data, attached on the in-progress -> completed transition
	SubmissionURL      string `json:"submission_url,omitempty"`
	SubmittedAt        string `json:"submitted_at,omitempty"`
	SubmissionFileName string `json:"submission_file_name,omitempty"`
	SubmissionComment  string `json:"submission_comment,omitempty"`
}

type Feedback struct {
	ID        string    `json:"id"`
	InternID  string    `json:"intern_id"`
	AdminID   string    `json:"admin_id"`
	Rating    int       `json:"rating"` // [1,5]
	Comments  string    `json:"comments"`
	CreatedAt time.Time `json:"created_at"` // UTC
}

type Attendance struct {
	ID           string `json:"id"`
	InternID     string `json:"intern_id"`
	Date         string `json:"date"`
	Status       string `json:"status"` // present | absent | late
	CheckInTime  string `json:"check_in_time,omitempty"`
	CheckOutTime string `json:"check_out_time,omitempty"`
}

type Document struct {
	ID         string `json:"id"`
	InternID   string `json:"intern_id"`
	Title      string `json:"title"`
	FileName   string `json:"file_name"`
	FileURL    string `json:"file_url"`
	UploadDate string `json:"upload_date"`
	FileType   string `json:"file_type,omitempty"`
	FileSize   int64  `json:"file_size,omitempty"`
	Type       string `json:"type,omitempty"` // resume | certificate | assignment | report | resource
}

type NewsItem struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Content     string    `json:"content,omitempty"`
	Date        string    `json:"date"` // display string
	Image       string    `json:"image"`
	CreatedBy   string    `json:"created_by"`
	CreatedAt   time.Time `json:"created_at"` // UTC
	Published   bool      `json:"published"`
}
