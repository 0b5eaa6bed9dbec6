package store

import "time"

// DemoState returns the canned snapshot the product ships with: two active
// interns, one HR admin and a couple of tasks and news items. Used by local
// runs and the seed command.
func DemoState() State {
	return State{
		Interns: []Intern{
			{
				ID:              "1",
				Name:            "Alice Johnson",
				Email:           "alice@example.com",
				Phone:           "(555) 123-4567",
				University:      "MIT",
				Program:         "Computer Science",
				Skills:          []string{"React", "JavaScript", "Python"},
				Status:          InternActive,
				StartDate:       "2024-01-15",
				EndDate:         "2024-06-15",
				AssignedAdminID: "1",
			},
			{
				ID:              "2",
				Name:            "Bob Smith",
				Email:           "bob@example.com",
				Phone:           "(555) 987-6543",
				University:      "Stanford",
				Program:         "Data Science",
				Skills:          []string{"Python", "Machine Learning", "SQL"},
				Status:          InternActive,
				StartDate:       "2024-02-01",
				EndDate:         "2024-07-01",
				AssignedAdminID: "1",
			},
		},
		Admins: []Admin{
			{
				ID:        "1",
				Name:      "Dr. Sarah Wilson",
				Email:     "admin@company.com",
				Role:      AdminRoleHR,
				CreatedAt: time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC),
			},
		},
		Tasks: []Task{
			{
				ID:              "1",
				InternID:        "1",
				AssignedAdminID: "1",
				Title:           "React Dashboard Development",
				Description:     "Build a responsive dashboard using React and TypeScript",
				Deadline:        "2024-03-15",
				Status:          TaskInProgress,
			},
			{
				ID:              "2",
				InternID:        "2",
				AssignedAdminID: "1",
				Title:           "Data Analysis Report",
				Description:     "Analyze customer data and create visualization report",
				Deadline:        "2024-03-20",
				Status:          TaskPending,
			},
		},
		News: []NewsItem{
			{
				ID:          "1",
				Title:       "New AI-Powered Task Assignment Feature",
				Description: "InternHive now uses intelligent matching to assign the best tasks to interns based on their skills and interests.",
				Date:        "Dec 20, 2024",
				Image:       "/hero-image.jpg",
				CreatedBy:   "1",
				CreatedAt:   time.Date(2024, time.December, 20, 0, 0, 0, 0, time.UTC),
				Published:   true,
			},
			{
				ID:          "2",
				Title:       "Real-Time Performance Analytics Dashboard",
				Description: "Track intern progress with comprehensive analytics, including performance trends and achievement milestones.",
				Date:        "Dec 15, 2024",
				Image:       "/hero-image.jpg",
				CreatedBy:   "1",
				CreatedAt:   time.Date(2024, time.December, 15, 0, 0, 0, 0, time.UTC),
				Published:   true,
			},
			{
				ID:          "3",
				Title:       "Mobile App Now Available",
				Description: "Access InternHive on the go with our new mobile application for both iOS and Android platforms.",
				Date:        "Dec 10, 2024",
				Image:       "/hero-image.jpg",
				CreatedBy:   "1",
				CreatedAt:   time.Date(2024, time.December, 10, 0, 0, 0, 0, time.UTC),
				Published:   true,
			},
		},
	}
}
