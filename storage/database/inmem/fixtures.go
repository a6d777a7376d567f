package inmemdb

import (
	"github.com/volatiletech/null/v8"

	"github.com/educonnect/educonnect/core/admin"
	"github.com/educonnect/educonnect/core/assignment"
	"github.com/educonnect/educonnect/core/course"
	"github.com/educonnect/educonnect/core/notification"
	"github.com/educonnect/educonnect/core/student"
)

func seedCourses() []course.Course {
	return []course.Course{
		{
			ID:          1,
			Title:       "Complete Web Development Bootcamp",
			Description: "Learn HTML, CSS, JavaScript, React, Node.js and more. Build real-world projects and become a full-stack developer.",
			Instructor:  "Dr. Sarah Johnson",
			Category:    "Web Development",
			Level:       "Beginner",
			Duration:    "40 hours",
			Price:       89.99,
			Image:       "https://images.unsplash.com/photo-1498050108023-c5249f4df085?w=400",
			EnrolledStudents: []int{1, 2, 3, 4, 5},
			Modules: []course.Module{
				{
					ID: 1, Title: "Introduction to Web Development", Order: 1,
					Lessons: []course.Lesson{
						{ID: 1, Title: "What is Web Development?", Duration: "15 min", Type: course.LessonVideo, Completed: true},
						{ID: 2, Title: "How the Internet Works", Duration: "20 min", Type: course.LessonVideo, Completed: true},
						{ID: 3, Title: "Setting Up Your Development Environment", Duration: "25 min", Type: course.LessonVideo},
					},
				},
				{
					ID: 2, Title: "HTML Fundamentals", Order: 2,
					Lessons: []course.Lesson{
						{ID: 4, Title: "Introduction to HTML", Duration: "30 min", Type: course.LessonVideo},
						{ID: 5, Title: "HTML Elements and Tags", Duration: "35 min", Type: course.LessonVideo},
						{ID: 6, Title: "HTML Forms and Inputs", Duration: "40 min", Type: course.LessonVideo},
					},
				},
				{
					ID: 3, Title: "CSS Styling", Order: 3,
					Lessons: []course.Lesson{
						{ID: 7, Title: "Introduction to CSS", Duration: "25 min", Type: course.LessonVideo},
						{ID: 8, Title: "CSS Selectors and Properties", Duration: "30 min", Type: course.LessonVideo},
						{ID: 9, Title: "Flexbox Layout", Duration: "45 min", Type: course.LessonVideo},
					},
				},
			},
			CreatedAt: "2024-01-15",
		},
		{
			ID:          2,
			Title:       "Python for Data Science",
			Description: "Master Python programming and learn data analysis, visualization, and machine learning fundamentals.",
			Instructor:  "Prof. Michael Chen",
			Category:    "Data Science",
			Level:       "Intermediate",
			Duration:    "35 hours",
			Price:       79.99,
			Image:       "https://images.unsplash.com/photo-1526379095098-d400fd0bf935?w=400",
			EnrolledStudents: []int{1, 2, 3},
			Modules: []course.Module{
				{
					ID: 1, Title: "Python Basics", Order: 1,
					Lessons: []course.Lesson{
						{ID: 1, Title: "Variables and Data Types", Duration: "20 min", Type: course.LessonVideo, Completed: true},
						{ID: 2, Title: "Control Flow", Duration: "25 min", Type: course.LessonVideo},
						{ID: 3, Title: "Functions and Modules", Duration: "30 min", Type: course.LessonVideo},
					},
				},
				{
					ID: 2, Title: "Data Analysis with Pandas", Order: 2,
					Lessons: []course.Lesson{
						{ID: 4, Title: "Introduction to Pandas", Duration: "35 min", Type: course.LessonVideo},
						{ID: 5, Title: "Data Manipulation", Duration: "40 min", Type: course.LessonVideo},
					},
				},
			},
			CreatedAt: "2024-02-01",
		},
		{
			ID:          3,
			Title:       "UI/UX Design Masterclass",
			Description: "Learn user interface and user experience design principles. Create stunning designs with Figma.",
			Instructor:  "Emily Rodriguez",
			Category:    "Design",
			Level:       "All Levels",
			Duration:    "28 hours",
			Price:       69.99,
			Image:       "https://images.unsplash.com/photo-1561070791-2526d30994b5?w=400",
			EnrolledStudents: []int{1, 4, 5},
			Modules: []course.Module{
				{
					ID: 1, Title: "Design Fundamentals", Order: 1,
					Lessons: []course.Lesson{
						{ID: 1, Title: "Principles of Design", Duration: "25 min", Type: course.LessonVideo},
						{ID: 2, Title: "Color Theory", Duration: "30 min", Type: course.LessonVideo},
						{ID: 3, Title: "Typography Basics", Duration: "20 min", Type: course.LessonVideo},
					},
				},
			},
			CreatedAt: "2024-02-10",
		},
		{
			ID:          4,
			Title:       "React.js Complete Guide",
			Description: "Build modern web applications with React. Learn hooks, context, Redux, and more.",
			Instructor:  "Dr. Sarah Johnson",
			Category:    "Web Development",
			Level:       "Intermediate",
			Duration:    "32 hours",
			Price:       94.99,
			Image:       "https://images.unsplash.com/photo-1633356122544-f603b6bf3783?w=400",
			EnrolledStudents: []int{2, 3, 4},
			Modules: []course.Module{
				{
					ID: 1, Title: "React Basics", Order: 1,
					Lessons: []course.Lesson{
						{ID: 1, Title: "Introduction to React", Duration: "20 min", Type: course.LessonVideo},
						{ID: 2, Title: "JSX and Components", Duration: "30 min", Type: course.LessonVideo},
						{ID: 3, Title: "Props and State", Duration: "35 min", Type: course.LessonVideo},
					},
				},
				{
					ID: 2, Title: "React Hooks", Order: 2,
					Lessons: []course.Lesson{
						{ID: 4, Title: "useState Hook", Duration: "25 min", Type: course.LessonVideo},
						{ID: 5, Title: "useEffect Hook", Duration: "30 min", Type: course.LessonVideo},
						{ID: 6, Title: "Custom Hooks", Duration: "40 min", Type: course.LessonVideo},
					},
				},
			},
			CreatedAt: "2024-02-15",
		},
		{
			ID:          5,
			Title:       "Machine Learning A-Z",
			Description: "Comprehensive machine learning course covering supervised, unsupervised learning and deep learning basics.",
			Instructor:  "Prof. Michael Chen",
			Category:    "Data Science",
			Level:       "Advanced",
			Duration:    "50 hours",
			Price:       129.99,
			Image:       "https://images.unsplash.com/photo-1555949963-aa79dcee981c?w=400",
			EnrolledStudents: []int{1, 5},
			Modules: []course.Module{
				{
					ID: 1, Title: "Introduction to ML", Order: 1,
					Lessons: []course.Lesson{
						{ID: 1, Title: "What is Machine Learning?", Duration: "25 min", Type: course.LessonVideo},
						{ID: 2, Title: "Types of Machine Learning", Duration: "20 min", Type: course.LessonVideo},
					},
				},
			},
			CreatedAt: "2024-03-01",
		},
	}
}

func seedStudents() []student.Student {
	return []student.Student{
		{
			ID: 1, Name: "Alex Thompson", Email: "alex@student.com", Password: "student123",
			Avatar:          "https://images.unsplash.com/photo-1472099645785-5658abf4ff4e?w=100",
			EnrolledCourses: []int{1, 2, 3, 5}, CompletedLessons: []int{1, 2}, JoinDate: "2024-01-20",
		},
		{
			ID: 2, Name: "Jessica Williams", Email: "jessica@student.com", Password: "student123",
			Avatar:          "https://images.unsplash.com/photo-1438761681033-6461ffad8d80?w=100",
			EnrolledCourses: []int{1, 2, 4}, CompletedLessons: []int{1}, JoinDate: "2024-02-05",
		},
		{
			ID: 3, Name: "David Brown", Email: "david@student.com", Password: "student123",
			Avatar:          "https://images.unsplash.com/photo-1500648767791-00dcc994a43e?w=100",
			EnrolledCourses: []int{1, 2, 4}, CompletedLessons: []int{}, JoinDate: "2024-02-10",
		},
		{
			ID: 4, Name: "Emma Davis", Email: "emma@student.com", Password: "student123",
			Avatar:          "https://images.unsplash.com/photo-1494790108377-be9c29b29330?w=100",
			EnrolledCourses: []int{1, 3, 4}, CompletedLessons: []int{1, 2, 3}, JoinDate: "2024-02-15",
		},
		{
			ID: 5, Name: "Ryan Miller", Email: "ryan@student.com", Password: "student123",
			Avatar:          "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?w=100",
			EnrolledCourses: []int{1, 3, 5}, CompletedLessons: []int{1}, JoinDate: "2024-02-20",
		},
	}
}

func seedAssignments() []assignment.Assignment {
	return []assignment.Assignment{
		{
			ID: 1, CourseID: 1,
			Title:       "Build a Personal Portfolio Website",
			Description: "Create a responsive portfolio website using HTML and CSS. Include sections for About, Projects, and Contact.",
			DueDate:     "2024-03-15", MaxScore: 100,
			Submissions: []assignment.Submission{
				{
					ID: 1, StudentID: 1, SubmittedAt: "2024-03-10", File: "portfolio_alex.zip",
					Score: null.IntFrom(85), Feedback: "Great work! Clean design and good responsiveness.",
				},
				{
					ID: 2, StudentID: 2, SubmittedAt: "2024-03-12", File: "portfolio_jessica.zip",
					Score: null.IntFrom(92), Feedback: "Excellent portfolio! Very professional design.",
				},
			},
		},
		{
			ID: 2, CourseID: 1,
			Title:       "JavaScript DOM Manipulation Project",
			Description: "Build an interactive to-do list application with add, edit, delete, and filter functionality.",
			DueDate:     "2024-03-25", MaxScore: 100,
			Submissions: []assignment.Submission{
				{
					ID: 3, StudentID: 1, SubmittedAt: "2024-03-20", File: "todo_alex.zip",
					Score: null.IntFrom(88), Feedback: "Good implementation. Consider adding local storage.",
				},
			},
		},
		{
			ID: 3, CourseID: 2,
			Title:       "Data Analysis with Pandas",
			Description: "Analyze the provided dataset and create visualizations using Pandas and Matplotlib.",
			DueDate:     "2024-03-20", MaxScore: 100,
			Submissions: []assignment.Submission{},
		},
		{
			ID: 4, CourseID: 3,
			Title:       "Design a Mobile App UI",
			Description: "Create a complete UI design for a fitness tracking mobile app using Figma.",
			DueDate:     "2024-03-28", MaxScore: 100,
			Submissions: []assignment.Submission{
				{
					ID: 4, StudentID: 4, SubmittedAt: "2024-03-25", File: "fitness_app_emma.fig",
					Score: null.IntFrom(95), Feedback: "Outstanding design! Great attention to detail.",
				},
			},
		},
		{
			ID: 5, CourseID: 4,
			Title:       "Build a React Counter App",
			Description: "Create a counter application with increment, decrement, reset, and step functionality using React hooks.",
			DueDate:     "2024-04-01", MaxScore: 100,
			Submissions: []assignment.Submission{},
		},
	}
}

func seedAdmin() admin.Admin {
	return admin.Admin{
		ID:         100,
		Name:       "Dr. Sarah Johnson",
		Email:      "admin@educonnect.com",
		Password:   "admin123",
		Avatar:     "https://images.unsplash.com/photo-1573496359142-b8d87734a5a2?w=100",
		Department: "Computer Science",
		Bio:        "Experienced educator with 10+ years in web development and software engineering.",
	}
}

func seedNotifications() []notification.Notification {
	return []notification.Notification{
		{ID: 1, Message: "New student registration: Alex Thompson", Time: "2 hours ago"},
		{ID: 2, Message: "Assignment submitted by Jessica Williams", Time: "5 hours ago"},
		{ID: 3, Message: "New course review for Web Development", Time: "1 day ago", Read: true},
	}
}
