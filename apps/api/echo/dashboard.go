package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/educonnect/educonnect/core/course"
	"github.com/educonnect/educonnect/core/notification"
	"github.com/educonnect/educonnect/core/session"
	"github.com/educonnect/educonnect/core/stats"
)

type dashboardApi struct {
	deps *ServerDeps
}

func registerDashboardAPI(app *echo.Echo, deps *ServerDeps) {
	api := dashboardApi{deps: deps}

	ag := app.Group("/admin", requireAuth(deps.Session, session.RoleAdmin))
	ag.GET("/dashboard", api.adminDashboard)
	ag.GET("/students", api.students)

	sg := app.Group("/student", requireAuth(deps.Session, session.RoleStudent))
	sg.GET("/dashboard", api.studentDashboard)
}

type AdminDashboard struct {
	Stats         stats.Overview              `json:"stats"`
	Notifications []notification.Notification `json:"notifications"`
}

func (api *dashboardApi) adminDashboard(ctx echo.Context) error {
	overview, err := api.deps.StatsSvc.Overview()
	if err != nil {
		return errors.Wrap(err, "computing stats overview")
	}
	notifs, err := api.deps.NotificationSvc.All()
	if err != nil {
		return errors.Wrap(err, "querying notifications")
	}
	if notifs == nil {
		notifs = []notification.Notification{}
	}
	return ctx.JSON(http.StatusOK, AdminDashboard{Stats: overview, Notifications: notifs})
}

func (api *dashboardApi) students(ctx echo.Context) error {
	students, err := api.deps.StudentSvc.All()
	if err != nil {
		return errors.Wrap(err, "querying students")
	}
	return ctx.JSON(http.StatusOK, students)
}

type (
	// EnrolledCourse pairs a course with the calling student's progress
	// through it.
	EnrolledCourse struct {
		Course   course.Course `json:"course"`
		Progress int           `json:"progress"`
	}

	StudentDashboard struct {
		Courses []EnrolledCourse `json:"courses"`
	}
)

func (api *dashboardApi) studentDashboard(ctx echo.Context) error {
	ident, err := contextIdentity(ctx)
	if err != nil {
		return err
	}
	std, err := api.deps.StudentSvc.GetByID(ident.ID)
	if err != nil {
		return errors.Wrap(err, "finding student by ID")
	}

	dash := StudentDashboard{Courses: []EnrolledCourse{}}
	for _, courseID := range std.EnrolledCourses {
		crs, err := api.deps.CourseSvc.GetByID(courseID)
		if err != nil {
			// a stale enrollment is skipped rather than failing the page
			continue
		}
		dash.Courses = append(dash.Courses, EnrolledCourse{
			Course:   crs,
			Progress: api.deps.StudentSvc.Progress(std.ID, courseID),
		})
	}
	return ctx.JSON(http.StatusOK, dash)
}
