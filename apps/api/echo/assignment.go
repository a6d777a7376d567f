package echoapi

import (
	"fmt"
	"net/http"
	"net/mail"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/educonnect/educonnect/core"
	"github.com/educonnect/educonnect/core/assignment"
	"github.com/educonnect/educonnect/core/session"
)

type assignmentApi struct {
	deps *ServerDeps
}

func registerAssignmentAPI(app *echo.Echo, deps *ServerDeps) {
	api := assignmentApi{deps: deps}

	ag := app.Group("/admin/assignments", requireAuth(deps.Session, session.RoleAdmin))
	ag.GET("", api.query)
	ag.POST("", api.create)
	ag.GET("/:id", api.retrieve)
	ag.PUT("/:id", api.update)
	ag.DELETE("/:id", api.destroy)
	ag.PUT("/:id/submissions/:subID/grade", api.grade)

	sg := app.Group("", requireAuth(deps.Session, session.RoleStudent))
	sg.GET("/student/assignments", api.mine)
	sg.POST("/assignments/:id/submissions", api.submit)
}

// Handlers

func (api *assignmentApi) query(ctx echo.Context) error {
	asgs, err := api.deps.AssignmentSvc.All()
	if err != nil {
		return errors.Wrap(err, "querying assignments")
	}
	return ctx.JSON(http.StatusOK, asgs)
}

func (api *assignmentApi) create(ctx echo.Context) error {
	var data assignment.NewAssignment
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewAssignment")
	}
	if err := data.Validate(api.deps.Validate); err != nil {
		return err
	}

	asg, err := api.deps.AssignmentSvc.Create(data)
	if err != nil {
		return errors.Wrap(err, "creating assignment")
	}
	return ctx.JSON(http.StatusCreated, asg)
}

func (api *assignmentApi) retrieve(ctx echo.Context) error {
	id, err := intParam(ctx, "id")
	if err != nil {
		return err
	}
	asg, err := api.deps.AssignmentSvc.GetByID(id)
	if err != nil {
		if errors.Cause(err) == assignment.ErrNotFound {
			return errHttpNotFound
		}
		return errors.Wrap(err, "finding assignment by ID")
	}
	return ctx.JSON(http.StatusOK, asg)
}

func (api *assignmentApi) update(ctx echo.Context) error {
	id, err := intParam(ctx, "id")
	if err != nil {
		return err
	}
	var data assignment.UpdateAssignment
	if err = ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to UpdateAssignment")
	}
	if err = data.Validate(api.deps.Validate); err != nil {
		return err
	}

	asg, err := api.deps.AssignmentSvc.Update(id, data)
	if err != nil {
		if errors.Cause(err) == assignment.ErrNotFound {
			return errHttpNotFound
		}
		return errors.Wrap(err, "updating assignment")
	}
	return ctx.JSON(http.StatusOK, asg)
}

func (api *assignmentApi) destroy(ctx echo.Context) error {
	id, err := intParam(ctx, "id")
	if err != nil {
		return err
	}
	if err = api.deps.AssignmentSvc.Delete(id); err != nil {
		return errors.Wrap(err, "deleting assignment")
	}
	return ctx.NoContent(http.StatusNoContent)
}

func (api *assignmentApi) grade(ctx echo.Context) error {
	id, err := intParam(ctx, "id")
	if err != nil {
		return err
	}
	subID, err := intParam(ctx, "subID")
	if err != nil {
		return err
	}
	var data assignment.Grade
	if err = ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to Grade")
	}
	if err = data.Validate(api.deps.Validate); err != nil {
		return err
	}

	sub, err := api.deps.AssignmentSvc.Grade(id, subID, data)
	if err != nil {
		switch errors.Cause(err) {
		case assignment.ErrNotFound, assignment.ErrSubmissionNotFound:
			return errHttpNotFound
		}
		return errors.Wrap(err, "grading submission")
	}

	api.sendGradeEmail(id, sub)
	return ctx.JSON(http.StatusOK, sub)
}

func (api *assignmentApi) sendGradeEmail(assignmentID int, sub assignment.Submission) {
	std, err := api.deps.StudentSvc.GetByID(sub.StudentID)
	if err != nil {
		return
	}
	asg, err := api.deps.AssignmentSvc.GetByID(assignmentID)
	if err != nil {
		return
	}

	body := fmt.Sprintf("Hi %s,\n\nYour submission for %q was graded: %d/%d.",
		std.Name, asg.Title, sub.Score.Int, asg.MaxScore)
	if sub.Feedback != "" {
		body += "\n\nFeedback: " + sub.Feedback
	}
	api.deps.EmailSvc.SendMessages(&core.EmailMessage{
		To:      []mail.Address{{Name: std.Name, Address: std.Email}},
		Subject: "Your submission was graded",
		Body:    body,
	})
}

// mine returns the assignments belonging to the calling student's enrolled
// courses.
func (api *assignmentApi) mine(ctx echo.Context) error {
	ident, err := contextIdentity(ctx)
	if err != nil {
		return err
	}
	std, err := api.deps.StudentSvc.GetByID(ident.ID)
	if err != nil {
		return errors.Wrap(err, "finding student by ID")
	}

	asgs, err := api.deps.AssignmentSvc.All()
	if err != nil {
		return errors.Wrap(err, "querying assignments")
	}
	mine := []assignment.Assignment{}
	for _, asg := range asgs {
		if core.ContainsInt(std.EnrolledCourses, asg.CourseID) {
			mine = append(mine, asg)
		}
	}
	return ctx.JSON(http.StatusOK, mine)
}

func (api *assignmentApi) submit(ctx echo.Context) error {
	id, err := intParam(ctx, "id")
	if err != nil {
		return err
	}
	ident, err := contextIdentity(ctx)
	if err != nil {
		return err
	}
	var data assignment.NewSubmission
	if err = ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewSubmission")
	}
	data.StudentID = ident.ID
	if err = data.Validate(api.deps.Validate); err != nil {
		return err
	}

	sub, err := api.deps.AssignmentSvc.Submit(id, data)
	if err != nil {
		return errors.Wrap(err, "submitting assignment")
	}

	if _, err = api.deps.NotificationSvc.Add("Assignment submitted by " + ident.Name); err != nil {
		return errors.Wrap(err, "adding notification")
	}
	return ctx.JSON(http.StatusCreated, sub)
}
