package echoapi

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/educonnect/educonnect/core"
	"github.com/educonnect/educonnect/core/assignment"
	"github.com/educonnect/educonnect/core/course"
	"github.com/educonnect/educonnect/core/session"
)

type courseApi struct {
	deps *ServerDeps
}

func registerCourseAPI(app *echo.Echo, deps *ServerDeps) {
	api := courseApi{deps: deps}

	// course authoring (admin portal)
	ag := app.Group("/admin/courses", requireAuth(deps.Session, session.RoleAdmin))
	ag.GET("", api.query)
	ag.POST("", api.create)
	ag.PUT("/:id", api.update)
	ag.DELETE("/:id", api.destroy)
	ag.POST("/:id/modules", api.addModule)
	ag.PUT("/:id/modules/order", api.reorderModules)
	ag.PUT("/:id/modules/:moduleID", api.updateModule)
	ag.DELETE("/:id/modules/:moduleID", api.destroyModule)
	ag.POST("/:id/modules/:moduleID/lessons", api.addLesson)
	ag.PUT("/:id/modules/:moduleID/lessons/:lessonID", api.updateLesson)
	ag.DELETE("/:id/modules/:moduleID/lessons/:lessonID", api.destroyLesson)

	// catalog & learning
	cg := app.Group("/courses", requireAuth(deps.Session))
	cg.GET("", api.query)
	cg.GET("/:id", api.retrieve)

	sg := app.Group("", requireAuth(deps.Session, session.RoleStudent))
	sg.POST("/courses/:id/enroll", api.enroll)
	sg.POST("/lessons/:id/complete", api.completeLesson)
}

// intParam parses a numeric path parameter; a malformed value behaves like a
// missing entity.
func intParam(ctx echo.Context, name string) (int, error) {
	n, err := strconv.Atoi(ctx.Param(name))
	if err != nil {
		return 0, errHttpNotFound
	}
	return n, nil
}

// Handlers

func (api *courseApi) query(ctx echo.Context) error {
	courses, err := api.deps.CourseSvc.All()
	if err != nil {
		return errors.Wrap(err, "querying courses")
	}
	return ctx.JSON(http.StatusOK, courses)
}

func (api *courseApi) create(ctx echo.Context) error {
	var data course.NewCourse
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewCourse")
	}
	if err := data.Validate(api.deps.Validate); err != nil {
		return err
	}

	crs, err := api.deps.CourseSvc.Create(data)
	if err != nil {
		return errors.Wrap(err, "creating course")
	}
	return ctx.JSON(http.StatusCreated, crs)
}

// CourseDetail is the learning view: the course, its assignments and, for a
// student caller, their progress percentage.
type CourseDetail struct {
	Course      course.Course           `json:"course"`
	Assignments []assignment.Assignment `json:"assignments"`
	Progress    int                     `json:"progress"`
}

func (api *courseApi) retrieve(ctx echo.Context) error {
	id, err := intParam(ctx, "id")
	if err != nil {
		return err
	}
	crs, err := api.deps.CourseSvc.GetByID(id)
	if err != nil {
		if errors.Cause(err) == course.ErrNotFound {
			return errHttpNotFound
		}
		return errors.Wrap(err, "finding course by ID")
	}

	asgs, err := api.deps.AssignmentSvc.ByCourse(id)
	if err != nil {
		return errors.Wrap(err, "querying course assignments")
	}
	if asgs == nil {
		asgs = []assignment.Assignment{}
	}

	detail := CourseDetail{Course: crs, Assignments: asgs}
	if ident, err := contextIdentity(ctx); err == nil && ident.IsStudent() {
		detail.Progress = api.deps.StudentSvc.Progress(ident.ID, id)
	}
	return ctx.JSON(http.StatusOK, detail)
}

func (api *courseApi) update(ctx echo.Context) error {
	id, err := intParam(ctx, "id")
	if err != nil {
		return err
	}
	var data course.UpdateCourse
	if err = ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to UpdateCourse")
	}
	if err = data.Validate(api.deps.Validate); err != nil {
		return err
	}

	crs, err := api.deps.CourseSvc.Update(id, data)
	if err != nil {
		if errors.Cause(err) == course.ErrNotFound {
			return errHttpNotFound
		}
		return errors.Wrap(err, "updating course")
	}
	return ctx.JSON(http.StatusOK, crs)
}

func (api *courseApi) destroy(ctx echo.Context) error {
	id, err := intParam(ctx, "id")
	if err != nil {
		return err
	}
	if err = api.deps.CourseSvc.Delete(id); err != nil {
		return errors.Wrap(err, "deleting course")
	}
	return ctx.NoContent(http.StatusNoContent)
}

func (api *courseApi) addModule(ctx echo.Context) error {
	id, err := intParam(ctx, "id")
	if err != nil {
		return err
	}
	var data course.NewModule
	if err = ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewModule")
	}
	if err = data.Validate(api.deps.Validate); err != nil {
		return err
	}

	mod, err := api.deps.CourseSvc.AddModule(id, data)
	if err != nil {
		return errors.Wrap(err, "adding module")
	}
	return ctx.JSON(http.StatusCreated, mod)
}

type ReorderModulesRequest struct {
	ModuleIDs []int `json:"moduleIds"`
}

func (api *courseApi) reorderModules(ctx echo.Context) error {
	id, err := intParam(ctx, "id")
	if err != nil {
		return err
	}
	var data ReorderModulesRequest
	if err = ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to ReorderModulesRequest")
	}

	mods, err := api.deps.CourseSvc.ReorderModules(id, data.ModuleIDs)
	if err != nil {
		switch errors.Cause(err) {
		case course.ErrNotFound:
			return errHttpNotFound
		case course.ErrModuleNotFound:
			return core.NewValidationError(err)
		}
		return errors.Wrap(err, "reordering modules")
	}
	return ctx.JSON(http.StatusOK, mods)
}

func (api *courseApi) updateModule(ctx echo.Context) error {
	id, err := intParam(ctx, "id")
	if err != nil {
		return err
	}
	moduleID, err := intParam(ctx, "moduleID")
	if err != nil {
		return err
	}
	var data course.NewModule
	if err = ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewModule")
	}

	mod, err := api.deps.CourseSvc.UpdateModule(id, moduleID, data)
	if err != nil {
		switch errors.Cause(err) {
		case course.ErrNotFound, course.ErrModuleNotFound:
			return errHttpNotFound
		}
		return errors.Wrap(err, "updating module")
	}
	return ctx.JSON(http.StatusOK, mod)
}

func (api *courseApi) destroyModule(ctx echo.Context) error {
	id, err := intParam(ctx, "id")
	if err != nil {
		return err
	}
	moduleID, err := intParam(ctx, "moduleID")
	if err != nil {
		return err
	}
	if err = api.deps.CourseSvc.DeleteModule(id, moduleID); err != nil {
		return errors.Wrap(err, "deleting module")
	}
	return ctx.NoContent(http.StatusNoContent)
}

func (api *courseApi) addLesson(ctx echo.Context) error {
	id, err := intParam(ctx, "id")
	if err != nil {
		return err
	}
	moduleID, err := intParam(ctx, "moduleID")
	if err != nil {
		return err
	}
	var data course.NewLesson
	if err = ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewLesson")
	}
	if err = data.Validate(api.deps.Validate); err != nil {
		return err
	}

	lsn, err := api.deps.CourseSvc.AddLesson(id, moduleID, data)
	if err != nil {
		return errors.Wrap(err, "adding lesson")
	}
	return ctx.JSON(http.StatusCreated, lsn)
}

func (api *courseApi) updateLesson(ctx echo.Context) error {
	id, err := intParam(ctx, "id")
	if err != nil {
		return err
	}
	moduleID, err := intParam(ctx, "moduleID")
	if err != nil {
		return err
	}
	lessonID, err := intParam(ctx, "lessonID")
	if err != nil {
		return err
	}
	var data course.NewLesson
	if err = ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewLesson")
	}

	lsn, err := api.deps.CourseSvc.UpdateLesson(id, moduleID, lessonID, data)
	if err != nil {
		switch errors.Cause(err) {
		case course.ErrNotFound, course.ErrModuleNotFound, course.ErrLessonNotFound:
			return errHttpNotFound
		}
		return errors.Wrap(err, "updating lesson")
	}
	return ctx.JSON(http.StatusOK, lsn)
}

func (api *courseApi) destroyLesson(ctx echo.Context) error {
	id, err := intParam(ctx, "id")
	if err != nil {
		return err
	}
	moduleID, err := intParam(ctx, "moduleID")
	if err != nil {
		return err
	}
	lessonID, err := intParam(ctx, "lessonID")
	if err != nil {
		return err
	}
	if err = api.deps.CourseSvc.DeleteLesson(id, moduleID, lessonID); err != nil {
		return errors.Wrap(err, "deleting lesson")
	}
	return ctx.NoContent(http.StatusNoContent)
}

func (api *courseApi) enroll(ctx echo.Context) error {
	id, err := intParam(ctx, "id")
	if err != nil {
		return err
	}
	ident, err := contextIdentity(ctx)
	if err != nil {
		return err
	}
	if err = api.deps.StudentSvc.Enroll(ident.ID, id); err != nil {
		return errors.Wrap(err, "enrolling student")
	}
	return ctx.NoContent(http.StatusNoContent)
}

func (api *courseApi) completeLesson(ctx echo.Context) error {
	id, err := intParam(ctx, "id")
	if err != nil {
		return err
	}
	ident, err := contextIdentity(ctx)
	if err != nil {
		return err
	}
	if err = api.deps.StudentSvc.MarkLessonComplete(ident.ID, id); err != nil {
		return errors.Wrap(err, "marking lesson complete")
	}
	return ctx.NoContent(http.StatusNoContent)
}
