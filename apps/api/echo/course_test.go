package echoapi

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/educonnect/educonnect/core/course"
)

func Test_courseApi_query(t *testing.T) {
	srv, deps := setupServer(t)
	loginStudent(t, deps)

	courses, err := deps.CourseSvc.All()
	if err != nil {
		t.Fatalf("All() failed: %v", err)
	}

	req, rec := newRequest(http.MethodGet, "/courses")
	srv.ServeHTTP(rec, req)
	checkCodeAndData(t, httpTest{wantCode: http.StatusOK, wantData: marchallObj(t, courses)}, rec)
}

func Test_courseApi_retrieve(t *testing.T) {
	srv, deps := setupServer(t)
	loginStudent(t, deps)

	req, rec := newRequest(http.MethodGet, "/courses/1")
	srv.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("code = %d, want 200; body %s", rec.Code, rec.Body.String())
	}

	var detail CourseDetail
	if err := json.Unmarshal(rec.Body.Bytes(), &detail); err != nil {
		t.Fatalf("unmarshalling response failed: %v", err)
	}
	if detail.Course.ID != 1 {
		t.Errorf("Course.ID = %d, want 1", detail.Course.ID)
	}
	if len(detail.Assignments) != 2 {
		t.Errorf("Assignments = %d, want 2", len(detail.Assignments))
	}
	// student 1 completed 2 of course 1's nine lessons
	if detail.Progress != 22 {
		t.Errorf("Progress = %d, want 22", detail.Progress)
	}

	tests := []httpTest{
		{name: "not found", path: "/courses/99", wantCode: http.StatusNotFound},
		{name: "bad id", path: "/courses/lol", wantCode: http.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, rec := newRequest(http.MethodGet, tt.path)
			srv.ServeHTTP(rec, req)
			checkCodeAndData(t, tt, rec)
		})
	}
}

func Test_courseApi_create(t *testing.T) {
	srv, deps := setupServer(t)
	loginAdmin(t, deps)

	body := marchallObj(t, course.NewCourse{
		Title:       "Go for Backenders",
		Description: "A hands-on Go course",
		Instructor:  "Lina Park",
		Category:    "Programming",
		Level:       "Intermediate",
		Price:       49.99,
	})
	req, rec := newRequest(http.MethodPost, "/admin/courses", body)
	srv.ServeHTTP(rec, req)
	if rec.Code != http.StatusCreated {
		t.Fatalf("code = %d, want 201; body %s", rec.Code, rec.Body.String())
	}
	var crs course.Course
	if err := json.Unmarshal(rec.Body.Bytes(), &crs); err != nil {
		t.Fatalf("unmarshalling response failed: %v", err)
	}
	if crs.ID != 6 {
		t.Errorf("ID = %d, want 6", crs.ID)
	}

	// missing required fields
	req, rec = newRequest(http.MethodPost, "/admin/courses", []byte(`{"title":"Incomplete"}`))
	srv.ServeHTTP(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("code = %d, want 400", rec.Code)
	}
}

func Test_courseApi_update(t *testing.T) {
	srv, deps := setupServer(t)
	loginAdmin(t, deps)

	req, rec := newRequest(http.MethodPut, "/admin/courses/1", []byte(`{"title":"Web Dev Reloaded"}`))
	srv.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("code = %d, want 200; body %s", rec.Code, rec.Body.String())
	}
	var crs course.Course
	if err := json.Unmarshal(rec.Body.Bytes(), &crs); err != nil {
		t.Fatalf("unmarshalling response failed: %v", err)
	}
	if crs.Title != "Web Dev Reloaded" {
		t.Errorf("Title = %s, want patched value", crs.Title)
	}

	req, rec = newRequest(http.MethodPut, "/admin/courses/99", []byte(`{"title":"X"}`))
	srv.ServeHTTP(rec, req)
	if rec.Code != http.StatusNotFound {
		t.Errorf("code = %d, want 404", rec.Code)
	}
}

func Test_courseApi_destroy(t *testing.T) {
	srv, deps := setupServer(t)
	loginAdmin(t, deps)

	req, rec := newRequest(http.MethodDelete, "/admin/courses/1")
	srv.ServeHTTP(rec, req)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("code = %d, want 204", rec.Code)
	}
	if _, err := deps.CourseSvc.GetByID(1); err != course.ErrNotFound {
		t.Errorf("GetByID() error = %v, want ErrNotFound", err)
	}
	// the cascade clears the course's assignments too
	asgs, err := deps.AssignmentSvc.ByCourse(1)
	if err != nil {
		t.Fatalf("ByCourse() failed: %v", err)
	}
	if len(asgs) != 0 {
		t.Errorf("ByCourse() = %d, want 0", len(asgs))
	}
}

func Test_courseApi_modules(t *testing.T) {
	srv, deps := setupServer(t)
	loginAdmin(t, deps)

	// add
	req, rec := newRequest(http.MethodPost, "/admin/courses/1/modules", []byte(`{"title":"JavaScript Basics"}`))
	srv.ServeHTTP(rec, req)
	if rec.Code != http.StatusCreated {
		t.Fatalf("code = %d, want 201; body %s", rec.Code, rec.Body.String())
	}
	var mod course.Module
	if err := json.Unmarshal(rec.Body.Bytes(), &mod); err != nil {
		t.Fatalf("unmarshalling response failed: %v", err)
	}
	if mod.Order != 4 {
		t.Errorf("Order = %d, want 4", mod.Order)
	}

	// reorder
	body := marchallObj(t, ReorderModulesRequest{ModuleIDs: []int{mod.ID, 3, 1, 2}})
	req, rec = newRequest(http.MethodPut, "/admin/courses/1/modules/order", body)
	srv.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("code = %d, want 200; body %s", rec.Code, rec.Body.String())
	}
	var mods []course.Module
	if err := json.Unmarshal(rec.Body.Bytes(), &mods); err != nil {
		t.Fatalf("unmarshalling response failed: %v", err)
	}
	if mods[0].ID != mod.ID || mods[0].Order != 1 {
		t.Errorf("mods[0] = %+v, want the new module first", mods[0])
	}

	// reorder with a stale set is a validation error
	req, rec = newRequest(http.MethodPut, "/admin/courses/1/modules/order", []byte(`{"moduleIds":[1,2]}`))
	srv.ServeHTTP(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("code = %d, want 400", rec.Code)
	}

	// delete renumbers the survivors
	req, rec = newRequest(http.MethodDelete, "/admin/courses/1/modules/3")
	srv.ServeHTTP(rec, req)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("code = %d, want 204", rec.Code)
	}
	crs, err := deps.CourseSvc.GetByID(1)
	if err != nil {
		t.Fatalf("GetByID() failed: %v", err)
	}
	for i, m := range crs.Modules {
		if m.Order != i+1 {
			t.Errorf("Modules[%d].Order = %d, want %d", i, m.Order, i+1)
		}
	}
}

func Test_courseApi_lessons(t *testing.T) {
	srv, deps := setupServer(t)
	loginAdmin(t, deps)

	req, rec := newRequest(http.MethodPost, "/admin/courses/1/modules/1/lessons",
		[]byte(`{"title":"Browser Devtools","duration":"20 min","type":"video"}`))
	srv.ServeHTTP(rec, req)
	if rec.Code != http.StatusCreated {
		t.Fatalf("code = %d, want 201; body %s", rec.Code, rec.Body.String())
	}
	var lsn course.Lesson
	if err := json.Unmarshal(rec.Body.Bytes(), &lsn); err != nil {
		t.Fatalf("unmarshalling response failed: %v", err)
	}
	if lsn.ID != 10 {
		t.Errorf("ID = %d, want 10", lsn.ID)
	}

	req, rec = newRequest(http.MethodPut, "/admin/courses/1/modules/1/lessons/3", []byte(`{"title":"Tooling Setup"}`))
	srv.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("code = %d, want 200; body %s", rec.Code, rec.Body.String())
	}

	req, rec = newRequest(http.MethodDelete, "/admin/courses/1/modules/1/lessons/2")
	srv.ServeHTTP(rec, req)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("code = %d, want 204", rec.Code)
	}
	crs, err := deps.CourseSvc.GetByID(1)
	if err != nil {
		t.Fatalf("GetByID() failed: %v", err)
	}
	// started with 3, added 1, deleted 1
	if n := len(crs.Modules[0].Lessons); n != 3 {
		t.Errorf("Lessons = %d, want 3", n)
	}
}

func Test_courseApi_enroll(t *testing.T) {
	srv, deps := setupServer(t)
	loginStudent(t, deps)

	// student 1 is not enrolled in course 4 in the seed data
	req, rec := newRequest(http.MethodPost, "/courses/4/enroll")
	srv.ServeHTTP(rec, req)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("code = %d, want 204; body %s", rec.Code, rec.Body.String())
	}
	std, err := deps.StudentSvc.GetByID(1)
	if err != nil {
		t.Fatalf("GetByID() failed: %v", err)
	}
	if !std.IsEnrolled(4) {
		t.Error("student not enrolled after the call")
	}
	crs, err := deps.CourseSvc.GetByID(4)
	if err != nil {
		t.Fatalf("GetByID() failed: %v", err)
	}
	if !crs.IsEnrolled(1) {
		t.Error("course side of the enrollment is missing")
	}
}

func Test_courseApi_completeLesson(t *testing.T) {
	srv, deps := setupServer(t)
	loginStudent(t, deps)

	req, rec := newRequest(http.MethodPost, "/lessons/3/complete")
	srv.ServeHTTP(rec, req)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("code = %d, want 204; body %s", rec.Code, rec.Body.String())
	}
	std, err := deps.StudentSvc.GetByID(1)
	if err != nil {
		t.Fatalf("GetByID() failed: %v", err)
	}
	if !std.HasCompleted(3) {
		t.Error("lesson not marked complete")
	}
}
