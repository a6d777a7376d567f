package echoapi

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"github.com/educonnect/educonnect/core"
	"github.com/educonnect/educonnect/core/assignment"
	"github.com/educonnect/educonnect/core/course"
	"github.com/educonnect/educonnect/core/notification"
	"github.com/educonnect/educonnect/core/session"
	"github.com/educonnect/educonnect/core/stats"
	"github.com/educonnect/educonnect/core/student"
	"github.com/educonnect/educonnect/services/email"
	"github.com/educonnect/educonnect/storage/database/inmem"
	"github.com/educonnect/educonnect/tests"
)

type httpTest struct {
	name     string
	method   string
	path     string
	body     []byte
	wantCode int
	wantData []byte
	wantLoc  string
	extra    interface{}
}

func setupServer(t *testing.T) (Server, *ServerDeps) {
	t.Helper()

	conf := testutil.NewConfig(t)
	db := inmemdb.NewDB()
	courseRepo := inmemdb.NewCourseRepository(db)
	studentRepo := inmemdb.NewStudentRepository(db)
	assignmentRepo := inmemdb.NewAssignmentRepository(db)

	validate := validator.New()
	translator := newTestTranslator()
	core.InitValidators(validate, translator)

	deps := &ServerDeps{
		Conf:            conf,
		Logger:          nopLogger{},
		Session:         testutil.NewSessionStore(t, conf, db),
		CourseSvc:       course.NewService(courseRepo, assignmentRepo),
		StudentSvc:      student.NewService(studentRepo, courseRepo),
		AssignmentSvc:   assignment.NewService(assignmentRepo),
		NotificationSvc: notification.NewService(inmemdb.NewNotificationRepository(db)),
		StatsSvc:        stats.NewService(courseRepo, studentRepo, assignmentRepo),
		EmailSvc:        emailsvc.NewConsoleServiceMock(conf),
		Validate:        validate,
		Translator:      translator,
	}
	return NewServer("localhost:8000", deps), deps
}

func newTestTranslator() ut.Translator {
	_en := en.New()
	uni := ut.New(_en, _en)
	translator, _ := uni.GetTranslator("en")
	return translator
}

type nopLogger struct{}

func (nopLogger) Debug(msg string, args ...interface{}) {}
func (nopLogger) Info(msg string, args ...interface{})  {}
func (nopLogger) Warn(msg string, args ...interface{})  {}
func (nopLogger) Error(msg string, args ...interface{}) {}
func (nopLogger) Fatal(msg string, args ...interface{}) {}

func newRequest(method, path string, data ...[]byte) (*http.Request, *httptest.ResponseRecorder) {
	var body bytes.Buffer
	if len(data) > 0 {
		body.Write(data[0])
	}
	req := httptest.NewRequest(method, path, &body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return req, rec
}

func loginStudent(t *testing.T, deps *ServerDeps) session.Identity {
	t.Helper()

	deps.Session.Restore()
	ident, err := deps.Session.Login("alex@student.com", "student123", session.RoleStudent)
	if err != nil {
		t.Fatalf("loginStudent() failed: %v", err)
	}
	return ident
}

func loginAdmin(t *testing.T, deps *ServerDeps) session.Identity {
	t.Helper()

	deps.Session.Restore()
	ident, err := deps.Session.Login("admin@educonnect.com", "admin123", session.RoleAdmin)
	if err != nil {
		t.Fatalf("loginAdmin() failed: %v", err)
	}
	return ident
}

func marchallObj(t *testing.T, obj interface{}) []byte {
	data, err := json.Marshal(obj)
	if err != nil {
		t.Fatalf("marchallObj() failed: %v", err)
	}
	return data
}

func jsonBytesEqual(t *testing.T, b1, b2 []byte) (bool, error) {
	var j1, j2 interface{}
	if err := json.Unmarshal(b1, &j1); err != nil {
		return false, err
	}
	if err := json.Unmarshal(b2, &j2); err != nil {
		return false, err
	}
	if reflect.DeepEqual(j1, j2) {
		return true, nil
	}
	return assert.ElementsMatch(t, j1, j2), nil
}

func checkCodeAndData(t *testing.T, tt httpTest, rec *httptest.ResponseRecorder) {
	t.Helper()

	if rec.Code != tt.wantCode {
		t.Errorf("failed! code = %v; wantCode %v", rec.Code, tt.wantCode)
	}
	if tt.wantLoc != "" {
		if loc := rec.Header().Get(echo.HeaderLocation); loc != tt.wantLoc {
			t.Errorf("failed! location = %v; wantLoc %v", loc, tt.wantLoc)
		}
		return
	}
	if tt.wantData == nil {
		return
	}
	ok, err := jsonBytesEqual(t, rec.Body.Bytes(), tt.wantData)
	if err != nil {
		t.Errorf("jsonBytesEqual() failed to compare; err %v", err)
	}
	if !ok {
		t.Errorf("failed! data = %v; wantData %v", rec.Body.String(), string(tt.wantData))
	}
}
