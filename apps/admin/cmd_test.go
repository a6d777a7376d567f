package main

import (
	"testing"

	"github.com/educonnect/educonnect/core/assignment"
	"github.com/educonnect/educonnect/core/course"
	"github.com/educonnect/educonnect/core/session"
	"github.com/educonnect/educonnect/core/stats"
	"github.com/educonnect/educonnect/core/student"
	"github.com/educonnect/educonnect/storage/database/inmem"
)

func setup(t *testing.T) *commandLine {
	t.Helper()

	db := inmemdb.NewDB()
	courseRepo := inmemdb.NewCourseRepository(db)
	studentRepo := inmemdb.NewStudentRepository(db)
	assignmentRepo := inmemdb.NewAssignmentRepository(db)

	return &commandLine{
		crsSvc:   course.NewService(courseRepo, assignmentRepo),
		stdSvc:   student.NewService(studentRepo, courseRepo),
		asgSvc:   assignment.NewService(assignmentRepo),
		statsSvc: stats.NewService(courseRepo, studentRepo, assignmentRepo),
		admins:   inmemdb.NewAdminRepository(db),
	}
}

type cliTest struct {
	name    string
	args    []string // without program name
	wantErr error
	extra   interface{}
}

func Test_commandLine_run(t *testing.T) {
	cli := setup(t)

	tests := []cliTest{
		{name: "no command", wantErr: errHelp},
		{name: "unknown command", args: []string{"lol"}, wantErr: errHelp},
		{name: "stats", args: []string{"stats"}},
		{name: "courses", args: []string{"courses"}},
		{name: "assignments", args: []string{"assignments"}},
	}
	for _, tt := range tests {
		args := append([]string{"admin"}, tt.args...)

		t.Run(tt.name, func(t *testing.T) {
			if err := cli.run(args); err != tt.wantErr {
				t.Errorf("cli.run() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func Test_commandLine_checkLogin(t *testing.T) {
	cli := setup(t)

	type extra struct {
		pwd string
	}
	tests := []cliTest{
		{name: "email but no password", args: []string{"checklogin", "-email", "alex@student.com"}, wantErr: errHelp},
		{name: "student ok", args: []string{"checklogin", "-email", "alex@student.com"}, extra: extra{pwd: "student123"}},
		{name: "student wrong password", args: []string{"checklogin", "-email", "alex@student.com"}, extra: extra{pwd: "lol"}, wantErr: session.ErrStudentCredentials},
		{name: "student unknown email", args: []string{"checklogin", "-email", "who@student.com"}, extra: extra{pwd: "student123"}, wantErr: session.ErrStudentCredentials},
		{name: "admin ok", args: []string{"checklogin", "-email", "admin@educonnect.com", "-role", "admin"}, extra: extra{pwd: "admin123"}},
		{name: "admin wrong password", args: []string{"checklogin", "-email", "admin@educonnect.com", "-role", "admin"}, extra: extra{pwd: "lol"}, wantErr: session.ErrAdminCredentials},
		{name: "email case folded", args: []string{"checklogin", "-email", "Alex@Student.com"}, extra: extra{pwd: "student123"}},
	}
	for _, tt := range tests {
		args := append([]string{"admin"}, tt.args...)

		readPasswordFunc = func(fd int) ([]byte, error) {
			if extra, ok := tt.extra.(extra); ok {
				return []byte(extra.pwd), nil
			}
			return nil, nil
		}

		t.Run(tt.name, func(t *testing.T) {
			if err := cli.run(args); err != tt.wantErr {
				t.Errorf("cli.run() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
