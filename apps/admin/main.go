package main

import (
	"log"
	"os"

	"github.com/educonnect/educonnect/core/assignment"
	"github.com/educonnect/educonnect/core/course"
	"github.com/educonnect/educonnect/core/stats"
	"github.com/educonnect/educonnect/core/student"
	"github.com/educonnect/educonnect/storage/database/inmem"
)

var logger *log.Logger

func main() {
	defer os.Exit(0)

	logger = log.New(os.Stdout, "ADMIN : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile)

	// set up DB
	db := inmemdb.NewDB()
	courseRepo := inmemdb.NewCourseRepository(db)
	studentRepo := inmemdb.NewStudentRepository(db)
	assignmentRepo := inmemdb.NewAssignmentRepository(db)

	// start CLI
	cli := commandLine{
		crsSvc:   course.NewService(courseRepo, assignmentRepo),
		stdSvc:   student.NewService(studentRepo, courseRepo),
		asgSvc:   assignment.NewService(assignmentRepo),
		statsSvc: stats.NewService(courseRepo, studentRepo, assignmentRepo),
		admins:   inmemdb.NewAdminRepository(db),
	}
	if err := cli.run(os.Args); err != nil {
		if err != errHelp {
			logger.Printf("\nerror: %s\n", err)
		}
		os.Exit(1)
	}
}
