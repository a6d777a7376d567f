package inmemdb

import (
	"sync"

	"github.com/educonnect/educonnect/core/admin"
	"github.com/educonnect/educonnect/core/assignment"
	"github.com/educonnect/educonnect/core/course"
	"github.com/educonnect/educonnect/core/notification"
	"github.com/educonnect/educonnect/core/student"
)

// DB is the in-memory domain store. Collections are slice-backed so listing
// keeps insertion order; all access goes through one RWMutex (a single
// logical actor owns the store, the lock only covers the HTTP layer's
// concurrent reads). Ids come from per-collection monotonic counters seeded
// past the fixture maxima.
//
// Seeded lesson ids restart per course, so a lesson id is only unique within
// its course. Completion tracking compares raw lesson ids and inherits that
// quirk; new lessons draw from the shared counter and do not add to it.
type DB struct {
	mu sync.RWMutex

	courses       []course.Course
	students      []student.Student
	assignments   []assignment.Assignment
	notifications []notification.Notification
	admin         admin.Admin

	courseSeq       int
	moduleSeq       int
	lessonSeq       int
	studentSeq      int
	assignmentSeq   int
	submissionSeq   int
	notificationSeq int
}

// NewDB returns a store seeded with the fixture data set.
func NewDB() *DB {
	db := &DB{
		courses:       seedCourses(),
		students:      seedStudents(),
		assignments:   seedAssignments(),
		notifications: seedNotifications(),
		admin:         seedAdmin(),
	}
	for _, crs := range db.courses {
		if crs.ID > db.courseSeq {
			db.courseSeq = crs.ID
		}
		for _, mod := range crs.Modules {
			if mod.ID > db.moduleSeq {
				db.moduleSeq = mod.ID
			}
			for _, lsn := range mod.Lessons {
				if lsn.ID > db.lessonSeq {
					db.lessonSeq = lsn.ID
				}
			}
		}
	}
	for _, stu := range db.students {
		if stu.ID > db.studentSeq {
			db.studentSeq = stu.ID
		}
	}
	for _, asg := range db.assignments {
		if asg.ID > db.assignmentSeq {
			db.assignmentSeq = asg.ID
		}
		for _, sub := range asg.Submissions {
			if sub.ID > db.submissionSeq {
				db.submissionSeq = sub.ID
			}
		}
	}
	for _, ntf := range db.notifications {
		if ntf.ID > db.notificationSeq {
			db.notificationSeq = ntf.ID
		}
	}
	return db
}
