package inmemdb

import (
	"github.com/educonnect/educonnect/core"
	"github.com/educonnect/educonnect/core/student"
)

type studentRepository struct {
	db *DB
}

func NewStudentRepository(db *DB) student.Repository {
	return &studentRepository{db: db}
}

func copyStudent(stu student.Student) student.Student {
	cp := stu
	cp.EnrolledCourses = copyInts(stu.EnrolledCourses)
	cp.CompletedLessons = copyInts(stu.CompletedLessons)
	return cp
}

// find returns a pointer into the live collection; callers hold db.mu.
func (repo *studentRepository) find(id int) *student.Student {
	for i := range repo.db.students {
		if repo.db.students[i].ID == id {
			return &repo.db.students[i]
		}
	}
	return nil
}

func (repo *studentRepository) CreateStudent(stu student.Student) (student.Student, error) {
	repo.db.mu.Lock()
	defer repo.db.mu.Unlock()

	repo.db.studentSeq++
	stu.ID = repo.db.studentSeq
	if stu.EnrolledCourses == nil {
		stu.EnrolledCourses = []int{}
	}
	if stu.CompletedLessons == nil {
		stu.CompletedLessons = []int{}
	}
	repo.db.students = append(repo.db.students, copyStudent(stu))
	return stu, nil
}

func (repo *studentRepository) AllStudents() ([]student.Student, error) {
	repo.db.mu.RLock()
	defer repo.db.mu.RUnlock()

	students := make([]student.Student, 0, len(repo.db.students))
	for _, stu := range repo.db.students {
		students = append(students, copyStudent(stu))
	}
	return students, nil
}

func (repo *studentRepository) GetStudentByID(id int) (student.Student, error) {
	repo.db.mu.RLock()
	defer repo.db.mu.RUnlock()

	if stu := repo.find(id); stu != nil {
		return copyStudent(*stu), nil
	}
	return student.Student{}, student.ErrNotFound
}

func (repo *studentRepository) GetStudentByCredentials(email, password string) (student.Student, error) {
	repo.db.mu.RLock()
	defer repo.db.mu.RUnlock()

	for _, stu := range repo.db.students {
		if stu.Email == email && stu.Password == password {
			return copyStudent(stu), nil
		}
	}
	return student.Student{}, student.ErrNotFound
}

func (repo *studentRepository) AddEnrolledCourse(studentID, courseID int) error {
	repo.db.mu.Lock()
	defer repo.db.mu.Unlock()

	stu := repo.find(studentID)
	if stu == nil {
		return student.ErrNotFound
	}
	if !core.ContainsInt(stu.EnrolledCourses, courseID) {
		stu.EnrolledCourses = append(stu.EnrolledCourses, courseID)
	}
	return nil
}

func (repo *studentRepository) AddCompletedLesson(studentID, lessonID int) error {
	repo.db.mu.Lock()
	defer repo.db.mu.Unlock()

	stu := repo.find(studentID)
	if stu == nil {
		return student.ErrNotFound
	}
	if !core.ContainsInt(stu.CompletedLessons, lessonID) {
		stu.CompletedLessons = append(stu.CompletedLessons, lessonID)
	}
	return nil
}
