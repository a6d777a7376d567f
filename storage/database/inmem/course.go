package inmemdb

import (
	"github.com/educonnect/educonnect/core"
	"github.com/educonnect/educonnect/core/course"
)

type courseRepository struct {
	db *DB
}

func NewCourseRepository(db *DB) course.Repository {
	return &courseRepository{db: db}
}

func copyInts(ns []int) []int {
	cp := make([]int, len(ns))
	copy(cp, ns)
	return cp
}

func copyModules(mods []course.Module) []course.Module {
	cp := make([]course.Module, len(mods))
	for i, mod := range mods {
		cp[i] = mod
		cp[i].Lessons = make([]course.Lesson, len(mod.Lessons))
		copy(cp[i].Lessons, mod.Lessons)
	}
	return cp
}

func copyCourse(crs course.Course) course.Course {
	cp := crs
	cp.EnrolledStudents = copyInts(crs.EnrolledStudents)
	cp.Modules = copyModules(crs.Modules)
	return cp
}

// find returns a pointer into the live collection; callers hold db.mu.
func (repo *courseRepository) find(id int) *course.Course {
	for i := range repo.db.courses {
		if repo.db.courses[i].ID == id {
			return &repo.db.courses[i]
		}
	}
	return nil
}

func (repo *courseRepository) findModule(crs *course.Course, moduleID int) *course.Module {
	for i := range crs.Modules {
		if crs.Modules[i].ID == moduleID {
			return &crs.Modules[i]
		}
	}
	return nil
}

func (repo *courseRepository) CreateCourse(crs course.Course) (course.Course, error) {
	repo.db.mu.Lock()
	defer repo.db.mu.Unlock()

	repo.db.courseSeq++
	crs.ID = repo.db.courseSeq
	repo.db.courses = append(repo.db.courses, copyCourse(crs))
	return crs, nil
}

func (repo *courseRepository) AllCourses() ([]course.Course, error) {
	repo.db.mu.RLock()
	defer repo.db.mu.RUnlock()

	courses := make([]course.Course, 0, len(repo.db.courses))
	for _, crs := range repo.db.courses {
		courses = append(courses, copyCourse(crs))
	}
	return courses, nil
}

func (repo *courseRepository) GetCourseByID(id int) (course.Course, error) {
	repo.db.mu.RLock()
	defer repo.db.mu.RUnlock()

	if crs := repo.find(id); crs != nil {
		return copyCourse(*crs), nil
	}
	return course.Course{}, course.ErrNotFound
}

func (repo *courseRepository) UpdateCourse(id int, uc course.UpdateCourse) (course.Course, error) {
	repo.db.mu.Lock()
	defer repo.db.mu.Unlock()

	crs := repo.find(id)
	if crs == nil {
		return course.Course{}, course.ErrNotFound
	}
	// only save set fields
	if uc.Title != "" {
		crs.Title = uc.Title
	}
	if uc.Description != "" {
		crs.Description = uc.Description
	}
	if uc.Instructor != "" {
		crs.Instructor = uc.Instructor
	}
	if uc.Category != "" {
		crs.Category = uc.Category
	}
	if uc.Level != "" {
		crs.Level = uc.Level
	}
	if uc.Duration != "" {
		crs.Duration = uc.Duration
	}
	if uc.Price != nil {
		crs.Price = *uc.Price
	}
	if uc.Image != "" {
		crs.Image = uc.Image
	}
	return copyCourse(*crs), nil
}

// DeleteCourse is a silent no-op when the id is absent.
func (repo *courseRepository) DeleteCourse(id int) error {
	repo.db.mu.Lock()
	defer repo.db.mu.Unlock()

	kept := repo.db.courses[:0]
	for _, crs := range repo.db.courses {
		if crs.ID != id {
			kept = append(kept, crs)
		}
	}
	repo.db.courses = kept
	return nil
}

func (repo *courseRepository) AddEnrolledStudent(courseID, studentID int) error {
	repo.db.mu.Lock()
	defer repo.db.mu.Unlock()

	crs := repo.find(courseID)
	if crs == nil {
		return course.ErrNotFound
	}
	if !core.ContainsInt(crs.EnrolledStudents, studentID) {
		crs.EnrolledStudents = append(crs.EnrolledStudents, studentID)
	}
	return nil
}

// AddModule returns the created module even when the course id is absent, in
// which case nothing is attached (silent no-op on the collection).
func (repo *courseRepository) AddModule(courseID int, mod course.Module) (course.Module, error) {
	repo.db.mu.Lock()
	defer repo.db.mu.Unlock()

	repo.db.moduleSeq++
	mod.ID = repo.db.moduleSeq
	if mod.Lessons == nil {
		mod.Lessons = []course.Lesson{}
	}
	if crs := repo.find(courseID); crs != nil {
		mod.Order = len(crs.Modules) + 1
		crs.Modules = append(crs.Modules, mod)
	}
	return mod, nil
}

func (repo *courseRepository) UpdateModule(courseID int, mod course.Module) (course.Module, error) {
	repo.db.mu.Lock()
	defer repo.db.mu.Unlock()

	crs := repo.find(courseID)
	if crs == nil {
		return course.Module{}, course.ErrNotFound
	}
	orig := repo.findModule(crs, mod.ID)
	if orig == nil {
		return course.Module{}, course.ErrModuleNotFound
	}
	if mod.Title != "" {
		orig.Title = mod.Title
	}
	if mod.Description != "" {
		orig.Description = mod.Description
	}
	cp := *orig
	cp.Lessons = make([]course.Lesson, len(orig.Lessons))
	copy(cp.Lessons, orig.Lessons)
	return cp, nil
}

func (repo *courseRepository) DeleteModule(courseID, moduleID int) error {
	repo.db.mu.Lock()
	defer repo.db.mu.Unlock()

	crs := repo.find(courseID)
	if crs == nil {
		return nil
	}
	kept := crs.Modules[:0]
	for _, mod := range crs.Modules {
		if mod.ID != moduleID {
			kept = append(kept, mod)
		}
	}
	// keep Order a dense 1..N sequence
	for i := range kept {
		kept[i].Order = i + 1
	}
	crs.Modules = kept
	return nil
}

func (repo *courseRepository) ReorderModules(courseID int, moduleIDs []int) ([]course.Module, error) {
	repo.db.mu.Lock()
	defer repo.db.mu.Unlock()

	crs := repo.find(courseID)
	if crs == nil {
		return nil, course.ErrNotFound
	}
	if len(moduleIDs) != len(crs.Modules) {
		return nil, course.ErrModuleNotFound
	}
	reordered := make([]course.Module, 0, len(crs.Modules))
	for i, id := range moduleIDs {
		mod := repo.findModule(crs, id)
		if mod == nil {
			return nil, course.ErrModuleNotFound
		}
		for _, seen := range reordered {
			if seen.ID == id {
				return nil, course.ErrModuleNotFound
			}
		}
		mod.Order = i + 1
		reordered = append(reordered, *mod)
	}
	crs.Modules = reordered
	return copyModules(crs.Modules), nil
}

// AddLesson mirrors AddModule: the created lesson is returned even when the
// parent course or module is absent.
func (repo *courseRepository) AddLesson(courseID, moduleID int, lsn course.Lesson) (course.Lesson, error) {
	repo.db.mu.Lock()
	defer repo.db.mu.Unlock()

	repo.db.lessonSeq++
	lsn.ID = repo.db.lessonSeq
	lsn.Completed = false
	if crs := repo.find(courseID); crs != nil {
		if mod := repo.findModule(crs, moduleID); mod != nil {
			mod.Lessons = append(mod.Lessons, lsn)
		}
	}
	return lsn, nil
}

func (repo *courseRepository) UpdateLesson(courseID, moduleID int, lsn course.Lesson) (course.Lesson, error) {
	repo.db.mu.Lock()
	defer repo.db.mu.Unlock()

	crs := repo.find(courseID)
	if crs == nil {
		return course.Lesson{}, course.ErrNotFound
	}
	mod := repo.findModule(crs, moduleID)
	if mod == nil {
		return course.Lesson{}, course.ErrModuleNotFound
	}
	for i := range mod.Lessons {
		if mod.Lessons[i].ID == lsn.ID {
			if lsn.Title != "" {
				mod.Lessons[i].Title = lsn.Title
			}
			if lsn.Duration != "" {
				mod.Lessons[i].Duration = lsn.Duration
			}
			if lsn.Type != "" {
				mod.Lessons[i].Type = lsn.Type
			}
			if lsn.Content != "" {
				mod.Lessons[i].Content = lsn.Content
			}
			return mod.Lessons[i], nil
		}
	}
	return course.Lesson{}, course.ErrLessonNotFound
}

func (repo *courseRepository) DeleteLesson(courseID, moduleID, lessonID int) error {
	repo.db.mu.Lock()
	defer repo.db.mu.Unlock()

	crs := repo.find(courseID)
	if crs == nil {
		return nil
	}
	mod := repo.findModule(crs, moduleID)
	if mod == nil {
		return nil
	}
	kept := mod.Lessons[:0]
	for _, lsn := range mod.Lessons {
		if lsn.ID != lessonID {
			kept = append(kept, lsn)
		}
	}
	mod.Lessons = kept
	return nil
}
