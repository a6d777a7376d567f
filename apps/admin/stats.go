package main

import "fmt"

func (cli *commandLine) printStats() error {
	overview, err := cli.statsSvc.Overview()
	if err != nil {
		return err
	}
	fmt.Println("Platform overview:")
	fmt.Printf("  students:            %d\n", overview.TotalStudents)
	fmt.Printf("  courses:             %d\n", overview.TotalCourses)
	fmt.Printf("  assignments:         %d\n", overview.TotalAssignments)
	fmt.Printf("  enrollments:         %d\n", overview.TotalEnrollments)
	fmt.Printf("  pending submissions: %d\n", overview.PendingSubmissions)
	return nil
}

func (cli *commandLine) listAssignments() error {
	asgs, err := cli.asgSvc.All()
	if err != nil {
		return err
	}
	for _, asg := range asgs {
		fmt.Printf("%d\t%s (course %d, due %s) - %d submissions\n",
			asg.ID, asg.Title, asg.CourseID, asg.DueDate, len(asg.Submissions))
	}
	return nil
}

func (cli *commandLine) listCourses() error {
	courses, err := cli.crsSvc.All()
	if err != nil {
		return err
	}
	for _, crs := range courses {
		fmt.Printf("%d\t%s (%s) - %d enrolled, %d lessons\n",
			crs.ID, crs.Title, crs.Instructor, len(crs.EnrolledStudents), crs.TotalLessons())
	}
	return nil
}
