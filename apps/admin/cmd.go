package main

import (
	"errors"
	"flag"
	"fmt"
	"syscall"

	"golang.org/x/term"

	"github.com/educonnect/educonnect/core/admin"
	"github.com/educonnect/educonnect/core/assignment"
	"github.com/educonnect/educonnect/core/course"
	"github.com/educonnect/educonnect/core/stats"
	"github.com/educonnect/educonnect/core/student"
)

var (
	readPasswordFunc = term.ReadPassword // mockable

	errHelp = errors.New("help provided")
)

type commandLine struct {
	crsSvc   *course.Service
	stdSvc   *student.Service
	asgSvc   *assignment.Service
	statsSvc *stats.Service
	admins   admin.Repository
}

func (cli *commandLine) printUsage() {
	fmt.Println("Usage:")
	fmt.Println("  stats                          - print the platform overview")
	fmt.Println("  courses                        - list the course catalog")
	fmt.Println("  assignments                    - list assignments and their submission counts")
	fmt.Println("  checklogin -email EMAIL -role admin|student - verify credentials. The password will be prompted next.")
}

func (cli *commandLine) run(args []string) error {
	if len(args) < 2 {
		cli.printUsage()
		return errHelp
	}

	checkLoginCmd := flag.NewFlagSet("checklogin", flag.ExitOnError)
	checkLoginEmail := checkLoginCmd.String("email", "", "The account's email. The password will be prompted next.")
	checkLoginRole := checkLoginCmd.String("role", "student", "The account's role: admin or student.")

	switch args[1] {
	case "stats":
		return cli.printStats()
	case "courses":
		return cli.listCourses()
	case "assignments":
		return cli.listAssignments()
	case "checklogin":
		if err := checkLoginCmd.Parse(args[2:]); err != nil {
			return err
		}
		if *checkLoginEmail == "" {
			checkLoginCmd.Usage()
			return errHelp
		}
		fmt.Print("Enter password:")
		pwd, err := readPasswordFunc(syscall.Stdin)
		fmt.Println()
		if err != nil {
			return err
		}
		if len(pwd) == 0 {
			checkLoginCmd.Usage()
			return errHelp
		}
		return cli.checkLogin(*checkLoginEmail, string(pwd), *checkLoginRole)
	default:
		cli.printUsage()
		return errHelp
	}
}
