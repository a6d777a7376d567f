package main

import (
	"fmt"

	"github.com/educonnect/educonnect/core"
	"github.com/educonnect/educonnect/core/session"
)

// checkLogin verifies a credential pair against the role's account source,
// the same check the session store performs at login.
func (cli *commandLine) checkLogin(email, pwd, role string) error {
	email = core.CleanString(email, true /* lower */)

	switch role {
	case session.RoleAdmin:
		adm, err := cli.admins.GetAdmin()
		if err != nil {
			return err
		}
		if adm.Email != email || adm.Password != pwd {
			return session.ErrAdminCredentials
		}
		fmt.Printf("OK: admin %s (id %d)\n", adm.Name, adm.ID)
	case session.RoleStudent:
		std, err := cli.stdSvc.GetByCredentials(email, pwd)
		if err != nil {
			return session.ErrStudentCredentials
		}
		fmt.Printf("OK: student %s (id %d)\n", std.Name, std.ID)
	default:
		return fmt.Errorf("%q: no such role", role)
	}
	return nil
}
