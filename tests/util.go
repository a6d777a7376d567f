package testutil

import (
	"path/filepath"
	"testing"

	"github.com/educonnect/educonnect/core"
	"github.com/educonnect/educonnect/core/session"
	"github.com/educonnect/educonnect/storage/database/inmem"
)

// NewConfig returns a test configuration with session persistence pointed at
// a per-test temp file.
func NewConfig(t *testing.T) *core.Config {
	t.Helper()

	conf := &core.Config{
		TestMode:    true,
		Env:         "test",
		Build:       "test",
		AppName:     "EduConnect",
		SecretKey:   "s3cr3t",
		SessionFile: filepath.Join(t.TempDir(), "educonnect_session"),
	}
	conf.Server.Host = "localhost"
	return conf
}

// NewSessionStore wires a session store against the given DB's fixtures,
// backed by the config's temp session file.
func NewSessionStore(t *testing.T, conf *core.Config, db *inmemdb.DB) *session.Store {
	t.Helper()

	return session.NewStore(
		conf,
		inmemdb.NewStudentRepository(db),
		inmemdb.NewAdminRepository(db),
		session.NewFileKeeper(conf.SessionFile),
	)
}
