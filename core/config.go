package core

import (
	"log"
	"net/mail"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Debug           bool
	TestMode        bool
	Env             string // DEV (default), TEST, QA, PROD
	Build           string
	AppName         string
	SecretKey       string
	FrontendBaseURL string
	SendgridApiKey  string
	RollbarToken    string

	// SessionFile is the single persisted key holding the current
	// authenticated identity. Last writer wins.
	SessionFile string

	defaultFromEmail string

	Server struct {
		Host            string
		Addr            string
		DebugHost       string
		ShutdownTimeout time.Duration
	}
}

func NewConfig(build ...string) *Config {
	v := viper.New()
	v.SetTypeByDefaultValue(true)

	// defaults
	v.SetDefault("debug", true)
	v.SetDefault("appName", "EduConnect")
	v.SetDefault("secretKey", "x1$f)d-20c&v%u@lq8#+s7^e5!y3*(r9jm4wzghn6bpka0t_oi")
	v.SetDefault("frontendBaseURL", "http://localhost:3000")
	v.SetDefault("defaultFromEmail", "noreply@educonnect.com")
	v.SetDefault("sessionFile", filepath.Join(os.TempDir(), "educonnect_user"))
	v.SetDefault("serverHost", "localhost")
	v.SetDefault("serverAddr", ":8000")
	v.SetDefault("serverDebugHost", "localhost:6060")
	v.SetDefault("serverShutdownTimeout", 5*time.Second)

	env := os.Getenv("ENV")
	if env == "" {
		env = "DEV"
	}
	if env == "TEST" {
		v.SetDefault("testMode", true)
	}
	v.SetEnvPrefix(env)

	// load .env if it exists (ignore if it does not)
	dotEnvPath := filepath.Join("config", ".env."+strings.ToLower(env))
	if _, err := os.Stat(dotEnvPath); err == nil {
		if err = godotenv.Load(dotEnvPath); err != nil {
			log.Fatalf("config.godotenv(%s): %v", dotEnvPath, err)
		}
	} else if !os.IsNotExist(err) {
		log.Fatalf("config.os.Stat(%s): %v", dotEnvPath, err)
	}
	v.AutomaticEnv()

	conf := &Config{
		Debug:            v.GetBool("debug"),
		TestMode:         v.GetBool("testMode"),
		Env:              env,
		AppName:          v.GetString("appName"),
		SecretKey:        v.GetString("secretKey"),
		FrontendBaseURL:  v.GetString("frontendBaseURL"),
		SendgridApiKey:   v.GetString("sendgridApiKey"),
		RollbarToken:     v.GetString("rollbarToken"),
		SessionFile:      v.GetString("sessionFile"),
		defaultFromEmail: v.GetString("defaultFromEmail"),
	}
	if len(build) > 0 {
		conf.Build = build[0]
	}
	conf.Server.Host = v.GetString("serverHost")
	conf.Server.Addr = v.GetString("serverAddr")
	conf.Server.DebugHost = v.GetString("serverDebugHost")
	conf.Server.ShutdownTimeout = v.GetDuration("serverShutdownTimeout")
	return conf
}

func (c *Config) DefaultFromEmail() mail.Address {
	return mail.Address{Name: c.AppName, Address: c.defaultFromEmail}
}
