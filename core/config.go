package core

import (
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Debug    bool
	TestMode bool
	AppName  string
	Build    string
	Env      string
	Color    bool

	Teacher          Person
	DefaultFromEmail string

	DefaultOutOf int
	SaveDelay    time.Duration // cosmetic save round-trip

	RollbarToken string
	ServerHost   string
}

func NewConfig() *Config {
	conf := viper.New()

	// defaults
	conf.SetTypeByDefaultValue(true)
	conf.SetDefault("debug", true)
	conf.SetDefault("appName", "Masomo Gradebook")
	conf.SetDefault("build", "develop")
	conf.SetDefault("color", true)
	conf.SetDefault("teacherName", "Class Teacher")
	conf.SetDefault("teacherEmail", "teacher@localhost")
	conf.SetDefault("defaultFromEmail", "noreply@localhost")
	conf.SetDefault("defaultOutOf", 100)
	conf.SetDefault("saveDelay", 1*time.Second)
	conf.SetDefault("rollbarToken", "")
	conf.SetDefault("serverHost", "localhost")

	env := strings.ToUpper(os.Getenv("ENV")) // DEV (local; default), TEST, QA, PROD
	switch env {
	case "":
		env = "DEV"
	case "TEST":
		conf.SetDefault("testMode", true)
		conf.SetDefault("saveDelay", time.Duration(0))
	}
	conf.SetEnvPrefix(env)

	// load .env if it exists (ignore if it does not)
	dotEnvPath := filepath.Join("config", ".env."+strings.ToLower(env))
	if _, err := os.Stat(dotEnvPath); err == nil {
		if err := godotenv.Load(dotEnvPath); err != nil {
			log.Fatalf("config.godotenv(%s): %v", dotEnvPath, err)
		}
	} else if !os.IsNotExist(err) {
		log.Fatalf("config.os.Stat(%s): %v", dotEnvPath, err)
	}
	conf.AutomaticEnv()

	outOf := conf.GetInt("defaultOutOf")
	if outOf <= 0 {
		outOf = 100
	}

	return &Config{
		Debug:    conf.GetBool("debug"),
		TestMode: conf.GetBool("testMode"),
		AppName:  conf.GetString("appName"),
		Build:    conf.GetString("build"),
		Env:      env,
		Color:    conf.GetBool("color"),
		Teacher: Person{
			Name:  conf.GetString("teacherName"),
			Email: conf.GetString("teacherEmail"),
		},
		DefaultFromEmail: conf.GetString("defaultFromEmail"),
		DefaultOutOf:     outOf,
		SaveDelay:        conf.GetDuration("saveDelay"),
		RollbarToken:     conf.GetString("rollbarToken"),
		ServerHost:       conf.GetString("serverHost"),
	}
}

// Person identifies whoever is operating the gradebook, for logs and mail headers.
type Person struct {
	ID    string
	Name  string
	Email string
}
