package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/dmitrijs2005/checkmygrade/internal/cryptox"
)

// Config holds runtime settings for the checkmygrade CLI.
//
// File names are resolved against DataDir by StorePaths unless absolute.
// An empty SessionSecret means a random per-process secret is generated.
type Config struct {
	DataDir        string
	LoginFile      string
	StudentsFile   string
	ProfessorsFile string
	CoursesFile    string
	KDFIterations  int
	SessionTTL     time.Duration
	SessionSecret  string
	LogLevel       string
}

// StorePaths lists the location of every record store.
type StorePaths struct {
	Login      string
	Students   string
	Professors string
	Courses    string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.DataDir = "data"
	c.LoginFile = "login.csv"
	c.StudentsFile = "students.csv"
	c.ProfessorsFile = "professors.csv"
	c.CoursesFile = "courses.csv"
	c.KDFIterations = cryptox.DefaultIterations
	c.SessionTTL = 30 * time.Minute
	c.SessionSecret = ""
	c.LogLevel = "info"
}

// StorePaths joins every store file name with DataDir.
func (c *Config) StorePaths() StorePaths {
	resolve := func(name string) string {
		if filepath.IsAbs(name) {
			return name
		}
		return filepath.Join(c.DataDir, name)
	}
	return StorePaths{
		Login:      resolve(c.LoginFile),
		Students:   resolve(c.StudentsFile),
		Professors: resolve(c.ProfessorsFile),
		Courses:    resolve(c.CoursesFile),
	}
}

// LoadConfig constructs a Config from defaults, the environment, an optional
// JSON file and command-line flags, later sources taking precedence.
// Malformed input panics, as configuration errors are fatal at startup.
func LoadConfig() *Config {
	return load(os.Args[1:])
}

func load(args []string) *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg, args)
	parseJson(cfg, args)
	parseFlags(cfg, args)
	return cfg
}
