package config

import (
	"flag"
	"io"
	"time"

	"github.com/dmitrijs2005/checkmygrade/internal/flagx"
)

// parseFlags overlays cfg with command-line flags. Only the flags listed in
// the package documentation are considered; the rest of args is ignored.
func parseFlags(cfg *Config, args []string) {
	args = flagx.FilterArgs(args, []string{"-d", "-l", "-s", "-p", "-o", "-i", "-t", "-v"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.DataDir, "d", cfg.DataDir, "data directory")
	fs.StringVar(&cfg.LoginFile, "l", cfg.LoginFile, "credential store file")
	fs.StringVar(&cfg.StudentsFile, "s", cfg.StudentsFile, "student store file")
	fs.StringVar(&cfg.ProfessorsFile, "p", cfg.ProfessorsFile, "professor store file")
	fs.StringVar(&cfg.CoursesFile, "o", cfg.CoursesFile, "course store file")
	fs.IntVar(&cfg.KDFIterations, "i", cfg.KDFIterations, "PBKDF2 iteration count")
	ttl := fs.Int("t", int(cfg.SessionTTL.Minutes()), "session lifetime (in minutes)")
	fs.StringVar(&cfg.LogLevel, "v", cfg.LogLevel, "log level")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	fs.Visit(func(f *flag.Flag) {
		if f.Name == "t" {
			cfg.SessionTTL = time.Duration(*ttl) * time.Minute
		}
	})
}
