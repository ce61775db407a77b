package config

import (
	"os"
	"strconv"
	"time"

	"github.com/dmitrijs2005/checkmygrade/internal/filex"
	"github.com/dmitrijs2005/checkmygrade/internal/flagx"
	"github.com/joho/godotenv"
)

const defaultEnvFile = ".env"

const (
	envDataDir        = "CMG_DATA_DIR"
	envLoginFile      = "CMG_LOGIN_FILE"
	envStudentsFile   = "CMG_STUDENTS_FILE"
	envProfessorsFile = "CMG_PROFESSORS_FILE"
	envCoursesFile    = "CMG_COURSES_FILE"
	envKDFIterations  = "CMG_KDF_ITERATIONS"
	envSessionTTL     = "CMG_SESSION_TTL"
	envSessionSecret  = "CMG_SESSION_SECRET"
	envLogLevel       = "CMG_LOG_LEVEL"
)

var envKeys = []string{
	envDataDir, envLoginFile, envStudentsFile, envProfessorsFile, envCoursesFile,
	envKDFIterations, envSessionTTL, envSessionSecret, envLogLevel,
}

// parseEnv overlays cfg with CMG_* variables. Values come from the dotenv
// file named by -env (or ./.env if it exists) and then from the process
// environment, which wins. The process environment is never modified.
func parseEnv(cfg *Config, args []string) {
	vars := map[string]string{}

	path := flagx.EnvFileFlag(args)
	if path == "" && filex.Exists(defaultEnvFile) {
		path = defaultEnvFile
	}
	if path != "" {
		fileVars, err := godotenv.Read(path)
		if err != nil {
			panic(err)
		}
		for k, v := range fileVars {
			vars[k] = v
		}
	}
	for _, k := range envKeys {
		if v, ok := os.LookupEnv(k); ok {
			vars[k] = v
		}
	}

	applyString(&cfg.DataDir, vars[envDataDir])
	applyString(&cfg.LoginFile, vars[envLoginFile])
	applyString(&cfg.StudentsFile, vars[envStudentsFile])
	applyString(&cfg.ProfessorsFile, vars[envProfessorsFile])
	applyString(&cfg.CoursesFile, vars[envCoursesFile])
	applyString(&cfg.SessionSecret, vars[envSessionSecret])
	applyString(&cfg.LogLevel, vars[envLogLevel])

	if v := vars[envKDFIterations]; v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			panic(err)
		}
		cfg.KDFIterations = n
	}
	if v := vars[envSessionTTL]; v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			panic(err)
		}
		cfg.SessionTTL = d
	}
}

func applyString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
