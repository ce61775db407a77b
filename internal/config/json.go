package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/checkmygrade/internal/flagx"
	"github.com/dmitrijs2005/checkmygrade/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Pointer and
// zero-valued fields that are absent from the file leave Config untouched.
type JsonConfig struct {
	DataDir        string          `json:"data_dir"`
	LoginFile      string          `json:"login_file"`
	StudentsFile   string          `json:"students_file"`
	ProfessorsFile string          `json:"professors_file"`
	CoursesFile    string          `json:"courses_file"`
	KDFIterations  int             `json:"kdf_iterations"`
	SessionTTL     *timex.Duration `json:"session_ttl"`
	SessionSecret  string          `json:"session_secret"`
	LogLevel       string          `json:"log_level"`
}

// parseJson overlays cfg with the JSON file named by -c/-config, if any.
// Read or decode errors panic.
func parseJson(cfg *Config, args []string) {
	path := flagx.ConfigFileFlag(args)
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}
	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	applyString(&cfg.DataDir, jc.DataDir)
	applyString(&cfg.LoginFile, jc.LoginFile)
	applyString(&cfg.StudentsFile, jc.StudentsFile)
	applyString(&cfg.ProfessorsFile, jc.ProfessorsFile)
	applyString(&cfg.CoursesFile, jc.CoursesFile)
	applyString(&cfg.SessionSecret, jc.SessionSecret)
	applyString(&cfg.LogLevel, jc.LogLevel)
	if jc.KDFIterations != 0 {
		cfg.KDFIterations = jc.KDFIterations
	}
	if jc.SessionTTL != nil {
		cfg.SessionTTL = jc.SessionTTL.Duration
	}
}
