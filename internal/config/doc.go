// Package config loads runtime configuration for the checkmygrade CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. A dotenv file (-env path, or ./.env when present) overlaid by the process
//     environment; only CMG_* variables are read.
//  3. Optional JSON file selected with -c or -config.
//  4. Command-line flags, which override everything above.
//
// Supported flags
//
//	-d string   data directory holding the record stores
//	-l string   credential store file name
//	-s string   student store file name
//	-p string   professor store file name
//	-o string   course store file name
//	-i int      PBKDF2 iteration count
//	-t int      session lifetime (minutes)
//	-v string   log level: debug, info, warn, error
//
// # JSON schema
//
//	{
//	  "data_dir": "data",
//	  "login_file": "login.csv",
//	  "students_file": "students.csv",
//	  "professors_file": "professors.csv",
//	  "courses_file": "courses.csv",
//	  "kdf_iterations": 100000,
//	  "session_ttl": "30m",
//	  "session_secret": "change-me",
//	  "log_level": "info"
//	}
//
// The session secret is deliberately not exposed as a flag.
package config
