package config

import (
	"log"
	"strconv"
)

// Config holds everything the server reads from the environment.
type Config struct {
	Port      string
	MongoURI  string
	MongoDB   string
	JWTSecret string

	// ResumeDir is where uploaded resumes land; ResumeMaxSize caps a single
	// upload in bytes.
	ResumeDir     string
	ResumeMaxSize int64

	// StrictStatusFlow rejects moving an application out of a terminal
	// status (accepted/rejected). Off by default: the review UI is then the
	// only thing preventing a re-decision.
	StrictStatusFlow bool
}

func New() *Config {
	cfg := &Config{
		Port:             GetEnv("PORT", "5000"),
		MongoURI:         GetEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDB:          GetEnv("MONGO_DB", "internlink"),
		JWTSecret:        GetEnv("JWT_SECRET", ""),
		ResumeDir:        GetEnv("RESUME_DIR", "uploads/resumes"),
		ResumeMaxSize:    5 << 20,
		StrictStatusFlow: GetEnv("STRICT_STATUS_FLOW", "false") == "true",
	}
	if cfg.JWTSecret == "" {
		log.Fatal("FATAL: JWT_SECRET environment variable not set")
	}
	if raw := GetEnv("RESUME_MAX_SIZE", ""); raw != "" {
		size, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || size <= 0 {
			log.Fatalf("FATAL: invalid RESUME_MAX_SIZE %q", raw)
		}
		cfg.ResumeMaxSize = size
	}
	return cfg
}
