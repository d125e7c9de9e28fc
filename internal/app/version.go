package app

import "fmt"

// Build metadata, set via ldflags:
//
//	go build -ldflags "-X github.com/heartmarshall/preconsultation-backend/internal/app.Version=1.4.0"
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

// BuildVersion returns the version line logged at startup.
func BuildVersion() string {
	return fmt.Sprintf("%s %s (commit: %s, built: %s)", serviceName, Version, Commit, BuildTime)
}
