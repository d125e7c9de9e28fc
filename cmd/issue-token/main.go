// Command issue-token prints a signed access token for a caller. It is used
// to drive the API from scripts and from the workflow engine in development.
//
// Usage:
//
//	issue-token --user=wf-1 --role=app_cmo --source=WORKFLOW
//
// Requires AUTH_JWT_SECRET environment variable to be set.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/heartmarshall/preconsultation-backend/internal/auth"
	"github.com/heartmarshall/preconsultation-backend/internal/domain"
)

func main() {
	user := flag.String("user", "", "user id carried as the token subject")
	role := flag.String("role", string(domain.CallerCMO), "IAM role of the caller")
	source := flag.String("source", string(domain.SourceUser), "USER or WORKFLOW")
	ttl := flag.Duration("ttl", time.Hour, "token lifetime")
	issuer := flag.String("issuer", "preconsultation", "token issuer")
	flag.Parse()

	if *user == "" {
		fmt.Fprintln(os.Stderr, "Usage: issue-token --user=<id> [--role=app_cmo] [--source=USER|WORKFLOW]")
		os.Exit(1)
	}

	secret := os.Getenv("AUTH_JWT_SECRET")
	if secret == "" {
		log.Fatal("AUTH_JWT_SECRET environment variable is required")
	}

	token, err := auth.NewJWTManager(secret, *issuer, *ttl).GenerateAccessToken(auth.Caller{
		UserID: *user,
		Role:   domain.CallerRole(*role),
		Source: domain.CallerSource(*source),
	})
	if err != nil {
		log.Fatalf("generate token: %v", err)
	}

	fmt.Println(token)
}
