package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/TECHBREW-hub/TravelSure/internal/domain"
	"github.com/TECHBREW-hub/TravelSure/internal/platform/auth/sessiontoken"
)

// Dev-only token minter. Prints an HS256 session token for exercising the
// protected endpoints with curl; the subject must still match the active
// server session.
func main() {
	_ = godotenv.Load()

	userID := flag.String("user-id", "1", "subject user id")
	email := flag.String("email", "john@example.com", "user email claim")
	secret := flag.String("secret", os.Getenv("JWT_SECRET"), "HS256 signing secret (defaults to JWT_SECRET)")
	ttl := flag.Duration("ttl", 24*time.Hour, "token lifetime")
	flag.Parse()

	if *secret == "" {
		fmt.Fprintln(os.Stderr, "missing signing secret: pass -secret or set JWT_SECRET")
		os.Exit(2)
	}

	u := domain.User{ID: domain.UserID(*userID), Email: *email}
	tok, err := sessiontoken.Mint(u, *secret, *ttl)
	if err != nil {
		fmt.Fprintf(os.Stderr, "mint token: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(tok)
}
