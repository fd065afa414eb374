// Command token mints an admin JWT for the prompt administration endpoints.
//
//	JWT_SECRET=... go run ./cmd/token -sub operator
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/artem13815/ragguard/pkg/config"
	"github.com/artem13815/ragguard/pkg/security/jwt"
)

func main() {
	sub := flag.String("sub", "operator", "token subject")
	admin := flag.Bool("admin", true, "set the admin claim")
	ttl := flag.Duration("ttl", 0, "token lifetime (defaults to JWT_TTL_MINUTES)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}
	if cfg.JWTSecret == "" {
		fmt.Fprintln(os.Stderr, "JWT_SECRET is empty")
		os.Exit(1)
	}
	lifetime := *ttl
	if lifetime <= 0 {
		lifetime = time.Duration(cfg.JWTTTLMinutes) * time.Minute
	}

	token, err := jwt.NewGenerator(cfg.JWTSecret, cfg.JWTIssuer, lifetime).Generate(*sub, *admin)
	if err != nil {
		fmt.Fprintf(os.Stderr, "sign token: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(token)
}
