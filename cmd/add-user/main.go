// Command add-user creates an account directly in the store. It is the way
// to bootstrap the first ADMIN, since self-registration only yields agents.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"ngo-backoffice/internal/adapter/repository/gormstore"
	"ngo-backoffice/internal/config"
	"ngo-backoffice/internal/domain/access"
	"ngo-backoffice/internal/domain/user"
	"ngo-backoffice/internal/infrastructure/db"
	"ngo-backoffice/internal/usecase/auth"
)

func main() {
	_ = godotenv.Load()

	name := flag.String("name", "", "display name")
	email := flag.String("email", "", "login email")
	password := flag.String("password", "", "password (at least 6 characters)")
	role := flag.String("role", string(user.RoleAdmin), "ADMIN, AGENT, FINANCE or DONOR")
	migrate := flag.Bool("migrate", true, "run schema migration first")
	flag.Parse()

	if *name == "" || *email == "" || *password == "" {
		flag.Usage()
		os.Exit(2)
	}

	cfg := config.Load()
	gdb, err := db.Open(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "connect database: %v\n", err)
		os.Exit(1)
	}
	if *migrate {
		if err := db.Migrate(gdb); err != nil {
			fmt.Fprintf(os.Stderr, "migrate: %v\n", err)
			os.Exit(1)
		}
	}

	// the CLI runs with operator rights, so any role may be assigned
	operator := &access.Principal{Role: user.RoleAdmin}
	uc := auth.NewUsecase(gormstore.NewUserRepository(gdb), cfg.JWTSecret, cfg.JWTTTL)
	u, err := uc.Register(context.Background(), auth.RegisterInput{
		Name:     *name,
		Email:    *email,
		Password: *password,
		Role:     user.Role(strings.ToUpper(*role)),
	}, operator)
	if err != nil {
		fmt.Fprintf(os.Stderr, "create user: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("user created: #%d %s <%s> %s\n", u.ID, u.Name, u.Email, u.Role)
}
