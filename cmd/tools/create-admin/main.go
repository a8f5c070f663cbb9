// Command create-admin provisions an account directly in the database.
// There is no web route for account creation; this tool is the only way in.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/cylin-dev/guestbook/internal/config"
	"github.com/cylin-dev/guestbook/internal/jwt"
	"github.com/cylin-dev/guestbook/internal/logger"
	"github.com/cylin-dev/guestbook/internal/service"
	"github.com/cylin-dev/guestbook/internal/storage/pg"
)

func main() {
	var (
		configFolder string
		name         string
		email        string
		password     string
		admin        bool
	)
	flag.StringVar(&configFolder, "config_folder", "config", "path to folder with configs")
	flag.StringVar(&name, "name", "", "display name for the account")
	flag.StringVar(&email, "email", "", "login email (must be unique)")
	flag.StringVar(&password, "password", "", "login password")
	flag.BoolVar(&admin, "admin", true, "grant the administrator flag")
	flag.Parse()

	if name == "" || email == "" || password == "" {
		fmt.Fprintln(os.Stderr, "name, email and password are required")
		flag.Usage()
		os.Exit(2)
	}

	cfg := config.MustLoad(configFolder)
	logger.Initialize(cfg.Public.LogLevel, cfg.Public.LogJSON)

	storage, err := pg.New(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "storage: %v\n", err)
		os.Exit(1)
	}
	defer storage.Cleanup()

	auth := service.NewAuth(storage, jwt.New(cfg.JwtKey(), cfg.JwtTTL()))
	id, err := auth.CreateUser(name, email, password, admin)
	if err != nil {
		fmt.Fprintf(os.Stderr, "create user: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("created user %d (%s)\n", id, email)
}
