package main

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/pdelaplana/marvin/config"
	"github.com/pdelaplana/marvin/domain/application"
	"github.com/pdelaplana/marvin/internal/log"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// runApplicationCommand handles the out-of-band tenant provisioning commands.
// Applications are never created through the public signup surface.
func runApplicationCommand(logger *log.Logger, args []string) error {
	db, err := config.NewDatabase(logger, &config.DBConfig{})
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer config.CloseDatabase(db, logger)

	service := application.NewApplicationServiceFactory(db, logger).CreateService()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	switch args[0] {
	case "create-app":
		if len(args) < 2 {
			return fmt.Errorf("usage: cli create-app <name>")
		}

		name := normalizeDisplayName(strings.Join(args[1:], " "))

		app, err := service.CreateApplication(ctx, &application.CreateApplicationRequest{Name: name})
		if err != nil {
			return fmt.Errorf("create application: %w", err)
		}

		fmt.Printf("Application created\n  id:     %s\n  name:   %s\n  active: %t\n", app.ID, app.Name, app.Active)
		return nil

	case "list-apps":
		apps, err := service.GetAllApplications(ctx)
		if err != nil {
			return fmt.Errorf("list applications: %w", err)
		}

		if len(apps) == 0 {
			fmt.Println("No applications provisioned yet")
			return nil
		}

		for _, app := range apps {
			fmt.Printf("%s  active=%-5t  %s\n", app.ID, app.Active, app.Name)
		}
		return nil

	case "set-active":
		if len(args) != 3 {
			return fmt.Errorf("usage: cli set-active <id> <true|false>")
		}

		active, err := strconv.ParseBool(args[2])
		if err != nil {
			return fmt.Errorf("invalid active flag %q: %w", args[2], err)
		}

		if err := service.SetActive(ctx, strings.TrimSpace(args[1]), active); err != nil {
			return fmt.Errorf("set active: %w", err)
		}

		fmt.Printf("Application %s active=%t\n", args[1], active)
		return nil
	}

	return fmt.Errorf("unknown application command: %s", args[0])
}

// normalizeDisplayName collapses whitespace and title-cases the name so CLI
// input like "marvin   landing page" stores as "Marvin Landing Page".
func normalizeDisplayName(raw string) string {
	titleCaser := cases.Title(language.English)
	return titleCaser.String(strings.Join(strings.Fields(raw), " "))
}
