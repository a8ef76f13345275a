// Package main provides the entry point for the application with CLI commands.
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/allisson/notes/cmd/app/commands"
	"github.com/allisson/notes/internal/app"
	"github.com/allisson/notes/internal/config"
)

const version = "1.0.0"

func main() {
	cmd := &cli.Command{
		Name:    "notes",
		Usage:   "Multi-tenant notes and labels API",
		Version: version,
		Commands: []*cli.Command{
			{
				Name:  "server",
				Usage: "Start the HTTP server",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return commands.RunServer(ctx, version)
				},
			},
			{
				Name:  "migrate",
				Usage: "Run database migrations",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					cfg := config.Load()
					container := app.NewContainer(cfg)
					return commands.RunMigrations(container.Logger(), cfg.DBDriver, cfg.DBConnectionString)
				},
			},
			{
				Name:  "set-user-role",
				Usage: "Change the role of an existing user",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "email",
						Aliases:  []string{"e"},
						Required: true,
						Usage:    "Email address of the user",
					},
					&cli.StringFlag{
						Name:     "role",
						Aliases:  []string{"r"},
						Required: true,
						Usage:    "New role: 'admin' or 'user'",
					},
					&cli.StringFlag{
						Name:    "format",
						Aliases: []string{"f"},
						Value:   "text",
						Usage:   "Output format: 'text' or 'json'",
					},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					cfg := config.Load()
					container := app.NewContainer(cfg)
					logger := container.Logger()
					defer commands.CloseContainer(container, logger)

					userRepo, err := container.UserRepository()
					if err != nil {
						return err
					}

					return commands.RunSetUserRole(
						ctx,
						userRepo,
						logger,
						cmd.String("email"),
						cmd.String("role"),
						cmd.String("format"),
						commands.DefaultIO(),
					)
				},
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		slog.Error("application error", slog.Any("error", err))
		os.Exit(1)
	}
}
