package main

import (
	"os"

	"github.com/rhyrak/go-seating/internal/config"
	"github.com/rhyrak/go-seating/internal/logger"
	"github.com/rhyrak/go-seating/internal/rosterio"
	"github.com/rhyrak/go-seating/internal/seating"
	"github.com/rhyrak/go-seating/pkg/model"
)

// Program parameters. Adjust to the classroom layout.
var cfg = &seating.Configuration{
	RosterFile: "logic.txt",
	ExportFile: "", // e.g. "seating.csv"
	Rows:       7,
	Cols:       9,
	Blocked:    []model.Seat{
		// {Row: 1, Col: 1},
	},
	Seed: nil, // nil reshuffles on every run
}

func main() {
	env := config.Load()
	log := logger.Setup(env.LogLevel, env.LogFormat, os.Stderr)

	students, demo, err := rosterio.LoadOrDemo(cfg.RosterFile)
	if err != nil {
		log.Fatal().Err(err).Str("roster", cfg.RosterFile).Msg("Failed to load roster")
	}
	if demo {
		log.Info().Str("roster", cfg.RosterFile).Msg("Roster file not found, using demo roster")
	}
	log.Debug().Int("students", len(students)).Int("seats", cfg.Capacity()).Msg("Roster loaded")

	assignments, err := seating.Assign(students, cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to assign seats")
	}

	if valid, msg := seating.Validate(assignments, cfg); !valid {
		log.Error().Str("report", msg).Msg("Invalid seating plan")
	}

	if err := rosterio.PrintAssignments(os.Stdout, assignments, cfg.Rows, cfg.Cols); err != nil {
		log.Fatal().Err(err).Msg("Failed to print seating plan")
	}

	if cfg.ExportFile != "" {
		outPath, err := rosterio.ExportAssignments(assignments, cfg.ExportFile)
		if err != nil {
			log.Fatal().Err(err).Str("path", cfg.ExportFile).Msg("Failed to export seating plan")
		}
		log.Info().Str("path", outPath).Msg("Exported seating plan")
	}
}
