// Package playground seeds the playground with initial Marketplace data.
//
// This file loads the seed document, either the embedded configs/seed.json
// or a file named by the seeding config, into a State. The seed uses the
// StateExport format, so a file saved by persistence can seed another
// playground.
package playground

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
)

// SeedAccountID is the buyer account of the embedded seed data.
const SeedAccountID = 12345678

// NewSeededState returns a state holding the seed data selected by config.
func NewSeededState(config *PlaygroundConfig) (*State, error) {
	state := NewState()
	seeding := config.GetSeedingConfig()
	if seeding.Disabled {
		return state, nil
	}
	if err := seedState(state, seeding.File); err != nil {
		return nil, err
	}
	return state, nil
}

// seedState imports the seed at path, or the embedded seed when path is
// empty, into state.
func seedState(state *State, path string) error {
	var (
		data []byte
		err  error
	)
	if path == "" {
		data, err = embeddedConfigs.ReadFile("configs/seed.json")
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return fmt.Errorf("failed to read seed data: %w", err)
	}

	var export StateExport
	if err := json.Unmarshal(data, &export); err != nil {
		return fmt.Errorf("failed to parse seed data: %w", err)
	}
	if err := state.Import(&export); err != nil {
		return fmt.Errorf("failed to import seed data: %w", err)
	}

	counts := state.Counts()
	logger.WithFields(logrus.Fields{
		"clients":          counts["clients"],
		"proposals":        counts["proposals"],
		"finalized_deals":  counts["finalized_deals"],
		"auction_packages": counts["auction_packages"],
	}).Debug("seeded playground state")
	return nil
}
