// Seed command for inspecting the generated demo data set.
//
// It prints every collection as indented JSON. A fixed --seed reproduces the same data
// the server generates with the same ACADEMY_MOCK_SEED.
//
// Usage:
//
//	go run ./cmd/seed --seed 42 --filler 15 --reference 2024-09-06
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"sport-academy/internal/config"
	"sport-academy/internal/mockdata"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if err := run(cfg, os.Args[1:], os.Stdout); err != nil {
		log.Fatal(err)
	}
}

// run applies the flags on top of cfg and writes the generated data set to out.
func run(cfg *config.Config, args []string, out io.Writer) error {
	fs := flag.NewFlagSet("seed", flag.ContinueOnError)
	seed := fs.Int64("seed", cfg.MockSeed, "Random seed (0 draws one from the clock)")
	filler := fs.Int("filler", cfg.FillerStudents, "Number of generated filler students")
	reference := fs.String("reference", cfg.ReferenceDate, "Reference date YYYY-MM-DD (empty = today)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg.MockSeed = *seed
	cfg.FillerStudents = *filler
	cfg.ReferenceDate = *reference
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid flags: %w", err)
	}

	gen := mockdata.New(cfg.MockSeed, cfg.Reference())
	gen.FillerStudents = cfg.FillerStudents

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(gen.Generate()); err != nil {
		return fmt.Errorf("encode data set: %w", err)
	}
	return nil
}
