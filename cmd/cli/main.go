package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/rhyrak/campus-sim/internal/catalog"
	"github.com/rhyrak/campus-sim/internal/csvio"
	"github.com/rhyrak/campus-sim/internal/platform/config"
	"github.com/rhyrak/campus-sim/internal/scheduler"
)

// Program parameters
type Config struct {
	Track       string `env:"CAMPUS_TRACK" envDefault:"science"`
	CoursesFile string `env:"CAMPUS_COURSES_FILE"`
	ExportFile  string `env:"CAMPUS_PLAN_EXPORT"`
	Validate    bool   `env:"CAMPUS_VALIDATE" envDefault:"true"`
}

func parseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := config.ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	fs.StringVar(&cfg.Track, "track", cfg.Track, "Track: science, medicine, business or arts")
	fs.StringVar(&cfg.CoursesFile, "courses", cfg.CoursesFile, "Course CSV replacing the built-in catalog")
	fs.StringVar(&cfg.ExportFile, "export", cfg.ExportFile, "Write the plan as CSV to this path")
	fs.BoolVar(&cfg.Validate, "validate", cfg.Validate, "Print the plan validation report")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func main() {
	cfg, err := parseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		config.Exitf("parse flags: %v", err)
	}
	track := catalog.NormalizeTrack(cfg.Track)

	// Built-in catalog unless a course file is given
	courses, err := catalog.Load(track)
	if cfg.CoursesFile != "" {
		courses, err = csvio.LoadCoursesFile(cfg.CoursesFile, ',')
		if err == nil {
			err = catalog.Validate(courses)
		}
	}
	if err != nil {
		config.Exitf("load courses: %v", err)
	}

	fmt.Println("Loading...")
	fmt.Printf("Track: %s (%d courses)\n", track, len(courses))

	start := time.Now()
	plan := scheduler.GeneratePlan(track, courses, nil)
	elapsed := time.Since(start)

	csvio.PrintPlan(os.Stdout, plan)

	if cfg.Validate {
		valid, msg := scheduler.ValidatePlan(plan)
		if !valid {
			fmt.Println("\nInvalid plan:")
		} else {
			fmt.Println("\nPassed all tests")
		}
		fmt.Print(msg)
	}

	if cfg.ExportFile != "" {
		if err := csvio.ExportPlan(plan, cfg.ExportFile); err != nil {
			config.Exitf("export plan: %v", err)
		}
		fmt.Println("Exported output to: " + cfg.ExportFile)
	}
	fmt.Printf("Timer: %f ms\n", float64(elapsed.Nanoseconds())/1000000.0)
}
