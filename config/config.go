// Package config defines DriverConfig, the settings surface shared by
// cmd/graphwalker's flags and its optional --config YAML file (an ambient
// addition beyond spec.md's driver CLI surface), validated with
// go-playground/validator the way ahrav/go-gavel and purpleidea/mgmt
// validate their own config structs.
package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// DriverConfig is the full configuration surface for a graphwalker run,
// grounded on spec.md §6's "Driver CLI surface". Flags parsed by
// cmd/graphwalker override values loaded from a --config file.
type DriverConfig struct {
	// Graphs lists one or more graph model file paths, combined in order.
	Graphs []string `yaml:"graphs" validate:"required,min=1"`

	// Actor is the dotted spec string (module.Class:a,b,kw=val) resolving
	// to the actor driving steps; empty means the silent stub actor.
	Actor string `yaml:"actor"`

	// Planners are spec strings resolved against plan.Registry and chained
	// into a MasterPlan; empty means a single default Random planner.
	Planners []string `yaml:"planners"`

	// StopCond is a spec string resolved against halt.Registry; empty
	// means the default Coverage condition.
	StopCond string `yaml:"stopcond"`

	// Reporters are spec strings for reporter plugins; cmd/graphwalker
	// currently resolves only "console" (reporter/console.Reporter).
	Reporters []string `yaml:"reporters"`

	SuiteName string `yaml:"suite_name"`
	TestName  string `yaml:"test_name"`

	Debug        bool   `yaml:"debug"`
	DebuggerSpec string `yaml:"debugger"`

	DryRun bool `yaml:"dry_run"`

	// MetricsAddr, if non-empty, starts a promhttp.Handler listener at
	// this address (ambient addition; SPEC_FULL.md METRICS section).
	MetricsAddr string `yaml:"metrics_addr" validate:"omitempty,hostname_port"`
}

var validate = validator.New()

// Load reads a DriverConfig from a YAML file at path. It does not validate
// the result; Validate does that.
func Load(path string) (*DriverConfig, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	var cfg DriverConfig
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	return &cfg, nil
}

// Validate runs struct-tag validation over cfg. Called after flags have
// been merged in, so validation sees the final, merged configuration.
func Validate(cfg *DriverConfig) error {
	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// Merge overlays non-zero fields from flagCfg onto base (loaded from
// --config), so CLI flags always win over file values. Called with base
// possibly nil when no --config was given.
func Merge(base, flagCfg *DriverConfig) *DriverConfig {
	if base == nil {
		return flagCfg
	}
	out := *base

	if len(flagCfg.Graphs) > 0 {
		out.Graphs = flagCfg.Graphs
	}
	if flagCfg.Actor != "" {
		out.Actor = flagCfg.Actor
	}
	if len(flagCfg.Planners) > 0 {
		out.Planners = flagCfg.Planners
	}
	if flagCfg.StopCond != "" {
		out.StopCond = flagCfg.StopCond
	}
	if len(flagCfg.Reporters) > 0 {
		out.Reporters = flagCfg.Reporters
	}
	if flagCfg.SuiteName != "" {
		out.SuiteName = flagCfg.SuiteName
	}
	if flagCfg.TestName != "" {
		out.TestName = flagCfg.TestName
	}
	if flagCfg.Debug {
		out.Debug = true
	}
	if flagCfg.DebuggerSpec != "" {
		out.DebuggerSpec = flagCfg.DebuggerSpec
	}
	if flagCfg.DryRun {
		out.DryRun = true
	}
	if flagCfg.MetricsAddr != "" {
		out.MetricsAddr = flagCfg.MetricsAddr
	}

	return &out
}
