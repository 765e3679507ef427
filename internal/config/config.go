// Package config holds the engine's package-level mode flags and the
// on-disk settings that select between spec.md §9's two open-question
// resolutions. The mode-flag pattern (package vars flipped once at
// startup) mirrors config.IsTestMode/config.IsLSPMode in the teacher;
// Settings and its YAML loader mirror the teacher's funxy.yaml reader.
package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Version is this module's version, reported by `henk version`.
var Version = "0.1.0"

// IsTestMode indicates the program is running under `go test`. Set once at
// init time; gates colorized/interactive CLI output the same way the
// teacher's config.IsTestMode gates LSP-vs-CLI rendering differences.
var IsTestMode = false

// Rule selects between the principled and reference resolutions of an open
// question in spec.md §9.
type Rule string

const (
	// RulePrincipled is spec.md §9's recommended resolution.
	RulePrincipled Rule = "principled"
	// RuleReference is spec.md's documented non-standard reference
	// behavior, kept as an explicit opt-in rather than discarded.
	RuleReference Rule = "reference"
)

// Settings is the engine's user-configurable behavior, loaded from an
// optional YAML file.
type Settings struct {
	// PiRule selects how type_of(Pi x τ cod) is computed: RulePrincipled
	// returns Universe(max(i,j)) when τ and cod synthesize universes
	// i and j; RuleReference returns the Pi term itself.
	PiRule Rule `yaml:"pi_rule"`

	// LamDomainCheck selects how strictly a Lam's domain is checked:
	// RulePrincipled additionally requires the domain's synthesized type
	// to reduce to a Universe; RuleReference only requires the domain to
	// synthesize some type.
	LamDomainCheck Rule `yaml:"lam_domain_check"`

	// MaxReductionSteps bounds the β-step count of cmd/henk's -reduce
	// normalization (reduce.NFBounded); 0 means unbounded, the behavior
	// spec.md §4.3 describes. Type synthesis's own β-equivalence checks
	// use reduce.NF and are not bounded by it.
	MaxReductionSteps int `yaml:"max_reduction_steps"`

	// HistoryPath is the sqlite file internal/history appends invocation
	// records to. Empty disables history recording.
	HistoryPath string `yaml:"history_path"`
}

// Default returns the engine's default settings: both open questions
// resolved the principled way, unbounded reduction, no history file.
func Default() Settings {
	return Settings{
		PiRule:         RulePrincipled,
		LamDomainCheck: RulePrincipled,
	}
}

// Load reads settings from path, falling back to Default() for any field
// the file omits. A missing file is not an error: Load(path) returns
// Default() unchanged.
func Load(path string) (Settings, error) {
	s := Default()
	if path == "" {
		return s, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return s, err
	}
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Default(), err
	}
	if s.PiRule == "" {
		s.PiRule = RulePrincipled
	}
	if s.LamDomainCheck == "" {
		s.LamDomainCheck = RulePrincipled
	}
	return s, nil
}

// DefaultPath returns the conventional location of the settings file:
// .henkrc.yaml in the current directory if present, else in $HOME.
func DefaultPath() string {
	if _, err := os.Stat(".henkrc.yaml"); err == nil {
		return ".henkrc.yaml"
	}
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, ".henkrc.yaml")
	}
	return ""
}
