// Package config holds the two YAML configuration surfaces of the tool: the
// assignment rubric consumed by the reconciliation engine, and the unit/cutoff
// configuration consumed by the final-grade calculator. Defaults for both are
// embedded in the binary and used when no override file is given.
package config

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

// Assignment declares the expected shape of one gradebook assignment: its
// regular point total, its bonus point total, and the exact names of the
// practice-platform tasks whose sub-parts roll up into it.
type Assignment struct {
	Points float64  `yaml:"points"`
	Bonus  float64  `yaml:"bonus"`
	Tasks  []string `yaml:"tasks"`
}

// Rubric maps gradebook assignment names to their declared shapes. The
// assignment name must match exactly one gradebook column as a prefix.
type Rubric struct {
	Assignments map[string]Assignment `yaml:"assignments"`
}

// GradeMinimum is one letter-grade cutoff: the lowest numeric grade that
// still earns Letter.
type GradeMinimum struct {
	Min    float64 `yaml:"min"`
	Letter string  `yaml:"letter"`
}

// FinalGrades configures the final-grade calculator: which course units are
// averaged and which letter each numeric range maps to. GradeMinimums must be
// sorted descending by Min; letter lookup relies on that order.
type FinalGrades struct {
	Units         []string       `yaml:"units"`
	GradeMinimums []GradeMinimum `yaml:"grade_minimums"`
}

// LoadRubric reads and validates a rubric file. An empty path loads the
// embedded default rubric.
func LoadRubric(path string) (Rubric, error) {
	data, err := readOrDefault(path, defaultRubricYAML)
	if err != nil {
		return Rubric{}, err
	}
	var r Rubric
	if err := yaml.Unmarshal(data, &r); err != nil {
		return Rubric{}, fmt.Errorf("parse rubric: %w", err)
	}
	if err := r.Validate(); err != nil {
		return Rubric{}, fmt.Errorf("invalid rubric: %w", err)
	}
	return r, nil
}

// LoadFinalGrades reads and validates a final-grades config file. An empty
// path loads the embedded default.
func LoadFinalGrades(path string) (FinalGrades, error) {
	data, err := readOrDefault(path, defaultFinalGradesYAML)
	if err != nil {
		return FinalGrades{}, err
	}
	var c FinalGrades
	if err := yaml.Unmarshal(data, &c); err != nil {
		return FinalGrades{}, fmt.Errorf("parse final-grades config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return FinalGrades{}, fmt.Errorf("invalid final-grades config: %w", err)
	}
	return c, nil
}

func readOrDefault(path string, def []byte) ([]byte, error) {
	if path == "" {
		return def, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	return data, nil
}

// Validate checks structural soundness of the rubric. Semantic agreement with
// the actual data (point totals, task sets) is the reconciliation engine's
// job, not the loader's.
func (r Rubric) Validate() error {
	if len(r.Assignments) == 0 {
		return fmt.Errorf("rubric declares no assignments")
	}
	// Each task may belong to exactly one assignment; the accumulator's
	// task lookup has nowhere sensible to send a shared task.
	claimed := make(map[string]string)
	for _, name := range r.AssignmentNames() {
		if name == "" {
			return fmt.Errorf("rubric contains an assignment with an empty name")
		}
		a := r.Assignments[name]
		if len(a.Tasks) == 0 {
			return fmt.Errorf("assignment %q declares no tasks", name)
		}
		if a.Points < 0 || a.Bonus < 0 {
			return fmt.Errorf("assignment %q has negative point values", name)
		}
		for _, task := range a.Tasks {
			if task == "" {
				return fmt.Errorf("assignment %q declares an empty task name", name)
			}
			if other, ok := claimed[task]; ok {
				if other == name {
					return fmt.Errorf("assignment %q lists task %q twice", name, task)
				}
				return fmt.Errorf("task %q is claimed by both %q and %q", task, other, name)
			}
			claimed[task] = name
		}
	}
	return nil
}

// AssignmentNames returns the rubric's assignment names sorted
// alphabetically, for deterministic iteration.
func (r Rubric) AssignmentNames() []string {
	names := make([]string, 0, len(r.Assignments))
	for name := range r.Assignments {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Validate checks structural soundness of the final-grades config.
func (c FinalGrades) Validate() error {
	if len(c.Units) == 0 {
		return fmt.Errorf("final-grades config declares no units")
	}
	for _, u := range c.Units {
		if u == "" {
			return fmt.Errorf("final-grades config contains an empty unit name")
		}
	}
	if len(c.GradeMinimums) == 0 {
		return fmt.Errorf("final-grades config declares no grade minimums")
	}
	for i, gm := range c.GradeMinimums {
		if gm.Letter == "" {
			return fmt.Errorf("grade minimum %d has an empty letter", i)
		}
		if i > 0 && gm.Min >= c.GradeMinimums[i-1].Min {
			return fmt.Errorf("grade minimums must be sorted descending: %q (%.4g) follows %q (%.4g)",
				gm.Letter, gm.Min, c.GradeMinimums[i-1].Letter, c.GradeMinimums[i-1].Min)
		}
	}
	return nil
}
