package config

import _ "embed"

// Default configs ship inside the binary so the tool works out of the box for
// the course it was written for; --rubric / --config override them per run.

//go:embed defaults/rubric.yaml
var defaultRubricYAML []byte

//go:embed defaults/final_grades.yaml
var defaultFinalGradesYAML []byte
