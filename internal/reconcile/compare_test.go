package reconcile

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSideBySide(t *testing.T) {
	got := SideBySide(
		[]string{"Alice", "Bob"},
		[]string{"Alice", "Carol", "Dave"},
		"Expected", "Found",
	)
	want := "Expected  Found\n" +
		"--------  -----\n" +
		"   Alice  Alice\n" +
		"     Bob  Carol\n" +
		"          Dave"
	assert.Equal(t, want, got)
}

func TestSideBySide_WideLeftColumn(t *testing.T) {
	got := SideBySide(
		[]string{"Anteater, Annabelle"},
		[]string{"Ant, Adam"},
		"Expected", "Found",
	)
	want := "           Expected  Found\n" +
		"           --------  -----\n" +
		"Anteater, Annabelle  Ant, Adam"
	assert.Equal(t, want, got)
}

func TestSideBySide_Empty(t *testing.T) {
	got := SideBySide(nil, nil, "A", "B")
	assert.Equal(t, "A  B\n-  -", got)
}
