package ui

import (
	"slices"
	"testing"

	"falling-sand/internal/core"
)

func TestLines(t *testing.T) {
	snap := core.ParameterSnapshot{Groups: []core.ParameterGroup{{
		Name:   "World",
		Params: []core.Parameter{{Key: "w", Label: "Width", Value: "30"}},
	}}}
	got := Lines(Status{Brush: "water", Radius: 2, Paused: true}, snap)
	want := []string{
		"Brush: water (r=2)",
		"State: paused",
		"",
		"World",
		"  Width: 30",
	}
	if !slices.Equal(got, want) {
		t.Fatalf("Lines = %q, want %q", got, want)
	}

	got = Lines(Status{Brush: "sand"}, core.ParameterSnapshot{})
	if len(got) != 2 || got[1] != "State: running" {
		t.Fatalf("Lines without params = %q", got)
	}
}
