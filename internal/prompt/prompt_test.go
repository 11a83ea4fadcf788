package prompt

import (
	"bytes"
	"errors"
	"io"
	"log"
	"os"
	"strings"
	"testing"

	"github.com/iburimskiy/wormhole-visualization/internal/geometry"
)

var defaults = geometry.ShapeParameters{
	ThroatRadius:      50,
	HeightScale:       1.5,
	RingCount:         150,
	AngularResolution: 80,
}

type scripted struct {
	answers []string
	err     error
	labels  []string
}

func (s *scripted) Ask(label, def string) (string, error) {
	s.labels = append(s.labels, label)
	if s.err != nil {
		return "", s.err
	}
	if len(s.answers) == 0 {
		return "", nil
	}
	a := s.answers[0]
	s.answers = s.answers[1:]
	return a, nil
}

func TestMain(m *testing.M) {
	log.SetOutput(io.Discard)
	os.Exit(m.Run())
}

func TestCollect(t *testing.T) {
	tests := []struct {
		name    string
		answers []string
		want    geometry.ShapeParameters
	}{
		{
			name:    "all defaults",
			answers: []string{"", "", "", ""},
			want:    defaults,
		},
		{
			name:    "all custom",
			answers: []string{"30", "2.25", "40", "12"},
			want:    geometry.ShapeParameters{ThroatRadius: 30, HeightScale: 2.25, RingCount: 40, AngularResolution: 12},
		},
		{
			name:    "garbage falls back",
			answers: []string{"wide", "1,5", "many", "3.5"},
			want:    defaults,
		},
		{
			name:    "out of range falls back",
			answers: []string{"-4", "0", "0", "2"},
			want:    defaults,
		},
		{
			name:    "whitespace trimmed",
			answers: []string{" 60 ", "\t1.5", "10 ", " 3"},
			want:    geometry.ShapeParameters{ThroatRadius: 60, HeightScale: 1.5, RingCount: 10, AngularResolution: 3},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &scripted{answers: tt.answers}
			got := Collect(p, defaults)
			if got != tt.want {
				t.Errorf("Collect() = %+v, want %+v", got, tt.want)
			}
			if len(p.labels) != 4 {
				t.Errorf("Expected 4 questions, got %d", len(p.labels))
			}
			if err := got.Validate(); err != nil {
				t.Errorf("Collected parameters invalid: %v", err)
			}
		})
	}
}

func TestCollectPrompterError(t *testing.T) {
	got := Collect(&scripted{err: errors.New("no display")}, defaults)
	if got != defaults {
		t.Errorf("Expected defaults on prompter error, got %+v", got)
	}
}

func TestConsole(t *testing.T) {
	var out bytes.Buffer
	c := NewConsole(strings.NewReader("42\n\n7\n"), &out)

	got := Collect(c, defaults)
	want := geometry.ShapeParameters{ThroatRadius: 42, HeightScale: 1.5, RingCount: 7, AngularResolution: 80}
	if got != want {
		t.Errorf("Collect() = %+v, want %+v", got, want)
	}

	transcript := out.String()
	for _, line := range []string{
		"Throat radius (default=50): ",
		"Bridge height scale (default=1.5): ",
		"Number of cross-section slices (default=150): ",
		"Points per ring (angular resolution) (default=80): ",
	} {
		if !strings.Contains(transcript, line) {
			t.Errorf("Prompt %q missing from %q", line, transcript)
		}
	}
}
