// Package prompt asks for the shape parameters once at startup.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log"
	"strconv"
	"strings"

	"github.com/ncruces/zenity"

	"github.com/iburimskiy/wormhole-visualization/internal/geometry"
)

// Prompter returns the raw answer to one question. An empty answer means
// "use the default".
type Prompter interface {
	Ask(label, def string) (string, error)
}

// Dialog asks through native dialogs.
type Dialog struct {
	Title string
}

func (d Dialog) Ask(label, def string) (string, error) {
	answer, err := zenity.Entry(label,
		zenity.Title(d.Title),
		zenity.EntryText(def),
	)
	if errors.Is(err, zenity.ErrCanceled) {
		return "", nil
	}
	return answer, err
}

// Console asks on a text stream, one line per answer.
type Console struct {
	out io.Writer
	in  *bufio.Scanner
}

func NewConsole(in io.Reader, out io.Writer) *Console {
	return &Console{out: out, in: bufio.NewScanner(in)}
}

func (c *Console) Ask(label, def string) (string, error) {
	if _, err := fmt.Fprintf(c.out, "%s (default=%s): ", label, def); err != nil {
		return "", err
	}
	if !c.in.Scan() {
		if err := c.in.Err(); err != nil {
			return "", err
		}
		return "", nil
	}
	return c.in.Text(), nil
}

// Collect asks the four shape questions. Bad answers fall back to the
// matching field of defaults; Collect never fails.
func Collect(p Prompter, defaults geometry.ShapeParameters) geometry.ShapeParameters {
	return geometry.ShapeParameters{
		ThroatRadius:      askFloat(p, "Throat radius", defaults.ThroatRadius),
		HeightScale:       askFloat(p, "Bridge height scale", defaults.HeightScale),
		RingCount:         askInt(p, "Number of cross-section slices", defaults.RingCount, 1),
		AngularResolution: askInt(p, "Points per ring (angular resolution)", defaults.AngularResolution, 3),
	}
}

func askFloat(p Prompter, label string, def float64) float64 {
	defText := strconv.FormatFloat(def, 'g', -1, 64)
	answer, ok := ask(p, label, defText)
	if !ok {
		return def
	}
	v, err := strconv.ParseFloat(answer, 64)
	if err != nil || !(v > 0) || v > 1e6 {
		log.Printf("Invalid input. Using default: %s", defText)
		return def
	}
	return v
}

func askInt(p Prompter, label string, def, minimum int) int {
	defText := strconv.Itoa(def)
	answer, ok := ask(p, label, defText)
	if !ok {
		return def
	}
	v, err := strconv.Atoi(answer)
	if err != nil || v < minimum {
		log.Printf("Invalid input. Using default: %s", defText)
		return def
	}
	return v
}

func ask(p Prompter, label, def string) (string, bool) {
	answer, err := p.Ask(label, def)
	if err != nil {
		log.Printf("%s: %v. Using default: %s", label, err, def)
		return "", false
	}
	answer = strings.TrimSpace(answer)
	return answer, answer != ""
}
