package orion

import (
	"fmt"
	"math"

	"github.com/oliverbestmann/texquad/glimpse"
	"github.com/oliverbestmann/texquad/scene"
)

// Slider edits one value of the scene settings by reference.
type Slider struct {
	Name string

	Value    *float32
	Min, Max float32

	// change per key press, multiplied by ten while shift is held
	Step float32
}

func (s *Slider) adjust(direction float32, fast bool) {
	step := s.Step
	if fast {
		step *= 10
	}

	*s.Value = min(max(*s.Value+direction*step, s.Min), s.Max)
}

// DebugUI is a keyboard driven panel to edit the scene settings.
type DebugUI struct {
	Title   string
	Visible bool

	Sliders  []Slider
	Selected int
}

func NewDebugUI(variant scene.Variant, settings *scene.Settings) *DebugUI {
	var sliders []Slider

	if variant == scene.VariantColored {
		sliders = []Slider{
			{Name: "scale", Value: &settings.Scale, Min: 0, Max: 1, Step: 0.01},
			{Name: "dist", Value: &settings.Distance, Min: -10, Max: 10, Step: 0.1},
		}
	} else {
		sliders = []Slider{
			{Name: "scale", Value: &settings.Scale, Min: 0, Max: 2 * math.Pi, Step: 0.05},
			{Name: "rotation", Value: &settings.Rotation, Min: 0, Max: 10, Step: 0.1},
		}
	}

	sliders = append(sliders,
		Slider{Name: "clear r", Value: &settings.ClearColor[0], Min: 0, Max: 1, Step: 0.01},
		Slider{Name: "clear g", Value: &settings.ClearColor[1], Min: 0, Max: 1, Step: 0.01},
		Slider{Name: "clear b", Value: &settings.ClearColor[2], Min: 0, Max: 1, Step: 0.01},
	)

	return &DebugUI{
		Title:   "Hello, world!",
		Visible: true,
		Sliders: sliders,
	}
}

// HandleInput applies the key presses of one frame. It returns true
// if the user asked to quit.
func (d *DebugUI) HandleInput(keys glimpse.KeysState) (quit bool) {
	if keys.IsJustPressed(glimpse.KeyEscape) {
		return true
	}

	if keys.IsJustPressed(glimpse.KeyF1) {
		d.Visible = !d.Visible
	}

	if !d.Visible || len(d.Sliders) == 0 {
		return false
	}

	count := len(d.Sliders)

	if keys.IsJustPressed(glimpse.KeyDown) {
		d.Selected = (d.Selected + 1) % count
	}

	if keys.IsJustPressed(glimpse.KeyUp) {
		d.Selected = (d.Selected + count - 1) % count
	}

	fast := keys.IsShiftPressed()
	slider := &d.Sliders[d.Selected]

	if keys.IsJustPressed(glimpse.KeyRight) {
		slider.adjust(1, fast)
	}

	if keys.IsJustPressed(glimpse.KeyLeft) {
		slider.adjust(-1, fast)
	}

	return false
}

// Lines renders the panel as text.
func (d *DebugUI) Lines(times *FrameTimes) []string {
	lines := []string{d.Title, ""}

	for idx, slider := range d.Sliders {
		marker := " "
		if idx == d.Selected {
			marker = ">"
		}

		lines = append(lines, fmt.Sprintf("%s %-9s %7.3f  [%g, %g]", marker, slider.Name, *slider.Value, slider.Min, slider.Max))
	}

	lines = append(lines,
		"",
		fmt.Sprintf("Application average %.3f ms/frame (%.1f FPS)", times.AverageMillis(), times.FPS()),
		"Up/Down select, Left/Right adjust, Shift faster",
		"F1 toggle panel, Esc quit",
	)

	return lines
}
