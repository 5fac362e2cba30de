package theme

import (
	"errors"
	"fmt"

	colorful "github.com/lucasb-eyer/go-colorful"
)

type Name string

const (
	Quantum Name = "quantum"
	Neon    Name = "neon"
	Cyber   Name = "cyber"
)

// Names lists the selectable themes in button order.
var Names = []Name{Quantum, Neon, Cyber}

var ErrUnknown = errors.New("unknown theme")

// Palette is the color pair applied to the scene.
type Palette struct {
	Core colorful.Color
	Fog  colorful.Color
}

var palettes = map[Name]Palette{
	Quantum: {Core: mustHex("#00aaff"), Fog: mustHex("#000022")},
	Neon:    {Core: mustHex("#ff0066"), Fog: mustHex("#220011")},
	Cyber:   {Core: mustHex("#00ff88"), Fog: mustHex("#002211")},
}

// Neural is the palette forced while neural mode is on.
var Neural = Palette{Core: mustHex("#9933ff"), Fog: mustHex("#110033")}

// Lookup returns the palette for name.
func Lookup(name Name) (Palette, error) {
	p, ok := palettes[name]
	if !ok {
		return Palette{}, fmt.Errorf("%w: %q", ErrUnknown, name)
	}
	return p, nil
}

// Parse validates a theme identifier.
func Parse(s string) (Name, error) {
	name := Name(s)
	if _, ok := palettes[name]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknown, s)
	}
	return name, nil
}

// ButtonStyle is the look of the neural mode button.
type ButtonStyle struct {
	Label     string
	From, To  colorful.Color
	HoverFrom colorful.Color
	HoverTo   colorful.Color
	PanelTint colorful.Color
}

var (
	normalButton = ButtonStyle{
		Label:     "ACTIVATE NEURAL MODE",
		From:      mustHex("#9333ea"),
		To:        mustHex("#0891b2"),
		HoverFrom: mustHex("#7e22ce"),
		HoverTo:   mustHex("#0e7490"),
		PanelTint: mustHex("#0a1a33"),
	}
	neuralButton = ButtonStyle{
		Label:     "DEACTIVATE NEURAL MODE",
		From:      mustHex("#6b21a8"),
		To:        mustHex("#3730a3"),
		HoverFrom: mustHex("#581c87"),
		HoverTo:   mustHex("#312e81"),
		PanelTint: mustHex("#1e0a33"),
	}
)

// Button returns the neural button presentation for the given mode.
func Button(neural bool) ButtonStyle {
	if neural {
		return neuralButton
	}
	return normalButton
}

func mustHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(err)
	}
	return c
}
