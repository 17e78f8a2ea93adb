package testpattern

import "fmt"

// Property names understood by the boundary adapter. Hosts that address
// parameters by name go through SetProperty/Property; everything else uses
// the typed accessors directly.
const (
	PropertyBackgroundColor = "background-color"
	PropertyForegroundColor = "foreground-color"
	PropertySize            = "size"
	PropertySpeed           = "speed"
)

func (src *Source) SetProperty(name string, value uint32) error {
	switch name {
	case PropertyBackgroundColor:
		src.SetBackgroundColor(value)
	case PropertyForegroundColor:
		src.SetForegroundColor(value)
	case PropertySize:
		src.SetBarSize(value)
	case PropertySpeed:
		src.SetSpeed(value)
	default:
		return fmt.Errorf("testpattern: unknown property %q", name)
	}
	return nil
}

func (src *Source) Property(name string) (uint32, error) {
	switch name {
	case PropertyBackgroundColor:
		return src.BackgroundColor(), nil
	case PropertyForegroundColor:
		return src.ForegroundColor(), nil
	case PropertySize:
		return src.BarSize(), nil
	case PropertySpeed:
		return src.Speed(), nil
	default:
		return 0, fmt.Errorf("testpattern: unknown property %q", name)
	}
}
