package assets

import "fmt"

// Profile defines the icon sizes generated for a target surface.
type Profile struct {
	Name   string
	BasePx int   // pixel size of the 1x variant
	Retina bool  // also emit a @2x variant
	Extra  []int // additional flat sizes, named IconTemplate-<px>.png
}

// Built-in profiles.  "menubar" matches what macOS expects in the status
// bar: a 16px template plus its @2x companion.
var profiles = map[string]Profile{
	"menubar": {
		Name:   "menubar",
		BasePx: 16,
		Retina: true,
	},
	"menubar-large": {
		Name:   "menubar-large",
		BasePx: 18,
		Retina: true,
	},
	"appiconset": {
		Name:   "appiconset",
		BasePx: 16,
		Extra:  []int{32, 64, 128},
	},
}

// Get returns a profile by name.  Falls back to menubar if unknown.
func Get(name string) Profile {
	if p, ok := profiles[name]; ok {
		return p
	}
	p := profiles["menubar"]
	p.Name = name // preserve requested name
	return p
}

// Output names one variant file and its pixel size.
type Output struct {
	Name string
	Px   int
}

// Outputs lists every variant the profile produces.  The base variant is
// always IconTemplate.png; the "Template" suffix is what tells macOS to
// apply theme tinting.
func (p Profile) Outputs() []Output {
	outs := []Output{{Name: "IconTemplate.png", Px: p.BasePx}}
	if p.Retina {
		outs = append(outs, Output{Name: "IconTemplate@2x.png", Px: p.BasePx * 2})
	}
	for _, px := range p.Extra {
		outs = append(outs, Output{Name: fmt.Sprintf("IconTemplate-%d.png", px), Px: px})
	}
	return outs
}
