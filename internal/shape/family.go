package shape

import (
	"fmt"
	"math/rand/v2"
	"sort"
	"strings"
)

// Family identifies a parametrised shape algorithm.
type Family int

const (
	Star Family = iota
	Polygon
	Spiral
	Cross
	WaveCircle
	Diamond
	Zigzag
	Calligraphic
	Radical
	Flowing
	Glyph
	Logographic
	Pictographic
)

// familyFunc draws its own parameters from rng and returns the points of one
// shape plus whether the outline is closed.
type familyFunc func(rng *rand.Rand, c Canvas) ([]Point, bool)

type familyEntry struct {
	name string
	set  string
	fn   familyFunc
}

// Family sets
const (
	SetGeometric = "geometric"
	SetScript    = "script"
)

var registry = map[Family]familyEntry{
	Star:         {"star", SetGeometric, genStar},
	Polygon:      {"polygon", SetGeometric, genPolygon},
	Spiral:       {"spiral", SetGeometric, genSpiral},
	Cross:        {"cross", SetGeometric, genCross},
	WaveCircle:   {"wave-circle", SetGeometric, genWaveCircle},
	Diamond:      {"diamond", SetGeometric, genDiamond},
	Zigzag:       {"zigzag", SetGeometric, genZigzag},
	Calligraphic: {"calligraphic", SetScript, genCalligraphic},
	Radical:      {"radical", SetScript, genRadical},
	Flowing:      {"flowing", SetScript, genFlowing},
	Glyph:        {"glyph", SetScript, genGlyph},
	Logographic:  {"logographic", SetScript, genLogographic},
	Pictographic: {"pictographic", SetScript, genPictographic},
}

func (f Family) String() string {
	if e, ok := registry[f]; ok {
		return e.name
	}
	return fmt.Sprintf("Family(%d)", int(f))
}

// Set returns the family set the family belongs to.
func (f Family) Set() string {
	return registry[f].set
}

// Families returns every registered family in tag order.
func Families() []Family {
	out := make([]Family, 0, len(registry))
	for f := range registry {
		out = append(out, f)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// FamiliesInSet returns the registered families of one set in tag order.
func FamiliesInSet(set string) []Family {
	var out []Family
	for _, f := range Families() {
		if registry[f].set == set {
			out = append(out, f)
		}
	}
	return out
}

// ParseFamily looks a family up by name.
func ParseFamily(name string) (Family, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for f, e := range registry {
		if e.name == name {
			return f, nil
		}
	}
	return 0, fmt.Errorf("unknown shape family %q", name)
}

// ParseFamilies parses a family selection: "all", a set name, or a comma
// separated list of family names and set names.
func ParseFamilies(spec string) ([]Family, error) {
	spec = strings.TrimSpace(spec)
	if spec == "" || strings.EqualFold(spec, "all") {
		return Families(), nil
	}

	seen := make(map[Family]bool)
	var out []Family
	add := func(f Family) {
		if !seen[f] {
			seen[f] = true
			out = append(out, f)
		}
	}

	for _, part := range strings.Split(spec, ",") {
		part = strings.ToLower(strings.TrimSpace(part))
		switch part {
		case "":
			continue
		case "all":
			for _, f := range Families() {
				add(f)
			}
		case SetGeometric, SetScript:
			for _, f := range FamiliesInSet(part) {
				add(f)
			}
		default:
			f, err := ParseFamily(part)
			if err != nil {
				return nil, err
			}
			add(f)
		}
	}

	if len(out) == 0 {
		return nil, fmt.Errorf("no shape families selected by %q", spec)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out, nil
}
