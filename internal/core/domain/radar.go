package domain

// Quadrant is one of the four top-level radar categories.
type Quadrant string

// Radar quadrants, in the order the structure extractor processes them.
const (
	QuadrantTechniques             Quadrant = "Techniques"
	QuadrantPlatforms              Quadrant = "Platforms"
	QuadrantTools                  Quadrant = "Tools"
	QuadrantLanguagesAndFrameworks Quadrant = "Languages and Frameworks"
)

// Quadrants returns all quadrants in processing order.
func Quadrants() []Quadrant {
	return []Quadrant{
		QuadrantTechniques,
		QuadrantPlatforms,
		QuadrantTools,
		QuadrantLanguagesAndFrameworks,
	}
}

// Label returns the quadrant heading as the PDF text extractor renders it.
// "Languages and Frameworks" wraps onto two lines in every radar volume.
func (q Quadrant) Label() string {
	if q == QuadrantLanguagesAndFrameworks {
		return "Languages and \nFrameworks"
	}
	return string(q)
}

// IsValid returns true if the quadrant is recognised.
func (q Quadrant) IsValid() bool {
	switch q {
	case QuadrantTechniques, QuadrantPlatforms, QuadrantTools, QuadrantLanguagesAndFrameworks:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (q Quadrant) String() string {
	return string(q)
}

// Ring is one of the four maturity bands within a quadrant.
type Ring string

// Radar rings, from most to least recommended.
const (
	RingAdopt  Ring = "Adopt"
	RingTrial  Ring = "Trial"
	RingAssess Ring = "Assess"
	RingHold   Ring = "Hold"
)

// Rings returns all rings in the order they appear within a quadrant.
func Rings() []Ring {
	return []Ring{RingAdopt, RingTrial, RingAssess, RingHold}
}

// IsValid returns true if the ring is recognised.
func (r Ring) IsValid() bool {
	switch r {
	case RingAdopt, RingTrial, RingAssess, RingHold:
		return true
	default:
		return false
	}
}

// Next returns the ring that follows r within a quadrant.
// Hold is last and returns false.
func (r Ring) Next() (Ring, bool) {
	switch r {
	case RingAdopt:
		return RingTrial, true
	case RingTrial:
		return RingAssess, true
	case RingAssess:
		return RingHold, true
	default:
		return "", false
	}
}

// String returns the string representation.
func (r Ring) String() string {
	return string(r)
}

// StructuralTag is the classification of a single radar entry.
type StructuralTag struct {
	Quadrant Quadrant
	Ring     Ring
}

// StructureMap maps a normalised entry key (e.g. "1. 1% canary")
// to its classification. Keys are unique within one document.
type StructureMap map[string]StructuralTag

// Lookup returns the tag for key, or nil if the key is unknown.
func (m StructureMap) Lookup(key string) *StructuralTag {
	tag, ok := m[key]
	if !ok {
		return nil
	}
	return &tag
}
