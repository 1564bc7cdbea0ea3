package components

// EntityKind classifies an entity for game rules. Rules discriminate on
// this tag and never on presentation data such as glyphs or colors.
type EntityKind uint8

const (
	KindNone EntityKind = iota
	KindPlayer
	KindHostile
	KindPickup
)

// String returns the kind name for logs and debug output.
func (k EntityKind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindHostile:
		return "hostile"
	case KindPickup:
		return "pickup"
	default:
		return "none"
	}
}

// KindComponent tags an entity with its classification.
type KindComponent struct {
	Kind EntityKind
}
