package game

// Material identifies an ingot type produced by the refinery.
type Material uint8

const (
	Aluminum Material = iota
	Iron
	Silicon
	MaterialCount // sentinel
)

// materialEntry holds static info about a material.
type materialEntry struct {
	Name   string
	Symbol string
}

var materialTable = [MaterialCount]materialEntry{
	Aluminum: {"Aluminum", "Al"},
	Iron:     {"Iron", "Fe"},
	Silicon:  {"Silicon", "Si"},
}

// Valid reports whether m is one of the known materials.
func (m Material) Valid() bool { return m < MaterialCount }

// String returns the display name for a material.
func (m Material) String() string {
	if m.Valid() {
		return materialTable[m].Name
	}
	return "Unknown"
}

// Symbol returns the chemical symbol used by the inventory readout.
func (m Material) Symbol() string {
	if m.Valid() {
		return materialTable[m].Symbol
	}
	return "??"
}

// Materials lists every material in display order.
func Materials() [MaterialCount]Material {
	return [MaterialCount]Material{Aluminum, Iron, Silicon}
}
