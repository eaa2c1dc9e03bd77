package utils

import (
	"fmt"
	"strings"
)

// BCType is the kind of condition a boundary-condition administrator applies to
// the geometry carrying a given material id
type BCType uint8

const (
	// BCNone marks interior geometry, material id 0
	BCNone BCType = iota
	BCDirichlet // Fixed value
	BCNeumann   // Fixed flux
	BCRobin     // Mixed
)

func (bc BCType) String() string {
	names := map[BCType]string{
		BCNone:      "None",
		BCDirichlet: "Dirichlet",
		BCNeumann:   "Neumann",
		BCRobin:     "Robin",
	}
	if name, ok := names[bc]; ok {
		return name
	}
	return "Unknown"
}

// BCNameMap maps lowercase condition names to BCType. Applications may add
// their own spellings.
var BCNameMap = map[string]BCType{
	"dirichlet": BCDirichlet,
	"essential": BCDirichlet,
	"fixed":     BCDirichlet,
	"neumann":   BCNeumann,
	"natural":   BCNeumann,
	"flux":      BCNeumann,
	"robin":     BCRobin,
	"mixed":     BCRobin,
}

// ParseBCName converts a condition name to BCType, ignoring case and
// surrounding whitespace
func ParseBCName(name string) (BCType, error) {
	lowerName := strings.ToLower(strings.TrimSpace(name))
	if bcType, ok := BCNameMap[lowerName]; ok {
		return bcType, nil
	}
	return BCNone, fmt.Errorf("unknown boundary condition type %q", name)
}
