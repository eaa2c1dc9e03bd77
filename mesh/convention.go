package mesh

import (
	"fmt"
	"strings"
)

// SideConvention fixes the bijection between the three sides and the three
// vertices of a triangle record
type SideConvention uint8

const (
	// ConventionSpan: side k joins vertex k and vertex k+1 (mod 3), so it lies
	// opposite vertex k+2
	ConventionSpan SideConvention = iota
	// ConventionOpposite: side k lies opposite vertex k
	ConventionOpposite
	// ConventionAny only requires each side to join two of the triangle's vertices
	ConventionAny
)

var conventionNames = map[SideConvention]string{
	ConventionSpan:     "span",
	ConventionOpposite: "opposite",
	ConventionAny:      "any",
}

func (c SideConvention) String() string {
	if name, ok := conventionNames[c]; ok {
		return name
	}
	return fmt.Sprintf("SideConvention(%d)", uint8(c))
}

func ParseSideConvention(name string) (SideConvention, error) {
	lower := strings.ToLower(strings.TrimSpace(name))
	if lower == "" {
		return ConventionSpan, nil
	}
	for c, n := range conventionNames {
		if n == lower {
			return c, nil
		}
	}
	return 0, fmt.Errorf("unknown side convention %q, want one of span, opposite, any", name)
}

// SideVertices returns the vertex pair side k must join under c. Not defined for
// ConventionAny.
func (c SideConvention) SideVertices(v [3]int, k int) [2]int {
	switch c {
	case ConventionSpan:
		return [2]int{v[k], v[(k+1)%3]}
	case ConventionOpposite:
		return [2]int{v[(k+1)%3], v[(k+2)%3]}
	}
	panic(fmt.Errorf("side convention %v has no fixed pairing", c))
}

// check compares the endpoint pairs of a triangle's sides with its vertices
func (c SideConvention) check(v [3]int, sides [3][2]int) error {
	for k, s := range sides {
		if c == ConventionAny {
			if !contains(v[:], s[0]) || !contains(v[:], s[1]) {
				return fmt.Errorf("%w: side %d (%d,%d) is not an edge of triangle (%d,%d,%d)",
					ErrTopology, k, s[0], s[1], v[0], v[1], v[2])
			}
			continue
		}
		want := c.SideVertices(v, k)
		if !samePair(want, s) {
			return fmt.Errorf("%w: side %d joins (%d,%d), %v convention requires (%d,%d)",
				ErrTopology, k, s[0], s[1], c, want[0], want[1])
		}
	}
	return nil
}

func samePair(a, b [2]int) bool {
	return (a[0] == b[0] && a[1] == b[1]) || (a[0] == b[1] && a[1] == b[0])
}

func contains(s []int, x int) bool {
	for _, v := range s {
		if v == x {
			return true
		}
	}
	return false
}
