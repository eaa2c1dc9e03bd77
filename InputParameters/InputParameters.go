package InputParameters

import (
	"fmt"
	"io"
	"sort"

	"github.com/ghodss/yaml"

	"github.com/notargets/easymesh/femspace"
	"github.com/notargets/easymesh/mesh"
	"github.com/notargets/easymesh/utils"
)

// Parameters obtained from the YAML input file
type InputParameters struct {
	Title          string           `json:"Title"`
	SideConvention string           `json:"SideConvention"`
	TemplatePath   string           `json:"TemplatePath"`
	BCs            map[string][]int `json:"BCs"` // Condition name -> material ids
}

func (ip *InputParameters) Parse(data []byte) error {
	return yaml.Unmarshal(data, ip)
}

func (ip *InputParameters) Convention() (mesh.SideConvention, error) {
	return mesh.ParseSideConvention(ip.SideConvention)
}

func (ip *InputParameters) FEMConfig() femspace.Config {
	return femspace.Config{TemplateDir: ip.TemplatePath}
}

// Assignments inverts BCs into material id -> condition type
func (ip *InputParameters) Assignments() (assign map[int]utils.BCType, err error) {
	assign = make(map[int]utils.BCType)
	for _, name := range ip.bcNames() {
		var bc utils.BCType
		if bc, err = utils.ParseBCName(name); err != nil {
			return nil, err
		}
		for _, id := range ip.BCs[name] {
			if prev, ok := assign[id]; ok {
				return nil, fmt.Errorf("material id %d assigned both %v and %v", id, prev, bc)
			}
			assign[id] = bc
		}
	}
	return
}

func (ip *InputParameters) bcNames() (keys []string) {
	keys = make([]string, 0, len(ip.BCs))
	for k := range ip.BCs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return
}

func (ip *InputParameters) Print(w io.Writer) {
	fmt.Fprintf(w, "\"%s\"\t\t= Title\n", ip.Title)
	fmt.Fprintf(w, "[%s]\t\t\t= Side Convention\n", ip.SideConvention)
	fmt.Fprintf(w, "[%s]\t= Template Path\n", ip.TemplatePath)
	for _, key := range ip.bcNames() {
		fmt.Fprintf(w, "BCs[%s] = %v\n", key, ip.BCs[key])
	}
}
