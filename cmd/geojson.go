/*
Copyright © 2020 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/notargets/easymesh/readfiles"
)

func newGeoJSONCmd(v *viper.Viper) *cobra.Command {
	c := &cobra.Command{
		Use:   "geojson <prefix>",
		Short: "Write the triangles and marked sides of a mesh as GeoJSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			ls, err := resolveSettings(cmd, v)
			if err != nil {
				return
			}
			m, err := readfiles.ReadEasyMesh(args[0], ls.opts)
			if err != nil {
				return
			}
			output, _ := cmd.Flags().GetString("output")
			if output == "" {
				output = args[0] + ".geojson"
			}
			if err = readfiles.WriteGeoJSON(output, m); err != nil {
				return
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", output)
			return
		},
	}
	c.Flags().StringP("output", "o", "", "output file (default is <prefix>.geojson)")
	return c
}

func sortedKeys[V any](m map[int]V) (keys []int) {
	keys = make([]int, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	return
}
