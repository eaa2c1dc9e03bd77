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
	"io"
	"os"
	"runtime"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/pkg/profile"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/notargets/easymesh/InputParameters"
	"github.com/notargets/easymesh/connectivity"
	"github.com/notargets/easymesh/femspace"
	"github.com/notargets/easymesh/mesh"
	"github.com/notargets/easymesh/meshstat"
	"github.com/notargets/easymesh/readfiles"
)

// NewRootCmd builds the easymesh command tree. Each call owns its own viper
// instance so commands built for tests do not share state.
func NewRootCmd() *cobra.Command {
	v := viper.New()
	root := &cobra.Command{
		Use:   "easymesh <prefix>",
		Short: "Load and validate an EasyMesh triangulation",
		Long: `
Reads <prefix>.n, <prefix>.s and <prefix>.e, checks every cross reference and
the counter-clockwise orientation of each triangle, and reports the result.

easymesh square`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initConfig(cmd, v)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLoad(cmd, v, args[0])
		},
	}
	pf := root.PersistentFlags()
	pf.String("config", "", "config file (default is $HOME/.easymesh.yaml)")
	pf.String("convention", mesh.ConventionSpan.String(),
		"side/vertex pairing of element records: span, opposite or any")
	pf.String("templatePath", "", "directory holding the reference triangle template files")
	pf.StringP("inputParameters", "I", "", "YAML file with side convention, template path and BCs")
	pf.BoolP("verbose", "v", false, "log each loading stage")
	root.Flags().Bool("stats", false, "print mesh statistics")
	root.Flags().Bool("check", false, "print topology diagnostics")
	root.Flags().String("profile", "", "write a CPU profile into this directory")
	for _, key := range []string{"convention", "templatePath", "verbose"} {
		_ = v.BindPFlag(key, pf.Lookup(key))
	}
	root.AddCommand(newGeoJSONCmd(v))
	return root
}

// Execute runs the command line and exits non-zero on any failure
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func initConfig(cmd *cobra.Command, v *viper.Viper) error {
	cfgFile, _ := cmd.Flags().GetString("config")
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		home, err := homedir.Dir()
		if err != nil {
			return err
		}
		v.AddConfigPath(home)
		v.SetConfigName(".easymesh")
	}
	v.SetEnvPrefix("easymesh")
	v.AutomaticEnv()
	if err := v.ReadInConfig(); err != nil {
		if _, notFound := err.(viper.ConfigFileNotFoundError); !notFound || cfgFile != "" {
			return fmt.Errorf("unable to read config: %w", err)
		}
	} else if v.GetBool("verbose") {
		fmt.Fprintln(cmd.ErrOrStderr(), "Using config file:", v.ConfigFileUsed())
	}
	return nil
}

// loadSettings merges flags, the input parameters file and the viper config,
// in that order of precedence
type loadSettings struct {
	opts   readfiles.Options
	ip     *InputParameters.InputParameters
	femCfg femspace.Config
}

func resolveSettings(cmd *cobra.Command, v *viper.Viper) (ls loadSettings, err error) {
	var (
		convention   = v.GetString("convention")
		templatePath = v.GetString("templatePath")
	)
	if ipFile, _ := cmd.Flags().GetString("inputParameters"); ipFile != "" {
		var data []byte
		if data, err = os.ReadFile(ipFile); err != nil {
			return
		}
		ls.ip = &InputParameters.InputParameters{}
		if err = ls.ip.Parse(data); err != nil {
			return ls, fmt.Errorf("unable to parse %s: %w", ipFile, err)
		}
		if ls.ip.SideConvention != "" && !cmd.Flags().Changed("convention") {
			convention = ls.ip.SideConvention
		}
		if ls.ip.TemplatePath != "" && !cmd.Flags().Changed("templatePath") {
			templatePath = ls.ip.TemplatePath
		}
	}
	if ls.opts.Convention, err = mesh.ParseSideConvention(convention); err != nil {
		return
	}
	ls.opts.Verbose = v.GetBool("verbose")
	ls.femCfg = femspace.Config{TemplateDir: templatePath}
	return
}

func runLoad(cmd *cobra.Command, v *viper.Viper, prefix string) (err error) {
	var (
		ls  loadSettings
		m   *mesh.Mesh
		out = cmd.OutOrStdout()
	)
	if dir, _ := cmd.Flags().GetString("profile"); dir != "" {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(dir), profile.Quiet).Stop()
	}
	if ls, err = resolveSettings(cmd, v); err != nil {
		return
	}
	if m, err = readfiles.ReadEasyMesh(prefix, ls.opts); err != nil {
		return
	}
	fmt.Fprintf(out, "Loaded %s: %d vertices, %d sides, %d triangles\n", prefix,
		m.NGeometry(mesh.Vertex), m.NGeometry(mesh.Edge), m.NGeometry(mesh.Triangle))
	if stats, _ := cmd.Flags().GetBool("stats"); stats {
		meshstat.Compute(m, runtime.NumCPU()).Print(out)
	}
	if check, _ := cmd.Flags().GetBool("check"); check {
		diags := connectivity.New(m).Check()
		for _, d := range diags {
			fmt.Fprintf(out, "warning: %v\n", d)
		}
		fmt.Fprintf(out, "%d topology diagnostics\n", len(diags))
	}
	if ls.femCfg.TemplateDir != "" {
		if err = ls.femCfg.Validate(); err != nil {
			return
		}
		fmt.Fprintf(out, "Templates found in %s\n", ls.femCfg.TemplateDir)
	}
	if ls.ip != nil {
		if ls.opts.Verbose {
			ls.ip.Print(cmd.ErrOrStderr())
		}
		err = printBoundarySelection(out, m, ls.ip)
	}
	return
}

func printBoundarySelection(out io.Writer, m *mesh.Mesh, ip *InputParameters.InputParameters) error {
	assign, err := ip.Assignments()
	if err != nil {
		return err
	}
	if len(assign) == 0 {
		return nil
	}
	bs, err := femspace.SelectBoundary(m, assign)
	if err != nil {
		return err
	}
	seen := make(map[string]bool)
	for _, id := range sortedKeys(assign) {
		bc := assign[id]
		if seen[bc.String()] {
			continue
		}
		seen[bc.String()] = true
		fmt.Fprintf(out, "%v: %d vertices, %d sides\n", bc, len(bs.Vertices(bc)), len(bs.Sides(bc)))
	}
	return nil
}
