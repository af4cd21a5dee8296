package cmd

import (
	"encoding/json"
	"fmt"
	"runtime"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/ringmix/config"
)

// Version is set at build time with -ldflags "-X .../cmd.Version=...".
var Version = "dev"

// versionInfo is the version command's structured output.
type versionInfo struct {
	Version   string `json:"version" yaml:"version"`
	GoVersion string `json:"goVersion" yaml:"goVersion"`
	Platform  string `json:"platform" yaml:"platform"`
}

func currentVersion() versionInfo {
	return versionInfo{
		Version:   Version,
		GoVersion: runtime.Version(),
		Platform:  fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH),
	}
}

// NewVersionCmd returns the version subcommand.
func NewVersionCmd() *cobra.Command {
	var output string

	versionCmd := &cobra.Command{
		Use:     "version",
		Short:   "Show ringmix version",
		Example: `ringmix version -o json`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			info := currentVersion()
			w := cmd.OutOrStdout()
			switch output {
			case config.OutputText:
				_, err := fmt.Fprintf(w, "ringmix %s %s %s\n", info.Version, info.GoVersion, info.Platform)
				return err
			case config.OutputJSON:
				enc := json.NewEncoder(w)
				enc.SetIndent("", "  ")
				return enc.Encode(info)
			case config.OutputYAML:
				return encodeYAML(w, info)
			default:
				return errors.Errorf("unsupported output format %q", output)
			}
		},
	}
	versionCmd.Flags().StringVarP(&output, "output", "o", config.OutputText, "output format, one of text, json, yaml")

	return versionCmd
}
