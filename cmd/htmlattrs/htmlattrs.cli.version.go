package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// versionOutput represents JSON output for version
type versionOutput struct {
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	Branch    string `json:"branch"`
	BuildTime string `json:"build_time"`
	GoVersion string `json:"go_version"`
}

// versionsYAML represents the versions.yaml file structure
type versionsYAML struct {
	Project struct {
		Name    string `yaml:"name"`
		Version string `yaml:"version"`
	} `yaml:"project"`
	Git struct {
		Commit string `yaml:"commit"`
		Branch string `yaml:"branch"`
	} `yaml:"git"`
	Build struct {
		Time      string `yaml:"time"`
		GoVersion string `yaml:"go_version"`
	} `yaml:"build"`
}

// versionSearchDirs are checked in order for a versions.yaml file.
var versionSearchDirs = []string{".", "..", filepath.Join("..", "..")}

func newVersionCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   VersionUse,
		Short: VersionShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if format != OutputFormatText && format != OutputFormatJSON {
				return newCLIError(ExitCodeUsageError, ErrMsgInvalidFormat, nil)
			}

			info := getVersionInfo(versionSearchDirs)
			if format == OutputFormatJSON {
				return outputVersionJSON(info, cmd.OutOrStdout())
			}
			return outputVersionText(info, cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVarP(&format, FlagFormat, FlagFormatShort, FlagDefaultFormat, FlagUsageFormat)
	return cmd
}

func getVersionInfo(dirs []string) *versionOutput {
	info := &versionOutput{
		Version:   VersionUnknown,
		Commit:    VersionUnknown,
		Branch:    VersionUnknown,
		BuildTime: VersionUnknown,
		GoVersion: runtime.Version(),
	}

	for _, dir := range dirs {
		data, err := os.ReadFile(filepath.Join(dir, VersionsFileName))
		if err != nil {
			continue
		}

		var vy versionsYAML
		if err := yaml.Unmarshal(data, &vy); err != nil {
			continue
		}

		setIfPresent(&info.Version, vy.Project.Version)
		setIfPresent(&info.Commit, vy.Git.Commit)
		setIfPresent(&info.Branch, vy.Git.Branch)
		setIfPresent(&info.BuildTime, vy.Build.Time)
		setIfPresent(&info.GoVersion, vy.Build.GoVersion)
		break
	}

	return info
}

func setIfPresent(dst *string, value string) {
	if value != "" {
		*dst = value
	}
}

func outputVersionText(v *versionOutput, stdout io.Writer) error {
	_, err := fmt.Fprintf(stdout, VersionTextTemplate+FmtNewline,
		v.Version, v.Commit, v.Branch, v.BuildTime, v.GoVersion)
	return err
}

func outputVersionJSON(v *versionOutput, stdout io.Writer) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(stdout, string(data))
	return err
}
