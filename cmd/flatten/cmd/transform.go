package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/MeKo-Tech/flatten/internal/geometry"
	"github.com/MeKo-Tech/flatten/internal/homography"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

const (
	outputFormatText = "text"
	outputFormatJSON = "json"
	outputFormatYAML = "yaml"
)

// transformOutput is the machine-readable transform result.
type transformOutput struct {
	Matrix     [3][3]float64 `json:"matrix"     yaml:"matrix"`
	Fallback   bool          `json:"fallback"   yaml:"fallback"`
	Normalized bool          `json:"normalized" yaml:"normalized"`
}

// transformCmd represents the transform command.
var transformCmd = &cobra.Command{
	Use:   "transform",
	Short: "Compute the perspective transform between two corner sets",
	Long: `Compute the 3x3 perspective transform mapping four source corners onto
four destination corners.

Corners are given in TL;TR;BR;BL order as "x,y;x,y;x,y;x,y". When the
corner sets are degenerate (collinear, coincident, non-finite) the
identity matrix is printed and the fallback field is set.

Examples:
  flatten transform --src "0,0;100,0;100,100;0,100" --dst "10,5;95,0;100,110;0,100"
  flatten transform --src ... --dst ... --normalize --format json
  flatten transform --src ... --dst ... --format yaml --output result.yaml`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		srcFlag, _ := cmd.Flags().GetString("src")
		dstFlag, _ := cmd.Flags().GetString("dst")
		if srcFlag == "" || dstFlag == "" {
			return errors.New("both --src and --dst corner sets are required")
		}

		src, err := parseQuad(srcFlag)
		if err != nil {
			return fmt.Errorf("invalid --src: %w", err)
		}
		dst, err := parseQuad(dstFlag)
		if err != nil {
			return fmt.Errorf("invalid --dst: %w", err)
		}

		cfg := GetConfig()

		format := cfg.Output.Format
		if cmd.Flags().Changed("format") {
			format, _ = cmd.Flags().GetString("format")
		}
		outputFile := cfg.Output.File
		if cmd.Flags().Changed("output") {
			outputFile, _ = cmd.Flags().GetString("output")
		}
		precision := cfg.Output.Precision
		if cmd.Flags().Changed("precision") {
			precision, _ = cmd.Flags().GetInt("precision")
		}
		normalize := cfg.Estimator.Normalize
		if cmd.Flags().Changed("normalize") {
			normalize, _ = cmd.Flags().GetBool("normalize")
		}

		validFormats := []string{outputFormatText, outputFormatJSON, outputFormatYAML}
		valid := false
		for _, f := range validFormats {
			if format == f {
				valid = true
				break
			}
		}
		if !valid {
			return fmt.Errorf("invalid output format: %s (must be one of: %s)",
				format, strings.Join(validFormats, ", "))
		}

		out := estimateOutput(src, dst, normalize)

		rendered, err := renderOutput(out, format, precision)
		if err != nil {
			return err
		}

		if outputFile != "" {
			if err := os.WriteFile(outputFile, []byte(rendered), 0o600); err != nil {
				return fmt.Errorf("failed to write output file %s: %w", outputFile, err)
			}
			return nil
		}

		_, _ = fmt.Fprint(cmd.OutOrStdout(), rendered)
		return nil
	},
}

// estimateOutput runs the estimation and packages the result.
func estimateOutput(src, dst geometry.Corners, normalize bool) transformOutput {
	var m homography.Matrix3x3
	var solved bool
	if normalize {
		m, solved = homography.EstimateNormalizedChecked(src, dst)
	} else {
		m, solved = homography.EstimateChecked(src, dst)
	}

	return transformOutput{
		Matrix: [3][3]float64{
			{m.M00, m.M01, m.M02},
			{m.M10, m.M11, m.M12},
			{m.M20, m.M21, m.M22},
		},
		Fallback:   !solved,
		Normalized: normalize,
	}
}

// renderOutput formats the result in the requested output format.
func renderOutput(out transformOutput, format string, precision int) (string, error) {
	switch format {
	case outputFormatJSON:
		data, err := json.MarshalIndent(out, "", "  ")
		if err != nil {
			return "", fmt.Errorf("failed to marshal JSON output: %w", err)
		}
		return string(data) + "\n", nil

	case outputFormatYAML:
		data, err := yaml.Marshal(out)
		if err != nil {
			return "", fmt.Errorf("failed to marshal YAML output: %w", err)
		}
		return string(data), nil

	default:
		if precision < 0 {
			precision = 6
		}
		var b strings.Builder
		for _, row := range out.Matrix {
			fmt.Fprintf(&b, "%.*f %.*f %.*f\n",
				precision, row[0], precision, row[1], precision, row[2])
		}
		if out.Fallback {
			b.WriteString("fallback: identity (degenerate corner set)\n")
		}
		return b.String(), nil
	}
}

func init() {
	rootCmd.AddCommand(transformCmd)
	transformCmd.Flags().String("src", "", "source corners as \"x,y;x,y;x,y;x,y\" in TL;TR;BR;BL order")
	transformCmd.Flags().String("dst", "", "destination corners as \"x,y;x,y;x,y;x,y\" in TL;TR;BR;BL order")
	transformCmd.Flags().BoolP("normalize", "n", false, "condition coordinates before solving (recommended for large offsets)")
	transformCmd.Flags().StringP("format", "f", "text", "output format (text, json, yaml)")
	transformCmd.Flags().StringP("output", "o", "", "write output to file instead of stdout")
	transformCmd.Flags().Int("precision", 6, "decimal places for text output")
}
