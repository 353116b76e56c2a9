package cmd

import (
	"errors"
	"fmt"

	"github.com/MeKo-Tech/flatten/internal/homography"
	"github.com/MeKo-Tech/flatten/internal/vis"
	"github.com/spf13/cobra"
)

// previewCmd represents the preview command.
var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Render a visual preview of a perspective transform",
	Long: `Render the source and destination corner sets on one canvas, with a
grid of source samples mapped through the estimated transform. Useful for
eyeballing whether an estimate is sane before warping with it.

Examples:
  flatten preview --src "0,0;100,0;100,100;0,100" --dst "10,5;95,0;100,110;0,100" --out preview.png
  flatten preview --src ... --dst ... --out preview.png --grid-steps 16`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		srcFlag, _ := cmd.Flags().GetString("src")
		dstFlag, _ := cmd.Flags().GetString("dst")
		outPath, _ := cmd.Flags().GetString("out")
		if srcFlag == "" || dstFlag == "" {
			return errors.New("both --src and --dst corner sets are required")
		}
		if outPath == "" {
			return errors.New("--out image path is required")
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

		width := cfg.Preview.Width
		if cmd.Flags().Changed("width") {
			width, _ = cmd.Flags().GetInt("width")
		}
		height := cfg.Preview.Height
		if cmd.Flags().Changed("height") {
			height, _ = cmd.Flags().GetInt("height")
		}
		gridSteps := cfg.Preview.GridSteps
		if cmd.Flags().Changed("grid-steps") {
			gridSteps, _ = cmd.Flags().GetInt("grid-steps")
		}
		srcColorHex := cfg.Preview.SourceColor
		if cmd.Flags().Changed("source-color") {
			srcColorHex, _ = cmd.Flags().GetString("source-color")
		}
		dstColorHex := cfg.Preview.DestColor
		if cmd.Flags().Changed("dest-color") {
			dstColorHex, _ = cmd.Flags().GetString("dest-color")
		}
		normalize := cfg.Estimator.Normalize
		if cmd.Flags().Changed("normalize") {
			normalize, _ = cmd.Flags().GetBool("normalize")
		}

		srcColor, err := vis.ParseHexColor(srcColorHex)
		if err != nil {
			return fmt.Errorf("invalid --source-color: %w", err)
		}
		dstColor, err := vis.ParseHexColor(dstColorHex)
		if err != nil {
			return fmt.Errorf("invalid --dest-color: %w", err)
		}

		var m homography.Matrix3x3
		if normalize {
			m = homography.EstimateNormalized(src, dst)
		} else {
			m = homography.Estimate(src, dst)
		}

		img := vis.Render(src, dst, m, vis.Options{
			Width:       width,
			Height:      height,
			GridSteps:   gridSteps,
			SourceColor: srcColor,
			DestColor:   dstColor,
		})

		if err := vis.Save(img, outPath); err != nil {
			return err
		}

		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Preview written to %s\n", outPath)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(previewCmd)
	previewCmd.Flags().String("src", "", "source corners as \"x,y;x,y;x,y;x,y\" in TL;TR;BR;BL order")
	previewCmd.Flags().String("dst", "", "destination corners as \"x,y;x,y;x,y;x,y\" in TL;TR;BR;BL order")
	previewCmd.Flags().String("out", "", "output image path (format from extension, e.g. preview.png)")
	previewCmd.Flags().BoolP("normalize", "n", false, "condition coordinates before solving")
	previewCmd.Flags().Int("width", 800, "preview image width")
	previewCmd.Flags().Int("height", 800, "preview image height")
	previewCmd.Flags().Int("grid-steps", 8, "number of grid samples per axis")
	previewCmd.Flags().String("source-color", "#FF0000", "source quad color (hex)")
	previewCmd.Flags().String("dest-color", "#00FF00", "destination quad color (hex)")
}
