package homography

import (
	"context"
	"log/slog"

	"github.com/MeKo-Tech/flatten/internal/geometry"
)

// Debug dumps of estimation inputs and results. These are pure diagnostics:
// they never change control flow, and the attribute building is skipped
// entirely unless the debug level is enabled.

func debugEnabled() bool {
	return slog.Default().Enabled(context.Background(), slog.LevelDebug)
}

func cornerAttrs(c geometry.Corners) slog.Value {
	return slog.GroupValue(
		slog.Any("tl", []float64{c.TL.X, c.TL.Y}),
		slog.Any("tr", []float64{c.TR.X, c.TR.Y}),
		slog.Any("br", []float64{c.BR.X, c.BR.Y}),
		slog.Any("bl", []float64{c.BL.X, c.BL.Y}),
	)
}

func logResult(src, dst geometry.Corners, m Matrix3x3) {
	if !debugEnabled() {
		return
	}
	slog.Debug("homography estimated",
		slog.Any("src", cornerAttrs(src)),
		slog.Any("dst", cornerAttrs(dst)),
		slog.Any("matrix", m.Flat()),
	)
}

func logFallback(guard string, src, dst geometry.Corners) {
	if !debugEnabled() {
		return
	}
	slog.Debug("homography fallback to identity",
		slog.String("guard", guard),
		slog.Any("src", cornerAttrs(src)),
		slog.Any("dst", cornerAttrs(dst)),
	)
}
