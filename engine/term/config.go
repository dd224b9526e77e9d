package term

import (
	"github.com/hubastard/grove/engine/colors"
	"github.com/hubastard/grove/engine/core"
)

// DefaultConfig returns a config measured in cells.
//
// Hit-testing includes the right and bottom edges, which in cell units is a
// whole extra column and row. Margins of at least one cell keep that edge in
// the gap between widgets instead of on a neighbour.
func DefaultConfig() core.Config {
	cfg := core.DefaultConfig()
	cfg.Title = "grove ui (terminal)"
	cfg.Width, cfg.Height = 80, 24
	cfg.VSync = false
	cfg.TargetFPS = 30
	cfg.ClearColor = colors.Black
	cfg.UI.ButtonWidth, cfg.UI.ButtonHeight = 14, 3
	cfg.UI.Margin = [2]int{1, 1}
	cfg.UI.Padding = [2]int{1, 1}
	return cfg
}
