package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/fieldviz/internal/config"
	"github.com/san-kum/fieldviz/internal/engine"
	"github.com/san-kum/fieldviz/internal/export"
	"github.com/san-kum/fieldviz/internal/field"
	"github.com/san-kum/fieldviz/internal/gui"
	"github.com/san-kum/fieldviz/internal/palette"
	"github.com/san-kum/fieldviz/internal/viz"
	"github.com/spf13/cobra"
)

var (
	themeName   string
	spacing     float64
	arrowLength float64
	k1          float64
	k2          float64
	maxStrength float64
	minDistance float64
	maxColor    float64
	opacity     float64
	fps         int
	smooth      bool
	// Config file
	configFile string
	// Preset name
	preset string
	// GUI window size
	winWidth  int
	winHeight int
	// Render output
	outPath    string
	outWidth   float64
	outHeight  float64
	pointerPos string
	// Profile sweep
	profileMax float64
)

// main is the entry point for the fieldviz CLI; it registers commands and
// flags and launches the live terminal view when no subcommand is given.
// It exits the process with status 1 if command execution returns an error.
func main() {
	rootCmd := &cobra.Command{
		Use:   "fieldviz",
		Short: "pointer-driven vector field visualizer",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := buildConfig(cmd)
			if err != nil {
				return err
			}
			return viz.RunLive(cfg.Engine(), cfg.Theme)
		},
	}
	addFieldFlags(rootCmd)

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "interactive terminal view",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := buildConfig(cmd)
			if err != nil {
				return err
			}
			return viz.RunLive(cfg.Engine(), cfg.Theme)
		},
	}
	addFieldFlags(liveCmd)

	guiCmd := &cobra.Command{
		Use:   "gui",
		Short: "native window view",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := buildConfig(cmd)
			if err != nil {
				return err
			}
			gui.Run(cfg.Engine(), cfg.Theme, winWidth, winHeight)
			return nil
		},
	}
	addFieldFlags(guiCmd)
	guiCmd.Flags().IntVar(&winWidth, "width", 1280, "window width")
	guiCmd.Flags().IntVar(&winHeight, "height", 720, "window height")

	renderCmd := &cobra.Command{
		Use:   "render",
		Short: "render a single frame to SVG or PNG",
		RunE:  renderFrame,
	}
	addFieldFlags(renderCmd)
	renderCmd.Flags().StringVar(&outPath, "out", "fieldviz.svg", "output file (.svg or .png)")
	renderCmd.Flags().Float64Var(&outWidth, "frame-width", 800, "frame width")
	renderCmd.Flags().Float64Var(&outHeight, "frame-height", 600, "frame height")
	renderCmd.Flags().StringVar(&pointerPos, "pointer", "", "pointer position as x,y (default: frame center)")

	profileCmd := &cobra.Command{
		Use:   "profile",
		Short: "plot the strength falloff curve",
		RunE:  profileFalloff,
	}
	addFieldFlags(profileCmd)
	profileCmd.Flags().Float64Var(&profileMax, "max", 500, "maximum distance to sweep")

	themesCmd := &cobra.Command{
		Use:   "themes",
		Short: "list color themes",
		RunE:  listThemes,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list preset configurations",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, p := range config.ListPresets() {
				fmt.Println(p)
			}
			return nil
		},
	}

	initConfigCmd := &cobra.Command{
		Use:   "init-config [path]",
		Short: "write a default config file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "fieldviz.yaml"
			if len(args) > 0 {
				path = args[0]
			}
			if err := config.Save(path, config.DefaultConfig()); err != nil {
				return err
			}
			fmt.Printf("wrote %s\n", path)
			return nil
		},
	}

	rootCmd.AddCommand(liveCmd, guiCmd, renderCmd, profileCmd, themesCmd, presetsCmd, initConfigCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addFieldFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&themeName, "theme", "dark", "color theme")
	cmd.Flags().Float64Var(&spacing, "spacing", config.DefaultSpacing, "grid spacing in field units")
	cmd.Flags().Float64Var(&arrowLength, "arrow", config.DefaultArrowLength, "base arrow length")
	cmd.Flags().Float64Var(&k1, "k1", config.DefaultK1, "falloff distance coefficient")
	cmd.Flags().Float64Var(&k2, "k2", config.DefaultK2, "falloff offset coefficient")
	cmd.Flags().Float64Var(&maxStrength, "max-strength", config.DefaultMaxStrength, "strength clamp")
	cmd.Flags().Float64Var(&minDistance, "min-distance", config.DefaultMinDistance, "dead zone radius around the pointer")
	cmd.Flags().Float64Var(&maxColor, "color-distance", config.DefaultMaxColorDist, "distance of the far color stop")
	cmd.Flags().Float64Var(&opacity, "opacity", config.DefaultOpacity, "global opacity multiplier")
	cmd.Flags().IntVar(&fps, "fps", config.DefaultFPS, "frame rate")
	cmd.Flags().BoolVar(&smooth, "smooth", false, "spring-smooth pointer motion")
	cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	cmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
}

// buildConfig layers preset, config file, and flags in increasing
// precedence; only flags the user actually changed override the file.
func buildConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		cfg = p
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("theme") {
		cfg.Theme = themeName
	}
	if flags.Changed("spacing") {
		cfg.Spacing = spacing
	}
	if flags.Changed("arrow") {
		cfg.ArrowLength = arrowLength
	}
	if flags.Changed("k1") {
		cfg.K1 = k1
	}
	if flags.Changed("k2") {
		cfg.K2 = k2
	}
	if flags.Changed("max-strength") {
		cfg.MaxStrength = maxStrength
	}
	if flags.Changed("min-distance") {
		cfg.MinDistance = minDistance
	}
	if flags.Changed("color-distance") {
		cfg.MaxColorDist = maxColor
	}
	if flags.Changed("opacity") {
		cfg.Opacity = opacity
	}
	if flags.Changed("fps") {
		cfg.FPS = fps
	}
	if flags.Changed("smooth") {
		cfg.Smoothing = smooth
	}
	return cfg, nil
}

func renderFrame(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}

	pointer := field.Vec2{X: outWidth / 2, Y: outHeight / 2}
	if pointerPos != "" {
		pointer, err = parsePointer(pointerPos)
		if err != nil {
			return err
		}
	}

	theme := palette.Get(cfg.Theme)
	ctrl := engine.NewController(cfg.Engine(), func() palette.Theme { return theme })
	defer ctrl.Close()
	ctrl.Mount(outWidth, outHeight)
	ctrl.PointerMove(pointer.X, pointer.Y)

	var drawn int
	switch {
	case strings.HasSuffix(outPath, ".png"):
		surf := export.NewImageSurface(int(outWidth), int(outHeight), theme.Background)
		drawn = ctrl.Frame(surf)
		f, err := os.Create(outPath)
		if err != nil {
			return err
		}
		defer f.Close()
		if err := surf.EncodePNG(f); err != nil {
			return err
		}
	case strings.HasSuffix(outPath, ".svg"):
		surf := export.NewSVGSurface(outWidth, outHeight, theme.Background)
		drawn = ctrl.Frame(surf)
		if err := os.WriteFile(outPath, []byte(surf.String()), 0644); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unsupported output format: %s (want .svg or .png)", outPath)
	}

	fmt.Printf("wrote %s (%d vectors, pointer %.0f,%.0f)\n", outPath, drawn, pointer.X, pointer.Y)
	return nil
}

func parsePointer(s string) (field.Vec2, error) {
	parts := strings.SplitN(s, ",", 2)
	if len(parts) != 2 {
		return field.Vec2{}, fmt.Errorf("invalid pointer %q (want x,y)", s)
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return field.Vec2{}, fmt.Errorf("invalid pointer x: %w", err)
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return field.Vec2{}, fmt.Errorf("invalid pointer y: %w", err)
	}
	return field.Vec2{X: x, Y: y}, nil
}

func profileFalloff(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}
	params := cfg.Engine().Field

	const samples = 80
	data := make([]float64, samples)
	for i := range data {
		d := profileMax * float64(i) / float64(samples-1)
		v := field.Eval(field.Vec2{X: d}, field.Vec2{}, params)
		data[i] = v.Mag
	}

	graph := asciigraph.Plot(data,
		asciigraph.Height(12),
		asciigraph.Width(80),
		asciigraph.Caption(fmt.Sprintf("strength vs distance (0..%.0f)", profileMax)),
	)
	fmt.Println(graph)
	fmt.Println()

	theme := palette.Get(cfg.Theme)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "DISTANCE\tSTRENGTH\tCOLOR\tALPHA")
	for _, d := range []float64{0, 10, 25, 50, 100, 200, profileMax} {
		v := field.Eval(field.Vec2{X: d}, field.Vec2{}, params)
		c := theme.Map(d, cfg.MaxColorDist)
		fmt.Fprintf(w, "%.0f\t%.4f\t#%02x%02x%02x\t%.2f\n", d, v.Mag, c.R, c.G, c.B, c.A)
	}
	return w.Flush()
}

func listThemes(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tNEAR\tFAR\tALPHA")
	for _, t := range palette.Themes {
		near := t.Map(0, 1)
		far := t.Map(1, 1)
		fmt.Fprintf(w, "%s\t#%02x%02x%02x\t#%02x%02x%02x\t%.2f..%.2f\n",
			t.Name, near.R, near.G, near.B, far.R, far.G, far.B, t.AlphaFloor, t.AlphaMax)
	}
	return w.Flush()
}
