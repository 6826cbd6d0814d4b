package main

import (
	"context"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Faultbox/midgard-strip/internal/config"
	"github.com/Faultbox/midgard-strip/internal/logger"
	"github.com/Faultbox/midgard-strip/pkg/formats"
	"github.com/Faultbox/midgard-strip/pkg/mesh"
	"github.com/Faultbox/midgard-strip/pkg/tstrip"
)

var buildOut string

var buildCmd = &cobra.Command{
	Use:   "build <mesh.yaml>",
	Short: "Build triangle strips from a mesh",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rep, err := cfg.Strip.Rep()
		if err != nil {
			return err
		}

		doc, err := formats.LoadMeshDoc(args[0])
		if err != nil {
			return err
		}
		m := doc.ToMesh(mesh.WithLogger(logger.Named("mesh")))
		m.ClearTstrips()

		if err := m.NeedTstrips(rep); err != nil {
			return err
		}

		st, err := tstrip.Count(m.Tstrips)
		if err != nil {
			return err
		}
		logger.Info("strips built",
			zap.String("mesh", args[0]),
			zap.Int("faces", len(m.Faces)),
			zap.Int("strips", st.Strips))
		if st.Faces > 1 && st.Strips == st.Faces {
			logger.Warn("no faces share an edge; check face winding",
				zap.String("mesh", args[0]))
		}

		if buildOut == "" {
			printStrips(cmd, m.Tstrips)
			return nil
		}
		tsf, err := formats.NewTSF(m.Tstrips)
		if err != nil {
			return err
		}
		return tsf.Save(buildOut)
	},
}

var unpackOut string

var unpackCmd = &cobra.Command{
	Use:   "unpack <strips.tsf>",
	Short: "Regenerate faces from a strip file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		tsf, err := formats.LoadTSF(args[0])
		if err != nil {
			return err
		}

		m := mesh.New(mesh.WithLogger(logger.Named("mesh")))
		m.Tstrips = tsf.Strips
		if err := m.UnpackTstrips(); err != nil {
			return err
		}

		if unpackOut == "" {
			for _, f := range m.Faces {
				fmt.Fprintf(cmd.OutOrStdout(), "%d %d %d\n", f[0], f[1], f[2])
			}
			return nil
		}
		m.ClearTstrips()
		return formats.MeshDocFrom(m).Save(unpackOut)
	},
}

var convertTo string

var convertCmd = &cobra.Command{
	Use:   "convert <strips.tsf>",
	Short: "Print a strip file in the chosen encoding",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rep, err := tstrip.ParseRep(convertTo)
		if err != nil {
			return err
		}
		tsf, err := formats.LoadTSF(args[0])
		if err != nil {
			return err
		}
		logger.Debug("converting strips",
			zap.Stringer("from", tstrip.Detect(tsf.Strips)),
			zap.Stringer("to", rep))
		if err := tstrip.Convert(tsf.Strips, rep); err != nil {
			return err
		}
		printStrips(cmd, tsf.Strips)
		return nil
	},
}

var infoCmd = &cobra.Command{
	Use:   "info <strips.tsf>",
	Short: "Show strip file statistics",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		tsf, err := formats.LoadTSF(args[0])
		if err != nil {
			return err
		}
		st, err := tstrip.Count(tsf.Strips)
		if err != nil {
			return err
		}
		lens, err := tstrip.Lengths(tsf.Strips)
		if err != nil {
			return err
		}
		longest := 0
		for _, n := range lens {
			if n-2 > longest {
				longest = n - 2
			}
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "File:      %s (v%s)\n", args[0], tsf.Version)
		fmt.Fprintf(out, "Elements:  %s\n", humanize.Comma(int64(len(tsf.Strips))))
		fmt.Fprintf(out, "Strips:    %s\n", humanize.Comma(int64(st.Strips)))
		fmt.Fprintf(out, "Triangles: %s\n", humanize.Comma(int64(st.Faces)))
		fmt.Fprintf(out, "Avg. len:  %.1f triangles\n", st.AvgLength())
		fmt.Fprintf(out, "Longest:   %d triangles\n", longest)
		return nil
	},
}

var (
	transformOut       string
	transformScale     float32
	transformTranslate string
	transformRotate    float32
)

var transformCmd = &cobra.Command{
	Use:   "transform <mesh.yaml>",
	Short: "Scale, rotate (about Y) and translate mesh vertices",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		offset, err := parseVec3(transformTranslate)
		if err != nil {
			return err
		}
		doc, err := formats.LoadMeshDoc(args[0])
		if err != nil {
			return err
		}
		m := doc.ToMesh()

		if transformRotate != 0 {
			m.Rotate(mgl32.QuatRotate(mgl32.DegToRad(transformRotate), mgl32.Vec3{0, 1, 0}))
		}
		// Uniform scale commutes with the rotation above.
		xf := mgl32.Translate3D(offset[0], offset[1], offset[2]).
			Mul4(mgl32.Scale3D(transformScale, transformScale, transformScale))

		ctx := cmd.Context()
		if cfg.Transform.Timeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, cfg.Transform.Timeout)
			defer cancel()
		}
		if err := m.TransformParallel(ctx, xf, cfg.Transform.Workers); err != nil {
			return err
		}

		lo, hi := m.Bounds()
		logger.Info("vertices transformed",
			zap.Int("vertices", len(m.Vertices)),
			zap.Any("min", lo),
			zap.Any("max", hi))

		out := transformOut
		if out == "" {
			out = args[0]
		}
		return formats.MeshDocFrom(m).Save(out)
	},
}

var configCmd = &cobra.Command{
	Use:   "config [path]",
	Short: "Write the effective configuration as YAML",
	Long: `Write the effective configuration (defaults, config file and flags merged)
to path, or to tstrip.yaml in the user config directory when no path is given.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			if err := cfg.Save(); err != nil {
				return fmt.Errorf("saving config: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), filepath.Join(config.ConfigDir(), "tstrip.yaml"))
			return nil
		}
		if err := cfg.SaveTo(args[0]); err != nil {
			return fmt.Errorf("saving config: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), args[0])
		return nil
	},
}

func init() {
	buildCmd.Flags().StringVarP(&buildOut, "out", "o", "", "Write strips to this TSF file")
	unpackCmd.Flags().StringVarP(&unpackOut, "out", "o", "", "Write faces to this YAML file")
	convertCmd.Flags().StringVar(&convertTo, "to", "term", "Target encoding: term or length")

	f := transformCmd.Flags()
	f.StringVarP(&transformOut, "out", "o", "", "Output YAML file (default: overwrite input)")
	f.Float32Var(&transformScale, "scale", 1, "Uniform scale")
	f.Float32Var(&transformRotate, "rotate-y", 0, "Rotation about Y in degrees")
	f.StringVar(&transformTranslate, "translate", "0,0,0", "Translation as x,y,z")
}

func printStrips(cmd *cobra.Command, strips []int) {
	parts := make([]string, len(strips))
	for i, v := range strips {
		parts[i] = strconv.Itoa(v)
	}
	fmt.Fprintln(cmd.OutOrStdout(), strings.Join(parts, " "))
}

func parseVec3(s string) (mgl32.Vec3, error) {
	var v mgl32.Vec3
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return v, fmt.Errorf("expected x,y,z, got %q", s)
	}
	for i, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 32)
		if err != nil {
			return v, fmt.Errorf("parsing %q: %w", s, err)
		}
		v[i] = float32(f)
	}
	return v, nil
}
