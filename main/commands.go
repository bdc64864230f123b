package main

import (
	"context"
	"fmt"
	"math"
	"os"
	"os/signal"
	"syscall"
	"text/tabwriter"

	"github.com/adammck/footstep/components/feet/gait"
	"github.com/adammck/footstep/config"
	"github.com/adammck/footstep/export"
	"github.com/adammck/footstep/sim"
	"github.com/adammck/footstep/tui"
	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// simulate runs the whole configured duration, stopping early on SIGINT.
func simulate(limit int) (*sim.Simulation, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}

	s, err := sim.Build(cfg, limit)
	if err != nil {
		return nil, err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return s, s.Run(ctx)
}

func runCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "run the simulation and print a summary",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := simulate(0)
			if err != nil {
				return err
			}

			fmt.Printf("%d frames, %.2fs, body at %s\n\n", s.Frame(), s.Rig.Time, s.Rig.Pose)

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "FOOT\tSTEPS\tPEAK\tPOSITION")
			for _, f := range s.Pair {
				peak := math.Inf(-1)
				for _, h := range s.Recorder.Heights(f.Name()) {
					peak = math.Max(peak, h)
				}

				fmt.Fprintf(w, "%s\t%d\t%.3f\t%v\n", f.Name(), s.Recorder.Steps(f.Name()), peak, f.State().CurrentPosition)
			}

			return w.Flush()
		},
	}
}

func plotCommand() *cobra.Command {
	var width, height int

	cmd := &cobra.Command{
		Use:   "plot",
		Short: "run the simulation and plot the height of each foot",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := simulate(0)
			if err != nil {
				return err
			}

			var series [][]float64
			for _, name := range s.Recorder.Feet() {
				series = append(series, s.Recorder.Heights(name))
			}

			if len(series) == 0 {
				return fmt.Errorf("nothing recorded")
			}

			fmt.Println(asciigraph.PlotMany(series,
				asciigraph.Height(height),
				asciigraph.Width(width),
				asciigraph.SeriesColors(asciigraph.Blue, asciigraph.Orange),
				asciigraph.Caption(fmt.Sprintf("foot height over %.2fs: %v", s.Rig.Time, s.Recorder.Feet()))))

			return nil
		},
	}

	cmd.Flags().IntVar(&width, "width", 100, "chart width")
	cmd.Flags().IntVar(&height, "height", 12, "chart height")
	return cmd
}

func gaitCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "gait [profile]",
		Short: fmt.Sprintf("plot the travel and lift curves of a gait profile %v", gait.Names()),
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := ""
			if len(args) == 1 {
				name = args[0]
			}

			p, err := gait.ByName(name)
			if err != nil {
				return err
			}

			frames := gait.Sample(p, 60)
			travel := make([]float64, len(frames))
			lift := make([]float64, len(frames))
			for i, f := range frames {
				travel[i] = f.XZ
				lift[i] = f.Y
			}

			fmt.Println(asciigraph.PlotMany([][]float64{travel, lift},
				asciigraph.Height(10),
				asciigraph.SeriesColors(asciigraph.Blue, asciigraph.Orange),
				asciigraph.Caption(p.Name()+": travel (blue), lift (orange)")))

			return nil
		},
	}
}

func liveCommand() *cobra.Command {
	var fps int

	cmd := &cobra.Command{
		Use:   "live",
		Short: "run the simulation with a live view",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			return tui.Run(cfg, fps)
		},
	}

	cmd.Flags().IntVar(&fps, "fps", 30, "frame rate")
	return cmd
}

func exportCommand() *cobra.Command {
	opt := export.DefaultOptions()
	var ground bool

	cmd := &cobra.Command{
		Use:   "export [file.png]",
		Short: "run the simulation and draw the foot paths from the side",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := simulate(0)
			if err != nil {
				return err
			}

			surface := s.Surface
			if !ground {
				surface = nil
			}

			img, err := export.SideView(s.Recorder, surface, opt)
			if err != nil {
				return err
			}

			if err := export.SavePNG(args[0], img); err != nil {
				return err
			}

			fmt.Printf("wrote %s\n", args[0])
			return nil
		},
	}

	cmd.Flags().IntVar(&opt.Width, "width", opt.Width, "image width")
	cmd.Flags().IntVar(&opt.Height, "height", opt.Height, "image height")
	cmd.Flags().BoolVar(&ground, "ground", true, "draw the ground")
	return cmd
}

func configCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "config [file.yaml]",
		Short: "print the default config, or write it to a file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.DefaultConfig()

			if len(args) == 1 {
				return config.Save(args[0], cfg)
			}

			data, err := yaml.Marshal(cfg)
			if err != nil {
				return err
			}

			_, err = os.Stdout.Write(data)
			return err
		},
	}
}
