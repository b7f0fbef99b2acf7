package main

import (
	"github.com/spf13/cobra"

	"github.com/phanxgames/sapling"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Open a window and run the demo scene",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := loadSettings(cmd)
		if err != nil {
			return err
		}
		log := newLogger(s)
		tree := sapling.NewSceneTree(sapling.WithLogger(log))
		tree.SetDebugMode(s.Debug)
		d := newDemo(tree, s.Resolution.Width, s.Resolution.Height)
		if err := d.build(); err != nil {
			return err
		}
		cfg := s.RunConfig()
		if path, _ := cmd.Flags().GetString("script"); path != "" {
			if cfg.Script, err = sapling.LoadScript(path); err != nil {
				return err
			}
			log.Info("running script", "path", path, "steps", cfg.Script.Len())
		}
		cfg.ScreenshotDir, _ = cmd.Flags().GetString("screenshots")
		log.Info("starting", "scene", s.MainScene, "width", s.Resolution.Width, "height", s.Resolution.Height, "tps", s.TPS)
		return sapling.Run(tree, cfg)
	},
}

func init() {
	runCmd.Flags().String("script", "", "Input script to play back; the window closes when it finishes")
	runCmd.Flags().String("screenshots", "screenshots", "Directory for script screenshots")
	rootCmd.AddCommand(runCmd)
}
