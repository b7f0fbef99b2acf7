package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/phanxgames/sapling"
	"github.com/phanxgames/sapling/metrics"
)

var headlessCmd = &cobra.Command{
	Use:   "headless",
	Short: "Step the demo scene without a window",
	Long: `Drive the scene with a fixed-rate ticker for a number of frames, then
print statistics. The scene is the built-in demo unless --scene names a
snapshot file written by --snapshot.`,
	RunE: runHeadless,
}

func init() {
	f := headlessCmd.Flags()
	f.Int("frames", 120, "Frames to run (0 runs until interrupted)")
	f.Int("hz", 0, "Tick rate (defaults to the settings tps)")
	f.String("scene", "", "Snapshot file to rebuild the tree from")
	f.String("snapshot", "", "Write a snapshot of the final tree to this file")
	f.String("metrics-addr", "", "Serve Prometheus metrics on this address (e.g. :9090)")
	rootCmd.AddCommand(headlessCmd)
}

func runHeadless(cmd *cobra.Command, args []string) error {
	s, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	log := newLogger(s)
	flags := cmd.Flags()
	frames, _ := flags.GetInt("frames")
	hz, _ := flags.GetInt("hz")
	if hz <= 0 {
		hz = s.TPS
	}

	reg := prometheus.NewRegistry()
	opts := []sapling.Option{
		sapling.WithLogger(log),
		sapling.WithObserver(metrics.NewCollector(reg)),
	}

	var tree *sapling.SceneTree
	if scene, _ := flags.GetString("scene"); scene != "" {
		data, err := os.ReadFile(scene)
		if err != nil {
			return err
		}
		records, err := sapling.UnmarshalRecords(data)
		if err != nil {
			return err
		}
		if tree, err = sapling.Build(records, nil, opts...); err != nil {
			return err
		}
	} else {
		tree = sapling.NewSceneTree(opts...)
		if err := newDemo(tree, s.Resolution.Width, s.Resolution.Height).build(); err != nil {
			return err
		}
	}
	tree.SetDebugMode(s.Debug)

	if addr, _ := flags.GetString("metrics-addr"); addr != "" {
		srv := &http.Server{Addr: addr, Handler: promhttp.HandlerFor(reg, promhttp.HandlerOpts{}), ReadHeaderTimeout: 5 * time.Second}
		go func() {
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				log.Error("metrics server", "error", err)
			}
		}()
		defer srv.Close()
		log.Info("serving metrics", "addr", addr)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	ticker := sapling.NewTicker(tree, hz)
	if frames > 0 {
		ticker.OnFrame = func(frame uint64) {
			if frame >= uint64(frames) {
				ticker.Stop()
			}
		}
	}
	start := time.Now()
	log.Info("running headless", "nodes", tree.Len(), "drawables", tree.DrawOrderLen(), "hz", hz, "frames", frames)
	if err := ticker.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	elapsed := time.Since(start)
	log.Info("done", "frames", ticker.Frames(), "elapsed", elapsed, "nodes", tree.Len(), "depth", tree.Depth())
	for _, err := range tree.DeferredErrors() {
		log.Warn("deferred mutation", "error", err)
	}

	if out, _ := flags.GetString("snapshot"); out != "" {
		data, err := sapling.MarshalRecords(sapling.Snapshot(tree))
		if err != nil {
			return err
		}
		if err := os.WriteFile(out, data, 0o644); err != nil {
			return err
		}
		log.Info("wrote snapshot", "path", out)
	}
	return nil
}
