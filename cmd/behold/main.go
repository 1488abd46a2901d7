package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/nicky-ayoub/behold/internal/config"
	"github.com/nicky-ayoub/behold/internal/scan"
	"github.com/nicky-ayoub/behold/internal/service"
	"github.com/nicky-ayoub/behold/internal/session"
	"github.com/nicky-ayoub/behold/internal/ui"
	"github.com/spf13/cobra"
	"go.trai.ch/zerr"
	"pkt.systems/pslog"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := submain(ctx)
	stop()
	os.Exit(code)
}

func submain(ctx context.Context) int {
	ctx = pslog.ContextWithLogger(ctx, newLogger(false))

	root := newRootCmd()
	root.SetArgs(os.Args[1:])
	if err := root.ExecuteContext(ctx); err != nil {
		pslog.Ctx(ctx).With("err", err).Error("behold failed")
		return 1
	}
	return 0
}

func newLogger(verbose bool) pslog.Logger {
	opts := pslog.Options{Mode: pslog.ModeConsole, MinLevel: pslog.InfoLevel}
	if verbose {
		opts.MinLevel = pslog.DebugLevel
	}
	return pslog.LoggerFromEnv(
		pslog.WithEnvWriter(os.Stderr),
		pslog.WithEnvOptions(opts),
	)
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "behold [path...]",
		Short:         "View images and directories of images",
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := config.NewViper(cmd.Flags())
			if err != nil {
				return err
			}
			cfg, err := config.FromViper(v)
			if err != nil {
				return err
			}
			return run(cmd.Context(), cfg, args)
		},
	}
	config.RegisterFlags(cmd.Flags())
	return cmd
}

func run(ctx context.Context, cfg config.Config, paths []string) error {
	logger := newLogger(cfg.Verbose)
	ctx = pslog.ContextWithLogger(ctx, logger)
	log.SetOutput(pslog.LogLogger(logger).Writer())
	log.SetFlags(0)

	images := service.NewImageService()
	sess := session.New(images, scan.NewFilter(), logger)
	defer sess.Close()

	loadPaths(sess, paths, logger)
	logger.Info("session ready", "images", sess.Len())

	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetVsyncEnabled(true)
	ebiten.SetTPS(cfg.TPS)

	viewer := ui.NewViewer(ctx, sess, ui.Options{
		Title:       cfg.Title,
		Width:       cfg.Width,
		Height:      cfg.Height,
		ZoomPercent: cfg.ZoomPercent,
		Info:        images,
	})
	if err := ebiten.RunGame(viewer); err != nil {
		return zerr.Wrap(err, "failed to run viewer")
	}
	return nil
}

// loadPaths feeds each path to the session left to right. Failures are
// already logged by the session and never stop the remaining paths.
func loadPaths(sess *session.Session, paths []string, logger pslog.Logger) {
	for _, p := range paths {
		index, err := sess.Load(p)
		if err != nil {
			logger.Debug("argument not loaded", "path", p, "err", err)
			continue
		}
		logger.Debug("argument loaded", "path", p, "index", index)
	}
}
