package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	zlog "github.com/rs/zerolog/log"

	"github.com/llehouerou/scrub/internal/app"
	"github.com/llehouerou/scrub/internal/asset"
	"github.com/llehouerou/scrub/internal/config"
	"github.com/llehouerou/scrub/internal/controller"
	"github.com/llehouerou/scrub/internal/errmsg"
	"github.com/llehouerou/scrub/internal/icons"
	"github.com/llehouerou/scrub/internal/logger"
	"github.com/llehouerou/scrub/internal/stderr"
)

func main() {
	os.Exit(run())
}

func run() int {
	// A broken config file still leaves usable defaults.
	cfg, cfgErr := config.Load()

	closer, err := logger.Init(cfg.LoggerConfig())
	if err != nil {
		// Run without diagnostics rather than not at all.
		fmt.Fprintln(os.Stderr, errmsg.Format(errmsg.OpLoggerInit, err))
		zlog.Logger = zerolog.Nop()
	}
	defer func() { _ = closer.Close() }()

	if cfgErr != nil {
		zlog.Warn().Err(cfgErr).Msg(errmsg.Format(errmsg.OpConfigLoad, cfgErr))
	}

	// Audio backends write to fd 2, which would corrupt the alt screen.
	if err == nil && cfg.Log.Output == logger.OutputFile {
		if err := stderr.Start(func(line string) {
			zlog.Warn().Str("source", "stderr").Msg(line)
		}); err != nil {
			zlog.Warn().Err(err).Msg(errmsg.Format(errmsg.OpStderrCapture, err))
		}
		defer stderr.Stop()
	}

	icons.Init(cfg.Icons)

	ctrl := controller.New(zlog.Logger)
	// Failures are logged; the screen still comes up with inert controls.
	if err := ctrl.Initialize(asset.Embedded(), asset.Sound, controller.OpenPlayer); err == nil {
		ctrl.SetVolume(cfg.Volume)
	}
	defer ctrl.Close()

	m := app.New(ctrl, app.Options{ScrubStep: cfg.ScrubStep})
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		zlog.Error().Err(err).Msg("program exited with error")
		stderr.WriteOriginal(fmt.Sprintf("Error running program: %v\n", err))
		return 1
	}
	return 0
}
