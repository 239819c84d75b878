package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"sync/atomic"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/prosperity/internal/app"
	"github.com/llehouerou/prosperity/internal/config"
	"github.com/llehouerou/prosperity/internal/errmsg"
	"github.com/llehouerou/prosperity/internal/icons"
	"github.com/llehouerou/prosperity/internal/mpris"
	"github.com/llehouerou/prosperity/internal/notify"
	"github.com/llehouerou/prosperity/internal/player"
	"github.com/llehouerou/prosperity/internal/stderr"
	"github.com/llehouerou/prosperity/internal/transport"
	"github.com/llehouerou/prosperity/internal/ui/styles"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, errmsg.Format(errmsg.OpConfigLoad, err))
		return 1
	}

	if cfg.DebugLog != "" {
		f, err := tea.LogToFile(cfg.DebugLog, "prosperity")
		if err != nil {
			fmt.Fprintln(os.Stderr, errmsg.Format(errmsg.OpInitialize, err))
			return 1
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	// Audio backends print to fd 2; capture before the device opens.
	capture, err := stderr.Start()
	if err != nil {
		log.Printf("stderr capture unavailable: %v", err)
	}
	defer capture.Stop()

	icons.Init(cfg.Icons)

	baseDir := cfg.DefaultFolder
	if baseDir == "" {
		if baseDir, err = os.Getwd(); err != nil {
			capture.WriteOriginal(errmsg.Format(errmsg.OpInitialize, err) + "\n")
			return 1
		}
	}

	ctrl := transport.New(
		player.New(player.WithPositionInterval(cfg.PositionInterval)),
		transport.WithSeekStep(cfg.SeekStep),
		transport.WithVolume(cfg.Volume),
	)
	defer ctrl.Close()

	// Remote commands may arrive before the program exists; they are
	// dropped until it does.
	var program atomic.Pointer[tea.Program]
	send := func(in transport.Input) {
		if p := program.Load(); p != nil {
			p.Send(app.CommandMsg{Input: in})
		}
	}

	opts := app.Options{
		Theme:      styles.ParseMode(cfg.Theme),
		BaseDir:    baseDir,
		Extensions: cfg.Extensions,
		Initial:    args,
		Stderr:     capture.Lines(),
	}

	if cfg.MPRIS {
		adapter, err := mpris.New(send)
		if err != nil {
			log.Printf("mpris unavailable: %v", err)
		} else {
			defer adapter.Close()
			opts.Publisher = adapter
		}
	}

	if cfg.Notifications {
		n, err := notify.New()
		if err != nil {
			log.Printf("notifications unavailable: %v", err)
		} else {
			opts.Notifier = notify.NewNowPlaying(n)
		}
	}

	p := tea.NewProgram(app.New(ctrl, opts), tea.WithAltScreen(), tea.WithMouseCellMotion())
	program.Store(p)

	if _, err := p.Run(); err != nil {
		capture.WriteOriginal(fmt.Sprintf("Error running program: %v\n", err))
		return 1
	}
	return 0
}
