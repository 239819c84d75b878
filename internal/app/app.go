package app

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/prosperity/internal/keymap"
	"github.com/llehouerou/prosperity/internal/player"
	"github.com/llehouerou/prosperity/internal/transport"
	"github.com/llehouerou/prosperity/internal/ui/openprompt"
	"github.com/llehouerou/prosperity/internal/ui/styles"
	"github.com/llehouerou/prosperity/internal/ui/trackpanel"
)

// volumeStep is the change applied by one volume key press.
const volumeStep = 5

// Publisher receives a snapshot after every state change. The MPRIS
// adapter implements it.
type Publisher interface {
	Publish(transport.View)
}

// TrackNotifier announces the track that started playing.
type TrackNotifier interface {
	Track(info *player.TrackInfo) error
}

// Options configures the root model.
type Options struct {
	Theme      styles.Mode
	BaseDir    string   // folder relative paths resolve against
	Extensions []string // accepted file extensions, nil for the engine default
	Initial    []string // entries opened at startup
	Publisher  Publisher
	Notifier   TrackNotifier
	Stderr     <-chan string
}

// Model is the root application model. It owns the transport controller;
// every state change goes through Update on the bubbletea goroutine.
type Model struct {
	ctrl   *transport.Controller
	keys   *keymap.Resolver
	theme  styles.Mode
	tracks trackpanel.Model
	prompt openprompt.Model

	baseDir   string
	exts      []string
	initial   []string
	publisher Publisher
	notifier  TrackNotifier
	stderr    <-chan string

	lastCurrent int
	lastPath    string
	lastClick   click
	clock       func() time.Time
	message     string
	messageErr  bool
	showHelp    bool

	width, height int
}

// New creates the root model around ctrl.
func New(ctrl *transport.Controller, opts Options) Model {
	m := Model{
		ctrl:        ctrl,
		keys:        keymap.Default(),
		theme:       opts.Theme,
		tracks:      trackpanel.New(),
		prompt:      openprompt.New(),
		baseDir:     opts.BaseDir,
		exts:        opts.Extensions,
		initial:     opts.Initial,
		publisher:   opts.Publisher,
		notifier:    opts.Notifier,
		stderr:      opts.Stderr,
		lastCurrent: -1,
		clock:       time.Now,
	}
	m.publish()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		WaitForEngine(m.ctrl.Events()),
		WatchStderr(m.stderr),
		ResolveFiles(m.baseDir, m.initial, m.exts),
	)
}

// Theme returns the active theme mode.
func (m Model) Theme() styles.Mode {
	return m.theme
}

// Message returns the transient status line text and whether it is an error.
func (m Model) Message() (string, bool) {
	return m.message, m.messageErr
}

// Controller returns the transport controller.
func (m Model) Controller() *transport.Controller {
	return m.ctrl
}
