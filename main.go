package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/avessier/chime/internal/config"
	"github.com/avessier/chime/internal/errmsg"
	"github.com/avessier/chime/internal/keymap"
	"github.com/avessier/chime/internal/session"
	"github.com/avessier/chime/internal/source"
	"github.com/avessier/chime/internal/state"
	"github.com/avessier/chime/internal/stderr"
)

var (
	playerBarStyle = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240"))
	helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

type tickMsg time.Time

type stderrMsg string

func waitForStderr() tea.Cmd {
	return func() tea.Msg {
		line, ok := <-stderr.Messages
		if !ok {
			return nil
		}
		return stderrMsg(line)
	}
}

type model struct {
	sess     *session.Instance
	cfg      *config.Config
	stateMgr *state.Manager
	keys     *keymap.Resolver
	width    int
	status   string

	// failures collected during quit, reported once the TUI is down
	exitMsgs []string
}

type options struct {
	volume   float64
	loop     bool
	loops    int
	wave     string
	pitch    float64
	duration time.Duration
	path     string
}

func parseFlags() (options, error) {
	opts := options{}
	flag.Float64Var(&opts.volume, "volume", -1, "initial volume 0.0-1.0 (default: config/saved)")
	flag.BoolVar(&opts.loop, "loop", false, "loop playback")
	flag.IntVar(&opts.loops, "loops", -1, "extra cycles when looping (-1 = forever)")
	flag.StringVar(&opts.wave, "tone", "", "play a tone instead of a file: sine, triangle, saw or square")
	flag.Float64Var(&opts.pitch, "pitch", 440, "tone pitch in Hz")
	flag.DurationVar(&opts.duration, "duration", 2*time.Second, "tone duration")
	flag.Parse()

	// No file and no tone replays the last persisted source.
	if opts.wave == "" {
		switch flag.NArg() {
		case 0:
		case 1:
			opts.path = flag.Arg(0)
		default:
			return opts, fmt.Errorf("usage: chime [flags] <file.wav|mp3|flac>, chime -tone <wave>, or chime to replay the last source")
		}
	}
	return opts, nil
}

func (o options) source(stateMgr *state.Manager) (source.Source, error) {
	if o.wave != "" {
		wave, err := source.ParseWave(o.wave)
		if err != nil {
			return source.Source{}, err
		}
		return source.Tone(wave, o.pitch, o.duration), nil
	}
	if o.path != "" {
		format, err := source.FormatForPath(o.path)
		if err != nil {
			return source.Source{}, err
		}
		return source.File(format, o.path), nil
	}

	desc, err := stateMgr.GetLastSource()
	if err != nil {
		return source.Source{}, err
	}
	if desc == "" {
		return source.Source{}, fmt.Errorf("nothing played yet; pass a file or -tone")
	}
	return source.Parse(desc)
}

func initialModel(opts options) (model, error) {
	cfg, err := config.Load()
	if err != nil {
		return model{}, fmt.Errorf("%s", errmsg.Format(errmsg.OpConfigLoad, err))
	}

	stateMgr, err := state.Open()
	if err != nil {
		return model{}, fmt.Errorf("%s", errmsg.Format(errmsg.OpStateOpen, err))
	}

	// Volume priority: flag > saved state > config default.
	volume := cfg.Volume()
	if cfg.ShouldRestoreVolume() {
		if saved, err := stateMgr.GetVolume(); err == nil {
			volume = saved
		}
	}
	if opts.volume >= 0 {
		volume = opts.volume
	}

	src, err := opts.source(stateMgr)
	if err != nil {
		stateMgr.Close()
		return model{}, err
	}

	sess, err := session.NewBuilder(src).
		Volume(volume).
		Loop(opts.loop).
		LoopCount(opts.loops).
		Build()
	if err != nil {
		stateMgr.Close()
		return model{}, fmt.Errorf("%s", errmsg.FormatWith(errmsg.OpSessionBuild, src.DisplayName(), err))
	}

	_ = stateMgr.SaveLastSource(src.String())

	return model{
		sess:     sess,
		cfg:      cfg,
		stateMgr: stateMgr,
		keys:     keymap.NewResolver(keymap.All),
	}, nil
}

func (m model) Init() tea.Cmd {
	return tea.Batch(m.tickCmd(), waitForStderr())
}

func (m model) tickCmd() tea.Cmd {
	return tea.Tick(m.cfg.TickInterval(), func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width

	case tea.KeyMsg:
		switch m.keys.Resolve(msg.String()) {
		case keymap.ActionQuit:
			return m.quit()
		case keymap.ActionPlayPause:
			m.togglePause()
		case keymap.ActionVolumeUp:
			m.adjustVolume(0.05)
		case keymap.ActionVolumeDown:
			m.adjustVolume(-0.05)
		case keymap.ActionToggleLoop:
			loop := !m.sess.DoesLoop()
			if err := m.sess.Update(session.Update{DoesLoop: &loop}); err != nil {
				m.status = errmsg.Format(errmsg.OpSessionUpdate, err)
			}
		case keymap.ActionStop:
			if err := m.sess.Stop(); err != nil {
				m.status = errmsg.Format(errmsg.OpPlaybackStop, err)
			}
		case keymap.ActionClearStatus:
			m.status = ""
		}

	case stderrMsg:
		m.status = string(msg)
		return m, waitForStderr()

	case tickMsg:
		m.sess.Tick()
		if m.sess.State() == session.Finished {
			return m.quit()
		}
		return m, m.tickCmd()
	}

	return m, nil
}

func (m *model) togglePause() {
	var err error
	var op errmsg.Op
	switch {
	case m.sess.IsPaused():
		op, err = errmsg.OpPlaybackResume, m.sess.Resume()
	case m.sess.State() == session.Playing:
		op, err = errmsg.OpPlaybackPause, m.sess.Pause()
	default:
		op, err = errmsg.OpPlaybackStart, m.sess.Play()
	}
	if err != nil {
		m.status = errmsg.Format(op, err)
	}
}

func (m *model) adjustVolume(delta float64) {
	level := m.sess.Volume() + delta
	if level < 0 {
		level = 0
	}
	if level > 1 {
		level = 1
	}
	if err := m.sess.Update(session.Update{Volume: &level}); err != nil {
		m.status = errmsg.Format(errmsg.OpSessionUpdate, err)
	}
}

func (m model) quit() (tea.Model, tea.Cmd) {
	if err := m.stateMgr.SaveVolume(m.sess.Volume()); err != nil {
		m.exitMsgs = append(m.exitMsgs, errmsg.Format(errmsg.OpStateSave, err))
	}
	if err := m.sess.Close(); err != nil {
		m.exitMsgs = append(m.exitMsgs, errmsg.Format(errmsg.OpSessionClose, err))
	}
	m.stateMgr.Close()
	return m, tea.Quit
}

func (m model) View() string {
	status := "■"
	switch m.sess.State() {
	case session.Playing:
		status = "▶"
	case session.Paused:
		status = "⏸"
	case session.Finished:
		status = "✓"
	}

	var elapsed time.Duration
	if e, err := m.sess.Elapsed(); err == nil {
		elapsed = e
	}
	duration := m.sess.Duration()

	loopInfo := ""
	if m.sess.DoesLoop() {
		if m.sess.LoopCount() < 0 {
			loopInfo = " ⟳∞"
		} else {
			loopInfo = fmt.Sprintf(" ⟳%d/%d", m.sess.LoopsCompleted(), m.sess.LoopCount()+1)
		}
	}
	right := fmt.Sprintf("%3.0f%%%s", m.sess.Volume()*100, loopInfo)

	innerWidth := m.width - 2
	if innerWidth < 0 {
		innerWidth = 0
	}

	title := m.sess.Title()
	barWidth := innerWidth - lipgloss.Width(title) - lipgloss.Width(right) - 4
	bar := renderProgressBar(status, elapsed, duration, barWidth)

	content := fmt.Sprintf(" %s  %s  %s", title, bar, right)
	view := playerBarStyle.Width(innerWidth).Render(content)

	if m.status != "" {
		view += "\n" + m.status
	}
	return view + "\n" + m.helpView() + "\n"
}

// helpView renders a one-line key reference under the player bar.
func (m model) helpView() string {
	parts := make([]string, 0, len(keymap.All))
	for _, b := range keymap.All {
		keys := strings.Join(m.keys.KeysFor(b.Action), "/")
		if keys == "" {
			continue
		}
		keys = strings.ReplaceAll(keys, " ", "space")
		parts = append(parts, keys+" "+strings.ToLower(b.Description))
	}
	return helpStyle.Render(" " + strings.Join(parts, "  ·  "))
}

func main() {
	opts, err := parseFlags()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	m, err := initialModel(opts)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	_ = stderr.Start()
	defer stderr.Stop()

	if err := m.sess.Play(); err != nil {
		stderr.Stop()
		fmt.Fprintln(os.Stderr, errmsg.Format(errmsg.OpPlaybackStart, err))
		os.Exit(1)
	}

	p := tea.NewProgram(m)
	final, err := p.Run()
	stderr.Stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		os.Exit(1)
	}

	// Shutdown failures are held until the TUI is torn down.
	if fm, ok := final.(model); ok {
		for _, msg := range fm.exitMsgs {
			fmt.Fprintln(os.Stderr, msg)
		}
	}
}
