package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/neon-snake/audio"
	"github.com/lixenwraith/neon-snake/config"
	"github.com/lixenwraith/neon-snake/engine"
	"github.com/lixenwraith/neon-snake/input"
	"github.com/lixenwraith/neon-snake/leaderboard"
	"github.com/lixenwraith/neon-snake/parameter"
	"github.com/lixenwraith/neon-snake/record"
	"github.com/lixenwraith/neon-snake/render"
	"github.com/lixenwraith/neon-snake/status"
)

var (
	configFlag = flag.String("config", "", "TOML config file overlaying the defaults")
	seedFlag   = flag.Uint64("seed", 0, "RNG seed, 0 picks one from the clock")
	gridFlag   = flag.Int("grid", 0, "Grid size override")
	storeFlag  = flag.String("store", "", "Leaderboard backend override: json or sqlite")
	muteFlag   = flag.Bool("mute", false, "Disable audio")
	recordFlag = flag.Bool("record", false, "Record every tick under the record directory")
	formatFlag = flag.String("record-format", "", "Recording format override: jsonl or msgpack")
	debugFlag  = flag.Bool("debug", false, "Write logs to logs/ and show the metrics overlay")
)

func main() {
	flag.Parse()

	if logFile := setupLogging(*debugFlag); logFile != nil {
		defer logFile.Close()
	}

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(2)
	}

	if err := run(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "neon-snake: %v\n", err)
		os.Exit(1)
	}
}

// loadConfig applies defaults, then the config file, then flag overrides
func loadConfig() (config.Config, error) {
	cfg := config.Default()
	if *configFlag != "" {
		loaded, err := config.Load(*configFlag)
		if err != nil {
			return cfg, err
		}
		cfg = loaded
	}
	if *gridFlag != 0 {
		cfg.Game.GridSize = *gridFlag
	}
	if *storeFlag != "" {
		cfg.Leaderboard.Backend = *storeFlag
	}
	if *formatFlag != "" {
		cfg.Record.Format = *formatFlag
	}
	if *muteFlag {
		cfg.Audio.Enabled = false
	}
	if *recordFlag {
		cfg.Record.Enabled = true
	}
	return cfg, cfg.Validate()
}

func openBoard(cfg config.LeaderboardConfig) (*leaderboard.Board, func(), error) {
	var store leaderboard.Store
	cleanup := func() {}

	switch cfg.Backend {
	case "sqlite":
		db, err := leaderboard.OpenSQLiteStore(cfg.DB)
		if err != nil {
			return nil, nil, err
		}
		store = db
		cleanup = func() {
			if err := db.Close(); err != nil {
				log.Printf("leaderboard: close: %v", err)
			}
		}
	default:
		store = leaderboard.NewFileStore(cfg.File)
	}

	board := leaderboard.NewBoard(store, parameter.LeaderboardSize)
	if err := board.Load(); err != nil {
		log.Printf("leaderboard: starting empty: %v", err)
	}
	return board, cleanup, nil
}

func run(cfg config.Config) error {
	board, closeBoard, err := openBoard(cfg.Leaderboard)
	if err != nil {
		return err
	}
	defer closeBoard()

	seed := *seedFlag
	if seed == 0 && cfg.Game.Seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	reg := status.NewRegistry()
	clock := engine.NewGameClock(engine.NewMonotonicTimeProvider())
	session, err := engine.NewSession(cfg.Settings(seed), clock, board, reg)
	if err != nil {
		return err
	}

	sound := audio.NewSoundManager()
	if cfg.Audio.Enabled {
		if err := sound.Initialize(); err != nil {
			log.Printf("audio: continuing without sound: %v", err)
		}
		defer sound.Cleanup()
	}

	var recorder *record.Recorder
	if cfg.Record.Enabled {
		recorder, err = record.NewRecorder(cfg.Record.Dir, record.Format(cfg.Record.Format), cfg.Record.Buffer, reg)
		if err != nil {
			return err
		}
		defer func() {
			if err := recorder.Close(); err != nil {
				log.Printf("recorder: %v", err)
			}
		}()
		log.Printf("recording to %s", recorder.Path())
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}

	// Panic recovery: the deferred Fini below has already restored the terminal
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "\n\x1b[31mNEON-SNAKE CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()
	defer screen.Fini()
	screen.HideCursor()

	g := &game{
		session:  session,
		screen:   screen,
		renderer: render.NewTerminalRenderer(screen, reg, *debugFlag),
		handler:  input.NewHandler(),
		sound:    sound,
		recorder: recorder,
	}
	g.loop()
	return nil
}

type game struct {
	session  *engine.Session
	screen   tcell.Screen
	renderer *render.TerminalRenderer
	handler  *input.Handler
	sound    *audio.SoundManager
	recorder *record.Recorder
	runIndex int
}

// loop is the single goroutine driving ticks; the poller only forwards events
func (g *game) loop() {
	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := g.screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			events <- ev
		}
	}()

	timer := time.NewTimer(g.session.TickInterval())
	defer timer.Stop()
	g.draw()

	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return
			}
			if _, resized := ev.(*tcell.EventResize); resized {
				g.screen.Sync()
			}
			in, ok := g.handler.Translate(ev, g.session.Phase())
			if !ok {
				continue
			}
			if in.Kind == engine.IntentToggleMute {
				g.sound.SetMuted(!g.sound.Muted())
				continue
			}
			run := g.session.Run()
			quit, err := g.session.Handle(in)
			if err != nil {
				log.Printf("leaderboard: %v", err)
			}
			if quit {
				return
			}
			if g.session.Run() != run {
				g.runIndex++
				log.Printf("run %d started", g.runIndex+1)
			}
			g.draw()

		case <-timer.C:
			res := g.session.Tick()
			g.react(res)
			g.draw()
			timer.Reset(g.session.TickInterval())
		}
	}
}

// react plays cues and records the frame for a tick that did something
func (g *game) react(res engine.TickResult) {
	for _, ev := range res.Events {
		switch ev {
		case engine.EventAteFood:
			g.sound.Play(audio.CueEat)
		case engine.EventLevelUp:
			g.sound.Play(audio.CueLevelUp)
		case engine.EventPowerUpCollected:
			g.sound.Play(audio.CuePowerUp)
		case engine.EventDied:
			g.sound.Play(audio.CueDeath)
			log.Printf("run %d over: score %d (%s)", g.runIndex+1, res.Score, res.Reason)
		}
	}

	if g.recorder == nil {
		return
	}
	// Running ticks and the fatal tick are recorded; paused and post-game ticks are not
	if res.State == engine.StateRunning || len(res.Events) > 0 {
		snap := g.session.Run().Snapshot()
		g.recorder.Record(record.NewFrame("", g.runIndex+1, snap, snap.Ticks == 1))
	}
}

func (g *game) draw() {
	g.renderer.RenderFrame(g.session.Snapshot(), g.handler.Draft())
}
