package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"runtime/debug"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/lixenwraith/gridfall/audio"
	"github.com/lixenwraith/gridfall/config"
	"github.com/lixenwraith/gridfall/engine"
	"github.com/lixenwraith/gridfall/input"
	"github.com/lixenwraith/gridfall/render"
	"github.com/lixenwraith/gridfall/render/renderers"
	"github.com/lixenwraith/gridfall/scene"
	"github.com/lixenwraith/gridfall/scores"
)

const frameInterval = time.Second / 30

var (
	configFlag  = flag.String("config", "", "Path to a YAML config file")
	seedFlag    = flag.String("seed", "", "Seed string for deterministic runs")
	variantFlag = flag.String("variant", "", "Run variant: timed or areas")
	debugFlag   = flag.Bool("debug", false, "Write debug records to the log file")
	noAudioFlag = flag.Bool("no-audio", false, "Disable audio output")
)

func main() {
	flag.Parse()

	cfg := config.Default()
	if *configFlag != "" {
		loaded, err := config.Load(*configFlag)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
			os.Exit(1)
		}
		cfg = loaded
	}
	if *seedFlag != "" {
		cfg.Run.Seed = *seedFlag
	}
	if *variantFlag != "" {
		cfg.Run.Variant = config.Variant(*variantFlag)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid config: %v\n", err)
		os.Exit(1)
	}

	logger, err := newLogger(*debugFlag, cfg.Log.Path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open log: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	// Named seed strings hash to a stable source; otherwise the run
	// is seeded from the wall clock.
	var seed int64
	if cfg.Run.Seed != "" {
		seed = int64(xxhash.Sum64String(cfg.Run.Seed))
	} else {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	tp := engine.NewMonotonicTimeProvider()
	gameCtx := engine.NewGameContext(cfg, tp, rng, logger)

	var recorder scores.Recorder = scores.NopRecorder{}
	if cfg.Score.Path != "" {
		store, err := scores.Open(cfg.Score.Path)
		if err != nil {
			logger.Warn("score store unavailable, continuing without persistence", zap.Error(err))
		} else {
			recorder = store
			defer store.Close()
		}
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize screen: %v\n", err)
		os.Exit(1)
	}
	// Panic recovery: restore the terminal before the stack trace so
	// it stays readable after a crash.
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "\ngridfall crashed: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()
	defer screen.Fini()
	screen.HideCursor()

	sounds := audio.NewSoundManager()
	if cfg.Audio.Enabled && !*noAudioFlag {
		if err := sounds.Initialize(); err != nil {
			logger.Warn("audio unavailable, continuing silent", zap.Error(err))
		}
		defer sounds.Cleanup()
	}

	provider := input.NewProvider(tp)
	loop := scene.NewLoop(gameCtx, provider, recorder)
	loop.Router().Register(audio.NewFeedbackHandler(sounds))

	screenW, screenH := screen.Size()
	orchestrator := render.NewOrchestrator(screen, screenW, screenH)

	type rendererDef struct {
		renderer render.SystemRenderer
		priority render.Priority
	}
	for _, def := range []rendererDef{
		{renderers.NewFieldRenderer(gameCtx), render.PriorityField},
		{renderers.NewWorldRenderer(gameCtx), render.PriorityEntities},
		{renderers.NewHUDRenderer(gameCtx), render.PriorityHUD},
		{renderers.NewOverlayRenderer(gameCtx), render.PriorityOverlay},
	} {
		orchestrator.Register(def.renderer, def.priority)
	}

	variant := string(cfg.Run.Variant)
	best, err := recorder.BestScore(variant)
	if err != nil {
		logger.Warn("best score lookup failed", zap.Error(err))
	}

	eventChan := make(chan tcell.Event, 256)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	}()

	logger.Debug("starting",
		zap.String("variant", variant),
		zap.Int64("seed", seed),
	)

	frameTicker := time.NewTicker(frameInterval)
	defer frameTicker.Stop()

	muted := false
	wasEnded := false
	lastTick := tp.Now()

	for {
		select {
		case ev := <-eventChan:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				provider.HandleEvent(ev)
				if provider.JustPressed(input.ActionQuit) {
					return
				}
				if provider.JustPressed(input.ActionMute) {
					muted = sounds.ToggleMute()
				}
			case *tcell.EventResize:
				screenW, screenH = screen.Size()
				orchestrator.Resize(screenW, screenH)
			}

		case <-frameTicker.C:
			now := tp.Now()
			dt := now.Sub(lastTick).Seconds()
			lastTick = now

			loop.Tick(dt)

			// Refresh the banner's best score once per finished run.
			if ended := gameCtx.State.IsEnded(); ended && !wasEnded {
				if b, err := recorder.BestScore(variant); err == nil {
					best = b
				}
				wasEnded = true
			} else if !ended {
				wasEnded = false
			}

			renderCtx := render.NewRenderContext(gameCtx, screenW, screenH, muted, best)
			orchestrator.RenderFrame(renderCtx)
		}
	}
}
