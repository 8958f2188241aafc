package core

import (
	"sync"
	"time"

	cfg "github.com/automoto/bladecore/config"
	"github.com/automoto/bladecore/logger"
)

type GameLoop struct {
	server   *Server
	tickRate int
	stopChan chan struct{}
	stopOnce sync.Once

	tunings    <-chan cfg.Tuning
	tuningErrs <-chan error
}

func NewGameLoop(server *Server, tickRate int) *GameLoop {
	return &GameLoop{
		server:   server,
		tickRate: tickRate,
		stopChan: make(chan struct{}),
	}
}

// Run ticks the server at the fixed rate until Stop. Reloaded tunings are
// applied between ticks, never during one.
func (g *GameLoop) Run() {
	dt := 1 / float64(g.tickRate)
	ticker := time.NewTicker(time.Second / time.Duration(g.tickRate))
	defer ticker.Stop()

	logger.Log.WithField("tickRate", g.tickRate).Info("game loop started")

	for {
		select {
		case <-g.stopChan:
			logger.Log.Info("game loop stopped")
			return
		case t, ok := <-g.tunings:
			if !ok {
				g.tunings = nil
				continue
			}
			g.server.applyTuning(t)
		case err, ok := <-g.tuningErrs:
			if !ok {
				g.tuningErrs = nil
				continue
			}
			logger.Log.WithError(err).Warn("tuning reload failed")
		case <-ticker.C:
			g.server.tick(dt)
		}
	}
}

func (g *GameLoop) Stop() {
	g.stopOnce.Do(func() {
		close(g.stopChan)
	})
}
