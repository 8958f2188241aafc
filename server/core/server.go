package core

import (
	"sync"

	cfg "github.com/automoto/bladecore/config"
	"github.com/automoto/bladecore/logger"
	"github.com/automoto/bladecore/shared/messages"
	"github.com/automoto/bladecore/shared/netcomponents"
	"github.com/automoto/bladecore/sim"
	"github.com/automoto/bladecore/systems"
	"github.com/leap-fish/necs/esync"
	"github.com/leap-fish/necs/esync/srvsync"
	"github.com/leap-fish/necs/router"
	"github.com/leap-fish/necs/transports"
	"github.com/sirupsen/logrus"
	"github.com/yohamta/donburi"
)

// Options configure the arena server.
type Options struct {
	Name     string
	Version  string // Required client version, empty accepts any
	Arena    string
	TickRate int
	// Demo lets the autopilot play while no client holds the player.
	Demo bool
}

// Server runs one simulation and streams it to the client that controls the
// player. Any number of clients may watch the synced world.
type Server struct {
	opts      Options
	sim       *sim.Simulation
	loop      *GameLoop
	transport *transports.WsServerTransport

	actors      []*donburi.Entry
	match       *donburi.Entry
	events      *eventQueue
	mailbox     intentMailbox
	outcomeSent bool

	playerNetID esync.NetworkId

	mu         sync.RWMutex
	controller *router.NetworkClient
}

// NewServer builds the simulation from simOpts and marks its actors for
// network sync. The server owns the animation and audio sinks.
func NewServer(opts Options, simOpts sim.Options) (*Server, error) {
	s, err := newServer(opts, simOpts)
	if err != nil {
		return nil, err
	}

	world := s.sim.World()
	srvsync.UseEsync(world)

	for _, e := range s.actors {
		entity := e.Entity()
		err := srvsync.NetworkSync(world, &entity,
			srvsync.WithInterp(netcomponents.NetBody),
			netcomponents.NetActor,
		)
		if err != nil {
			return nil, err
		}
	}
	matchEntity := s.match.Entity()
	if err := srvsync.NetworkSync(world, &matchEntity, netcomponents.NetMatch); err != nil {
		return nil, err
	}
	if nid := esync.GetNetworkId(s.sim.Player()); nid != nil {
		s.playerNetID = *nid
	}

	s.setupRouterCallbacks()
	return s, nil
}

// newServer builds everything but the network side.
func newServer(opts Options, simOpts sim.Options) (*Server, error) {
	if opts.TickRate <= 0 {
		opts.TickRate = simOpts.Tuning.Sim.TickRate
	}

	events := &eventQueue{}
	simOpts.Animation = events
	simOpts.Audio = events

	simulation, err := sim.New(simOpts)
	if err != nil {
		return nil, err
	}

	s := &Server{
		opts:   opts,
		sim:    simulation,
		events: events,
	}
	s.actors, s.match = attachNetComponents(simulation)
	s.publish()
	s.loop = NewGameLoop(s, opts.TickRate)
	return s, nil
}

// Start begins the server on the given port
func (s *Server) Start(port uint) error {
	go s.loop.Run()

	s.transport = transports.NewWsServerTransport(port, "", nil)
	return s.transport.Start()
}

// Stop halts the game loop.
func (s *Server) Stop() {
	s.loop.Stop()
}

// WatchTuning applies every tuning the watcher delivers between ticks. Call
// it before Start.
func (s *Server) WatchTuning(w *cfg.Watcher) {
	s.loop.tunings = w.Tunings
	s.loop.tuningErrs = w.Errors
}

func (s *Server) setupRouterCallbacks() {
	router.OnConnect(func(client *router.NetworkClient) {
		logger.Log.WithField("client", client.Id()).Info("client connected")
	})

	router.OnDisconnect(func(client *router.NetworkClient, err error) {
		s.onDisconnect(client, err)
	})

	router.On(func(client *router.NetworkClient, req messages.JoinRequest) {
		s.onJoin(client, req)
	})

	router.On(func(client *router.NetworkClient, intent messages.PlayerIntent) {
		if !s.isController(client) {
			return
		}
		if !s.mailbox.Put(intent) {
			logger.Log.WithFields(logrus.Fields{
				"client":   client.Id(),
				"sequence": intent.Sequence,
			}).Debug("dropped stale intent")
		}
	})

	router.On(func(client *router.NetworkClient, req messages.PauseRequest) {
		if s.isController(client) {
			s.mailbox.RequestPause(req.Paused)
		}
	})

	router.OnError(func(client *router.NetworkClient, err error) {
		logger.Log.WithError(err).Warn("client error")
	})
}

func (s *Server) onJoin(client *router.NetworkClient, req messages.JoinRequest) {
	log := logger.Log.WithFields(logrus.Fields{
		"client": client.Id(),
		"player": req.PlayerName,
	})

	if s.opts.Version != "" && req.Version != s.opts.Version {
		log.WithField("version", req.Version).Info("join rejected: version mismatch")
		s.send(client, messages.JoinRejected{Reason: "version mismatch: server requires " + s.opts.Version})
		return
	}

	s.mu.Lock()
	taken := s.controller != nil && s.controller != client
	if !taken {
		s.controller = client
	}
	s.mu.Unlock()

	if taken {
		log.Info("join rejected: player already controlled")
		s.send(client, messages.JoinRejected{Reason: "the player is already controlled"})
		return
	}

	s.mailbox.Reset()
	s.send(client, messages.JoinAccepted{
		NetworkID:  s.playerNetID,
		ServerName: s.opts.Name,
		TickRate:   s.opts.TickRate,
		Arena:      s.opts.Arena,
	})
	log.Info("client took control of the player")
}

func (s *Server) onDisconnect(client *router.NetworkClient, err error) {
	log := logger.Log.WithField("client", client.Id())
	if err != nil {
		log = log.WithError(err)
	}
	log.Info("client disconnected")

	s.mu.Lock()
	wasController := s.controller == client
	if wasController {
		s.controller = nil
	}
	s.mu.Unlock()

	if wasController {
		s.mailbox.Reset()
	}
}

func (s *Server) isController(client *router.NetworkClient) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.controller == client
}

func (s *Server) currentController() *router.NetworkClient {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.controller
}

func (s *Server) send(client *router.NetworkClient, msg any) {
	if err := client.SendMessage(msg); err != nil {
		logger.Log.WithError(err).WithField("client", client.Id()).Warn("send failed")
	}
}

// tick advances the simulation one step and ships the result.
func (s *Server) tick(dt float64) {
	s.advance(dt)

	if err := srvsync.DoSync(); err != nil {
		logger.Log.WithError(err).Warn("sync error")
	}

	events := s.events.Drain()
	if client := s.currentController(); client != nil {
		for _, event := range events {
			s.send(client, event)
		}
	}
}

// advance runs one simulation step on the loop goroutine.
func (s *Server) advance(dt float64) {
	if paused, ok := s.mailbox.TakePause(); ok {
		s.sim.SetPaused(paused)
		logger.Log.WithField("paused", paused).Info("pause toggled")
	}

	intent := s.mailbox.Take()
	if s.opts.Demo && s.currentController() == nil {
		intent = systems.BotIntent(s.sim.World())
	}
	s.sim.Advance(dt, intent)

	if outcome := s.sim.Outcome(); outcome != cfg.OutcomeNone && !s.outcomeSent {
		s.outcomeSent = true
		s.events.push(messages.OutcomeEvent{Outcome: outcome.String(), At: s.sim.Now()})
	}
	s.publish()
}

func (s *Server) publish() {
	for _, e := range s.actors {
		publishActor(e)
	}
	publishMatch(s.sim, s.match)
}

func (s *Server) applyTuning(t cfg.Tuning) {
	if err := s.sim.ApplyTuning(t); err != nil {
		logger.Log.WithError(err).Warn("tuning rejected")
	}
}

// Simulation returns the simulation the server drives.
func (s *Server) Simulation() *sim.Simulation {
	return s.sim
}

// HasController reports whether a client controls the player.
func (s *Server) HasController() bool {
	return s.currentController() != nil
}
