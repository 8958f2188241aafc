package main

import (
	"flag"
	"math/rand/v2"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/automoto/bladecore/config"
	"github.com/automoto/bladecore/logger"
	"github.com/automoto/bladecore/server/core"
	"github.com/automoto/bladecore/shared/leveldata"
	"github.com/automoto/bladecore/shared/protocol"
	"github.com/automoto/bladecore/sim"
	"github.com/sirupsen/logrus"
)

func main() {
	port := flag.Uint("port", 7373, "Server port")
	tickRate := flag.Int("tickrate", 0, "Server tick rate (0 = tuning sim.tickRate)")
	name := flag.String("name", "Bladecore Server", "Server display name")
	version := flag.String("version", "", "Required client version (empty = accept any)")
	arenaPath := flag.String("arena", "", "TMX arena file (empty = default walled arena)")
	preset := flag.String("preset", "base", "Tuning preset: base or advanced")
	tuningPath := flag.String("tuning", "", "YAML tuning overrides")
	watch := flag.Bool("watch", false, "Reload the tuning file when it changes")
	demo := flag.Bool("demo", false, "Let the autopilot play while no client controls the player")
	seed := flag.Uint64("seed", 1, "Seed for enemy attack variants")
	flag.Parse()

	logger.Init()
	log := logger.Log

	if err := protocol.RegisterComponents(); err != nil {
		log.WithError(err).Fatal("failed to register components")
	}

	base, err := config.Preset(*preset)
	if err != nil {
		log.WithError(err).Fatal("bad preset")
	}
	tuning := base
	if *tuningPath != "" {
		if tuning, err = config.LoadTuning(*tuningPath, base); err != nil {
			log.WithError(err).Fatal("failed to load tuning")
		}
	}

	simOpts := sim.Options{
		Tuning: tuning,
		Random: rand.New(rand.NewPCG(*seed, *seed)),
	}
	arenaName := "default"
	if *arenaPath != "" {
		arena, err := leveldata.LoadArena(os.DirFS(filepath.Dir(*arenaPath)), filepath.Base(*arenaPath))
		if err != nil {
			log.WithError(err).Fatal("failed to load arena")
		}
		simOpts.Arena = arena
		arenaName = arena.Name
	}

	server, err := core.NewServer(core.Options{
		Name:     *name,
		Version:  *version,
		Arena:    arenaName,
		TickRate: *tickRate,
		Demo:     *demo,
	}, simOpts)
	if err != nil {
		log.WithError(err).Fatal("failed to create server")
	}

	if *watch && *tuningPath != "" {
		watcher, err := config.NewWatcher(*tuningPath, base)
		if err != nil {
			log.WithError(err).Fatal("failed to watch tuning")
		}
		defer watcher.Close()
		server.WatchTuning(watcher)
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		log.Info("shutting down server")
		server.Stop()
		os.Exit(0)
	}()

	log.WithFields(logrus.Fields{
		"name":    *name,
		"port":    *port,
		"arena":   arenaName,
		"preset":  *preset,
		"version": *version,
		"demo":    *demo,
	}).Info("starting bladecore server")
	if err := server.Start(*port); err != nil {
		log.WithError(err).Fatal("server error")
	}
}
