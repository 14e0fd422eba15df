package main

import (
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/unoarena/server/internal/config"
	"github.com/unoarena/server/internal/game"
	"github.com/unoarena/server/internal/ws"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("loading configuration")
	}

	log := logrus.New()
	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	log.SetLevel(level)

	registry := game.NewRegistry()
	hub := ws.NewHub(log)
	proc := game.NewProcessor(registry, hub, game.Options{
		StrictRules: cfg.StrictRules,
		Logger:      log,
	})
	srv := ws.NewServer(hub, proc, log)

	addr := ":" + cfg.Port
	log.WithFields(logrus.Fields{"addr": addr, "strictRules": cfg.StrictRules}).
		Info("UNO websocket server listening")
	if err := http.ListenAndServe(addr, srv.Routes()); err != nil {
		log.WithError(err).Fatal("server exited")
	}
}
