package core

import (
	"log"
	"time"

	"github.com/leap-fish/necs/esync/srvsync"
)

type GameLoop struct {
	server   *Server
	tickRate int
	// simulation ticks per network tick
	simTicks int
	stopChan chan struct{}
}

func NewGameLoop(server *Server, tickRate, simRate int) *GameLoop {
	if tickRate <= 0 {
		tickRate = 20
	}
	simTicks := simRate / tickRate
	if simTicks < 1 {
		simTicks = 1
	}
	return &GameLoop{
		server:   server,
		tickRate: tickRate,
		simTicks: simTicks,
		stopChan: make(chan struct{}),
	}
}

func (g *GameLoop) Run() {
	ticker := time.NewTicker(time.Second / time.Duration(g.tickRate))
	defer ticker.Stop()

	log.Printf("Game loop started at %d ticks/second (%d sim ticks each)", g.tickRate, g.simTicks)

	for {
		select {
		case <-g.stopChan:
			log.Println("Game loop stopped")
			return
		case <-ticker.C:
			g.tick()
		}
	}
}

func (g *GameLoop) Stop() {
	close(g.stopChan)
}

func (g *GameLoop) tick() {
	g.server.step(g.simTicks)

	// The level keeps running with nobody watching.
	if g.server.SpectatorCount() == 0 {
		return
	}
	if err := srvsync.DoSync(); err != nil {
		log.Printf("Sync error: %v", err)
	}
}
