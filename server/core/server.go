package core

import (
	"log"
	"sync"

	"github.com/automoto/dinoclash/scenes"
	"github.com/leap-fish/necs/esync/srvsync"
	"github.com/leap-fish/necs/router"
	"github.com/leap-fish/necs/transports"
	"github.com/yohamta/donburi"
)

// Server runs a level and streams it to spectators.
type Server struct {
	name      string
	world     donburi.World // network mirror of the scene
	scene     *scenes.LevelScene
	mirror    *Mirror
	loop      *GameLoop
	transport *transports.WsServerTransport

	// Router callbacks run on necs goroutines; they only touch this set.
	spectators map[*router.NetworkClient]struct{}
	mu         sync.RWMutex
}

// NewServer creates a server for scene. The scene advances simRate ticks
// per second of wall time and spectators get tickRate snapshots per second.
func NewServer(scene *scenes.LevelScene, name string, tickRate, simRate int) *Server {
	world := donburi.NewWorld()

	s := &Server{
		name:       name,
		world:      world,
		scene:      scene,
		mirror:     NewMirror(world),
		spectators: make(map[*router.NetworkClient]struct{}),
	}
	s.loop = NewGameLoop(s, tickRate, simRate)

	// Set up the world for esync
	srvsync.UseEsync(world)

	s.setupRouterCallbacks()

	return s
}

// Start begins the server on the given port
func (s *Server) Start(port uint) error {
	go s.loop.Run()

	s.transport = transports.NewWsServerTransport(port, "", nil)
	return s.transport.Start()
}

// Stop halts the simulation loop.
func (s *Server) Stop() {
	s.loop.Stop()
}

func (s *Server) setupRouterCallbacks() {
	router.OnConnect(func(client *router.NetworkClient) {
		s.onConnect(client)
	})

	router.OnDisconnect(func(client *router.NetworkClient, err error) {
		s.onDisconnect(client, err)
	})

	router.OnError(func(client *router.NetworkClient, err error) {
		log.Printf("Client error: %v", err)
	})
}

func (s *Server) onConnect(client *router.NetworkClient) {
	s.mu.Lock()
	s.spectators[client] = struct{}{}
	n := len(s.spectators)
	s.mu.Unlock()

	log.Printf("Spectator %s joined %s (%d watching)", client.Id(), s.name, n)
}

func (s *Server) onDisconnect(client *router.NetworkClient, err error) {
	s.mu.Lock()
	delete(s.spectators, client)
	n := len(s.spectators)
	s.mu.Unlock()

	if err != nil {
		log.Printf("Spectator %s disconnected with error: %v (%d watching)", client.Id(), err, n)
	} else {
		log.Printf("Spectator %s disconnected (%d watching)", client.Id(), n)
	}
}

// step advances the scene and refreshes the mirror. It runs on the loop
// goroutine only.
func (s *Server) step(simTicks int) {
	for i := 0; i < simTicks; i++ {
		s.scene.Update()
	}
	if err := s.mirror.Sync(s.scene); err != nil {
		log.Printf("Mirror error: %v", err)
	}
}

// World returns the network mirror world
func (s *Server) World() donburi.World {
	return s.world
}

// SpectatorCount returns the number of connected spectators
func (s *Server) SpectatorCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.spectators)
}
