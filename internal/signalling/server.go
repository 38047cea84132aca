package signalling

import (
	"log/slog"
	"time"

	"github.com/carelink/callrelay/internal/config"
	"github.com/carelink/callrelay/internal/repository/memory"
	"github.com/carelink/callrelay/internal/service"
	"github.com/carelink/callrelay/internal/sockets"
	"github.com/carelink/callrelay/internal/utils"
	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// RingSweepInterval is how often pending ring attempts are checked against
// the configured ring timeout.
const RingSweepInterval = time.Second

// Server wires the call-signalling endpoint together: one WebSocket route for
// clients, an admin REST surface, and a Prometheus metrics endpoint. All call
// and presence state is process-local and lost on restart; clients are
// expected to re-register on reconnect.
type Server struct {
	app      *fiber.App
	config   *config.AppConfig
	pool     *sockets.SocketPool
	presence *service.PresenceService
	calls    *service.CallService

	clientHandler *ClientHandler
	ringSweeper   utils.IntervalTimer
}

func NewServer(cfg *config.AppConfig, app *fiber.App) *Server {
	pool := sockets.NewSocketPool()
	sender := NewWebSocketEventSender(pool)

	presenceRepo := memory.NewPresenceRepository()
	callRepo := memory.NewCallRepository()

	presence := service.NewPresenceService(presenceRepo, sender)
	calls := service.NewCallService(callRepo, presenceRepo, sender, callPolicy(cfg))

	sessionHandler := NewSessionHandler(pool, presence, calls)
	clientHandler := NewClientHandler(cfg, presence, calls, sessionHandler, pool)

	server := &Server{
		app:           app,
		config:        cfg,
		pool:          pool,
		presence:      presence,
		calls:         calls,
		clientHandler: clientHandler,
	}
	server.ringSweeper = utils.SetIntervalTimer(RingSweepInterval, calls.ExpireRings)

	return server
}

// ApplyConfig picks up hot-reloadable settings. Only the call policy changes
// at runtime; port and TLS changes need a restart.
func (s *Server) ApplyConfig(cfg *config.AppConfig) {
	s.calls.SetPolicy(callPolicy(cfg))
	slog.Info("call policy updated",
		"ringTimeoutMsec", cfg.Signalling.RingTimeoutMsec,
		"notifyReplacedAcceptor", cfg.Signalling.NotifyReplacedAcceptor)
}

func (s *Server) Close() {
	s.ringSweeper.Stop()
	s.pool.Close()
}

func (s *Server) SetupRoutes() {
	s.app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			c.Locals("allowed", true)
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	})

	s.app.Get("/ws/call", websocket.New(func(c *websocket.Conn) {
		defer func() {
			if err := recover(); err != nil {
				slog.Error("panic in /ws/call", "error", err)
			}
		}()

		s.clientHandler.HandleSocket(c)
	}))

	s.setupAdminApi()

	s.app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))
}

func callPolicy(cfg *config.AppConfig) service.CallPolicy {
	return service.CallPolicy{
		RingTimeout:            time.Duration(cfg.Signalling.RingTimeoutMsec) * time.Millisecond,
		NotifyReplacedAcceptor: cfg.Signalling.NotifyReplacedAcceptor,
	}
}
