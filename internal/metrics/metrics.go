package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ActiveWebSocketConnections = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "call_relay_active_websocket_connections",
		Help: "Number of active WebSocket connections",
	})

	WebSocketConnectionsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "call_relay_websocket_connections_total",
		Help: "Total number of WebSocket connections",
	})

	WebSocketDisconnectionsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "call_relay_websocket_disconnections_total",
		Help: "Total number of WebSocket disconnections",
	})

	RegisteredIdentities = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "call_relay_registered_identities",
		Help: "Number of identities currently registered in the presence registry",
	})

	ActiveCalls = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "call_relay_active_calls",
		Help: "Number of accepted calls currently in progress",
	})

	CallsInitiatedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "call_relay_calls_initiated_total",
		Help: "Total number of call attempts initiated",
	})

	IncomingCallsDeliveredTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "call_relay_incoming_calls_delivered_total",
		Help: "Total number of incoming-call notifications fanned out to callees",
	})

	CallsAcceptedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "call_relay_calls_accepted_total",
		Help: "Total number of accepted calls",
	})

	CallsDeclinedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "call_relay_calls_declined_total",
		Help: "Total number of declined calls",
	})

	CallsEndedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "call_relay_calls_ended_total",
		Help: "Total number of ended calls",
	}, []string{"reason"}) // "ended" | "peer disconnected" | "ring timeout" | "admin"

	SignalsRelayedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "call_relay_signals_relayed_total",
		Help: "Total number of negotiation messages relayed between peers",
	}, []string{"kind"}) // "webrtc-offer" | "webrtc-answer" | "webrtc-ice-candidate"
)
