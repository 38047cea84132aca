package service

import (
	"sync"
	"time"

	"github.com/carelink/callrelay/internal/domain"
	"github.com/carelink/callrelay/internal/metrics"
	"github.com/google/uuid"
)

const (
	ReasonPeerDisconnected = "peer disconnected"
	ReasonRingTimeout      = "ring timeout"
)

// CallPolicy is the hot-reloadable part of call handling.
type CallPolicy struct {
	// RingTimeout bounds an unanswered ring. Zero means ring forever.
	RingTimeout time.Duration

	// NotifyReplacedAcceptor sends call-already-accepted to an acceptor
	// displaced by a later accept. Off preserves the legacy silence.
	NotifyReplacedAcceptor bool
}

// ringAttempt tracks a call between initiation and accept. It exists for the
// ring-timeout policy only; the call session table stays empty until accept.
type ringAttempt struct {
	callerSocket string
	callees      []string
	startedAt    time.Time
}

// CallService is the signalling router's state: it owns the call session
// table and drives every call-lifecycle transition on it.
type CallService struct {
	repo     domain.CallRepository
	presence domain.PresenceRepository
	events   domain.EventSender

	// mu serializes session and ring-attempt transitions: racing accepts
	// resolve to exactly one session, last writer winning, and the timeout
	// sweeper cannot retire a call once its accept has been processed.
	mu sync.Mutex

	policyMu sync.RWMutex
	policy   CallPolicy

	rings syncMap[string, ringAttempt]
}

func NewCallService(
	repo domain.CallRepository,
	presence domain.PresenceRepository,
	events domain.EventSender,
	policy CallPolicy,
) *CallService {
	return &CallService{
		repo:     repo,
		presence: presence,
		events:   events,
		policy:   policy,
	}
}

func (s *CallService) SetPolicy(policy CallPolicy) {
	s.policyMu.Lock()
	s.policy = policy
	s.policyMu.Unlock()
}

func (s *CallService) currentPolicy() CallPolicy {
	s.policyMu.RLock()
	defer s.policyMu.RUnlock()
	return s.policy
}

// Initiate fans an incoming-call notification out to every registered
// identity of the target role, available or not, so a caller is never
// silently ignored. Zero matches is not an error. No session is created; the
// call exists only as an in-flight notification until someone accepts.
func (s *CallService) Initiate(callerSocket, callerID, callerName, calleeRole string) (string, int) {
	callID := uuid.NewString()

	callees, _ := s.presence.GetByRole(calleeRole)
	calleeSockets := make([]string, 0, len(callees))
	for _, callee := range callees {
		_ = s.events.SendIncomingCall(callee.SocketID, callID, callerID, callerName, callerSocket)
		calleeSockets = append(calleeSockets, callee.SocketID)
	}

	s.rings.Store(callID, ringAttempt{
		callerSocket: callerSocket,
		callees:      calleeSockets,
		startedAt:    time.Now(),
	})

	metrics.CallsInitiatedTotal.Inc()
	metrics.IncomingCallsDeliveredTotal.Add(float64(len(calleeSockets)))

	return callID, len(calleeSockets)
}

// Accept creates the session for callID and notifies the caller. When several
// callees accept the same call, the last write wins; the displaced acceptor
// is told only when the policy opts in.
func (s *CallService) Accept(callID, callerSocket, calleeSocket string) {
	s.mu.Lock()
	prev, prevErr := s.repo.GetByID(callID)
	_ = s.repo.Save(domain.Session{
		CallID:       callID,
		CallerSocket: callerSocket,
		CalleeSocket: calleeSocket,
	})
	s.rings.Delete(callID)
	s.mu.Unlock()

	if prevErr == nil && prev.CalleeSocket != calleeSocket && s.currentPolicy().NotifyReplacedAcceptor {
		_ = s.events.SendCallTaken(prev.CalleeSocket, callID)
	}

	_ = s.events.SendCallAccepted(callerSocket, callID, calleeSocket)

	metrics.CallsAcceptedTotal.Inc()
	s.updateActiveCallsGauge()
}

// Decline notifies the caller directly. No session exists at this point and
// none is consulted; other invited callees keep ringing. The declining callee
// is removed from the caller's pending ring attempts, and a decline from the
// last remaining callee retires the attempt so the caller is not later told
// the same call timed out.
func (s *CallService) Decline(callerSocket, calleeSocket string, reason *string) {
	_ = s.events.SendCallDeclined(callerSocket, reason)

	s.mu.Lock()
	s.rings.Range(func(callID string, ring ringAttempt) bool {
		if ring.callerSocket != callerSocket {
			return true
		}
		remaining := make([]string, 0, len(ring.callees))
		for _, callee := range ring.callees {
			if callee != calleeSocket {
				remaining = append(remaining, callee)
			}
		}
		if len(remaining) == 0 {
			s.rings.Delete(callID)
		} else if len(remaining) != len(ring.callees) {
			ring.callees = remaining
			s.rings.Store(callID, ring)
		}
		return true
	})
	s.mu.Unlock()

	metrics.CallsDeclinedTotal.Inc()
}

// End tears down the session for callID, notifying both participants. An
// unknown callID (already ended, or never accepted) is a no-op and returns
// false.
func (s *CallService) End(callID, reason string) bool {
	s.mu.Lock()
	s.rings.Delete(callID)
	session, err := s.repo.GetByID(callID)
	if err != nil {
		s.mu.Unlock()
		return false
	}
	_ = s.repo.Delete(callID)
	s.mu.Unlock()

	_ = s.events.SendCallEnded(session.CallerSocket, callID, reason)
	_ = s.events.SendCallEnded(session.CalleeSocket, callID, reason)

	metrics.CallsEndedTotal.WithLabelValues(reasonLabel(reason)).Inc()
	s.updateActiveCallsGauge()
	return true
}

// DisconnectSocket tears down every session the socket participates in and
// notifies the surviving peer. Ring attempts initiated by the socket are
// forgotten without notifying callees: they learn of the disconnect from the
// presence broadcast instead.
func (s *CallService) DisconnectSocket(socketID string) {
	sessions, _ := s.repo.GetBySocket(socketID)
	for _, session := range sessions {
		peer := session.CallerSocket
		if peer == socketID {
			peer = session.CalleeSocket
		}

		s.mu.Lock()
		_ = s.repo.Delete(session.CallID)
		s.mu.Unlock()

		_ = s.events.SendCallEnded(peer, session.CallID, ReasonPeerDisconnected)
		metrics.CallsEndedTotal.WithLabelValues(ReasonPeerDisconnected).Inc()
	}
	if len(sessions) > 0 {
		s.updateActiveCallsGauge()
	}

	s.mu.Lock()
	s.rings.Range(func(callID string, ring ringAttempt) bool {
		if ring.callerSocket == socketID {
			s.rings.Delete(callID)
		}
		return true
	})
	s.mu.Unlock()
}

// ExpireRings ends every ring attempt older than the configured timeout,
// notifying the caller and every callee still ringing. With the timeout
// disabled it does nothing; calls ring until answered.
func (s *CallService) ExpireRings() {
	timeout := s.currentPolicy().RingTimeout
	if timeout <= 0 {
		return
	}

	now := time.Now()
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rings.Range(func(callID string, ring ringAttempt) bool {
		if now.Sub(ring.startedAt) < timeout {
			return true
		}
		s.rings.Delete(callID)

		_ = s.events.SendCallEnded(ring.callerSocket, callID, ReasonRingTimeout)
		for _, callee := range ring.callees {
			_ = s.events.SendCallEnded(callee, callID, ReasonRingTimeout)
		}
		metrics.CallsEndedTotal.WithLabelValues(ReasonRingTimeout).Inc()
		return true
	})
}

func (s *CallService) ActiveCalls() []domain.Session {
	sessions, _ := s.repo.GetAll()
	return sessions
}

func (s *CallService) updateActiveCallsGauge() {
	sessions, _ := s.repo.GetAll()
	metrics.ActiveCalls.Set(float64(len(sessions)))
}

func reasonLabel(reason string) string {
	if reason == "" {
		return "ended"
	}
	return reason
}
