package verification

import "fmt"

// IdlePhase is where a session of kind k waits for its window to open.
func IdlePhase(k Kind) Phase {
	if k == KindCompletion {
		return PhaseStarted
	}
	return PhasePending
}

// WaitingPhase is the open capture window of kind k.
func WaitingPhase(k Kind) Phase {
	if k == KindCompletion {
		return PhaseCompleting
	}
	return PhaseWaitingStart
}

// DonePhase is the successful end of kind k.
func DonePhase(k Kind) Phase {
	if k == KindCompletion {
		return PhaseCompleted
	}
	return PhaseStarted
}

// IsTerminal reports whether a session of kind k in phase p is finished.
func IsTerminal(k Kind, p Phase) bool {
	switch p {
	case PhaseFailed, PhaseTimedOut:
		return true
	default:
		return p == DonePhase(k)
	}
}

// Transition moves s to phase to if the state machine allows it.
func Transition(s *Session, to Phase) error {
	if !isAllowedTransition(s.Kind, s.Phase, to) {
		return fmt.Errorf("%w for %s/%s: %s -> %s", ErrInvalidTransition, s.TaskID, s.Kind, s.Phase, to)
	}
	s.Phase = to
	return nil
}

func isAllowedTransition(k Kind, from, to Phase) bool {
	if IsTerminal(k, from) {
		return false
	}
	switch from {
	case IdlePhase(k):
		return to == WaitingPhase(k) || to == PhaseFailed
	case WaitingPhase(k):
		return to == PhaseCapturing || to == PhaseTimedOut || to == PhaseFailed
	case PhaseCapturing:
		return to == PhaseRecognizing || to == PhaseFailed
	case PhaseRecognizing:
		return to == DonePhase(k) || to == IdlePhase(k) || to == PhaseFailed
	default:
		return false
	}
}
