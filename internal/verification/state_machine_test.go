package verification

import (
	"errors"
	"testing"
)

func TestTransition(t *testing.T) {
	tcs := map[string]struct {
		kind    Kind
		from    Phase
		to      Phase
		wantErr bool
	}{
		"start window opens":           {kind: KindStart, from: PhasePending, to: PhaseWaitingStart},
		"start capture":                {kind: KindStart, from: PhaseWaitingStart, to: PhaseCapturing},
		"start recognise":              {kind: KindStart, from: PhaseCapturing, to: PhaseRecognizing},
		"start verified":               {kind: KindStart, from: PhaseRecognizing, to: PhaseStarted},
		"start rejected":               {kind: KindStart, from: PhaseRecognizing, to: PhasePending},
		"start timeout":                {kind: KindStart, from: PhaseWaitingStart, to: PhaseTimedOut},
		"completion window opens":      {kind: KindCompletion, from: PhaseStarted, to: PhaseCompleting},
		"completion verified":          {kind: KindCompletion, from: PhaseRecognizing, to: PhaseCompleted},
		"completion rejected":          {kind: KindCompletion, from: PhaseRecognizing, to: PhaseStarted},
		"configuration failure":        {kind: KindCompletion, from: PhaseCompleting, to: PhaseFailed},
		"skip capture":                 {kind: KindStart, from: PhaseWaitingStart, to: PhaseRecognizing, wantErr: true},
		"timeout while recognising":    {kind: KindStart, from: PhaseRecognizing, to: PhaseTimedOut, wantErr: true},
		"leave terminal start":         {kind: KindStart, from: PhaseStarted, to: PhaseWaitingStart, wantErr: true},
		"leave timed out":              {kind: KindCompletion, from: PhaseTimedOut, to: PhaseCompleting, wantErr: true},
		"wrong waiting phase for kind": {kind: KindCompletion, from: PhaseStarted, to: PhaseWaitingStart, wantErr: true},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			s := Session{TaskID: "a", Kind: tc.kind, Phase: tc.from}
			err := Transition(&s, tc.to)
			if tc.wantErr {
				if !errors.Is(err, ErrInvalidTransition) {
					t.Fatalf("expected ErrInvalidTransition, got %v", err)
				}
				if s.Phase != tc.from {
					t.Errorf("phase changed on a rejected transition: %s", s.Phase)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if s.Phase != tc.to {
				t.Errorf("phase = %s, want %s", s.Phase, tc.to)
			}
		})
	}
}

func TestIsTerminal(t *testing.T) {
	if !IsTerminal(KindStart, PhaseStarted) {
		t.Error("started ends a start session")
	}
	if IsTerminal(KindCompletion, PhaseStarted) {
		t.Error("started is the idle phase of a completion session")
	}
	for _, p := range []Phase{PhaseFailed, PhaseTimedOut} {
		if !IsTerminal(KindStart, p) || !IsTerminal(KindCompletion, p) {
			t.Errorf("%s must be terminal for both kinds", p)
		}
	}
}

func TestParseKind(t *testing.T) {
	if k, err := ParseKind("completion"); err != nil || k != KindCompletion {
		t.Errorf("ParseKind(completion) = %q, %v", k, err)
	}
	if _, err := ParseKind("lunch"); !errors.Is(err, ErrInvalidKind) {
		t.Errorf("expected ErrInvalidKind, got %v", err)
	}
}
