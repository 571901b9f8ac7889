package derive

import "crypto/subtle"

// PassFunc runs one full verification pass: acquiring the secrets,
// deriving and encoding. It returns the final string of that pass.
type PassFunc func() (string, error)

type state int

const (
	stateIdle state = iota
	stateDeriving
	stateAwaitingSecondPass
	stateComparing
	stateAccepted
	stateRejected
)

func (s state) String() string {
	switch s {
	case stateIdle:
		return "idle"
	case stateDeriving:
		return "deriving"
	case stateAwaitingSecondPass:
		return "awaiting-second-pass"
	case stateComparing:
		return "comparing"
	case stateAccepted:
		return "accepted"
	case stateRejected:
		return "rejected"
	default:
		return "unknown"
	}
}

type loop struct {
	create bool
	state  state
}

func (l *loop) reject(err error) (string, error) {
	l.state = stateRejected
	return "", err
}

func (l *loop) run(pass PassFunc) (string, error) {
	l.state = stateDeriving

	first, err := pass()
	if err != nil {
		return l.reject(err)
	}

	if !l.create {
		l.state = stateAccepted
		return first, nil
	}

	l.state = stateAwaitingSecondPass
	second, err := pass()
	if err != nil {
		return l.reject(err)
	}

	l.state = stateComparing
	if subtle.ConstantTimeCompare([]byte(first), []byte(second)) != 1 {
		return l.reject(ErrMismatch)
	}

	l.state = stateAccepted
	return first, nil
}

// Verify runs pass once, or twice if create is set, and only hands out a
// result once it was accepted. In create mode both passes have to yield
// the same string; otherwise ErrMismatch and an empty string are returned.
// The first result is never returned on its own. There is no retry.
func Verify(create bool, pass PassFunc) (string, error) {
	l := &loop{create: create}
	return l.run(pass)
}
