package wildcard

import "fmt"

// Mode selects which kinds of filesystem entries a match may return.
type Mode int

const (
	// ModeFiles restricts matches to regular files.
	ModeFiles Mode = iota

	// ModeDirs restricts matches to directories.
	ModeDirs

	// ModeAny accepts both files and directories.
	ModeAny
)

// String returns the single-letter token for the mode, matching the
// tokens accepted by ParseMode.
func (m Mode) String() string {
	switch m {
	case ModeFiles:
		return "f"
	case ModeDirs:
		return "d"
	case ModeAny:
		return "a"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// IsValid checks whether the Mode value is one of the predefined modes.
func (m Mode) IsValid() bool {
	switch m {
	case ModeFiles, ModeDirs, ModeAny:
		return true
	default:
		return false
	}
}

// ParseMode converts a textual mode token to a Mode.
//
// "a" selects ModeAny, "f" or the empty token selects ModeFiles, and "d"
// selects ModeDirs. Any other token is a configuration error, never a
// silent default.
func ParseMode(token string) (Mode, error) {
	switch token {
	case "", "f":
		return ModeFiles, nil
	case "d":
		return ModeDirs, nil
	case "a":
		return ModeAny, nil
	default:
		return 0, fmt.Errorf("invalid match mode %q (valid: a, f, d)", token)
	}
}
