package cipher

import "github.com/pkg/errors"

// Mode selects a chaining mode for a Context. CTR is deliberately absent:
// the original engine enumerates it but never implements encrypt for it, so
// the rewrite omits it from the type instead of rejecting it at runtime.
type Mode int

const (
	ModeECB Mode = iota
	ModeCBC
	ModeCFB
	ModeOFB
)

// modeLabels is the single source of truth for mode name rendering and
// parsing, shared by ParseMode and Mode.String.
// ctrLabel is kept alongside it only so ParseMode can recognize "CTR" and
// report it as unsupported rather than unknown.
var modeLabels = [...]string{
	ModeECB: "ECB",
	ModeCBC: "CBC",
	ModeCFB: "CFB",
	ModeOFB: "OFB",
}

const ctrLabel = "CTR"

// String renders the canonical label for m: CBC, CFB, ECB, or OFB.
func (m Mode) String() string {
	if int(m) < 0 || int(m) >= len(modeLabels) {
		return "UNKNOWN"
	}
	return modeLabels[m]
}

// ParseMode maps a canonical mode label back to a Mode. It is byte-exact:
// no case folding, no trimming of surrounding whitespace, matching the
// original CLI's strcmp-based lookup.
func ParseMode(label string) (Mode, error) {
	if label == ctrLabel {
		return 0, &CipherError{Kind: ErrUnsupportedMode, Detail: "CTR mode is not implemented"}
	}
	for m, l := range modeLabels {
		if l == label {
			return Mode(m), nil
		}
	}
	return 0, &CipherError{Kind: ErrUnsupportedMode, Detail: errors.Errorf("unsupported mode %q", label).Error()}
}
