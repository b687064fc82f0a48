package wrap

// Mode controls how long document rows are broken into screen rows.
//
// WrapNone renders one document row per screen row. WrapText prefers breaking
// after whitespace. WrapCode also accepts breaks around punctuation and uses a
// fixed lookback window.
type Mode int

const (
	WrapNone Mode = iota
	WrapText
	WrapCode
)

func (m Mode) String() string {
	switch m {
	case WrapText:
		return "text"
	case WrapCode:
		return "code"
	default:
		return "none"
	}
}

// ParseMode maps "none", "text" and "code" to a Mode.
func ParseMode(s string) (Mode, bool) {
	switch s {
	case "none", "off", "":
		return WrapNone, true
	case "text":
		return WrapText, true
	case "code":
		return WrapCode, true
	default:
		return WrapNone, false
	}
}

// Next cycles none -> text -> code -> none.
func (m Mode) Next() Mode {
	switch m {
	case WrapNone:
		return WrapText
	case WrapText:
		return WrapCode
	default:
		return WrapNone
	}
}
