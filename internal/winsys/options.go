package winsys

// InputStyle is the bitmask describing how preedit and status feedback are
// presented by an input context.
type InputStyle uint32

const (
	// StylePreeditNothing means the host draws no preedit itself; the
	// input method presents composition in its own window. This is the
	// style a host without preedit support can actually use.
	StylePreeditNothing InputStyle = 1 << iota
	// StylePreeditNone disables preedit entirely. Despite the similar
	// name, asking for this usually prevents the input method from
	// engaging at all.
	StylePreeditNone
	// StylePreeditCallbacks means the host renders preedit via callbacks.
	StylePreeditCallbacks
	// StyleStatusNothing means status feedback is shown by the method.
	StyleStatusNothing
	// StyleStatusNone disables status feedback.
	StyleStatusNone
)

// SafeStyle is the fixed style the shim always requests, regardless of what
// the host asked for: composition handled by the method, status likewise.
// Hosts intercepted by this shim cannot handle preedit data, and requesting
// the None styles would keep the input method from engaging.
const SafeStyle = StylePreeditNothing | StyleStatusNothing

// Recognized context-creation option names. The creation call accepts an
// open-ended name/value list; only these names affect the rewritten
// configuration. Everything else is reported and dropped.
const (
	// OptInputStyle carries an InputStyle value.
	OptInputStyle = "inputStyle"
	// OptClientWindow carries the Window the context belongs to.
	// Compulsory for a usable context; captured from the host.
	OptClientWindow = "clientWindow"
	// OptFocusWindow carries the Window that holds keyboard focus, when
	// the host sets it explicitly.
	OptFocusWindow = "focusWindow"
	// OptPreeditAttributes carries a nested attribute list for hosts that
	// render preedit themselves. Dropped: the rewritten configuration
	// never requests preedit callbacks.
	OptPreeditAttributes = "preeditAttributes"
)

// ICOption is one name/value pair from the open-ended context-creation
// argument list.
type ICOption struct {
	Name  string
	Value any
}

// ContextConfig is the fixed safe subset the shim forwards to the real
// context-creation primitive. It never leaves the boundary as a raw option
// list.
type ContextConfig struct {
	// Style is the input style to request. The shim forces SafeStyle.
	Style InputStyle

	// ClientWindow is the window the context belongs to.
	ClientWindow Window

	// FocusWindow is the window holding keyboard focus. Zero means the
	// backend should default it to ClientWindow.
	FocusWindow Window
}

// ParseICOptions rewrites an open option list into the fixed safe subset.
// It captures the client and focus windows and the host's requested style,
// and returns any options it did not recognize (or recognized but deliberately
// dropped) so the caller can report them.
//
// The returned config always carries SafeStyle; the host's requested style is
// inspected only so callers can log what was overridden.
func ParseICOptions(opts []ICOption) (ContextConfig, []ICOption) {
	cfg := ContextConfig{Style: SafeStyle}
	var dropped []ICOption

	for _, opt := range opts {
		switch opt.Name {
		case OptInputStyle:
			// Inspected but overridden; report it so the override is
			// visible in diagnostics.
			dropped = append(dropped, opt)
		case OptClientWindow:
			if w, ok := opt.Value.(Window); ok {
				cfg.ClientWindow = w
			} else {
				dropped = append(dropped, opt)
			}
		case OptFocusWindow:
			if w, ok := opt.Value.(Window); ok {
				cfg.FocusWindow = w
			} else {
				dropped = append(dropped, opt)
			}
		default:
			dropped = append(dropped, opt)
		}
	}

	return cfg, dropped
}
