// Package locale performs the one-shot environment bootstrap that must
// happen before an input method is opened. Without a valid locale and with
// a forced modifier override, the method either refuses to start or starts
// without the user's configured engine.
package locale

import (
	"errors"
	"os"
	"strings"

	"github.com/iamgreaser/forceime/internal/diag"
)

// ErrNoLocale is returned when no usable locale can be established from the
// process environment.
var ErrNoLocale = errors.New("locale: no usable locale in environment")

// Host abstracts the environment-dependent locale primitives so the
// bootstrap can be exercised without touching the real process environment.
type Host interface {
	// SetLocale establishes the locale named by name; the empty name
	// means "from the environment". It returns the effective locale name
	// and whether the call succeeded.
	SetLocale(name string) (string, bool)

	// SupportsLocale reports whether the windowing system can work in the
	// current locale.
	SupportsLocale() bool

	// SetModifiers applies a locale modifier override; the empty string
	// defers to the environment's configured input method.
	SetModifiers(mods string) bool
}

// Prepare runs the bootstrap: establish the locale from the environment,
// then, if the system supports it, defer modifier selection to the
// environment so the configured input method is used.
//
// Failure to set a locale is reported as an error; an unsupported locale is
// only logged, since plain input keeps working without the method.
func Prepare(h Host, log *diag.Logger) error {
	if log == nil {
		log = diag.NullLogger
	}

	name, ok := h.SetLocale("")
	if !ok {
		return ErrNoLocale
	}
	log.Debug("locale established: %s", name)

	if !h.SupportsLocale() {
		log.Warn("locale %q not supported by windowing system; input method may not engage", name)
		return nil
	}

	if !h.SetModifiers("") {
		log.Warn("could not defer locale modifiers to environment")
	}
	return nil
}

// EnvHost is the concrete Host backed by the process environment.
type EnvHost struct {
	// locale is the name established by SetLocale.
	locale string
}

// SetLocale resolves the locale from LC_ALL, LC_CTYPE and LANG, in that
// order, when name is empty. It never mutates the environment.
func (h *EnvHost) SetLocale(name string) (string, bool) {
	if name == "" {
		for _, key := range []string{"LC_ALL", "LC_CTYPE", "LANG"} {
			if v := os.Getenv(key); v != "" {
				name = v
				break
			}
		}
	}
	if name == "" || name == "C" || name == "POSIX" {
		return "", false
	}
	h.locale = name
	return name, true
}

// SupportsLocale reports whether the established locale names a UTF-8
// codeset, the only class of locale the shim's segmentation understands.
func (h *EnvHost) SupportsLocale() bool {
	up := strings.ToUpper(h.locale)
	return strings.HasSuffix(up, ".UTF-8") || strings.HasSuffix(up, ".UTF8")
}

// SetModifiers accepts any override. The environment variable XMODIFIERS is
// honored by the backend itself; nothing to do here beyond validation.
func (h *EnvHost) SetModifiers(mods string) bool {
	return true
}
