package shim

import (
	"fmt"

	"github.com/iamgreaser/forceime/internal/locale"
	"github.com/iamgreaser/forceime/internal/winsys"
)

// OpenInputMethod runs the locale bootstrap once, then delegates to the
// wrapped display. A failed bootstrap is reported but does not block the
// open; the method may still function for simple input.
func (s *Session) OpenInputMethod() (winsys.InputMethod, error) {
	s.localeOnce.Do(func() {
		if err := locale.Prepare(s.localeHost, s.log); err != nil {
			s.log.Warn("locale bootstrap failed: %v", err)
		}
	})

	im, err := s.wrapped().OpenInputMethod()
	if err != nil {
		return nil, fmt.Errorf("opening input method: %w", err)
	}
	s.log.Debug("input method opened")
	return im, nil
}

// CreateContext rewrites the host's open-ended option list into the fixed
// safe subset and creates a wrapped context on im. Options the rewrite
// captured nothing from are reported and dropped; the style the host asked
// for is always overridden with winsys.SafeStyle.
func (s *Session) CreateContext(im winsys.InputMethod, opts ...winsys.ICOption) (*Context, error) {
	cfg, dropped := winsys.ParseICOptions(opts)
	for _, opt := range dropped {
		s.log.Debug("context option %q dropped (value %v)", opt.Name, opt.Value)
	}
	if cfg.ClientWindow == winsys.WindowNone {
		s.log.Warn("context created without a client window")
	}

	ic, err := im.CreateContext(cfg)
	if err != nil {
		return nil, fmt.Errorf("creating input context: %w", err)
	}
	s.log.Debug("input context created: style=%#x client=%d focus=%d",
		cfg.Style, cfg.ClientWindow, cfg.FocusWindow)
	return s.WrapContext(ic), nil
}
