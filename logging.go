package vtcore

import "go.uber.org/zap"

// ErrorKind names a recoverable condition the parser or Screen layer can
// hit while processing a byte stream. None of these cross the Write
// boundary as a Go error; each is logged at a fixed severity and then
// absorbed, so a hostile or buggy child process can never wedge the
// terminal by sending malformed escape sequences.
type ErrorKind int

const (
	// ErrParseTruncated: the decoder was given a stream that ended
	// mid-sequence (e.g. Write was called with a partial escape code).
	ErrParseTruncated ErrorKind = iota
	// ErrUnknownSequence: a syntactically valid but unrecognized final
	// byte/intermediate combination.
	ErrUnknownSequence
	// ErrInvalidParameters: a recognized sequence with out-of-range or
	// malformed numeric parameters.
	ErrInvalidParameters
	// ErrUnsupportedAtLevel: a sequence valid at a higher conformance
	// level than the terminal's current SetTerminalID level.
	ErrUnsupportedAtLevel
	// ErrFrozenMode: an attempt to change a mode the host has frozen.
	ErrFrozenMode
	// ErrPtyTransient: a recoverable I/O error on the PTY (EINTR-class).
	ErrPtyTransient
	// ErrPtyFatal: the PTY is gone; the terminal loop should stop.
	ErrPtyFatal
	// ErrResourceExhaustion: a resource budget (scrollback, image
	// memory) was hit and older data had to be evicted.
	ErrResourceExhaustion
	// ErrImageTooLarge: an image payload exceeded the configured size
	// limit and was rejected outright.
	ErrImageTooLarge
)

func (k ErrorKind) String() string {
	switch k {
	case ErrParseTruncated:
		return "parse_truncated"
	case ErrUnknownSequence:
		return "unknown_sequence"
	case ErrInvalidParameters:
		return "invalid_parameters"
	case ErrUnsupportedAtLevel:
		return "unsupported_at_level"
	case ErrFrozenMode:
		return "frozen_mode"
	case ErrPtyTransient:
		return "pty_transient"
	case ErrPtyFatal:
		return "pty_fatal"
	case ErrResourceExhaustion:
		return "resource_exhaustion"
	case ErrImageTooLarge:
		return "image_too_large"
	default:
		return "unknown"
	}
}

// Logger wraps a *zap.Logger and applies the error-kind -> level policy
// table. The zero value logs nothing.
type Logger struct {
	z *zap.Logger
}

// NewLogger wraps z. A nil z produces a silent Logger.
func NewLogger(z *zap.Logger) *Logger {
	if z == nil {
		z = zap.NewNop()
	}
	return &Logger{z: z}
}

// WithLogger installs the logger used for the error-kind policy table.
// Defaults to a no-op logger.
func WithLogger(z *zap.Logger) Option {
	return func(t *Terminal) {
		t.logger = NewLogger(z)
	}
}

// log records a condition at the severity dictated by its kind, attaching
// any extra structured fields the caller supplies.
func (l *Logger) log(kind ErrorKind, msg string, fields ...zap.Field) {
	if l == nil || l.z == nil {
		return
	}
	fields = append(fields, zap.String("kind", kind.String()))

	switch kind {
	case ErrUnknownSequence, ErrUnsupportedAtLevel:
		l.z.Debug(msg, fields...)
	case ErrInvalidParameters, ErrFrozenMode, ErrResourceExhaustion:
		l.z.Info(msg, fields...)
	case ErrParseTruncated, ErrImageTooLarge, ErrPtyTransient:
		l.z.Warn(msg, fields...)
	case ErrPtyFatal:
		l.z.Error(msg, fields...)
	default:
		l.z.Info(msg, fields...)
	}
}

func (t *Terminal) logError(kind ErrorKind, msg string, fields ...zap.Field) {
	t.logger.log(kind, msg, fields...)
}
