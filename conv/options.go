package conv

// Mode controls which strparse contract a converter applies
type Mode int

const (
	//ModeParse applies ParseXxx functions, failures follow per type sentinel policies
	ModeParse Mode = iota
	//ModeTry applies TryParseXxx functions, any failure is reported as strparse.ErrInvalidFormat
	ModeTry
)

func (m Mode) String() string {
	if m == ModeTry {
		return "try"
	}
	return "parse"
}

// Options contains configuration for the converter
type Options struct {
	Mode Mode
}

// Option represents converter option
type Option func(o *Options)

// DefaultOptions returns default conversion options
func DefaultOptions() Options {
	return Options{Mode: ModeParse}
}

// WithMode sets conversion mode
func WithMode(mode Mode) Option {
	return func(o *Options) {
		o.Mode = mode
	}
}
