package engine

// Default configuration values.
const (
	DefaultTabWidth = 4
	DefaultWidth    = 80
	DefaultHeight   = 20
)

// Option configures an Engine during creation.
type Option func(*Engine)

// WithContent sets the initial content of the engine.
func WithContent(content string) Option {
	return func(e *Engine) {
		e.initContent = content
	}
}

// WithTabWidth sets how many spaces InsertTab inserts.
func WithTabWidth(width int) Option {
	return func(e *Engine) {
		if width > 0 {
			e.tabWidth = width
		}
	}
}

// WithSize sets the initial size of the text area.
func WithSize(width, height int) Option {
	return func(e *Engine) {
		e.initWidth = width
		e.initHeight = height
	}
}
