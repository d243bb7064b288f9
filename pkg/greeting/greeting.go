package greeting

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	// Prefix begins every greeting.
	Prefix = "Hello"

	// DefaultName is greeted when no name is given.
	DefaultName = "World"

	// DefaultPunctuation ends every greeting unless overridden.
	DefaultPunctuation = "!"
)

var defaultGreeter = NewGreeter()

// Hello returns the default greeting, "Hello, World!".
func Hello() string {
	return defaultGreeter.Greet("")
}

// Greeter builds greetings for names. It is immutable once created and safe
// for concurrent use.
type Greeter struct {
	punctuation string
	lang        language.Tag
}

// Option configures a [Greeter].
type Option func(*Greeter)

// WithLanguage sets the language used to title-case names.
func WithLanguage(tag language.Tag) Option {
	return func(g *Greeter) {
		g.lang = tag
	}
}

// WithPunctuation sets the text appended after the name.
func WithPunctuation(p string) Option {
	return func(g *Greeter) {
		g.punctuation = p
	}
}

// NewGreeter creates a new [Greeter].
func NewGreeter(opts ...Option) *Greeter {
	g := &Greeter{
		lang:        language.English,
		punctuation: DefaultPunctuation,
	}

	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Greet returns "Hello, <Name>" followed by the configured punctuation. The
// name is trimmed and title-cased; an empty name greets [DefaultName].
func (g *Greeter) Greet(name string) string {
	name = strings.Join(strings.Fields(name), " ")
	if name == "" {
		name = DefaultName
	}

	// Casers hold state and must not be shared between goroutines.
	name = cases.Title(g.lang).String(name)

	return Prefix + ", " + name + g.punctuation
}
