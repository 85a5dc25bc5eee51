// Package config provides the process-wide, immutable configuration shared
// by every core graph operation: display colors and symbols, default
// geometry, abstraction toggles, and the index key delimiter.
//
// Config is built once at startup via [New] and its functional options, then
// passed down to operations; it is never a package-level global and is
// sealed against further mutation once constructed.
package config

// Colors are the display-graph fill colors assigned per the color/symbol
// table (§6): a base color per semantic class. The shaded variant used for
// role/phase/subkind is not stored here; it is derived from these colors
// by shifting each channel by [Config.ColorVariation].
type Colors struct {
	Basic       string
	Object      string
	Relator     string
	Mode        string
	Enumeration string
	Event       string
}

// Symbols are the display-graph symbol identifiers per stereotype group.
type Symbols struct {
	Basic       string
	Relator     string
	Mode        string
	Enumeration string
	Event       string
}

// Config is the immutable, process-wide configuration for graph operations.
type Config struct {
	colors Colors
	symbols Symbols

	defaultWidth  int
	defaultHeight int
	attributeHeight int
	defaultX      int
	defaultY      int

	strokeWidth     int
	strokeDasharray int

	colorVariation int

	indexDelimiter string

	minRelatorsDegree int
	idLength          int

	longNames     bool
	multRelations bool
	keepRelators  bool
}

// Option configures a Config during construction.
type Option func(*Config)

// With returns a copy of c with opts applied, leaving c itself untouched.
// Used to derive a one-off configuration for a single call (e.g. a CORE
// API operation's optional long_names/mult_relations/keep_relators
// overrides) without mutating the process-wide Config every other caller
// still shares.
func (c *Config) With(opts ...Option) *Config {
	cfg := *c
	for _, opt := range opts {
		opt(&cfg)
	}
	return &cfg
}

// New builds an immutable Config from defaults plus any supplied options.
func New(opts ...Option) *Config {
	cfg := &Config{
		colors: Colors{
			Basic:       "#CCCCCC",
			Object:      "#6699CC",
			Relator:     "#CC9966",
			Mode:        "#99CC66",
			Enumeration: "#CCCC66",
			Event:       "#CC6666",
		},
		symbols: Symbols{
			Basic:       "rectangle",
			Relator:     "hexagon",
			Mode:        "diamond",
			Enumeration: "ellipse",
			Event:       "triangle",
		},
		defaultWidth:    120,
		defaultHeight:   60,
		attributeHeight: 20,
		defaultX:        50,
		defaultY:        50,
		strokeWidth:     1,
		strokeDasharray: 0,
		colorVariation:  40,
		indexDelimiter:  "#",
		minRelatorsDegree: 2,
		idLength:          16,
		longNames:         false,
		multRelations:     false,
		keepRelators:      false,
	}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// WithColors overrides the display color table.
func WithColors(c Colors) Option { return func(cfg *Config) { cfg.colors = c } }

// WithSymbols overrides the display symbol table.
func WithSymbols(s Symbols) Option { return func(cfg *Config) { cfg.symbols = s } }

// WithDefaultSize overrides default entity view width/height.
func WithDefaultSize(width, height int) Option {
	return func(cfg *Config) { cfg.defaultWidth = width; cfg.defaultHeight = height }
}

// WithAttributeHeight overrides the per-attribute view height increment.
func WithAttributeHeight(h int) Option { return func(cfg *Config) { cfg.attributeHeight = h } }

// WithDefaultOrigin overrides the default placement coordinates for newly
// created views.
func WithDefaultOrigin(x, y int) Option {
	return func(cfg *Config) { cfg.defaultX = x; cfg.defaultY = y }
}

// WithStroke overrides the display link stroke width/dasharray.
func WithStroke(width, dasharray int) Option {
	return func(cfg *Config) { cfg.strokeWidth = width; cfg.strokeDasharray = dasharray }
}

// WithColorVariation overrides the per-channel brightness offset applied by
// the role/phase/subkind shaded color variant.
func WithColorVariation(n int) Option { return func(cfg *Config) { cfg.colorVariation = n } }

// WithIndexDelimiter overrides the index key delimiter (default "#").
func WithIndexDelimiter(d string) Option { return func(cfg *Config) { cfg.indexDelimiter = d } }

// WithMinRelatorsDegree overrides the minimum incident-edge degree a
// relator must retain to survive abstract_aspect without being folded away.
func WithMinRelatorsDegree(n int) Option { return func(cfg *Config) { cfg.minRelatorsDegree = n } }

// WithIDLength overrides the length of generated element ids.
func WithIDLength(n int) Option { return func(cfg *Config) { cfg.idLength = n } }

// WithLongNames toggles whether abstraction operations concatenate
// contributing entity names into long synthesized names.
func WithLongNames(v bool) Option { return func(cfg *Config) { cfg.longNames = v } }

// WithMultRelations toggles the stricter parallel-relation match used by
// move_relation: when true, a same-pair (either direction) relation counts
// as parallel only if it is unnamed or shares a name token; when false, any
// same-pair relation counts.
func WithMultRelations(v bool) Option { return func(cfg *Config) { cfg.multRelations = v } }

// WithKeepRelators toggles whether abstract_aspect preserves relators that
// still meet MinRelatorsDegree instead of always collapsing them.
func WithKeepRelators(v bool) Option { return func(cfg *Config) { cfg.keepRelators = v } }

// Colors returns the configured display color table.
func (c *Config) Colors() Colors { return c.colors }

// Symbols returns the configured display symbol table.
func (c *Config) Symbols() Symbols { return c.symbols }

// DefaultSize returns the default entity view width and height.
func (c *Config) DefaultSize() (width, height int) { return c.defaultWidth, c.defaultHeight }

// AttributeHeight returns the per-attribute view height increment.
func (c *Config) AttributeHeight() int { return c.attributeHeight }

// DefaultOrigin returns the default placement coordinates for new views.
func (c *Config) DefaultOrigin() (x, y int) { return c.defaultX, c.defaultY }

// Stroke returns the display link stroke width and dasharray.
func (c *Config) Stroke() (width, dasharray int) { return c.strokeWidth, c.strokeDasharray }

// ColorVariation returns the per-channel brightness offset applied by the
// role/phase/subkind shaded color variant.
func (c *Config) ColorVariation() int { return c.colorVariation }

// IndexDelimiter returns the index key delimiter.
func (c *Config) IndexDelimiter() string { return c.indexDelimiter }

// MinRelatorsDegree returns the minimum incident-edge degree a relator must
// retain to survive abstract_aspect.
func (c *Config) MinRelatorsDegree() int { return c.minRelatorsDegree }

// IDLength returns the length of generated element ids.
func (c *Config) IDLength() int { return c.idLength }

// LongNames reports whether abstraction synthesizes long concatenated names.
func (c *Config) LongNames() bool { return c.longNames }

// MultRelations reports whether move_relation uses the stricter parallel
// match rule (unnamed or shared name token required).
func (c *Config) MultRelations() bool { return c.multRelations }

// KeepRelators reports whether abstract_aspect preserves well-connected
// relators.
func (c *Config) KeepRelators() bool { return c.keepRelators }
