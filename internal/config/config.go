package config

// Canvas settings
const (
	Size          = 500 // Side of the square symbol canvas in pixels
	MarginDivisor = 10  // Margin is Size / MarginDivisor on every edge
)

// Stroke settings (pixels)
const (
	MinStrokeWidth = 3
	MaxStrokeWidth = 6
)

// Uniqueness settings
const (
	HashSize    = 50  // Candidates are downsampled to HashSize x HashSize before hashing
	MaxAttempts = 100 // Consecutive duplicate candidates tolerated per symbol
)

// Batch settings
const (
	DefaultCount     = 28
	DefaultOutputDir = "generated_symbols"
	SymbolPrefix     = "symbol_"
	SymbolExt        = ".png"
)

// Appearance - default colours for generated symbols
const (
	// Ink colour (RGB values for strokes and decorations)
	InkColorR = 0
	InkColorG = 0
	InkColorB = 0

	// Background colour (RGB values for the canvas fill)
	BackgroundColorR = 255
	BackgroundColorG = 255
	BackgroundColorB = 255
)

// Keyboard layout
const (
	KeySize       = 60  // Key edge in pixels on the keyboard sheet
	KeySpacing    = 10  // Gap between keys
	KeyInset      = 10  // Symbol is drawn KeySize - KeyInset pixels wide
	SpaceBarWidth = 300 // Width of the space bar

	SheetWidth    = 1200
	SheetHeight   = 800
	SheetKeysTop  = 400 // Y position of the first key row
	SheetFontSize = 24
	TextWrapWidth = 50 // Characters per line in the text input area
)

// KeyRows is the letter layout, top row first. The space bar is handled
// separately and never maps to a symbol.
var KeyRows = []string{
	"QWERTYUIOP",
	"ASDFGHJKL",
	"ZXCVBNM",
}
