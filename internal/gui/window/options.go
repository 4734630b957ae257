package window

// Options configures the desktop window
type Options struct {
	Title  string
	Width  float32
	Height float32
	Year   int
}
