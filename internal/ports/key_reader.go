package ports

// KeyReader blocks until a single key is pressed and returns it without echo.
// Implementations must leave the terminal in the state they found it.
type KeyReader interface {
	ReadKey() (rune, error)
}

// LineReader blocks until a full line of input is available.
// The returned line has its trailing newline removed.
type LineReader interface {
	ReadLine() (string, error)
}
