package event

type Cursor int

const (
	NoneCursor Cursor = iota // none means not set
	DefaultCursor
	PointerCursor
	MoveCursor
	NSResizeCursor
	WEResizeCursor
)
