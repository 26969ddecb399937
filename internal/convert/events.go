package convert

// Level indicates the severity/type of an event message.
type Level int

const (
	LevelInfo Level = iota
	LevelVerbose
	LevelWarning
	LevelError
	LevelSuccess
)

// Event is a progress update emitted while conversions run.
type Event struct {
	Message string
	Level   Level

	// Result accompanies completion events so interfaces can shape
	// their notices (duration, wording) without re-deriving the
	// outcome. Nil on plain progress messages.
	Result *Result
}
