package domain

// Mood is the decorative face shown under a countdown.
type Mood int

const (
	MoodNeutral Mood = iota
	MoodHappy
	MoodSad
	MoodCelebrating
)

// Face returns the kaomoji for the mood.
func (m Mood) Face() string {
	switch m {
	case MoodHappy:
		return "(｡♥‿♥｡)"
	case MoodSad:
		return "(｡•́︿•̀｡)"
	case MoodCelebrating:
		return "(✿◕‿◕)"
	default:
		return "(｡◕‿◕｡)"
	}
}

// String returns the mood name used in logs.
func (m Mood) String() string {
	switch m {
	case MoodHappy:
		return "happy"
	case MoodSad:
		return "sad"
	case MoodCelebrating:
		return "celebrating"
	default:
		return "neutral"
	}
}
