package config

// DifficultyPreset is a shorthand accepted wherever a preset ID is expected.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// PresetForDifficulty returns the preset ID a difficulty shorthand maps to.
func PresetForDifficulty(d DifficultyPreset) (string, bool) {
	switch d {
	case DifficultyEasy:
		return "beginner", true
	case DifficultyNormal:
		return "intermediate", true
	case DifficultyHard:
		return "advanced", true
	default:
		return "", false
	}
}
