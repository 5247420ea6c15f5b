package pattern

// Note frequencies (Hz), equal temperament around A4 = 440
const (
	noteC4  = 261.63
	noteDb4 = 277.18
	noteD4  = 293.66
	noteEb4 = 311.13
	noteE4  = 329.63
	noteF4  = 349.23
	noteGb4 = 369.99
	noteG4  = 392.00
	noteAb4 = 415.30
	noteA4  = 440.00
	noteBb4 = 466.16
	noteC5  = 523.25
	noteD5  = 587.33
)

// Builtin returns the stock patterns in display order
func Builtin() []Pattern {
	return []Pattern{
		{
			Name:            "Cosmic Echoes",
			Characters:      []string{"✦", "✧", "✷", "✸", "✹"},
			Frequencies:     []float64{noteC4, noteE4, noteG4, noteA4, noteC5}, // C major pentatonic
			BaseColor:       "#fde047",
			BackgroundColor: "#312e81",
		},
		{
			Name:            "Forest Whispers",
			Characters:      []string{"☘", "✿", "❀", "⚘", "⸙", "🍂"},
			Frequencies:     []float64{noteA4, noteG4, noteE4, noteD4, noteC4, noteA4 * 0.5}, // A minor pentatonic, descending
			BaseColor:       "#f9a8d4",
			BackgroundColor: "#065f46",
		},
		{
			Name:            "Cyber Glyphs",
			Characters:      []string{"▰", "▱", "▷", "◁", "╳", "※"},
			Frequencies:     []float64{noteDb4, noteEb4, noteGb4, noteAb4, noteBb4, noteDb4 * 2}, // black keys
			BaseColor:       "#22d3ee",
			BackgroundColor: "#0f172a",
		},
		{
			Name:            "Ocean Dreams",
			Characters:      []string{"〰", "∽", "魚", "泡", "⚓"},
			Frequencies:     []float64{noteF4, noteG4, noteA4, noteC5, noteD5},
			BaseColor:       "#93c5fd",
			BackgroundColor: "#0369a1",
		},
	}
}

// Default returns a registry of the built-in patterns
func Default() *Registry {
	r, err := NewRegistry(Builtin()...)
	if err != nil {
		panic("pattern: invalid built-in set: " + err.Error())
	}
	return r
}
