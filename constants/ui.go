package constants

// Canvas Dimensions
const (
	// CanvasRows is the default grid height in cells
	CanvasRows = 24

	// CanvasCols is the default grid width in cells
	CanvasCols = 32

	// CellWidth is the number of terminal columns one grid cell occupies
	// Two columns fit wide glyphs (CJK, emoji) without shifting the row
	CellWidth = 2
)

// UI Layout Constants
const (
	// HeaderHeight is the number of rows above the grid (title + subtitle + gap)
	HeaderHeight = 3

	// ControlsGap is the number of empty rows between grid and controls bar
	ControlsGap = 1

	// ButtonGap is the horizontal spacing between control buttons
	ButtonGap = 2

	// Title and subtitle text
	TitleText    = "ASCII Harmony Draw"
	SubtitleText = "Click and drag to weave art and music."

	// Button labels (padded with a space on each side when drawn)
	ButtonSwitchPattern = "Switch Pattern"
	ButtonClear         = "Clear"
	ButtonEnableAudio   = "Enable Audio"

	// Audio status text
	AudioStatusOn  = "♪ audio on"
	AudioStatusOff = "audio off"

	// HelpText lists the keyboard bindings under the status line
	HelpText = "p/tab switch · c clear · a audio · arrows+space draw · q quit"
)

// SubtitleDim is the blend factor from base color toward background for the subtitle
const SubtitleDim = 0.3
