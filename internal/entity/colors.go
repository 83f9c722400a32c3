package entity

// Color is a presentation hint attached to entities and log messages.
// The simulation never branches on it; renderers map tags to whatever
// palette they support.
type Color string

const (
	ColorWhite            Color = "white"
	ColorRed              Color = "red"
	ColorDarkRed          Color = "dark-red"
	ColorGreen            Color = "green"
	ColorDesaturatedGreen Color = "desaturated-green"
	ColorDarkerGreen      Color = "darker-green"
	ColorLightGreen       Color = "light-green"
	ColorYellow           Color = "yellow"
	ColorLightYellow      Color = "light-yellow"
	ColorViolet           Color = "violet"
	ColorLightViolet      Color = "light-violet"
	ColorLightBlue        Color = "light-blue"
	ColorLightCyan        Color = "light-cyan"
	ColorOrange           Color = "orange"
	ColorDarkerOrange     Color = "darker-orange"
	ColorSky              Color = "sky"
)
