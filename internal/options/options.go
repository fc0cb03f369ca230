// Package options contains the program options.
package options

// Positional contains positional arguments.
type Positional struct {
	File string `arg:"positional" usage:"ROM file to run"`
}

// Parameters contains file path options.
type Parameters struct {
	Input string `flag:"i" usage:"input ROM file"`
	Wav   string `flag:"wav" usage:"record the buzzer to a .wav file"`
}

// Flags contains behavior options.
type Flags struct {
	Frontend  string `flag:"frontend" usage:"frontend to use: sdl, terminal, headless" default:"sdl"`
	Statsview bool   `flag:"statsview" usage:"launch the runtime statistics server"`
	Debug     bool   `flag:"debug" usage:"enable debug logging"`
	Quiet     bool   `flag:"q" usage:"quiet mode"`
}

// DisplayFlags contains display options.
type DisplayFlags struct {
	Scale      int    `flag:"scale" usage:"window pixels per CHIP-8 pixel" default:"20"`
	Foreground string `flag:"fg" usage:"lit pixel colour as RRGGBB"`
	Background string `flag:"bg" usage:"unlit pixel colour as RRGGBB"`
}

// MachineFlags contains emulation options.
type MachineFlags struct {
	CyclesPerFrame int   `flag:"cycles" usage:"instructions executed per frame" default:"9"`
	FrameRate      int   `flag:"fps" usage:"frames per second" default:"60"`
	Frames         int   `flag:"frames" usage:"frames to run with the headless frontend, 0 runs forever" default:"600"`
	Seed           int64 `flag:"seed" usage:"random generator seed, 0 uses a time based seed"`
}

// Program options of the emulator.
type Program struct {
	Parameters
	Flags
	DisplayFlags
	MachineFlags
}
