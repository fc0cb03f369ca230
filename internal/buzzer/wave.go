// Package buzzer generates the CHIP-8 tone and provides sound sinks for it.
package buzzer

// Tone parameters.
const (
	// SampleRate is the output sample rate in Hz.
	SampleRate = 44100

	// Frequency of the square wave tone in Hz.
	Frequency = 150

	// Volume of the tone relative to the maximum amplitude.
	Volume = 0.25

	// Silence is the unsigned 8-bit sample value of no signal.
	Silence = 127
)

// Wave is a square wave generator producing unsigned 8-bit mono samples.
// The phase continues across calls so that consecutive buffers join up
// without audible clicks.
type Wave struct {
	phase    float64
	phaseInc float64
	high     byte
	low      byte
}

// NewWave returns a square wave generator for the given sample rate.
func NewWave(sampleRate int) *Wave {
	halfMax := 255.0 / 2
	return &Wave{
		phaseInc: Frequency / float64(sampleRate),
		high:     byte(halfMax*Volume + halfMax),
		low:      byte(halfMax*-Volume + halfMax),
	}
}

// Fill writes the next len(buf) samples of the tone into buf.
func (w *Wave) Fill(buf []byte) {
	for i := range buf {
		if w.phase <= 0.5 {
			buf[i] = w.high
		} else {
			buf[i] = w.low
		}
		w.phase += w.phaseInc
		if w.phase >= 1.0 {
			w.phase -= 1.0
		}
	}
}

// FillSilence writes silence into buf.
func FillSilence(buf []byte) {
	for i := range buf {
		buf[i] = Silence
	}
}

// SamplesPerFrame returns the number of samples covering one frame at the given frame rate.
func SamplesPerFrame(sampleRate, frameRate int) int {
	if frameRate <= 0 {
		return 0
	}
	return sampleRate / frameRate
}
