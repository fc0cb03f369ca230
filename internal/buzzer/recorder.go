package buzzer

import (
	"fmt"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

const (
	wavBitDepth = 8
	wavChannels = 1
	wavFormat   = 1 // PCM
)

// Recorder writes the tone to a WAV file, one frame of samples per SetSound call.
type Recorder struct {
	file    *os.File
	encoder *wav.Encoder
	wave    *Wave

	frame  []byte
	buffer *audio.IntBuffer
}

// NewRecorder creates the WAV file at path. frameRate is the number of
// SetSound calls per second of audio.
func NewRecorder(path string, frameRate int) (*Recorder, error) {
	samples := SamplesPerFrame(SampleRate, frameRate)
	if samples == 0 {
		return nil, fmt.Errorf("invalid frame rate %d", frameRate)
	}

	file, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("creating file '%s': %w", path, err)
	}

	return &Recorder{
		file:    file,
		encoder: wav.NewEncoder(file, SampleRate, wavBitDepth, wavChannels, wavFormat),
		wave:    NewWave(SampleRate),
		frame:   make([]byte, samples),
		buffer: &audio.IntBuffer{
			Format: &audio.Format{
				NumChannels: wavChannels,
				SampleRate:  SampleRate,
			},
			Data:           make([]int, samples),
			SourceBitDepth: wavBitDepth,
		},
	}, nil
}

// SetSound appends one frame of tone or silence to the recording.
func (r *Recorder) SetSound(playing bool) error {
	if playing {
		r.wave.Fill(r.frame)
	} else {
		FillSilence(r.frame)
	}

	for i, sample := range r.frame {
		r.buffer.Data[i] = int(sample)
	}
	if err := r.encoder.Write(r.buffer); err != nil {
		return fmt.Errorf("writing samples: %w", err)
	}
	return nil
}

// Close finalizes the WAV header and closes the file.
func (r *Recorder) Close() error {
	if err := r.encoder.Close(); err != nil {
		_ = r.file.Close()
		return fmt.Errorf("closing encoder: %w", err)
	}
	if err := r.file.Close(); err != nil {
		return fmt.Errorf("closing file: %w", err)
	}
	return nil
}
