package buzzer

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-audio/wav"
	"github.com/retroenv/retrogolib/assert"
)

func TestWaveLevels(t *testing.T) {
	w := NewWave(SampleRate)
	buf := make([]byte, SampleRate/Frequency)
	w.Fill(buf)

	// first half of the period is high, second half low
	assert.Equal(t, byte(159), buf[0])
	assert.Equal(t, byte(95), buf[len(buf)-1])

	for _, sample := range buf {
		assert.True(t, sample == 159 || sample == 95)
	}
}

func TestWavePhaseContinues(t *testing.T) {
	whole := make([]byte, 1000)
	NewWave(SampleRate).Fill(whole)

	w := NewWave(SampleRate)
	first := make([]byte, 333)
	second := make([]byte, 667)
	w.Fill(first)
	w.Fill(second)

	assert.Equal(t, whole, append(first, second...))
}

func TestFillSilence(t *testing.T) {
	buf := make([]byte, 16)
	FillSilence(buf)
	for _, sample := range buf {
		assert.Equal(t, byte(Silence), sample)
	}
}

func TestSamplesPerFrame(t *testing.T) {
	assert.Equal(t, 735, SamplesPerFrame(SampleRate, 60))
	assert.Equal(t, 882, SamplesPerFrame(SampleRate, 50))
	assert.Equal(t, 0, SamplesPerFrame(SampleRate, 0))
}

func TestRecorder(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tone.wav")

	rec, err := NewRecorder(path, 60)
	assert.NoError(t, err)
	assert.NoError(t, rec.SetSound(true))
	assert.NoError(t, rec.SetSound(false))
	assert.NoError(t, rec.SetSound(true))
	assert.NoError(t, rec.Close())

	file, err := os.Open(path)
	assert.NoError(t, err)
	defer func() { _ = file.Close() }()

	dec := wav.NewDecoder(file)
	assert.True(t, dec.IsValidFile())

	buf, err := dec.FullPCMBuffer()
	assert.NoError(t, err)
	assert.Equal(t, 3*SamplesPerFrame(SampleRate, 60), len(buf.Data))
	assert.Equal(t, uint32(SampleRate), dec.SampleRate)
}

func TestRecorderInvalidFrameRate(t *testing.T) {
	_, err := NewRecorder(filepath.Join(t.TempDir(), "tone.wav"), 0)
	assert.Error(t, err)
}
