package host

import (
	"context"
	"errors"
	"testing"

	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
)

var errMachine = errors.New("machine failure")

type fakeMachine struct {
	ticks      int
	timerTicks int
	failAt     int
	sound      bool
	keys       map[uint8]bool
	buffer     []bool
}

func newFakeMachine() *fakeMachine {
	return &fakeMachine{
		keys:   map[uint8]bool{},
		buffer: make([]bool, 4),
	}
}

func (m *fakeMachine) PressKey(key uint8, pressed bool) { m.keys[key] = pressed }
func (m *fakeMachine) TickTimers()                      { m.timerTicks++ }
func (m *fakeMachine) ScreenBuffer() []bool             { return m.buffer }
func (m *fakeMachine) IsSoundPlaying() bool             { return m.sound }

func (m *fakeMachine) Tick() error {
	m.ticks++
	if m.failAt > 0 && m.ticks == m.failAt {
		return errMachine
	}
	return nil
}

// fakeFrontend quits after the given number of polls and presses key 3 on the first poll.
type fakeFrontend struct {
	quitAfter int
	polls     int
	renders   int
	sounds    []bool
}

func (f *fakeFrontend) Poll(keys Keypad) (bool, error) {
	f.polls++
	if f.polls == 1 {
		keys.PressKey(3, true)
	}
	return f.quitAfter > 0 && f.polls > f.quitAfter, nil
}

func (f *fakeFrontend) Render([]bool) error {
	f.renders++
	return nil
}

func (f *fakeFrontend) Close() error { return nil }

// soundFrontend additionally acts as speaker.
type soundFrontend struct {
	fakeFrontend
}

func (f *soundFrontend) SetSound(playing bool) error {
	f.sounds = append(f.sounds, playing)
	return nil
}

func TestRunQuit(t *testing.T) {
	machine := newFakeMachine()
	frontend := &fakeFrontend{quitAfter: 5}
	runner := New(log.NewTestLogger(t), machine, frontend, Config{FrameRate: 1000, CyclesPerFrame: 9})

	assert.NoError(t, runner.Run(context.Background()))
	assert.Equal(t, 5, runner.Frames())
	assert.Equal(t, 5, machine.timerTicks)
	assert.Equal(t, 45, machine.ticks)
	assert.Equal(t, 5, frontend.renders)
	assert.True(t, machine.keys[3])
}

func TestRunDefaults(t *testing.T) {
	runner := New(log.NewTestLogger(t), newFakeMachine(), &fakeFrontend{}, Config{})
	assert.Equal(t, DefaultFrameRate, runner.cfg.FrameRate)
	assert.Equal(t, DefaultCyclesPerFrame, runner.cfg.CyclesPerFrame)
}

func TestRunMachineError(t *testing.T) {
	machine := newFakeMachine()
	machine.failAt = 12
	frontend := &fakeFrontend{}
	runner := New(log.NewTestLogger(t), machine, frontend, Config{FrameRate: 1000, CyclesPerFrame: 5})

	err := runner.Run(context.Background())
	assert.True(t, errors.Is(err, errMachine))
	assert.ErrorContains(t, err, "frame 2")
	assert.Equal(t, 2, frontend.renders)
}

func TestRunContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	runner := New(log.NewTestLogger(t), newFakeMachine(), &fakeFrontend{}, Config{FrameRate: 1})
	err := runner.Run(ctx)
	assert.True(t, errors.Is(err, context.Canceled))
	assert.Equal(t, 1, runner.Frames())
}

func TestRunSpeakers(t *testing.T) {
	machine := newFakeMachine()
	machine.sound = true
	frontend := &soundFrontend{fakeFrontend{quitAfter: 2}}
	extra := &soundFrontend{}

	runner := New(log.NewTestLogger(t), machine, frontend, Config{FrameRate: 1000, CyclesPerFrame: 1})
	runner.AddSpeaker(extra)

	assert.NoError(t, runner.Run(context.Background()))
	assert.Equal(t, []bool{true, true}, frontend.sounds)
	assert.Equal(t, []bool{true, true}, extra.sounds)
}
