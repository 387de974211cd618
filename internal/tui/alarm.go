package tui

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

// Alarm sounds when an infection is announced.
type Alarm interface {
	Play()
}

// Silent is an Alarm that does nothing.
type Silent struct{}

func (Silent) Play() {}

const alarmRate = beep.SampleRate(44100)

type toneAlarm struct{}

// NewToneAlarm initialises the speaker and returns a two-tone alarm.
// Callers should fall back to Silent on error; the UI runs without sound.
func NewToneAlarm() (Alarm, error) {
	if err := speaker.Init(alarmRate, alarmRate.N(time.Second/10)); err != nil {
		return nil, err
	}
	return toneAlarm{}, nil
}

func (toneAlarm) Play() {
	hi, err := generators.SineTone(alarmRate, 880)
	if err != nil {
		return
	}
	lo, err := generators.SineTone(alarmRate, 440)
	if err != nil {
		return
	}
	step := alarmRate.N(180 * time.Millisecond)
	speaker.Play(beep.Seq(beep.Take(step, hi), beep.Take(step, lo), beep.Take(step, hi)))
}
