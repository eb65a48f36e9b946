package platform

import (
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/effects"
	"github.com/faiface/beep/speaker"

	"pompano/internal/core/model"
)

const (
	alarmSampleRate = beep.SampleRate(44100)
	alarmFrequency  = 880.0
	alarmTone       = 400 * time.Millisecond
	alarmGap        = 250 * time.Millisecond
)

// Alarm plays the session-finished chime on the default audio device.
type Alarm struct {
	once    sync.Once
	initErr error
}

// NewAlarm returns an alarm; the speaker is opened on first use.
func NewAlarm() *Alarm {
	return &Alarm{}
}

// Play starts the chime for a finished session and returns immediately.
func (alarm *Alarm) Play(finished model.SessionType) error {
	alarm.once.Do(func() {
		alarm.initErr = speaker.Init(alarmSampleRate, alarmSampleRate.N(time.Second/10))
	})
	if alarm.initErr != nil {
		return fmt.Errorf("init speaker: %w", alarm.initErr)
	}
	speaker.Play(AlarmStreamer(finished))
	return nil
}

// AlarmRepeats returns how many chimes mark the end of a session: three
// after focus, one after a break.
func AlarmRepeats(finished model.SessionType) int {
	if finished == model.SessionWork {
		return 3
	}
	return 1
}

// AlarmStreamer builds the chime sequence for a finished session.
func AlarmStreamer(finished model.SessionType) beep.Streamer {
	repeats := AlarmRepeats(finished)
	parts := make([]beep.Streamer, 0, repeats*2)
	for i := 0; i < repeats; i++ {
		parts = append(parts,
			sineTone(alarmSampleRate, alarmFrequency, alarmSampleRate.N(alarmTone)),
			beep.Silence(alarmSampleRate.N(alarmGap)),
		)
	}
	return &effects.Volume{
		Streamer: beep.Seq(parts...),
		Base:     2,
		Volume:   -1,
	}
}

func sineTone(sampleRate beep.SampleRate, frequency float64, total int) beep.Streamer {
	position := 0
	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		if position >= total {
			return 0, false
		}
		n := 0
		for i := range samples {
			if position >= total {
				break
			}
			value := math.Sin(2 * math.Pi * frequency * float64(position) / float64(sampleRate))
			samples[i][0] = value
			samples[i][1] = value
			position++
			n++
		}
		return n, true
	})
}
