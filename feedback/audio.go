package feedback

import (
	"bytes"
	"math"
	"sync"
	"time"

	"github.com/ebitengine/oto/v3"
	"github.com/zenith-app/zenith/log"
)

var logger = log.GetLogger("feedback")

const (
	sampleRate = 44100
	toneHz     = 880.0
)

// Global audio context singleton. oto allows only one context per process.
var (
	audioCtx     *oto.Context
	audioCtxOnce sync.Once
	audioReady   bool
)

func initAudioContext() {
	audioCtxOnce.Do(func() {
		op := &oto.NewContextOptions{
			SampleRate:   sampleRate,
			ChannelCount: 1,
			Format:       oto.FormatSignedInt16LE,
		}

		ctx, readyChan, err := oto.NewContext(op)
		if err != nil {
			logger.Warn().Err(err).Msg("audio unavailable, alarms will be silent")
			return
		}

		// Wait for the hardware audio device to be ready
		<-readyChan

		audioCtx = ctx
		audioReady = true
		logger.Info().Msg("audio context initialized")
	})
}

// chimePCM synthesizes one cycle of the alarm chime: two short beeps with a
// trailing rest, signed 16-bit mono PCM.
func chimePCM() []byte {
	beep := 250 * time.Millisecond
	gap := 120 * time.Millisecond
	rest := 600 * time.Millisecond

	var buf bytes.Buffer
	writeTone(&buf, beep, toneHz)
	writeSilence(&buf, gap)
	writeTone(&buf, beep, toneHz)
	writeSilence(&buf, rest)
	return buf.Bytes()
}

func writeTone(buf *bytes.Buffer, d time.Duration, hz float64) {
	n := int(float64(sampleRate) * d.Seconds())
	for i := 0; i < n; i++ {
		// Short fade in/out to avoid clicks at the tone edges
		env := 1.0
		fade := sampleRate / 100
		if i < fade {
			env = float64(i) / float64(fade)
		} else if n-i < fade {
			env = float64(n-i) / float64(fade)
		}
		v := int16(env * 0.4 * math.MaxInt16 * math.Sin(2*math.Pi*hz*float64(i)/sampleRate))
		buf.WriteByte(byte(v))
		buf.WriteByte(byte(v >> 8))
	}
}

func writeSilence(buf *bytes.Buffer, d time.Duration) {
	n := int(float64(sampleRate) * d.Seconds())
	buf.Write(make([]byte, n*2))
}

// player loops the chime until stopped
type player struct {
	stopChan chan struct{}
	stopOnce sync.Once
}

func newPlayer() *player {
	return &player{stopChan: make(chan struct{})}
}

func (p *player) loop(pcm []byte) {
	for {
		oplayer := audioCtx.NewPlayer(bytes.NewReader(pcm))
		oplayer.Play()

		for oplayer.IsPlaying() {
			select {
			case <-p.stopChan:
				oplayer.Pause()
				oplayer.Close()
				return
			case <-time.After(10 * time.Millisecond):
			}
		}

		if err := oplayer.Close(); err != nil {
			logger.Warn().Err(err).Msg("failed to close audio player")
		}

		select {
		case <-p.stopChan:
			return
		default:
		}
	}
}

func (p *player) stop() {
	p.stopOnce.Do(func() {
		close(p.stopChan)
	})
}
