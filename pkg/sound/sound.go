package sound

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/ebitengine/oto/v3"
	"github.com/roffe/fancontroller/pkg/fanspeed"
)

const (
	sampleRate    = 44100
	channelCount  = 2
	clickDuration = 40 * time.Millisecond
	baseFrequency = 440.0
)

var (
	octx     *oto.Context
	initOnce sync.Once
	initErr  error
)

func Init() error {
	initOnce.Do(func() {
		op := &oto.NewContextOptions{
			SampleRate:   sampleRate,
			ChannelCount: channelCount,
			Format:       oto.FormatSignedInt16LE,
		}
		otoCtx, readyChan, err := oto.NewContext(op)
		if err != nil {
			initErr = fmt.Errorf("sound.Init failed: %w", err)
			return
		}
		select {
		case <-readyChan:
			octx = otoCtx
		case <-time.After(10 * time.Second):
			initErr = fmt.Errorf("sound.Init timed out")
		}
	})
	return initErr
}

// Frequency of the click for s. Each speed is a minor third above the
// previous one, Off sits an octave below Low.
func Frequency(s fanspeed.Speed) float64 {
	if s == fanspeed.Off {
		return baseFrequency / 2
	}
	return baseFrequency * math.Pow(2, float64(s.Ordinal()-1)/4)
}

// Click renders a short fading tone for s as signed 16 bit stereo PCM.
func Click(s fanspeed.Speed) []byte {
	n := int(sampleRate * clickDuration / time.Second)
	freq := Frequency(s)
	buf := bytes.NewBuffer(make([]byte, 0, n*channelCount*2))
	for i := 0; i < n; i++ {
		fade := 1 - float64(i)/float64(n)
		v := int16(math.Sin(2*math.Pi*freq*float64(i)/sampleRate) * fade * math.MaxInt16 * 0.3)
		for c := 0; c < channelCount; c++ {
			binary.Write(buf, binary.LittleEndian, v)
		}
	}
	return buf.Bytes()
}

// Play plays the click for s without waiting for it to finish.
func Play(s fanspeed.Speed) error {
	if err := Init(); err != nil {
		return err
	}
	p := octx.NewPlayer(bytes.NewReader(Click(s)))
	p.Play()
	go func() {
		for p.IsPlaying() {
			time.Sleep(10 * time.Millisecond)
		}
		p.Close()
	}()
	return nil
}
