package sound

import (
	"context"

	"github.com/hammamikhairi/sproutchef/internal/logger"
)

// Output plays PCM synchronously. *Player is the real implementation.
type Output interface {
	Play(pcm []byte) error
}

// BellOption configures the Bell.
type BellOption func(*Bell)

// WithQueueSize sets how many chimes may wait before new ones are dropped.
func WithQueueSize(n int) BellOption {
	return func(b *Bell) {
		b.queue = make(chan []byte, n)
	}
}

// Bell serializes chimes through one output so they never overlap.
// Ring never blocks; a full queue drops the chime.
type Bell struct {
	out   Output
	log   *logger.Logger
	queue chan []byte
}

// NewBell creates a chime dispatcher for out.
func NewBell(out Output, log *logger.Logger, opts ...BellOption) *Bell {
	b := &Bell{
		out:   out,
		log:   log,
		queue: make(chan []byte, 8),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Ring queues a chime.
func (b *Bell) Ring(c Chime, stars int) bool {
	select {
	case b.queue <- PCM(c, stars):
		return true
	default:
		b.log.Debug("bell: queue full, dropping %s chime", c)
		return false
	}
}

// Start begins the playback goroutine. Non-blocking.
func (b *Bell) Start(ctx context.Context) {
	go b.loop(ctx)
	b.log.Info("bell started")
}

func (b *Bell) loop(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			b.log.Info("bell stopped")
			return
		case pcm := <-b.queue:
			if err := b.out.Play(pcm); err != nil {
				b.log.Warn("bell: playback failed: %v", err)
			}
		}
	}
}
