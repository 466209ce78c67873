// vim: sw=8

package main

import (
	"io"
	"time"

	"github.com/DataDog/zstd"
	"github.com/paulbellamy/ratecounter"
)

const progressLogEvery = 10 * time.Second

// `zstdStream()` returns a reader that yields the zstd-compressed `src`.
// The copy goroutine propagates errors through the pipe, so that the
// consumer sees them as read errors.
func zstdStream(src io.Reader) io.Reader {
	zR, zW := io.Pipe()
	zout := zstd.NewWriter(zW)
	go func() {
		_, err := io.Copy(zout, src)
		if err2 := zout.Close(); err == nil {
			err = err2
		}
		_ = zW.CloseWithError(err)
	}()
	return zR
}

// `progressReader` counts the bytes read through it and periodically logs
// the total and a rolling per-second rate.
type progressReader struct {
	r       io.Reader
	total   int64
	counter *ratecounter.RateCounter
	last    time.Time
}

func newProgressReader(r io.Reader) *progressReader {
	return &progressReader{
		r:       r,
		counter: ratecounter.NewRateCounter(time.Second),
		last:    time.Now(),
	}
}

func (p *progressReader) Read(buf []byte) (int, error) {
	n, err := p.r.Read(buf)
	p.total += int64(n)
	p.counter.Incr(int64(n))
	if now := time.Now(); now.Sub(p.last) >= progressLogEvery {
		p.last = now
		lg.Infow(
			"Upload progress.",
			"bytes", p.total,
			"bytesPerSecond", p.counter.Rate(),
		)
	}
	return n, err
}

func (p *progressReader) Total() int64 {
	return p.total
}
