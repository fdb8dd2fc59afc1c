package record

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"
	"github.com/lixenwraith/neon-snake/status"
	"github.com/vmihailenco/msgpack/v5"
)

// Format selects the on-disk frame encoding
type Format string

const (
	FormatJSONL   Format = "jsonl"
	FormatMsgpack Format = "msgpack"
)

// ParseFormat validates a format name
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatJSONL, FormatMsgpack:
		return Format(s), nil
	}
	return "", fmt.Errorf("unknown record format %q", s)
}

type encoder interface {
	Encode(v any) error
}

// Recorder writes frames on its own goroutine
// Record never blocks; frames arriving while the buffer is full are dropped and counted
type Recorder struct {
	id     string
	path   string
	file   *os.File
	buf    *bufio.Writer
	enc    encoder
	frames chan Frame

	wg      sync.WaitGroup
	mu      sync.RWMutex // guards frames against send after close
	closed  bool
	errOnce sync.Once
	err     error

	dropped *atomic.Int64
}

// NewRecorder creates dir if needed and opens <dir>/<session-uuid>.<format>
func NewRecorder(dir string, format Format, buffer int, reg *status.Registry) (*Recorder, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create record dir: %w", err)
	}
	id := uuid.New().String()
	path := filepath.Join(dir, id+"."+string(format))
	file, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("create record file: %w", err)
	}

	r := &Recorder{
		id:      id,
		path:    path,
		file:    file,
		buf:     bufio.NewWriter(file),
		frames:  make(chan Frame, buffer),
		dropped: reg.Ints.Get(status.KeyRecorderDropped),
	}
	switch format {
	case FormatMsgpack:
		r.enc = msgpack.NewEncoder(r.buf)
	default:
		r.enc = json.NewEncoder(r.buf)
	}

	r.wg.Add(1)
	go r.loop()
	return r, nil
}

// ID returns the session id stamped on every frame
func (r *Recorder) ID() string { return r.id }

// Path returns the output file
func (r *Recorder) Path() string { return r.path }

// Record queues a frame without blocking
func (r *Recorder) Record(f Frame) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.closed {
		return
	}
	f.Session = r.id
	select {
	case r.frames <- f:
	default:
		r.dropped.Add(1)
	}
}

// Close drains queued frames, flushes and closes the file
func (r *Recorder) Close() error {
	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return nil
	}
	r.closed = true
	close(r.frames)
	r.mu.Unlock()

	r.wg.Wait()

	err := r.buf.Flush()
	if cerr := r.file.Close(); err == nil {
		err = cerr
	}
	return errors.Join(r.err, err)
}

func (r *Recorder) loop() {
	defer r.wg.Done()
	for f := range r.frames {
		if err := r.enc.Encode(&f); err != nil {
			r.errOnce.Do(func() {
				r.err = fmt.Errorf("encode frame: %w", err)
				log.Printf("recorder: %v", r.err)
			})
		}
	}
}

// ReadFrames decodes a recording written by Recorder
func ReadFrames(path string) ([]Frame, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	type decoder interface {
		Decode(v any) error
	}
	var dec decoder
	if filepath.Ext(path) == "."+string(FormatMsgpack) {
		dec = msgpack.NewDecoder(bufio.NewReader(file))
	} else {
		dec = json.NewDecoder(bufio.NewReader(file))
	}

	var frames []Frame
	for {
		var f Frame
		if err := dec.Decode(&f); err != nil {
			if errors.Is(err, io.EOF) {
				return frames, nil
			}
			return frames, fmt.Errorf("decode %s: %w", path, err)
		}
		frames = append(frames, f)
	}
}
