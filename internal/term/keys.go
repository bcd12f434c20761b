package term

import (
	"io"

	"guessthelang/internal/game"
)

// KeyReader turns raw-mode input bytes into game keys. A background
// goroutine reads continuously so stale keystrokes accumulate in the
// channel and can be discarded when listening begins.
type KeyReader struct {
	events chan game.Key
}

var _ game.Input = (*KeyReader)(nil)

// NewKeyReader starts reading keys from r (os.Stdin in raw mode).
func NewKeyReader(r io.Reader) *KeyReader {
	kr := &KeyReader{events: make(chan game.Key, 16)}
	go kr.loop(r)
	return kr
}

func (kr *KeyReader) loop(r io.Reader) {
	buf := make([]byte, 1)
	for {
		n, err := r.Read(buf)
		if err != nil {
			close(kr.events)
			return
		}
		if n == 0 {
			continue
		}
		key, ok := keyFor(buf[0])
		if !ok {
			continue
		}
		select {
		case kr.events <- key:
		default:
			// Channel full means nobody is listening; drop it.
		}
	}
}

// keyFor maps a raw byte to a relevant key; everything else is ignored.
func keyFor(b byte) (game.Key, bool) {
	switch b {
	case '1':
		return game.KeyDigit1, true
	case '2':
		return game.KeyDigit2, true
	case '3':
		return game.KeyDigit3, true
	case '4':
		return game.KeyDigit4, true
	case 'q':
		return game.KeyQuit, true
	case 0x03: // ctrl+c
		return game.KeySkip, true
	}
	return 0, false
}

// ReadKey discards anything pressed before listening began, then blocks
// for the next relevant key.
func (kr *KeyReader) ReadKey() (game.Key, error) {
drain:
	for {
		select {
		case _, ok := <-kr.events:
			if !ok {
				return 0, io.EOF
			}
		default:
			break drain
		}
	}

	key, ok := <-kr.events
	if !ok {
		return 0, io.EOF
	}
	return key, nil
}
