package main

import (
	"sync"

	"github.com/eiannone/keyboard"
)

// inputState is the set of keys the demo loop cares about on a given frame.
type inputState struct {
	OrbitLeft   bool
	OrbitRight  bool
	OrbitUp     bool
	OrbitDown   bool
	ZoomIn      bool
	ZoomOut     bool
	SimplifyUp  bool // raise target quality / triangle count
	SimplifyDn  bool // lower target quality / triangle count
	ToggleHeat  bool
	Quit        bool
}

// keyReader polls the terminal for keypresses on its own goroutine,
// latching each into a set of flags that the render loop samples once per
// tick, for the handful of keys this demo binds.
type keyReader struct {
	mu      sync.RWMutex
	keys    map[rune]bool
	esc     bool
	running bool
	stop    chan struct{}
}

func newKeyReader() *keyReader {
	return &keyReader{keys: make(map[rune]bool), stop: make(chan struct{})}
}

func (r *keyReader) Start() error {
	if r.running {
		return nil
	}
	if err := keyboard.Open(); err != nil {
		return err
	}
	r.running = true

	go func() {
		for {
			select {
			case <-r.stop:
				return
			default:
				char, key, err := keyboard.GetKey()
				if err != nil {
					continue
				}
				r.mu.Lock()
				if char != 0 {
					r.keys[char] = true
				}
				switch key {
				case keyboard.KeyEsc:
					r.esc = true
				case keyboard.KeyArrowLeft:
					r.keys['j'] = true
				case keyboard.KeyArrowRight:
					r.keys['l'] = true
				case keyboard.KeyArrowUp:
					r.keys['i'] = true
				case keyboard.KeyArrowDown:
					r.keys['k'] = true
				}
				r.mu.Unlock()
			}
		}
	}()
	return nil
}

func (r *keyReader) Stop() {
	if !r.running {
		return
	}
	r.running = false
	close(r.stop)
	keyboard.Close()
}

func (r *keyReader) State() inputState {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return inputState{
		OrbitLeft:  r.keys['j'] || r.keys['J'],
		OrbitRight: r.keys['l'] || r.keys['L'],
		OrbitUp:    r.keys['i'] || r.keys['I'],
		OrbitDown:  r.keys['k'] || r.keys['K'],
		ZoomIn:     r.keys['w'] || r.keys['W'],
		ZoomOut:    r.keys['s'] || r.keys['S'],
		SimplifyUp: r.keys['+'] || r.keys['='],
		SimplifyDn: r.keys['-'] || r.keys['_'],
		ToggleHeat: r.keys['h'] || r.keys['H'],
		Quit:       r.esc || r.keys['x'] || r.keys['X'],
	}
}

func (r *keyReader) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.keys = make(map[rune]bool)
}
