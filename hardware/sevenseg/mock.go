package sevenseg

import (
	"fmt"
	"sync"
)

// MockOutput records every update, for tests and running without hardware.
type MockOutput struct {
	mu      sync.Mutex
	lit     [Digits]bool
	pattern [Digits]Pattern
	shows   int
	Err     error
}

var _ Output = &MockOutput{}

func (self *MockOutput) Show(t Toggle, p Pattern) error {
	self.mu.Lock()
	defer self.mu.Unlock()
	if self.Err != nil {
		return self.Err
	}
	self.lit[t.Off] = false
	self.lit[t.On] = true
	self.pattern[t.On] = p
	self.shows++
	return nil
}

func (self *MockOutput) Blank() error {
	self.mu.Lock()
	defer self.mu.Unlock()
	self.lit = [Digits]bool{}
	return nil
}

func (self *MockOutput) Close() error { return self.Blank() }

func (self *MockOutput) Lit() []Position {
	self.mu.Lock()
	defer self.mu.Unlock()
	ps := make([]Position, 0, Digits)
	for i, on := range self.lit {
		if on {
			ps = append(ps, Position(i))
		}
	}
	return ps
}

// Patterns is last pattern shown on each digit.
func (self *MockOutput) Patterns() [Digits]Pattern {
	self.mu.Lock()
	defer self.mu.Unlock()
	return self.pattern
}

func (self *MockOutput) Shows() int {
	self.mu.Lock()
	defer self.mu.Unlock()
	return self.shows
}

func (self *MockOutput) String() string {
	self.mu.Lock()
	defer self.mu.Unlock()
	return fmt.Sprintf("lit=%v patterns=%02x", self.lit, self.pattern)
}
