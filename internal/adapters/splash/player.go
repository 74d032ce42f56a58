// Package splash loads the startup animation shown before the main menu.
package splash

import (
	"bufio"
	"context"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/xvierd/botui/internal/ports"
)

// frameSeparator is a line that ends one frame and starts the next.
const frameSeparator = "---"

// ErrNoFrames is returned when an animation source holds no visible frame.
var ErrNoFrames = errors.New("animation has no frames")

//go:embed default.txt
var defaultAnimation string

// Player loads text-frame animations from a file, or the built-in one.
type Player struct {
	path     string
	interval time.Duration
}

// Ensure Player implements ports.SplashPlayer.
var _ ports.SplashPlayer = (*Player)(nil)

// New creates a player for the animation at path. An empty path plays the
// built-in animation.
func New(path string, interval time.Duration) *Player {
	return &Player{path: path, interval: interval}
}

// Load reads and parses the animation.
func (p *Player) Load(ctx context.Context) (*ports.Animation, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var r io.Reader
	if p.path == "" {
		r = strings.NewReader(defaultAnimation)
	} else {
		f, err := os.Open(p.path)
		if err != nil {
			return nil, fmt.Errorf("failed to open splash animation: %w", err)
		}
		defer f.Close()
		r = f
	}

	frames, err := ParseFrames(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse splash animation %q: %w", p.source(), err)
	}
	return &ports.Animation{Frames: frames, Interval: p.interval}, nil
}

func (p *Player) source() string {
	if p.path == "" {
		return "built-in"
	}
	return p.path
}

// ParseFrames splits r into frames separated by lines holding only "---".
// Frames with no visible content are dropped.
func ParseFrames(r io.Reader) ([]string, error) {
	var frames []string
	var current []string

	flush := func() {
		frame := strings.Join(current, "\n")
		if strings.TrimSpace(frame) != "" {
			frames = append(frames, strings.TrimRight(frame, "\n "))
		}
		current = current[:0]
	}

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == frameSeparator {
			flush()
			continue
		}
		current = append(current, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	flush()

	if len(frames) == 0 {
		return nil, ErrNoFrames
	}
	return frames, nil
}
