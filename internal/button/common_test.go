package button

import (
	"context"
	"testing"

	"github.com/callebjorkell/lightshow/internal/player"
	"github.com/stretchr/testify/assert"
	"go.uber.org/goleak"
)

type sender struct {
	commands []player.Command
}

func (s *sender) Send(cmd player.Command) bool {
	s.commands = append(s.commands, cmd)
	return true
}

func TestButtonEventString(t *testing.T) {
	assert.Equal(t, "Button was pressed", ButtonEvent{Pressed: true}.String())
	assert.Equal(t, "Button was released", ButtonEvent{}.String())
}

func TestForward(t *testing.T) {
	defer goleak.VerifyNone(t)

	events := make(chan ButtonEvent, 4)
	events <- ButtonEvent{Pressed: true}
	events <- ButtonEvent{Pressed: false}
	events <- ButtonEvent{Pressed: true}
	close(events)

	s := &sender{}
	Forward(context.Background(), events, s)
	assert.Equal(t, []player.Command{{Kind: player.KindNext}, {Kind: player.KindNext}}, s.commands)
}

func TestForwardStopsOnCancel(t *testing.T) {
	defer goleak.VerifyNone(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	s := &sender{}
	Forward(ctx, make(chan ButtonEvent), s)
	assert.Empty(t, s.commands)
}
