package button

import (
	"context"
	"fmt"

	"github.com/callebjorkell/lightshow/internal/player"
	log "github.com/sirupsen/logrus"
)

type ButtonEvent struct {
	Pressed bool
}

func (b ButtonEvent) String() string {
	action := "pressed"
	if !b.Pressed {
		action = "released"
	}
	return fmt.Sprintf("Button was %v", action)
}

// Forward turns every press into a "next" command for s until ctx is done or
// the event channel is closed. Releases are ignored.
func Forward(ctx context.Context, events <-chan ButtonEvent, s player.Sender) {
	for {
		select {
		case <-ctx.Done():
			return
		case e, ok := <-events:
			if !ok {
				return
			}
			log.Debugln(e)
			if e.Pressed {
				s.Send(player.Command{Kind: player.KindNext})
			}
		}
	}
}
