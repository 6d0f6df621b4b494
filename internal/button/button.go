//go:build pi

package button

import (
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/host/v3"
)

// InitButton sets up the push button on the named GPIO pin and returns its
// event channel.
func InitButton(pin string) (<-chan ButtonEvent, error) {
	log.Infof("Initializing button handler on %s", pin)
	if _, err := host.Init(); err != nil {
		return nil, err
	}
	button := gpioreg.ByName(pin)
	if button == nil {
		return nil, fmt.Errorf("no such gpio pin %q", pin)
	}
	if err := button.In(gpio.PullUp, gpio.BothEdges); err != nil {
		return nil, err
	}

	c := make(chan ButtonEvent, 5)
	go handleButton(button, c)
	return c, nil
}

func handleButton(b gpio.PinIO, c chan ButtonEvent) {
	last := b.Read()
	for {
		// wait for the edge
		if !b.WaitForEdge(time.Second) {
			continue
		}

		// debounce
		l := b.Read()
		if l == last {
			continue
		}

		time.Sleep(15 * time.Millisecond)
		if l == b.Read() {
			last = l
			c <- ButtonEvent{
				Pressed: l == gpio.Low,
			}
		}
	}
}
