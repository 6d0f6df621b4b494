//go:build !pi

package button

import (
	"os"
	"os/signal"
	"syscall"

	log "github.com/sirupsen/logrus"
)

// InitButton simulates the push button: every SIGHUP is a press. The pin is
// only logged.
func InitButton(pin string) (<-chan ButtonEvent, error) {
	log.Infof("Initializing simulated button for %s, send SIGHUP to press", pin)

	c := make(chan ButtonEvent, 5)
	go simulateButton(c)
	return c, nil
}

func simulateButton(c chan<- ButtonEvent) {
	hupChan := make(chan os.Signal, 1)
	signal.Notify(hupChan, syscall.SIGHUP)

	for range hupChan {
		c <- ButtonEvent{
			Pressed: true,
		}
	}
}
