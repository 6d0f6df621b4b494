// Package remote accepts player commands over MQTT. Every message on the
// command topic is one command in its text form, e.g. "start 2".
package remote

import (
	"fmt"
	"strings"
	"time"

	"github.com/callebjorkell/lightshow/internal/config"
	"github.com/callebjorkell/lightshow/internal/player"
	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

const (
	clientPrefix = "lightshow-"
	keepAlive    = 30 * time.Second
	pingTimeout  = 5 * time.Second
)

// Subscriber is the part of an mqtt.Client needed to listen for commands.
type Subscriber interface {
	Subscribe(topic string, qos byte, callback mqtt.MessageHandler) mqtt.Token
}

// NewClientOptions builds the broker options for cfg. onConnect runs after
// every (re)connect, which is where subscriptions belong.
func NewClientOptions(cfg config.Mqtt, onConnect mqtt.OnConnectHandler) *mqtt.ClientOptions {
	return mqtt.NewClientOptions().
		AddBroker(cfg.URL).
		SetClientID(clientPrefix + uuid.NewString()).
		SetUsername(cfg.Username).
		SetPassword(cfg.Password).
		SetKeepAlive(keepAlive).
		SetPingTimeout(pingTimeout).
		SetAutoReconnect(true).
		SetOnConnectHandler(onConnect).
		SetConnectionLostHandler(func(_ mqtt.Client, err error) {
			log.Warnf("Lost connection to %s: %v", cfg.URL, err)
		})
}

// NewClient creates an unconnected client for cfg.
func NewClient(cfg config.Mqtt, onConnect mqtt.OnConnectHandler) mqtt.Client {
	mqtt.ERROR = log.WithField("component", "mqtt")
	return mqtt.NewClient(NewClientOptions(cfg, onConnect))
}

// Connect connects the client and waits for the broker to answer.
func Connect(client mqtt.Client) error {
	token := client.Connect()
	if token.Wait() && token.Error() != nil {
		return fmt.Errorf("unable to connect to broker: %w", token.Error())
	}
	return nil
}

// Handler parses each message payload and hands the command to s. Payloads
// that are not commands are logged and dropped.
func Handler(s player.Sender) mqtt.MessageHandler {
	return func(_ mqtt.Client, msg mqtt.Message) {
		text := strings.TrimSpace(string(msg.Payload()))
		log.Debugf("Received %q on %s", text, msg.Topic())

		cmd, err := player.ParseCommand(text)
		if err != nil {
			log.Warnf("Ignoring message on %s: %v", msg.Topic(), err)
			return
		}
		if !s.Send(cmd) {
			log.Warnf("Player busy, dropped %q", cmd)
		}
	}
}

// Subscribe listens for commands on topic and forwards them to s.
func Subscribe(c Subscriber, topic string, s player.Sender) error {
	token := c.Subscribe(topic, 1, Handler(s))
	if token.Wait() && token.Error() != nil {
		return fmt.Errorf("unable to subscribe to %s: %w", topic, token.Error())
	}
	log.Infof("Listening for commands on %s", topic)
	return nil
}
