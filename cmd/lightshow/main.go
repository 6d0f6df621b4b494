package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/callebjorkell/lightshow/internal/config"
	log "github.com/sirupsen/logrus"
	"gopkg.in/alecthomas/kingpin.v2"
)

var (
	app        = kingpin.New("lightshow", "LED strip show controller")
	debug      = app.Flag("debug", "Turn on debug logging.").Bool()
	configFile = app.Flag("config", "YAML configuration file.").Short('c').Default("lightshow.yaml").String()

	run = app.Command("run", "Run the player, taking commands from MQTT and the push button")

	show      = app.Command("show", "Play one show of the catalog")
	showIndex = show.Arg("index", "Index of the show, see list").Required().Int()

	fade         = app.Command("fade", "Fade the strip to a colour and hold it until interrupted")
	fadeDuration = fade.Arg("duration", "Length of the fade, e.g. 1s").Required().Duration()
	fadeColor    = fade.Arg("color", "Target colour as #rrggbb or #rrggbbww").Required().String()

	off     = app.Command("off", "Turn the strip off")
	offFade = off.Flag("fade", "Fade out over this long instead of blacking out at once.").Duration()

	list    = app.Command("list", "List the shows of the catalog")
	version = app.Command("version", "Print the version")
)

type colorFormatter struct {
	log.TextFormatter
}

func (f *colorFormatter) Format(entry *log.Entry) ([]byte, error) {
	var levelColor int
	switch entry.Level {
	case log.DebugLevel, log.TraceLevel:
		levelColor = 90 // dark grey
	case log.WarnLevel:
		levelColor = 33 // yellow
	case log.ErrorLevel, log.FatalLevel, log.PanicLevel:
		levelColor = 91 // bright red
	default:
		levelColor = 39 // default
	}
	return []byte(fmt.Sprintf("\x1b[%dm%s\x1b[0m\n", levelColor, entry.Message)), nil
}

func main() {
	cmd, err := app.Parse(os.Args[1:])
	if err != nil {
		fmt.Printf("%v: Try --help\n", err.Error())
		os.Exit(1)
	}

	log.SetFormatter(&colorFormatter{})
	if *debug {
		log.Info("Enabling debug output...")
		log.SetLevel(log.DebugLevel)
	}

	if cmd == version.FullCommand() {
		showVersion()
		return
	}

	cfg, err := readConfig(*configFile)
	if err != nil {
		log.Fatal(err)
	}

	switch cmd {
	case run.FullCommand():
		runPlayer(cfg)
	case show.FullCommand():
		playShow(cfg, *showIndex)
	case fade.FullCommand():
		fadeTo(cfg, *fadeDuration, *fadeColor)
	case off.FullCommand():
		turnOff(cfg, *offFade)
	case list.FullCommand():
		listShows(cfg)
	default:
		kingpin.FatalUsage("Unrecognized command")
	}
}

// readConfig falls back to the defaults when the file does not exist.
func readConfig(path string) (*config.Config, error) {
	cfg, err := config.Read(path)
	if errors.Is(err, fs.ErrNotExist) {
		log.Debugf("No configuration at %s, using defaults", path)
		return config.Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("unable to read %s: %w", path, err)
	}
	return cfg, nil
}

func listShows(cfg *config.Config) {
	for i, s := range cfg.Catalog() {
		fmt.Printf("%d: %s (%d steps)\n", i, s.Name, len(s.Steps))
	}
}
