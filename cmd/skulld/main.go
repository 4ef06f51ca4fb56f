// skulld is the animatronic skull daemon: it runs the animation control
// loop against the Maestro servo controller and serves the command link.
package main

import (
	"context"
	"flag"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/grimworks/go-skull/internal/config"
	"github.com/grimworks/go-skull/internal/log"
	"github.com/grimworks/go-skull/pkg/animation"
	"github.com/grimworks/go-skull/pkg/command"
	"github.com/grimworks/go-skull/pkg/eyes"
	"github.com/grimworks/go-skull/pkg/link"
	"github.com/grimworks/go-skull/pkg/servo"
)

// dryRunController logs servo commands instead of touching hardware.
type dryRunController struct{}

func (dryRunController) SetTarget(c servo.Channel, position uint16) error {
	log.Debug("servo target", "channel", c.String(), "position", position)
	return nil
}

func (dryRunController) ConfigureMotion(c servo.Channel, speed, accel uint16) error {
	log.Debug("servo motion config", "channel", c.String(), "speed", speed, "accel", accel)
	return nil
}

func main() {
	addr := flag.String("addr", config.ListenAddr(), "command link listen address")
	serialDev := flag.String("serial", config.SerialPort(), "Maestro serial device")
	baud := flag.Int("baud", config.DefaultSerialBaud, "Maestro serial baud rate")
	dryRun := flag.Bool("dry-run", false, "log servo commands instead of opening the serial port")
	snap := flag.Bool("snap-on-switch", false, "re-home servos on every mode switch")
	logLevel := flag.String("log-level", config.LogLevel(), "log level (debug, info, warn, error)")
	flag.Parse()

	log.Init(*logLevel)

	var servos servo.Controller
	if *dryRun {
		log.Info("dry run: servo commands are logged, not sent")
		servos = dryRunController{}
	} else {
		maestro, err := servo.OpenMaestro(*serialDev, *baud)
		if err != nil {
			log.Error("failed to open servo controller", "device", *serialDev, "error", err)
			os.Exit(1)
		}
		defer maestro.Close()
		servos = maestro
	}

	animator := eyes.NewSim(nil)
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	seq, err := animation.NewSequencer(servos, animator, &animation.IdleSequence, rng,
		animation.Options{SnapOnModeSwitch: *snap})
	if err != nil {
		log.Error("failed to build sequencer", "error", err)
		os.Exit(1)
	}
	if err := seq.ConfigureMotion(); err != nil {
		log.Warn("servo motion configuration failed", "error", err)
	}

	handler := command.NewHandler(seq)
	loop := animation.NewLoop(seq, handler.Execute, animation.DefaultTickRate)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		log.Info("shutting down")
		cancel()
	}()

	server := link.NewServer(loop.Submit)
	go func() {
		if err := server.Listen(*addr); err != nil {
			log.Error("command link server failed", "error", err)
			cancel()
		}
	}()

	log.Info("skulld started",
		"addr", *addr, "serial", *serialDev, "dry_run", *dryRun,
		"sequence", animation.IdleSequence.Name)

	loop.Run(ctx)
	server.Shutdown()
}
