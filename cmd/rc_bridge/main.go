// Command rc_bridge serves an operator control page and forwards its
// gestures to a flight controller over a serial line.
package main

import (
	"context"
	"errors"
	"flag"
	"io"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/w1xm/rc_bridge/internal/config"
	"github.com/w1xm/rc_bridge/recorder"
	"github.com/w1xm/rc_bridge/session"
	"github.com/w1xm/rc_bridge/simulator"
	"github.com/w1xm/rc_bridge/surface"
	"github.com/w1xm/rc_bridge/transport"
	"golang.org/x/sync/errgroup"
	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	configFile = flag.String("config", "", "YAML configuration file")
	addr       = flag.String("addr", "", "address to listen on")
	staticDir  = flag.String("static_dir", "", "directory containing static files")
	serialPort = flag.String("serial", "", "serial port name")
	baud       = flag.Int("baud", 0, "serial baud rate")
	variant    = flag.String("variant", "", `front-end, "surface" or "sliders"`)
	simulate   = flag.Bool("simulate", false, "send to the built-in flight controller simulator instead of a serial port")
)

// applyFlags copies the flags given on the command line over c.
func applyFlags(fs *flag.FlagSet, c *config.Config) {
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "addr":
			c.Addr = *addr
		case "static_dir":
			c.StaticDir = *staticDir
		case "serial":
			c.Serial.Port = *serialPort
		case "baud":
			c.Serial.Baud = *baud
		case "variant":
			c.Variant = *variant
		case "simulate":
			c.Simulate = *simulate
		}
	})
}

func main() {
	flag.Parse()
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	c, err := config.Load(*configFile)
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}
	applyFlags(flag.CommandLine, c)
	if err := c.Validate(); err != nil {
		log.Fatal(err)
	}

	if c.LogFile != "" {
		lj := &lumberjack.Logger{
			Filename:   c.LogFile,
			MaxSize:    10,
			MaxBackups: 3,
		}
		defer lj.Close()
		log.SetOutput(io.MultiWriter(os.Stderr, lj))
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		log.Print("shutting down")
		cancel()
	}()

	err = run(ctx, c)
	switch {
	case err == nil, errors.Is(err, session.ErrQuit), errors.Is(err, context.Canceled):
		log.Print("exiting")
	default:
		log.Printf("exiting: %v", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, c *config.Config) error {
	g, ctx := errgroup.WithContext(ctx)

	var tx transport.Transport
	switch {
	case c.Simulate:
		sim, conn := simulator.New(nil)
		g.Go(func() error { return sim.Run(ctx) })
		port := transport.New("simulator", conn)
		defer port.Close()
		tx = port
	case c.Serial.Port == "":
		log.Print("no serial port configured; dry run")
		tx = transport.DryRun{}
	default:
		port, err := transport.Open(transport.Config{
			Name:        c.Serial.Port,
			Baud:        c.Serial.Baud,
			ReadTimeout: c.Serial.ReadTimeout,
		})
		if err != nil {
			log.Printf("%v; dry run", err)
			tx = transport.DryRun{}
			break
		}
		defer port.Close()
		tx = port
	}

	if c.Influx.Server != "" {
		client := recorder.Dial(c.Influx.Server, c.Influx.Token, c.Influx.Org, c.Influx.Bucket)
		defer client.Close()
		tx = recorder.New(tx, client)
	}

	var ctl session.Controller
	switch c.Variant {
	case config.VariantSliders:
		ctl = session.NewSliders(tx)
	default:
		ctl = session.New(tx, surface.DefaultLayout())
	}

	s := NewServer()
	s.loop = session.NewLoop(ctl, c.Tick, s.statusCallback)
	srv := &http.Server{
		Handler:           newRouter(s, c.StaticDir),
		Addr:              c.Addr,
		ReadHeaderTimeout: 15 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	g.Go(func() error { return s.loop.Run(ctx) })
	g.Go(func() error {
		log.Printf("Listening on %v", srv.Addr)
		if err := srv.ListenAndServe(); err != http.ErrServerClosed {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}
