// hkmon registers global hotkeys given on the command line (or in a TOML
// config) and prints every press/release event until interrupted.
//
// Usage:
//
//	hkmon ctrl+shift+KeyK cmdorctrl+F9
//	hkmon -config bindings.toml
//	hkmon -doctor
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"hotbind"
	"hotbind/doctor"
	"hotbind/log"
)

var version = "dev"

func main() {
	configPath := flag.String("config", "", "TOML file with named bindings")
	runDoctor := flag.Bool("doctor", false, "run hotkey diagnostics and exit")
	showVersion := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Println("hkmon", version)
		return
	}
	if *runDoctor {
		os.Exit(doctor.Run())
	}

	log.SetOutput(os.Stderr)

	bindings := map[string]string{}
	if *configPath != "" {
		loaded, err := loadBindings(*configPath)
		if err != nil {
			log.Errorf("loading config: %v", err)
			os.Exit(1)
		}
		bindings = loaded
	}
	for _, arg := range flag.Args() {
		bindings[arg] = arg
	}
	if len(bindings) == 0 {
		fmt.Fprintln(os.Stderr, "no hotkeys given; pass bindings as arguments or via -config")
		flag.Usage()
		os.Exit(2)
	}

	mgr, err := hotbind.New()
	if err != nil {
		log.Errorf("starting hotkey manager: %v", err)
		os.Exit(1)
	}
	defer mgr.Close()

	names := make(map[int]string)
	for name, spec := range bindings {
		desc, err := hotbind.ParseDescriptor(spec)
		if err != nil {
			log.Errorf("%v", err)
			continue
		}
		id, err := mgr.RegisterDescriptor(desc)
		if err != nil {
			log.Errorf("registering %s: %v", desc, err)
			continue
		}
		names[id] = name
		log.Infof("registered %s as %s (id %d)", desc, name, id)
	}
	if len(names) == 0 {
		log.Error("no hotkeys registered")
		os.Exit(1)
	}

	done := make(chan struct{})
	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigc
		close(done)
	}()

	go printEvents(mgr, names, done)

	// On Windows this pumps the message loop on the registering thread;
	// elsewhere it just waits.
	pump(mgr, done)
}

func printEvents(mgr *hotbind.Manager, names map[int]string, done <-chan struct{}) {
	stream := mgr.Events()
	for {
		select {
		case ev := <-stream.C():
			l := log.Logger()
			l.Info().
				Int("id", ev.ID).
				Str("hotkey", names[ev.ID]).
				Str("state", ev.State.String()).
				Uint64("dropped", stream.Overflow()).
				Msg("trigger")
		case <-done:
			return
		}
	}
}
