package main

import (
	"flag"
	"log"

	"golang.design/x/clipboard"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	seedStr := flag.String("seed", "", "session seed (hex string); empty generates one")
	debug := flag.Bool("debug", false, "enable debug overlay")
	tunePath := flag.String("tune", "", "path to a tuning yaml; watched for live reload")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	flag.Parse()

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	w, h := ebiten.Monitor().Size()
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle("downhill")

	game := NewGame(*seedStr, *debug, *tunePath)

	// clipboard access is best-effort; the seed still shows in the
	// pause menu when it fails
	if err := clipboard.Init(); err != nil {
		log.Printf("main: clipboard init: %v", err)
	} else {
		game.clipboardReady = true
	}

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
