package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"pondhop/audio"
	"pondhop/game"
)

func main() {
	debugAddr := flag.String("debug-addr", "", "serve a websocket tick snapshot stream on this address")
	seed := flag.Int64("seed", 0, "world seed, 0 picks a time-based seed")
	volume := flag.Float64("volume", 0.8, "effect volume, 0 disables audio")
	flag.Parse()

	config := game.DefaultConfig()
	g := game.NewGame(config, game.NewPlayerInput(), *seed)
	g.SetSound(audio.NewPlayer(44100, *volume))

	if *debugAddr != "" {
		stream := game.NewDebugStream()
		stream.Start(*debugAddr)
		g.SetStream(stream)
	}

	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Pondhop")
	ebiten.SetWindowResizable(true)

	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
