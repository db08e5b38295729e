package main

import (
	"flag"
	"log"
	"os"
	"strings"

	"DungeonEscape/commands"
	"DungeonEscape/internal/config"
	"DungeonEscape/internal/game"

	"golang.org/x/term"
)

func main() {
	defaults := config.Default()
	configPath := flag.String("config", "", "Optional INI file with display, server and monster script settings")
	addr := flag.String("addr", defaults.Addr, "Serve the dungeon over telnet on this TCP address instead of the console")
	charset := flag.String("charset", defaults.Charset, "Character set for telnet sessions (utf-8, cp437, latin1, cp1252)")
	color := flag.Bool("color", true, "Enable ANSI colours (default: on for telnet and for a console attached to a terminal)")
	width := flag.Int("width", defaults.Width, "Column width used to wrap narration")
	showMap := flag.Bool("map", defaults.ShowMap, "Print the room map and rumor before the first turn")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal(err)
	}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "addr":
			cfg.Addr = *addr
		case "charset":
			cfg.Charset = *charset
		case "color":
			cfg.Color = color
		case "width":
			cfg.Width = *width
		case "map":
			cfg.ShowMap = *showMap
		}
	})

	scripts, err := cfg.ScriptSources()
	if err != nil {
		log.Fatal(err)
	}
	listenAddr := strings.TrimSpace(cfg.Addr)
	terminal := listenAddr != "" || term.IsTerminal(int(os.Stdout.Fd()))
	options := []game.Option{
		game.WithColor(cfg.UseColor(terminal)),
		game.WithWidth(cfg.Width),
		game.WithMapPreview(cfg.ShowMap),
	}
	for monster, source := range scripts {
		options = append(options, game.WithMonsterScript(monster, source))
	}

	if listenAddr != "" {
		err = game.ListenAndServe(listenAddr, cfg.Charset, commands.Dispatch, options...)
	} else {
		_, err = game.Play(os.Stdin, os.Stdout, commands.Dispatch, options...)
	}
	if err != nil {
		log.Fatal(err)
	}
}
