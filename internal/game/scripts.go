package game

import (
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"log"
	"strings"

	"github.com/traefik/yaegi/interp"
	"github.com/traefik/yaegi/stdlib"
)

// MonsterHook names a function a monster script may define.
type MonsterHook string

const (
	// HookAppear runs when the player sees the monster in its room.
	HookAppear MonsterHook = "OnAppear"
	// HookBlock runs when the monster bars the player's way.
	HookBlock MonsterHook = "OnBlock"
	// HookSlain runs after the player defeats the monster.
	HookSlain MonsterHook = "OnSlain"
	// HookTriumph runs after the monster kills the player.
	HookTriumph MonsterHook = "OnTriumph"
)

var monsterHooks = []MonsterHook{HookAppear, HookBlock, HookSlain, HookTriumph}

// GoblinScript is the flavour script bundled for the Goblin.
const GoblinScript = `package main

func narrate(ctx map[string]any, text string) {
	ctx["narrate"].(func(string))(text)
}

func OnAppear(ctx map[string]any) {
	narrate(ctx, "It crouches between the shelves, picking its teeth with a rusty dagger.")
}

func OnBlock(ctx map[string]any) {
	narrate(ctx, "The " + ctx["monster"].(string) + " hisses and spreads its arms across the northern archway.")
}

func OnSlain(ctx map[string]any) {
	narrate(ctx, "The " + ctx["monster"].(string) + " crumples among the scattered scrolls.")
}

func OnTriumph(ctx map[string]any) {
	narrate(ctx, "The " + ctx["monster"].(string) + " cackles as the darkness closes in.")
}
`

// MonsterEvent is what a monster script sees when a hook fires.
type MonsterEvent struct {
	Monster   string
	Room      RoomName
	Inventory []string
	Narrate   func(string)
}

type scriptEntry struct {
	script *compiledScript
	err    error
}

type compiledScript struct {
	hooks map[MonsterHook]func(map[string]any)
}

type scriptEngine struct {
	sources map[string]string
	scripts map[string]*scriptEntry
}

func newScriptEngine(sources map[string]string) *scriptEngine {
	e := &scriptEngine{
		sources: make(map[string]string, len(sources)),
		scripts: make(map[string]*scriptEntry),
	}
	for monster, source := range sources {
		e.sources[monster] = source
	}
	return e
}

// trigger runs hook for the event's monster. Missing scripts and hooks are
// silently skipped; broken scripts are logged and never reach the player.
func (e *scriptEngine) trigger(hook MonsterHook, event MonsterEvent) {
	if e == nil || event.Monster == "" {
		return
	}
	script, err := e.scriptFor(e.sources[event.Monster])
	if err != nil {
		log.Printf("monster %s script failed to load: %v", event.Monster, err)
		return
	}
	if script == nil {
		return
	}
	fn, ok := script.hooks[hook]
	if !ok {
		return
	}
	payload := payloadForMonster(event)
	e.invoke(event.Monster, hook, func() {
		fn(payload)
	})
}

func (e *scriptEngine) invoke(monster string, hook MonsterHook, fn func()) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("monster %s %s panic: %v", monster, hook, r)
		}
	}()
	fn()
}

func payloadForMonster(event MonsterEvent) map[string]any {
	narrate := event.Narrate
	if narrate == nil {
		narrate = func(string) {}
	}
	inventory := make([]string, len(event.Inventory))
	copy(inventory, event.Inventory)
	return map[string]any{
		"narrate": func(text string) {
			if cleaned := strings.TrimSpace(text); cleaned != "" {
				narrate(cleaned)
			}
		},
		"monster":   event.Monster,
		"room":      string(event.Room),
		"inventory": inventory,
	}
}

func (e *scriptEngine) scriptFor(source string) (*compiledScript, error) {
	trimmed := strings.TrimSpace(source)
	if trimmed == "" {
		return nil, nil
	}
	key := hashScript(trimmed)
	if entry, ok := e.scripts[key]; ok {
		return entry.script, entry.err
	}
	script, err := compileScript(trimmed)
	e.scripts[key] = &scriptEntry{script: script, err: err}
	return script, err
}

func compileScript(source string) (*compiledScript, error) {
	interpreter := interp.New(interp.Options{})
	if err := interpreter.Use(stdlib.Symbols); err != nil {
		return nil, fmt.Errorf("load stdlib: %w", err)
	}
	if _, err := interpreter.Eval(source); err != nil {
		return nil, fmt.Errorf("compile: %w", err)
	}
	compiled := &compiledScript{hooks: make(map[MonsterHook]func(map[string]any))}
	for _, hook := range monsterHooks {
		value, err := interpreter.Eval(string(hook))
		if err != nil {
			if isUndefinedSymbol(err) {
				continue
			}
			return nil, fmt.Errorf("%s: %w", hook, err)
		}
		fn, ok := value.Interface().(func(map[string]any))
		if !ok {
			return nil, fmt.Errorf("%s has unexpected type %T", hook, value.Interface())
		}
		compiled.hooks[hook] = fn
	}
	return compiled, nil
}

func hashScript(src string) string {
	sum := sha1.Sum([]byte(src))
	return hex.EncodeToString(sum[:])
}

func isUndefinedSymbol(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "undefined") || strings.Contains(msg, "not declared")
}
