package game

import (
	"errors"
	"fmt"
	"log"
	"net"

	"golang.org/x/text/encoding/charmap"
)

var netListenFunc = net.Listen

// ListenAndServe serves the dungeon over telnet on addr. Each connection
// gets a fresh game; connections are played one at a time.
func ListenAndServe(addr, charset string, dispatch Dispatcher, opts ...Option) error {
	cm, err := CharmapFor(charset)
	if err != nil {
		return err
	}
	ln, err := netListenFunc("tcp", addr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", addr, err)
	}
	log.Printf("Dungeon Escape listening on %s", ln.Addr())
	return Serve(ln, cm, dispatch, opts...)
}

// Serve accepts connections from ln until it is closed.
func Serve(ln net.Listener, cm *charmap.Charmap, dispatch Dispatcher, opts ...Option) error {
	defer ln.Close()
	for {
		conn, err := ln.Accept()
		if err != nil {
			if errors.Is(err, net.ErrClosed) {
				return nil
			}
			return fmt.Errorf("accept: %w", err)
		}
		serveConn(conn, cm, dispatch, opts)
	}
}

func serveConn(conn net.Conn, cm *charmap.Charmap, dispatch Dispatcher, opts []Option) {
	session := NewTelnetSession(conn, cm)
	defer session.Close()
	remote := conn.RemoteAddr()
	log.Printf("session from %s started", remote)
	state, err := NewGame(session, opts...).Run(dispatch)
	if err != nil {
		log.Printf("session from %s ended: %v", remote, err)
		return
	}
	log.Printf("session from %s finished: %s", remote, state)
}
