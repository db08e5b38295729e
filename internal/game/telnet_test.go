package game

import (
	"bytes"
	"net"
	"testing"

	"golang.org/x/text/encoding/charmap"
)

func TestTranslateForTelnet(t *testing.T) {
	input := []byte("Hello\nWorld" + string([]byte{telnetIAC}) + "!")
	got := translateForTelnet(input)
	expected := []byte{'H', 'e', 'l', 'l', 'o', '\r', '\n', 'W', 'o', 'r', 'l', 'd', telnetIAC, telnetIAC, '!'}
	if !bytes.Equal(got, expected) {
		t.Fatalf("unexpected translation: %v", got)
	}
}

func TestNormalizeToken(t *testing.T) {
	if got := normalizeToken("Utf-8"); got != "UTF8" {
		t.Fatalf("expected UTF8, got %q", got)
	}
}

func TestCharmapFor(t *testing.T) {
	tests := []struct {
		name string
		want *charmap.Charmap
	}{
		{"", nil},
		{"utf-8", nil},
		{"CP437", charmap.CodePage437},
		{"iso-8859-1", charmap.ISO8859_1},
		{"latin1", charmap.ISO8859_1},
	}
	for _, tt := range tests {
		got, err := CharmapFor(tt.name)
		if err != nil {
			t.Fatalf("CharmapFor(%q) error = %v", tt.name, err)
		}
		if got != tt.want {
			t.Fatalf("CharmapFor(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
	if _, err := CharmapFor("klingon"); err == nil {
		t.Fatalf("CharmapFor(klingon) error = nil")
	}
}

func TestEncodeDecodeCharmap(t *testing.T) {
	cm := charmap.CodePage437
	encoded := encodeWithCharmap(cm, []byte("é"))
	if len(encoded) != 1 {
		t.Fatalf("expected single byte encoding, got %d", len(encoded))
	}
	expected, ok := cm.EncodeRune('é')
	if !ok {
		t.Fatalf("failed to encode rune with charmap")
	}
	if encoded[0] != expected {
		t.Fatalf("expected %d, got %d", expected, encoded[0])
	}
	decoded := decodeWithCharmap(cm, encoded)
	if decoded != "é" {
		t.Fatalf("expected to decode to é, got %q", decoded)
	}
}

func TestSanitizeTelnetString(t *testing.T) {
	raw := []byte{0x01, 'H', 'i', 0x7f, '!'}
	if got := sanitizeTelnetString(raw); got != "Hi!" {
		t.Fatalf("unexpected sanitized string: %q", got)
	}
}

func TestTelnetSessionReadLine(t *testing.T) {
	server, client := net.Pipe()
	defer client.Close()

	go func() {
		// Swallow the handshake and anything else the session writes.
		buf := make([]byte, 64)
		for {
			if _, err := client.Read(buf); err != nil {
				return
			}
		}
	}()

	session := NewTelnetSession(server, nil)
	defer session.Close()

	go func() {
		payload := []byte{
			telnetIAC, telnetSB, telnetOptWindowSize, 0, 100, 0, 30, telnetIAC, telnetSE,
			'n', 'o', 'r', 'x', 0x7f, 't', 'h', '\r', '\n',
		}
		_, _ = client.Write(payload)
	}()

	line, err := session.ReadLine()
	if err != nil {
		t.Fatalf("ReadLine() error = %v", err)
	}
	if line != "north" {
		t.Fatalf("ReadLine() = %q, want %q", line, "north")
	}
	if width, height := session.Size(); width != 100 || height != 30 {
		t.Fatalf("Size() = %d x %d, want 100 x 30", width, height)
	}
}
