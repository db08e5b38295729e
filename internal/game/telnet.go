package game

import (
	"bufio"
	"bytes"
	"fmt"
	"net"
	"strings"
	"unicode"

	"golang.org/x/text/encoding/charmap"
)

const (
	telnetIAC  byte = 255
	telnetDONT byte = 254
	telnetDO   byte = 253
	telnetWONT byte = 252
	telnetWILL byte = 251
	telnetSB   byte = 250
	telnetSE   byte = 240
)

const (
	telnetOptEcho       byte = 1
	telnetOptSuppressGA byte = 3
	telnetOptWindowSize byte = 31
	telnetOptLineMode   byte = 34
)

var (
	serverSupportedOptions = map[byte]bool{
		telnetOptSuppressGA: true,
	}
	clientSupportedOptions = map[byte]bool{
		telnetOptWindowSize: true,
	}
)

// TelnetSession speaks just enough telnet to play over a raw TCP
// connection. A nil charmap means UTF-8.
type TelnetSession struct {
	conn    net.Conn
	reader  *bufio.Reader
	charmap *charmap.Charmap
	width   int
	height  int
}

func NewTelnetSession(conn net.Conn, cm *charmap.Charmap) *TelnetSession {
	s := &TelnetSession{
		conn:    conn,
		reader:  bufio.NewReader(conn),
		charmap: cm,
	}
	s.performHandshake()
	return s
}

func (s *TelnetSession) performHandshake() {
	_ = s.writeCommand(telnetWILL, telnetOptSuppressGA)
	_ = s.writeCommand(telnetWONT, telnetOptEcho)
	_ = s.writeCommand(telnetDONT, telnetOptLineMode)
	_ = s.writeCommand(telnetDO, telnetOptWindowSize)
}

func (s *TelnetSession) writeCommand(cmd, opt byte) error {
	_, err := s.conn.Write([]byte{telnetIAC, cmd, opt})
	return err
}

func (s *TelnetSession) WriteString(msg string) error {
	payload := []byte(msg)
	if s.charmap != nil {
		payload = encodeWithCharmap(s.charmap, payload)
	}
	_, err := s.conn.Write(translateForTelnet(payload))
	return err
}

func translateForTelnet(msg []byte) []byte {
	var buf bytes.Buffer
	var prev byte
	for _, b := range msg {
		switch b {
		case '\n':
			if prev != '\r' {
				buf.WriteByte('\r')
			}
			buf.WriteByte('\n')
		case telnetIAC:
			buf.WriteByte(telnetIAC)
			buf.WriteByte(telnetIAC)
		default:
			buf.WriteByte(b)
		}
		prev = b
	}
	return buf.Bytes()
}

func (s *TelnetSession) ReadLine() (string, error) {
	var buf bytes.Buffer
	for {
		b, err := s.reader.ReadByte()
		if err != nil {
			return "", err
		}
		switch b {
		case '\r':
			if next, err := s.reader.Peek(1); err == nil && next[0] == '\n' {
				_, _ = s.reader.ReadByte()
			}
			return s.decode(buf.Bytes()), nil
		case '\n':
			return s.decode(buf.Bytes()), nil
		case 0x08, 0x7f:
			if n := buf.Len(); n > 0 {
				buf.Truncate(n - 1)
			}
		case 0x00:
		case telnetIAC:
			if err := s.handleIAC(&buf); err != nil {
				return "", err
			}
		default:
			buf.WriteByte(b)
		}
	}
}

func (s *TelnetSession) decode(raw []byte) string {
	if s.charmap != nil {
		return decodeWithCharmap(s.charmap, raw)
	}
	return sanitizeTelnetString(raw)
}

func (s *TelnetSession) handleIAC(buf *bytes.Buffer) error {
	cmd, err := s.reader.ReadByte()
	if err != nil {
		return err
	}
	switch cmd {
	case telnetIAC:
		buf.WriteByte(telnetIAC)
	case telnetDO, telnetDONT, telnetWILL, telnetWONT:
		opt, err := s.reader.ReadByte()
		if err != nil {
			return err
		}
		s.handleNegotiation(cmd, opt)
	case telnetSB:
		return s.handleSubnegotiation()
	}
	return nil
}

func (s *TelnetSession) handleNegotiation(cmd, opt byte) {
	switch cmd {
	case telnetDO:
		if serverSupportedOptions[opt] {
			_ = s.writeCommand(telnetWILL, opt)
		} else {
			_ = s.writeCommand(telnetWONT, opt)
		}
	case telnetDONT:
		_ = s.writeCommand(telnetWONT, opt)
	case telnetWILL:
		if clientSupportedOptions[opt] {
			_ = s.writeCommand(telnetDO, opt)
		} else {
			_ = s.writeCommand(telnetDONT, opt)
		}
	case telnetWONT:
		_ = s.writeCommand(telnetDONT, opt)
	}
}

func (s *TelnetSession) handleSubnegotiation() error {
	opt, err := s.reader.ReadByte()
	if err != nil {
		return err
	}
	payload := make([]byte, 0, 8)
	for {
		b, err := s.reader.ReadByte()
		if err != nil {
			return err
		}
		if b != telnetIAC {
			payload = append(payload, b)
			continue
		}
		esc, err := s.reader.ReadByte()
		if err != nil {
			return err
		}
		if esc == telnetSE {
			break
		}
		if esc == telnetIAC {
			payload = append(payload, telnetIAC)
		}
	}
	if opt == telnetOptWindowSize && len(payload) >= 4 {
		s.width = int(payload[0])<<8 | int(payload[1])
		s.height = int(payload[2])<<8 | int(payload[3])
	}
	return nil
}

func (s *TelnetSession) Close() error {
	return s.conn.Close()
}

// Size reports the window size negotiated with the client, or zeroes if the
// client never sent one.
func (s *TelnetSession) Size() (int, int) {
	return s.width, s.height
}

// CharmapFor resolves a charset name to a single-byte charmap. UTF-8 and
// the empty string resolve to nil.
func CharmapFor(name string) (*charmap.Charmap, error) {
	switch normalizeToken(name) {
	case "", "UTF8":
		return nil, nil
	case "CP437", "IBM437", "437":
		return charmap.CodePage437, nil
	case "LATIN1", "ISO88591":
		return charmap.ISO8859_1, nil
	case "CP1252", "WINDOWS1252":
		return charmap.Windows1252, nil
	default:
		return nil, fmt.Errorf("unsupported charset %q", name)
	}
}

func normalizeToken(token string) string {
	var builder strings.Builder
	for _, r := range strings.ToUpper(strings.TrimSpace(token)) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			builder.WriteRune(r)
		}
	}
	return builder.String()
}

func encodeWithCharmap(cm *charmap.Charmap, data []byte) []byte {
	out := make([]byte, 0, len(data))
	for _, r := range string(data) {
		if b, ok := cm.EncodeRune(r); ok {
			out = append(out, b)
			continue
		}
		out = append(out, '?')
	}
	return out
}

func decodeWithCharmap(cm *charmap.Charmap, data []byte) string {
	var builder strings.Builder
	builder.Grow(len(data))
	for _, b := range data {
		builder.WriteRune(cm.DecodeByte(b))
	}
	return cleanLine(builder.String())
}

func sanitizeTelnetString(raw []byte) string {
	return cleanLine(string(raw))
}
