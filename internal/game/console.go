package game

import (
	"bufio"
	"errors"
	"io"
	"strings"
)

// ConsoleSession plays a game over plain line-based streams such as
// stdin and stdout.
type ConsoleSession struct {
	reader *bufio.Reader
	writer io.Writer
}

func NewConsoleSession(r io.Reader, w io.Writer) *ConsoleSession {
	return &ConsoleSession{reader: bufio.NewReader(r), writer: w}
}

func (s *ConsoleSession) ReadLine() (string, error) {
	line, err := s.reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimRight(line, "\r\n"), nil
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func (s *ConsoleSession) WriteString(msg string) error {
	_, err := io.WriteString(s.writer, msg)
	return err
}
