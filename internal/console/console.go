// Package console is the operator-facing terminal: it reads input lines and
// prints peer messages, notices and the prompt.
package console

import (
	"bufio"
	"fmt"
	"io"
	"sync"

	"github.com/charmbracelet/lipgloss"

	"streamchat/internal/domain"
)

// DefaultPrompt is shown before each input line.
const DefaultPrompt = "> "

// Console implements domain.LineSource and domain.Display over a pair of
// streams, usually stdin and stdout.
type Console struct {
	in *bufio.Reader

	mu  sync.Mutex
	out io.Writer

	prompt string
	color  bool
	peer   lipgloss.Style
	notice lipgloss.Style
}

var (
	_ domain.LineSource = (*Console)(nil)
	_ domain.Display    = (*Console)(nil)
)

// New builds a Console. With color disabled nothing but plain text is written.
func New(in io.Reader, out io.Writer, color bool) *Console {
	c := &Console{
		in:     bufio.NewReader(in),
		out:    out,
		prompt: DefaultPrompt,
		color:  color,
		peer:   lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true),
		notice: lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
	}
	return c
}

// ReadLine returns the next input line including its terminator. A final
// line without a terminator is returned on its own; io.EOF follows it.
func (c *Console) ReadLine() (string, error) {
	line, err := c.in.ReadString('\n')
	if err == io.EOF && line != "" {
		return line, nil
	}
	return line, err
}

// Message prints a decrypted peer message.
func (c *Console) Message(text string) {
	c.printf("\n%s %s\n", c.style(c.peer, "[PEER]"), text)
}

// Notice prints a status line.
func (c *Console) Notice(text string) {
	c.printf("%s\n", c.style(c.notice, "[CHAT] "+text))
}

// Prompt prints the input prompt without a newline.
func (c *Console) Prompt() {
	c.printf("%s", c.prompt)
}

func (c *Console) style(s lipgloss.Style, text string) string {
	if !c.color {
		return text
	}
	return s.Render(text)
}

func (c *Console) printf(format string, args ...any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, _ = fmt.Fprintf(c.out, format, args...)
}
