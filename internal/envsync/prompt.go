package envsync

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"sync"
)

// Prompter is the terminal capability the fill loop needs. Tests drive it
// with scripted input instead of a real terminal.
type Prompter interface {
	// ReadLine shows prompt and returns one line of input without its line
	// terminator. It returns io.EOF when input is exhausted and ctx.Err()
	// when ctx is cancelled while waiting.
	ReadLine(ctx context.Context, prompt string) (string, error)

	// Notify shows a message to the user.
	Notify(msg string)
}

type lineResult struct {
	text string
	err  error
}

// LinePrompter reads lines from an io.Reader and writes prompts to an
// io.Writer. Reads happen on a background goroutine so that a cancelled
// context interrupts a blocked read.
type LinePrompter struct {
	in    *bufio.Reader
	out   io.Writer
	once  sync.Once
	lines chan lineResult
}

// NewLinePrompter returns a Prompter over in and out, typically stdin and stdout.
func NewLinePrompter(in io.Reader, out io.Writer) *LinePrompter {
	return &LinePrompter{in: bufio.NewReader(in), out: out}
}

// ReadLine implements Prompter.
func (p *LinePrompter) ReadLine(ctx context.Context, prompt string) (string, error) {
	p.once.Do(p.start)
	fmt.Fprint(p.out, prompt)

	select {
	case <-ctx.Done():
		fmt.Fprintln(p.out)
		return "", ctx.Err()
	case res, ok := <-p.lines:
		if !ok {
			return "", io.EOF
		}
		return res.text, res.err
	}
}

// Notify implements Prompter.
func (p *LinePrompter) Notify(msg string) {
	fmt.Fprintln(p.out, msg)
}

func (p *LinePrompter) start() {
	p.lines = make(chan lineResult)
	go func() {
		defer close(p.lines)
		for {
			text, err := p.in.ReadString('\n')
			if text != "" || err == nil {
				p.lines <- lineResult{text: strings.TrimRight(text, "\r\n")}
			}
			if err != nil {
				if err != io.EOF {
					p.lines <- lineResult{err: err}
				}
				return
			}
		}
	}()
}
