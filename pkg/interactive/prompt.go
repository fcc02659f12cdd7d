package interactive

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Prompter asks one question per line. An empty answer, or the end of input,
// takes the bracketed default.
type Prompter struct {
	scanner *bufio.Scanner
	out     io.Writer
}

func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{
		scanner: bufio.NewScanner(in),
		out:     out,
	}
}

func (p *Prompter) Ask(question string, fallback string) (string, error) {
	if fallback == "" {
		fmt.Fprintf(p.out, "%s: ", question)
	} else {
		fmt.Fprintf(p.out, "%s [%s]: ", question, fallback)
	}

	if !p.scanner.Scan() {
		if err := p.scanner.Err(); err != nil {
			return "", err
		}

		fmt.Fprintln(p.out)
		return fallback, nil
	}

	answer := strings.TrimSpace(p.scanner.Text())
	if answer == "" {
		return fallback, nil
	}

	return answer, nil
}

type question struct {
	text   string
	answer *string
}

func (p *Prompter) askAll(questions []question) error {
	for _, q := range questions {
		answer, err := p.Ask(q.text, *q.answer)
		if err != nil {
			return err
		}

		*q.answer = answer
	}

	return nil
}
