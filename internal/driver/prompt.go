// SPDX-License-Identifier: MIT

package driver

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Interactive questions, asked in this order.
const (
	promptLeft      = "Input the path of the first file: "
	promptRight     = "Input the path of the second file: "
	promptOperation = "What operation do you want to perform [add, subtract, multiply]: "
	promptOutput    = "What's the name of the output file: "
)

// Prompt asks for a Request on out, reading one answer per line from in.
// An empty output answer (or EOF right before it) leaves Output empty so that
// Run picks the default name. EOF before the operation answer is an error.
func Prompt(in io.Reader, out io.Writer) (Request, error) {
	sc := bufio.NewScanner(in)
	ask := func(question string) (string, bool, error) {
		if _, err := io.WriteString(out, question); err != nil {
			return "", false, err
		}
		if !sc.Scan() {
			return "", false, sc.Err()
		}
		return strings.TrimSpace(sc.Text()), true, nil
	}

	var req Request
	for _, q := range []struct {
		question string
		dst      *string
	}{
		{promptLeft, &req.Left},
		{promptRight, &req.Right},
		{promptOperation, &req.Operation},
	} {
		answer, ok, err := ask(q.question)
		if err != nil {
			return Request{}, fmt.Errorf("prompt: %w", err)
		}
		if !ok {
			return Request{}, fmt.Errorf("prompt: %w", io.ErrUnexpectedEOF)
		}
		*q.dst = answer
	}

	answer, _, err := ask(promptOutput)
	if err != nil {
		return Request{}, fmt.Errorf("prompt: %w", err)
	}
	req.Output = answer

	return req, nil
}
