package agent

import (
	"context"
	"fmt"
	"io"
	"strings"
)

// Questions is the canned conversation the demo walks through. Each
// one exercises a different tool.
var Questions = []string{
	"What's my account balance?",
	"Show me my recent transactions",
	"How much did I spend on entertainment?",
	"If I take a $200,000 mortgage at 6.5% for 30 years, what's my monthly payment?",
}

// RunDemo asks each canned question in order and writes a transcript
// to out. It stops at the first chat failure.
func RunDemo(ctx context.Context, a *Agent, out io.Writer) error {
	rule := strings.Repeat("-", 50)

	for _, question := range Questions {
		fmt.Fprintln(out, rule)
		fmt.Fprintf(out, "User: %s\n", question)
		fmt.Fprintln(out, rule)

		answer, err := a.Run(ctx, question)
		if err != nil {
			return err
		}

		fmt.Fprintf(out, "Agent: %s\n\n", answer)
	}

	return nil
}
