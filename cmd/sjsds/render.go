package main

import (
	"fmt"
	"io"
	"os"

	"github.com/kwonsjay/sjsjsds/cli"
	fmt2 "github.com/kwonsjay/sjsjsds/fmt"
	"github.com/kwonsjay/sjsjsds/json"
	"github.com/kwonsjay/sjsjsds/linkedlist"
	"github.com/pkg/errors"
)

var output io.Writer = os.Stdout

// setOutput redirect all printing, nil restores stdout
func setOutput(w io.Writer) {
	fmt2.SetOutput(w)
	if w == nil {
		w = os.Stdout
	}
	output = w
}

// show prints list in the chosen format and verifies it when --check is on
func show[T comparable](step string, l *linkedlist.LinkedList[T]) error {
	switch opts.Format {
	case "table":
		fmt2.Print("%s", step)
		cli.ChainTable(l).SetOutput(output).Render()
	case "json":
		fmt2.Print("%s %s", step, string(json.PrettyMarshal(l)))
	default:
		parts := make([]string, 0, l.Len())
		l.Each(func(n *linkedlist.Node[T]) bool {
			parts = append(parts, n.String())
			return true
		})
		fmt2.Print("%s %s", step, fmt2.Chain(parts...))
	}
	if opts.Check {
		if err := l.Check(); err != nil {
			return errors.Wrapf(err, "after %s", step)
		}
	}
	return nil
}

func showValue(step string, v fmt.Stringer) {
	fmt2.Print("%s %v", step, v.String())
}
