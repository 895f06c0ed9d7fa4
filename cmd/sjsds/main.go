package main

import (
	"os"

	"github.com/jessevdk/go-flags"
	fmt2 "github.com/kwonsjay/sjsjsds/fmt"
	"github.com/kwonsjay/sjsjsds/linkedlist"
	"github.com/kwonsjay/sjsjsds/queue"
)

type options struct {
	Format string `long:"format" short:"f" choice:"text" choice:"table" choice:"json" default:"text" description:"output format"`
	Debug  bool   `long:"debug" description:"trace list and queue operations"`
	Check  bool   `long:"check" description:"verify list invariants after every step"`
}

var opts options

// applyOptions is called by every command before it runs
func applyOptions() {
	linkedlist.Debug = opts.Debug
	queue.Debug = opts.Debug
}

func newParser() *flags.Parser {
	parser := flags.NewParser(&opts, flags.HelpFlag|flags.PassDoubleDash)
	parser.AddCommand("list", "singly linked list walkthrough",
		"Push even numbers, unshift odd ones, then delete the node created for --special.", &listCommand{})
	parser.AddCommand("queue", "queue walkthrough",
		"Enqueue --from down to 1, then dequeue, enqueue 404 and peek.", &queueCommand{})
	parser.AddCommand("shell", "interactive string queue", "Operate a queue of strings from the terminal.", &shellCommand{})
	return parser
}

func main() {
	if _, err := newParser().Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			fmt2.Print(flagsErr.Message)
			return
		}
		fmt2.Print("%v", fmt2.Red(err.Error()))
		os.Exit(1)
	}
}
