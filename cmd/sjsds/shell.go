package main

import (
	"strings"

	"github.com/kwonsjay/sjsjsds/cli"
	fmt2 "github.com/kwonsjay/sjsjsds/fmt"
	"github.com/kwonsjay/sjsjsds/queue"
	"github.com/pkg/errors"
)

var shellSuggestions = []cli.Suggest{
	{Text: "enqueue", Desc: "add a value to the back"},
	{Text: "dequeue", Desc: "remove the front value"},
	{Text: "peek", Desc: "show the front value"},
	{Text: "length", Desc: "count values"},
	{Text: "show", Desc: "print the queue"},
	{Text: "clear", Desc: "drop every value"},
	{Text: "quit", Desc: "leave the shell"},
}

func shellCommands() []string {
	names := make([]string, len(shellSuggestions))
	for i, sg := range shellSuggestions {
		names[i] = sg.Text
	}
	return names
}

type shellCommand struct{}

func (c *shellCommand) Execute(args []string) error {
	applyOptions()
	q := queue.New[string]()
	sh := &shell{
		q:       q,
		readVal: func() (string, error) { return cli.InputValue("value", cli.NotBlank) },
		confirm: func(label string) bool { return cli.Confirm(label, false) },
	}
	for {
		line, interrupted := cli.Input("queue>", shellSuggestions)
		if interrupted {
			return nil
		}
		if line == "" {
			if _, line = cli.Select("command", shellCommands()); line == "" {
				continue
			}
		}
		quit, err := sh.exec(line)
		if err != nil {
			fmt2.Print("%v", fmt2.Red(err.Error()))
		}
		if quit {
			return nil
		}
	}
}

type shell struct {
	q       *queue.Queue[string]
	readVal func() (string, error)
	confirm func(string) bool
}

// exec runs one shell line, quit reports the user asked to leave
func (sh *shell) exec(line string) (quit bool, err error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false, nil
	}
	switch fields[0] {
	case "enqueue":
		value := strings.Join(fields[1:], " ")
		if value == "" {
			if value, err = sh.readVal(); err != nil {
				return false, err
			}
		}
		sh.q.Enqueue(value)
	case "dequeue":
		showValue("dequeue", sh.q.Dequeue())
	case "peek":
		showValue("peek", sh.q.Peek())
	case "length":
		fmt2.Print("length %d", sh.q.Length())
	case "show":
		return false, showQueue("queue", sh.q)
	case "clear":
		if sh.q.IsEmpty() || !sh.confirm("drop all values") {
			return false, nil
		}
		for !sh.q.IsEmpty() {
			sh.q.Dequeue()
		}
	case "quit", "exit":
		return true, nil
	default:
		return false, errors.Errorf("unknown command %q", fields[0])
	}
	return false, nil
}
