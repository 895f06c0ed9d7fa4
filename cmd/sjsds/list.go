package main

import (
	"github.com/kwonsjay/sjsjsds/linkedlist"
	"github.com/pkg/errors"
)

type listCommand struct {
	Count   int `long:"count" short:"n" default:"10" description:"how many nodes to insert"`
	Special int `long:"special" short:"s" default:"3" description:"value of the node to delete afterwards"`
}

func (c *listCommand) Execute(args []string) error {
	applyOptions()
	if c.Count < 0 {
		return errors.Errorf("count should not be negative: %d", c.Count)
	}
	list := linkedlist.New[int]()
	var special *linkedlist.Node[int]
	for i := 0; i < c.Count; i++ {
		node := linkedlist.NewNode(i)
		if i%2 == 0 {
			list.Push(node)
		} else {
			list.Unshift(node)
		}
		if i == c.Special {
			special = node
		}
	}
	if err := show("built", list); err != nil {
		return err
	}
	list.Delete(special)
	return show("deleted", list)
}
