package main

import (
	"github.com/kwonsjay/sjsjsds/queue"
	"github.com/pkg/errors"
)

type queueCommand struct {
	From int `long:"from" default:"10" description:"enqueue from this value down to 1"`
}

func (c *queueCommand) Execute(args []string) error {
	applyOptions()
	if c.From < 0 {
		return errors.Errorf("from should not be negative: %d", c.From)
	}
	q := queue.New[int]()
	for i := c.From; i > 0; i-- {
		q.Enqueue(i)
	}
	if err := showQueue("enqueued", q); err != nil {
		return err
	}
	showValue("dequeue", q.Dequeue())
	if err := showQueue("after dequeue", q); err != nil {
		return err
	}
	q.Enqueue(404)
	showValue("dequeue", q.Dequeue())
	if err := showQueue("after enqueue 404 and dequeue", q); err != nil {
		return err
	}
	showValue("peek", q.Peek())
	return nil
}

func showQueue[T comparable](step string, q *queue.Queue[T]) error {
	return show(step, q.List())
}
