package cli

import (
	"fmt"
	"io"
	"os"

	gotable "github.com/jedib0t/go-pretty/table"
	"github.com/jedib0t/go-pretty/text"
	"github.com/kwonsjay/sjsjsds/linkedlist"
)

type Table interface {
	SetHeader(v ...interface{}) Table
	AddRow(v ...interface{}) Table
	SetOutput(w io.Writer) Table
	Render() string
}

type table struct {
	tw gotable.Writer
}

func NewTable() Table {
	t := &table{
		tw: gotable.NewWriter(),
	}
	style := gotable.StyleDefault
	style.Format.Header = text.FormatDefault
	t.tw.SetStyle(style)
	t.tw.SetOutputMirror(os.Stdout)
	return t
}

// ChainTable lay out nodes of list one per row, head first
func ChainTable[T comparable](l *linkedlist.LinkedList[T]) Table {
	t := NewTable().SetHeader("#", "VALUE", "NEXT", "ROLE")
	var pos int
	l.Each(func(n *linkedlist.Node[T]) bool {
		next := "nil"
		if n.Next() != nil {
			next = fmt.Sprint(n.Next().Value)
		}
		t.AddRow(pos, n.Value, next, role(l, n))
		pos++
		return true
	})
	return t
}

func role[T comparable](l *linkedlist.LinkedList[T], n *linkedlist.Node[T]) string {
	switch {
	case n == l.Head() && n == l.Tail():
		return "head,tail"
	case n == l.Head():
		return "head"
	case n == l.Tail():
		return "tail"
	}
	return ""
}

func (t *table) SetOutput(w io.Writer) Table {
	t.tw.SetOutputMirror(w)
	return t
}

func (t *table) SetHeader(v ...interface{}) Table {
	t.tw.AppendHeader(gotable.Row(v))
	return t
}

func (t *table) AddRow(cells ...interface{}) Table {
	t.tw.AppendRows([]gotable.Row{cells})
	return t
}

func (t *table) Render() string {
	return t.tw.Render()
}
