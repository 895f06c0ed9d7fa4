package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSuggest(t *testing.T) {
	assert := assert.New(t)
	list := []Suggest{
		{Text: "enqueue", Desc: "add to back"},
		{Text: "exit"},
		{Text: "dequeue"},
		{Text: " "},
	}
	got := suggest(list, "e")
	assert.Len(got, 2)
	assert.Equal("enqueue", got[0].Text)
	assert.Equal("add to back", got[0].Description)
	assert.Equal("exit", got[1].Text)

	assert.Len(suggest(list, "DEQ"), 1)
	assert.Len(suggest(list, ""), 3)
	assert.Empty(suggest(list, "x"))
}

func TestNotBlank(t *testing.T) {
	assert := assert.New(t)
	assert.NoError(NotBlank("a"))
	assert.Error(NotBlank(""))
	assert.Error(NotBlank(" \t"))
}
