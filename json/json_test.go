package json

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMarshal(t *testing.T) {
	assert := assert.New(t)
	data, err := Marshal([]int{1, 2, 3})
	assert.NoError(err)
	assert.Equal(`[1,2,3]`, string(data))

	assert.Equal(`["<a>"]`, UnsafeMarshalString([]string{"<a>"}))
}

func TestMarshalUnsupported(t *testing.T) {
	assert := assert.New(t)
	_, err := Marshal(make(chan int))
	assert.Error(err)
	assert.Equal("", UnsafeMarshalString(make(chan int)))
}

func TestUnmarshal(t *testing.T) {
	assert := assert.New(t)
	var out []string
	assert.NoError(Unmarshal([]byte(`["a","b"]`), &out))
	assert.Equal([]string{"a", "b"}, out)

	var nums []int
	err := Unmarshal([]byte(`["a"]`), &nums)
	assert.Error(err)
	assert.Contains(err.Error(), "unmarshal into *[]int")
}
