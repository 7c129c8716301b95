package util

import (
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMapErr(t *testing.T) {
	t.Run("all succeed", func(t *testing.T) {
		res, err := MapErr([]string{"1", "2", "3"}, strconv.Atoi)
		assert.NoError(t, err)
		assert.Equal(t, []int{1, 2, 3}, res)
	})

	t.Run("first error wins", func(t *testing.T) {
		var seen []string
		res, err := MapErr([]string{"1", "a", "b"}, func(s string) (int, error) {
			seen = append(seen, s)
			if s == "a" {
				return 0, errors.New("not a number: " + s)
			}
			return strconv.Atoi(s)
		})
		assert.Nil(t, res)
		assert.EqualError(t, err, "not a number: a")
		assert.Equal(t, []string{"1", "a"}, seen)
	})
}

func TestMap(t *testing.T) {
	assert.Equal(t, []string{"1", "2"}, Map([]int{1, 2}, strconv.Itoa))
	assert.Empty(t, Map(nil, strconv.Itoa))
}
