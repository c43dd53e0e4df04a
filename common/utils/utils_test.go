package utils_test

import (
	"strings"
	"testing"
	"time"

	"github.com/bytearena/tankarena/common/utils"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestErrorChain(t *testing.T) {
	root := errors.New("no such file")
	err := errors.Wrap(errors.Wrapf(root, "could not read map %s", "arena.json"), "could not load game")

	assert.Equal(t, []string{
		"could not load game",
		"could not read map arena.json",
		"no such file",
	}, utils.ErrorChain(err))
}

func TestErrorChainOfPlainError(t *testing.T) {
	assert.Equal(t, []string{"boom"}, utils.ErrorChain(errors.New("boom")))
	assert.Empty(t, utils.ErrorChain(nil))
}

func TestAssertPanics(t *testing.T) {
	assert.Panics(t, func() { utils.Assert(false, "nope") })
	assert.NotPanics(t, func() { utils.Assert(true, "fine") })
	assert.Panics(t, func() { utils.Check(errors.New("bad"), "check failed") })
}

func TestStopwatchAccumulates(t *testing.T) {
	watch := utils.MakeStopwatch("test")

	watch.Start("a")
	time.Sleep(2 * time.Millisecond)
	first := watch.Stop("a")

	watch.Start("a")
	time.Sleep(2 * time.Millisecond)
	watch.Stop("a")

	assert.True(t, watch.Get("a") >= first)
	assert.Equal(t, time.Duration(0), watch.Stop("never started"))
	assert.True(t, strings.HasPrefix(watch.String(), "test"))
	assert.Contains(t, watch.String(), "(x2)")
}
