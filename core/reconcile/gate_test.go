package reconcile

import (
	"context"
	"fmt"
	"testing"
	"time"

	"asset-reconciler/core/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfirm(t *testing.T) {
	ctx := context.Background()
	changed := Summary{ContainerName: "comp", Added: []string{"D"}, Removed: []string{"B"}}

	t.Run("trivial summary skips the confirmer", func(t *testing.T) {
		asked := false
		c := ConfirmFunc(func(context.Context, Summary) (bool, error) {
			asked = true
			return false, nil
		})
		d, err := Confirm(ctx, c, Summary{})
		require.NoError(t, err)
		assert.Equal(t, Accepted, d)
		assert.False(t, asked)
	})

	t.Run("accepted", func(t *testing.T) {
		d, err := Confirm(ctx, StaticConfirmer{Accept: true}, changed)
		require.NoError(t, err)
		assert.Equal(t, Accepted, d)
	})

	t.Run("refused", func(t *testing.T) {
		d, err := Confirm(ctx, StaticConfirmer{}, changed)
		assert.Equal(t, Rejected, d)
		assert.True(t, errors.Is(err, errors.ErrRejected))
	})

	t.Run("confirmer error", func(t *testing.T) {
		c := ConfirmFunc(func(context.Context, Summary) (bool, error) {
			return true, fmt.Errorf("tty closed")
		})
		d, err := Confirm(ctx, c, changed)
		assert.Equal(t, Rejected, d)
		assert.True(t, errors.Is(err, errors.ErrRejected))
		assert.ErrorContains(t, err, "tty closed")
	})

	t.Run("no confirmer", func(t *testing.T) {
		d, err := Confirm(ctx, nil, changed)
		assert.Equal(t, Rejected, d)
		assert.True(t, errors.Is(err, errors.ErrRejected))
	})

	t.Run("cancelled while waiting", func(t *testing.T) {
		cctx, cancel := context.WithCancel(ctx)
		release := make(chan struct{})
		defer close(release)
		c := ConfirmFunc(func(context.Context, Summary) (bool, error) {
			<-release
			return true, nil
		})

		time.AfterFunc(20*time.Millisecond, cancel)
		d, err := Confirm(cctx, c, changed)
		assert.Equal(t, Rejected, d)
		assert.True(t, errors.Is(err, errors.ErrRejected))
		assert.True(t, errors.Is(err, context.Canceled))
	})
}

func TestSummary_String(t *testing.T) {
	s := Summary{ContainerName: "sh010_bg", Added: []string{"D"}, Removed: []string{"B", "E"}}
	want := "Composition 'sh010_bg' :\n" +
		"- 2 element(s) have been deleted.\n" +
		"    - B\n" +
		"    - E\n" +
		"- 1 element(s) have been added.\n" +
		"    + D\n" +
		"Do you want to continue import ?"
	assert.Equal(t, want, s.String())
	assert.False(t, s.Trivial())
}
