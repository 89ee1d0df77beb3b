package display

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TFMV/gridbox/pkg/errors"
	"github.com/TFMV/gridbox/render"
	"github.com/TFMV/gridbox/table"
)

type stubRenderer struct {
	calls int
}

func (s *stubRenderer) Render(t *table.Table) (render.Output, error) {
	s.calls++
	return render.Output{HTML: "<div>stub</div>"}, nil
}

func TestInstallUninstallLifecycle(t *testing.T) {
	stub := &stubRenderer{}
	tok := Install(stub)
	defer Uninstall(tok)

	assert.Same(t, Renderer(stub), Active())

	require.NoError(t, Uninstall(tok))
	assert.NotSame(t, Renderer(stub), Active())
}

func TestUninstallWithWrongToken(t *testing.T) {
	stub := &stubRenderer{}
	tok := Install(stub)
	defer Uninstall(tok)

	err := Uninstall("bogus")
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, ErrUnknownToken))

	// The renderer is still installed.
	assert.Same(t, Renderer(stub), Active())
}

func TestReinstallInvalidatesOldToken(t *testing.T) {
	first := &stubRenderer{}
	second := &stubRenderer{}

	tok1 := Install(first)
	tok2 := Install(second)
	defer Uninstall(tok2)

	err := Uninstall(tok1)
	require.Error(t, err)
	assert.Same(t, Renderer(second), Active())
}

func TestActiveDefaultsWhenNothingInstalled(t *testing.T) {
	r := Active()
	require.NotNil(t, r)

	tbl := table.MustNew([]table.Column{table.Int("a", []int64{1, 2})})
	out, err := r.Render(tbl)
	require.NoError(t, err)
	assert.Contains(t, out.HTML, out.TableID)
}

func TestContextPlumbing(t *testing.T) {
	stub := &stubRenderer{}
	ctx := WithDisplay(context.Background(), stub)

	assert.Same(t, Renderer(stub), FromContext(ctx))
	assert.NotSame(t, Renderer(stub), FromContext(context.Background()))
}
