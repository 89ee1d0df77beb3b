// Package display owns the default-renderer hook: an explicit
// install/uninstall lifecycle that host applications opt into instead
// of patching global state, plus context plumbing so commands can
// carry a display around.
package display

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/TFMV/gridbox/pkg/errors"
	"github.com/TFMV/gridbox/render"
	"github.com/TFMV/gridbox/table"
)

// ErrUnknownToken indicates an Uninstall with a token that does not
// match the currently installed renderer.
var ErrUnknownToken = errors.MustNewCode("display.unknown_token")

// Renderer turns a table into a rendered HTML output.
type Renderer interface {
	Render(t *table.Table) (render.Output, error)
}

var (
	mu        sync.Mutex
	installed Renderer
	token     string
)

// Install makes r the process-wide default renderer and returns an
// opaque token required to uninstall it. Installing again replaces the
// previous renderer and invalidates its token.
func Install(r Renderer) string {
	mu.Lock()
	defer mu.Unlock()
	installed = r
	token = uuid.NewString()
	return token
}

// Uninstall removes the installed renderer. The token must be the one
// returned by the matching Install call.
func Uninstall(tok string) error {
	mu.Lock()
	defer mu.Unlock()
	if installed == nil || tok != token {
		return errors.New(ErrUnknownToken, "no renderer installed with this token")
	}
	installed = nil
	token = ""
	return nil
}

// Active returns the installed renderer, or a renderer with default
// options when none is installed.
func Active() Renderer {
	mu.Lock()
	defer mu.Unlock()
	if installed != nil {
		return installed
	}
	return render.New(render.DefaultOptions(), zerolog.Nop())
}

type ctxKey struct{}

// WithDisplay returns a context carrying the renderer.
func WithDisplay(ctx context.Context, r Renderer) context.Context {
	return context.WithValue(ctx, ctxKey{}, r)
}

// FromContext returns the renderer on the context, falling back to the
// active process-wide renderer.
func FromContext(ctx context.Context) Renderer {
	if r, ok := ctx.Value(ctxKey{}).(Renderer); ok && r != nil {
		return r
	}
	return Active()
}
