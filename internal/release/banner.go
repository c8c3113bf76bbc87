package release

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/codegen-labs/codegen/internal/branding"
	"go.uber.org/zap"
)

// refreshTimeout bounds the network lookup done after a command finishes.
const refreshTimeout = 2 * time.Second

// PrintBanner prints an update notice from the record in dir, if one applies.
// It never touches the network.
func (c *Checker) PrintBanner(w io.Writer, dir string) {
	if !IsReleaseBuild(c.build) {
		return
	}
	rec, err := newStore(c.fs, dir).read()
	if err != nil || rec == nil || rec.Build != c.build || !rec.Newer {
		return
	}
	fmt.Fprintf(w, "\nUpdate available: %s -> %s\n\n", c.build, rec.Latest)
	fmt.Fprintf(w, "    See https://github.com/%s/releases\n\n", branding.GitHubRepo())
}

// Refresh looks up the latest release when the record in dir is due. Errors
// are logged at debug level and otherwise ignored.
func (c *Checker) Refresh(ctx context.Context, dir string) {
	if !IsReleaseBuild(c.build) {
		return
	}
	st := newStore(c.fs, dir)
	if rec, err := st.read(); err == nil && !rec.due(c.build, time.Now()) {
		return
	}

	ctx, cancel := context.WithTimeout(ctx, refreshTimeout)
	defer cancel()

	rel, err := c.Latest(ctx)
	if err != nil {
		c.logger.Debug("Release lookup failed", zap.Error(err))
		return
	}
	newer, err := Newer(c.build, rel.Version)
	if err != nil {
		c.logger.Debug("Release tag not comparable", zap.String("tag", rel.Version), zap.Error(err))
		return
	}

	if err := st.write(record{
		Build:    c.build,
		Latest:   rel.Version,
		Newer:    newer,
		LookedUp: time.Now(),
	}); err != nil {
		c.logger.Debug("Saving release record failed", zap.Error(err))
	}
}
