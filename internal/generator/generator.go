package generator

import (
	"context"
	"path"

	"github.com/codegen-labs/codegen/internal/ai"
	"github.com/spf13/afero"
	"go.uber.org/zap"
)

// Completer is the remote generation service as seen by the generator.
type Completer interface {
	Generate(ctx context.Context, prompt string) ai.Outcome
}

// Generator runs requests against a Completer and writes into an afero.Fs.
type Generator struct {
	client Completer
	fs     afero.Fs
	logger *zap.Logger
}

// Option configures a Generator.
type Option func(*Generator)

// WithFs sets the filesystem files are written to. Paths are relative to its
// root, so callers usually pass an afero.BasePathFs.
func WithFs(fs afero.Fs) Option {
	return func(g *Generator) {
		g.fs = fs
	}
}

// WithLogger sets the logger for fallback and write diagnostics.
func WithLogger(l *zap.Logger) Option {
	return func(g *Generator) {
		if l != nil {
			g.logger = l
		}
	}
}

// New creates a Generator writing to the OS filesystem relative to the
// current directory unless WithFs is given.
func New(client Completer, opts ...Option) *Generator {
	g := &Generator{
		client: client,
		fs:     afero.NewOsFs(),
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Run generates and writes every file of req. Generation failures switch the
// whole run to template content; only validation and filesystem failures are
// returned as errors.
func (g *Generator) Run(ctx context.Context, req Request) (*Result, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	arts := plan(req)
	files, origin, cause := g.produce(ctx, req.Name, arts)

	if err := g.write(files); err != nil {
		return nil, err
	}

	return &Result{Files: files, Origin: origin, Fallback: cause}, nil
}

// produce resolves file contents. Prompts are issued one at a time; the first
// failure stops further requests and every file is rendered from templates.
func (g *Generator) produce(ctx context.Context, name string, arts []artifact) ([]OutputFile, Origin, error) {
	remote := make([]string, len(arts))
	var cause *ai.GenerationError

	for i, a := range arts {
		if a.prompt == "" {
			continue
		}
		g.logger.Debug("Requesting generation", zap.String("file", a.path))
		out := g.client.Generate(ctx, a.prompt)
		if !out.OK() {
			cause = out.Err
			break
		}
		remote[i] = out.Content
	}

	files := make([]OutputFile, len(arts))
	if cause != nil {
		g.logger.Info("AI generation failed, falling back to template", zap.Error(cause))
		for i, a := range arts {
			files[i] = OutputFile{Path: a.path, Contents: a.fallback(name)}
		}
		return files, OriginTemplate, cause
	}

	for i, a := range arts {
		contents := remote[i]
		if a.prompt == "" {
			contents = a.static
		}
		files[i] = OutputFile{Path: a.path, Contents: contents}
	}
	return files, OriginRemote, nil
}

// write creates parent directories and writes each file, overwriting any
// existing file. Writes are independent; a failure leaves earlier files.
func (g *Generator) write(files []OutputFile) error {
	for _, f := range files {
		dir := path.Dir(f.Path)
		if err := g.fs.MkdirAll(dir, 0755); err != nil {
			return &FilesystemError{Op: "mkdir", Path: dir, Err: err}
		}
		if err := afero.WriteFile(g.fs, f.Path, []byte(f.Contents), 0644); err != nil {
			return &FilesystemError{Op: "write", Path: f.Path, Err: err}
		}
		g.logger.Debug("Wrote file", zap.String("path", f.Path), zap.Int("bytes", len(f.Contents)))
	}
	return nil
}
