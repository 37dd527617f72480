package core

import (
	"context"
	"time"

	"github.com/JonMunkholm/prodtable/internal/logging"
)

// ProductProvider reads the resource and parses it into products.
type ProductProvider struct {
	reader Reader
	parser Parser
}

// NewProductProvider composes a reader and a parser.
func NewProductProvider(reader Reader, parser Parser) *ProductProvider {
	return &ProductProvider{reader: reader, parser: parser}
}

// Products returns every product of the resource, or the first error.
func (p *ProductProvider) Products(ctx context.Context) ([]Product, error) {
	text, err := p.reader.Read(ctx)
	if err != nil {
		return nil, err
	}
	return p.parser.Parse(ctx, text)
}

// Pipeline runs provider then renderer exactly once.
type Pipeline struct {
	provider *ProductProvider
	renderer Renderer
}

// NewPipeline creates a pipeline.
func NewPipeline(provider *ProductProvider, renderer Renderer) *Pipeline {
	return &Pipeline{provider: provider, renderer: renderer}
}

// Run renders the products of the resource. Read and parse errors are
// returned before the renderer is called, so a failed run writes nothing.
func (p *Pipeline) Run(ctx context.Context) error {
	start := time.Now()

	products, err := p.provider.Products(ctx)
	if err != nil {
		return err
	}

	if err := p.renderer.Render(ctx, products); err != nil {
		return err
	}

	logging.FromContext(ctx).Info("run complete",
		"records", len(products),
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return nil
}
