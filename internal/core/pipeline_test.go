package core

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/require"
)

type countingRenderer struct {
	calls int
	got   []Product
}

func (r *countingRenderer) Render(_ context.Context, products []Product) error {
	r.calls++
	r.got = products
	return nil
}

type stubReader struct {
	text string
	err  error
}

func (r stubReader) Read(context.Context) (string, error) {
	return r.text, r.err
}

func newTestPipeline(fsys fstest.MapFS, out *bytes.Buffer) *Pipeline {
	provider := NewProductProvider(NewResourceReader(fsys, "products.csv", 0), NewCSVParser(true))
	return NewPipeline(provider, NewTableRenderer(out))
}

func TestPipeline_Run(t *testing.T) {
	fsys := fstest.MapFS{"products.csv": {Data: []byte(csvText(
		"1,Chair,Oak,2,49.99,10,http://x/c.png,2024-01-01,2024-01-02",
		"2,Table,Pine,3,120.00,4,http://x/t.png,2024-02-01,2024-02-03",
	) + "\n")}}

	var first, second bytes.Buffer
	require.NoError(t, newTestPipeline(fsys, &first).Run(context.Background()))
	require.NoError(t, newTestPipeline(fsys, &second).Run(context.Background()))

	require.NotEmpty(t, first.String())
	require.Equal(t, first.String(), second.String())
	require.NotContains(t, first.String(), "product_id")
	require.Contains(t, first.String(), "| 1  | Chair")
}

func TestPipeline_FailureWritesNothing(t *testing.T) {
	tests := []struct {
		name string
		fsys fstest.MapFS
		want error
	}{
		{
			name: "missing resource",
			fsys: fstest.MapFS{},
			want: ErrResourceNotFound,
		},
		{
			name: "bad row",
			fsys: fstest.MapFS{"products.csv": {Data: []byte(csvText(
				"1,Chair,Oak,2,49.99,10,http://x/c.png,2024-01-01",
			))}},
			want: ErrFieldCount,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			err := newTestPipeline(tt.fsys, &out).Run(context.Background())
			require.ErrorIs(t, err, tt.want)
			require.Zero(t, out.Len())
		})
	}
}

func TestPipeline_RendererCalledOnce(t *testing.T) {
	renderer := &countingRenderer{}
	provider := NewProductProvider(stubReader{text: testHeader}, NewCSVParser(true))

	require.NoError(t, NewPipeline(provider, renderer).Run(context.Background()))
	require.Equal(t, 1, renderer.calls)
	require.NotNil(t, renderer.got)
	require.Empty(t, renderer.got)
}

func TestPipeline_ReadErrorSkipsRenderer(t *testing.T) {
	renderer := &countingRenderer{}
	readErr := errors.Join(ErrIOFailure, errors.New("permission denied"))
	provider := NewProductProvider(stubReader{err: readErr}, NewCSVParser(true))

	err := NewPipeline(provider, renderer).Run(context.Background())
	require.ErrorIs(t, err, ErrIOFailure)
	require.Zero(t, renderer.calls)
}

func TestProductProvider_Products(t *testing.T) {
	provider := NewProductProvider(stubReader{text: csvText(
		"7,Lamp,Desk lamp,1,19.50,3,http://x/l.png,2024-03-01,2024-03-01",
	)}, NewCSVParser(false))

	products, err := provider.Products(context.Background())
	require.NoError(t, err)
	require.Len(t, products, 1)
	require.Equal(t, 7, products[0].ID)
	require.Equal(t, "19.50", products[0].Price.StringFixed(2))
}
