package figicons

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gucio321/figicons/pkg/figma"
	"github.com/gucio321/figicons/pkg/ledger"
	"github.com/gucio321/figicons/pkg/optimize"
)

const (
	twoTonedSVG = `<svg width="20" height="20" viewBox="0 0 20 20" fill="none" xmlns="http://www.w3.org/2000/svg"><path d="M2 2H18V18H2Z" fill="#E5F1FF"/></svg>`
	filledSVG   = `<svg width="20" height="20" viewBox="0 0 20 20" fill="none" xmlns="http://www.w3.org/2000/svg"><path d="M4 4H16V16H4Z" fill="#838691"/></svg>`
)

type fakeSource struct {
	file    *figma.FileExport
	fileErr error
	markup  map[string]string
}

func (f *fakeSource) File(context.Context) (*figma.FileExport, error) {
	return f.file, f.fileErr
}

func (f *fakeSource) ImageLocators(_ context.Context, ids []string) (map[string]string, error) {
	result := make(map[string]string)
	for _, id := range ids {
		if _, ok := f.markup[id]; ok {
			result[id] = "mem://" + id
		}
	}

	return result, nil
}

func (f *fakeSource) RawMarkup(_ context.Context, u string) (string, error) {
	return f.markup[strings.TrimPrefix(u, "mem://")], nil
}

func files(t *testing.T, dir string) []string {
	t.Helper()

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)

	var result []string
	for _, e := range entries {
		result = append(result, e.Name())
	}

	sort.Strings(result)

	return result
}

func TestRunCombinesVariants(t *testing.T) {
	src := &fakeSource{
		file: &figma.FileExport{
			Components: []figma.RawComponent{
				{ID: "A", Name: "Style=Filled, Size=20px", ComponentSetID: "S"},
				{ID: "B", Name: "Style=TwoToned, Size=20px", ComponentSetID: "S"},
			},
			ComponentSets: map[string]figma.RawComponentSet{"S": {ID: "S", Name: "Foo"}},
		},
		markup: map[string]string{"A": filledSVG, "B": twoTonedSVG},
	}

	dir := filepath.Join(t.TempDir(), "svg")
	l := ledger.New("KEY")

	result, err := NewPipeline(src, l).OutputDir(dir).Optimizer(optimize.Compact).Run(context.Background())
	require.NoError(t, err)

	assert.Zero(t, l.Len())
	assert.Equal(t, []string{"Foo.svg"}, files(t, dir))
	require.Len(t, result.Written, 1)
	assert.Equal(t, 2, result.Descriptors)

	data, err := os.ReadFile(filepath.Join(dir, "Foo.svg"))
	require.NoError(t, err)
	assert.Contains(t, string(data), `class="twoToned"`)
	assert.Contains(t, string(data), `class="filled"`)
}

func TestRunReportsProblems(t *testing.T) {
	src := &fakeSource{
		file: &figma.FileExport{
			Components: []figma.RawComponent{
				// only filled -> missing two-toned
				{ID: "1", Name: "Style=Filled, Size=20px", ComponentSetID: "Lonely"},
				// duplicated filled
				{ID: "2", Name: "Style=Filled, Size=24px", ComponentSetID: "Dup"},
				{ID: "3", Name: "Style=Filled, Size=24px", ComponentSetID: "Dup"},
				{ID: "4", Name: "Style=TwoToned, Size=24px", ComponentSetID: "Dup"},
				// no artwork
				{ID: "5", Name: "Style=Filled, Size=20px", ComponentSetID: "Ghost"},
				// orphan
				{ID: "6", Name: "Style=Filled, Size=20px"},
				// out of scope
				{ID: "7", Name: "Style=Outlined, Size=20px", ComponentSetID: "Lonely"},
			},
			ComponentSets: map[string]figma.RawComponentSet{
				"Lonely": {Name: "Lonely"},
				"Dup":    {Name: "Dup"},
				"Ghost":  {Name: "Ghost"},
			},
		},
		markup: map[string]string{"1": filledSVG, "2": filledSVG, "3": filledSVG, "4": twoTonedSVG, "7": filledSVG},
	}

	dir := t.TempDir()
	l := ledger.New("KEY")

	_, err := NewPipeline(src, l).OutputDir(dir).Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{"NavDup.svg"}, files(t, dir))

	assert.Equal(t, 1, l.Count(ledger.MissingTwoTonedSVG))
	assert.Equal(t, 1, l.Count(ledger.ComponentNameDuplicated))
	assert.Equal(t, 1, l.Count(ledger.ImageURLNotFound))
	assert.Equal(t, 1, l.Count(ledger.ComponentSetNotFound))
	assert.Equal(t, 4, l.Len())

	var names []string
	for _, r := range l.Rows() {
		names = append(names, r.Name)
	}

	assert.True(t, sort.StringsAreSorted(names), "%v", names)
	assert.Contains(t, names, "Lonely")
}

func TestRunFatal(t *testing.T) {
	src := &fakeSource{fileErr: fmt.Errorf("%w: 403", figma.ErrAPI)}

	_, err := NewPipeline(src, ledger.New("")).OutputDir(t.TempDir()).Run(context.Background())
	assert.True(t, errors.Is(err, figma.ErrAPI))
}
