package optimize

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	inkscape "github.com/galihrivanto/go-inkscape"
	"github.com/kpango/glg"
)

// Inkscape optimizes through a long-running inkscape shell: unused defs are vacuumed
// and the document is exported as plain SVG.
type Inkscape struct {
	// inkscape shell handles one document at a time
	mu     sync.Mutex
	proxy  *inkscape.Proxy
	tmpDir string
}

// NewInkscape starts inkscape. Call Close when done.
func NewInkscape(verbose bool) (*Inkscape, error) {
	tmpDir, err := os.MkdirTemp("", "figicons-inkscape")
	if err != nil {
		return nil, fmt.Errorf("creating temp dir: %w", err)
	}

	proxy := inkscape.NewProxy(inkscape.Verbose(verbose))
	if err := proxy.Run(); err != nil {
		os.RemoveAll(tmpDir)
		return nil, fmt.Errorf("cannot run inkscape: %w", err)
	}

	glg.Infof("inkscape: started (work dir %s)", tmpDir)

	return &Inkscape{
		proxy:  proxy,
		tmpDir: tmpDir,
	}, nil
}

// Optimize implements Optimizer.
func (i *Inkscape) Optimize(ctx context.Context, markup, path string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	i.mu.Lock()
	defer i.mu.Unlock()

	base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	in := filepath.Join(i.tmpDir, base+".in.svg")
	out := filepath.Join(i.tmpDir, base+".out.svg")

	defer os.Remove(in)
	defer os.Remove(out)

	if err := os.WriteFile(in, []byte(markup), 0o644); err != nil {
		return "", fmt.Errorf("writing %s: %w", in, err)
	}

	if _, err := i.proxy.RawCommandsContext(
		ctx,
		fmt.Sprintf("file-open:%s", in),
		"vacuum-defs",
		fmt.Sprintf("export-filename:%s", out),
		"export-plain-svg",
		"export-do",
		"file-close",
	); err != nil {
		return "", fmt.Errorf("inkscape %s: %w", base, err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		return "", fmt.Errorf("reading inkscape output for %s: %w", base, err)
	}

	return string(data), nil
}

// Close stops inkscape and removes temporary files.
func (i *Inkscape) Close() error {
	var errs []error

	if err := i.proxy.Close(); err != nil {
		errs = append(errs, fmt.Errorf("stopping inkscape: %w", err))
	}

	if err := os.RemoveAll(i.tmpDir); err != nil {
		errs = append(errs, fmt.Errorf("removing %s: %w", i.tmpDir, err))
	}

	return errors.Join(errs...)
}
