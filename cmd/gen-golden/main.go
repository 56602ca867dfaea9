// Command gen-golden regenerates the toggle-all and list golden files for
// every markdown sample under testdata.
package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toggler "github.com/aikruger/transclusion-toggler"
	"github.com/spf13/pflag"
)

func main() {
	root := pflag.String("root", "testdata", "directory holding the markdown samples")
	pflag.Parse()

	var paths []string
	err := filepath.WalkDir(*root, func(path string, d os.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if !d.IsDir() && strings.HasSuffix(path, ".md") {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		fatalf("walk %s: %v", *root, err)
	}
	if len(paths) == 0 {
		fatalf("no markdown files found under %s", *root)
	}
	for _, path := range paths {
		f, err := os.Open(path)
		if err != nil {
			fatalf("read %s: %v", path, err)
		}
		buf, err := toggler.ReadBuffer(f)
		_ = f.Close()
		if err != nil {
			fatalf("read %s: %v", path, err)
		}

		var listed bytes.Buffer
		if err := toggler.List(toggler.ListRequest{Tokens: toggler.ScanDocument(buf), Writer: &listed}); err != nil {
			fatalf("list %s: %v", path, err)
		}
		writeGolden(goldenPath(*root, path, "list"), listed.Bytes())

		toggler.New().ToggleAll(buf)
		writeGolden(goldenPath(*root, path, "all"), []byte(buf.GetValue()))
	}
}

func writeGolden(path string, data []byte) {
	if err := os.WriteFile(path, data, 0o644); err != nil {
		fatalf("write %s: %v", path, err)
	}
	fmt.Fprintf(os.Stdout, "wrote %s\n", path)
}

func goldenPath(root, mdPath, kind string) string {
	rel, err := filepath.Rel(root, mdPath)
	if err != nil {
		rel = mdPath
	}
	name := strings.TrimSuffix(rel, ".md")
	name = strings.ReplaceAll(filepath.ToSlash(name), "/", "__")
	return filepath.Join(root, fmt.Sprintf("%s.%s.golden", name, kind))
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
