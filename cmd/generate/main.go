package main

import (
	"encoding/json"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"showcase.dev/internal/config"
	"showcase.dev/internal/log"
	"showcase.dev/internal/render"
	"showcase.dev/internal/services"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: generate <output-dir>")
		fmt.Println()
		fmt.Println("Writes index.html, projects.json and the assets directory for static hosting.")
		fmt.Println("Content is read from $CONTENT_FILE or $DATA_PATH/site.yaml.")
		os.Exit(1)
	}

	log.Configure(log.Config{Service: "generate"})
	if err := generate(os.Args[1]); err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
		os.Exit(1)
	}
	fmt.Println("Done!")
}

func generate(outputDir string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	renderer, err := render.New()
	if err != nil {
		return err
	}
	source := services.StaticSource{Site: cfg.Site}

	doc, err := services.NewPageService(source, renderer).Render()
	if err != nil {
		return err
	}
	if err := os.WriteFile(filepath.Join(outputDir, "index.html"), doc, 0o644); err != nil {
		return fmt.Errorf("write index.html: %w", err)
	}
	fmt.Printf("  Created index.html (%d bytes)\n", len(doc))

	list := services.NewProjectService(source).GetAll()
	data, err := json.MarshalIndent(list, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal projects: %w", err)
	}
	if err := os.WriteFile(filepath.Join(outputDir, "projects.json"), data, 0o644); err != nil {
		return fmt.Errorf("write projects.json: %w", err)
	}
	fmt.Printf("  Created projects.json (%d featured, %d more)\n", len(list.Featured), len(list.Projects))

	n, err := copyAssets(cfg.AssetsDir, filepath.Join(outputDir, "assets"))
	if err != nil {
		return err
	}
	if n > 0 {
		fmt.Printf("  Copied %d asset(s)\n", n)
	}
	return nil
}

// copyAssets mirrors src into dst. A missing src copies nothing.
func copyAssets(src, dst string) (int, error) {
	if _, err := os.Stat(src); os.IsNotExist(err) {
		return 0, nil
	}

	count := 0
	err := filepath.WalkDir(src, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(src, path)
		if err != nil {
			return err
		}
		target := filepath.Join(dst, rel)
		if d.IsDir() {
			return os.MkdirAll(target, 0o755)
		}
		if err := copyFile(path, target); err != nil {
			return err
		}
		count++
		return nil
	})
	if err != nil {
		return count, fmt.Errorf("copy assets: %w", err)
	}
	return count, nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
