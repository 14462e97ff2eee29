package assets

import (
	"archive/zip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// modelExtensions are the model container formats the pipeline accepts.
// File bytes are opaque; only names feed the resolver.
var modelExtensions = []string{".glb", ".fbx", ".obj"}

// archivePatterns are tried in order when locating the asset pack,
// most specific first
var archivePatterns = []string{
	"KayKit_Forest*.zip",
	"kaykit*forest*.zip",
	"kaykit*.zip",
	"*.zip",
}

// FindArchive locates the asset pack zip in dir. Returns an error when no
// pattern matches anything; that is fatal for the whole run.
func FindArchive(dir string) (string, error) {
	for _, pattern := range archivePatterns {
		matches, err := filepath.Glob(filepath.Join(dir, pattern))
		if err != nil {
			return "", fmt.Errorf("bad archive pattern %q: %w", pattern, err)
		}
		if len(matches) > 0 {
			sort.Strings(matches)
			return matches[0], nil
		}
	}
	return "", fmt.Errorf("no asset archive found in %s", dir)
}

// ListModels returns a map of model basename to zip entry path for every model
// file in the archive. When two entries share a basename the lexicographically
// first entry wins, keeping the result independent of zip entry order.
func ListModels(zipPath string) (map[string]string, error) {
	reader, err := zip.OpenReader(zipPath)
	if err != nil {
		return nil, fmt.Errorf("open archive %s: %w", zipPath, err)
	}
	defer reader.Close()

	entries := make([]string, 0, len(reader.File))
	for _, f := range reader.File {
		if isModelFile(f.Name) {
			entries = append(entries, f.Name)
		}
	}
	sort.Strings(entries)

	models := make(map[string]string, len(entries))
	for _, entry := range entries {
		base := filepath.Base(entry)
		if _, ok := models[base]; !ok {
			models[base] = entry
		}
	}
	return models, nil
}

// ModelNames returns the sorted basenames of a ListModels result
func ModelNames(models map[string]string) []string {
	names := make([]string, 0, len(models))
	for name := range models {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Extract copies every resolved model file out of the archive into destDir.
// Files already present on disk are skipped so reruns reuse earlier output.
// Returns the number of files extracted (not counting skips).
func Extract(zipPath string, table *RoleTable, models map[string]string, destDir string) (int, error) {
	if err := os.MkdirAll(destDir, 0o755); err != nil {
		return 0, fmt.Errorf("create assets dir: %w", err)
	}

	reader, err := zip.OpenReader(zipPath)
	if err != nil {
		return 0, fmt.Errorf("open archive %s: %w", zipPath, err)
	}
	defer reader.Close()

	extracted := 0
	for _, role := range table.Roles() {
		for _, file := range table.Files(role) {
			entry, ok := models[file.Path]
			if !ok {
				continue
			}
			dest := filepath.Join(destDir, file.Path)
			if _, err := os.Stat(dest); err == nil {
				continue
			}
			if err := copyEntry(&reader.Reader, entry, dest); err != nil {
				return extracted, fmt.Errorf("extract %s: %w", file.Path, err)
			}
			extracted++
		}
	}
	return extracted, nil
}

// ExtractTextures copies the texture images the FBX models reference.
// The pack keeps them alongside the fbx models; Unity-specific variants are
// skipped.
func ExtractTextures(zipPath, destDir string) (int, error) {
	reader, err := zip.OpenReader(zipPath)
	if err != nil {
		return 0, fmt.Errorf("open archive %s: %w", zipPath, err)
	}
	defer reader.Close()

	var entries []string
	for _, f := range reader.File {
		name := strings.ToLower(f.Name)
		if strings.HasSuffix(name, ".png") && strings.Contains(name, "/fbx/") && !strings.Contains(name, "unity") {
			entries = append(entries, f.Name)
		}
	}
	sort.Strings(entries)

	extracted := 0
	for _, entry := range entries {
		dest := filepath.Join(destDir, filepath.Base(entry))
		if _, err := os.Stat(dest); err == nil {
			continue
		}
		if err := copyEntry(&reader.Reader, entry, dest); err != nil {
			return extracted, fmt.Errorf("extract texture %s: %w", filepath.Base(entry), err)
		}
		extracted++
	}
	return extracted, nil
}

func copyEntry(reader *zip.Reader, entry, dest string) error {
	src, err := reader.Open(entry)
	if err != nil {
		return err
	}
	defer src.Close()

	dst, err := os.Create(dest)
	if err != nil {
		return err
	}
	defer dst.Close()

	_, err = io.Copy(dst, src)
	return err
}

func isModelFile(name string) bool {
	lower := strings.ToLower(name)
	for _, ext := range modelExtensions {
		if strings.HasSuffix(lower, ext) {
			return true
		}
	}
	return false
}
