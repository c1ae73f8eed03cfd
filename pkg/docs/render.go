package docs

import "fmt"

// Default values used when header fields are absent.
const (
	DefaultTitle       = "Documentation"
	DefaultImageSrc    = "./images/deco_gopher.png"
	DefaultImageAlt    = "Go Gopher Artist"
	DefaultImageWidth  = 200
	DefaultImageHeight = 200
)

// RenderHeader renders the title, optional image block, and subtitle.
// It never fails; missing fields fall back to defaults or are omitted.
func RenderHeader(cfg *Config) []string {
	var lines []string

	title := cfg.Header.Title
	if title == "" {
		title = DefaultTitle
	}
	lines = append(lines, "# "+title, "")

	if cfg.ShowImage() && cfg.Header.Image != nil {
		img := cfg.Header.Image
		src := img.Src
		if src == "" {
			src = DefaultImageSrc
		}
		alt := img.Alt
		if alt == "" {
			alt = DefaultImageAlt
		}
		width := img.Width
		if width == 0 {
			width = DefaultImageWidth
		}
		height := img.Height
		if height == 0 {
			height = DefaultImageHeight
		}

		lines = append(lines, `<div align="center">`)
		lines = append(lines, fmt.Sprintf(`  <img src=%q alt=%q width="%d" height="%d">`, src, alt, width, height))
		lines = append(lines, "  <br>")
		if img.Caption != "" {
			lines = append(lines, fmt.Sprintf("  <em>%s</em>", img.Caption))
		}
		lines = append(lines, "</div>", "")
	}

	if cfg.Header.Subtitle != "" {
		lines = append(lines, cfg.Header.Subtitle, "")
	}

	return lines
}

// RenderSections renders the documentation sections list.
// Entries missing a title or file are skipped; remaining entries keep
// their source order. An empty list renders nothing, not an empty heading.
func RenderSections(cfg *Config) []string {
	if len(cfg.Sections) == 0 {
		return nil
	}

	lines := []string{"## 📚 Documentation Sections", ""}
	for _, section := range cfg.Sections {
		if section.Title == "" || section.File == "" {
			continue
		}
		entry := fmt.Sprintf("- [%s](./%s)", section.Title, section.File)
		if section.Description != "" {
			entry += " - " + section.Description
		}
		lines = append(lines, entry)
	}
	lines = append(lines, "")

	return lines
}

// RenderQuickLinks renders the quick links list.
// Entries missing a title or URL are skipped.
func RenderQuickLinks(cfg *Config) []string {
	if len(cfg.QuickLinks) == 0 {
		return nil
	}

	lines := []string{"## 🚀 Quick Links", ""}
	for _, link := range cfg.QuickLinks {
		if link.Title == "" || link.URL == "" {
			continue
		}
		lines = append(lines, fmt.Sprintf("- [%s](%s)", link.Title, link.URL))
	}
	lines = append(lines, "")

	return lines
}
