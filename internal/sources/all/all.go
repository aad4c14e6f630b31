// Package all enables every built-in scraper.
package all

import (
	// Scraper packages register themselves with the catalog on init.
	_ "github.com/nao1215/lnsources/internal/sources/en"
	_ "github.com/nao1215/lnsources/internal/sources/ja"
	_ "github.com/nao1215/lnsources/internal/sources/multi"
	_ "github.com/nao1215/lnsources/internal/sources/zh"
)
