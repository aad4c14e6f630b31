package resolve

import (
	"errors"

	"github.com/nao1215/lnsources/internal/model"
	"github.com/nao1215/lnsources/internal/source"
)

// ResolveURL finds the scraper responsible for rawURL.
// A rejected host yields StatusRejected with the rejection reason.
func ResolveURL(reg *source.Registry, rawURL string) model.Resolution {
	res := model.Resolution{
		Query:  rawURL,
		Host:   source.HostOf(rawURL),
		Status: model.StatusNoMatch,
	}

	inst, err := reg.FindByURL(rawURL)
	if err != nil {
		var rejected *source.RejectedSourceError
		if errors.As(err, &rejected) {
			res.Status = model.StatusRejected
			res.Reason = rejected.Reason
		}
		return res
	}
	if inst != nil {
		res.Status = model.StatusMatched
		res.Scraper = inst.Name()
		res.BaseURLs = inst.BaseURLs()
	}
	return res
}

// ResolveName finds the scraper registered under name.
func ResolveName(reg *source.Registry, name string) model.Resolution {
	res := model.Resolution{
		Query:  name,
		Status: model.StatusNoMatch,
	}
	if inst, ok := reg.FindByName(name); ok {
		res.Status = model.StatusMatched
		res.Scraper = inst.Name()
		res.BaseURLs = inst.BaseURLs()
	}
	return res
}
