package source

import (
	"errors"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
)

type stubScraper struct {
	Base
}

func stubDefinition(urls ...string) Definition {
	return NewDefinition(urls, func(name string) Scraper {
		return &stubScraper{Base: NewBase(name)}
	})
}

func names(instances []*Instance) []string {
	out := make([]string, 0, len(instances))
	for _, inst := range instances {
		out = append(out, inst.Name())
	}
	return out
}

func TestRegistryRegisterAll(t *testing.T) {
	t.Parallel()

	t.Run("accepts valid definitions with normalized urls", func(t *testing.T) {
		t.Parallel()

		reg := NewRegistry(NewPolicy(nil))
		err := reg.RegisterAll([]Entry{
			{Name: "foo", Definition: stubDefinition("https://foo.com/", "  http://foo.org  ", "not-a-url")},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		inst, ok := reg.FindByName("foo")
		if !ok {
			t.Fatal("expected foo to be registered")
		}
		want := []string{"https://foo.com", "http://foo.org"}
		if diff := cmp.Diff(want, inst.BaseURLs()); diff != "" {
			t.Errorf("instance base urls mismatch (-want +got):\n%s", diff)
		}

		scraper, ok := inst.Scraper().(*stubScraper)
		if !ok {
			t.Fatalf("unexpected scraper type %T", inst.Scraper())
		}
		if scraper.Name() != "foo" {
			t.Errorf("expected scraper name foo, got %q", scraper.Name())
		}
		if diff := cmp.Diff(want, scraper.BaseURLs()); diff != "" {
			t.Errorf("scraper base urls were not overwritten (-want +got):\n%s", diff)
		}
	})

	t.Run("definition without valid urls aborts population", func(t *testing.T) {
		t.Parallel()

		reg := NewRegistry(NewPolicy(nil))
		err := reg.RegisterAll([]Entry{
			{Name: "foo", Definition: stubDefinition("https://foo.com/")},
			{Name: "bar", Definition: stubDefinition("", "javascript:void(0)")},
		})

		var invalid *InvalidDefinitionError
		if !errors.As(err, &invalid) {
			t.Fatalf("expected *InvalidDefinitionError, got %v", err)
		}
		if invalid.Name != "bar" {
			t.Errorf("expected offending name bar, got %q", invalid.Name)
		}
		if !errors.Is(err, ErrNoValidBaseURL) {
			t.Errorf("expected ErrNoValidBaseURL, got %v", err)
		}
		if reg.Len() != 0 {
			t.Errorf("expected no published instances, got %v", names(reg.Instances()))
		}
	})

	t.Run("nil url list is a structural error", func(t *testing.T) {
		t.Parallel()

		reg := NewRegistry(nil)
		err := reg.RegisterAll([]Entry{{Name: "nolist", Definition: stubDefinition()}})
		if !errors.Is(err, ErrBaseURLsNotList) {
			t.Errorf("expected ErrBaseURLsNotList, got %v", err)
		}
	})

	t.Run("nil definition", func(t *testing.T) {
		t.Parallel()

		reg := NewRegistry(nil)
		err := reg.RegisterAll([]Entry{{Name: "ghost"}})
		if !errors.Is(err, ErrNilDefinition) {
			t.Errorf("expected ErrNilDefinition, got %v", err)
		}
	})

	t.Run("empty name", func(t *testing.T) {
		t.Parallel()

		reg := NewRegistry(nil)
		err := reg.RegisterAll([]Entry{{Definition: stubDefinition("https://foo.com")}})
		if !errors.Is(err, ErrEmptyName) {
			t.Errorf("expected ErrEmptyName, got %v", err)
		}
	})

	t.Run("nil scraper", func(t *testing.T) {
		t.Parallel()

		reg := NewRegistry(nil)
		def := NewDefinition([]string{"https://foo.com"}, func(string) Scraper { return nil })
		err := reg.RegisterAll([]Entry{{Name: "broken", Definition: def}})
		if !errors.Is(err, ErrNilScraper) {
			t.Errorf("expected ErrNilScraper, got %v", err)
		}
	})

	t.Run("definition bound to rejected host is skipped", func(t *testing.T) {
		t.Parallel()

		reg := NewRegistry(NewPolicy(map[string]string{"blocked.com": "Site is down"}))
		err := reg.RegisterAll([]Entry{
			{Name: "foo", Definition: stubDefinition("https://foo.com/")},
			{Name: "blocked", Definition: stubDefinition("https://ok.example/", "https://blocked.com/")},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if diff := cmp.Diff([]string{"foo"}, names(reg.Instances())); diff != "" {
			t.Errorf("registered names mismatch (-want +got):\n%s", diff)
		}
		wantExcl := []Exclusion{{
			Name:   "blocked",
			URL:    "https://blocked.com",
			Host:   "blocked.com",
			Reason: "Site is down",
		}}
		if diff := cmp.Diff(wantExcl, reg.Exclusions()); diff != "" {
			t.Errorf("exclusions mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("bad escape in base url does not hide a rejected host", func(t *testing.T) {
		t.Parallel()

		reg := NewRegistry(NewPolicy(map[string]string{"blocked.com": "DMCA takedown"}))
		err := reg.RegisterAll([]Entry{
			{Name: "blocked", Definition: stubDefinition("https://blocked.com/100%")},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if reg.Len() != 0 {
			t.Errorf("expected no instance, got %v", names(reg.Instances()))
		}
		excl := reg.Exclusions()
		if len(excl) != 1 || excl[0].Host != "blocked.com" {
			t.Errorf("unexpected exclusions %+v", excl)
		}
	})

	t.Run("base url with bad escape is reachable by host", func(t *testing.T) {
		t.Parallel()

		reg := NewRegistry(NewPolicy(nil))
		err := reg.RegisterAll([]Entry{
			{Name: "foo", Definition: stubDefinition("https://foo.com/100%")},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		inst, err := reg.FindByURL("https://foo.com/x")
		if err != nil || inst == nil || inst.Name() != "foo" {
			t.Fatalf("expected foo, got (%v, %v)", inst, err)
		}
		if diff := cmp.Diff([]string{"foo.com"}, inst.Hosts()); diff != "" {
			t.Errorf("hosts mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("rejected host is checked after validation", func(t *testing.T) {
		t.Parallel()

		// The invalid entry must still abort even if it names a rejected host.
		reg := NewRegistry(NewPolicy(map[string]string{"blocked.com": "Site is down"}))
		err := reg.RegisterAll([]Entry{
			{Name: "broken", Definition: stubDefinition("blocked.com")},
		})
		if !errors.Is(err, ErrNoValidBaseURL) {
			t.Errorf("expected ErrNoValidBaseURL, got %v", err)
		}
	})

	t.Run("second population is refused", func(t *testing.T) {
		t.Parallel()

		reg := NewRegistry(nil)
		if err := reg.RegisterAll([]Entry{{Name: "foo", Definition: stubDefinition("https://foo.com")}}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		err := reg.RegisterAll([]Entry{{Name: "bar", Definition: stubDefinition("https://bar.com")}})
		if !errors.Is(err, ErrAlreadyPopulated) {
			t.Errorf("expected ErrAlreadyPopulated, got %v", err)
		}
		if diff := cmp.Diff([]string{"foo"}, names(reg.Instances())); diff != "" {
			t.Errorf("registry changed after refused population (-want +got):\n%s", diff)
		}
	})

	t.Run("registration order is discovery order", func(t *testing.T) {
		t.Parallel()

		reg := NewRegistry(nil)
		err := reg.RegisterAll([]Entry{
			{Name: "c", Definition: stubDefinition("https://c.example")},
			{Name: "a", Definition: stubDefinition("https://a.example")},
			{Name: "b", Definition: stubDefinition("https://b.example")},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if diff := cmp.Diff([]string{"c", "a", "b"}, names(reg.Instances())); diff != "" {
			t.Errorf("order mismatch (-want +got):\n%s", diff)
		}
	})
}

func TestRegistryFindByURL(t *testing.T) {
	t.Parallel()

	reg := NewRegistry(NewPolicy(map[string]string{"blocked.com": "Site is down"}))
	err := reg.RegisterAll([]Entry{
		{Name: "foo", Definition: stubDefinition("https://foo.com/", "http://foo.org")},
		{Name: "first", Definition: stubDefinition("https://dup.com")},
		{Name: "second", Definition: stubDefinition("https://other.example", "https://dup.com")},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	tests := []struct {
		name string
		url  string
		want string
	}{
		{name: "first base url", url: "https://foo.com/novel/1", want: "foo"},
		{name: "second base url", url: "http://foo.org/x", want: "foo"},
		{name: "host match ignores scheme", url: "http://foo.com/", want: "foo"},
		{name: "host match ignores case", url: "https://FOO.com", want: "foo"},
		{name: "host match ignores default port", url: "https://foo.com:443/a", want: "foo"},
		{name: "first registered wins", url: "https://dup.com/novel", want: "first"},
		{name: "later instance by its own host", url: "https://other.example/", want: "second"},
		{name: "unknown host", url: "https://unknown.example/", want: ""},
		{name: "subdomain is a different host", url: "https://www.foo.com/", want: ""},
		{name: "malformed url", url: "not-a-url", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			inst, err := reg.FindByURL(tt.url)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			got := ""
			if inst != nil {
				got = inst.Name()
			}
			if got != tt.want {
				t.Errorf("FindByURL(%q) = %q, want %q", tt.url, got, tt.want)
			}
		})
	}

	t.Run("rejected host", func(t *testing.T) {
		t.Parallel()

		inst, err := reg.FindByURL("https://blocked.com/x")
		if inst != nil {
			t.Errorf("expected no instance, got %s", inst.Name())
		}
		var rejected *RejectedSourceError
		if !errors.As(err, &rejected) {
			t.Fatalf("expected *RejectedSourceError, got %v", err)
		}
		if rejected.Reason != "Site is down" {
			t.Errorf("expected reason 'Site is down', got %q", rejected.Reason)
		}
	})

	t.Run("rejected host with bad escapes", func(t *testing.T) {
		t.Parallel()

		for _, u := range []string{"https://blocked.com/100%", "https://blocked.com/chapter#50%"} {
			inst, err := reg.FindByURL(u)
			if inst != nil {
				t.Errorf("FindByURL(%q): expected no instance, got %s", u, inst.Name())
			}
			if !errors.Is(err, ErrRejectedSource) {
				t.Errorf("FindByURL(%q): expected ErrRejectedSource, got %v", u, err)
			}
		}
	})

	t.Run("lookups are idempotent", func(t *testing.T) {
		t.Parallel()

		a, _ := reg.FindByURL("https://dup.com")
		b, _ := reg.FindByURL("https://dup.com")
		if a != b {
			t.Error("expected the same instance on repeated lookups")
		}
	})
}

func TestRegistryFindByName(t *testing.T) {
	t.Parallel()

	reg := NewRegistry(nil)
	err := reg.RegisterAll([]Entry{
		{Name: "en.r.royalroad", Definition: stubDefinition("https://www.royalroad.com")},
		{Name: "dup", Definition: stubDefinition("https://one.example")},
		{Name: "dup", Definition: stubDefinition("https://two.example")},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, ok := reg.FindByName("en.r.royalroad"); !ok {
		t.Error("expected exact name to match")
	}
	if _, ok := reg.FindByName("EN.R.ROYALROAD"); ok {
		t.Error("name lookup must be case sensitive")
	}
	if _, ok := reg.FindByName("royalroad"); ok {
		t.Error("name lookup must not match a suffix")
	}

	inst, ok := reg.FindByName("dup")
	if !ok {
		t.Fatal("expected dup to match")
	}
	if diff := cmp.Diff([]string{"https://one.example"}, inst.BaseURLs()); diff != "" {
		t.Errorf("expected first registered dup (-want +got):\n%s", diff)
	}
}

func TestRegistryBeforePopulation(t *testing.T) {
	t.Parallel()

	reg := NewRegistry(nil)
	if inst, err := reg.FindByURL("https://foo.com"); inst != nil || err != nil {
		t.Errorf("expected (nil, nil), got (%v, %v)", inst, err)
	}
	if _, ok := reg.FindByName("foo"); ok {
		t.Error("expected no match on an empty registry")
	}
	if len(reg.Instances()) != 0 || len(reg.Exclusions()) != 0 {
		t.Error("expected empty enumerations")
	}
}

func TestRegistryInstancesIsACopy(t *testing.T) {
	t.Parallel()

	reg := NewRegistry(nil)
	if err := reg.RegisterAll([]Entry{{Name: "foo", Definition: stubDefinition("https://foo.com")}}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	list := reg.Instances()
	list[0] = nil
	urls := reg.Instances()[0].BaseURLs()
	urls[0] = "https://evil.example"

	inst := reg.Instances()[0]
	if inst == nil || inst.BaseURLs()[0] != "https://foo.com" {
		t.Error("callers must not be able to mutate the registry")
	}
}

func TestRegistryConcurrentReads(t *testing.T) {
	t.Parallel()

	reg := NewRegistry(NewPolicy(map[string]string{"blocked.com": "Site is down"}))
	if err := reg.RegisterAll([]Entry{{Name: "foo", Definition: stubDefinition("https://foo.com")}}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var wg sync.WaitGroup
	for range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 100 {
				if inst, err := reg.FindByURL("https://foo.com/x"); err != nil || inst == nil {
					t.Errorf("unexpected lookup result (%v, %v)", inst, err)
					return
				}
				if _, err := reg.FindByURL("https://blocked.com/"); !errors.Is(err, ErrRejectedSource) {
					t.Errorf("expected rejection, got %v", err)
					return
				}
			}
		}()
	}
	wg.Wait()
}
