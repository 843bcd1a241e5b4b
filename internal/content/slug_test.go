package content_test

import (
	"strings"
	"testing"

	"github.com/tidynest/sitekit/internal/content"
)

func TestNormalizeSlug(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"House Cleaning", "house-cleaning"},
		{"  Sydney  ", "sydney"},
		{"bond-cleaning", "bond-cleaning"},
	}

	for _, tc := range cases {
		got, err := content.NormalizeSlug(tc.in)
		if err != nil {
			t.Errorf("NormalizeSlug(%q) error = %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("NormalizeSlug(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestNormalizePath(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"/Sydney/House Cleaning", "/sydney/house-cleaning"},
		{"sydney/house-cleaning", "/sydney/house-cleaning"},
		{"/about", "/about"},
		{"/", "/"},
	}

	for _, tc := range cases {
		got, err := content.NormalizePath(tc.in)
		if err != nil {
			t.Errorf("NormalizePath(%q) error = %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("NormalizePath(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestIsValidPath(t *testing.T) {
	valid := []string{"/", "/about", "/sydney/house-cleaning"}
	for _, path := range valid {
		if !content.IsValidPath(path) {
			t.Errorf("IsValidPath(%q) = false", path)
		}
	}

	invalid := []string{"", "about", "/About Us", "/a//b"}
	for _, path := range invalid {
		if content.IsValidPath(path) {
			t.Errorf("IsValidPath(%q) = true", path)
		}
	}
}

func TestRenderRichText(t *testing.T) {
	html, err := content.RenderRichText("# Why choose us\n\nWe bring our own supplies.")
	if err != nil {
		t.Fatalf("RenderRichText() error = %v", err)
	}
	if html == "" {
		t.Fatal("expected rendered output")
	}
	if want := "<h1"; !strings.Contains(html, want) {
		t.Errorf("output missing %q: %s", want, html)
	}
}
