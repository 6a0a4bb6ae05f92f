package patterns

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFindEmails(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"scenario", "contact me at a.b@example.com today", []string{"a.b@example.com"}},
		{"several in order", "x@y.io, then Z_9+tag@mail.example.org.", []string{"x@y.io", "Z_9+tag@mail.example.org"}},
		{"uppercase tld rejected", "BOSS@EXAMPLE.COM", nil},
		{"uppercase tld partially lowercase", "me@host.Com", nil},
		{"mixed case local part", "John.Doe@Example.net", []string{"John.Doe@Example.net"}},
		{"single letter tld rejected", "a@b.c", nil},
		{"no at sign", "nobody here", nil},
		{"empty", "", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FindEmails(tt.in)
			if tt.want == nil {
				assert.Empty(t, got)
				return
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFindDates(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"scenario", "meet on 5/6/2024 or 05-06-24", []string{"5/6/2024", "05-06-24"}},
		{"dots", "due 31.12.1999.", []string{"31.12.1999"}},
		{"mixed separators", "1/2-03", []string{"1/2-03"}},
		{"no validation", "99/99/9999", []string{"99/99/9999"}},
		{"duplicates kept", "1/1/20 and 1/1/20", []string{"1/1/20", "1/1/20"}},
		{"year too long", "12/31/19999", nil},
		{"embedded in word", "x1/2/2020", nil},
		{"two parts only", "12/2020", nil},
		{"non-ascii letter is a boundary", "é5/6/2024", []string{"5/6/2024"}},
		{"non-ascii digits ignored", "٥/٦/٢٠٢٤", nil},
		{"empty", "", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FindDates(tt.in)
			if tt.want == nil {
				assert.Empty(t, got)
				return
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFind(t *testing.T) {
	p := Find("Write to team@corp.dev before 1.2.2025")

	assert.Equal(t, []string{"team@corp.dev"}, p.Emails)
	assert.Equal(t, []string{"1.2.2025"}, p.Dates)
}

func TestExtractor_Independent(t *testing.T) {
	e := NewExtractor()

	assert.Equal(t, []string{"a@bc.de"}, e.Emails("a@bc.de"))
	assert.Empty(t, e.Dates("a@bc.de"))
}
