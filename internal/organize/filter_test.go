package organize

import (
	"reflect"
	"testing"
)

func TestExtensionFilter_Match(t *testing.T) {
	tests := []struct {
		name  string
		types []string
		file  string
		want  bool
	}{
		{name: "plain match", types: []string{"jpg"}, file: "a.jpg", want: true},
		{name: "uppercase filename", types: []string{"jpg"}, file: "IMG_0001.JPG", want: true},
		{name: "uppercase allowlist entry", types: []string{"JPG"}, file: "a.jpg", want: true},
		{name: "leading dot in allowlist entry", types: []string{".jpg"}, file: "a.jpg", want: true},
		{name: "non-matching extension", types: []string{"jpg", "png"}, file: "notes.txt", want: false},
		{name: "no extension", types: []string{"jpg"}, file: "Makefile", want: false},
		{name: "dotfile without extension", types: []string{"jpg"}, file: ".hidden", want: false},
		{name: "only the final suffix counts", types: []string{"jpg"}, file: "a.jpg.bak", want: false},
		{name: "whitespace around entries", types: []string{" jpg "}, file: "a.jpg", want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := NewExtensionFilter(tt.types)
			if got := f.Match(tt.file); got != tt.want {
				t.Errorf("Match(%q) = %v, want %v", tt.file, got, tt.want)
			}
		})
	}
}

func TestExtensionFilter_Empty(t *testing.T) {
	if !NewExtensionFilter(nil).Empty() {
		t.Error("Empty() = false for nil types, want true")
	}
	if !NewExtensionFilter([]string{"", "  ", "."}).Empty() {
		t.Error("Empty() = false for blank entries, want true")
	}
	if NewExtensionFilter([]string{"jpg"}).Empty() {
		t.Error("Empty() = true for populated filter, want false")
	}
}

func TestExtensionFilter_Types(t *testing.T) {
	f := NewExtensionFilter([]string{"PNG", ".jpg", "arw", "jpg"})
	want := []string{"arw", "jpg", "png"}
	if got := f.Types(); !reflect.DeepEqual(got, want) {
		t.Errorf("Types() = %v, want %v", got, want)
	}
}
