package covers

import "testing"

func TestURL(t *testing.T) {
	tests := []struct {
		name    string
		coverID int
		size    Size
		want    string
	}{
		{"small", 11481354, Small, "https://covers.openlibrary.org/b/id/11481354-S.jpg"},
		{"medium", 11481354, Medium, "https://covers.openlibrary.org/b/id/11481354-M.jpg"},
		{"large", 11481354, Large, "https://covers.openlibrary.org/b/id/11481354-L.jpg"},
		{"no cover small", 0, Small, ""},
		{"no cover medium", 0, Medium, ""},
		{"no cover large", 0, Large, ""},
		{"negative id", -1, Large, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := URL(tt.coverID, tt.size); got != tt.want {
				t.Errorf("URL(%d, %s) = %q, want %q", tt.coverID, tt.size, got, tt.want)
			}
		})
	}
}
