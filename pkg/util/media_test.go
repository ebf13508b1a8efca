package util

import "testing"

func TestCloudinaryPublicID(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		url  string
		want string
	}{
		{
			"versioned with folder",
			"https://res.cloudinary.com/demo/image/upload/v1695060000/catalog/items/hammer.jpg",
			"catalog/items/hammer",
		},
		{
			"no version segment",
			"https://res.cloudinary.com/demo/image/upload/catalog/hammer.png",
			"catalog/hammer",
		},
		{
			"query string stripped",
			"https://res.cloudinary.com/demo/image/upload/v1/catalog/hammer.jpg?w=300",
			"catalog/hammer",
		},
		{
			"folder starting with v is not a version",
			"https://res.cloudinary.com/demo/image/upload/vendor/hammer.jpg",
			"vendor/hammer",
		},
		{
			"not a cloudinary upload url",
			"https://cdn.example/hammer.jpg",
			"",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := CloudinaryPublicID(tt.url); got != tt.want {
				t.Errorf("CloudinaryPublicID(%q) = %q, want %q", tt.url, got, tt.want)
			}
		})
	}
}

func TestDestroyMedia_rejectsEmptyID(t *testing.T) {
	t.Parallel()

	if _, err := DestroyMedia(""); err == nil {
		t.Error("expected error for empty public id")
	}
}
