// Copyright (c) 2026 DevConnect. All rights reserved.
// Author: anh.nguyenduc.vn@gmail.com

package sec

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGravatarURL(t *testing.T) {
	// md5("alice@example.com") = c160f8cc69a4f0bf2b0362752353d060
	want := "https://www.gravatar.com/avatar/c160f8cc69a4f0bf2b0362752353d060?s=200&r=pg&d=mm"

	assert.Equal(t, want, GravatarURL("alice@example.com"))
}

func TestGravatarURL_NormalizesInput(t *testing.T) {
	base := GravatarURL("alice@example.com")

	assert.Equal(t, base, GravatarURL("  alice@example.com  "))
	assert.Equal(t, base, GravatarURL("Alice@Example.COM"))
}
