// Copyright (c) 2026 DevConnect. All rights reserved.
// Author: anh.nguyenduc.vn@gmail.com

package pagination

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromRequest(t *testing.T) {
	tests := []struct {
		name      string
		url       string
		wantPage  int
		wantLimit int
	}{
		{"defaults", "/api/posts", DefaultPage, DefaultLimit},
		{"explicit", "/api/posts?page=3&limit=10", 3, 10},
		{"zero page clamps", "/api/posts?page=0", DefaultPage, DefaultLimit},
		{"negative clamps", "/api/posts?page=-2&limit=-5", DefaultPage, DefaultLimit},
		{"excessive limit clamps", "/api/posts?limit=5000", DefaultPage, DefaultLimit},
		{"garbage clamps", "/api/posts?page=abc&limit=xyz", DefaultPage, DefaultLimit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			params := FromRequest(httptest.NewRequest("GET", tt.url, nil))
			assert.Equal(t, tt.wantPage, params.Page)
			assert.Equal(t, tt.wantLimit, params.Limit)
		})
	}
}

func TestOffset(t *testing.T) {
	assert.Equal(t, 0, Params{Page: 1, Limit: 20}.Offset())
	assert.Equal(t, 20, Params{Page: 2, Limit: 20}.Offset())
	assert.Equal(t, 90, Params{Page: 10, Limit: 10}.Offset())
	assert.Equal(t, 0, Params{Page: 0, Limit: 20}.Offset())
}
