// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultPattern_Match(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{path: "a.css", want: true},
		{path: "b.js", want: true},
		{path: "index.html", want: true},
		{path: "site/styles/main.css", want: true},
		{path: "./scripts/framework.js", want: true},
		{path: ".hidden/deep/page.html", want: true},
		{path: "c.txt", want: false},
		{path: "data.json", want: false},
		{path: "page.htm", want: false},
		{path: "Makefile", want: false},
		{path: "upper.CSS", want: false},
		{path: "mixed.Js", want: false},
		{path: "a.html.bak", want: false},
		{path: "styles.css/readme.txt", want: false},
		{path: "app.jsx", want: false},
	}

	m, err := New(DefaultPattern)
	require.NoError(t, err)
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, m.Match(tt.path))
		})
	}
}

func TestNew(t *testing.T) {
	t.Run("custom_patterns", func(t *testing.T) {
		m, err := New("**/*.scss", "*.less")
		require.NoError(t, err)
		assert.True(t, m.Match("theme/base.scss"))
		assert.True(t, m.Match("root.less"))
		assert.False(t, m.Match("theme/root.less"))
		assert.False(t, m.Match("a.css"))
	})

	t.Run("invalid_pattern", func(t *testing.T) {
		_, err := New("[a-")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid include pattern")
	})

	t.Run("no_patterns", func(t *testing.T) {
		_, err := New()
		require.Error(t, err)
	})
}
