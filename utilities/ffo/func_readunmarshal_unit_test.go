// Copyright 2020 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the 'License');
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an 'AS IS' BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package ffo

import (
	"os"
	"path/filepath"
	"testing"
)

type testSettings struct {
	Name      string `yaml:"name" json:"name"`
	Threshold int64  `yaml:"threshold" json:"threshold"`
}

func TestUnitReadUnmarshal(t *testing.T) {
	dir := t.TempDir()
	writeFile := func(name, content string) string {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte(content), 0600); err != nil {
			t.Fatal(err)
		}
		return path
	}
	var testCases = []struct {
		name      string
		path      string
		read      func(path string, v interface{}) error
		wantErr   bool
		wantValue testSettings
	}{
		{
			name:      "yamlOK",
			path:      writeFile("ok.yaml", "name: alpha\nthreshold: 250000\n"),
			read:      ReadUnmarshalYAML,
			wantValue: testSettings{Name: "alpha", Threshold: 250000},
		},
		{
			name:    "yamlMalformed",
			path:    writeFile("bad.yaml", "name: [alpha\n"),
			read:    ReadUnmarshalYAML,
			wantErr: true,
		},
		{
			name:      "jsonOK",
			path:      writeFile("ok.json", `{"name":"beta","threshold":12}`),
			read:      ReadUnmarshalJSON,
			wantValue: testSettings{Name: "beta", Threshold: 12},
		},
		{
			name:    "jsonMalformed",
			path:    writeFile("bad.json", `{"name":`),
			read:    ReadUnmarshalJSON,
			wantErr: true,
		},
		{
			name:    "missingFile",
			path:    filepath.Join(dir, "missing.json"),
			read:    ReadUnmarshalJSON,
			wantErr: true,
		},
	}
	for _, tc := range testCases {
		tc := tc // https://github.com/golang/go/wiki/CommonMistakes#using-goroutines-on-loop-iterator-variables
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			var got testSettings
			err := tc.read(tc.path, &got)
			if tc.wantErr {
				if err == nil {
					t.Errorf("want an error got none")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error %v", err)
			}
			if got != tc.wantValue {
				t.Errorf("want %v got %v", tc.wantValue, got)
			}
		})
	}
}
