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

package gcs

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestUnitCopyToFile(t *testing.T) {
	dir := t.TempDir()
	localPath := filepath.Join(dir, "cat.jpg")

	// a first, longer, content must be fully replaced
	if _, err := copyToFile(strings.NewReader("first content, longer"), localPath); err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	written, err := copyToFile(strings.NewReader("second"), localPath)
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if written != int64(len("second")) {
		t.Errorf("want %d bytes written got %d", len("second"), written)
	}
	content, err := os.ReadFile(localPath)
	if err != nil {
		t.Fatal(err)
	}
	if string(content) != "second" {
		t.Errorf("want overwritten content 'second' got '%s'", string(content))
	}

	if _, err = copyToFile(strings.NewReader("x"), filepath.Join(dir, "missing", "cat.jpg")); err == nil {
		t.Errorf("want an error when the folder does not exist")
	}
}
