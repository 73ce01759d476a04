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

package movetodrive

import (
	"fmt"
	"os"
	"path"
	"path/filepath"
)

// StagingPath is the local file for an object: its base name in tempDir, os.TempDir() when empty.
// The same object name always gives the same path.
func StagingPath(tempDir string, objectName string) (string, error) {
	baseName := path.Base(objectName)
	switch baseName {
	case ".", "/", "..":
		return "", fmt.Errorf("no file name in object name '%s'", objectName)
	}
	if tempDir == "" {
		tempDir = os.TempDir()
	}
	return filepath.Join(tempDir, baseName), nil
}
