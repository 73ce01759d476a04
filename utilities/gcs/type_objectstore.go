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
	"cloud.google.com/go/storage"
)

// ObjectStore downloads and deletes bucket objects
type ObjectStore struct {
	client *storage.Client
}

// NewObjectStore returns an ObjectStore using a storage client created once at cold start
func NewObjectStore(client *storage.Client) *ObjectStore {
	return &ObjectStore{client: client}
}
