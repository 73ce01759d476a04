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

// Trigger event types
const (
	EventTypeFinalize = "google.storage.object.finalize"
	EventTypeChange   = "providers/cloud.storage/eventTypes/object.change"
)

// Variant of the triggering event
type Variant string

// Event variants
const (
	FinalizeVariant Variant = "finalize"
	ChangeVariant   Variant = "change"
)

// ResourceState as reported by the change stream
type ResourceState string

// Resource states
const (
	Exists    ResourceState = "exists"
	NotExists ResourceState = "not_exists"
)

// ObjectEvent is a storage change notification normalized from either event variant
type ObjectEvent struct {
	Bucket      string
	Name        string
	ContentType string
	SizeBytes   int64
	HasSize     bool
	Variant     Variant
	// ResourceState and Metageneration are only meaningful for the change variant
	ResourceState  ResourceState
	Metageneration int64
}
