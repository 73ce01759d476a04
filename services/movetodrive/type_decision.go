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

// Decision of the event filter
type Decision string

// Filter decisions
const (
	Proceed          Decision = "proceed"
	SkipNotImage     Decision = "skip_not_image"
	SkipDeletion     Decision = "skip_deletion"
	SkipMetadataOnly Decision = "skip_metadata_only"
)

// Description human readable reason
func (decision Decision) Description() string {
	switch decision {
	case SkipNotImage:
		return "not an image"
	case SkipDeletion:
		return "deletion event"
	case SkipMetadataOnly:
		return "metadata change event"
	}
	return "new image"
}
