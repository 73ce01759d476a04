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
	"strings"

	"github.com/BrunoReboul/movetodrive/utilities/gcs"
)

// Filter decides if the event is a new image to move.
// resourceState and metageneration are only looked at for the change variant.
func Filter(event gcs.ObjectEvent) Decision {
	if !strings.HasPrefix(event.ContentType, "image/") {
		return SkipNotImage
	}
	if event.Variant != gcs.ChangeVariant {
		return Proceed
	}
	if event.ResourceState == gcs.NotExists {
		return SkipDeletion
	}
	// The metageneration attribute is updated on metadata changes.
	// The on create value is 1.
	if event.ResourceState == gcs.Exists && event.Metageneration > 1 {
		return SkipMetadataOnly
	}
	return Proceed
}
