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
	"strconv"

	"github.com/pkg/errors"
)

// NewObjectEvent normalizes a GCS event payload. eventType comes from the invocation metadata.
// A payload carrying a resourceState is treated as the change variant whatever the event type.
func NewObjectEvent(event Event, eventType string) (objectEvent ObjectEvent, err error) {
	objectEvent.Bucket = event.Bucket
	objectEvent.Name = event.Name
	objectEvent.ContentType = event.ContentType
	if event.Size != "" {
		objectEvent.SizeBytes, err = strconv.ParseInt(event.Size, 10, 64)
		if err != nil {
			return objectEvent, errors.Wrapf(err, "size '%s'", event.Size)
		}
		objectEvent.HasSize = true
	}
	if eventType != EventTypeChange && event.ResourceState == "" {
		objectEvent.Variant = FinalizeVariant
		return objectEvent, nil
	}
	objectEvent.Variant = ChangeVariant
	objectEvent.ResourceState = ResourceState(event.ResourceState)
	if event.Metageneration != "" {
		objectEvent.Metageneration, err = strconv.ParseInt(event.Metageneration, 10, 64)
		if err != nil {
			return objectEvent, errors.Wrapf(err, "metageneration '%s'", event.Metageneration)
		}
	}
	return objectEvent, nil
}
