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

/*
Package movetodrive moves images landing in a Cloud Storage bucket to a Google Drive folder

## What

An image written to a watched bucket is downloaded to the function local disk, optionally flipped, uploaded as a new Drive document, and then removed from both the local disk and the bucket. The bucket acts as a drop zone, Drive is the destination.

### Use cases

1. Cameras or scanners dropping pictures into a bucket, people browsing them in Drive
2. Mirroring flipped pictures from a device mounted upside down

## How

- services/movetodrive: the cloud function, `Initialize` and `EntryPoint`, and the pipeline
- movetodrive: the function.go wrapper deployed as the cloud function source
- utilities: one package per concern, storage, drive, authorization, image transform, pubsub, logging, settings
*/
package movetodrive
